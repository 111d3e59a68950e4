package models

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrMissingField is returned by the constructors when a required value is empty.
var ErrMissingField = errors.New("missing required field")

type Plant struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Variety     string             `json:"variety" bson:"variety"`
	PhotoURL    string             `json:"photo_url" bson:"photo_url"`
	DatePlanted string             `json:"date_planted" bson:"date_planted"`
}

type Harvest struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PlantID  string             `json:"plant_id" bson:"plant_id"`
	Quantity string             `json:"quantity" bson:"quantity"` // e.g. "3 tomatoes"
	Date     string             `json:"date" bson:"date"`
}

// PlantUpdateFields is the $set document for a full replace of a plant's
// mutable fields. The id is never part of it.
type PlantUpdateFields struct {
	Name        string `bson:"name"`
	Variety     string `bson:"variety"`
	PhotoURL    string `bson:"photo_url"`
	DatePlanted string `bson:"date_planted"`
}

// NewPlant builds a plant without an id. The date is kept as given.
func NewPlant(name, variety, photoURL, datePlanted string) (Plant, error) {
	if err := requireFields(
		"plant_name", name,
		"variety", variety,
		"photo", photoURL,
		"date_planted", datePlanted,
	); err != nil {
		return Plant{}, err
	}
	return Plant{
		Name:        name,
		Variety:     variety,
		PhotoURL:    photoURL,
		DatePlanted: datePlanted,
	}, nil
}

// NewHarvest builds a harvest for plantID. plantID is not checked against
// stored plants.
func NewHarvest(plantID, quantity, date string) (Harvest, error) {
	if err := requireFields(
		"plant_id", plantID,
		"harvested_amount", quantity,
		"date_planted", date,
	); err != nil {
		return Harvest{}, err
	}
	return Harvest{
		PlantID:  plantID,
		Quantity: quantity,
		Date:     date,
	}, nil
}

// UpdateFields returns the four mutable fields of p.
func (p Plant) UpdateFields() PlantUpdateFields {
	return PlantUpdateFields{
		Name:        p.Name,
		Variety:     p.Variety,
		PhotoURL:    p.PhotoURL,
		DatePlanted: p.DatePlanted,
	}
}

// requireFields takes name/value pairs and reports the first empty value.
func requireFields(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, pairs[i])
		}
	}
	return nil
}
