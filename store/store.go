// Package store is the persistence gateway for plants and harvests.
//
// Two record sets are kept, plants and harvests. A harvest refers to its
// plant by the plant's hex id stored as plain text; the store never checks
// that reference. Every operation is a single round trip with no
// transaction spanning calls.
package store

import (
	"context"
	"errors"
	"fmt"

	"GardenTrack/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PlantsCollection   = "plants"
	HarvestsCollection = "harvests"
)

// ErrInvalidID is returned when an identifier is not a well-formed ObjectID.
var ErrInvalidID = errors.New("invalid identifier")

// StorageError wraps a driver or connection failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// LookupStatus tells apart the outcomes of a lookup by id.
type LookupStatus int

const (
	Found LookupStatus = iota
	NotFound
	InvalidID
)

func (s LookupStatus) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case InvalidID:
		return "invalid id"
	}
	return fmt.Sprintf("LookupStatus(%d)", int(s))
}

// PlantLookup is the result of FindPlantByID. Plant is only set when Status
// is Found.
type PlantLookup struct {
	Plant  models.Plant
	Status LookupStatus
}

func (l PlantLookup) Found() bool { return l.Status == Found }

// Store is implemented by MongoStore and SQLiteStore.
type Store interface {
	InsertPlant(ctx context.Context, p models.Plant) (string, error)
	FindAllPlants(ctx context.Context) ([]models.Plant, error)
	FindPlantByID(ctx context.Context, id string) (PlantLookup, error)
	// UpdatePlant replaces the four mutable fields. An id matching no plant
	// is not an error.
	UpdatePlant(ctx context.Context, id string, p models.Plant) error
	DeletePlant(ctx context.Context, id string) (int64, error)

	InsertHarvest(ctx context.Context, h models.Harvest) (string, error)
	FindHarvestsByPlant(ctx context.Context, plantID string) ([]models.Harvest, error)
	DeleteHarvestsByPlant(ctx context.Context, plantID string) (int64, error)
	// HarvestPlantIDs returns every distinct plant_id referenced by a harvest.
	HarvestPlantIDs(ctx context.Context) ([]string, error)

	Close(ctx context.Context) error
}

// ParseID converts a hex identifier, mapping any parse failure to ErrInvalidID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}
