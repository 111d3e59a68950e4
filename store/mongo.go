package store

import (
	"context"
	"errors"
	"fmt"

	"GardenTrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore keeps plants and harvests in two collections of one database.
type MongoStore struct {
	client   *mongo.Client
	plants   *mongo.Collection
	harvests *mongo.Collection
}

// NewMongoStore wraps an already connected database. Close disconnects its
// client.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		client:   db.Client(),
		plants:   db.Collection(PlantsCollection),
		harvests: db.Collection(HarvestsCollection),
	}
}

func (s *MongoStore) InsertPlant(ctx context.Context, p models.Plant) (string, error) {
	p.ID = primitive.NewObjectID()
	if _, err := s.plants.InsertOne(ctx, p); err != nil {
		return "", storageErr("insert plant", err)
	}
	return p.ID.Hex(), nil
}

func (s *MongoStore) FindAllPlants(ctx context.Context) ([]models.Plant, error) {
	cursor, err := s.plants.Find(ctx, bson.M{})
	if err != nil {
		return nil, storageErr("find plants", err)
	}
	defer cursor.Close(ctx)

	plants := []models.Plant{}
	if err := cursor.All(ctx, &plants); err != nil {
		return nil, storageErr("decode plants", err)
	}
	return plants, nil
}

func (s *MongoStore) FindPlantByID(ctx context.Context, id string) (PlantLookup, error) {
	oid, err := ParseID(id)
	if err != nil {
		return PlantLookup{Status: InvalidID}, nil
	}

	var plant models.Plant
	err = s.plants.FindOne(ctx, bson.M{"_id": oid}).Decode(&plant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return PlantLookup{Status: NotFound}, nil
	}
	if err != nil {
		return PlantLookup{}, storageErr("find plant", err)
	}
	return PlantLookup{Plant: plant, Status: Found}, nil
}

func (s *MongoStore) UpdatePlant(ctx context.Context, id string, p models.Plant) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": p.UpdateFields()}
	// MatchedCount is ignored; updating a missing plant is a no-op.
	if _, err := s.plants.UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
		return storageErr("update plant", err)
	}
	return nil
}

func (s *MongoStore) DeletePlant(ctx context.Context, id string) (int64, error) {
	oid, err := ParseID(id)
	if err != nil {
		return 0, err
	}

	result, err := s.plants.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, storageErr("delete plant", err)
	}
	return result.DeletedCount, nil
}

func (s *MongoStore) InsertHarvest(ctx context.Context, h models.Harvest) (string, error) {
	h.ID = primitive.NewObjectID()
	if _, err := s.harvests.InsertOne(ctx, h); err != nil {
		return "", storageErr("insert harvest", err)
	}
	return h.ID.Hex(), nil
}

func (s *MongoStore) FindHarvestsByPlant(ctx context.Context, plantID string) ([]models.Harvest, error) {
	cursor, err := s.harvests.Find(ctx, bson.M{"plant_id": plantID})
	if err != nil {
		return nil, storageErr("find harvests", err)
	}
	defer cursor.Close(ctx)

	harvests := []models.Harvest{}
	if err := cursor.All(ctx, &harvests); err != nil {
		return nil, storageErr("decode harvests", err)
	}
	return harvests, nil
}

func (s *MongoStore) DeleteHarvestsByPlant(ctx context.Context, plantID string) (int64, error) {
	result, err := s.harvests.DeleteMany(ctx, bson.M{"plant_id": plantID})
	if err != nil {
		return 0, storageErr("delete harvests", err)
	}
	return result.DeletedCount, nil
}

func (s *MongoStore) HarvestPlantIDs(ctx context.Context) ([]string, error) {
	values, err := s.harvests.Distinct(ctx, "plant_id", bson.M{})
	if err != nil {
		return nil, storageErr("distinct harvest plant ids", err)
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		id, ok := v.(string)
		if !ok {
			return nil, storageErr("distinct harvest plant ids", fmt.Errorf("unexpected plant_id type %T", v))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
