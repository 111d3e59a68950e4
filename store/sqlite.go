package store

import (
	"context"
	"database/sql"
	"errors"

	"GardenTrack/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS plants (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	variety TEXT NOT NULL,
	photo_url TEXT NOT NULL,
	date_planted TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS harvests (
	id TEXT PRIMARY KEY,
	plant_id TEXT NOT NULL,
	quantity TEXT NOT NULL,
	date TEXT NOT NULL
);`

// SQLiteStore mirrors the two collections as tables. Ids are ObjectID hex
// strings so identifiers are interchangeable with MongoStore. harvests.plant_id
// carries no foreign key.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path. ":memory:" gives a
// private in-process database.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, storageErr("open sqlite", err)
	}
	// Each connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, storageErr("create schema", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) InsertPlant(ctx context.Context, p models.Plant) (string, error) {
	id := primitive.NewObjectID().Hex()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO plants (id, name, variety, photo_url, date_planted) VALUES (?, ?, ?, ?, ?)`,
		id, p.Name, p.Variety, p.PhotoURL, p.DatePlanted,
	)
	if err != nil {
		return "", storageErr("insert plant", err)
	}
	return id, nil
}

func (s *SQLiteStore) FindAllPlants(ctx context.Context) ([]models.Plant, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, variety, photo_url, date_planted FROM plants`)
	if err != nil {
		return nil, storageErr("find plants", err)
	}
	defer rows.Close()

	plants := []models.Plant{}
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, storageErr("decode plants", err)
		}
		plants = append(plants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("find plants", err)
	}
	return plants, nil
}

func (s *SQLiteStore) FindPlantByID(ctx context.Context, id string) (PlantLookup, error) {
	oid, err := ParseID(id)
	if err != nil {
		return PlantLookup{Status: InvalidID}, nil
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, variety, photo_url, date_planted FROM plants WHERE id = ?`, oid.Hex())
	p, err := scanPlant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return PlantLookup{Status: NotFound}, nil
	}
	if err != nil {
		return PlantLookup{}, storageErr("find plant", err)
	}
	return PlantLookup{Plant: p, Status: Found}, nil
}

func (s *SQLiteStore) UpdatePlant(ctx context.Context, id string, p models.Plant) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	f := p.UpdateFields()
	_, err = s.db.ExecContext(ctx,
		`UPDATE plants SET name = ?, variety = ?, photo_url = ?, date_planted = ? WHERE id = ?`,
		f.Name, f.Variety, f.PhotoURL, f.DatePlanted, oid.Hex(),
	)
	if err != nil {
		return storageErr("update plant", err)
	}
	return nil
}

func (s *SQLiteStore) DeletePlant(ctx context.Context, id string) (int64, error) {
	oid, err := ParseID(id)
	if err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM plants WHERE id = ?`, oid.Hex())
	if err != nil {
		return 0, storageErr("delete plant", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr("delete plant", err)
	}
	return n, nil
}

func (s *SQLiteStore) InsertHarvest(ctx context.Context, h models.Harvest) (string, error) {
	id := primitive.NewObjectID().Hex()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO harvests (id, plant_id, quantity, date) VALUES (?, ?, ?, ?)`,
		id, h.PlantID, h.Quantity, h.Date,
	)
	if err != nil {
		return "", storageErr("insert harvest", err)
	}
	return id, nil
}

func (s *SQLiteStore) FindHarvestsByPlant(ctx context.Context, plantID string) ([]models.Harvest, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, plant_id, quantity, date FROM harvests WHERE plant_id = ?`, plantID)
	if err != nil {
		return nil, storageErr("find harvests", err)
	}
	defer rows.Close()

	harvests := []models.Harvest{}
	for rows.Next() {
		var (
			h  models.Harvest
			id string
		)
		if err := rows.Scan(&id, &h.PlantID, &h.Quantity, &h.Date); err != nil {
			return nil, storageErr("decode harvests", err)
		}
		if h.ID, err = primitive.ObjectIDFromHex(id); err != nil {
			return nil, storageErr("decode harvests", err)
		}
		harvests = append(harvests, h)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("find harvests", err)
	}
	return harvests, nil
}

func (s *SQLiteStore) DeleteHarvestsByPlant(ctx context.Context, plantID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM harvests WHERE plant_id = ?`, plantID)
	if err != nil {
		return 0, storageErr("delete harvests", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr("delete harvests", err)
	}
	return n, nil
}

func (s *SQLiteStore) HarvestPlantIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT plant_id FROM harvests`)
	if err != nil {
		return nil, storageErr("distinct harvest plant ids", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, storageErr("distinct harvest plant ids", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("distinct harvest plant ids", err)
	}
	return ids, nil
}

func (s *SQLiteStore) Close(context.Context) error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlant(r rowScanner) (models.Plant, error) {
	var (
		p  models.Plant
		id string
	)
	if err := r.Scan(&id, &p.Name, &p.Variety, &p.PhotoURL, &p.DatePlanted); err != nil {
		return models.Plant{}, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Plant{}, err
	}
	p.ID = oid
	return p, nil
}
