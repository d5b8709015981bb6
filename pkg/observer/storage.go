package observer

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const readingsDDL = `
CREATE TABLE IF NOT EXISTS weather_readings (
    id BIGSERIAL PRIMARY KEY,
    temperature DOUBLE PRECISION NOT NULL,
    humidity DOUBLE PRECISION NOT NULL,
    pressure DOUBLE PRECISION NOT NULL,
    recorded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_weather_readings_recorded_at ON weather_readings(recorded_at);
`

// PGReadingStore implements ReadingStore using PostgreSQL.
type PGReadingStore struct {
	db *sql.DB
}

func NewPGReadingStore(db *sql.DB) *PGReadingStore {
	return &PGReadingStore{db: db}
}

// OpenPGReadingStore opens a lib/pq connection and applies the schema.
func OpenPGReadingStore(ctx context.Context, connString string) (*PGReadingStore, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	s := NewPGReadingStore(db)
	if err := s.ApplySchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *PGReadingStore) ApplySchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, readingsDDL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (s *PGReadingStore) Save(ctx context.Context, r Reading, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO weather_readings (temperature, humidity, pressure, recorded_at) VALUES ($1, $2, $3, $4)",
		r.Temperature, r.Humidity, r.Pressure, at)
	if err != nil {
		return fmt.Errorf("failed to save reading: %w", err)
	}
	return nil
}

func (s *PGReadingStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	query := "SELECT id, temperature, humidity, pressure, recorded_at FROM weather_readings ORDER BY id DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch readings: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Reading.Temperature, &rec.Reading.Humidity,
			&rec.Reading.Pressure, &rec.RecordedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *PGReadingStore) Close() error {
	return s.db.Close()
}
