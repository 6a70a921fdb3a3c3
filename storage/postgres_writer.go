package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"zomato-insights/models"
	"zomato-insights/utils"
)

// PostgresWriter persists the normalized restaurant table to PostgreSQL.
// Numeric columns are nullable so missing values survive the round trip.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema
// migrations, and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.Retry{Attempts: 5, Delay: 2 * time.Second, MaxDelay: 10 * time.Second, Logger: logger}
	if err := retry.Do("postgres ping", db.Ping); err != nil {
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS restaurants (
			id             SERIAL PRIMARY KEY,
			name           TEXT         NOT NULL DEFAULT '',
			location       TEXT         NOT NULL DEFAULT '',
			city           TEXT         NOT NULL DEFAULT '',
			rest_type      TEXT         NOT NULL DEFAULT '',
			cuisines       TEXT         NOT NULL DEFAULT '',
			rating         NUMERIC(3,1),
			votes          INTEGER,
			cost_for_two   NUMERIC(10,2),
			price_category VARCHAR(16)  NOT NULL,
			created_at     TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_restaurants_location ON restaurants(location);
		CREATE INDEX IF NOT EXISTS idx_restaurants_rating   ON restaurants(rating);
		CREATE INDEX IF NOT EXISTS idx_restaurants_price    ON restaurants(price_category);
	`)
	return err
}

// Clear deletes all existing restaurants from the table.
func (pw *PostgresWriter) Clear() error {
	_, err := pw.db.Exec("DELETE FROM restaurants")
	if err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// Write batch-inserts the whole normalized table, clearing old data first.
func (pw *PostgresWriter) Write(restaurants []*models.Restaurant) error {
	if len(restaurants) == 0 {
		return nil
	}

	if err := pw.Clear(); err != nil {
		return err
	}

	const batchSize = 500
	for i := 0; i < len(restaurants); i += batchSize {
		end := i + batchSize
		if end > len(restaurants) {
			end = len(restaurants)
		}
		if err := pw.insertBatch(restaurants[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(batch []*models.Restaurant) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*9)

	for idx, r := range batch {
		base := idx * 9
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9))
		valueArgs = append(valueArgs,
			r.Name, r.Location, r.City, r.RestType, r.Cuisines,
			nullFloat(r.Rating), nullInt(r.Votes), nullFloat(r.CostForTwo),
			string(r.PriceCategory))
	}

	query := fmt.Sprintf(`
		INSERT INTO restaurants
			(name, location, city, rest_type, cuisines, rating, votes, cost_for_two, price_category)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	if err != nil {
		return fmt.Errorf("postgres: insert batch: %w", err)
	}
	return nil
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

// FetchAll retrieves the stored table in insertion order.
func (pw *PostgresWriter) FetchAll() ([]*models.Restaurant, error) {
	rows, err := pw.db.Query(`
		SELECT name, location, city, rest_type, cuisines, rating, votes, cost_for_two, price_category
		FROM restaurants
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var restaurants []*models.Restaurant
	for rows.Next() {
		r := &models.Restaurant{}
		var rating, cost sql.NullFloat64
		var votes sql.NullInt64
		var category string
		if err := rows.Scan(
			&r.Name, &r.Location, &r.City, &r.RestType, &r.Cuisines,
			&rating, &votes, &cost, &category,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		if rating.Valid {
			v := rating.Float64
			r.Rating = &v
		}
		if votes.Valid {
			v := int(votes.Int64)
			r.Votes = &v
		}
		if cost.Valid {
			v := cost.Float64
			r.CostForTwo = &v
		}
		r.PriceCategory = models.PriceCategory(category)
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
