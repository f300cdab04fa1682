package repository

import (
	"context"
	"fmt"

	"upcoming-elections/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the regions table used to populate the search form.
const Schema = `
	CREATE TABLE IF NOT EXISTS regions (
		id BIGSERIAL PRIMARY KEY,
		country CHAR(2) NOT NULL,
		code VARCHAR(16) NOT NULL,
		name VARCHAR(255) NOT NULL,
		UNIQUE (country, code)
	);
	CREATE INDEX IF NOT EXISTS regions_country_idx ON regions (country);
`

// Repository implements the repository interface for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListRegions returns the stored regions of a country ordered by name
func (r *Repository) ListRegions(ctx context.Context, country string) ([]models.Region, error) {
	sql := `
		SELECT
			country,
			code,
			name
		FROM regions
		WHERE country = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, sql, country)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute regions query: %w", err)
	}
	defer rows.Close()

	regions := []models.Region{}
	for rows.Next() {
		var region models.Region
		if err := rows.Scan(&region.Country, &region.Code, &region.Name); err != nil {
			return nil, fmt.Errorf("repository: failed to scan region: %w", err)
		}
		regions = append(regions, region)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return regions, nil
}
