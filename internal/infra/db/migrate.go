package db

import "database/sql"

// MigrateUp creates the news schema. The UNIQUE constraint on title backs the
// application-level duplicate check, closing the race window between
// concurrent writers.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS news (
    id               SERIAL PRIMARY KEY,
    author           TEXT NOT NULL,
    title            TEXT NOT NULL UNIQUE,
    text             TEXT NOT NULL,
    publication_date TIMESTAMPTZ NOT NULL,
    first_hand       BOOLEAN NOT NULL DEFAULT FALSE,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// ORDER BY publication_date is the default listing order.
		`CREATE INDEX IF NOT EXISTS idx_news_publication_date ON news(publication_date DESC)`,
	}
	for _, stmt := range indexes {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the ILIKE title filter. Ignore the error when the
	// extension already exists or the role lacks permission.
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	_, _ = db.Exec(`CREATE INDEX IF NOT EXISTS idx_news_title_gin ON news USING gin(title gin_trgm_ops)`)

	return nil
}
