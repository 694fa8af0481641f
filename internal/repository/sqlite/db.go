// Package sqlite persists the catalog in a single embedded SQLite file. It
// is the only package that speaks SQL; everything above it works through the
// ports interfaces.
package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func init() {
	// The modernc driver registers as "sqlite", which sqlx does not know a
	// bindvar style for out of the box.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open connects to the database file, creating it if needed, and ensures
// the schema. Foreign keys are switched on per connection; the cascade
// rules depend on it.
func Open(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	if err := EnsureSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
