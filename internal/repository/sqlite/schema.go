package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS destinations (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    name          TEXT NOT NULL,
    location      TEXT NOT NULL,
    description   TEXT,
    price         TEXT NOT NULL,
    popularity    REAL NOT NULL,
    tourist_spots TEXT,
    local_spots   TEXT,
    shops         TEXT
);

CREATE TABLE IF NOT EXISTS images (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    destination_id INTEGER NOT NULL REFERENCES destinations(id) ON DELETE CASCADE,
    image_path     TEXT NOT NULL CHECK (image_path <> '')
);

CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS saved_links (
    user_id        INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    destination_id INTEGER NOT NULL REFERENCES destinations(id) ON DELETE CASCADE,
    PRIMARY KEY (user_id, destination_id)
);

CREATE TABLE IF NOT EXISTS reviews (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    destination_id INTEGER NOT NULL REFERENCES destinations(id) ON DELETE CASCADE,
    user_id        INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    username       TEXT NOT NULL,
    rating         INTEGER NOT NULL,
    comment        TEXT
);

CREATE INDEX IF NOT EXISTS idx_images_destination_id ON images(destination_id);
CREATE INDEX IF NOT EXISTS idx_reviews_destination_id ON reviews(destination_id);
`

// EnsureSchema creates the five tables and their indexes if they do not
// exist yet. Safe to run on every start; a failure here is fatal to startup
// and must not be ignored.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite: initialize schema: %w", err)
	}
	return nil
}
