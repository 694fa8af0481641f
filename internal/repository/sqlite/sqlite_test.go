package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"tourbook/internal/domain"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testFields(name, location, price string, popularity float64) domain.DestinationFields {
	return domain.DestinationFields{
		Name:       name,
		Location:   location,
		Price:      price,
		Popularity: popularity,
	}
}

func mustCreateDestination(t *testing.T, db *sqlx.DB, fields domain.DestinationFields) int64 {
	t.Helper()
	id, err := NewDestinationRepo(db).Create(context.Background(), fields)
	if err != nil {
		t.Fatalf("create destination %q: %v", fields.Name, err)
	}
	return id
}

func mustCreateUser(t *testing.T, db *sqlx.DB, username string) int64 {
	t.Helper()
	id, err := NewUserRepo(db).Create(context.Background(), username, "x", domain.RoleUser)
	if err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return id
}

func countRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM `+table); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return count
}
