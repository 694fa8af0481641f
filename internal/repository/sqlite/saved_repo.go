package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tourbook/internal/domain"
	"tourbook/internal/repository/ports"
)

type SavedRepository struct {
	db *sqlx.DB
}

func NewSavedRepo(db *sqlx.DB) *SavedRepository {
	return &SavedRepository{db: db}
}

// Save bookmarks the destination for the user. INSERT OR IGNORE makes the
// duplicate case a no-op rather than a constraint error; a missing user or
// destination still fails the foreign keys.
func (r *SavedRepository) Save(ctx context.Context, userID, destinationID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO saved_links (user_id, destination_id) VALUES (?, ?)`,
		userID, destinationID)
	return classify(err)
}

func (r *SavedRepository) Unsave(ctx context.Context, userID, destinationID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM saved_links WHERE user_id = ? AND destination_id = ?`,
		userID, destinationID)
	if err != nil {
		return classify(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *SavedRepository) IsSaved(ctx context.Context, userID, destinationID int64) (bool, error) {
	if userID == domain.NoUser {
		return false, nil
	}
	const query = `
		SELECT COUNT(*)
		FROM saved_links
		WHERE user_id = ? AND destination_id = ?
	`
	var count int
	if err := r.db.GetContext(ctx, &count, query, userID, destinationID); err != nil {
		return false, classify(err)
	}
	return count > 0, nil
}

func (r *SavedRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Destination, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM destinations
		JOIN saved_links ON saved_links.destination_id = destinations.id
		WHERE saved_links.user_id = ?
		ORDER BY destinations.id ASC
	`, prefixedDestinationColumns)

	dests := make([]domain.Destination, 0)
	if err := r.db.SelectContext(ctx, &dests, query, userID); err != nil {
		return nil, classify(err)
	}
	return dests, nil
}

var _ ports.SavedRepository = (*SavedRepository)(nil)
