package ports

import (
	"context"

	"tourbook/internal/domain"
)

type SavedRepository interface {
	// Save records a bookmark. Saving an existing (user, destination) pair
	// succeeds without effect.
	Save(ctx context.Context, userID, destinationID int64) error

	Unsave(ctx context.Context, userID, destinationID int64) error

	// IsSaved is a point lookup on the pair. It answers false for
	// domain.NoUser without touching the store.
	IsSaved(ctx context.Context, userID, destinationID int64) (bool, error)

	// ListByUser returns the user's saved destinations in store order.
	ListByUser(ctx context.Context, userID int64) ([]domain.Destination, error)
}
