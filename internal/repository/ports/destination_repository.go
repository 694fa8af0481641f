package ports

import (
	"context"

	"tourbook/internal/domain"
)

type DestinationRepository interface {
	// Create inserts a destination row and returns its generated id.
	Create(ctx context.Context, fields domain.DestinationFields) (int64, error)

	// CreateWithImages inserts a destination and one image row per path as a
	// single unit of work. On any failure nothing is persisted and the error
	// wraps ErrTransactionAborted.
	CreateWithImages(ctx context.Context, fields domain.DestinationFields, imagePaths []string) (int64, error)

	// Update replaces every scalar field of the destination.
	Update(ctx context.Context, id int64, fields domain.DestinationFields) error

	// Delete removes the destination; images, saved links and reviews go
	// with it through the schema's cascade rules.
	Delete(ctx context.Context, id int64) error

	FindByID(ctx context.Context, id int64) (*domain.Destination, error)

	// List returns all destinations. Name order is ascending and
	// case-insensitive; popularity order is descending. Price order is the
	// caller's concern since the numeric key lives outside the store.
	List(ctx context.Context, sort domain.SortKey) ([]domain.Destination, error)

	// Search matches the substring case-insensitively against name or
	// location, ordered by name ascending.
	Search(ctx context.Context, substring string) ([]domain.Destination, error)
}
