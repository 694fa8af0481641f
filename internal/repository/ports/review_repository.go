package ports

import (
	"context"

	"tourbook/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (int64, error)

	// ListByDestination returns reviews newest first.
	ListByDestination(ctx context.Context, destinationID int64) ([]domain.Review, error)

	AggregateByDestination(ctx context.Context, destinationID int64) (*domain.ReviewAggregate, error)
}
