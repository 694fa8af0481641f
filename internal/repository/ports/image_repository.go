package ports

import (
	"context"

	"tourbook/internal/domain"
)

type ImageRepository interface {
	Add(ctx context.Context, destinationID int64, imagePath string) (int64, error)
	ListByDestination(ctx context.Context, destinationID int64) ([]domain.Image, error)
	ListPathsByDestination(ctx context.Context, destinationID int64) ([]string, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByPath(ctx context.Context, imagePath string) error
}
