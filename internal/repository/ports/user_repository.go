package ports

import (
	"context"

	"tourbook/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string, role domain.Role) (int64, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
