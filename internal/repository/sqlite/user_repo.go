package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"tourbook/internal/domain"
	"tourbook/internal/repository/ports"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, username, passwordHash string, role domain.Role) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)`,
		username, passwordHash, role)
	if err != nil {
		return 0, classify(err)
	}
	return res.LastInsertId()
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
		SELECT id, username, password_hash, role
		FROM users
		WHERE username = ?
	`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
		SELECT id, username, password_hash, role
		FROM users
		WHERE id = ?
	`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
