package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"tourbook/internal/domain"
	"tourbook/internal/repository/ports"
)

type ImageRepository struct {
	db *sqlx.DB
}

func NewImageRepo(db *sqlx.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Add(ctx context.Context, destinationID int64, imagePath string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO images (destination_id, image_path) VALUES (?, ?)`, destinationID, imagePath)
	if err != nil {
		return 0, classify(err)
	}
	return res.LastInsertId()
}

func (r *ImageRepository) ListByDestination(ctx context.Context, destinationID int64) ([]domain.Image, error) {
	const query = `
		SELECT id, destination_id, image_path
		FROM images
		WHERE destination_id = ?
		ORDER BY id ASC
	`
	images := make([]domain.Image, 0)
	if err := r.db.SelectContext(ctx, &images, query, destinationID); err != nil {
		return nil, classify(err)
	}
	return images, nil
}

func (r *ImageRepository) ListPathsByDestination(ctx context.Context, destinationID int64) ([]string, error) {
	const query = `
		SELECT image_path
		FROM images
		WHERE destination_id = ?
		ORDER BY id ASC
	`
	paths := make([]string, 0)
	if err := r.db.SelectContext(ctx, &paths, query, destinationID); err != nil {
		return nil, classify(err)
	}
	return paths, nil
}

func (r *ImageRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM images WHERE id = ?`, id)
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

// DeleteByPath removes every image row carrying the path. Paths are unique
// in practice (the library generates them) but the store does not enforce
// it.
func (r *ImageRepository) DeleteByPath(ctx context.Context, imagePath string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM images WHERE image_path = ?`, imagePath)
	return classify(err)
}

var _ ports.ImageRepository = (*ImageRepository)(nil)
