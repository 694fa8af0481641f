package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"tourbook/internal/domain"
	"tourbook/internal/repository/ports"
)

type ReviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepo(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO reviews (destination_id, user_id, username, rating, comment) VALUES (?, ?, ?, ?, ?)`,
		review.DestinationID, review.UserID, review.Username, review.Rating, review.Comment)
	if err != nil {
		return 0, classify(err)
	}
	return res.LastInsertId()
}

// ListByDestination returns reviews newest first. The id is a monotonic
// proxy for submission order.
func (r *ReviewRepository) ListByDestination(ctx context.Context, destinationID int64) ([]domain.Review, error) {
	const query = `
		SELECT id, destination_id, user_id, username, rating, comment
		FROM reviews
		WHERE destination_id = ?
		ORDER BY id DESC
	`
	reviews := make([]domain.Review, 0)
	if err := r.db.SelectContext(ctx, &reviews, query, destinationID); err != nil {
		return nil, classify(err)
	}
	return reviews, nil
}

func (r *ReviewRepository) AggregateByDestination(ctx context.Context, destinationID int64) (*domain.ReviewAggregate, error) {
	const query = `
		SELECT COUNT(*) AS total_reviews,
		       COALESCE(AVG(rating), 0) AS average_rating
		FROM reviews
		WHERE destination_id = ?
	`
	var row struct {
		Total   int     `db:"total_reviews"`
		Average float64 `db:"average_rating"`
	}
	if err := r.db.GetContext(ctx, &row, query, destinationID); err != nil {
		return nil, classify(err)
	}
	return &domain.ReviewAggregate{
		DestinationID: destinationID,
		TotalReviews:  row.Total,
		AverageRating: row.Average,
	}, nil
}

var _ ports.ReviewRepository = (*ReviewRepository)(nil)
