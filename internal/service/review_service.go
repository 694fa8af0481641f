package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tourbook/internal/domain"
	"tourbook/internal/repository/ports"
)

var (
	ErrReviewValidation = errors.New("review validation failed")
	ErrUserNotFound     = errors.New("user not found")
)

type ReviewService struct {
	reviews      ports.ReviewRepository
	destinations ports.DestinationRepository
	users        ports.UserRepository
}

func NewReviewService(reviewRepo ports.ReviewRepository, destRepo ports.DestinationRepository, userRepo ports.UserRepository) *ReviewService {
	return &ReviewService{reviews: reviewRepo, destinations: destRepo, users: userRepo}
}

// Create submits a review. The author's username is copied onto the review
// at submission time and stays as written even if the account changes
// later. Rating bounds are enforced here, not by the store.
func (s *ReviewService) Create(ctx context.Context, userID, destinationID int64, rating int, comment *string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrReviewValidation)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.destinations.FindByID(ctx, destinationID); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}

	review := &domain.Review{
		DestinationID: destinationID,
		UserID:        userID,
		Username:      user.Username,
		Rating:        rating,
		Comment:       normalizeComment(comment),
	}

	id, err := s.reviews.Create(ctx, review)
	if err != nil {
		if errors.Is(err, ports.ErrReferentialViolation) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	review.ID = id
	return review, nil
}

func (s *ReviewService) Aggregate(ctx context.Context, destinationID int64) (*domain.ReviewAggregate, error) {
	return s.reviews.AggregateByDestination(ctx, destinationID)
}

func normalizeComment(comment *string) *string {
	if comment == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*comment)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
