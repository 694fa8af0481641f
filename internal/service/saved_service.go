package service

import (
	"context"
	"errors"

	"tourbook/internal/repository/ports"
)

// SavedService manages user bookmarks. Save and Unsave are both
// idempotent: repeating either leaves the store in the same state and
// reports success.
type SavedService struct {
	saved        ports.SavedRepository
	destinations ports.DestinationRepository
}

func NewSavedService(savedRepo ports.SavedRepository, destRepo ports.DestinationRepository) *SavedService {
	return &SavedService{saved: savedRepo, destinations: destRepo}
}

func (s *SavedService) Save(ctx context.Context, userID, destinationID int64) error {
	if _, err := s.destinations.FindByID(ctx, destinationID); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ErrDestinationNotFound
		}
		return err
	}
	return s.saved.Save(ctx, userID, destinationID)
}

func (s *SavedService) Unsave(ctx context.Context, userID, destinationID int64) error {
	err := s.saved.Unsave(ctx, userID, destinationID)
	if errors.Is(err, ports.ErrNotFound) {
		// removing a bookmark that is not there is not a failure
		return nil
	}
	return err
}

func (s *SavedService) IsSaved(ctx context.Context, userID, destinationID int64) (bool, error) {
	return s.saved.IsSaved(ctx, userID, destinationID)
}
