package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tourbook/internal/domain"
	"tourbook/internal/repository/ports"
)

var ErrDestinationValidation = errors.New("destination validation failed")

// DestinationService is the write side of the catalog: the transactional
// create path, image appends, scalar updates and deletes. Only admins reach
// these operations; the role check is the UI's job, field validation is
// ours.
type DestinationService struct {
	destinations ports.DestinationRepository
	images       ports.ImageRepository
}

func NewDestinationService(destRepo ports.DestinationRepository, imageRepo ports.ImageRepository) *DestinationService {
	return &DestinationService{destinations: destRepo, images: imageRepo}
}

// Create persists the destination and its images as one unit. Either the
// destination row and every image row exist afterwards, or none of them do.
func (s *DestinationService) Create(ctx context.Context, fields domain.DestinationFields, imagePaths []string) (int64, error) {
	normalized, err := normalizeFields(fields)
	if err != nil {
		return 0, err
	}
	for i, path := range imagePaths {
		if strings.TrimSpace(path) == "" {
			return 0, fmt.Errorf("%w: image path %d is empty", ErrDestinationValidation, i+1)
		}
	}
	return s.destinations.CreateWithImages(ctx, normalized, imagePaths)
}

// AddImages appends images to an existing destination. Each insert stands
// alone: earlier successes are kept when a later path fails, and the count
// of persisted rows is reported alongside the first error.
func (s *DestinationService) AddImages(ctx context.Context, destinationID int64, imagePaths []string) (int, error) {
	if _, err := s.destinations.FindByID(ctx, destinationID); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return 0, ErrDestinationNotFound
		}
		return 0, err
	}

	added := 0
	for _, path := range imagePaths {
		if _, err := s.images.Add(ctx, destinationID, path); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// Update replaces all scalar fields of the destination. Images, saved links
// and reviews are untouched.
func (s *DestinationService) Update(ctx context.Context, id int64, fields domain.DestinationFields) error {
	normalized, err := normalizeFields(fields)
	if err != nil {
		return err
	}
	if err := s.destinations.Update(ctx, id, normalized); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ErrDestinationNotFound
		}
		return err
	}
	return nil
}

// Delete removes the destination; the schema cascades to images, saved
// links and reviews. It returns the stored paths of the removed images so
// the caller can clean up the files, a best-effort step outside this
// layer's guarantee.
func (s *DestinationService) Delete(ctx context.Context, id int64) ([]string, error) {
	paths, err := s.images.ListPathsByDestination(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.destinations.Delete(ctx, id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return paths, nil
}

func normalizeFields(fields domain.DestinationFields) (domain.DestinationFields, error) {
	fields.Name = strings.TrimSpace(fields.Name)
	fields.Location = strings.TrimSpace(fields.Location)
	fields.Price = strings.TrimSpace(fields.Price)
	fields.Description = normalizeOptional(fields.Description)
	fields.TouristSpots = normalizeOptional(fields.TouristSpots)
	fields.LocalSpots = normalizeOptional(fields.LocalSpots)
	fields.Shops = normalizeOptional(fields.Shops)

	switch {
	case fields.Name == "":
		return domain.DestinationFields{}, fmt.Errorf("%w: name is required", ErrDestinationValidation)
	case fields.Location == "":
		return domain.DestinationFields{}, fmt.Errorf("%w: location is required", ErrDestinationValidation)
	case fields.Price == "":
		return domain.DestinationFields{}, fmt.Errorf("%w: price is required", ErrDestinationValidation)
	}
	return fields, nil
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
