package service

import (
	"context"
	"errors"
	"sort"

	"tourbook/internal/domain"
	"tourbook/internal/pricing"
	"tourbook/internal/repository/ports"
)

var ErrDestinationNotFound = errors.New("destination not found")

// CatalogService is the read side of the catalog. It composes destination
// rows with their image paths and the requesting user's saved flag into
// DestinationView values; it never mutates anything.
type CatalogService struct {
	destinations ports.DestinationRepository
	images       ports.ImageRepository
	saved        ports.SavedRepository
	reviews      ports.ReviewRepository
}

func NewCatalogService(
	destRepo ports.DestinationRepository,
	imageRepo ports.ImageRepository,
	savedRepo ports.SavedRepository,
	reviewRepo ports.ReviewRepository,
) *CatalogService {
	return &CatalogService{
		destinations: destRepo,
		images:       imageRepo,
		saved:        savedRepo,
		reviews:      reviewRepo,
	}
}

// List returns every destination enriched for the requesting user. Price
// order applies the numeric key over the store's name order, so equal keys
// stay sorted by name and then id.
func (s *CatalogService) List(ctx context.Context, sortKey domain.SortKey, userID int64) ([]domain.DestinationView, error) {
	dests, err := s.destinations.List(ctx, sortKey)
	if err != nil {
		return nil, err
	}

	if sortKey == domain.SortByPrice {
		sort.SliceStable(dests, func(i, j int) bool {
			return pricing.NumericKey(dests[i].Price) < pricing.NumericKey(dests[j].Price)
		})
	}

	return s.enrich(ctx, dests, userID)
}

// Search matches the substring against name or location without regard to
// case. Results are always in name order, whatever sort the caller used
// last.
func (s *CatalogService) Search(ctx context.Context, substring string, userID int64) ([]domain.DestinationView, error) {
	dests, err := s.destinations.Search(ctx, substring)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, dests, userID)
}

// ListSaved returns the user's bookmarked destinations in store order. The
// saved flag is true by construction.
func (s *CatalogService) ListSaved(ctx context.Context, userID int64) ([]domain.DestinationView, error) {
	if userID == domain.NoUser {
		return []domain.DestinationView{}, nil
	}

	dests, err := s.saved.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.DestinationView, 0, len(dests))
	for _, dest := range dests {
		paths, err := s.images.ListPathsByDestination(ctx, dest.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, domain.DestinationView{
			Destination: dest,
			ImagePaths:  paths,
			Saved:       true,
		})
	}
	return views, nil
}

func (s *CatalogService) ReviewsFor(ctx context.Context, destinationID int64) ([]domain.Review, error) {
	return s.reviews.ListByDestination(ctx, destinationID)
}

// Detail returns one destination with its reviews and rating aggregate, as
// shown on the detail screen.
func (s *CatalogService) Detail(ctx context.Context, destinationID, userID int64) (*domain.DestinationView, []domain.Review, *domain.ReviewAggregate, error) {
	dest, err := s.destinations.FindByID(ctx, destinationID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, nil, nil, ErrDestinationNotFound
		}
		return nil, nil, nil, err
	}

	views, err := s.enrich(ctx, []domain.Destination{*dest}, userID)
	if err != nil {
		return nil, nil, nil, err
	}

	reviews, err := s.reviews.ListByDestination(ctx, destinationID)
	if err != nil {
		return nil, nil, nil, err
	}
	aggregate, err := s.reviews.AggregateByDestination(ctx, destinationID)
	if err != nil {
		return nil, nil, nil, err
	}
	return &views[0], reviews, aggregate, nil
}

// enrich attaches image paths and the saved flag to each destination. The
// saved check is a point lookup per row, never a scan, and is skipped
// entirely for NoUser.
func (s *CatalogService) enrich(ctx context.Context, dests []domain.Destination, userID int64) ([]domain.DestinationView, error) {
	views := make([]domain.DestinationView, 0, len(dests))
	for _, dest := range dests {
		paths, err := s.images.ListPathsByDestination(ctx, dest.ID)
		if err != nil {
			return nil, err
		}

		saved := false
		if userID != domain.NoUser {
			saved, err = s.saved.IsSaved(ctx, userID, dest.ID)
			if err != nil {
				return nil, err
			}
		}

		views = append(views, domain.DestinationView{
			Destination: dest,
			ImagePaths:  paths,
			Saved:       saved,
		})
	}
	return views, nil
}
