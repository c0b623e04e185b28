package service

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"ankaragis/internal/auth"
	apperrors "ankaragis/internal/errors"
	"ankaragis/internal/model"
	"ankaragis/internal/repository"
)

// PlaceService handles place operations. Listing is public; every mutation
// requires a privileged role taken from the caller's token claims.
type PlaceService interface {
	ListGeoJSON(ctx context.Context) (*model.FeatureCollection, error)
	Create(ctx context.Context, claims *auth.Claims, in model.PlaceInput) (*model.PlaceRef, error)
	Update(ctx context.Context, claims *auth.Claims, id uint, in model.PlaceInput) (*model.PlaceGeoRow, error)
	Delete(ctx context.Context, claims *auth.Claims, id uint) error
}

type placeService struct {
	placeRepo repository.PlaceRepository
}

// NewPlaceService creates a new place service.
func NewPlaceService(placeRepo repository.PlaceRepository) PlaceService {
	return &placeService{placeRepo: placeRepo}
}

// ListGeoJSON returns all places as a GeoJSON FeatureCollection. The
// geometry of each Feature is the raw ST_AsGeoJSON output.
func (s *placeService) ListGeoJSON(ctx context.Context) (*model.FeatureCollection, error) {
	rows, err := s.placeRepo.ListWithGeoJSON(ctx)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}

	features := make([]model.Feature, 0, len(rows))
	for _, row := range rows {
		features = append(features, model.Feature{
			Type:     "Feature",
			Geometry: json.RawMessage(row.Geometry),
			Properties: model.PlaceProperties{
				ID:          row.ID,
				Name:        row.Name,
				Category:    row.Category,
				Description: row.Description,
				ImageURL:    row.ImageURL,
			},
		})
	}

	return &model.FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}, nil
}

// Create stores a new place owned by the caller.
func (s *placeService) Create(ctx context.Context, claims *auth.Claims, in model.PlaceInput) (*model.PlaceRef, error) {
	if !model.IsPrivileged(claims.Role) {
		return nil, apperrors.ErrInsufficientRole
	}
	ref, err := s.placeRepo.Create(ctx, in, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("create place: %w", err)
	}
	return ref, nil
}

// Update replaces all fields of a place, geometry included.
func (s *placeService) Update(ctx context.Context, claims *auth.Claims, id uint, in model.PlaceInput) (*model.PlaceGeoRow, error) {
	if !model.IsPrivileged(claims.Role) {
		return nil, apperrors.ErrInsufficientRole
	}
	row, err := s.placeRepo.Update(ctx, id, in)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("update place: %w", err)
	}
	return row, nil
}

// Delete removes a place and its comments.
func (s *placeService) Delete(ctx context.Context, claims *auth.Claims, id uint) error {
	if !model.IsPrivileged(claims.Role) {
		return apperrors.ErrInsufficientRole
	}
	if err := s.placeRepo.DeleteWithComments(ctx, id); err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	return nil
}
