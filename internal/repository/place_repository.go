package repository

import (
	"context"

	"gorm.io/gorm"

	"ankaragis/internal/model"
)

// PlaceRepository defines persistence operations for places. Geometry is
// always handled in SQL: points are built with ST_SetSRID(ST_MakePoint(lng,
// lat), 4326) and read back through ST_AsGeoJSON.
type PlaceRepository interface {
	ListWithGeoJSON(ctx context.Context) ([]model.PlaceGeoRow, error)
	Create(ctx context.Context, in model.PlaceInput, createdBy uint) (*model.PlaceRef, error)
	Update(ctx context.Context, id uint, in model.PlaceInput) (*model.PlaceGeoRow, error)
	DeleteWithComments(ctx context.Context, id uint) error
}

type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository creates a new place repository.
func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

// ListWithGeoJSON returns all places with their geometry rendered as GeoJSON.
func (r *placeRepository) ListWithGeoJSON(ctx context.Context) ([]model.PlaceGeoRow, error) {
	var rows []model.PlaceGeoRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, name, category, description, image_url, created_by,
		        ST_AsGeoJSON(geom) AS geometry
		 FROM places`,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a place with a point geometry built from (lng, lat).
func (r *placeRepository) Create(ctx context.Context, in model.PlaceInput, createdBy uint) (*model.PlaceRef, error) {
	var ref model.PlaceRef
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO places (name, category, description, image_url, created_by, geom)
		 VALUES (?, ?, ?, ?, ?, ST_SetSRID(ST_MakePoint(?, ?), 4326))
		 RETURNING id, name`,
		in.Name, in.Category, in.Description, in.ImageURL, createdBy, in.Lng, in.Lat,
	).Scan(&ref).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// Update replaces all writable fields including the geometry.
// Returns gorm.ErrRecordNotFound when no row matched.
func (r *placeRepository) Update(ctx context.Context, id uint, in model.PlaceInput) (*model.PlaceGeoRow, error) {
	var row model.PlaceGeoRow
	res := r.db.WithContext(ctx).Raw(
		`UPDATE places
		 SET name = ?, category = ?, description = ?, image_url = ?,
		     geom = ST_SetSRID(ST_MakePoint(?, ?), 4326)
		 WHERE id = ?
		 RETURNING id, name, category, description, image_url, created_by,
		           ST_AsGeoJSON(geom) AS geometry`,
		in.Name, in.Category, in.Description, in.ImageURL, in.Lng, in.Lat, id,
	).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// DeleteWithComments removes the place's comments and then the place itself
// in a single transaction, so a crash cannot leave the pair half-deleted.
// Deleting a nonexistent id is not an error.
func (r *placeRepository) DeleteWithComments(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("place_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Place{}, id).Error
	})
}
