package model

// Place represents a point of interest on the map.
//
// Geom is declared only so AutoMigrate creates the spatial column; reads and
// writes always go through ST_AsGeoJSON / ST_SetSRID(ST_MakePoint(...)) in
// the repository, never through this field.
type Place struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:255;not null"`
	Category    string `json:"category" gorm:"size:100"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Geom        string `json:"-" gorm:"type:geometry(Point,4326)"`
	CreatedBy   uint   `json:"created_by"`
}

// PlaceInput carries the writable fields of a place. Lat/Lng become the
// point geometry in (lng, lat) axis order.
type PlaceInput struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// PlaceRef is the minimal reference returned after creating a place.
type PlaceRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// PlaceGeoRow is a place row with its geometry rendered by ST_AsGeoJSON.
type PlaceGeoRow struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	CreatedBy   uint   `json:"created_by"`
	Geometry    string `json:"geometry"`
}
