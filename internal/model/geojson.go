package model

import "encoding/json"

// FeatureCollection is the GeoJSON document returned by the places listing.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature pairs a raw geometry (as produced by ST_AsGeoJSON) with the
// place's descriptive properties.
type Feature struct {
	Type       string          `json:"type"`
	Geometry   json.RawMessage `json:"geometry"`
	Properties PlaceProperties `json:"properties"`
}

// PlaceProperties is the property bag of a place Feature.
type PlaceProperties struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}
