package domain

import (
	"fmt"
	"time"
)

// Artifact file names, relative to the configured data directory.
const (
	ImageCatalogFilename   = "image-catalog.json"
	ListingCatalogFilename = "listing-catalog.json"
	CheckpointFilename     = "acquisition-progress.json"
)

// SourceCatalogFilename is the per-provider re-materialization of the
// image catalog, e.g. "image-catalog.unsplash.json".
func SourceCatalogFilename(source Source) string {
	return fmt.Sprintf("image-catalog.%s.json", source)
}

// LicenseNotice is embedded in every image catalog so downstream
// consumers carry the provider attribution requirements along.
const LicenseNotice = "Images sourced from Unsplash and Pexels under their respective licenses. " +
	"Attribution metadata is included per image and must be preserved when displayed."

// ImageCatalogMeta summarizes an image catalog artifact.
type ImageCatalogMeta struct {
	TotalImages      int              `json:"totalImages"`
	PerSourceCounts  map[Source]int   `json:"perSourceCounts"`
	PerCategoryCount map[Category]int `json:"perCategoryCounts"`
	GeneratedAt      time.Time        `json:"generatedAt"`
	LicenseNotice    string           `json:"licenseNotice"`
}

// ImageCatalog is the artifact produced by the acquisition engine and
// consumed by the listing synthesizer.
type ImageCatalog struct {
	Meta   ImageCatalogMeta `json:"meta"`
	Images []ImageRecord    `json:"images"`
}

// PriceRange is the observed min/max price across a listing catalog.
type PriceRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// ListingCatalogMeta summarizes a listing catalog artifact.
type ListingCatalogMeta struct {
	TotalListings int        `json:"totalListings"`
	TotalImages   int        `json:"totalImages"`
	Categories    []Category `json:"categories"`
	GeneratedAt   time.Time  `json:"generatedAt"`
	PriceRange    PriceRange `json:"priceRange"`
}

// ListingCatalog is the final artifact handed to the database loader.
type ListingCatalog struct {
	Meta     ListingCatalogMeta `json:"meta"`
	Listings []Listing          `json:"listings"`
}
