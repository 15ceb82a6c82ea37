// Package synth implements the listing synthesizer: it consumes the
// combined image catalog and generates an internally consistent listing
// catalog using templated text and weighted randomness.
package synth

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/loftlist/seedkit/internal/domain"
	"github.com/loftlist/seedkit/internal/util"
)

const (
	maxImagesPerListing = 5
	maxStock            = 8
	featuredProbability = 0.10
	backdateWindow      = 365 * 24 * time.Hour
)

// recordValidator checks listings before they enter the artifact.
type recordValidator interface {
	Validate(s any) error
}

// Generator synthesizes the listing catalog from the image catalog.
// All randomness flows through the single rng so a fixed seed reproduces
// the same catalog structure.
type Generator struct {
	rng       *rand.Rand
	validator recordValidator
	logger    *slog.Logger
	dataDir   string

	now func() time.Time
}

// New creates a generator reading and writing artifacts under dataDir.
// A zero seed falls back to the current time.
func New(seed int64, validator recordValidator, logger *slog.Logger, dataDir string) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:       rand.New(rand.NewSource(seed)),
		validator: validator,
		logger:    logger,
		dataDir:   dataDir,
		now:       time.Now,
	}
}

// Result summarizes a completed synthesis run.
type Result struct {
	TotalListings int
	TotalImages   int
	PriceRange    domain.PriceRange
}

// Run loads the combined image catalog, synthesizes listings per
// category, and writes the listing catalog artifact. A missing or
// malformed catalog is a fatal error; there is no partial output.
func (g *Generator) Run(_ context.Context) (*Result, error) {
	images, err := g.loadImages()
	if err != nil {
		return nil, err
	}

	groups, order := groupByCategory(images)

	var listings []domain.Listing
	for _, category := range order {
		group := groups[category]
		for len(group) > 0 {
			window := 1 + g.rng.Intn(min(maxImagesPerListing, len(group)))
			listing, err := g.synthesize(category, group[:window])
			if err != nil {
				return nil, fmt.Errorf("synthesize %s listing: %w", category, err)
			}
			listings = append(listings, listing)
			group = group[window:]
		}
	}

	catalog := domain.ListingCatalog{
		Meta: domain.ListingCatalogMeta{
			TotalListings: len(listings),
			TotalImages:   len(images),
			Categories:    order,
			GeneratedAt:   g.now(),
			PriceRange:    observedPriceRange(listings),
		},
		Listings: listings,
	}

	path := filepath.Join(g.dataDir, domain.ListingCatalogFilename)
	if err := util.WriteJSON(path, catalog); err != nil {
		return nil, err
	}

	g.logger.Info("listing catalog written",
		"path", path,
		"listings", len(listings),
		"images", len(images),
	)

	return &Result{
		TotalListings: len(listings),
		TotalImages:   len(images),
		PriceRange:    catalog.Meta.PriceRange,
	}, nil
}

// loadImages reads the combined image catalog and rejects catalogs that
// are unreadable, missing the images field, or empty.
func (g *Generator) loadImages() ([]domain.ImageRecord, error) {
	path := filepath.Join(g.dataDir, domain.ImageCatalogFilename)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image catalog: %w", err)
	}
	defer file.Close()

	// Images is a pointer so a structurally missing field is
	// distinguishable from an empty one.
	var catalog struct {
		Images *[]domain.ImageRecord `json:"images"`
	}
	if err := json.UnmarshalRead(file, &catalog); err != nil {
		return nil, fmt.Errorf("parse image catalog: %w", err)
	}
	if catalog.Images == nil {
		return nil, fmt.Errorf("image catalog %s has no images field", path)
	}
	if len(*catalog.Images) == 0 {
		return nil, fmt.Errorf("image catalog %s is empty", path)
	}
	return *catalog.Images, nil
}

// groupByCategory partitions images by category, preserving catalog order
// both across groups (first appearance) and within each group.
func groupByCategory(images []domain.ImageRecord) (map[domain.Category][]domain.ImageRecord, []domain.Category) {
	groups := make(map[domain.Category][]domain.ImageRecord)
	var order []domain.Category
	for _, img := range images {
		if _, seen := groups[img.Category]; !seen {
			order = append(order, img.Category)
		}
		groups[img.Category] = append(groups[img.Category], img)
	}
	return groups, order
}

// synthesize builds one listing from a same-category window of images.
func (g *Generator) synthesize(category domain.Category, window []domain.ImageRecord) (domain.Listing, error) {
	condition := drawCondition(g.rng)
	materials := pickMaterials(g.rng, category)
	city := domain.Cities[g.rng.Intn(len(domain.Cities))]

	title := makeTitle(g.rng, category, materials[0])
	slug, err := util.UniqueSlug(title)
	if err != nil {
		return domain.Listing{}, err
	}

	id, err := gonanoid.New()
	if err != nil {
		return domain.Listing{}, fmt.Errorf("generate listing id: %w", err)
	}

	imageURLs := make([]string, len(window))
	for i, img := range window {
		imageURLs[i] = img.URL
	}

	listing := domain.Listing{
		ID:              "lst-" + id,
		Title:           title,
		Slug:            slug,
		Description:     makeDescription(g.rng, title, city, materials[0], condition),
		PriceMinorUnits: makePrice(g.rng, category, condition),
		Currency:        domain.Currency,
		City:            city,
		Condition:       condition,
		Materials:       materials,
		Dimensions:      makeDimensions(g.rng, category),
		Images:          imageURLs,
		Category:        category,
		Tags:            collectTags(window, category, materials, condition),
		Stock:           1 + g.rng.Intn(maxStock),
		Featured:        g.rng.Float64() < featuredProbability,
		CreatedAt:       g.now().Add(-time.Duration(g.rng.Int63n(int64(backdateWindow)))),
	}

	if err := g.validator.Validate(listing); err != nil {
		return domain.Listing{}, err
	}
	return listing, nil
}

// collectTags unions image tags, the category, materials, and condition,
// deduplicated in first-seen order.
func collectTags(window []domain.ImageRecord, category domain.Category, materials []string, condition domain.Condition) []string {
	seen := make(map[string]bool)
	var tags []string
	add := func(tag string) {
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	for _, img := range window {
		for _, tag := range img.Tags {
			add(tag)
		}
	}
	add(string(category))
	for _, m := range materials {
		add(m)
	}
	add(string(condition))

	return tags
}

// observedPriceRange scans listings for the min and max price.
func observedPriceRange(listings []domain.Listing) domain.PriceRange {
	pr := domain.PriceRange{Currency: domain.Currency}
	for i, l := range listings {
		if i == 0 || l.PriceMinorUnits < pr.Min {
			pr.Min = l.PriceMinorUnits
		}
		if l.PriceMinorUnits > pr.Max {
			pr.Max = l.PriceMinorUnits
		}
	}
	return pr
}
