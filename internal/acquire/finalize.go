package acquire

import (
	"path/filepath"

	"github.com/loftlist/seedkit/internal/domain"
	"github.com/loftlist/seedkit/internal/util"
)

// finalize deduplicates the accumulated images, writes the combined and
// per-source catalog artifacts, and clears the checkpoint.
func (e *Engine) finalize(progress *domain.AcquisitionProgress) (*Result, error) {
	images := Dedupe(progress.AccumulatedImages)

	// Drop records that would poison the artifact; the run is not worth
	// failing over a single malformed provider response.
	valid := images[:0:0]
	for _, rec := range images {
		if err := e.validator.Validate(rec); err != nil {
			e.logger.Warn("dropping invalid image record",
				"key", rec.Key(),
				"error", err,
			)
			continue
		}
		valid = append(valid, rec)
	}
	images = valid

	perSource := make(map[domain.Source]int)
	perCategory := make(map[domain.Category]int)
	bySource := make(map[domain.Source][]domain.ImageRecord)
	for _, rec := range images {
		perSource[rec.Source]++
		perCategory[rec.Category]++
		bySource[rec.Source] = append(bySource[rec.Source], rec)
	}

	combined := domain.ImageCatalog{
		Meta: domain.ImageCatalogMeta{
			TotalImages:      len(images),
			PerSourceCounts:  perSource,
			PerCategoryCount: perCategory,
			GeneratedAt:      e.now(),
			LicenseNotice:    domain.LicenseNotice,
		},
		Images: images,
	}
	if err := util.WriteJSON(filepath.Join(e.dataDir, domain.ImageCatalogFilename), combined); err != nil {
		return nil, err
	}

	for source, sourceImages := range bySource {
		catalog := domain.ImageCatalog{
			Meta: domain.ImageCatalogMeta{
				TotalImages:      len(sourceImages),
				PerSourceCounts:  map[domain.Source]int{source: len(sourceImages)},
				PerCategoryCount: countByCategory(sourceImages),
				GeneratedAt:      combined.Meta.GeneratedAt,
				LicenseNotice:    domain.LicenseNotice,
			},
			Images: sourceImages,
		}
		if err := util.WriteJSON(filepath.Join(e.dataDir, domain.SourceCatalogFilename(source)), catalog); err != nil {
			return nil, err
		}
	}

	if err := e.store.Clear(); err != nil {
		return nil, err
	}

	e.logger.Info("acquisition finalized",
		"total", len(images),
		"sources", len(bySource),
	)

	return &Result{
		TotalImages: len(images),
		PerSource:   perSource,
		PerCategory: perCategory,
	}, nil
}

func countByCategory(images []domain.ImageRecord) map[domain.Category]int {
	counts := make(map[domain.Category]int)
	for _, rec := range images {
		counts[rec.Category]++
	}
	return counts
}
