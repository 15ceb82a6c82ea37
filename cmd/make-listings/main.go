// Package main runs the listing synthesis stage of the seed pipeline.
//
// It reads the combined image catalog produced by fetch-images and
// generates the listing catalog consumed by the database loader. Pass
// --seed (or set SEED) for reproducible output.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/loftlist/seedkit/internal/config"
	"github.com/loftlist/seedkit/internal/logger"
	"github.com/loftlist/seedkit/internal/synth"
	"github.com/loftlist/seedkit/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Environment: cfg.App.Environment,
		Level:       logger.ParseLevel(cfg.Logger.Level),
	})

	generator := synth.New(cfg.Generator.Seed, validation.New(), log.Logger, cfg.Data.Dir)

	result, err := generator.Run(context.Background())
	if err != nil {
		log.Fatal("listing synthesis failed", "error", err)
	}

	log.Info("synthesis complete",
		"listings", result.TotalListings,
		"images", result.TotalImages,
		"minPrice", result.PriceRange.Min,
		"maxPrice", result.PriceRange.Max,
	)
}
