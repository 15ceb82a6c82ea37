// Package main runs the image acquisition stage of the seed pipeline.
//
// It queries the configured photo providers across the furniture category
// taxonomy and writes the image catalog artifacts. Progress is
// checkpointed after every page, so an interrupted run resumes where it
// left off.
//
// Usage:
//
//	UNSPLASH_ACCESS_KEY=... PEXELS_API_KEY=... fetch-images [target]
//
// The optional positional argument is the total image count to collect
// (default 800).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/loftlist/seedkit/internal/acquire"
	"github.com/loftlist/seedkit/internal/checkpoint"
	"github.com/loftlist/seedkit/internal/config"
	"github.com/loftlist/seedkit/internal/domain"
	"github.com/loftlist/seedkit/internal/logger"
	"github.com/loftlist/seedkit/internal/provider"
	"github.com/loftlist/seedkit/internal/provider/pexels"
	"github.com/loftlist/seedkit/internal/provider/unsplash"
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

	target := acquire.DefaultTarget
	if arg := flag.Arg(0); arg != "" {
		target, err = strconv.Atoi(arg)
		if err != nil || target <= 0 {
			log.Fatal("invalid target image count", "arg", arg)
		}
	}

	if !cfg.HasAnyProvider() {
		log.Fatal("no photo provider credentials configured; set UNSPLASH_ACCESS_KEY and/or PEXELS_API_KEY")
	}

	var searchers []provider.Searcher
	if cfg.Providers.UnsplashAccessKey != "" {
		searchers = append(searchers, unsplash.New(cfg.Providers.UnsplashAccessKey, log.Logger))
	}
	if cfg.Providers.PexelsAPIKey != "" {
		searchers = append(searchers, pexels.New(cfg.Providers.PexelsAPIKey, log.Logger))
	}

	chain := provider.NewChain(log.Logger, searchers...)
	log.Info("providers configured", "sources", chain.Sources(), "target", target)

	store := checkpoint.New(filepath.Join(cfg.Data.Dir, domain.CheckpointFilename))
	engine := acquire.New(chain, store, validation.New(), log.Logger, cfg.Data.Dir)

	// A terminated run leaves the checkpoint for the next invocation.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := engine.Run(ctx, target)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("acquisition interrupted; checkpoint retained for resume")
			os.Exit(0)
		}
		log.Fatal("acquisition failed", "error", err)
	}

	log.Info("acquisition complete",
		"totalImages", result.TotalImages,
		"perSource", result.PerSource,
		"dataDir", cfg.Data.Dir,
	)
}
