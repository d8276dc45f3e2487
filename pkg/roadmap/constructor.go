// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package roadmap

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/petar-djukic/repo-roadmap/internal/detect"
	"github.com/petar-djukic/repo-roadmap/internal/output"
	"github.com/petar-djukic/repo-roadmap/internal/resolve"
	internalroadmap "github.com/petar-djukic/repo-roadmap/internal/roadmap"
	"github.com/petar-djukic/repo-roadmap/internal/tree"
)

const (
	defaultInput  = "repository.txt"
	defaultOutput = "roadmap-tree.json"
)

// New validates the config and returns a ready-to-use Generator. It does not
// read the archive; that happens in Generate.
func New(cfg Config) (Generator, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	applyDefaults(&cfg)

	format, _ := output.ParseFormat(cfg.Format)
	detector, err := newDetector(cfg.Detector, cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	mode := tree.Unified
	if cfg.Compat {
		mode = tree.Compat
	}

	runner := internalroadmap.NewRunner(internalroadmap.Deps{
		Input:       cfg.Input,
		Output:      cfg.Output,
		Format:      format,
		Detector:    detector,
		Mode:        mode,
		MaxDepth:    cfg.MaxDepth,
		Excluded:    cfg.Excluded,
		Diagnostics: cfg.Diagnostics,
		Logger:      cfg.Logger,
	})

	return &generatorAdapter{runner: runner}, nil
}

// generatorAdapter adapts internal/roadmap.Runner to the public Generator
// interface.
type generatorAdapter struct {
	runner *internalroadmap.Runner
}

func (a *generatorAdapter) Generate(ctx context.Context) (*Result, error) {
	return convertResult(a.runner.Run(ctx))
}

func (a *generatorAdapter) Analyze(ctx context.Context) (*Analysis, error) {
	ia, err := a.runner.Analyze(ctx)
	if err != nil {
		return nil, err
	}
	return &Analysis{Repo: ia.Repo, Roadmap: ia.Roadmap, Forest: ia.Forest}, nil
}

func (a *generatorAdapter) Watch(ctx context.Context, debounce time.Duration, fn ResultFunc) error {
	return a.runner.Watch(ctx, debounce, func(ir *internalroadmap.RunResult, err error) {
		fn(convertResult(ir, err))
	})
}

func convertResult(ir *internalroadmap.RunResult, err error) (*Result, error) {
	if ir == nil {
		return nil, err
	}
	return &Result{
		Files:    ir.Files,
		Entries:  ir.Entries,
		Roots:    ir.Roots,
		Output:   ir.Output,
		Forest:   ir.Forest,
		Duration: ir.Duration,
	}, err
}

var validate = validator.New()

// validateConfig rejects values that cannot be defaulted.
func validateConfig(cfg Config) error {
	return validate.Struct(cfg)
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Input == "" {
		cfg.Input = defaultInput
	}
	if cfg.Output == "" {
		cfg.Output = defaultOutput
	}
	if cfg.Detector == "" {
		cfg.Detector = DetectorPattern
	}
	if cfg.Excluded == nil {
		cfg.Excluded = resolve.DefaultExcluded
	}
}

func newDetector(name string, cacheSize int) (detect.Detector, error) {
	var d detect.Detector = detect.NewPattern()
	if name == DetectorSyntax {
		d = detect.NewSyntax()
	}
	if cacheSize < 0 {
		return d, nil
	}
	return detect.NewCached(d, cacheSize)
}
