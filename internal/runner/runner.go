// Package runner orchestrates batch extraction: root discovery, cache
// consultation, per-root extraction, and run statistics.
package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/docsurf/docsurf/internal/cache"
	"github.com/docsurf/docsurf/internal/config"
	"github.com/docsurf/docsurf/internal/discovery"
	"github.com/docsurf/docsurf/internal/extract"
	"github.com/docsurf/docsurf/internal/lang"
)

// Reporter receives progress callbacks during a run. Implementations
// must tolerate being called from the run's goroutine only.
type Reporter interface {
	OnDiscoveryComplete(roots int)
	OnRootExtracted(location string, cached bool)
	OnRunComplete(stats *RunStats)
}

// RunStats summarizes one extraction run.
type RunStats struct {
	RunID       string
	Roots       int
	Cached      int
	Diagnostics int
	Duration    time.Duration
}

// Runner extracts every discovered root under a project directory.
type Runner struct {
	rootDir   string
	cfg       *config.Config
	discovery *discovery.FileDiscovery
	cache     *cache.Cache
}

// New creates a runner for rootDir using the given configuration.
func New(rootDir string, cfg *config.Config) (*Runner, error) {
	fd, err := discovery.NewFileDiscovery(rootDir, cfg.Paths.Sources, cfg.Paths.Ignore)
	if err != nil {
		return nil, fmt.Errorf("failed to compile source patterns: %w", err)
	}

	r := &Runner{rootDir: rootDir, cfg: cfg, discovery: fd}

	if cfg.Cache.Enabled {
		c, err := cache.New(cfg.Cache.Capacity)
		if err != nil {
			return nil, fmt.Errorf("failed to create extraction cache: %w", err)
		}
		r.cache = c
	}
	return r, nil
}

// Options returns the extraction options derived from configuration.
func (r *Runner) Options() extract.Options {
	return extract.Options{
		FilterInternal:          r.cfg.Extract.FilterInternal,
		FilterUnderscoreExports: r.cfg.Extract.FilterUnderscoreExports,
	}
}

// Run discovers roots and extracts each one. Every run gets a fresh
// resolver so re-runs observe current file contents; results cached from
// earlier runs are reused when a root's mtime and options are unchanged.
func (r *Runner) Run(ctx context.Context, reporter Reporter) ([]*extract.Result, *RunStats, error) {
	start := time.Now()
	stats := &RunStats{RunID: uuid.NewString()}

	roots, err := r.discovery.DiscoverRoots()
	if err != nil {
		return nil, nil, fmt.Errorf("root discovery failed: %w", err)
	}
	stats.Roots = len(roots)
	if reporter != nil {
		reporter.OnDiscoveryComplete(len(roots))
	}

	resolver := lang.NewResolver(r.rootDir)
	defer resolver.Close()

	docs := extract.NewDocFileLookup(r.rootDir, r.cfg.Docs.SiblingExt, r.cfg.Docs.DefaultName)
	extractor := extract.NewExtractor(resolver, docs)
	opts := r.Options()

	results := make([]*extract.Result, 0, len(roots))
	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		res, cached, err := r.extractRoot(extractor, root, opts)
		if err != nil {
			// A root that fails to load is reported and skipped; the
			// remaining roots still extract.
			results = append(results, &extract.Result{
				Module: &extract.Module{Location: root, Exports: []extract.Export{}},
				Diagnostics: []extract.Diagnostic{{
					Code:    extract.DiagDanglingReexport,
					File:    root,
					Message: err.Error(),
				}},
			})
			stats.Diagnostics++
			continue
		}
		if cached {
			stats.Cached++
		}
		stats.Diagnostics += len(res.Diagnostics)
		results = append(results, res)
		if reporter != nil {
			reporter.OnRootExtracted(root, cached)
		}
	}

	stats.Duration = time.Since(start)
	if reporter != nil {
		reporter.OnRunComplete(stats)
	}
	return results, stats, nil
}

// extractRoot extracts one root, consulting the cache first.
func (r *Runner) extractRoot(extractor *extract.Extractor, root string, opts extract.Options) (*extract.Result, bool, error) {
	var modTime time.Time
	if info, err := os.Stat(filepath.Join(r.rootDir, filepath.FromSlash(root))); err == nil {
		modTime = info.ModTime()
	}

	if r.cache != nil {
		if res, ok := r.cache.Get(root, modTime, opts); ok {
			return res, true, nil
		}
	}

	res, err := extractor.Extract(root, opts)
	if err != nil {
		return nil, false, err
	}

	if r.cache != nil {
		r.cache.Put(root, modTime, opts, res)
	}
	return res, false, nil
}

// InvalidateAll drops every cached extraction. Called by watch mode when
// files change, since a change anywhere can affect any root through
// re-export chains.
func (r *Runner) InvalidateAll() {
	if r.cache != nil {
		r.cache.Clear()
	}
}

// Close releases the runner's resources.
func (r *Runner) Close() {
	if r.cache != nil {
		r.cache.Close()
		r.cache = nil
	}
}
