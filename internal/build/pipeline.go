package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xcpack/xcpack/internal/crate"
	"github.com/xcpack/xcpack/internal/paths"
	"github.com/xcpack/xcpack/internal/platform"
)

// Holds shared state for the stages of one packaging run.
type pipeline struct {
	tc        Toolchain           // Toolchain the stages drive.
	crate     *crate.Manifest     // Crate being packaged.
	ws        paths.Workspace     // Workspace every path derives from.
	platforms []platform.Platform // Requested platforms, deduplicated and sorted.
	jobs      int                 // Maximum concurrent target compiles.
	archive   bool                // Zip the bundle after cleanup.

	headers   string                     // Directory of the generated public header, shared by every slice.
	artifacts map[platform.Target]string // Compile artifact per built triple.
}

// Creates a new [pipeline] from the given options.
func newPipeline(tc Toolchain, opts Options) *pipeline {
	return &pipeline{
		tc:        tc,
		crate:     opts.Crate,
		ws:        opts.Workspace,
		platforms: opts.Platforms,
		jobs:      opts.Jobs,
		archive:   opts.Archive,
		artifacts: make(map[platform.Target]string),
	}
}

// Runs all stages of the packaging run in order.
//
// Platforms are resolved to their target triples up front, so the set of
// compiles is fixed before any tool runs. Nothing is removed from the
// workspace until the bundle has been assembled and verified.
func (p *pipeline) run(ctx context.Context) (*Result, error) {
	targets := platform.Resolve(p.platforms)

	if err := p.prepare(); err != nil {
		return nil, err
	}
	if err := p.generateHeader(ctx); err != nil {
		return nil, err
	}
	p.ensureTargets(ctx, targets)
	if err := p.compileTargets(ctx, targets); err != nil {
		return nil, err
	}

	slices, err := p.mergeSlices(ctx)
	if err != nil {
		return nil, err
	}

	bundle, err := p.assemble(ctx, slices)
	if err != nil {
		return nil, err
	}

	if err := p.clean(bundle); err != nil {
		return nil, err
	}

	result := &Result{Bundle: bundle, Slices: slices}
	if p.archive {
		archive, dgst, err := p.archiveBundle(bundle)
		if err != nil {
			return nil, err
		}
		result.Archive = archive
		result.ArchiveDigest = dgst
	}
	return result, nil
}

// Creates the workspace directories the first stages write into. cargo
// manages its own target directory, so only the root and the header
// output directory are needed here.
func (p *pipeline) prepare() error {
	for _, dir := range []string{p.ws.Root, p.ws.IncludeDir()} {
		if err := os.MkdirAll(dir, paths.DefaultDirMode); err != nil {
			return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
		}
	}
	return nil
}

// Generates the shared public header, once, before any target builds.
//
// Every slice of the bundle carries the same header, so a header failure
// aborts the run before any compile starts.
func (p *pipeline) generateHeader(ctx context.Context) error {
	slog.Info("generating header", "crate", p.crate.LibName())

	header, err := p.tc.GenerateHeader(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHeader, err)
	}

	p.headers = filepath.Dir(header)
	return nil
}
