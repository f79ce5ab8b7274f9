package build

import (
	"context"
	"log/slog"

	"github.com/opencontainers/go-digest"

	"github.com/xcpack/xcpack/internal/crate"
	"github.com/xcpack/xcpack/internal/paths"
	"github.com/xcpack/xcpack/internal/platform"
	"github.com/xcpack/xcpack/internal/toolchain"
)

// Controls a packaging run.
type Options struct {
	Crate     *crate.Manifest     // Crate being packaged.
	Workspace paths.Workspace     // Working output area for the run.
	Platforms []platform.Platform // Requested platforms, deduplicated and sorted. Empty means all.
	Jobs      int                 // Maximum concurrent target compiles. Values below 1 mean 1.
	Archive   bool                // Zip the bundle and digest it after cleanup.
}

// Returned after a successful packaging run.
type Result struct {
	Bundle        string        // Path of the assembled bundle.
	Slices        []SliceInfo   // One entry per requested platform, in platform order.
	Archive       string        // Path of the bundle zip; empty unless Options.Archive.
	ArchiveDigest digest.Digest // Digest of the archive; empty unless Options.Archive.
}

// Describes one assembled bundle slice.
type SliceInfo struct {
	Platform platform.Platform // Platform the slice serves.
	Targets  []platform.Target // Triples whose artifacts back the slice.
	Library  string            // Library path handed to the bundler.
	Digest   digest.Digest     // Digest of the library.
}

// The external collaborators a packaging run drives. The production
// implementation is [toolchain.Toolchain]; tests substitute a fake.
type Toolchain interface {
	EnsureTarget(ctx context.Context, target platform.Target) error
	GenerateHeader(ctx context.Context) (string, error)
	Compile(ctx context.Context, target platform.Target) (string, error)
	MergeArchives(ctx context.Context, inputs []string, output string) error
	CreateBundle(ctx context.Context, slices []toolchain.Slice, output string) error
}

// Executes a packaging run against the toolchain.
//
// Stages run in strict order: header generation, toolchain support,
// per-target compiles, universal merges, bundle assembly, cleanup. The
// first failure aborts the run and leaves every intermediate artifact in
// place for inspection; cleanup happens only after a successful assembly.
func Run(ctx context.Context, tc Toolchain, opts Options) (*Result, error) {
	if len(opts.Platforms) == 0 {
		opts.Platforms = platform.All()
	}
	if opts.Jobs < 1 {
		opts.Jobs = 1
	}

	slog.Info("packaging crate",
		"crate", opts.Crate.LibName(),
		"version", opts.Crate.Package.Version,
		"platforms", opts.Platforms,
		"targets", len(platform.Resolve(opts.Platforms)),
		"jobs", opts.Jobs,
	)

	return newPipeline(tc, opts).run(ctx)
}
