package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/xcpack/xcpack/internal"
	"github.com/xcpack/xcpack/internal/build"
	"github.com/xcpack/xcpack/internal/crate"
	"github.com/xcpack/xcpack/internal/paths"
	"github.com/xcpack/xcpack/internal/platform"
	"github.com/xcpack/xcpack/internal/toolchain"
)

// Represents the 'xcpack build' command. It is the default command, so
// platform names can be given directly: "xcpack ios macos".
type BuildCmd struct {
	Platforms    []string `arg:"" optional:"" help:"Platforms to package (ios, ios-sim, macos). Defaults to all."`
	ManifestPath string   `help:"Path to the crate's Cargo.toml." default:"Cargo.toml" placeholder:"PATH"`
	Workdir      string   `short:"w" help:"Working output area for the run." default:"${workdir}" placeholder:"DIR"`
	Jobs         int      `short:"j" help:"Maximum concurrent target compiles." default:"1"`
	Archive      bool     `help:"Zip the bundle after assembly and report its digest."`
	DryRun       bool     `help:"Print the resolved plan without building."`
}

// Executes the build command.
//
// Platform tokens are validated before anything touches the filesystem:
// the help token exits through the usage path, and an unknown token is
// rejected with the same exit code after naming itself. A valid request
// loads the crate manifest and hands off to the packaging pipeline.
func (c *BuildCmd) Run(ctx context.Context, kongCtx *kong.Context) error {
	selected, err := platform.Select(c.Platforms)
	if err != nil {
		if !errors.Is(err, platform.ErrHelp) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", internal.Name, err)
		}
		kongCtx.PrintUsage(false)
		os.Exit(ExitUsage)
	}

	manifest, err := crate.Load(c.ManifestPath)
	if err != nil {
		return err
	}

	opts := build.Options{
		Crate:     manifest,
		Workspace: workspace(manifest, c.Workdir),
		Platforms: selected,
		Jobs:      c.Jobs,
		Archive:   c.Archive,
	}

	if c.DryRun {
		printPlan(os.Stdout, build.NewPlan(opts))
		return nil
	}

	tc := toolchain.New(opts.Workspace, manifest, openTranscript())
	result, err := build.Run(ctx, tc, opts)
	if err != nil {
		return err
	}

	for _, s := range result.Slices {
		slog.Info("slice ready", "platform", s.Platform, "digest", s.Digest)
	}
	slog.Info("bundle ready", "path", result.Bundle)
	if result.Archive != "" {
		slog.Info("archive ready", "path", result.Archive, "digest", result.ArchiveDigest)
	}
	return nil
}

// Resolves the workspace root. A relative workdir is anchored at the
// crate root, so runs behave the same from any working directory.
func workspace(manifest *crate.Manifest, workdir string) paths.Workspace {
	if !filepath.IsAbs(workdir) {
		workdir = filepath.Join(manifest.Dir(), workdir)
	}
	return paths.Workspace{Root: workdir}
}

// Prints the resolved plan in a stable, human-readable layout.
func printPlan(w io.Writer, plan build.Plan) {
	fmt.Fprintf(w, "bundle   %s\n", plan.Bundle)
	for _, pp := range plan.Platforms {
		names := make([]string, len(pp.Targets))
		for i, target := range pp.Targets {
			names[i] = string(target)
		}
		line := strings.Join(names, " + ")
		if pp.Universal {
			line += "  (universal)"
		}
		fmt.Fprintf(w, "%-8s %s\n", string(pp.Platform), line)
	}
	fmt.Fprintf(w, "targets  %d\n", len(plan.Targets))
}

// Opens the append-only transcript log under the user's state directory.
//
// The transcript is best-effort diagnostics; when it cannot be opened
// the run proceeds without one. The handle stays open for the life of
// the process.
func openTranscript() io.Writer {
	path := paths.TranscriptLog()
	if err := os.MkdirAll(filepath.Dir(path), paths.DefaultDirMode); err != nil {
		slog.Warn("transcript log unavailable", "path", path, "error", err)
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, paths.DefaultFileMode)
	if err != nil {
		slog.Warn("transcript log unavailable", "path", path, "error", err)
		return nil
	}
	return f
}
