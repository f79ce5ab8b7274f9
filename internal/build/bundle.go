package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xcpack/xcpack/internal/toolchain"
)

// Assembles the final bundle from the requested platforms' slices.
//
// Exactly one slice per requested platform goes in, no more. A bundle
// left behind by a previous run is removed first, since the bundler
// refuses to overwrite an existing container. A bundler success without
// output on disk is treated as a failure.
func (p *pipeline) assemble(ctx context.Context, infos []SliceInfo) (string, error) {
	bundle := p.ws.BundlePath(p.crate.BundleName())

	if err := os.RemoveAll(bundle); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	slices := make([]toolchain.Slice, len(infos))
	for i, info := range infos {
		slices[i] = toolchain.Slice{Library: info.Library, Headers: p.headers}
	}

	slog.Info("assembling bundle", "bundle", bundle, "slices", len(slices))
	if err := p.tc.CreateBundle(ctx, slices, bundle); err != nil {
		return "", fmt.Errorf("%w: %w", ErrAssemble, err)
	}
	if _, err := os.Stat(bundle); err != nil {
		return "", fmt.Errorf("%w: bundler reported success but %s is missing", ErrAssemble, bundle)
	}
	return bundle, nil
}

// Removes every top-level workspace entry except the bundle.
//
// Runs only after a successful assembly; a failed run keeps all of its
// intermediate artifacts. Cleaning an already-clean or missing workspace
// is a no-op.
func (p *pipeline) clean(bundle string) error {
	entries, err := os.ReadDir(p.ws.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	keep := filepath.Base(bundle)
	for _, entry := range entries {
		if entry.Name() == keep {
			continue
		}
		slog.Debug("removing intermediate", "path", entry.Name())
		if err := os.RemoveAll(filepath.Join(p.ws.Root, entry.Name())); err != nil {
			return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
		}
	}
	return nil
}
