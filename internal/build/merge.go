package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xcpack/xcpack/internal/paths"
	"github.com/xcpack/xcpack/internal/platform"
)

// Produces the library backing each requested platform's slice.
//
// Multi-architecture platforms get a universal merge of all their
// per-target artifacts; single-architecture platforms reuse their sole
// compile artifact unchanged. Slices come back in platform order, one
// per requested platform, each with the digest of its library.
func (p *pipeline) mergeSlices(ctx context.Context) ([]SliceInfo, error) {
	slices := make([]SliceInfo, 0, len(p.platforms))

	for _, plat := range p.platforms {
		library, err := p.platformLibrary(ctx, plat)
		if err != nil {
			return nil, err
		}

		dgst, err := digestFile(library)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
		}

		slices = append(slices, SliceInfo{
			Platform: plat,
			Targets:  plat.Targets(),
			Library:  library,
			Digest:   dgst,
		})
	}
	return slices, nil
}

// Returns the library path serving one platform, merging architecture
// variants when the platform has more than one.
//
// The merge always covers the platform's full architecture set; there
// is no way to request a partial universal library.
func (p *pipeline) platformLibrary(ctx context.Context, plat platform.Platform) (string, error) {
	targets := plat.Targets()
	if len(targets) == 1 {
		return p.artifacts[targets[0]], nil
	}

	inputs := make([]string, len(targets))
	for i, target := range targets {
		inputs[i] = p.artifacts[target]
	}

	output := p.ws.UniversalPath(string(plat), p.crate.StaticlibFile())
	if err := os.MkdirAll(filepath.Dir(output), paths.DefaultDirMode); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	slog.Info("merging architectures", "platform", plat, "inputs", len(inputs))
	if err := p.tc.MergeArchives(ctx, inputs, output); err != nil {
		return "", fmt.Errorf("%w: platform %s: %w", ErrMerge, plat, err)
	}
	return output, nil
}
