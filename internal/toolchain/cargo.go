package toolchain

import (
	"context"
	"fmt"
	"os"

	"github.com/xcpack/xcpack/internal/platform"
)

// Compiles the crate's static library for one target triple and returns
// the artifact path.
//
// cargo is pointed at the workspace target directory so every byte of
// compile output lands under the workspace root and is subject to
// cleanup. A cargo success without the expected artifact on disk is
// treated as a failure; it usually means the crate type changed under us.
func (t *Toolchain) Compile(ctx context.Context, target platform.Target) (string, error) {
	err := t.invoke(ctx, "cargo",
		"build",
		"--release",
		"--manifest-path", t.crate.Path(),
		"--target-dir", t.ws.TargetDir(),
		"--target", string(target),
	)
	if err != nil {
		return "", err
	}

	artifact := t.ws.ArtifactPath(string(target), t.crate.StaticlibFile())
	if _, err := os.Stat(artifact); err != nil {
		return "", fmt.Errorf("%w: cargo reported success but %s is missing", ErrTool, artifact)
	}
	return artifact, nil
}
