package toolchain

import (
	"context"

	"github.com/xcpack/xcpack/internal/platform"
)

// Installs rustup's standard library support for a target triple.
//
// Failure here is advisory, not fatal: tier-3 targets and locally
// provisioned toolchains compile fine without a rustup-managed standard
// library, so callers log a warning and proceed. A genuinely missing
// toolchain surfaces as a hard error at compile time instead.
func (t *Toolchain) EnsureTarget(ctx context.Context, target platform.Target) error {
	return t.invoke(ctx, "rustup", "target", "add", string(target))
}
