package build

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/xcpack/xcpack/internal/platform"
)

// Ensures toolchain support for every resolved target before any
// compile starts.
//
// An install failure is logged and ignored; rustup cannot provision
// tier-3 targets, so the compile stage decides whether a target is
// actually buildable.
func (p *pipeline) ensureTargets(ctx context.Context, targets []platform.Target) {
	for _, target := range targets {
		if err := p.tc.EnsureTarget(ctx, target); err != nil {
			slog.Warn("toolchain support unavailable, attempting build anyway",
				"target", target,
				"error", err,
			)
		}
	}
}

// Compiles every resolved target, running at most jobs compiles at once.
//
// The default of one job compiles targets sequentially in resolver
// order. The first failure cancels outstanding compiles and aborts the
// run; artifacts already produced stay on disk. Merging never starts
// until every compile has finished.
func (p *pipeline) compileTargets(ctx context.Context, targets []platform.Target) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.jobs)

	var mu sync.Mutex
	for _, target := range targets {
		g.Go(func() error {
			slog.Info("compiling target", "target", target)

			artifact, err := p.tc.Compile(ctx, target)
			if err != nil {
				return fmt.Errorf("%w: target %s: %w", ErrCompile, target, err)
			}

			mu.Lock()
			p.artifacts[target] = artifact
			mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}
