package build

import "github.com/xcpack/xcpack/internal/platform"

// A resolved packaging plan: what a run would do, computed without side
// effects.
type Plan struct {
	Platforms []PlatformPlan    // One entry per requested platform, in platform order.
	Targets   []platform.Target // Deduplicated union of targets across platforms.
	Bundle    string            // Path the bundle would be assembled at.
}

// Describes one requested platform's slice of the plan.
type PlatformPlan struct {
	Platform  platform.Platform // Platform the slice serves.
	Targets   []platform.Target // Triples compiled for the slice.
	Universal bool              // Whether the slice needs a universal merge.
}

// Resolves the plan for the given options.
//
// Resolution mirrors a real run exactly, including the empty-platforms
// default, but invokes no tool and touches no file.
func NewPlan(opts Options) Plan {
	if len(opts.Platforms) == 0 {
		opts.Platforms = platform.All()
	}

	plan := Plan{
		Targets: platform.Resolve(opts.Platforms),
		Bundle:  opts.Workspace.BundlePath(opts.Crate.BundleName()),
	}
	for _, p := range opts.Platforms {
		plan.Platforms = append(plan.Platforms, PlatformPlan{
			Platform:  p,
			Targets:   p.Targets(),
			Universal: p.MultiArch(),
		})
	}
	return plan
}
