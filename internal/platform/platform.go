package platform

import "slices"

// A user-facing name for a family of Apple build targets.
type Platform string

// Platforms xcpack can build bundle slices for.
const (
	IOS          Platform = "ios"
	IOSSimulator Platform = "ios-sim"
	MacOS        Platform = "macos"
)

// A Rust compiler target triple.
type Target string

// Maps each platform to the target triples that make up its slice, in
// the order their artifacts are handed to the merge step. The catalog is
// fixed configuration, constructed once and never mutated.
var catalog = map[Platform][]Target{
	IOS:          {"aarch64-apple-ios"},
	IOSSimulator: {"aarch64-apple-ios-sim", "x86_64-apple-ios"},
	MacOS:        {"aarch64-apple-darwin", "x86_64-apple-darwin"},
}

// Returns every platform in the catalog, sorted by name.
func All() []Platform {
	all := make([]Platform, 0, len(catalog))
	for p := range catalog {
		all = append(all, p)
	}
	slices.Sort(all)
	return all
}

// Reports whether the platform exists in the catalog.
func (p Platform) Known() bool {
	_, ok := catalog[p]
	return ok
}

// Returns the platform's target triples in catalog order.
//
// The returned slice is a copy; mutating it does not affect the catalog.
func (p Platform) Targets() []Target {
	return slices.Clone(catalog[p])
}

// Reports whether the platform's slice combines more than one
// architecture and therefore needs a universal merge.
func (p Platform) MultiArch() bool {
	return len(catalog[p]) > 1
}

// Returns the deduplicated union of the given platforms' target triples,
// sorted for reproducible logs.
//
// Overlapping requests never yield a duplicate target: each triple is
// built at most once per run no matter how many platforms claim it.
func Resolve(platforms []Platform) []Target {
	seen := make(map[Target]bool)
	var targets []Target
	for _, p := range platforms {
		for _, t := range catalog[p] {
			if seen[t] {
				continue
			}
			seen[t] = true
			targets = append(targets, t)
		}
	}
	slices.Sort(targets)
	return targets
}
