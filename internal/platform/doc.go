// Defines the fixed catalog of buildable Apple platforms and resolves
// user-requested platform names into the Rust target triples each
// bundle slice needs.
//
// The catalog is process-wide fixed data: ios builds a single device
// architecture, while ios-sim and macos each combine two architectures
// into a universal slice. Selection and resolution are pure set
// operations with sorted, deterministic output and no side effects, so
// a bad request is always caught before any tool runs.
package platform
