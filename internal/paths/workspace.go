package paths

import "path/filepath"

// Describes the on-disk layout of one packaging run.
//
// Everything below Root belongs to the pipeline for the duration of a
// run. After a successful assembly the janitor removes every top-level
// entry except the final bundle; after a failure nothing is touched.
type Workspace struct {

	// Working output area, e.g. "target/xcpack".
	Root string
}

// Directory cargo is pointed at via --target-dir. Per-triple compile
// output lands below it, which keeps every intermediate artifact inside
// the workspace and subject to cleanup.
func (w Workspace) TargetDir() string {
	return filepath.Join(w.Root, "targets")
}

// Path of the static library cargo produces for one target triple under
// the release profile.
func (w Workspace) ArtifactPath(target, file string) string {
	return filepath.Join(w.TargetDir(), target, "release", file)
}

// Directory holding the generated public header, shared by every slice.
func (w Workspace) IncludeDir() string {
	return filepath.Join(w.Root, "include")
}

// Path of the generated public header.
func (w Workspace) HeaderPath(file string) string {
	return filepath.Join(w.IncludeDir(), file)
}

// Directory holding merged universal libraries, one subdirectory per
// multi-architecture platform.
func (w Workspace) UniversalDir() string {
	return filepath.Join(w.Root, "universal")
}

// Path of the merged universal library for one platform.
func (w Workspace) UniversalPath(platform, file string) string {
	return filepath.Join(w.UniversalDir(), platform, file)
}

// Path of the final bundle, directly under the workspace root so it is
// the one entry the janitor leaves behind.
func (w Workspace) BundlePath(name string) string {
	return filepath.Join(w.Root, name)
}
