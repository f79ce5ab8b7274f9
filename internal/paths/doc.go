// Provides the workspace layout for packaging runs and platform-appropriate
// paths for xcpack's own state.
//
// Workspace paths all derive from a single root so that a run's
// intermediate output, merged libraries, generated headers, and final
// bundle live under one directory the janitor can reason about. The
// transcript log follows XDG conventions on Linux and platform-native
// conventions on macOS, under the "xcpack" subdirectory.
package paths
