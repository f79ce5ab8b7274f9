// Parses flags and dispatches xcpack's commands.
//
// The build command is the default, so platform names can be passed
// directly ("xcpack ios macos") and an empty invocation packages every
// platform in the catalog. The tool accepts the following flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output.
//	-d, --debug     Enable debug output.
//
// Usage output always exits with code 2, whether it came from -h, the
// help token, or an invalid platform name; a failed run exits 1 and a
// completed one 0. Flags override build-time defaults set via linker
// flags. After parsing, the global logger is reconfigured to reflect the
// final level before any pipeline stage runs.
package cli
