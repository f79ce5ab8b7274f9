package internal

import "strconv"

// Runtime output switches. They are written during startup only, first
// from linker flags and then from CLI flags, before the pipeline spawns
// any goroutine; afterwards they are read-only.
var (
	quietMode   bool // Suppress informational output.
	debugMode   bool // Enable debug logging.
	verboseMode bool // Add timestamps and caller information to logs.
)

// Parses the linker flags into usable runtime variables.
//
// The rawQuiet, rawDebug, and rawVerbose variables may be set via ldflags
// to bake a default verbosity into a build. If not set, they default to
// "false" and the CLI flags decide.
func init() {
	if v, err := strconv.ParseBool(rawQuiet); err == nil {
		quietMode = v
	}
	if v, err := strconv.ParseBool(rawDebug); err == nil {
		debugMode = v
	}
	if v, err := strconv.ParseBool(rawVerbose); err == nil {
		verboseMode = v
	}
}

// Enables or disables quiet mode.
func SetQuiet(enabled bool) {
	quietMode = enabled
}

// Returns true if quiet mode is enabled.
func IsQuiet() bool {
	return quietMode
}

// Enables or disables debug mode.
func SetDebug(enabled bool) {
	debugMode = enabled
}

// Returns true if debug mode is enabled.
func IsDebug() bool {
	return debugMode
}

// Enables or disables verbose logging.
func SetVerbose(enabled bool) {
	verboseMode = enabled
}

// Returns true if verbose logging is enabled.
func IsVerbose() bool {
	return verboseMode
}
