package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "xcpack"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Default workspace root, relative to the crate directory. Keeping it
// under cargo's own target/ directory means .gitignore rules that cover
// cargo output cover xcpack output too.
const DefaultWorkdir = "target/" + toolName

// Path to the transcript log recording every external command xcpack
// runs, with its full output.
//
//	Linux:   $XDG_STATE_HOME/xcpack/xcpack.log or ~/.local/state/xcpack/xcpack.log
//	macOS:   ~/Library/Application Support/xcpack/xcpack.log
func TranscriptLog() string {
	return filepath.Join(xdg.StateHome, toolName, toolName+".log")
}
