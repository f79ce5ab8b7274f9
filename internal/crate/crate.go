package crate

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Crate type a library must declare for its artifact to be linkable
// into an Apple binary.
const staticlibType = "staticlib"

// Mirrors the subset of a Cargo manifest that packaging needs.
type Manifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
	Lib struct {
		Name      string   `toml:"name"`
		CrateType []string `toml:"crate-type"`
	} `toml:"lib"`

	path string
}

// Reads and validates the Cargo manifest at the given path.
//
// The crate must name its package and declare the staticlib crate type;
// without it cargo produces no .a archive and there is nothing to
// package. Both problems are caught here, before any tool runs.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrManifest, path, err)
	}
	if m.Package.Name == "" {
		return nil, fmt.Errorf("%w: %s: missing package name", ErrManifest, path)
	}
	if !slices.Contains(m.Lib.CrateType, staticlibType) {
		return nil, fmt.Errorf("%w: %s does not list %q in [lib] crate-type", ErrNotStaticlib, m.Package.Name, staticlibType)
	}

	m.path = path
	return &m, nil
}

// Path of the manifest file, as given to Load.
func (m *Manifest) Path() string {
	return m.path
}

// Directory containing the manifest, the crate root.
func (m *Manifest) Dir() string {
	return filepath.Dir(m.path)
}

// Name of the library the crate produces: the [lib] name when set,
// otherwise the package name with dashes mapped to underscores, matching
// cargo's own normalization.
func (m *Manifest) LibName() string {
	if m.Lib.Name != "" {
		return m.Lib.Name
	}
	return strings.ReplaceAll(m.Package.Name, "-", "_")
}

// File name of the static library cargo produces for every target.
func (m *Manifest) StaticlibFile() string {
	return "lib" + m.LibName() + ".a"
}

// File name of the generated public header.
func (m *Manifest) HeaderFile() string {
	return m.LibName() + ".h"
}

// Name of the final bundle directory.
func (m *Manifest) BundleName() string {
	return m.LibName() + ".xcframework"
}
