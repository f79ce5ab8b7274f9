package build

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"
)

// Filename suffix of the bundle archive produced after cleanup.
const archiveSuffix = ".zip"

// Zips the assembled bundle for distribution and returns the archive
// path with its digest.
//
// The digest is what package consumers pin: a SwiftPM binary target
// references the zip by URL and checksum. Entries are stored relative to
// the workspace root so the archive extracts to the bundle directory
// itself.
func (p *pipeline) archiveBundle(bundle string) (string, digest.Digest, error) {
	archive := bundle + archiveSuffix

	if err := zipTree(bundle, archive); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	dgst, err := digestFile(archive)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	slog.Info("archived bundle", "archive", archive, "digest", dgst)
	return archive, dgst, nil
}

// Writes a zip of the directory tree rooted at src to dest. Entry names
// are relative to src's parent, so the tree extracts under its own name.
func zipTree(src, dest string) error {
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	root := filepath.Dir(src)

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		_, err = io.Copy(w, in)
		return err
	})
	if err != nil {
		return err
	}

	if err := zw.Close(); err != nil {
		return err
	}
	return f.Close()
}

// Returns the digest of the file at path.
func digestFile(path string) (digest.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return digest.FromReader(f)
}
