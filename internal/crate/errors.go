package crate

import "errors"

var (
	ErrManifest     = errors.New("invalid crate manifest")
	ErrNotStaticlib = errors.New("crate does not build a static library")
)
