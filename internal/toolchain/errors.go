package toolchain

import "errors"

var (
	ErrTool = errors.New("external tool failed")
)
