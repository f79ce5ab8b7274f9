package platform

import "errors"

var (
	ErrUnknownPlatform = errors.New("unknown platform")
	ErrHelp            = errors.New("help requested")
)
