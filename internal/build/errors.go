package build

import "errors"

var (
	ErrHeader              = errors.New("header generation failed")
	ErrCompile             = errors.New("compile failed")
	ErrMerge               = errors.New("merge failed")
	ErrAssemble            = errors.New("bundle assembly failed")
	ErrFileSystemOperation = errors.New("file system operation failed")
)
