package toolchain

import "context"

// One (library, headers) pair destined to become a bundle slice.
type Slice struct {
	Library string // Path to the slice's static library.
	Headers string // Directory holding the shared public header.
}

// Assembles the final multi-slice bundle at the output path.
//
// Any previous bundle at the output path must already have been removed;
// xcodebuild refuses to overwrite an existing container.
func (t *Toolchain) CreateBundle(ctx context.Context, slices []Slice, output string) error {
	args := []string{"-create-xcframework"}
	for _, s := range slices {
		args = append(args, "-library", s.Library, "-headers", s.Headers)
	}
	args = append(args, "-output", output)
	return t.invoke(ctx, "xcodebuild", args...)
}
