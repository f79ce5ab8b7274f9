package toolchain

import "context"

// Merges per-architecture static libraries into one universal library at
// the output path.
//
// lipo receives every architecture variant in a single call; there is no
// incremental merge. The output directory must already exist.
func (t *Toolchain) MergeArchives(ctx context.Context, inputs []string, output string) error {
	args := append([]string{"-create"}, inputs...)
	args = append(args, "-output", output)
	return t.invoke(ctx, "lipo", args...)
}
