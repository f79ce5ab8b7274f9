// Package build orchestrates packaging runs against the host toolchain.
//
// A run turns one Rust staticlib crate into a multi-platform bundle. The
// pipeline generates the shared C header once, compiles the crate for
// every resolved target triple, merges multi-architecture platforms into
// universal libraries, and assembles one bundle slice per requested
// platform. After the bundle is verified on disk, the janitor removes
// every intermediate path from the workspace, leaving only the bundle.
//
// Stages run in strict order and the first failure aborts the run
// without any cleanup, so intermediate artifacts stay inspectable.
// Compiles within the build stage may overlap up to Options.Jobs; all of
// them finish before merging starts. Tool invocations are delegated to
// the toolchain package through the [Toolchain] interface.
//
// Example usage:
//
//	result, err := build.Run(ctx, tc, build.Options{
//	    Crate:     manifest,
//	    Workspace: paths.Workspace{Root: "target/xcpack"},
//	    Platforms: []platform.Platform{platform.IOS, platform.MacOS},
//	    Jobs:      1,
//	})
//	if err != nil {
//	    return err
//	}
package build
