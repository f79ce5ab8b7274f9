// Package toolchain wraps the external tools a packaging run drives.
//
// A [Toolchain] is rooted at one workspace and one crate manifest and
// exposes a method per tool: rustup installs target support, cbindgen
// generates the public header, cargo compiles the static library per
// target triple, lipo merges architecture variants, and xcodebuild
// assembles the final bundle. All invocations run on the host via
// os/exec, honor context cancellation, and append their command line and
// output to an optional transcript.
//
// Errors carry the tool name and the tail of its output so a failing run
// is diagnosable from the error alone:
//
//	tc := toolchain.New(ws, manifest, transcript)
//	artifact, err := tc.Compile(ctx, "aarch64-apple-ios")
//	if err != nil {
//	    return err // external tool failed: cargo: exit status 101: ...
//	}
package toolchain
