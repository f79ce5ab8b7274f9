package toolchain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/xcpack/xcpack/internal/crate"
	"github.com/xcpack/xcpack/internal/paths"
)

// Number of trailing output lines included in errors. The transcript
// holds the full output.
const tailLines = 10

// Runs one external command and returns its combined output.
//
// Implementations block until the command exits. A non-nil error means
// the command could not be started or exited non-zero; output is
// returned either way for diagnostics.
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Runs commands on the host via os/exec.
func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Invokes the external tools that do the real work of a packaging run:
// rustup, cbindgen, cargo, lipo, and xcodebuild.
type Toolchain struct {
	ws         paths.Workspace // Workspace every artifact path derives from.
	crate      *crate.Manifest // Crate being packaged.
	run        runner          // Seam for substituting command execution in tests.
	transcript io.Writer       // Receives every command line and its output; nil disables.
}

// Creates a toolchain rooted at the given workspace and crate.
//
// transcript, when non-nil, receives every command line with its
// combined output. It is a diagnostic aid only; write failures are
// ignored and never affect a run.
func New(ws paths.Workspace, m *crate.Manifest, transcript io.Writer) *Toolchain {
	return &Toolchain{ws: ws, crate: m, run: execRunner, transcript: transcript}
}

// Runs a command, records it in the transcript, and converts a failure
// into an error carrying the command name and the tail of its output.
func (t *Toolchain) invoke(ctx context.Context, name string, args ...string) error {
	slog.Debug("exec", "command", name, "args", args)

	out, err := t.run(ctx, name, args...)
	t.record(name, args, out, err)
	if err != nil {
		return fmt.Errorf("%w: %s: %w: %s", ErrTool, name, err, tail(out))
	}
	return nil
}

// Appends a command line and its output to the transcript.
func (t *Toolchain) record(name string, args []string, out []byte, err error) {
	if t.transcript == nil {
		return
	}
	fmt.Fprintf(t.transcript, "$ %s %s\n", name, strings.Join(args, " "))
	t.transcript.Write(out)
	if err != nil {
		fmt.Fprintf(t.transcript, "! %v\n", err)
	}
}

// Returns the last few lines of command output for inclusion in errors.
func tail(out []byte) string {
	s := strings.TrimSpace(string(out))
	if s == "" {
		return "no output"
	}
	lines := strings.Split(s, "\n")
	if len(lines) > tailLines {
		lines = lines[len(lines)-tailLines:]
	}
	return strings.Join(lines, "\n")
}
