package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/xcpack/xcpack/internal"
	"github.com/xcpack/xcpack/internal/paths"
)

// Exit code for usage output and argument errors. Deliberately non-zero
// so scripted callers never mistake a usage printout for a completed
// packaging run.
const ExitUsage = 2

// Represents the root of the xcpack command tree.
var RootCmd struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Verbose bool       `short:"v" help:"Enable verbose output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Build   BuildCmd   `cmd:"" default:"withargs" help:"Package the crate for the given platforms."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Packages a Rust staticlib crate into a multi-platform XCFramework."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
			"workdir": paths.DefaultWorkdir,
		},
		kong.Exit(exitUsage),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Terminates with the uniform usage exit code.
//
// kong reaches its exit hook after printing help or rejecting arguments;
// both paths leave with ExitUsage regardless of the code kong chose.
func exitUsage(int) {
	os.Exit(ExitUsage)
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	handler, ok := slog.Default().Handler().(*log.Logger)
	if !ok {
		return // Not a charm handler, nothing to configure
	}

	debug := RootCmd.Debug || internal.IsDebug()
	quiet := RootCmd.Quiet || internal.IsQuiet()
	verbose := RootCmd.Verbose || internal.IsVerbose()

	internal.SetDebug(debug)
	internal.SetQuiet(quiet)
	internal.SetVerbose(verbose)

	if debug {
		handler.SetLevel(log.DebugLevel)
	} else if quiet {
		handler.SetLevel(log.WarnLevel)
	} else {
		handler.SetLevel(log.InfoLevel)
	}

	handler.SetReportTimestamp(verbose)
	handler.SetReportCaller(debug)
}
