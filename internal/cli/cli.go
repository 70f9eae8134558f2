// Package cli implements the uaclass command-line interface.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uaclass/pkg/logger"
)

const appName = "uaclass"

var (
	version = "dev"
	commit  = "none"
)

// SetVersion sets the values printed by --version. main calls it with values
// injected through ldflags.
func SetVersion(v, c string) {
	version = v
	commit = c
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func loggerFromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewRootCommand builds the command tree. Diagnostics go to stderr; command
// output goes to the command's configured output (stdout by default).
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Classify HTTP User-Agent strings into browser and OS flags",
		Version:      version + " (" + commit + ")",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			log := logger.New(
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithFormat(logger.FormatText),
				logger.WithLevel(level),
			)
			cmd.SetContext(withLogger(cmd.Context(), log))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newClassifyCmd())
	root.AddCommand(newServeCmd())

	return root
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	root := NewRootCommand()
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	return root.ExecuteContext(ctx)
}
