// Package cli implements the netgraph command-line interface.
//
// Commands:
//   - info: read a GraphML file and print a topology/attribute summary
//   - convert: read a GraphML file and re-emit it (network or plain)
//   - validate: read files in network mode and report failures
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is attached to the command context and retrieved with loggerFromContext.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newLogger creates a leveled logger with compact timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the context-key type for this package; a distinct type prevents
// collisions with other packages.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with l attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default() so commands always have a valid logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}

// Execute runs the netgraph CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "netgraph",
		Short:        "netgraph inspects, converts, and validates GraphML files",
		Long:         `netgraph reads and writes graphs in the GraphML interchange format — plain topology or "network" graphs carrying typed named attributes on the graph, its vertices, and its edges.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newInfoCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newValidateCmd())

	return root.ExecuteContext(ctx)
}
