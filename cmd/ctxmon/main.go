package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/himattm/ctxmon/internal/logging"
	"github.com/himattm/ctxmon/internal/statusline"
	"github.com/himattm/ctxmon/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ctxmon",
		Short: "Context window status line for Claude Code",
		Long: `ctxmon reads the Claude Code status line JSON from stdin and prints
one colored line: model, directory, context window usage and session cost.

Configure it in ~/.claude/settings.json:

  "statusLine": {"type": "command", "command": "ctxmon"}`,
		// Status line mode must never fail the caller, so stray
		// arguments and flags are ignored rather than rejected.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		Run: func(cmd *cobra.Command, args []string) {
			logger := logging.New(cmd.ErrOrStderr(), logging.LevelWarn)
			runStatusLine(cmd.InOrStdin(), cmd.OutOrStdout(), logger)
		},
	}

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ctxmon %s\n", version.Version)
		},
	}
}

// runStatusLine renders one status line from stdin, falling back to a
// fixed error line when the payload cannot be rendered.
func runStatusLine(stdin io.Reader, stdout io.Writer, logger *slog.Logger) {
	line, err := statusline.Render(stdin)
	if err != nil {
		logger.Warn("rendering fallback status line", "error", err)
		line = statusline.Fallback(err, workingDirName())
	}
	fmt.Fprintln(stdout, line)
}

func workingDirName() string {
	wd, err := os.Getwd()
	if err != nil || wd == "" {
		return "unknown"
	}
	return filepath.Base(wd)
}
