package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/glassyclock/internal/config"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
)

const usageText = `glassyclock - a glassy analog clock for any desktop

Usage:
	glassyclock [options]

Options:

--help or -h     Show this help and exit.
<s>              Clock's size.
<s> <x> <y>      Clock's size and position.
<s> <x> <y> <S>  Clock's size, position and Wayland screen name.

NOTE: <X> means X without brackets.
`

// runFunc starts the clock with the positional arguments and returns the
// application's exit status.
type runFunc func(args []string) int

// newRootCmd builds the root command. Flag parsing is disabled because
// positions may be negative numbers, which cobra would read as flags.
func newRootCmd(run runFunc, status *int) *cobra.Command {
	return &cobra.Command{
		Use:   "glassyclock [size [x y [screen]]]",
		Short: "A glassy analog clock for any desktop",
		Long: `glassyclock shows a small, borderless analog clock that stays below
other windows, ignores the pointer and optionally blurs what is behind it.

Blur-behind is requested through the KDE window property and works on X11
compositors that honor it (KWin, picom). Wayland sessions get no blur.

Defaults are read from ~/.config/glassyclock/config.toml.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.IsHelp(args) {
				*status = 0
				_, err := io.WriteString(cmd.OutOrStdout(), usageText)
				return err
			}
			*status = run(args)
			return nil
		},
	}
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	status := 0
	cmd := newRootCmd(runClock, &status)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return status
}

// setupLogger configures the global slog logger.
func setupLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
