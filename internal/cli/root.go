// Package cli implements the floodspill command-line interface.
//
// # Commands
//
//   - spill: run the flood described by a TOML scenario file and print the
//     mark matrix, optionally saving a heat map
//   - bench: compare the neighbors and scanline engines on a generated area
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging to stderr.
// Loggers travel through context.Context; every run is tagged with a
// random run ID.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand builds the command tree. Command output goes to stdout,
// logs go to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "floodspill",
		Short:         "floodspill spreads floods over 2-D grids",
		Long:          `floodspill runs flood fills over 2-D grids with configurable order, connectivity, bounds and stop conditions, and compares the neighbor-by-neighbor and scanline engines.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("floodspill %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSpillCmd())
	root.AddCommand(newBenchCmd())

	return root
}

// Execute runs the CLI on the process streams until ctx is done.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}
