// Package cli implements the biodata command-line interface.
//
// Commands cover the whole builder flow: an interactive wizard for entering
// profile data, template listing and selection, preview rendering, progress
// reporting, and session reset. Session state persists between runs through
// the configured store backend.
//
// All commands support --verbose (-v) for debug-level logging; the logger is
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version, typically
// injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the biodata CLI and returns an error if any command fails.
func Execute() error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "biodata",
		Short:        "Build printable matrimonial profile documents",
		Long:         `biodata builds matrimonial profile documents from guided form input: pick a template, enter your details, attach a photo, and render a printable profile. Progress persists between runs.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("biodata %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (TOML)")

	root.AddCommand(newWizardCmd(&configPath))
	root.AddCommand(newPreviewCmd(&configPath))
	root.AddCommand(newStatusCmd(&configPath))
	root.AddCommand(newTemplatesCmd(&configPath))
	root.AddCommand(newResetCmd(&configPath))

	return root.ExecuteContext(context.Background())
}
