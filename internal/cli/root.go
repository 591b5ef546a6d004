// SPDX-License-Identifier: EPL-2.0

// Package cli implements the tfwtool command tree.
package cli

import (
	"path/filepath"
	"strings"

	"github.com/ik5/afgtfw/internal/logger"
	"github.com/spf13/cobra"
)

// NewRootCommand builds tfwtool with every subcommand attached.
func NewRootCommand() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "tfwtool",
		Short: "Inspect and convert TFW arbitrary-waveform files",
		Long: `tfwtool works with TFW files, the single-cycle waveform format loaded by
arbitrary function generators.

Commands:
  - info: Show the header and code range of a TFW file
  - import: Convert an audio file into a TFW shape
  - export: Render a TFW shape as a WAV file
  - demo: Write a windowed sine burst as a TFW file`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.Init(logLevel, cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: debug, info, warn or error (default $"+logger.EnvLevel+" or info)")

	root.AddCommand(
		newInfoCommand(),
		newImportCommand(),
		newExportCommand(),
		newDemoCommand(),
	)

	return root
}

// Execute runs tfwtool with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// replaceExt swaps the extension of path for ext.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
