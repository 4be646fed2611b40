// Package cli defines the gridsheet command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/five82/gridsheet/internal/app"
)

// NewRootCommand returns the gridsheet command. Running it without a
// subcommand opens the sheet.
func NewRootCommand(ctx context.Context) *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:           "gridsheet",
		Short:         "Keyboard and mouse driven spreadsheet in the terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(ctx, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to config.toml (default ~/.config/gridsheet/config.toml)")
	cmd.Flags().StringVar(&opts.PrefsPath, "prefs", "", "path to prefs.toml (default ~/.config/gridsheet/prefs.toml)")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "color theme: Nightfox, Kanagawa or Slate")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "log level override (debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.NoMouse, "no-mouse", false, "disable mouse tracking")

	SetVersionTemplate(cmd)
	cmd.AddCommand(
		newColumnsCommand(),
		newLogsCommand(),
		newVersionCommand(),
	)
	return cmd
}
