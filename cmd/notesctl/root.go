package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"studynotes/internal/app"
	"studynotes/internal/config"
)

// openFunc opens the wired application. verbose raises the log level to debug.
type openFunc func(ctx context.Context, verbose bool) (*app.App, error)

// openApp loads configuration from the environment and opens the local database.
func openApp(ctx context.Context, verbose bool) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	slog.SetDefault(app.NewLogger(os.Stderr, cfg))
	return app.New(ctx, cfg)
}

// newRootCmd builds the command tree. Every subcommand opens the application
// through open and closes it before returning.
func newRootCmd(open openFunc) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "notesctl",
		Short: "Operate the study notes store",
		Long: `notesctl inspects the local notes database and synchronizes it with the
configured remote file. It reads the same environment and .env file as the API server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	var withApp appRunner = func(run func(cmd *cobra.Command, args []string, a *app.App) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd.Context(), verbose)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()
			return run(cmd, args, a)
		}
	}

	rootCmd.AddCommand(
		newStatusCmd(withApp),
		newPullCmd(withApp),
		newPushCmd(withApp),
		newExportCmd(withApp),
		newImportCmd(withApp),
	)
	return rootCmd
}

// appRunner adapts a command body that needs the application into a cobra RunE.
type appRunner func(run func(cmd *cobra.Command, args []string, a *app.App) error) func(*cobra.Command, []string) error
