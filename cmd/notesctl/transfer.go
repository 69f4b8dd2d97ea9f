package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"studynotes/internal/app"
	"studynotes/internal/service"
)

func newExportCmd(withApp appRunner) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the notes as an export file",
		Long: `export writes the whole collection as JSON, including the stored credential.
Without --output the JSON goes to standard output.`,
		Args: cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
			data, err := a.Notes.Export(cmd.Context())
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", output)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write (default standard output)")
	return cmd
}

func newImportCmd(withApp appRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the local notes with an export file",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read import: %w", err)
			}
			if err := a.Notes.Import(cmd.Context(), data); err != nil {
				return errors.New(service.StatusMessage(err))
			}
			c := a.Notes.Collection(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d notes in %d sections.\n", len(c.Notes), len(c.Sections))
			return nil
		}),
	}
}
