package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"studynotes/internal/app"
	"studynotes/internal/service"
)

func newStatusCmd(withApp appRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the remote address, remembered version and recent sync attempts",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
			st, err := a.Notes.Status(cmd.Context())
			if err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), st)
			return nil
		}),
	}
}

func printStatus(w io.Writer, st service.Status) {
	r := st.Remote
	if r.Configured() {
		token := "no token"
		if st.HasToken {
			token = "token set"
		}
		fmt.Fprintf(w, "Remote:   %s/%s@%s:%s (%s)\n", r.Owner, r.Repo, r.Branch, r.Path, token)
	} else {
		fmt.Fprintln(w, "Remote:   not configured")
	}

	version := r.SHA
	if version == "" {
		version = "none"
	}
	fmt.Fprintf(w, "Version:  %s\n", version)

	if len(st.Events) == 0 {
		fmt.Fprintln(w, "History:  no sync attempts")
		return
	}
	fmt.Fprintln(w, "History:")
	for _, e := range st.Events {
		fmt.Fprintf(w, "  %s  %-6s  %-8s  %s\n", e.CreatedAt.UTC().Format(time.RFC3339), e.Operation, e.Outcome, e.Message)
	}
}

func newPullCmd(withApp appRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Replace the local notes with the remote file",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
			st, err := a.Notes.Pull(cmd.Context())
			return reportSync(cmd.OutOrStdout(), st, err)
		}),
	}
}

func newPushCmd(withApp appRunner) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Replace the remote file with the local notes",
		Long: `push writes the local notes to the remote file. It refuses to overwrite a remote
that changed since the last pull or push unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
			st, err := a.Notes.Push(cmd.Context(), force)
			return reportSync(cmd.OutOrStdout(), st, err)
		}),
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite the remote even if it changed")
	return cmd
}

// reportSync prints the outcome of a pull or push. A failed sync is returned
// as an error carrying the user-facing status message.
func reportSync(w io.Writer, st service.SyncStatus, err error) error {
	if err != nil {
		return errors.New(service.StatusMessage(err))
	}
	fmt.Fprintln(w, st.Message)
	if st.Version != "" {
		fmt.Fprintf(w, "Version:  %s\n", st.Version)
	}
	return nil
}
