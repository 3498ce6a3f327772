package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func NewCmdSetStatus() *cobra.Command {
	o := DefaultGlobalOptions()
	cmd := &cobra.Command{
		Use:   "set-status CANDIDATE_ID STATUS",
		Short: "Set a candidate's status, for example back to pending.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return runSetStatus(cmd.Context(), cmd.OutOrStdout(), &o, args[0], args[1])
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func runSetStatus(ctx context.Context, w io.Writer, o *GlobalOptions, candidateID, status string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		return fmt.Errorf("status must not be empty")
	}
	if err := o.Store().SetStatus(candidateID, status); err != nil {
		return fmt.Errorf("updating %s: %w", candidateID, err)
	}
	fmt.Fprintf(w, "%s is now %s\n", candidateID, status)
	return nil
}
