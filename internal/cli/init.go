package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/repository"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type InitOptions struct {
	GlobalOptions

	Force bool
}

func DefaultInitOptions() *InitOptions {
	return &InitOptions{GlobalOptions: DefaultGlobalOptions()}
}

func NewCmdInit() *cobra.Command {
	o := DefaultInitOptions()
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty candidates workbook with the standard columns.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *InitOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.BoolVar(&o.Force, "force", o.Force, "Overwrite an existing workbook")
}

func (o *InitOptions) Run(ctx context.Context, w io.Writer) error {
	if _, err := os.Stat(o.CandidatesFile); err == nil && !o.Force {
		return fmt.Errorf("%s already exists, use --force to overwrite", o.CandidatesFile)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	columns := append([]string{}, model.ProfileColumns...)
	columns = append(columns, model.ColQuestions, model.ColTranscript, model.ColSummary, model.ColLastInterview, model.ColHistory)
	if err := repository.CreateCandidatesFile(o.CandidatesFile, o.Sheet, columns, nil); err != nil {
		return err
	}
	fmt.Fprintf(w, "created %s\n", o.CandidatesFile)
	return nil
}
