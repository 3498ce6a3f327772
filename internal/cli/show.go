package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/dto"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type ShowOptions struct {
	GlobalOptions

	Output string
}

func DefaultShowOptions() *ShowOptions {
	return &ShowOptions{GlobalOptions: DefaultGlobalOptions()}
}

func NewCmdShow() *cobra.Command {
	o := DefaultShowOptions()
	cmd := &cobra.Command{
		Use:   "show CANDIDATE_ID",
		Short: "Display a candidate with its latest interview, summary and history.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ShowOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *ShowOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return validateOutput(o.Output)
}

func (o *ShowOptions) Run(ctx context.Context, w io.Writer, candidateID string) error {
	detail, err := usecase.NewAdminUsecase(o.Store()).CandidateDetail(candidateID)
	if err != nil {
		return fmt.Errorf("reading candidate %s: %w", candidateID, err)
	}
	if ok, err := printStructured(w, detail, o.Output); ok {
		return err
	}
	return printDetail(w, detail)
}

func printDetail(w io.Writer, d *dto.CandidateDetailDTO) error {
	fmt.Fprintf(w, "Candidate: %s (%s)\n", d.Profile[model.ColName], d.Profile[model.ColEmail])
	fmt.Fprintf(w, "ID: %s  Status: %s  Updated: %s\n\n", d.Profile[model.ColCandidateID], d.Profile[model.ColStatus], d.Profile[model.ColTimestamp])

	if len(d.Interview) == 0 {
		fmt.Fprintln(w, "No transcript available for the last interview.")
	} else {
		tw := tabwriter.NewWriter(w, 0, 8, 1, '\t', 0)
		fmt.Fprintln(tw, "#\tSCORE\tQUESTION")
		for i, e := range d.Interview {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, formatScore(e.Score), e.Question)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if d.Summary != nil {
		fmt.Fprintf(w, "\nAverage score: %s\n", formatScore(d.Summary.AverageScore))
		fmt.Fprintf(w, "Strengths: %s\n", strings.Join(d.Summary.Strengths, ", "))
		fmt.Fprintf(w, "Weaknesses: %s\n", strings.Join(d.Summary.Weaknesses, ", "))
	} else {
		fmt.Fprintln(w, "\nNo summary available yet.")
	}

	if len(d.History) > 0 {
		fmt.Fprintf(w, "\nHistory (%d interviews):\n", len(d.History))
		for _, h := range d.History {
			fmt.Fprintf(w, "  %s  %d questions  average %s\n", h.Timestamp, h.NumQuestions, formatScore(h.Summary.AverageScore))
		}
	}
	return nil
}
