package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/dto"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type ListOptions struct {
	GlobalOptions

	Status   string
	Page     int
	PageSize int
	Output   string
}

func DefaultListOptions() *ListOptions {
	return &ListOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Status:        "all",
		Page:          1,
		PageSize:      usecase.MaxPageSize,
	}
}

func NewCmdList() *cobra.Command {
	o := DefaultListOptions()
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List candidates, optionally filtered by status.",
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

func (o *ListOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Status, "status", "s", o.Status, "Status filter (all, pending, completed). Case-insensitive.")
	fs.IntVar(&o.Page, "page", o.Page, "Page number")
	fs.IntVar(&o.PageSize, "page-size", o.PageSize, "Candidates per page")
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *ListOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return validateOutput(o.Output)
}

func (o *ListOptions) Run(ctx context.Context, w io.Writer) error {
	items, pagination, err := usecase.NewAdminUsecase(o.Store()).ListCandidates(o.Status, o.Page, o.PageSize)
	if err != nil {
		return fmt.Errorf("listing candidates: %w", err)
	}
	if ok, err := printStructured(w, items, o.Output); ok {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 1, '\t', 0)
	printCandidatesTable(tw, items...)
	fmt.Fprintf(tw, "\npage %d/%d, %d candidates\n", pagination.Page, pagination.TotalPages, pagination.TotalItems)
	return tw.Flush()
}

func printCandidatesTable(w io.Writer, items ...dto.CandidateListItemDTO) {
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSTATUS\tTIMESTAMP")
	for _, c := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.CandidateID, c.Name, c.Email, c.Status, c.Timestamp)
	}
}
