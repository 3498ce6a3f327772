package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/config"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type GenerateOptions struct {
	GlobalOptions

	Count int
}

func DefaultGenerateOptions() *GenerateOptions {
	return &GenerateOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Count:         config.LoadInterviewConfig().DefaultQuestionCount,
	}
}

func NewCmdGenerate() *cobra.Command {
	o := DefaultGenerateOptions()
	cmd := &cobra.Command{
		Use:   "generate CANDIDATE_ID",
		Short: "Generate interview questions for a candidate and store them.",
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

func (o *GenerateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.IntVarP(&o.Count, "count", "n", o.Count, "Number of questions to generate")
}

func (o *GenerateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if o.Count < 1 {
		return fmt.Errorf("count must be positive")
	}
	return nil
}

func (o *GenerateOptions) Run(ctx context.Context, w io.Writer, candidateID string) error {
	llm, err := o.LLM(ctx)
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}
	questions, err := usecase.NewQuestionUsecase(o.Store(), llm, o.Timeout).GenerateAndStore(ctx, candidateID, o.Count)
	if err != nil {
		return err
	}
	for i, q := range questions {
		fmt.Fprintf(w, "%d. %s\n", i+1, q.Question)
	}
	return nil
}
