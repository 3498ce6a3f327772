package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/config"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/dto"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type InterviewOptions struct {
	GlobalOptions

	AnswersFile string
	KeepHistory bool
}

func DefaultInterviewOptions() *InterviewOptions {
	return &InterviewOptions{
		GlobalOptions: DefaultGlobalOptions(),
		KeepHistory:   config.LoadInterviewConfig().KeepHistory,
	}
}

func NewCmdInterview() *cobra.Command {
	o := DefaultInterviewOptions()
	cmd := &cobra.Command{
		Use:   "interview CANDIDATE_ID",
		Short: "Evaluate a candidate's answers to their stored questions.",
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

func (o *InterviewOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.AnswersFile, "answers", "a", o.AnswersFile, "YAML or JSON file mapping question text to answer, under an \"answers\" key")
	fs.BoolVar(&o.KeepHistory, "keep-history", o.KeepHistory, "Append a compact record to the candidate's interview history")
}

func (o *InterviewOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if o.AnswersFile == "" {
		return fmt.Errorf("--answers is required")
	}
	return nil
}

func (o *InterviewOptions) Run(ctx context.Context, w io.Writer, candidateID string) error {
	req, err := readAnswers(o.AnswersFile)
	if err != nil {
		return err
	}
	keepHistory := o.KeepHistory
	if req.KeepHistory != nil {
		keepHistory = *req.KeepHistory
	}

	llm, err := o.LLM(ctx)
	if err != nil {
		return fmt.Errorf("creating evaluator: %w", err)
	}
	result, err := usecase.NewInterviewUsecase(o.Store(), llm, o.Timeout).ConductInterview(ctx, candidateID, req.Answers, keepHistory)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, result.Message)
	return nil
}

// readAnswers accepts YAML, and therefore JSON as well.
func readAnswers(path string) (*dto.ConductInterviewRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}
	var req dto.ConductInterviewRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing answers: %w", err)
	}
	if req.Answers == nil {
		req.Answers = map[string]string{}
	}
	return &req, nil
}
