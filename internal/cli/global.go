package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/config"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/logger"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/repository"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type GlobalOptions struct {
	CandidatesFile string
	BackupDir      string
	Sheet          string
	LogLevel       string
	Timeout        time.Duration
}

func DefaultGlobalOptions() GlobalOptions {
	store := config.LoadStoreConfig()
	return GlobalOptions{
		CandidatesFile: store.CandidatesFile,
		BackupDir:      store.BackupDir,
		Sheet:          store.Sheet,
		LogLevel:       config.LoadAppConfig().LogLevel,
		Timeout:        config.LoadInterviewConfig().EvaluatorTimeout,
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.CandidatesFile, "file", "f", o.CandidatesFile, "Path of the candidates workbook")
	fs.StringVar(&o.BackupDir, "backup-dir", o.BackupDir, "Directory receiving a copy of the workbook before every write")
	fs.StringVar(&o.Sheet, "sheet", o.Sheet, "Worksheet holding the candidate table")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level (debug, info, warn, error)")
	fs.DurationVar(&o.Timeout, "timeout", o.Timeout, "Timeout of a single evaluator call")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	logger.InitLog(o.LogLevel)
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if o.CandidatesFile == "" {
		return fmt.Errorf("candidates file must be set")
	}
	if o.BackupDir == "" {
		return fmt.Errorf("backup directory must be set")
	}
	return nil
}

func (o *GlobalOptions) Store() *repository.CandidateRepository {
	return repository.NewCandidateRepository(o.CandidatesFile, o.BackupDir, o.Sheet)
}

func (o *GlobalOptions) LLM(ctx context.Context) (service.LLMService, error) {
	cfg := *config.LoadInterviewConfig()
	cfg.EvaluatorTimeout = o.Timeout
	return service.NewLLMService(ctx, &cfg)
}
