package config

import (
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

type InterviewConfig struct {
	EvaluatorProvider    string        `envconfig:"EVALUATOR_PROVIDER" default:"gemini"`
	EvaluatorTimeout     time.Duration `envconfig:"EVALUATOR_TIMEOUT" default:"90s"`
	KeepHistory          bool          `envconfig:"KEEP_HISTORY" default:"true"`
	DefaultQuestionCount int           `envconfig:"DEFAULT_QUESTION_COUNT" default:"5"`
	QuestionBankFile     string        `envconfig:"QUESTION_BANK_FILE" default:"config/questions.yaml"`
}

var (
	interviewConfig *InterviewConfig
	interviewOnce   sync.Once
)

func LoadInterviewConfig() *InterviewConfig {
	interviewOnce.Do(func() {
		interviewConfig = new(InterviewConfig)
		if err := envconfig.Process("", interviewConfig); err != nil {
			log.Printf("Warning: invalid interview configuration, using defaults: %v", err)
			interviewConfig = &InterviewConfig{
				EvaluatorProvider:    ProviderGemini,
				EvaluatorTimeout:     90 * time.Second,
				KeepHistory:          true,
				DefaultQuestionCount: 5,
				QuestionBankFile:     "config/questions.yaml",
			}
		}
	})
	return interviewConfig
}
