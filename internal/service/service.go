package service

import (
	"context"
	"fmt"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/config"
)

// Evaluator scores one answer. The returned text is expected to hold a JSON
// object with score, strengths and weaknesses but callers must not rely on it.
type Evaluator interface {
	Evaluate(ctx context.Context, question, answer string) (string, error)
}

// QuestionGenerator produces a newline separated list of interview questions.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, techStack, keywords string, yoe, count int) (string, error)
}

type LLMService interface {
	Evaluator
	QuestionGenerator
}

// NewLLMService returns the provider selected by EVALUATOR_PROVIDER.
func NewLLMService(ctx context.Context, cfg *config.InterviewConfig) (LLMService, error) {
	switch cfg.EvaluatorProvider {
	case config.ProviderGemini, "":
		gemini, err := NewGeminiService(ctx, config.LoadGeminiConfig())
		if err != nil {
			return nil, err
		}
		if cfg.EvaluatorTimeout > 0 {
			gemini.RequestTimeout = cfg.EvaluatorTimeout
		}
		return gemini, nil
	case config.ProviderOpenRouter:
		return NewOpenRouterService(config.LoadOpenRouterConfig(), cfg.EvaluatorTimeout)
	default:
		return nil, fmt.Errorf("unknown evaluator provider: %s", cfg.EvaluatorProvider)
	}
}
