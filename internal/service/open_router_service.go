package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type OpenRouterService struct {
	client *resty.Client
	model  string
}

func NewOpenRouterService(cfg *config.OpenRouterConfig, timeout time.Duration) (*OpenRouterService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() == 429 || r.StatusCode() >= 500
		})
	return &OpenRouterService{client: client, model: cfg.Model}, nil
}

func (s *OpenRouterService) Evaluate(ctx context.Context, question, answer string) (string, error) {
	return s.complete(ctx, evaluationSystemPrompt, buildEvaluationPrompt(question, answer))
}

func (s *OpenRouterService) GenerateQuestions(ctx context.Context, techStack, keywords string, yoe, count int) (string, error) {
	text, err := s.complete(ctx, generationSystemPrompt, buildGenerationPrompt(techStack, keywords, yoe, count))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (s *OpenRouterService) complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model": s.model,
			"messages": []map[string]string{
				{"role": "system", "content": system},
				{"role": "user", "content": prompt},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	if resp.IsError() {
		zap.S().Named("openrouter").Debugf("error body: %s", resp.String())
		return "", fmt.Errorf("openrouter status %d", resp.StatusCode())
	}

	body := resp.String()
	if msg := gjson.Get(body, "error.message"); msg.Exists() {
		return "", fmt.Errorf("openrouter error: %s", msg.String())
	}
	text := gjson.Get(body, "choices.0.message.content")
	if !text.Exists() || text.String() == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text.String(), nil
}
