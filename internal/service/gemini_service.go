package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/config"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type GeminiService struct {
	Client         *genai.Client
	Model          string
	MaxRetries     int
	BaseDelay      time.Duration
	MaxDelay       time.Duration
	RequestTimeout time.Duration
	// Cooldown is how long an open breaker rejects calls before letting a
	// single trial call through.
	Cooldown time.Duration

	mu                sync.Mutex
	consecutiveErrors int
	circuitBreakerMax int
	openedAt          time.Time
	trialInFlight     bool
	now               func() time.Time
}

func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &GeminiService{
		Client:            client,
		Model:             cfg.Model,
		MaxRetries:        3,
		BaseDelay:         time.Second,
		MaxDelay:          30 * time.Second,
		RequestTimeout:    90 * time.Second,
		Cooldown:          30 * time.Second,
		circuitBreakerMax: 5,
		now:               time.Now,
	}, nil
}

func (s *GeminiService) Evaluate(ctx context.Context, question, answer string) (string, error) {
	return s.GenerateText(ctx, evaluationSystemPrompt, buildEvaluationPrompt(question, answer))
}

func (s *GeminiService) GenerateQuestions(ctx context.Context, techStack, keywords string, yoe, count int) (string, error) {
	text, err := s.GenerateText(ctx, generationSystemPrompt, buildGenerationPrompt(techStack, keywords, yoe, count))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// GenerateText sends prompt to the configured model, retrying transient
// failures with exponential backoff. Transport failures and exhausted retries
// count towards the circuit breaker; requests the API rejects do not.
func (s *GeminiService) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	trial, err := s.acquire()
	if err != nil {
		return "", err
	}
	if trial {
		defer s.releaseTrial()
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(0.1)),
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			zap.S().Named("gemini").Infof("retry attempt %d/%d after %v", attempt, s.MaxRetries, delay)

			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				return "", fmt.Errorf("context timeout during retry: %w", timeoutCtx.Err())
			}
		}

		result, err := s.Client.Models.GenerateContent(timeoutCtx, s.Model, genai.Text(prompt), genConfig)
		if err == nil {
			s.recordSuccess()
			if err := validateGenerateResponse(result); err != nil {
				return "", fmt.Errorf("invalid response: %w", err)
			}
			return result.Text(), nil
		}

		lastErr = err
		if isClientError(err) {
			return "", fmt.Errorf("request rejected: %w", err)
		}
		if !isRetryableError(err) {
			s.recordFailure()
			return "", fmt.Errorf("generate content failed: %w", err)
		}
		zap.S().Named("gemini").Warnf("retryable error on attempt %d: %v", attempt+1, err)
	}

	s.recordFailure()
	return "", fmt.Errorf("max retries (%d) exceeded: %w", s.MaxRetries, lastErr)
}

func (s *GeminiService) calculateBackoff(attempt int) time.Duration {
	delay := s.BaseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
	if delay > s.MaxDelay {
		delay = s.MaxDelay
	}
	return delay
}

// acquire admits a call and reports whether it is the trial call of a
// half-open breaker. An open breaker rejects calls until Cooldown has passed
// since it opened, then admits one trial call at a time.
func (s *GeminiService) acquire() (trial bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consecutiveErrors < s.circuitBreakerMax {
		return false, nil
	}
	if s.trialInFlight || s.clock().Sub(s.openedAt) < s.Cooldown {
		return false, fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", s.consecutiveErrors)
	}
	s.trialInFlight = true
	zap.S().Named("gemini").Info("circuit breaker half-open, sending trial request")
	return true, nil
}

// releaseTrial frees the trial slot when a call ends without a verdict, such
// as a rejected request or a cancelled context.
func (s *GeminiService) releaseTrial() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trialInFlight = false
}

func (s *GeminiService) recordSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consecutiveErrors >= s.circuitBreakerMax {
		zap.S().Named("gemini").Info("circuit breaker closed")
	}
	s.consecutiveErrors = 0
	s.trialInFlight = false
	s.openedAt = time.Time{}
}

func (s *GeminiService) recordFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consecutiveErrors++
	s.trialInFlight = false
	if s.consecutiveErrors >= s.circuitBreakerMax {
		s.openedAt = s.clock()
		zap.S().Named("gemini").Warnf("circuit breaker open after %d consecutive errors", s.consecutiveErrors)
	}
}

func (s *GeminiService) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// GetCircuitBreakerStatus reports whether calls are currently being refused.
// An open breaker whose cooldown has passed reports closed.
func (s *GeminiService) GetCircuitBreakerStatus() (consecutiveErrors int, isOpen bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consecutiveErrors < s.circuitBreakerMax {
		return s.consecutiveErrors, false
	}
	return s.consecutiveErrors, s.trialInFlight || s.clock().Sub(s.openedAt) < s.Cooldown
}

// isClientError reports a request the API refused on its merits. Rate
// limiting is not one of them.
func isClientError(err error) bool {
	code := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr):
		code = apiErrPtr.Code
	}
	return code >= 400 && code < 500 && code != 429
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return isRetryableStatus(apiErr.Code)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return isRetryableStatus(apiErrPtr.Code)
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF")
}

func isRetryableStatus(code int) bool {
	switch code {
	case 429, 500, 502, 503, 504:
		return true
	}
	return false
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
