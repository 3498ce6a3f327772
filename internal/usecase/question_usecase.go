package usecase

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/service"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

const defaultQuestionCount = 5

// enumerationPattern matches list markers such as "1. ", "2) ", "Q3: ", "- ".
var enumerationPattern = regexp.MustCompile(`^(?:(?i:q(?:uestion)?\s*)?\d+\s*[.):-]+|[-*•])\s*`)

type QuestionUsecase struct {
	candidates CandidateStore
	generator  service.QuestionGenerator
	timeout    time.Duration
}

func NewQuestionUsecase(candidates CandidateStore, generator service.QuestionGenerator, timeout time.Duration) *QuestionUsecase {
	return &QuestionUsecase{candidates: candidates, generator: generator, timeout: timeout}
}

// GenerateAndStore asks the generator for count questions matching the
// candidate profile and stores them as questions_json, clearing the
// transcript. A reply without usable lines stores an empty list.
func (uc *QuestionUsecase) GenerateAndStore(ctx context.Context, candidateID string, count int) ([]model.QuestionRecord, error) {
	candidate, err := uc.candidates.FindByID(candidateID)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		count = defaultQuestionCount
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	text, err := uc.generator.GenerateQuestions(ctx,
		candidate.Get(model.ColTechStack),
		candidate.Get(model.ColKeywords),
		parseYOE(candidate.Get(model.ColYOE)),
		count,
	)
	if err != nil {
		return nil, fmt.Errorf("generating questions: %w", err)
	}

	questions := ParseGeneratedQuestions(text)
	err = uc.candidates.Update(candidateID, map[string]any{
		model.ColQuestions:  questions,
		model.ColTranscript: []model.TranscriptEntry{},
	})
	if err != nil {
		return nil, fmt.Errorf("storing questions: %w", err)
	}

	zap.S().Named("questions").Infof("stored %d questions for candidate %s", len(questions), candidateID)
	return questions, nil
}

// ParseGeneratedQuestions turns a generated list into question records, one
// per non-blank line, with leading enumeration removed.
func ParseGeneratedQuestions(text string) []model.QuestionRecord {
	questions := []model.QuestionRecord{}
	for _, line := range strings.Split(text, "\n") {
		line = norm.NFKC.String(strings.TrimSpace(line))
		line = strings.TrimSpace(enumerationPattern.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		questions = append(questions, model.NewQuestionRecord(line))
	}
	return questions
}

func parseYOE(raw string) int {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f)
	}
	return 0
}
