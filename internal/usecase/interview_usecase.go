package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/metrics"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/service"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/util"
	"go.uber.org/zap"
)

var ErrNoQuestionsAvailable = errors.New("no questions available")

const interviewCompletedMessage = "Interview completed. Transcript & summary stored securely."

type InterviewUsecase struct {
	candidates CandidateStore
	evaluator  service.Evaluator
	timeout    time.Duration
	now        func() time.Time
}

func NewInterviewUsecase(candidates CandidateStore, evaluator service.Evaluator, timeout time.Duration) *InterviewUsecase {
	return &InterviewUsecase{
		candidates: candidates,
		evaluator:  evaluator,
		timeout:    timeout,
		now:        time.Now,
	}
}

// ConductInterview runs one full interview pass for the candidate: every
// stored question is evaluated in order against answers (keyed by question
// text), the fresh transcript and its summary are written in a single update
// and, with keepHistory, a compact record is appended to interview_history.
// Nothing about the transcript is returned.
func (uc *InterviewUsecase) ConductInterview(ctx context.Context, candidateID string, answers map[string]string, keepHistory bool) (*model.InterviewResult, error) {
	log := zap.S().Named("interview").With("candidate_id", candidateID)

	candidate, err := uc.candidates.FindByID(candidateID)
	if err != nil {
		metrics.IncreaseInterviewsMetric(metrics.ResultFailed)
		return nil, err
	}

	questions := resolveQuestions(candidate.Get(model.ColQuestions))
	if len(questions) == 0 {
		metrics.IncreaseInterviewsMetric(metrics.ResultFailed)
		return nil, fmt.Errorf("%w for candidate %s", ErrNoQuestionsAvailable, candidateID)
	}

	transcript := make([]model.TranscriptEntry, 0, len(questions))
	for i, question := range questions {
		answer := answers[question]
		eval := uc.evaluate(ctx, question, answer)
		log.Debugf("question %d/%d evaluated", i+1, len(questions))
		transcript = append(transcript, model.NewTranscriptEntry(question, answer, eval))
	}

	now := uc.now()
	summary := BuildSummary(transcript, now)
	stamp := now.Format(time.RFC3339Nano)

	err = uc.candidates.Update(candidateID, map[string]any{
		model.ColLastInterview: transcript,
		model.ColTranscript:    transcript,
		model.ColSummary:       summary,
		model.ColStatus:        model.StatusCompleted,
		model.ColTimestamp:     stamp,
	})
	if err != nil {
		metrics.IncreaseInterviewsMetric(metrics.ResultFailed)
		return nil, fmt.Errorf("storing interview results: %w", err)
	}

	if keepHistory {
		rec := model.HistoryRecord{
			Timestamp:    stamp,
			Summary:      summary,
			NumQuestions: len(transcript),
		}
		if err := uc.candidates.AppendHistory(candidateID, rec); err != nil {
			metrics.IncreaseInterviewsMetric(metrics.ResultFailed)
			return nil, fmt.Errorf("appending interview history: %w", err)
		}
	}

	metrics.IncreaseInterviewsMetric(metrics.ResultSucceeded)
	log.Infof("interview completed with %d questions", len(transcript))
	return &model.InterviewResult{Message: interviewCompletedMessage, OK: true}, nil
}

// evaluate never fails: evaluator errors and replies that are not a JSON
// object degrade to the neutral evaluation.
func (uc *InterviewUsecase) evaluate(ctx context.Context, question, answer string) model.Evaluation {
	eval, _ := evaluateAnswer(ctx, uc.evaluator, uc.timeout, question, answer)
	return eval
}

// evaluateAnswer also returns the evaluator's reply when it was not usable
// as an evaluation, and "" otherwise.
func evaluateAnswer(ctx context.Context, evaluator service.Evaluator, timeout time.Duration, question, answer string) (model.Evaluation, string) {
	log := zap.S().Named("evaluator")

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	raw, err := evaluator.Evaluate(ctx, question, answer)
	if err != nil {
		log.Warnf("evaluation failed, using neutral result: %v", err)
		metrics.IncreaseEvaluationsMetric(metrics.ResultDegraded)
		return model.NeutralEvaluation(), ""
	}
	eval, ok := service.ParseEvaluation(raw)
	if !ok {
		log.Warn("evaluator reply is not a JSON object, using neutral result")
		log.Debugf("raw evaluator reply: %s", raw)
		metrics.IncreaseEvaluationsMetric(metrics.ResultDegraded)
		return model.NeutralEvaluation(), strings.TrimSpace(raw)
	}
	metrics.IncreaseEvaluationsMetric(metrics.ResultSucceeded)
	return eval, ""
}

// resolveQuestions decodes questions_json into question texts. When the cell
// holds plain text instead of JSON every non-blank line becomes a question.
func resolveQuestions(raw string) []string {
	items := util.DecodeAs(raw, []any{})

	trimmed := strings.TrimSpace(raw)
	if len(items) == 0 && trimmed != "" && !json.Valid([]byte(trimmed)) {
		for _, line := range strings.Split(trimmed, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				items = append(items, map[string]any{"question": line})
			}
		}
	}

	questions := make([]string, 0, len(items))
	for _, item := range items {
		if q := strings.TrimSpace(questionText(item)); q != "" {
			questions = append(questions, q)
		}
	}
	return questions
}

func questionText(item any) string {
	switch v := item.(type) {
	case string:
		return v
	case map[string]any:
		for _, key := range []string{"question", "text"} {
			if s, ok := v[key].(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
