package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/metrics"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	noFeedback       = "No feedback available."
	maxFeedbackItems = 3
)

// SessionUsecase drives the interactive flow: start, ask, answer, end.
type SessionUsecase struct {
	sessions   SessionStore
	candidates CandidateStore
	evaluator  service.Evaluator
	bank       []string
	timeout    time.Duration
	now        func() time.Time
}

func NewSessionUsecase(sessions SessionStore, candidates CandidateStore, evaluator service.Evaluator, bank []string, timeout time.Duration) *SessionUsecase {
	return &SessionUsecase{
		sessions:   sessions,
		candidates: candidates,
		evaluator:  evaluator,
		bank:       bank,
		timeout:    timeout,
		now:        time.Now,
	}
}

// Start resets the session, minting a new id when sessionID is empty.
func (uc *SessionUsecase) Start(sessionID string) string {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	uc.sessions.Start(sessionID)
	metrics.UpdateSessionsActiveMetric(uc.sessions.Count())
	zap.S().Named("session").Debugf("session %s started", sessionID)
	return sessionID
}

func (uc *SessionUsecase) NextQuestion(sessionID string) (string, error) {
	return uc.sessions.NextQuestion(sessionID, uc.bank)
}

// SubmitAnswer evaluates answer against the question currently posed and
// records it. A structured reply is condensed into a short feedback line; a
// plain-text reply is passed on as the feedback itself. An answer whose
// session was reset or answered meanwhile is dropped with ErrQuestionChanged.
func (uc *SessionUsecase) SubmitAnswer(ctx context.Context, sessionID, answer string) (string, error) {
	sess, err := uc.sessions.Get(sessionID)
	if err != nil {
		return "", err
	}
	turn := sess.Turn()

	eval, freeText := evaluateAnswer(ctx, uc.evaluator, uc.timeout, turn.Question, answer)
	feedback := freeText
	if feedback == "" {
		feedback = formatFeedback(eval)
	}
	eval.Feedback = feedback

	if err := uc.sessions.RecordAnswer(sessionID, turn, answer, eval); err != nil {
		return "", err
	}
	return feedback, nil
}

// End discards the session. With a candidate id its transcript and summary
// are stored on that candidate's row first and the candidate is marked
// completed; if that store fails the session stays live.
func (uc *SessionUsecase) End(sessionID, candidateID string) error {
	sess, err := uc.sessions.Get(sessionID)
	if err != nil {
		return err
	}

	if candidateID = strings.TrimSpace(candidateID); candidateID != "" {
		transcript := sess.Transcript
		if transcript == nil {
			transcript = []model.TranscriptEntry{}
		}
		now := uc.now()
		err = uc.candidates.Update(candidateID, map[string]any{
			model.ColTranscript:    transcript,
			model.ColLastInterview: transcript,
			model.ColSummary:       BuildSummary(transcript, now),
			model.ColStatus:        model.StatusCompleted,
			model.ColTimestamp:     now.Format(time.RFC3339Nano),
		})
		if err != nil {
			return fmt.Errorf("storing session %s: %w", sessionID, err)
		}
		zap.S().Named("session").Infof("session %s stored for candidate %s", sessionID, candidateID)
	}

	if _, err := uc.sessions.End(sessionID); err != nil {
		return err
	}
	metrics.UpdateSessionsActiveMetric(uc.sessions.Count())
	return nil
}

func formatFeedback(eval model.Evaluation) string {
	if fb := strings.TrimSpace(eval.Feedback); fb != "" {
		return fb
	}
	if eval.Score == nil && len(eval.Strengths) == 0 && len(eval.Weaknesses) == 0 {
		return noFeedback
	}

	parts := []string{}
	if eval.Score != nil {
		parts = append(parts, fmt.Sprintf("Score: %g/10.", *eval.Score))
	}
	if len(eval.Strengths) > 0 {
		parts = append(parts, "Strengths: "+strings.Join(firstN(eval.Strengths, maxFeedbackItems), "; ")+".")
	}
	if len(eval.Weaknesses) > 0 {
		parts = append(parts, "Weaknesses: "+strings.Join(firstN(eval.Weaknesses, maxFeedbackItems), "; ")+".")
	}
	return strings.Join(parts, " ")
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
