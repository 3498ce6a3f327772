package repository

import (
	"fmt"
	"sync"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"
)

// SessionRepository keeps live interview sessions in memory. Nothing is
// persisted; a restart drops every session.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]*model.Session)}
}

// Start creates the session or resets an existing one.
func (r *SessionRepository) Start(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = model.NewSession(sessionID)
}

// NextQuestion returns bank[questions_asked] and remembers it as the current
// question.
func (r *SessionRepository) NextQuestion(sessionID string, bank []string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if s.QuestionsAsked >= len(bank) {
		return "", ErrNoMoreQuestions
	}
	q := bank[s.QuestionsAsked]
	s.CurrentQuestion = &q
	return q, nil
}

// RecordAnswer appends the answer to the current question and advances the
// question counter. turn is the session's turn when the answer was taken; if
// the session has since been reset or answered it returns ErrQuestionChanged.
func (r *SessionRepository) RecordAnswer(sessionID string, turn model.Turn, answer string, eval model.Evaluation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if s.Turn() != turn {
		return fmt.Errorf("%w: session %s", ErrQuestionChanged, sessionID)
	}
	s.QuestionsAsked++
	s.Transcript = append(s.Transcript, model.NewTranscriptEntry(turn.Question, answer, eval))
	return nil
}

// Get returns a copy of the session.
func (r *SessionRepository) Get(sessionID string) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return s.Clone(), nil
}

// End removes the session and returns its final state.
func (r *SessionRepository) End(sessionID string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	delete(r.sessions, sessionID)
	return s, nil
}

func (r *SessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
