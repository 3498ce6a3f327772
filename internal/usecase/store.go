package usecase

import "github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"

// CandidateStore is the subset of the candidate repository the use cases need.
type CandidateStore interface {
	FindByID(candidateID string) (*model.Candidate, error)
	List(status string) ([]model.Candidate, error)
	Update(candidateID string, updates map[string]any) error
	AppendHistory(candidateID string, rec model.HistoryRecord) error
}

// SessionStore is the live session registry.
type SessionStore interface {
	Start(sessionID string)
	NextQuestion(sessionID string, bank []string) (string, error)
	RecordAnswer(sessionID string, turn model.Turn, answer string, eval model.Evaluation) error
	Get(sessionID string) (*model.Session, error)
	End(sessionID string) (*model.Session, error)
	Count() int
}
