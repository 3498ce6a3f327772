package dto

import "github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"

type CandidateListItemDTO struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	TechStack   string `json:"tech_stack"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
}

// CandidateDetailDTO is the admin view of one candidate. Interview holds the
// most recent transcript.
type CandidateDetailDTO struct {
	Profile   map[string]string       `json:"profile"`
	Questions []model.QuestionRecord  `json:"questions"`
	Interview []model.TranscriptEntry `json:"interview"`
	Summary   *model.Summary          `json:"summary,omitempty"`
	History   []model.HistoryRecord   `json:"history"`
}

func NewCandidateListItemDTO(c model.Candidate) CandidateListItemDTO {
	return CandidateListItemDTO{
		CandidateID: c.ID,
		Name:        c.Name(),
		Email:       c.Email(),
		TechStack:   c.Get(model.ColTechStack),
		Status:      c.Status(),
		Timestamp:   c.Timestamp(),
	}
}
