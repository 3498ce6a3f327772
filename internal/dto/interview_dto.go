package dto

type StartSessionRequest struct {
	SessionID string `json:"session_id"`
}

type SessionDTO struct {
	SessionID string `json:"session_id"`
}

type QuestionDTO struct {
	Question string `json:"question"`
}

type SubmitAnswerRequest struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

type FeedbackDTO struct {
	Feedback string `json:"feedback"`
}

// ConductInterviewRequest carries answers keyed by question text.
type ConductInterviewRequest struct {
	Answers     map[string]string `json:"answers" yaml:"answers"`
	KeepHistory *bool             `json:"keep_history,omitempty" yaml:"keep_history,omitempty"`
}

type GenerateQuestionsRequest struct {
	Count int `json:"count"`
}
