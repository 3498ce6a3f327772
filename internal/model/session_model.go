package model

// Session is the in-memory state of a live interview. Score is a legacy
// accumulator and is not used by summaries.
type Session struct {
	ID              string            `json:"session_id"`
	QuestionsAsked  int               `json:"questions_asked"`
	Score           int               `json:"score"`
	Transcript      []TranscriptEntry `json:"transcript"`
	CurrentQuestion *string           `json:"current_question,omitempty"`
}

func NewSession(id string) *Session {
	return &Session{ID: id, Transcript: []TranscriptEntry{}}
}

// Clone returns a copy that shares nothing mutable with s.
func (s *Session) Clone() *Session {
	out := *s
	out.Transcript = append([]TranscriptEntry{}, s.Transcript...)
	if s.CurrentQuestion != nil {
		q := *s.CurrentQuestion
		out.CurrentQuestion = &q
	}
	return &out
}

// Turn identifies the question an answer was given for.
type Turn struct {
	Asked    int
	Question string
}

func (s *Session) Turn() Turn {
	t := Turn{Asked: s.QuestionsAsked}
	if s.CurrentQuestion != nil {
		t.Question = *s.CurrentQuestion
	}
	return t
}
