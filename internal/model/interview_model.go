package model

// QuestionRecord is a stored interview question. Answer, score, strengths
// and weaknesses stay empty until an interview overwrites them.
type QuestionRecord struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Score      *float64 `json:"score"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

func NewQuestionRecord(question string) QuestionRecord {
	return QuestionRecord{
		Question:   question,
		Strengths:  []string{},
		Weaknesses: []string{},
	}
}

// TranscriptEntry is one answered question of an interview pass.
type TranscriptEntry struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Score      *float64 `json:"score"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Feedback   string   `json:"feedback,omitempty"`
}

// Evaluation is the evaluator's verdict on one answer.
type Evaluation struct {
	Score      *float64 `json:"score"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Feedback   string   `json:"feedback,omitempty"`
}

// NeutralEvaluation is substituted when the evaluator fails or answers with
// something that is not a JSON object.
func NeutralEvaluation() Evaluation {
	return Evaluation{Strengths: []string{}, Weaknesses: []string{}}
}

func NewTranscriptEntry(question, answer string, eval Evaluation) TranscriptEntry {
	entry := TranscriptEntry{
		Question:   question,
		Answer:     answer,
		Score:      eval.Score,
		Strengths:  eval.Strengths,
		Weaknesses: eval.Weaknesses,
		Feedback:   eval.Feedback,
	}
	if entry.Strengths == nil {
		entry.Strengths = []string{}
	}
	if entry.Weaknesses == nil {
		entry.Weaknesses = []string{}
	}
	return entry
}

// Summary aggregates a transcript. AverageScore is nil when no entry was scored.
type Summary struct {
	AverageScore *float64 `json:"average_score"`
	Strengths    []string `json:"strengths"`
	Weaknesses   []string `json:"weaknesses"`
	Timestamp    string   `json:"timestamp"`
}

// HistoryRecord is the compact per-interview entry of interview_history.
type HistoryRecord struct {
	Timestamp    string  `json:"timestamp"`
	Summary      Summary `json:"summary"`
	NumQuestions int     `json:"num_questions"`
}

// InterviewResult is all a candidate-facing caller gets back from an interview.
type InterviewResult struct {
	Message string `json:"message"`
	OK      bool   `json:"ok"`
}
