package model

// Column names of the candidate table.
const (
	ColCandidateID   = "candidate_id"
	ColName          = "name"
	ColEmail         = "email"
	ColTechStack     = "tech_stack"
	ColKeywords      = "keywords"
	ColYOE           = "yoe"
	ColStatus        = "status"
	ColTimestamp     = "timestamp"
	ColQuestions     = "questions_json"
	ColTranscript    = "transcript_json"
	ColSummary       = "summary_json"
	ColLastInterview = "last_interview_json"
	ColHistory       = "interview_history"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// RequiredColumns always exist after a table is loaded.
var RequiredColumns = []string{ColTranscript, ColSummary, ColStatus, ColTimestamp}

// ProfileColumns are the core, non JSON-shaped candidate fields.
var ProfileColumns = []string{ColCandidateID, ColName, ColEmail, ColTechStack, ColKeywords, ColYOE, ColStatus, ColTimestamp}

// Candidate is a detached snapshot of one row of the candidate table.
type Candidate struct {
	ID     string            `json:"candidate_id"`
	Fields map[string]string `json:"fields"`
}

// Get returns the raw cell for col. A missing column reads as empty.
func (c *Candidate) Get(col string) string {
	if c == nil || c.Fields == nil {
		return ""
	}
	return c.Fields[col]
}

func (c *Candidate) Name() string      { return c.Get(ColName) }
func (c *Candidate) Email() string     { return c.Get(ColEmail) }
func (c *Candidate) Status() string    { return c.Get(ColStatus) }
func (c *Candidate) Timestamp() string { return c.Get(ColTimestamp) }

// Profile returns the core fields only.
func (c *Candidate) Profile() map[string]string {
	profile := make(map[string]string, len(ProfileColumns))
	for _, col := range ProfileColumns {
		profile[col] = c.Get(col)
	}
	return profile
}
