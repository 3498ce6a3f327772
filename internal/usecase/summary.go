package usecase

import (
	"math"
	"time"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"
)

// BuildSummary averages the scored entries of transcript and concatenates
// strengths and weaknesses in transcript order. Unscored entries count in
// neither the numerator nor the denominator.
func BuildSummary(transcript []model.TranscriptEntry, now time.Time) model.Summary {
	summary := model.Summary{
		Strengths:  []string{},
		Weaknesses: []string{},
		Timestamp:  now.Format(time.RFC3339Nano),
	}

	var total float64
	var scored int
	for _, entry := range transcript {
		if entry.Score != nil && !math.IsNaN(*entry.Score) && !math.IsInf(*entry.Score, 0) {
			total += *entry.Score
			scored++
		}
		summary.Strengths = append(summary.Strengths, entry.Strengths...)
		summary.Weaknesses = append(summary.Weaknesses, entry.Weaknesses...)
	}
	if scored > 0 {
		avg := total / float64(scored)
		summary.AverageScore = &avg
	}
	return summary
}
