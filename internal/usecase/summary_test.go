package usecase_test

import (
	"time"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/usecase"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func scored(v float64, strengths, weaknesses []string) model.TranscriptEntry {
	return model.NewTranscriptEntry("q", "a", model.Evaluation{Score: &v, Strengths: strengths, Weaknesses: weaknesses})
}

var _ = Describe("BuildSummary", func() {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	It("averages only scored entries", func() {
		summary := usecase.BuildSummary([]model.TranscriptEntry{
			scored(8, []string{"clear"}, nil),
			model.NewTranscriptEntry("q", "a", model.NeutralEvaluation()),
			scored(6, []string{"concise"}, []string{"shallow"}),
		}, now)

		Expect(summary.AverageScore).NotTo(BeNil())
		Expect(*summary.AverageScore).To(Equal(7.0))
		Expect(summary.Strengths).To(Equal([]string{"clear", "concise"}))
		Expect(summary.Weaknesses).To(Equal([]string{"shallow"}))
		Expect(summary.Timestamp).To(Equal(now.Format(time.RFC3339Nano)))
	})

	It("has no average when nothing was scored", func() {
		summary := usecase.BuildSummary([]model.TranscriptEntry{
			model.NewTranscriptEntry("q", "a", model.NeutralEvaluation()),
		}, now)
		Expect(summary.AverageScore).To(BeNil())
		Expect(summary.Strengths).To(BeEmpty())
		Expect(summary.Strengths).NotTo(BeNil())
	})

	It("handles an empty transcript", func() {
		summary := usecase.BuildSummary(nil, now)
		Expect(summary.AverageScore).To(BeNil())
		Expect(summary.Weaknesses).NotTo(BeNil())
	})
})
