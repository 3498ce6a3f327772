package util_test

import (
	"math"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/util"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("record codec", func() {
	Describe("DecodeField", func() {
		def := []any{}

		DescribeTable("falls back to the default",
			func(raw any) {
				Expect(util.DecodeField(raw, def)).To(Equal(def))
			},
			Entry("nil", nil),
			Entry("NaN", math.NaN()),
			Entry("a number", 3.5),
			Entry("empty text", ""),
			Entry("blank text", "   \n\t"),
			Entry("malformed JSON", `[{"question": "x"`),
			Entry("a JSON scalar", `42`),
			Entry("a JSON string", `"hello"`),
			Entry("a nil slice", []string(nil)),
			Entry("an unsupported type", true),
		)

		It("parses JSON lists", func() {
			got := util.DecodeField(`[{"question":"Q1"},"Q2"]`, def)
			Expect(got).To(Equal([]any{map[string]any{"question": "Q1"}, "Q2"}))
		})

		It("parses JSON objects", func() {
			got := util.DecodeField(`  {"average_score": 7}  `, map[string]any{})
			Expect(got).To(Equal(map[string]any{"average_score": float64(7)}))
		})

		It("passes decoded values through", func() {
			in := []any{"a", "b"}
			Expect(util.DecodeField(in, def)).To(Equal(in))
			m := map[string]any{"k": "v"}
			Expect(util.DecodeField(m, def)).To(Equal(m))
		})
	})

	Describe("DecodeAs", func() {
		It("converts into typed records", func() {
			recs := util.DecodeAs(`[{"question":"Q1","answer":"A1","score":8,"strengths":["s"],"weaknesses":[]}]`, []model.TranscriptEntry{})
			Expect(recs).To(HaveLen(1))
			Expect(recs[0].Question).To(Equal("Q1"))
			Expect(*recs[0].Score).To(Equal(8.0))
			Expect(recs[0].Strengths).To(Equal([]string{"s"}))
		})

		It("returns the default on a shape mismatch", func() {
			Expect(util.DecodeAs(`{"question":"Q1"}`, []model.QuestionRecord{})).To(BeEmpty())
		})
	})

	Describe("EncodeField", func() {
		It("encodes lists and maps as JSON text", func() {
			v, err := util.EncodeField([]string{"a", "b"})
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(`["a","b"]`))

			v, err = util.EncodeField(map[string]int{"n": 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(`{"n":1}`))
		})

		It("encodes nil collections as empty JSON", func() {
			v, err := util.EncodeField([]model.TranscriptEntry(nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("[]"))

			v, err = util.EncodeField(map[string]any(nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("{}"))
		})

		It("encodes structs and pointers to structs", func() {
			score := 7.0
			v, err := util.EncodeField(&model.Summary{AverageScore: &score, Strengths: []string{}, Weaknesses: []string{}, Timestamp: "t"})
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(MatchJSON(`{"average_score":7,"strengths":[],"weaknesses":[],"timestamp":"t"}`))
		})

		It("leaves scalars unchanged", func() {
			for _, in := range []any{"completed", 3, 2.5, true} {
				v, err := util.EncodeField(in)
				Expect(err).NotTo(HaveOccurred())
				Expect(v).To(Equal(in))
			}
			v, err := util.EncodeField(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeNil())
		})

		It("round trips through DecodeField", func() {
			in := []model.QuestionRecord{model.NewQuestionRecord("Q1"), model.NewQuestionRecord("Q2")}
			v, err := util.EncodeField(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(util.DecodeAs(v, []model.QuestionRecord{})).To(Equal(in))
		})
	})

	Describe("CellText", func() {
		It("renders values as cell text", func() {
			Expect(util.CellText(nil)).To(Equal(""))
			Expect(util.CellText(math.NaN())).To(Equal(""))
			Expect(util.CellText("x")).To(Equal("x"))
			Expect(util.CellText(3)).To(Equal("3"))
		})
	})
})
