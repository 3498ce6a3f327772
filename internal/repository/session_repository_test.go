package repository_test

import (
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/repository"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("session repository", func() {
	var (
		repo *repository.SessionRepository
		bank = []string{"Q1", "Q2"}
	)

	BeforeEach(func() {
		repo = repository.NewSessionRepository()
	})

	It("serves the bank in order and then reports exhaustion", func() {
		repo.Start("s1")

		q, err := repo.NextQuestion("s1", bank)
		Expect(err).NotTo(HaveOccurred())
		Expect(q).To(Equal("Q1"))
		Expect(repo.RecordAnswer("s1", model.Turn{Asked: 0, Question: "Q1"}, "A1", model.NeutralEvaluation())).To(Succeed())

		q, err = repo.NextQuestion("s1", bank)
		Expect(err).NotTo(HaveOccurred())
		Expect(q).To(Equal("Q2"))
		Expect(repo.RecordAnswer("s1", model.Turn{Asked: 1, Question: "Q2"}, "A2", model.NeutralEvaluation())).To(Succeed())

		_, err = repo.NextQuestion("s1", bank)
		Expect(err).To(MatchError(repository.ErrNoMoreQuestions))

		sess, err := repo.Get("s1")
		Expect(err).NotTo(HaveOccurred())
		Expect(sess.QuestionsAsked).To(Equal(2))
		Expect(sess.Transcript).To(HaveLen(2))
		Expect(sess.Transcript[0].Question).To(Equal("Q1"))
		Expect(sess.Transcript[1].Answer).To(Equal("A2"))
	})

	It("asks the same question again until it is answered", func() {
		repo.Start("s1")
		q1, _ := repo.NextQuestion("s1", bank)
		q2, _ := repo.NextQuestion("s1", bank)
		Expect(q1).To(Equal(q2))
	})

	It("resets an existing session on start", func() {
		repo.Start("s1")
		_, _ = repo.NextQuestion("s1", bank)
		Expect(repo.RecordAnswer("s1", model.Turn{Question: "Q1"}, "A1", model.NeutralEvaluation())).To(Succeed())

		repo.Start("s1")
		sess, err := repo.Get("s1")
		Expect(err).NotTo(HaveOccurred())
		Expect(sess.QuestionsAsked).To(Equal(0))
		Expect(sess.Transcript).To(BeEmpty())
		Expect(sess.CurrentQuestion).To(BeNil())
		Expect(repo.Count()).To(Equal(1))
	})

	It("records an empty question when none was asked", func() {
		repo.Start("s1")
		Expect(repo.RecordAnswer("s1", model.Turn{}, "A", model.NeutralEvaluation())).To(Succeed())
		sess, _ := repo.Get("s1")
		Expect(sess.Transcript[0].Question).To(BeEmpty())
	})

	It("rejects an answer for a question that was already answered", func() {
		repo.Start("s1")
		_, _ = repo.NextQuestion("s1", bank)
		sess, _ := repo.Get("s1")
		turn := sess.Turn()
		Expect(turn).To(Equal(model.Turn{Asked: 0, Question: "Q1"}))

		Expect(repo.RecordAnswer("s1", turn, "first", model.NeutralEvaluation())).To(Succeed())
		Expect(repo.RecordAnswer("s1", turn, "second", model.NeutralEvaluation())).To(MatchError(repository.ErrQuestionChanged))

		sess, _ = repo.Get("s1")
		Expect(sess.QuestionsAsked).To(Equal(1))
		Expect(sess.Transcript).To(HaveLen(1))
		Expect(sess.Transcript[0].Answer).To(Equal("first"))
	})

	It("rejects an answer taken before the session was reset", func() {
		repo.Start("s1")
		_, _ = repo.NextQuestion("s1", bank)
		sess, _ := repo.Get("s1")
		turn := sess.Turn()

		repo.Start("s1")
		Expect(repo.RecordAnswer("s1", turn, "late", model.NeutralEvaluation())).To(MatchError(repository.ErrQuestionChanged))
		sess, _ = repo.Get("s1")
		Expect(sess.Transcript).To(BeEmpty())
	})

	It("hands out copies", func() {
		repo.Start("s1")
		sess, _ := repo.Get("s1")
		sess.QuestionsAsked = 99
		again, _ := repo.Get("s1")
		Expect(again.QuestionsAsked).To(Equal(0))
	})

	It("reports unknown sessions", func() {
		_, err := repo.NextQuestion("nope", bank)
		Expect(err).To(MatchError(repository.ErrSessionNotFound))
		Expect(repo.RecordAnswer("nope", model.Turn{}, "A", model.NeutralEvaluation())).To(MatchError(repository.ErrSessionNotFound))
		_, err = repo.Get("nope")
		Expect(err).To(MatchError(repository.ErrSessionNotFound))
		_, err = repo.End("nope")
		Expect(err).To(MatchError(repository.ErrSessionNotFound))
	})

	It("removes the session on end", func() {
		repo.Start("s1")
		sess, err := repo.End("s1")
		Expect(err).NotTo(HaveOccurred())
		Expect(sess.ID).To(Equal("s1"))
		Expect(repo.Count()).To(Equal(0))
		_, err = repo.Get("s1")
		Expect(err).To(MatchError(repository.ErrSessionNotFound))
	})
})
