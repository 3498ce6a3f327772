package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"time"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/domain/fiber/handler"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/repository"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/usecase"
	"github.com/gofiber/fiber/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type stubLLM struct{}

func (stubLLM) Evaluate(ctx context.Context, question, answer string) (string, error) {
	return `{"score": 6, "strengths": ["on topic"], "weaknesses": []}`, nil
}

func (stubLLM) GenerateQuestions(ctx context.Context, techStack, keywords string, yoe, count int) (string, error) {
	return "1. What is Power Pivot?\n2. What is a slicer?", nil
}

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		TotalItems int `json:"total_items"`
	} `json:"pagination"`
	DevMessage string `json:"dev_message"`
	Trace      string `json:"trace"`
}

var _ = Describe("HTTP handlers", func() {
	var (
		app   *fiber.App
		store *repository.CandidateRepository
	)

	do := func(method, target, body string) (int, envelope) {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, target, reader)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := app.Test(req, -1)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		var env envelope
		Expect(json.NewDecoder(resp.Body).Decode(&env)).To(Succeed())
		return resp.StatusCode, env
	}

	BeforeEach(func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "candidates.xlsx")
		Expect(repository.CreateCandidatesFile(path, "Sheet1",
			[]string{"candidate_id", "name", "email", "tech_stack", "keywords", "yoe", "status", "questions_json"},
			[][]string{
				{"c001", "Asha", "asha@example.com", "Excel", "", "3", "pending", `[{"question":"Q1"},{"question":"Q2"}]`},
				{"c002", "Ben", "ben@example.com", "Excel", "", "1", "pending", ""},
			},
		)).To(Succeed())
		store = repository.NewCandidateRepository(path, filepath.Join(dir, "backups"), "Sheet1")

		llm := stubLLM{}
		sessions := usecase.NewSessionUsecase(repository.NewSessionRepository(), store, llm, []string{"Bank question"}, time.Second)
		interviews := usecase.NewInterviewUsecase(store, llm, time.Second)

		app = fiber.New()
		handler.NewInterviewHandler(sessions, interviews, true).RegisterRoutes(app)
		handler.NewAdminHandler(usecase.NewAdminUsecase(store), usecase.NewQuestionUsecase(store, llm, time.Second), 5).RegisterRoutes(app)
	})

	It("runs a live session", func() {
		code, env := do(http.MethodPost, "/start", `{"session_id":"s1"}`)
		Expect(code).To(Equal(http.StatusOK))
		Expect(env.Data).To(MatchJSON(`{"session_id":"s1"}`))

		code, env = do(http.MethodGet, "/question?session_id=s1", "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(env.Data).To(MatchJSON(`{"question":"Bank question"}`))

		code, env = do(http.MethodPost, "/answer", `{"session_id":"s1","answer":"my answer"}`)
		Expect(code).To(Equal(http.StatusOK))
		Expect(env.Data).To(MatchJSON(`{"feedback":"Score: 6/10. Strengths: on topic."}`))

		code, env = do(http.MethodGet, "/question?session_id=s1", "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(env.Message).To(Equal("No more questions"))

		code, _ = do(http.MethodGet, "/end?session_id=s1&candidate_id=c002", "")
		Expect(code).To(Equal(http.StatusOK))

		c, err := store.FindByID("c002")
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Status()).To(Equal(model.StatusCompleted))
	})

	It("maps missing sessions to 404 and missing parameters to 422", func() {
		code, env := do(http.MethodGet, "/question?session_id=ghost", "")
		Expect(code).To(Equal(http.StatusNotFound))
		Expect(env.Success).To(BeFalse())

		code, _ = do(http.MethodGet, "/question", "")
		Expect(code).To(Equal(http.StatusUnprocessableEntity))
	})

	It("keeps internal detail out of candidate-facing errors", func() {
		code, env := do(http.MethodGet, "/question?session_id=ghost", "")
		Expect(code).To(Equal(http.StatusNotFound))
		Expect(env.DevMessage).To(BeEmpty())
		Expect(env.Trace).To(BeEmpty())

		code, env = do(http.MethodPost, "/answer", `{"session_id":"ghost","answer":"a"}`)
		Expect(code).To(Equal(http.StatusNotFound))
		Expect(env.DevMessage).To(BeEmpty())
		Expect(env.Trace).To(BeEmpty())

		code, env = do(http.MethodGet, "/end?session_id=ghost&candidate_id=c999", "")
		Expect(code).To(Equal(http.StatusNotFound))
		Expect(env.DevMessage).To(BeEmpty())
		Expect(env.Trace).To(BeEmpty())

		code, env = do(http.MethodGet, "/admin/candidates/c999", "")
		Expect(code).To(Equal(http.StatusNotFound))
		Expect(env.DevMessage).To(ContainSubstring("candidate not found"))
		Expect(env.Trace).NotTo(BeEmpty())
	})

	It("conducts an interview without returning the transcript", func() {
		code, env := do(http.MethodPost, "/candidates/c001/interview", `{"answers":{"Q1":"a1","Q2":"a2"}}`)
		Expect(code).To(Equal(http.StatusOK))
		Expect(env.Data).To(MatchJSON(`{"message":"Interview completed. Transcript & summary stored securely.","ok":true}`))

		code, _ = do(http.MethodPost, "/candidates/c999/interview", `{"answers":{}}`)
		Expect(code).To(Equal(http.StatusNotFound))

		code, _ = do(http.MethodPost, "/candidates/c002/interview", `{"answers":{}}`)
		Expect(code).To(Equal(http.StatusUnprocessableEntity))
	})

	It("serves the admin views", func() {
		code, env := do(http.MethodPost, "/admin/candidates/c002/questions", `{"count":2}`)
		Expect(code).To(Equal(http.StatusCreated))
		var questions []model.QuestionRecord
		Expect(json.Unmarshal(env.Data, &questions)).To(Succeed())
		Expect(questions).To(HaveLen(2))
		Expect(questions[1].Question).To(Equal("What is a slicer?"))

		code, env = do(http.MethodGet, "/admin/candidates?status=PENDING&page=1&page_size=1", "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(env.Pagination).NotTo(BeNil())
		Expect(env.Pagination.TotalItems).To(Equal(2))

		code, env = do(http.MethodGet, "/admin/candidates/c002", "")
		Expect(code).To(Equal(http.StatusOK))
		var detail struct {
			Questions []model.QuestionRecord `json:"questions"`
		}
		Expect(json.Unmarshal(env.Data, &detail)).To(Succeed())
		Expect(detail.Questions).To(HaveLen(2))

		code, _ = do(http.MethodGet, "/admin/candidates/c999", "")
		Expect(code).To(Equal(http.StatusNotFound))
	})
})
