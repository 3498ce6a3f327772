package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/dto"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/middleware"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/repository"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/usecase"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type InterviewHandler struct {
	sessions    *usecase.SessionUsecase
	interviews  *usecase.InterviewUsecase
	keepHistory bool
}

func NewInterviewHandler(sessions *usecase.SessionUsecase, interviews *usecase.InterviewUsecase, keepHistory bool) *InterviewHandler {
	return &InterviewHandler{sessions: sessions, interviews: interviews, keepHistory: keepHistory}
}

// RegisterRoutes mounts the candidate-facing routes. Their errors never
// expose internal detail.
func (h *InterviewHandler) RegisterRoutes(app fiber.Router) {
	app.Post("/start", util.Public, h.Start)
	app.Get("/question", util.Public, h.Question)
	app.Post("/answer", util.Public, middleware.SessionRateLimiter(10, 10*time.Second), h.Answer)
	app.Get("/end", util.Public, h.End)
	app.Post("/candidates/:id/interview", util.Public, middleware.RateLimiter(5, 1*time.Minute), h.ConductInterview)
}

func (h *InterviewHandler) Start(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "invalid request body",
			}, err)
		}
	}
	if req.SessionID == "" {
		req.SessionID = c.Query("session_id")
	}

	id := h.sessions.Start(req.SessionID)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Session started",
		Data:    dto.SessionDTO{SessionID: id},
	})
}

func (h *InterviewHandler) Question(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return failure(c, "session_id is required", util.NewFormError("invalid query", map[string]string{"session_id": "required"}))
	}

	q, err := h.sessions.NextQuestion(sessionID)
	if errors.Is(err, repository.ErrNoMoreQuestions) {
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: "No more questions",
			Data:    dto.QuestionDTO{},
		})
	}
	if err != nil {
		return failure(c, "failed to get next question", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get question",
		Data:    dto.QuestionDTO{Question: q},
	})
}

func (h *InterviewHandler) Answer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if strings.TrimSpace(req.SessionID) == "" {
		return failure(c, "session_id is required", util.NewFormError("invalid request", map[string]string{"session_id": "required"}))
	}

	feedback, err := h.sessions.SubmitAnswer(c.UserContext(), req.SessionID, req.Answer)
	if err != nil {
		return failure(c, "failed to submit answer", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Answer recorded",
		Data:    dto.FeedbackDTO{Feedback: feedback},
	})
}

func (h *InterviewHandler) End(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return failure(c, "session_id is required", util.NewFormError("invalid query", map[string]string{"session_id": "required"}))
	}
	if err := h.sessions.End(sessionID, c.Query("candidate_id")); err != nil {
		return failure(c, "failed to end session", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Session ended",
	})
}

func (h *InterviewHandler) ConductInterview(c *fiber.Ctx) error {
	var req dto.ConductInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	keepHistory := h.keepHistory
	if req.KeepHistory != nil {
		keepHistory = *req.KeepHistory
	}

	result, err := h.interviews.ConductInterview(c.UserContext(), c.Params("id"), req.Answers, keepHistory)
	if err != nil {
		return failure(c, "failed to conduct interview", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: result.Message,
		Data:    result,
	})
}
