package handler

import (
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/dto"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/usecase"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	admin         *usecase.AdminUsecase
	questions     *usecase.QuestionUsecase
	questionCount int
}

func NewAdminHandler(admin *usecase.AdminUsecase, questions *usecase.QuestionUsecase, questionCount int) *AdminHandler {
	return &AdminHandler{admin: admin, questions: questions, questionCount: questionCount}
}

func (h *AdminHandler) RegisterRoutes(app fiber.Router) {
	admin := app.Group("/admin")
	admin.Get("/candidates", h.List)
	admin.Get("/candidates/:id", h.Detail)
	admin.Post("/candidates/:id/questions", h.GenerateQuestions)
}

func (h *AdminHandler) List(c *fiber.Ctx) error {
	items, pagination, err := h.admin.ListCandidates(
		c.Query("status"),
		c.QueryInt("page", 1),
		c.QueryInt("page_size", usecase.DefaultPageSize),
	)
	if err != nil {
		return failure(c, "failed to list candidates", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success list candidates",
		Data:       items,
		Pagination: pagination,
	})
}

func (h *AdminHandler) Detail(c *fiber.Ctx) error {
	detail, err := h.admin.CandidateDetail(c.Params("id"))
	if err != nil {
		return failure(c, "failed to get candidate", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get candidate",
		Data:    detail,
	})
}

func (h *AdminHandler) GenerateQuestions(c *fiber.Ctx) error {
	req := dto.GenerateQuestionsRequest{Count: h.questionCount}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "invalid request body",
			}, err)
		}
	}

	questions, err := h.questions.GenerateAndStore(c.UserContext(), c.Params("id"), req.Count)
	if err != nil {
		return failure(c, "failed to generate questions", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Questions generated",
		Data:    questions,
	})
}
