package handler

import (
	"errors"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/repository"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/usecase"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/util"
	"github.com/gofiber/fiber/v2"
)

// failure maps domain errors onto HTTP statuses.
func failure(c *fiber.Ctx, message string, err error) error {
	code := fiber.StatusInternalServerError
	var formErr *util.FormError
	switch {
	case errors.As(err, &formErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: formErr.Message,
			Details: formErr.Errors,
		})
	case errors.Is(err, repository.ErrCandidateNotFound), errors.Is(err, repository.ErrSessionNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, repository.ErrNoMoreQuestions), errors.Is(err, repository.ErrQuestionChanged):
		code = fiber.StatusConflict
	case errors.Is(err, usecase.ErrNoQuestionsAvailable):
		code = fiber.StatusUnprocessableEntity
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    code,
		Message: message,
	}, err)
}
