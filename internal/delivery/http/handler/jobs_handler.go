package handler

import (
	"errors"
	"strconv"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobBoardUsecase
}

func NewJobsHandler(uc usecase.JobBoardUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	offset := 0
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		offset = n
	}

	page, err := h.uc.List(c.Context(), usecase.JobBoardParams{
		Search:         c.Query("search"),
		Location:       c.Query("location"),
		EmploymentType: c.Query("employment_type"),
		Experience:     c.Query("experience"),
		Offset:         offset,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobBoardResponse(page.Listings, page.Total, page.HasMore))
}
