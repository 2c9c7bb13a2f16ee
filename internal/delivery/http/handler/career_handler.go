package handler

import (
	"errors"
	"strconv"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/career"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CareerHandler struct {
	uc usecase.CareerUsecase
}

type assessmentRequest struct {
	Answers          []int  `json:"answers"`
	TimePerWeek      int    `json:"time_per_week"`
	AcademicYear     string `json:"academic_year"`
	FinancialBarrier string `json:"financial_barrier"`
	HasInternet      bool   `json:"has_internet"`
}

func NewCareerHandler(uc usecase.CareerUsecase) *CareerHandler {
	return &CareerHandler{uc: uc}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/assessment", h.Assess)
	r.Get("/roadmap/:path", h.Roadmap)
}

func (h *CareerHandler) Assess(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req assessmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	result, err := h.uc.Assess(c.Context(), userID, usecase.AssessmentInput{
		Answers: req.Answers,
		Constraints: career.Constraints{
			TimePerWeek:      req.TimePerWeek,
			AcademicYear:     req.AcademicYear,
			FinancialBarrier: req.FinancialBarrier,
			HasInternet:      req.HasInternet,
		},
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Questionnaire must have 20 answers in 1..5", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAssessmentResponse(result))
}

func (h *CareerHandler) Roadmap(c fiber.Ctx) error {
	if _, err := userIDFromCtx(c); err != nil {
		return err
	}

	timePerWeek := 10
	if raw := c.Query("time_per_week"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		timePerWeek = n
	}

	plan, err := h.uc.RoadmapFor(c.Context(), c.Params("path"), timePerWeek)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Unknown career path", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRoadmapResponse(plan))
}
