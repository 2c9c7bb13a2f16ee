package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MentorshipHandler struct {
	uc usecase.MentorshipUsecase
}

type respondRequest struct {
	Accept bool `json:"accept"`
}

type createGoalRequest struct {
	Title      string  `json:"title"`
	TotalTasks int     `json:"total_tasks"`
	DueDate    *string `json:"due_date"`
}

type goalProgressRequest struct {
	CompletedTasks int `json:"completed_tasks"`
}

func NewMentorshipHandler(uc usecase.MentorshipUsecase) *MentorshipHandler {
	return &MentorshipHandler{uc: uc}
}

func (h *MentorshipHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/mentors", h.ListMentors)
	r.Post("/mentors/:id/request", h.RequestMentorship)
	r.Get("/requests", h.ListRequests)
	r.Post("/requests/:id/respond", h.RespondToRequest)
	r.Get("/goals", h.ListGoals)
	r.Post("/goals", h.CreateGoal)
	r.Put("/goals/:id/progress", h.UpdateGoalProgress)
}

func (h *MentorshipHandler) ListMentors(c fiber.Ctx) error {
	mentors, err := h.uc.ListMentors(c.Context())
	if err != nil {
		return mapMentorshipError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMentorResponses(mentors))
}

func (h *MentorshipHandler) RequestMentorship(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	mentorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid mentor id", nil, err)
	}

	req, err := h.uc.RequestMentorship(c.Context(), userID, mentorID)
	if err != nil {
		return mapMentorshipError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewMentorshipRequestResponse(req))
}

func (h *MentorshipHandler) ListRequests(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	reqs, err := h.uc.ListRequests(c.Context(), userID)
	if err != nil {
		return mapMentorshipError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMentorshipRequestResponses(reqs))
}

func (h *MentorshipHandler) RespondToRequest(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request id", nil, err)
	}

	var req respondRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.RespondToRequest(c.Context(), userID, requestID, req.Accept); err != nil {
		return mapMentorshipError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *MentorshipHandler) ListGoals(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	goals, err := h.uc.ListGoals(c.Context(), userID)
	if err != nil {
		return mapMentorshipError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewGoalResponses(goals))
}

func (h *MentorshipHandler) CreateGoal(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req createGoalRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	goal, err := h.uc.CreateGoal(c.Context(), userID, usecase.GoalInput{
		Title:      req.Title,
		TotalTasks: req.TotalTasks,
		DueDate:    req.DueDate,
	})
	if err != nil {
		return mapMentorshipError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewGoalResponse(usecase.GoalView{Goal: goal, Progress: goal.Progress()}))
}

func (h *MentorshipHandler) UpdateGoalProgress(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid goal id", nil, err)
	}

	var req goalProgressRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.UpdateGoalProgress(c.Context(), userID, goalID, req.CompletedTasks); err != nil {
		return mapMentorshipError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapMentorshipError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrSelfMentorship), errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrAlreadyRequested):
		return middleware.NewAppError(fiber.StatusConflict, "Mentorship already requested", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
