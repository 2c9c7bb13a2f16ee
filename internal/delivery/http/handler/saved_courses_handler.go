package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SavedCoursesHandler struct {
	uc usecase.SavedItemsUsecase
}

func NewSavedCoursesHandler(uc usecase.SavedItemsUsecase) *SavedCoursesHandler {
	return &SavedCoursesHandler{uc: uc}
}

func (h *SavedCoursesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/toggle", h.Toggle)
	r.Delete("/:id", h.Remove)
}

func (h *SavedCoursesHandler) List(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapSavedCoursesError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSavedCourseResponses(items))
}

// Toggle flips the saved state of the posted course and echoes the new
// state back so the client can update its bookmark icon without a
// second fetch.
func (h *SavedCoursesHandler) Toggle(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.SavedCourseRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	saved, err := h.uc.Toggle(c.Context(), userID, req.ToSavedItem())
	if err != nil {
		return mapSavedCoursesError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"saved": saved})
}

func (h *SavedCoursesHandler) Remove(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	if err := h.uc.Remove(c.Context(), userID, c.Params("id")); err != nil {
		return mapSavedCoursesError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapSavedCoursesError(err error) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
