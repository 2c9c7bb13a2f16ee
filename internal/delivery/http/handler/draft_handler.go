package handler

import (
	"errors"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// DraftHandler stores in-progress resume drafts verbatim. The payload is
// an opaque JSON blob owned by the client; the server only sizes and
// round-trips it.
type DraftHandler struct {
	uc usecase.DraftUsecase
}

func NewDraftHandler(uc usecase.DraftUsecase) *DraftHandler {
	return &DraftHandler{uc: uc}
}

func (h *DraftHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Load)
	r.Put("/", h.Save)
	r.Delete("/", h.Discard)
}

func (h *DraftHandler) Load(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	data, found, err := h.uc.Load(c.Context(), userID)
	if err != nil {
		return mapDraftError(err)
	}
	if !found {
		return middleware.NewAppError(fiber.StatusNotFound, "No draft", nil, nil)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(data)
}

func (h *DraftHandler) Save(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	if err := h.uc.Save(c.Context(), userID, c.Body()); err != nil {
		return mapDraftError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *DraftHandler) Discard(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	if err := h.uc.Discard(c.Context(), userID); err != nil {
		return mapDraftError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapDraftError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
