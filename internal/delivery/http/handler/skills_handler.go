package handler

import (
	"errors"
	"net/url"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillsHandler struct {
	uc usecase.SkillSetUsecase
}

type skillRequest struct {
	Skill string `json:"skill"`
}

func NewSkillsHandler(uc usecase.SkillSetUsecase) *SkillsHandler {
	return &SkillsHandler{uc: uc}
}

func (h *SkillsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Delete("/:skill", h.Remove)
}

func (h *SkillsHandler) List(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	skills, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapSkillsError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, skillsPayload(skills))
}

func (h *SkillsHandler) Add(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	skills, err := h.uc.Add(c.Context(), userID, req.Skill)
	if err != nil {
		return mapSkillsError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, skillsPayload(skills))
}

func (h *SkillsHandler) Remove(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	name := c.Params("skill")
	if decoded, derr := url.PathUnescape(name); derr == nil {
		name = decoded
	}

	skills, err := h.uc.Remove(c.Context(), userID, name)
	if err != nil {
		return mapSkillsError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, skillsPayload(skills))
}

func skillsPayload(skills []string) map[string]any {
	if skills == nil {
		skills = []string{}
	}
	return map[string]any{"skills": skills}
}

func mapSkillsError(err error) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
