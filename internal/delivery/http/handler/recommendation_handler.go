package handler

import (
	"strings"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/recommendation"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Recommend)
}

// Recommend returns the course buckets for the caller's stored skills. An
// explicit skills query overrides the profile, which lets the client
// preview recommendations for an uncommitted skill list.
func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var buckets recommendation.Buckets
	if raw := c.Query("skills"); raw != "" {
		buckets, err = h.uc.RecommendForSkills(c.Context(), splitSkillsQuery(raw))
	} else {
		buckets, err = h.uc.Recommend(c.Context(), userID)
	}
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecommendationsResponse(buckets))
}

func splitSkillsQuery(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
