package handler

import (
	"errors"

	"refernet/internal/delivery/http/middleware"
	"refernet/internal/pkg/response"
	"refernet/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type DashboardHandler struct {
	uc    usecase.DashboardUsecase
	users usecase.UserUsecase
}

func NewDashboardHandler(uc usecase.DashboardUsecase, users usecase.UserUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc, users: users}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/stats", h.Stats)
}

func (h *DashboardHandler) Stats(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	actor, err := h.users.GetMe(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	stats, err := h.uc.Stats(c.Context(), actor)
	if err != nil {
		if errors.Is(err, usecase.ErrRoleNotSelected) {
			return middleware.NewAppError(fiber.StatusConflict, "Role not selected", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, stats)
}
