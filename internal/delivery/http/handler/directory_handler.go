package handler

import (
	"errors"

	"refernet/internal/delivery/http/dto"
	"refernet/internal/delivery/http/middleware"
	"refernet/internal/domain/user"
	"refernet/internal/pkg/response"
	"refernet/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// DirectoryHandler serves the two matching views. Each directory is gated to
// the opposite side of the marketplace: seekers browse referrers and
// referrers browse seekers.
type DirectoryHandler struct {
	uc    usecase.DirectoryUsecase
	users usecase.UserUsecase
}

func NewDirectoryHandler(uc usecase.DirectoryUsecase, users usecase.UserUsecase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc, users: users}
}

func (h *DirectoryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/referrers", h.ListReferrers)
	r.Get("/referrers/:userID", h.GetReferrer)
	r.Get("/job-seekers", h.ListJobSeekers)
	r.Get("/job-seekers/:userID", h.GetJobSeeker)
}

func (h *DirectoryHandler) ListReferrers(c fiber.Ctx) error {
	if err := h.requireRole(c, user.RoleJobSeeker); err != nil {
		return err
	}

	cards, err := h.uc.ListReferrers(c.Context())
	if err != nil {
		return mapDirectoryUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, cards)
}

func (h *DirectoryHandler) GetReferrer(c fiber.Ctx) error {
	if err := h.requireRole(c, user.RoleJobSeeker); err != nil {
		return err
	}

	targetID, err := uuid.Parse(c.Params("userID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	detail, err := h.uc.GetReferrer(c.Context(), targetID)
	if err != nil {
		return mapDirectoryUsecaseError(err)
	}

	data := map[string]any{
		"user":    dto.NewUserResponse(detail.User),
		"profile": dto.NewReferrerProfileResponse(detail.Profile),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *DirectoryHandler) ListJobSeekers(c fiber.Ctx) error {
	if err := h.requireRole(c, user.RoleReferrer); err != nil {
		return err
	}

	cards, err := h.uc.ListJobSeekers(c.Context())
	if err != nil {
		return mapDirectoryUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, cards)
}

func (h *DirectoryHandler) GetJobSeeker(c fiber.Ctx) error {
	if err := h.requireRole(c, user.RoleReferrer); err != nil {
		return err
	}

	targetID, err := uuid.Parse(c.Params("userID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	detail, err := h.uc.GetJobSeeker(c.Context(), targetID)
	if err != nil {
		return mapDirectoryUsecaseError(err)
	}

	data := map[string]any{
		"user":    dto.NewUserResponse(detail.User),
		"profile": dto.NewJobSeekerProfileResponse(detail.Profile),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *DirectoryHandler) requireRole(c fiber.Ctx, want user.Role) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	usr, err := h.users.GetMe(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	if !usr.Role.IsSet() {
		return middleware.NewAppError(fiber.StatusConflict, "Role not selected", nil, nil)
	}
	if usr.Role != want {
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
	}
	return nil
}

func mapDirectoryUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrDirectoryEntryNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
