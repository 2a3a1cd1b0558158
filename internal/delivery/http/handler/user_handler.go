package handler

import (
	"errors"
	"strings"

	"refernet/internal/delivery/http/dto"
	"refernet/internal/delivery/http/middleware"
	"refernet/internal/pkg/response"
	"refernet/internal/usecase"
	useruc "refernet/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

type updateMeRequest struct {
	UserType    *string `json:"user_type"`
	Phone       *string `json:"phone"`
	LinkedinURL *string `json:"linkedin_url"`
	Location    *string `json:"location"`
	FullName    *string `json:"full_name"`
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Put("/me", h.UpdateMe)
	r.Get("/me/navigation", h.Navigation)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	usr, err := h.uc.GetMe(c.Context(), userID)
	if err != nil {
		return mapUserUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateMeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	usr, err := h.uc.UpdateMe(c.Context(), userID, useruc.UpdateMeInput{
		UserType:    req.UserType,
		Phone:       req.Phone,
		LinkedinURL: req.LinkedinURL,
		Location:    req.Location,
		FullName:    req.FullName,
	})
	if err != nil {
		return mapUserUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) Navigation(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, usr, err := h.uc.Navigation(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrRoleNotSelected) {
			return middleware.NewAppError(fiber.StatusConflict, "Role not selected", nil, err)
		}
		return mapUserUsecaseError(err)
	}

	data := map[string]any{
		"items": items,
		"user": map[string]string{
			"initial": initialOf(usr.FullName, usr.Email),
			"name":    usr.FullName,
			"email":   usr.Email,
		},
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

// initialOf picks the single letter the shell shows in the avatar circle.
func initialOf(fullName, email string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		name = strings.TrimSpace(email)
	}
	if name == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(name)[0]))
}

func mapUserUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, useruc.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
