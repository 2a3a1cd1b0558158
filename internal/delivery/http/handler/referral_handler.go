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

type ReferralHandler struct {
	uc    usecase.ReferralUsecase
	users usecase.UserUsecase
}

type createReferralRequest struct {
	CounterpartUserID uuid.UUID `json:"counterpart_user_id"`
	Message           string    `json:"message"`
}

type updateReferralRequest struct {
	TargetCompany *string `json:"target_company"`
	Message       *string `json:"message"`
	Status        *string `json:"status"`
}

func NewReferralHandler(uc usecase.ReferralUsecase, users usecase.UserUsecase) *ReferralHandler {
	return &ReferralHandler{uc: uc, users: users}
}

func (h *ReferralHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.ListMine)
	r.Patch("/:id", h.Update)
}

func (h *ReferralHandler) Create(c fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	var req createReferralRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	created, err := h.uc.Create(c.Context(), actor, usecase.CreateReferralInput{
		CounterpartUserID: req.CounterpartUserID,
		Message:           req.Message,
	})
	if err != nil {
		return mapReferralUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewReferralResponse(created))
}

func (h *ReferralHandler) ListMine(c fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	reqs, err := h.uc.ListMine(c.Context(), actor)
	if err != nil {
		return mapReferralUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewReferralResponses(reqs))
}

func (h *ReferralHandler) Update(c fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid referral id", nil, err)
	}

	var req updateReferralRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), actor, id, usecase.UpdateReferralInput{
		TargetCompany: req.TargetCompany,
		Message:       req.Message,
		Status:        req.Status,
	})
	if err != nil {
		return mapReferralUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewReferralResponse(updated))
}

func (h *ReferralHandler) actor(c fiber.Ctx) (user.User, error) {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return user.User{}, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	usr, err := h.users.GetMe(c.Context(), userID)
	if err != nil {
		return user.User{}, middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return usr, nil
}

func mapReferralUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrReferralNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, usecase.ErrRoleNotSelected):
		return middleware.NewAppError(fiber.StatusConflict, "Role not selected", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
