package handler

import (
	"context"

	"refernet/internal/delivery/http/dto"
	"refernet/internal/delivery/http/middleware"
	"refernet/internal/domain/profile"
	"refernet/internal/pkg/response"
	"refernet/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ReferrerProfileHandler struct {
	uc usecase.ReferrerProfileUsecase
}

type saveReferrerProfileRequest struct {
	CurrentCompany    string      `json:"current_company"`
	Position          string      `json:"position"`
	CompaniesCanRefer []string    `json:"companies_can_refer"`
	Specializations   []string    `json:"specializations"`
	Bio               string      `json:"bio"`
	ReferralFee       dto.FlexInt `json:"referral_fee"`
	Status            string      `json:"status"`
}

func NewReferrerProfileHandler(uc usecase.ReferrerProfileUsecase) *ReferrerProfileHandler {
	return &ReferrerProfileHandler{uc: uc}
}

func (h *ReferrerProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Put("/me", h.SaveMe)
	r.Post("/me/companies", h.AddCompany)
	r.Delete("/me/companies", h.RemoveCompany)
	r.Post("/me/specializations", h.AddSpecialization)
	r.Delete("/me/specializations", h.RemoveSpecialization)
}

func (h *ReferrerProfileHandler) GetMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, found, err := h.uc.GetMyProfile(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	data := map[string]any{
		"profile": dto.NewReferrerProfileResponse(p),
		"exists":  found,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *ReferrerProfileHandler) SaveMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req saveReferrerProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	p, err := h.uc.SaveMyProfile(c.Context(), userID, usecase.ReferrerProfileInput{
		CurrentCompany:    req.CurrentCompany,
		Position:          req.Position,
		CompaniesCanRefer: req.CompaniesCanRefer,
		Specializations:   req.Specializations,
		Bio:               req.Bio,
		ReferralFee:       req.ReferralFee.Int(),
		Status:            req.Status,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewReferrerProfileResponse(p))
}

func (h *ReferrerProfileHandler) AddCompany(c fiber.Ctx) error {
	return h.mutateTag(c, h.uc.AddCompany)
}

func (h *ReferrerProfileHandler) RemoveCompany(c fiber.Ctx) error {
	return h.mutateTag(c, h.uc.RemoveCompany)
}

func (h *ReferrerProfileHandler) AddSpecialization(c fiber.Ctx) error {
	return h.mutateTag(c, h.uc.AddSpecialization)
}

func (h *ReferrerProfileHandler) RemoveSpecialization(c fiber.Ctx) error {
	return h.mutateTag(c, h.uc.RemoveSpecialization)
}

type referrerTagOp func(ctx context.Context, userID uuid.UUID, value string) (profile.ReferrerProfile, error)

func (h *ReferrerProfileHandler) mutateTag(c fiber.Ctx, op referrerTagOp) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req tagRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	p, err := op(c.Context(), userID, req.Value)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewReferrerProfileResponse(p))
}
