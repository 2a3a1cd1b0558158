package handler

import (
	"context"
	"errors"

	"refernet/internal/delivery/http/dto"
	"refernet/internal/domain/profile"
	"refernet/internal/delivery/http/middleware"
	"refernet/internal/pkg/response"
	"refernet/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobSeekerProfileHandler struct {
	uc usecase.JobSeekerProfileUsecase
}

type saveJobSeekerProfileRequest struct {
	TargetCompanies []string    `json:"target_companies"`
	Skills          []string    `json:"skills"`
	ExperienceYears dto.FlexInt `json:"experience_years"`
	DesiredSalary   dto.FlexInt `json:"desired_salary"`
	CurrentPosition string      `json:"current_position"`
	Bio             string      `json:"bio"`
	ResumeURL       *string     `json:"resume_url"`
	Status          string      `json:"status"`
}

// tagRequest carries one tag-set value for the add/remove endpoints.
type tagRequest struct {
	Value string `json:"value"`
}

func NewJobSeekerProfileHandler(uc usecase.JobSeekerProfileUsecase) *JobSeekerProfileHandler {
	return &JobSeekerProfileHandler{uc: uc}
}

func (h *JobSeekerProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Put("/me", h.SaveMe)
	r.Post("/me/companies", h.AddTargetCompany)
	r.Delete("/me/companies", h.RemoveTargetCompany)
	r.Post("/me/skills", h.AddSkill)
	r.Delete("/me/skills", h.RemoveSkill)
}

func (h *JobSeekerProfileHandler) GetMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, found, err := h.uc.GetMyProfile(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	data := map[string]any{
		"profile": dto.NewJobSeekerProfileResponse(p),
		"exists":  found,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *JobSeekerProfileHandler) SaveMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req saveJobSeekerProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	p, err := h.uc.SaveMyProfile(c.Context(), userID, usecase.JobSeekerProfileInput{
		TargetCompanies: req.TargetCompanies,
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears.Int(),
		DesiredSalary:   req.DesiredSalary.Int(),
		CurrentPosition: req.CurrentPosition,
		Bio:             req.Bio,
		ResumeURL:       req.ResumeURL,
		Status:          req.Status,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobSeekerProfileResponse(p))
}

func (h *JobSeekerProfileHandler) AddTargetCompany(c fiber.Ctx) error {
	return h.mutateTag(c, h.uc.AddTargetCompany)
}

func (h *JobSeekerProfileHandler) RemoveTargetCompany(c fiber.Ctx) error {
	return h.mutateTag(c, h.uc.RemoveTargetCompany)
}

func (h *JobSeekerProfileHandler) AddSkill(c fiber.Ctx) error {
	return h.mutateTag(c, h.uc.AddSkill)
}

func (h *JobSeekerProfileHandler) RemoveSkill(c fiber.Ctx) error {
	return h.mutateTag(c, h.uc.RemoveSkill)
}

type jobSeekerTagOp func(ctx context.Context, userID uuid.UUID, value string) (profile.JobSeekerProfile, error)

func (h *JobSeekerProfileHandler) mutateTag(c fiber.Ctx, op jobSeekerTagOp) error {
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

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobSeekerProfileResponse(p))
}

func mapProfileUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
