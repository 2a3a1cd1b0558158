package handler

import (
	"refernet/internal/delivery/http/middleware"
	"refernet/internal/pkg/response"
	"refernet/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// VocabularyHandler exposes the fixed suggestion lists the profile editors
// offer next to their tag-set inputs.
type VocabularyHandler struct {
	uc usecase.VocabularyUsecase
}

func NewVocabularyHandler(uc usecase.VocabularyUsecase) *VocabularyHandler {
	return &VocabularyHandler{uc: uc}
}

func (h *VocabularyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/companies", h.Companies)
	r.Get("/skills", h.Skills)
	r.Get("/specializations", h.Specializations)
}

func (h *VocabularyHandler) Companies(c fiber.Ctx) error {
	names, err := h.uc.Companies(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, names)
}

func (h *VocabularyHandler) Skills(c fiber.Ctx) error {
	names, err := h.uc.Skills(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, names)
}

func (h *VocabularyHandler) Specializations(c fiber.Ctx) error {
	names, err := h.uc.Specializations(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, names)
}
