package handler

import (
	"mime/multipart"

	"refernet/internal/delivery/http/middleware"
	"refernet/internal/domain/user"
	"refernet/internal/pkg/response"
	"refernet/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ResumeStore persists an uploaded resume and returns its public URL.
type ResumeStore interface {
	Save(fh *multipart.FileHeader) (string, error)
}

type UploadHandler struct {
	store ResumeStore
	users usecase.UserUsecase
}

func NewUploadHandler(store ResumeStore, users usecase.UserUsecase) *UploadHandler {
	return &UploadHandler{store: store, users: users}
}

func (h *UploadHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/resume", h.Resume)
}

// Resume accepts a multipart file and hands back the URL the caller places
// into its profile draft. Only job seekers carry resumes.
func (h *UploadHandler) Resume(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	usr, err := h.users.GetMe(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	if usr.Role != user.RoleJobSeeker {
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing file", nil, err)
	}

	url, err := h.store.Save(fh)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]string{"file_url": url})
}
