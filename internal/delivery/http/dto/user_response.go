package dto

import (
	"time"

	"refernet/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	UserType    string    `json:"user_type"`
	Phone       string    `json:"phone,omitempty"`
	LinkedinURL string    `json:"linkedin_url,omitempty"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		UserType:    string(u.Role),
		Phone:       u.Phone,
		LinkedinURL: u.LinkedinURL,
		Location:    u.Location,
		CreatedAt:   u.CreatedAt,
	}
}
