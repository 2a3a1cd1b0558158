package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the closed user_type variant. The zero value means the user has
// registered but not yet chosen a side of the marketplace.
type Role string

const (
	RoleUnset     Role = ""
	RoleJobSeeker Role = "job_seeker"
	RoleReferrer  Role = "referrer"
)

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimSpace(s)) {
	case RoleJobSeeker:
		return RoleJobSeeker, nil
	case RoleReferrer:
		return RoleReferrer, nil
	default:
		return RoleUnset, ErrUnknownRole
	}
}

func (r Role) IsSet() bool {
	return r == RoleJobSeeker || r == RoleReferrer
}

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	Phone        string
	LinkedinURL  string
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
