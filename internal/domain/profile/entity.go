package profile

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// JobSeekerProfile is the seeker side of the marketplace, 1:1 with a user by
// convention only (the uniqueness guard is query-before-create, not a DB
// constraint).
type JobSeekerProfile struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	TargetCompanies []string
	Skills          []string
	ExperienceYears int
	DesiredSalary   int
	CurrentPosition string
	Bio             string
	ResumeURL       *string
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ReferrerProfile struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	CurrentCompany    string
	Position          string
	CompaniesCanRefer []string
	Specializations   []string
	Bio               string
	ReferralFee       int
	Status            Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
