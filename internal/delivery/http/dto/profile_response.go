package dto

import (
	"time"

	"refernet/internal/domain/profile"

	"github.com/google/uuid"
)

type JobSeekerProfileResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	TargetCompanies []string  `json:"target_companies"`
	Skills          []string  `json:"skills"`
	ExperienceYears int       `json:"experience_years"`
	DesiredSalary   int       `json:"desired_salary"`
	CurrentPosition string    `json:"current_position"`
	Bio             string    `json:"bio"`
	ResumeURL       *string   `json:"resume_url"`
	Status          string    `json:"status"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewJobSeekerProfileResponse(p profile.JobSeekerProfile) JobSeekerProfileResponse {
	return JobSeekerProfileResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		TargetCompanies: emptyIfNil(p.TargetCompanies),
		Skills:          emptyIfNil(p.Skills),
		ExperienceYears: p.ExperienceYears,
		DesiredSalary:   p.DesiredSalary,
		CurrentPosition: p.CurrentPosition,
		Bio:             p.Bio,
		ResumeURL:       p.ResumeURL,
		Status:          string(p.Status),
		UpdatedAt:       p.UpdatedAt,
	}
}

type ReferrerProfileResponse struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	CurrentCompany    string    `json:"current_company"`
	Position          string    `json:"position"`
	CompaniesCanRefer []string  `json:"companies_can_refer"`
	Specializations   []string  `json:"specializations"`
	Bio               string    `json:"bio"`
	ReferralFee       int       `json:"referral_fee"`
	Status            string    `json:"status"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func NewReferrerProfileResponse(p profile.ReferrerProfile) ReferrerProfileResponse {
	return ReferrerProfileResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		CurrentCompany:    p.CurrentCompany,
		Position:          p.Position,
		CompaniesCanRefer: emptyIfNil(p.CompaniesCanRefer),
		Specializations:   emptyIfNil(p.Specializations),
		Bio:               p.Bio,
		ReferralFee:       p.ReferralFee,
		Status:            string(p.Status),
		UpdatedAt:         p.UpdatedAt,
	}
}

// emptyIfNil keeps tag lists rendering as [] rather than null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
