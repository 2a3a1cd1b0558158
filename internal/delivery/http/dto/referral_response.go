package dto

import (
	"time"

	"refernet/internal/domain/referral"

	"github.com/google/uuid"
)

type ReferralResponse struct {
	ID            uuid.UUID `json:"id"`
	JobSeekerID   uuid.UUID `json:"job_seeker_id"`
	ReferrerID    uuid.UUID `json:"referrer_id"`
	TargetCompany string    `json:"target_company"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewReferralResponse(r referral.Request) ReferralResponse {
	return ReferralResponse{
		ID:            r.ID,
		JobSeekerID:   r.JobSeekerID,
		ReferrerID:    r.ReferrerID,
		TargetCompany: r.TargetCompany,
		Message:       r.Message,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func NewReferralResponses(reqs []referral.Request) []ReferralResponse {
	out := make([]ReferralResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, NewReferralResponse(r))
	}
	return out
}
