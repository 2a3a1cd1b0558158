package referral

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// TargetCompanyTBD is the placeholder a request carries at creation; the
// referrer fills in the real company later.
const TargetCompanyTBD = "TBD"

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCompleted, StatusRejected:
		return true
	default:
		return false
	}
}

// Request links a job seeker and a referrer; both sides are user ids, not
// profile ids.
type Request struct {
	ID            uuid.UUID
	JobSeekerID   uuid.UUID
	ReferrerID    uuid.UUID
	TargetCompany string
	Message       string
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
