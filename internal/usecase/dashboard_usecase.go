package usecase

import (
	"context"
	"fmt"
	"math"

	"refernet/internal/domain/referral"
	"refernet/internal/domain/user"
	"refernet/internal/repository"
)

// DashboardStats are derived values only; nothing here is persisted.
type DashboardStats struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	Completed   int `json:"completed"`
	SuccessRate int `json:"success_rate"`

	Cards []StatCard `json:"cards"`
}

// StatCard mirrors one of the four read-only stat displays, labelled for the
// viewer's role.
type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Trend string `json:"trend"`
}

type DashboardUsecase interface {
	Stats(ctx context.Context, actor user.User) (DashboardStats, error)
}

type Dashboard struct {
	requests repository.ReferralRequestRepository
}

func NewDashboardUsecase(requests repository.ReferralRequestRepository) *Dashboard {
	return &Dashboard{requests: requests}
}

func (d *Dashboard) Stats(ctx context.Context, actor user.User) (DashboardStats, error) {
	var (
		reqs []referral.Request
		err  error
	)

	switch actor.Role {
	case user.RoleJobSeeker:
		reqs, err = d.requests.ListByJobSeekerID(ctx, actor.ID)
	case user.RoleReferrer:
		reqs, err = d.requests.ListByReferrerID(ctx, actor.ID)
	default:
		return DashboardStats{}, ErrRoleNotSelected
	}
	if err != nil {
		return DashboardStats{}, ErrInternal
	}

	stats := aggregate(reqs)
	stats.Cards = cardsFor(actor.Role, stats)
	return stats, nil
}

func aggregate(reqs []referral.Request) DashboardStats {
	s := DashboardStats{Total: len(reqs)}
	for _, r := range reqs {
		switch r.Status {
		case referral.StatusPending:
			s.Pending++
		case referral.StatusCompleted:
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.SuccessRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

func cardsFor(role user.Role, s DashboardStats) []StatCard {
	switch role {
	case user.RoleJobSeeker:
		return []StatCard{
			{Title: "Total requests", Value: fmt.Sprintf("%d", s.Total), Trend: fmt.Sprintf("%d active", s.Pending)},
			{Title: "In progress", Value: fmt.Sprintf("%d", s.Pending), Trend: "Awaiting a response"},
			{Title: "Completed", Value: fmt.Sprintf("%d", s.Completed), Trend: "Successful connections"},
			{Title: "Success rate", Value: fmt.Sprintf("%d%%", s.SuccessRate), Trend: "Completion ratio"},
		}
	case user.RoleReferrer:
		return []StatCard{
			{Title: "Total requests", Value: fmt.Sprintf("%d", s.Total), Trend: fmt.Sprintf("%d new", s.Pending)},
			{Title: "Awaiting response", Value: fmt.Sprintf("%d", s.Pending), Trend: "Need attention"},
			{Title: "Helped hire", Value: fmt.Sprintf("%d", s.Completed), Trend: "Successful referrals"},
			{Title: "Rating", Value: fmt.Sprintf("%d%%", s.SuccessRate), Trend: "Completion ratio"},
		}
	default:
		return nil
	}
}
