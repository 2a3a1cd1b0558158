package user

import (
	"errors"

	"refernet/internal/domain/user"
)

// NavItem is one entry of the role-conditioned shell menu.
type NavItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

var ErrRoleNotSelected = errors.New("role not selected")

// Navigation returns the three menu items for the user's side of the
// marketplace. A user without a role has no shell menu yet; callers send
// them to role selection instead.
func Navigation(u user.User) ([]NavItem, error) {
	switch u.Role {
	case user.RoleJobSeeker:
		return []NavItem{
			{Title: "Dashboard", URL: "/dashboard", Icon: "home"},
			{Title: "My profile", URL: "/profiles/job-seeker/me", Icon: "user"},
			{Title: "Referrers", URL: "/directory/referrers", Icon: "users"},
		}, nil
	case user.RoleReferrer:
		return []NavItem{
			{Title: "Dashboard", URL: "/dashboard", Icon: "home"},
			{Title: "My profile", URL: "/profiles/referrer/me", Icon: "user"},
			{Title: "Job seekers", URL: "/directory/job-seekers", Icon: "search"},
		}, nil
	default:
		return nil, ErrRoleNotSelected
	}
}
