// AngelaMos | 2026
// views.go

package readmodel

import "time"

// CompanyView is the denormalized projection backing the admin company
// list: one company account joined with its optional profile and the
// opening count source. Never persisted; rebuilt wholesale on every
// cache refill.
type CompanyView struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Disabled      bool      `json:"disabled"`
	CreatedAt     time.Time `json:"created_at"`
	ProfileExists bool      `json:"profile_exists"`
	Bio           string    `json:"bio"`
	Location      string    `json:"location"`
	Website       string    `json:"website"`
	ContactName   string    `json:"contact_name"`
	ContactEmail  string    `json:"contact_email"`
	Phone         string    `json:"phone"`
	Completed     bool      `json:"profile_completed"`
	OpeningCount  int       `json:"opening_count"`
}

// UserView backs the admin user list, joining individual accounts with
// profiles and the application count source.
type UserView struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Disabled         bool      `json:"disabled"`
	CreatedAt        time.Time `json:"created_at"`
	AdminRole        string    `json:"admin_role,omitempty"`
	RoleActive       bool      `json:"role_active,omitempty"`
	ProfileExists    bool      `json:"profile_exists"`
	Bio              string    `json:"bio"`
	Location         string    `json:"location"`
	Website          string    `json:"website"`
	Completed        bool      `json:"profile_completed"`
	ApplicationCount int       `json:"application_count"`
}

// EventView backs the admin event list, joining events with their
// organizer account and the signup count source.
type EventView struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Status          string    `json:"status"`
	Venue           string    `json:"venue"`
	StartsAt        time.Time `json:"starts_at"`
	CreatedAt       time.Time `json:"created_at"`
	OrganizerID     string    `json:"organizer_id"`
	OrganizerName   string    `json:"organizer_name"`
	OrganizerEmail  string    `json:"organizer_email"`
	OrganizerExists bool      `json:"organizer_exists"`
	SignupCount     int       `json:"signup_count"`
}
