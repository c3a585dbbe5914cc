// AngelaMos | 2026
// store.go

package store

import (
	"context"
	"time"
)

const (
	KindIndividual = "individual"
	KindCompany    = "company"
)

// Account is the source-of-truth identity record. CreatedAt degrades to
// the zero time when the stored value cannot be parsed.
type Account struct {
	ID           string
	UserID       string
	Kind         string
	Email        string
	Name         string
	Disabled     bool
	CreatedAt    time.Time
	PasswordHash string

	AdminRole      string
	RoleAssignedAt *time.Time
	RoleAssignedBy string
	RoleNotes      string
	RoleActive     bool
}

// Profile is the secondary descriptive record, zero-or-one per account,
// linked by OwnerID = Account.UserID.
type Profile struct {
	OwnerID      string
	DisplayName  string
	Bio          string
	Location     string
	Website      string
	ContactName  string
	ContactEmail string
	Phone        string
	Completed    bool
}

type Event struct {
	ID          string
	OrganizerID string
	Title       string
	Status      string
	Venue       string
	StartsAt    time.Time
	CreatedAt   time.Time
}

// RoleAssignment is one row of the denormalized admin-role mirror.
type RoleAssignment struct {
	UserID     string
	Role       string
	AssignedAt time.Time
	AssignedBy string
	Notes      string
}

// Store is the read-only boundary over the record collections. Every
// method returns an exhaustive snapshot; there is no cross-collection
// transactional guarantee between calls. Transport failures wrap
// core.ErrStoreUnavailable.
type Store interface {
	Accounts(ctx context.Context, kind string) ([]Account, error)
	AccountByEmail(ctx context.Context, email string) (*Account, error)
	Profiles(ctx context.Context) ([]Profile, error)
	Events(ctx context.Context) ([]Event, error)

	// Count sources, keyed by owner user id.
	OpeningCounts(ctx context.Context) (map[string]int, error)
	ApplicationCounts(ctx context.Context) (map[string]int, error)
	SignupCounts(ctx context.Context) (map[string]int, error)
}

// RoleMirror reconciles the denormalized admin-role mirror. Kept apart
// from Store so the read path stays free of write capability.
type RoleMirror interface {
	ActiveAdminRoles(ctx context.Context) ([]RoleAssignment, error)
	ReplaceRoleMirror(ctx context.Context, rows []RoleAssignment) error
}
