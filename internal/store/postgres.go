// AngelaMos | 2026
// postgres.go

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ovationworks/stagedoor/internal/core"
)

type Postgres struct {
	db *sqlx.DB
}

func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

type accountRow struct {
	ID             string         `db:"id"`
	UserID         string         `db:"user_id"`
	Kind           string         `db:"kind"`
	Email          string         `db:"email"`
	Name           sql.NullString `db:"name"`
	Disabled       bool           `db:"disabled"`
	CreatedAt      sql.NullString `db:"created_at"`
	PasswordHash   sql.NullString `db:"password_hash"`
	AdminRole      sql.NullString `db:"admin_role"`
	RoleAssignedAt *time.Time     `db:"role_assigned_at"`
	RoleAssignedBy sql.NullString `db:"role_assigned_by"`
	RoleNotes      sql.NullString `db:"role_notes"`
	RoleActive     sql.NullBool   `db:"role_active"`
}

func (r accountRow) toAccount() Account {
	return Account{
		ID:             r.ID,
		UserID:         r.UserID,
		Kind:           r.Kind,
		Email:          r.Email,
		Name:           r.Name.String,
		Disabled:       r.Disabled,
		CreatedAt:      parseTime(r.CreatedAt.String),
		PasswordHash:   r.PasswordHash.String,
		AdminRole:      r.AdminRole.String,
		RoleAssignedAt: r.RoleAssignedAt,
		RoleAssignedBy: r.RoleAssignedBy.String,
		RoleNotes:      r.RoleNotes.String,
		RoleActive:     r.RoleActive.Bool,
	}
}

const accountColumns = `
	id, user_id, kind, email, name, disabled, created_at, password_hash,
	admin_role, role_assigned_at, role_assigned_by, role_notes, role_active`

func (p *Postgres) Accounts(
	ctx context.Context,
	kind string,
) ([]Account, error) {
	query := `SELECT` + accountColumns + `
		FROM accounts`
	var args []any
	if kind != "" {
		query += ` WHERE kind = $1`
		args = append(args, kind)
	}

	var rows []accountRow
	if err := p.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf(
			"list accounts: %w: %w", core.ErrStoreUnavailable, err)
	}

	accounts := make([]Account, 0, len(rows))
	for _, r := range rows {
		accounts = append(accounts, r.toAccount())
	}

	return accounts, nil
}

func (p *Postgres) AccountByEmail(
	ctx context.Context,
	email string,
) (*Account, error) {
	query := `SELECT` + accountColumns + `
		FROM accounts
		WHERE email = $1`

	var row accountRow
	err := p.db.GetContext(ctx, &row, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get account by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf(
			"get account by email: %w: %w", core.ErrStoreUnavailable, err)
	}

	account := row.toAccount()
	return &account, nil
}

type profileRow struct {
	OwnerID      string         `db:"owner_id"`
	DisplayName  sql.NullString `db:"display_name"`
	Bio          sql.NullString `db:"bio"`
	Location     sql.NullString `db:"location"`
	Website      sql.NullString `db:"website"`
	ContactName  sql.NullString `db:"contact_name"`
	ContactEmail sql.NullString `db:"contact_email"`
	Phone        sql.NullString `db:"phone"`
	Completed    sql.NullBool   `db:"completed"`
}

func (p *Postgres) Profiles(ctx context.Context) ([]Profile, error) {
	query := `
		SELECT owner_id, display_name, bio, location, website,
		       contact_name, contact_email, phone, completed
		FROM profiles`

	var rows []profileRow
	if err := p.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf(
			"list profiles: %w: %w", core.ErrStoreUnavailable, err)
	}

	profiles := make([]Profile, 0, len(rows))
	for _, r := range rows {
		profiles = append(profiles, Profile{
			OwnerID:      r.OwnerID,
			DisplayName:  r.DisplayName.String,
			Bio:          r.Bio.String,
			Location:     r.Location.String,
			Website:      r.Website.String,
			ContactName:  r.ContactName.String,
			ContactEmail: r.ContactEmail.String,
			Phone:        r.Phone.String,
			Completed:    r.Completed.Bool,
		})
	}

	return profiles, nil
}

type eventRow struct {
	ID          string         `db:"id"`
	OrganizerID string         `db:"organizer_id"`
	Title       string         `db:"title"`
	Status      string         `db:"status"`
	Venue       sql.NullString `db:"venue"`
	StartsAt    sql.NullString `db:"starts_at"`
	CreatedAt   sql.NullString `db:"created_at"`
}

func (p *Postgres) Events(ctx context.Context) ([]Event, error) {
	query := `
		SELECT id, organizer_id, title, status, venue, starts_at, created_at
		FROM events`

	var rows []eventRow
	if err := p.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf(
			"list events: %w: %w", core.ErrStoreUnavailable, err)
	}

	events := make([]Event, 0, len(rows))
	for _, r := range rows {
		events = append(events, Event{
			ID:          r.ID,
			OrganizerID: r.OrganizerID,
			Title:       r.Title,
			Status:      r.Status,
			Venue:       r.Venue.String,
			StartsAt:    parseTime(r.StartsAt.String),
			CreatedAt:   parseTime(r.CreatedAt.String),
		})
	}

	return events, nil
}

func (p *Postgres) OpeningCounts(
	ctx context.Context,
) (map[string]int, error) {
	return p.countsByOwner(ctx, "openings", "company_id")
}

func (p *Postgres) ApplicationCounts(
	ctx context.Context,
) (map[string]int, error) {
	return p.countsByOwner(ctx, "applications", "applicant_id")
}

func (p *Postgres) SignupCounts(
	ctx context.Context,
) (map[string]int, error) {
	return p.countsByOwner(ctx, "event_signups", "event_id")
}

type countRow struct {
	OwnerID string `db:"owner_id"`
	Count   int    `db:"count"`
}

func (p *Postgres) countsByOwner(
	ctx context.Context,
	table, column string,
) (map[string]int, error) {
	query := fmt.Sprintf(`
		SELECT %s AS owner_id, COUNT(*) AS count
		FROM %s
		GROUP BY %s`, column, table, column)

	var rows []countRow
	if err := p.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf(
			"count %s: %w: %w", table, core.ErrStoreUnavailable, err)
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.OwnerID] = r.Count
	}

	return counts, nil
}

func (p *Postgres) ActiveAdminRoles(
	ctx context.Context,
) ([]RoleAssignment, error) {
	query := `
		SELECT user_id, admin_role, role_assigned_at, role_assigned_by, role_notes
		FROM accounts
		WHERE admin_role IS NOT NULL AND role_active`

	type roleRow struct {
		UserID     string         `db:"user_id"`
		Role       string         `db:"admin_role"`
		AssignedAt *time.Time     `db:"role_assigned_at"`
		AssignedBy sql.NullString `db:"role_assigned_by"`
		Notes      sql.NullString `db:"role_notes"`
	}

	var rows []roleRow
	if err := p.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf(
			"list active admin roles: %w: %w", core.ErrStoreUnavailable, err)
	}

	assignments := make([]RoleAssignment, 0, len(rows))
	for _, r := range rows {
		assignedAt := time.Time{}
		if r.AssignedAt != nil {
			assignedAt = *r.AssignedAt
		}
		assignments = append(assignments, RoleAssignment{
			UserID:     r.UserID,
			Role:       r.Role,
			AssignedAt: assignedAt,
			AssignedBy: r.AssignedBy.String,
			Notes:      r.Notes.String,
		})
	}

	return assignments, nil
}

// ReplaceRoleMirror rewrites the admin-role mirror table wholesale so
// the reconcile step stays idempotent.
func (p *Postgres) ReplaceRoleMirror(
	ctx context.Context,
	rows []RoleAssignment,
) error {
	err := core.InTx(ctx, p.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM admin_role_mirror`); err != nil {
			return fmt.Errorf("clear role mirror: %w", err)
		}

		query := `
			INSERT INTO admin_role_mirror
				(user_id, admin_role, assigned_at, assigned_by, notes)
			VALUES ($1, $2, $3, $4, $5)`

		for _, row := range rows {
			if _, err := tx.ExecContext(ctx, query,
				row.UserID,
				row.Role,
				row.AssignedAt,
				row.AssignedBy,
				row.Notes,
			); err != nil {
				return fmt.Errorf("insert role mirror row: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf(
			"replace role mirror: %w: %w", core.ErrStoreUnavailable, err)
	}

	return nil
}

// timeLayouts covers the formats found in records migrated from the
// original document store. Anything else degrades to the zero time.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}

var (
	_ Store      = (*Postgres)(nil)
	_ RoleMirror = (*Postgres)(nil)
)
