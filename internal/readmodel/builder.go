// AngelaMos | 2026
// builder.go

package readmodel

import (
	"context"
	"fmt"

	"github.com/ovationworks/stagedoor/internal/store"
)

// Builder joins exhaustive collection snapshots into denormalized
// views. Snapshots are fetched independently, without cross-collection
// transactional guarantees; the join tolerates every mismatch it can
// encounter: an account without a profile still yields a view with
// documented defaults, an orphaned profile is dropped silently, and a
// duplicate owner id resolves last-write-wins.
type Builder struct {
	store store.Store
}

func NewBuilder(st store.Store) *Builder {
	return &Builder{store: st}
}

func (b *Builder) CompanyViews(ctx context.Context) ([]CompanyView, error) {
	accounts, err := b.store.Accounts(ctx, store.KindCompany)
	if err != nil {
		return nil, fmt.Errorf("build company views: %w", err)
	}

	profiles, err := b.store.Profiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("build company views: %w", err)
	}

	counts, err := b.store.OpeningCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("build company views: %w", err)
	}

	byOwner := profileIndex(profiles)

	views := make([]CompanyView, 0, len(accounts))
	for _, acct := range accounts {
		view := CompanyView{
			ID:           acct.ID,
			UserID:       acct.UserID,
			Email:        acct.Email,
			Name:         displayName(acct.Name, ""),
			Disabled:     acct.Disabled,
			CreatedAt:    acct.CreatedAt,
			ContactName:  DefaultContactName,
			Location:     DefaultLocation,
			Website:      DefaultWebsite,
			Bio:          DefaultBio,
			OpeningCount: counts[acct.UserID],
		}

		if profile, ok := byOwner[acct.UserID]; ok {
			view.ProfileExists = true
			view.Name = displayName(acct.Name, profile.DisplayName)
			view.Bio = profile.Bio
			view.Location = profile.Location
			view.Website = profile.Website
			view.ContactName = profile.ContactName
			view.ContactEmail = profile.ContactEmail
			view.Phone = profile.Phone
			view.Completed = profile.Completed
		}

		views = append(views, view)
	}

	return views, nil
}

func (b *Builder) UserViews(ctx context.Context) ([]UserView, error) {
	accounts, err := b.store.Accounts(ctx, store.KindIndividual)
	if err != nil {
		return nil, fmt.Errorf("build user views: %w", err)
	}

	profiles, err := b.store.Profiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("build user views: %w", err)
	}

	counts, err := b.store.ApplicationCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("build user views: %w", err)
	}

	byOwner := profileIndex(profiles)

	views := make([]UserView, 0, len(accounts))
	for _, acct := range accounts {
		view := UserView{
			ID:               acct.ID,
			UserID:           acct.UserID,
			Email:            acct.Email,
			Name:             displayName(acct.Name, ""),
			Disabled:         acct.Disabled,
			CreatedAt:        acct.CreatedAt,
			AdminRole:        acct.AdminRole,
			RoleActive:       acct.RoleActive,
			Bio:              DefaultBio,
			Location:         DefaultLocation,
			Website:          DefaultWebsite,
			ApplicationCount: counts[acct.UserID],
		}

		if profile, ok := byOwner[acct.UserID]; ok {
			view.ProfileExists = true
			view.Name = displayName(acct.Name, profile.DisplayName)
			view.Bio = profile.Bio
			view.Location = profile.Location
			view.Website = profile.Website
			view.Completed = profile.Completed
		}

		views = append(views, view)
	}

	return views, nil
}

func (b *Builder) EventViews(ctx context.Context) ([]EventView, error) {
	events, err := b.store.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("build event views: %w", err)
	}

	accounts, err := b.store.Accounts(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("build event views: %w", err)
	}

	counts, err := b.store.SignupCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("build event views: %w", err)
	}

	byUser := make(map[string]store.Account, len(accounts))
	for _, acct := range accounts {
		byUser[acct.UserID] = acct
	}

	views := make([]EventView, 0, len(events))
	for _, event := range events {
		view := EventView{
			ID:            event.ID,
			Title:         event.Title,
			Status:        event.Status,
			Venue:         event.Venue,
			StartsAt:      event.StartsAt,
			CreatedAt:     event.CreatedAt,
			OrganizerID:   event.OrganizerID,
			OrganizerName: DefaultOrganizerName,
			SignupCount:   counts[event.ID],
		}

		if organizer, ok := byUser[event.OrganizerID]; ok {
			view.OrganizerExists = true
			view.OrganizerName = displayName(organizer.Name, "")
			view.OrganizerEmail = organizer.Email
		}

		views = append(views, view)
	}

	return views, nil
}

// profileIndex builds the owner-id lookup. Duplicate owner ids are a
// data-quality condition, not an error: the last profile wins.
func profileIndex(profiles []store.Profile) map[string]store.Profile {
	byOwner := make(map[string]store.Profile, len(profiles))
	for _, p := range profiles {
		byOwner[p.OwnerID] = p
	}
	return byOwner
}

// displayName resolves the name shown in admin lists. The account field
// wins over the profile field when both exist.
func displayName(accountName, profileName string) string {
	if accountName != "" {
		return accountName
	}
	if profileName != "" {
		return profileName
	}
	return DefaultDisplayName
}
