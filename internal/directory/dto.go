// AngelaMos | 2026
// dto.go

package directory

import (
	"github.com/ovationworks/stagedoor/internal/query"
	"github.com/ovationworks/stagedoor/internal/readmodel"
)

type CompanyListParams struct {
	Search   string `json:"search"    validate:"omitempty,max=200"`
	Status   string `json:"status"    validate:"omitempty,oneof=all active disabled"`
	Sort     string `json:"sort"      validate:"omitempty,oneof=name email created_at openings"`
	Order    string `json:"order"     validate:"omitempty,oneof=asc desc"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

type UserListParams struct {
	Search   string `json:"search"    validate:"omitempty,max=200"`
	Status   string `json:"status"    validate:"omitempty,oneof=all active disabled"`
	Role     string `json:"role"      validate:"omitempty,oneof=all staff moderator admin super_admin none"`
	Sort     string `json:"sort"      validate:"omitempty,oneof=name email created_at applications"`
	Order    string `json:"order"     validate:"omitempty,oneof=asc desc"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

type EventListParams struct {
	Search   string `json:"search"    validate:"omitempty,max=200"`
	Status   string `json:"status"    validate:"omitempty,oneof=all draft published cancelled"`
	Sort     string `json:"sort"      validate:"omitempty,oneof=title starts_at created_at signups"`
	Order    string `json:"order"     validate:"omitempty,oneof=asc desc"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// enumActive interprets the shared active/disabled status filter. The
// "all" sentinel and the empty string are both no-ops.
func enumActive(status string, disabled bool) bool {
	switch status {
	case "active":
		return !disabled
	case "disabled":
		return disabled
	default:
		return true
	}
}

func companyPredicates(p CompanyListParams) []query.Predicate[readmodel.CompanyView] {
	var preds []query.Predicate[readmodel.CompanyView]

	if p.Status != "" && p.Status != query.FilterAll {
		status := p.Status
		preds = append(preds, func(v readmodel.CompanyView) bool {
			return enumActive(status, v.Disabled)
		})
	}

	return preds
}

func userPredicates(p UserListParams) []query.Predicate[readmodel.UserView] {
	var preds []query.Predicate[readmodel.UserView]

	if p.Status != "" && p.Status != query.FilterAll {
		status := p.Status
		preds = append(preds, func(v readmodel.UserView) bool {
			return enumActive(status, v.Disabled)
		})
	}

	if p.Role != "" && p.Role != query.FilterAll {
		role := p.Role
		preds = append(preds, func(v readmodel.UserView) bool {
			if role == "none" {
				return v.AdminRole == "" || !v.RoleActive
			}
			return v.RoleActive && v.AdminRole == role
		})
	}

	return preds
}

func eventPredicates(p EventListParams) []query.Predicate[readmodel.EventView] {
	var preds []query.Predicate[readmodel.EventView]

	if p.Status != "" && p.Status != query.FilterAll {
		status := p.Status
		preds = append(preds, func(v readmodel.EventView) bool {
			return v.Status == status
		})
	}

	return preds
}

type PermissionsResponse struct {
	Role     string              `json:"role"`
	Level    int                 `json:"level"`
	Grants   map[string]GrantRow `json:"grants"`
	Sections []string            `json:"sections"`
}

type GrantRow map[string]bool
