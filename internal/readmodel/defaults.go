// AngelaMos | 2026
// defaults.go

package readmodel

// Display fallbacks for fields that are absent when an account has no
// profile. These encode product decisions, so they are named and
// overridable rather than inlined at the join sites.
var (
	DefaultDisplayName   = "Unnamed"
	DefaultOrganizerName = "Unknown organizer"
	DefaultContactName   = ""
	DefaultLocation      = ""
	DefaultWebsite       = ""
	DefaultBio           = ""
)
