package models

// Role is the fixed role attached to a user at creation time.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleInvestor Role = "investor"
	RoleCollege  Role = "college"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleInvestor, RoleCollege:
		return true
	}
	return false
}

// InterestKind selects one of the two membership sets kept on a startup.
type InterestKind string

const (
	InterestInvestment InterestKind = "investment"
	InterestHiring     InterestKind = "hiring"
)

// Valid reports whether k names a membership set.
func (k InterestKind) Valid() bool {
	return k == InterestInvestment || k == InterestHiring
}

// CommentKind tags a comment with the topic it is about.
type CommentKind string

const (
	CommentInvestment CommentKind = "investment"
	CommentHiring     CommentKind = "hiring"
	CommentGeneral    CommentKind = "general"
)

// Valid reports whether k is a known comment category.
func (k CommentKind) Valid() bool {
	switch k {
	case CommentInvestment, CommentHiring, CommentGeneral:
		return true
	}
	return false
}

// InviteStatus is the lifecycle state of a registration invite.
type InviteStatus string

const (
	InvitePending    InviteStatus = "pending"
	InviteRegistered InviteStatus = "registered"
)

// SectorAll is the synthetic filter value that disables sector matching.
const SectorAll = "all"

// DashboardSectors are the sector tabs shown on the public and college views.
var DashboardSectors = []string{
	"HealthTech", "AgriTech", "FinTech", "EdTech", "Sustainability",
	"WomenTech", "TravelTech", "Social Impact", "AI for Bharat",
}

// RegistrationSectors are the sectors offered on the invite registration form.
var RegistrationSectors = []string{
	"Technology", "Healthcare", "Education", "Finance", "E-commerce",
	"Entertainment", "Transportation", "Food & Beverage", "Real Estate",
	"Manufacturing", "Energy", "Environment", "Sports", "Fashion", "Other",
}

// Badges is the badge vocabulary offered on the registration form.
var Badges = []string{
	"AI/ML", "Blockchain", "IoT", "SaaS", "Mobile App", "Web App",
	"Open to Invest", "Hiring", "B2B", "B2C", "Enterprise", "Startup",
	"Innovation", "Sustainability", "Social Impact", "FinTech", "HealthTech",
	"EdTech", "CleanTech", "AgriTech",
}

// NormalizeSet drops empty and repeated values while keeping first-seen order.
func NormalizeSet(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
