// Package auth is the access guard: it decides, from the resolved identity
// alone, whether a client route may be shown, and which dashboard a role gets.
package auth

import (
	"errors"
	"strings"

	"github.com/jazbaa/showcase/internal/app/models"
)

// Client routes known to the guard.
const (
	PathLanding           = "/"
	PathLogin             = "/login"
	PathRegister          = "/register"
	PathInviteRegister    = "/register/{token}"
	PathStartupProfile    = "/startup/{slug}"
	PathInvestorDashboard = "/investor-dashboard"
	PathCollegeDashboard  = "/college-dashboard"
	PathAdminDashboard    = "/admin-dashboard"
)

// ErrNoDashboard is returned by DashboardFor for a user without a dashboard role
// and for a college user that carries no college id.
var ErrNoDashboard = errors.New("no dashboard for role")

// IdentityState is what the caller knows about the current identity. Pending
// means resolution has not finished yet.
type IdentityState struct {
	Pending bool
	User    *models.User
}

// Resolved wraps an already resolved user (nil for anonymous).
func Resolved(user *models.User) IdentityState {
	return IdentityState{User: user}
}

// Outcome is the kind of a guard decision.
type Outcome string

const (
	Allow    Outcome = "allow"
	Redirect Outcome = "redirect"
	Pending  Outcome = "pending"
)

// Decision is the result of a guard check. Target is set for Redirect only.
type Decision struct {
	Outcome Outcome
	Target  string
}

func allow() Decision {
	return Decision{Outcome: Allow}
}

func redirect(target string) Decision {
	return Decision{Outcome: Redirect, Target: target}
}

// Authorize gates a protected view on the caller's role.
func Authorize(id IdentityState, required ...models.Role) Decision {
	if id.Pending {
		return Decision{Outcome: Pending}
	}
	if id.User == nil {
		return redirect(PathLogin)
	}
	for _, r := range required {
		if id.User.Role == r {
			return allow()
		}
	}
	return redirect(PathLanding)
}

// DashboardPath is the dashboard route of role, or "" when it has none.
func DashboardPath(role models.Role) string {
	switch role {
	case models.RoleInvestor:
		return PathInvestorDashboard
	case models.RoleCollege:
		return PathCollegeDashboard
	case models.RoleAdmin:
		return PathAdminDashboard
	}
	return ""
}

// LandingRedirect sends an authenticated user on the landing page to their
// dashboard. Any other route, anonymous user or unknown role falls through.
func LandingRedirect(user *models.User, route string) (string, bool) {
	if user == nil || normalizePath(route) != PathLanding {
		return "", false
	}
	target := DashboardPath(user.Role)
	return target, target != ""
}

// Dashboard is the closed set of dashboards a role can be routed to.
type Dashboard interface {
	Path() string
	dashboard()
}

// InvestorDashboard is scoped to the investor's own uid.
type InvestorDashboard struct{ InvestorUID string }

// CollegeDashboard is scoped to the college's own collegeId.
type CollegeDashboard struct{ CollegeID string }

// AdminDashboard sees everything.
type AdminDashboard struct{}

func (InvestorDashboard) Path() string { return PathInvestorDashboard }
func (CollegeDashboard) Path() string  { return PathCollegeDashboard }
func (AdminDashboard) Path() string    { return PathAdminDashboard }

func (InvestorDashboard) dashboard() {}
func (CollegeDashboard) dashboard()  {}
func (AdminDashboard) dashboard()    {}

// DashboardFor picks the dashboard for user. It is the single place where a
// role turns into a view.
func DashboardFor(user *models.User) (Dashboard, error) {
	if user == nil {
		return nil, ErrNoDashboard
	}
	switch user.Role {
	case models.RoleInvestor:
		return InvestorDashboard{InvestorUID: user.UID}, nil
	case models.RoleCollege:
		// a college without a college id has nothing it may be scoped to
		if user.CollegeID == "" {
			return nil, ErrNoDashboard
		}
		return CollegeDashboard{CollegeID: user.CollegeID}, nil
	case models.RoleAdmin:
		return AdminDashboard{}, nil
	}
	return nil, ErrNoDashboard
}

// Route is one entry of the client route table. A route with no roles is public.
type Route struct {
	Pattern string
	Roles   []models.Role
}

// Public reports whether the route needs no identity.
func (r Route) Public() bool { return len(r.Roles) == 0 }

// Routes is the client route table.
var Routes = []Route{
	{Pattern: PathLanding},
	{Pattern: PathLogin},
	{Pattern: PathRegister},
	{Pattern: PathInviteRegister},
	{Pattern: PathStartupProfile},
	{Pattern: PathInvestorDashboard, Roles: []models.Role{models.RoleInvestor}},
	{Pattern: PathCollegeDashboard, Roles: []models.Role{models.RoleCollege}},
	{Pattern: PathAdminDashboard, Roles: []models.Role{models.RoleAdmin}},
}

// MatchRoute finds the table entry for a concrete path. "{name}" segments
// match any single non-empty segment.
func MatchRoute(path string) (Route, bool) {
	path = normalizePath(path)
	for _, r := range Routes {
		if matchPattern(r.Pattern, path) {
			return r, true
		}
	}
	return Route{}, false
}

// Navigate decides what the client should do when it opens route.
// Unknown routes are sent to the landing page.
func Navigate(id IdentityState, route string) Decision {
	r, ok := MatchRoute(route)
	if !ok {
		return redirect(PathLanding)
	}
	if r.Pattern == PathLanding {
		if id.Pending {
			return Decision{Outcome: Pending}
		}
		if target, ok := LandingRedirect(id.User, route); ok {
			return redirect(target)
		}
		return allow()
	}
	if r.Public() {
		return allow()
	}
	return Authorize(id, r.Roles...)
}

func normalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if trimmed := strings.TrimRight(p, "/"); trimmed != "" {
		p = trimmed
	} else {
		p = "/"
	}
	return p
}

func matchPattern(pattern, path string) bool {
	ps := strings.Split(pattern, "/")
	xs := strings.Split(path, "/")
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], "{") && strings.HasSuffix(ps[i], "}") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}
