package auth

import (
	"testing"

	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	investor = &models.User{UID: "u1", Role: models.RoleInvestor}
	college  = &models.User{UID: "college-1", Role: models.RoleCollege, CollegeID: "iit-delhi"}
	admin    = &models.User{UID: "admin-1", Role: models.RoleAdmin}
	stranger = &models.User{UID: "x", Role: models.Role("guest")}
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name string
		id   IdentityState
		want Decision
	}{
		{"pending", IdentityState{Pending: true}, Decision{Outcome: Pending}},
		{"anonymous", Resolved(nil), Decision{Outcome: Redirect, Target: PathLogin}},
		{"wrong role", Resolved(college), Decision{Outcome: Redirect, Target: PathLanding}},
		{"right role", Resolved(investor), Decision{Outcome: Allow}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.id, models.RoleInvestor))
		})
	}
}

func TestAuthorize_AnyOfSeveralRoles(t *testing.T) {
	d := Authorize(Resolved(admin), models.RoleInvestor, models.RoleAdmin)
	assert.Equal(t, Allow, d.Outcome)
}

func TestLandingRedirect(t *testing.T) {
	target, ok := LandingRedirect(investor, "/")
	assert.True(t, ok)
	assert.Equal(t, PathInvestorDashboard, target)

	target, ok = LandingRedirect(college, "/")
	assert.True(t, ok)
	assert.Equal(t, PathCollegeDashboard, target)

	target, ok = LandingRedirect(admin, "/?ref=x")
	assert.True(t, ok)
	assert.Equal(t, PathAdminDashboard, target)

	_, ok = LandingRedirect(stranger, "/")
	assert.False(t, ok)
	_, ok = LandingRedirect(nil, "/")
	assert.False(t, ok)
	_, ok = LandingRedirect(investor, "/startup/payeasy")
	assert.False(t, ok)
}

func TestDashboardFor(t *testing.T) {
	d, err := DashboardFor(investor)
	require.NoError(t, err)
	assert.Equal(t, InvestorDashboard{InvestorUID: "u1"}, d)

	d, err = DashboardFor(college)
	require.NoError(t, err)
	assert.Equal(t, CollegeDashboard{CollegeID: "iit-delhi"}, d)
	assert.Equal(t, PathCollegeDashboard, d.Path())

	d, err = DashboardFor(admin)
	require.NoError(t, err)
	assert.IsType(t, AdminDashboard{}, d)

	_, err = DashboardFor(stranger)
	assert.ErrorIs(t, err, ErrNoDashboard)
	_, err = DashboardFor(nil)
	assert.ErrorIs(t, err, ErrNoDashboard)

	_, err = DashboardFor(&models.User{UID: "college-2", Role: models.RoleCollege})
	assert.ErrorIs(t, err, ErrNoDashboard)
}

func TestMatchRoute(t *testing.T) {
	r, ok := MatchRoute("/register/abc-123")
	require.True(t, ok)
	assert.Equal(t, PathInviteRegister, r.Pattern)
	assert.True(t, r.Public())

	r, ok = MatchRoute("/admin-dashboard/")
	require.True(t, ok)
	assert.Equal(t, []models.Role{models.RoleAdmin}, r.Roles)

	_, ok = MatchRoute("/startup/")
	assert.False(t, ok)
	_, ok = MatchRoute("/nope")
	assert.False(t, ok)
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		name  string
		id    IdentityState
		route string
		want  Decision
	}{
		{"public profile anonymous", Resolved(nil), "/startup/payeasy", allow()},
		{"login page", Resolved(investor), "/login", allow()},
		{"landing anonymous", Resolved(nil), "/", allow()},
		{"landing investor", Resolved(investor), "/", redirect(PathInvestorDashboard)},
		{"landing unknown role", Resolved(stranger), "/", allow()},
		{"landing pending", IdentityState{Pending: true}, "/", Decision{Outcome: Pending}},
		{"dashboard anonymous", Resolved(nil), "/college-dashboard", redirect(PathLogin)},
		{"dashboard wrong role", Resolved(investor), "/admin-dashboard", redirect(PathLanding)},
		{"dashboard own role", Resolved(college), "/college-dashboard", allow()},
		{"dashboard pending", IdentityState{Pending: true}, "/investor-dashboard", Decision{Outcome: Pending}},
		{"unknown route", Resolved(admin), "/somewhere", redirect(PathLanding)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Navigate(tt.id, tt.route))
		})
	}
}
