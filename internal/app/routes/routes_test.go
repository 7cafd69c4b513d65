package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/models/dto"
	"github.com/jazbaa/showcase/internal/bootstrap"
	"github.com/jazbaa/showcase/internal/config"
	pkgAuth "github.com/jazbaa/showcase/internal/pkg/auth"
	"github.com/jazbaa/showcase/internal/seed"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    dto.ErrorCode   `json:"code"`
		Field   string          `json:"field"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Store.Driver = config.DriverMemory
	cfg.Store.Timeout = 5 * time.Second
	cfg.Session.Driver = config.SessionMemory
	cfg.JWT.Secret = "routes-test-secret"
	cfg.JWT.AccessTokenExpiration = time.Hour
	cfg.JWT.Issuer = "showcase.test"
	cfg.Auth.BcryptCost = bcrypt.MinCost
	cfg.CORS.AllowedOrigins = []string{"http://localhost:5173"}
	cfg.Seed.Enabled = true
	return cfg
}

func newApp(t *testing.T, cfg *config.Config) *bootstrap.App {
	t.Helper()
	app, err := bootstrap.New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close(context.Background()) })
	return app
}

type client struct {
	t      *testing.T
	router http.Handler
}

func (c client) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func (c client) login(email string) dto.AuthResponse {
	c.t.Helper()
	w, env := c.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: email, Password: seed.DemoPassword})
	require.Equal(c.t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.AuthResponse
	require.NoError(c.t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(c.t, resp.Token.AccessToken)
	return resp
}

func redirectOf(t *testing.T, env envelope) string {
	t.Helper()
	require.NotNil(t, env.Error)
	var details map[string]string
	require.NoError(t, json.Unmarshal(env.Error.Details, &details))
	return details["redirect"]
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestInvestorFlow(t *testing.T) {
	c := client{t: t, router: newApp(t, testConfig()).Router}

	auth := c.login("Investor@Test.com")
	assert.Equal(t, "/investor-dashboard", auth.Redirect)
	assert.Equal(t, models.RoleInvestor, auth.User.Role)
	token := auth.Token.AccessToken

	w, env := c.do(http.MethodGet, "/api/v1/investor/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	board := decode[dto.InvestorDashboardResponse](t, env)
	assert.Equal(t, dto.LoadStateOK, board.LoadState)
	require.Len(t, board.Startups, 7)
	assert.Equal(t, "microlend", board.Startups[0].ID)

	w, env = c.do(http.MethodPost, "/api/v1/investor/startups/farmsmart/interests/investment", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	toggled := decode[dto.ToggleInterestResponse](t, env)
	assert.True(t, toggled.Active)
	assert.Contains(t, toggled.Startup.InterestedInvestors, "u1")

	w, env = c.do(http.MethodPost, "/api/v1/investor/startups/farmsmart/interests/investment", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	toggled = decode[dto.ToggleInterestResponse](t, env)
	assert.False(t, toggled.Active)
	assert.NotContains(t, toggled.Startup.InterestedInvestors, "u1")

	w, env = c.do(http.MethodPost, "/api/v1/investor/startups/farmsmart/interests/mentoring", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)

	w, _ = c.do(http.MethodPost, "/api/v1/investor/startups/farmsmart/comments", token,
		dto.CreateCommentRequest{Comment: "  Interested in your backend dev  ", Type: models.CommentHiring})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env = c.do(http.MethodGet, "/api/v1/startups/farmsmart/comments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[dto.CommentListResponse](t, env)
	require.Len(t, list.Comments, 1)
	assert.Equal(t, "Interested in your backend dev", list.Comments[0].Text)
	assert.Equal(t, "Asha Investor", list.Comments[0].InvestorName)

	w, env = c.do(http.MethodPost, "/api/v1/investor/startups/farmsmart/comments", token,
		map[string]string{"comment": "   ", "type": "hiring"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, env.Error.Code)
	assert.Equal(t, "comment", env.Error.Field)

	w, _ = c.do(http.MethodPost, "/api/v1/investor/startups/ghost/comments", token,
		dto.CreateCommentRequest{Comment: "hello", Type: models.CommentGeneral})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoleGuards(t *testing.T) {
	c := client{t: t, router: newApp(t, testConfig()).Router}
	investor := c.login("investor@test.com").Token.AccessToken

	w, env := c.do(http.MethodGet, "/api/v1/admin/overview", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "/login", redirectOf(t, env))

	w, env = c.do(http.MethodGet, "/api/v1/admin/overview", investor, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "/", redirectOf(t, env))

	w, _ = c.do(http.MethodGet, "/api/v1/college/dashboard", investor, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = c.do(http.MethodGet, "/api/v1/investor/dashboard", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	admin := c.login("admin@test.com")
	assert.Equal(t, "/admin-dashboard", admin.Redirect)
	w, env = c.do(http.MethodGet, "/api/v1/admin/overview", admin.Token.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[dto.RosterStats](t, env)
	assert.Equal(t, 7, stats.TotalStartups)
	assert.Equal(t, 2, stats.TotalInvestors)
	assert.Equal(t, 2, stats.TotalColleges)
}

func TestNavigation(t *testing.T) {
	c := client{t: t, router: newApp(t, testConfig()).Router}
	investor := c.login("investor@test.com").Token.AccessToken

	tests := []struct {
		name     string
		token    string
		route    string
		decision string
		target   string
	}{
		{"anonymous landing", "", "/", "allow", ""},
		{"anonymous dashboard", "", "/investor-dashboard", "redirect", "/login"},
		{"investor landing", investor, "/", "redirect", "/investor-dashboard"},
		{"investor own dashboard", investor, "/investor-dashboard", "allow", ""},
		{"investor admin dashboard", investor, "/admin-dashboard", "redirect", "/"},
		{"startup profile", "", "/startup/payeasy", "allow", ""},
		{"unknown route", investor, "/nowhere", "redirect", "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := c.do(http.MethodGet, "/api/v1/navigation?route="+tt.route, tt.token, nil)
			require.Equal(t, http.StatusOK, w.Code)
			nav := decode[dto.NavigationResponse](t, env)
			assert.Equal(t, tt.decision, nav.Decision)
			assert.Equal(t, tt.target, nav.Target)
		})
	}

	w, _ := c.do(http.MethodGet, "/api/v1/navigation", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCollegeDashboard(t *testing.T) {
	c := client{t: t, router: newApp(t, testConfig()).Router}

	w, env := c.do(http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Email: "dean@iitd.test", Password: "longenough", Role: models.RoleCollege, CollegeID: "iit-delhi",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	auth := decode[dto.AuthResponse](t, env)
	assert.Equal(t, "/college-dashboard", auth.Redirect)

	w, env = c.do(http.MethodGet, "/api/v1/college/dashboard?sector=AgriTech", auth.Token.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	board := decode[dto.CollegeDashboardResponse](t, env)
	assert.Equal(t, "iit-delhi", board.CollegeID)
	require.Len(t, board.Startups, 1)
	assert.Equal(t, "cropguard", board.Startups[0].ID)

	w, env = c.do(http.MethodGet, "/api/v1/dashboard", auth.Token.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	board = decode[dto.CollegeDashboardResponse](t, env)
	assert.Equal(t, "HealthTech", board.Sector)
	assert.Len(t, board.Startups, 2)

	w, _ = c.do(http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Email: "root@test.com", Password: "longenough", Role: models.RoleAdmin,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCollegeWithoutCollegeID(t *testing.T) {
	app := newApp(t, testConfig())
	c := client{t: t, router: app.Router}

	hash, err := pkgAuth.HashPasswordWithCost(seed.DemoPassword, bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, app.Deps.Repos.Users.Create(context.Background(), &models.User{
		UID: "legacy-college", Email: "legacy@college.test", PasswordHash: hash,
		Role: models.RoleCollege, CreatedAt: time.Now().UTC(),
	}))
	token := c.login("legacy@college.test").Token.AccessToken

	for _, path := range []string{"/api/v1/college/dashboard?sector=all", "/api/v1/dashboard?sector=all"} {
		w, env := c.do(http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
		assert.Empty(t, env.Data, path)
	}
}

func TestInviteRegistrationFlow(t *testing.T) {
	c := client{t: t, router: newApp(t, testConfig()).Router}
	admin := c.login("admin@test.com").Token.AccessToken

	w, env := c.do(http.MethodPost, "/api/v1/admin/invites", admin,
		dto.CreateInviteRequest{Email: "founder@startup.test", CollegeID: "iit-bombay"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	invite := decode[dto.InviteResponse](t, env)
	require.NotEmpty(t, invite.Token)
	assert.Equal(t, "/register/"+invite.Token, invite.Link)

	w, env = c.do(http.MethodGet, "/api/v1/invites/"+invite.Token, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.InvitePending, decode[dto.InviteResponse](t, env).Status)

	form := dto.InviteRegistrationRequest{
		Name:    "Solar Grid",
		Tagline: "Community solar for small towns",
		Story:   "Started in a hostel room.",
		Sector:  "Energy",
		Team:    []dto.TeamMemberRequest{{Name: "Ravi", Role: "CEO", Hiring: true}},
	}
	w, env = c.do(http.MethodPost, "/api/v1/invites/"+invite.Token+"/register", "", form)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	reg := decode[dto.InviteRegistrationResponse](t, env)
	assert.Equal(t, "solar-grid", reg.Startup.ID)
	assert.Equal(t, "Community solar for small towns", reg.Startup.Pitch)
	assert.Equal(t, models.InviteRegistered, reg.Invite.Status)

	w, env = c.do(http.MethodPost, "/api/v1/invites/"+invite.Token+"/register", "", form)
	assert.Equal(t, http.StatusGone, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrorCodeInviteAlreadyUsed, env.Error.Code)

	w, env = c.do(http.MethodGet, "/api/v1/startups/solar-grid", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "iit-bombay", decode[models.Startup](t, env).CollegeID)

	w, _ = c.do(http.MethodGet, "/api/v1/invites/unknown-token", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	c := client{t: t, router: newApp(t, testConfig()).Router}
	token := c.login("investor2@test.com").Token.AccessToken

	w, _ := c.do(http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = c.do(http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := c.do(http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "/login", redirectOf(t, env))

	// Logging out twice, or without a token, still succeeds.
	w, _ = c.do(http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = c.do(http.MethodPost, "/api/v1/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginFailures(t *testing.T) {
	c := client{t: t, router: newApp(t, testConfig()).Router}

	w, env := c.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "nobody@test.com", Password: "whatever"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)

	w, env = c.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "investor@test.com", Password: "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, env.Error.Code)

	w, env = c.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
}

func TestLoginRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.LoginPerMinute = 1
	cfg.RateLimit.LoginBurst = 2
	c := client{t: t, router: newApp(t, cfg).Router}

	creds := dto.LoginRequest{Email: "investor@test.com", Password: "wrong-password"}
	for i := 0; i < 2; i++ {
		w, _ := c.do(http.MethodPost, "/api/v1/auth/login", "", creds)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
	w, env := c.do(http.MethodPost, "/api/v1/auth/login", "", creds)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrorCodeTooManyAttempts, env.Error.Code)
}

func TestCatalogAndHealth(t *testing.T) {
	c := client{t: t, router: newApp(t, testConfig()).Router}

	w, env := c.do(http.MethodGet, "/api/v1/startups?sector=FinTech", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[dto.StartupListResponse](t, env)
	require.Len(t, list.Startups, 2)
	assert.Equal(t, []string{"microlend", "payeasy"}, []string{list.Startups[0].ID, list.Startups[1].ID})

	w, _ = c.do(http.MethodGet, "/api/v1/startups/ghost", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = c.do(http.MethodGet, "/api/v1/meta/catalog", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	meta := decode[dto.CatalogMetaResponse](t, env)
	assert.Contains(t, meta.InterestTypes, "investment")

	w, _ = c.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"store":"memory"`)
}

func TestGlobalMiddleware(t *testing.T) {
	router := newApp(t, testConfig()).Router

	req := httptest.NewRequest(http.MethodGet, "/api/v1/startups", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/startups", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
