package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jazbaa/showcase/internal/app/repositories"
	"github.com/jazbaa/showcase/internal/app/repositories/memory"
	"github.com/jazbaa/showcase/internal/pkg/auth"
	"github.com/jazbaa/showcase/internal/pkg/session"
	"github.com/jazbaa/showcase/internal/seed"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	store      *memory.Store
	repos      *repositories.Repositories
	sessions   *session.MemoryStore
	auth       *AuthService
	catalog    CatalogService
	ledger     *InterestLedger
	comments   CommentService
	admin      *AdminService
	invites    *InviteService
	dashboards *DashboardService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.New()
	repos := store.Repositories()
	data, err := seed.Demo(bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, seed.Apply(context.Background(), repos, data, zerolog.Nop()))

	timeout := time.Second
	log := zerolog.Nop()
	sessions := session.NewMemoryStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "showcase.test",
	})
	authService := NewAuthService(repos.Users, sessions, jwtService, timeout, log)
	authService.hashCost = bcrypt.MinCost

	// comments written in one test get distinct, increasing timestamps
	comments := NewCommentService(repos.Comments, repos.Startups, timeout, log).(*commentServiceImpl)
	comments.now = (&tickingClock{next: fixedNow}).Now

	return &fixture{
		store:      store,
		repos:      repos,
		sessions:   sessions,
		auth:       authService,
		catalog:    NewCatalogService(repos.Startups, timeout, log),
		ledger:     NewInterestLedger(repos.Startups, timeout, log),
		comments:   comments,
		admin:      NewAdminService(repos, authService, timeout, log),
		invites:    NewInviteService(repos.Invites, timeout, log),
		dashboards: NewDashboardService(repos.Startups, repos.Comments, timeout, log),
	}
}

var fixedNow = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

type tickingClock struct {
	mu   sync.Mutex
	next time.Time
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.next
	c.next = c.next.Add(time.Second)
	return now
}
