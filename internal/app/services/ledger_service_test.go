package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/repositories"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_ToggleRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.ledger.Toggle(ctx, "payeasy", "u1", models.InterestInvestment)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.Equal(t, []string{"u1"}, res.Startup.InterestedInvestors)
	assert.Empty(t, res.Startup.HiringInvestors)

	res, err = f.ledger.Toggle(ctx, "payeasy", "u1", models.InterestInvestment)
	require.NoError(t, err)
	assert.False(t, res.Active)
	assert.Empty(t, res.Startup.InterestedInvestors)
}

func TestLedger_KindsAreIndependent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.Toggle(ctx, "cropguard", "u1", models.InterestHiring)
	require.NoError(t, err)
	res, err := f.ledger.Toggle(ctx, "cropguard", "u1", models.InterestInvestment)
	require.NoError(t, err)

	assert.Equal(t, []string{"u1"}, res.Startup.HiringInvestors)
	assert.Equal(t, []string{"u1"}, res.Startup.InterestedInvestors)
}

func TestLedger_UnknownStartup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.Toggle(ctx, "ghost-startup", "u1", models.InterestInvestment)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	count, err := f.repos.Startups.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestLedger_InvalidKind(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.Toggle(context.Background(), "payeasy", "u1", models.InterestKind("likes"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestLedger_StoreOffline(t *testing.T) {
	f := newFixture(t)
	f.store.SetOffline(true)

	_, err := f.ledger.Toggle(context.Background(), "payeasy", "u1", models.InterestInvestment)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestLedger_ConcurrentInvestorsAllRetained(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const n = 25
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.ledger.Toggle(ctx, "farmsmart", fmt.Sprintf("inv-%02d", i), models.InterestInvestment)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	st, err := f.repos.Startups.Get(ctx, "farmsmart")
	require.NoError(t, err)
	assert.Len(t, st.InterestedInvestors, n)
}

// gatedStartups blocks the first Get until released and counts writes.
type gatedStartups struct {
	repositories.StartupRepository
	entered chan struct{}
	release chan struct{}
	once    sync.Once
	adds    atomic.Int32
}

func (g *gatedStartups) Get(ctx context.Context, id string) (*models.Startup, error) {
	g.once.Do(func() {
		close(g.entered)
		<-g.release
	})
	return g.StartupRepository.Get(ctx, id)
}

func (g *gatedStartups) AddMember(ctx context.Context, id string, kind models.InterestKind, uid string) error {
	g.adds.Add(1)
	return g.StartupRepository.AddMember(ctx, id, kind, uid)
}

func TestLedger_DuplicateSubmitTogglesOnce(t *testing.T) {
	f := newFixture(t)
	repo := &gatedStartups{
		StartupRepository: f.repos.Startups,
		entered:           make(chan struct{}),
		release:           make(chan struct{}),
	}
	ledger := NewInterestLedger(repo, time.Second, zerolog.Nop())
	ctx := context.Background()

	results := make(chan *ToggleResult, 2)
	go func() {
		res, err := ledger.Toggle(ctx, "payeasy", "u1", models.InterestInvestment)
		assert.NoError(t, err)
		results <- res
	}()
	<-repo.entered
	go func() {
		res, err := ledger.Toggle(ctx, "payeasy", "u1", models.InterestInvestment)
		assert.NoError(t, err)
		results <- res
	}()
	time.Sleep(50 * time.Millisecond)
	close(repo.release)

	for i := 0; i < 2; i++ {
		res := <-results
		require.NotNil(t, res)
		assert.True(t, res.Active)
	}
	assert.Equal(t, int32(1), repo.adds.Load())
}
