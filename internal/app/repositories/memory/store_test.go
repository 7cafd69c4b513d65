package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/repositories"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newRepos(t *testing.T) (*Store, *repositories.Repositories) {
	t.Helper()
	s := New()
	repos := s.Repositories()
	ctx := context.Background()
	for i, st := range []*models.Startup{
		{ID: "medicare-ai", Name: "MediCare AI", Pitch: "p", Sector: "HealthTech", CollegeID: "iit-delhi", CreatedAt: t0},
		{ID: "payeasy", Name: "PayEasy", Pitch: "p", Sector: "FinTech", CollegeID: "iit-bombay", CreatedAt: t0.Add(time.Hour)},
		{ID: "cropguard", Name: "CropGuard", Pitch: "p", Sector: "AgriTech", CollegeID: "iit-delhi", CreatedAt: t0.Add(time.Hour)},
	} {
		require.NoError(t, repos.Startups.Create(ctx, st), "startup %d", i)
	}
	return s, repos
}

func TestStartups_ListOrderAndFilters(t *testing.T) {
	_, repos := newRepos(t)
	ctx := context.Background()

	all, err := repos.Startups.List(ctx, repositories.StartupFilter{})
	require.NoError(t, err)
	ids := make([]string, 0, len(all))
	for _, s := range all {
		ids = append(ids, s.ID)
	}
	// newest first, equal timestamps ordered by id
	assert.Equal(t, []string{"cropguard", "payeasy", "medicare-ai"}, ids)

	delhi, err := repos.Startups.List(ctx, repositories.StartupFilter{CollegeID: "iit-delhi", Sector: models.SectorAll})
	require.NoError(t, err)
	require.Len(t, delhi, 2)
	for _, s := range delhi {
		assert.Equal(t, "iit-delhi", s.CollegeID)
	}

	health, err := repos.Startups.List(ctx, repositories.StartupFilter{CollegeID: "iit-delhi", Sector: "HealthTech"})
	require.NoError(t, err)
	require.Len(t, health, 1)
	assert.Equal(t, "medicare-ai", health[0].ID)

	none, err := repos.Startups.List(ctx, repositories.StartupFilter{Sector: "healthtech"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStartups_CreateDuplicate(t *testing.T) {
	_, repos := newRepos(t)
	err := repos.Startups.Create(context.Background(), &models.Startup{ID: "payeasy", Name: "PayEasy", Pitch: "x"})
	assert.ErrorIs(t, err, apperrors.ErrSlugTaken)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestStartups_MembersAreSets(t *testing.T) {
	_, repos := newRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Startups.AddMember(ctx, "medicare-ai", models.InterestInvestment, "u1"))
	require.NoError(t, repos.Startups.AddMember(ctx, "medicare-ai", models.InterestInvestment, "u1"))
	require.NoError(t, repos.Startups.AddMember(ctx, "medicare-ai", models.InterestHiring, "u1"))

	st, err := repos.Startups.Get(ctx, "medicare-ai")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, st.InterestedInvestors)
	assert.Equal(t, []string{"u1"}, st.HiringInvestors)

	require.NoError(t, repos.Startups.RemoveMember(ctx, "medicare-ai", models.InterestInvestment, "u1"))
	st, err = repos.Startups.Get(ctx, "medicare-ai")
	require.NoError(t, err)
	assert.Empty(t, st.InterestedInvestors)
	assert.Equal(t, []string{"u1"}, st.HiringInvestors)

	err = repos.Startups.AddMember(ctx, "ghost", models.InterestInvestment, "u1")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestStartups_ConcurrentAddsAllRetained(t *testing.T) {
	_, repos := newRepos(t)
	ctx := context.Background()

	const investors = 50
	var wg sync.WaitGroup
	for i := 0; i < investors; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repos.Startups.AddMember(ctx, "payeasy", models.InterestInvestment, fmt.Sprintf("inv-%d", i)))
		}(i)
	}
	wg.Wait()

	st, err := repos.Startups.Get(ctx, "payeasy")
	require.NoError(t, err)
	assert.Len(t, st.InterestedInvestors, investors)
}

func TestStartups_ReturnedValuesAreCopies(t *testing.T) {
	_, repos := newRepos(t)
	ctx := context.Background()

	st, err := repos.Startups.Get(ctx, "payeasy")
	require.NoError(t, err)
	st.InterestedInvestors = append(st.InterestedInvestors, "intruder")

	again, err := repos.Startups.Get(ctx, "payeasy")
	require.NoError(t, err)
	assert.Empty(t, again.InterestedInvestors)
}

func TestComments_OrderedByTimestamp(t *testing.T) {
	_, repos := newRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Comments.Append(ctx, &models.Comment{ID: "b", StartupID: "payeasy", Text: "second", Timestamp: t0.Add(time.Minute)}))
	require.NoError(t, repos.Comments.Append(ctx, &models.Comment{ID: "a", StartupID: "payeasy", Text: "first", Timestamp: t0}))
	require.NoError(t, repos.Comments.Append(ctx, &models.Comment{ID: "c", StartupID: "medicare-ai", Text: "other", Timestamp: t0}))

	got, err := repos.Comments.ListByStartup(ctx, "payeasy")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Text)
	assert.Equal(t, "second", got[1].Text)

	all, err := repos.Comments.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUsers_ListPaging(t *testing.T) {
	_, repos := newRepos(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		role := models.RoleInvestor
		if i%2 == 0 {
			role = models.RoleCollege
		}
		require.NoError(t, repos.Users.Create(ctx, &models.User{
			UID: fmt.Sprintf("u%d", i), Email: fmt.Sprintf("u%d@test.com", i), Role: role,
			CreatedAt: t0.Add(time.Duration(i) * time.Minute),
		}))
	}

	page, total, err := repos.Users.List(ctx, repositories.UserListParams{Offset: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "u2", page[0].UID)

	colleges, total, err := repos.Users.List(ctx, repositories.UserListParams{Role: models.RoleCollege})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, colleges, 3)

	beyond, _, err := repos.Users.List(ctx, repositories.UserListParams{Offset: 10, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, beyond)

	err = repos.Users.Create(ctx, &models.User{UID: "dup", Email: "u1@test.com", Role: models.RoleInvestor})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	counts, err := repos.Users.CountByRole(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, counts[models.RoleCollege])
	assert.Equal(t, 2, counts[models.RoleInvestor])
}

func TestInvites_CompleteRegistration(t *testing.T) {
	_, repos := newRepos(t)
	ctx := context.Background()
	require.NoError(t, repos.Invites.Create(ctx, &models.Invite{ID: "i1", Token: "tok", Email: "team@x.com", Status: models.InvitePending}))

	inv, err := repos.Invites.CompleteRegistration(ctx, "tok", &models.Startup{ID: "newco", Name: "NewCo", Pitch: "p"})
	require.NoError(t, err)
	assert.Equal(t, models.InviteRegistered, inv.Status)
	assert.Equal(t, "newco", inv.StartupSlug)

	_, err = repos.Invites.CompleteRegistration(ctx, "tok", &models.Startup{ID: "newco-2", Name: "NewCo 2", Pitch: "p"})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyUsed)

	_, err = repos.Startups.Get(ctx, "newco-2")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestInvites_SlugTakenLeavesInvitePending(t *testing.T) {
	_, repos := newRepos(t)
	ctx := context.Background()
	require.NoError(t, repos.Invites.Create(ctx, &models.Invite{ID: "i1", Token: "tok", Email: "team@x.com", Status: models.InvitePending}))

	_, err := repos.Invites.CompleteRegistration(ctx, "tok", &models.Startup{ID: "payeasy", Name: "PayEasy", Pitch: "p"})
	assert.ErrorIs(t, err, apperrors.ErrSlugTaken)

	inv, err := repos.Invites.GetByToken(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, models.InvitePending, inv.Status)
}

func TestOffline(t *testing.T) {
	s, repos := newRepos(t)
	s.SetOffline(true)

	_, err := repos.Startups.List(context.Background(), repositories.StartupFilter{})
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)

	s.SetOffline(false)
	_, err = repos.Startups.List(context.Background(), repositories.StartupFilter{})
	assert.NoError(t, err)
}
