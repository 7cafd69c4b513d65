package services

import (
	"context"
	"testing"

	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func investorByUID(t *testing.T, f *fixture, uid string) *models.User {
	t.Helper()
	u, err := f.repos.Users.GetByUID(context.Background(), uid)
	require.NoError(t, err)
	return u
}

func TestComments_AppendAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.comments.Append(ctx, CommentInput{
		StartupID: "cropguard", Investor: investorByUID(t, f, "u1"),
		Text: "  Interested in your backend dev  ", Kind: models.CommentHiring,
	})
	require.NoError(t, err)
	assert.Equal(t, "Interested in your backend dev", first.Text)
	assert.Equal(t, "Asha Investor", first.InvestorName)

	second, err := f.comments.Append(ctx, CommentInput{
		StartupID: "cropguard", Investor: investorByUID(t, f, "u2"),
		Text: "Following up", Kind: models.CommentGeneral,
	})
	require.NoError(t, err)
	assert.Equal(t, "investor2@test.com", second.InvestorName)

	list, err := f.comments.ListFor(ctx, "cropguard")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	other, err := f.comments.ListFor(ctx, "crop")
	require.NoError(t, err)
	assert.NotNil(t, other)
	assert.Empty(t, other)

	all, err := f.comments.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "payeasy", all[0].StartupID)
}

func TestComments_EmptyTextStoresNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.comments.Append(ctx, CommentInput{
		StartupID: "payeasy", Investor: investorByUID(t, f, "u1"), Text: " \n\t ", Kind: models.CommentGeneral,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	list, err := f.comments.ListFor(ctx, "payeasy")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestComments_Rejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u1 := investorByUID(t, f, "u1")

	_, err := f.comments.Append(ctx, CommentInput{StartupID: "payeasy", Investor: u1, Text: "hi", Kind: "praise"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.comments.Append(ctx, CommentInput{StartupID: "ghost", Investor: u1, Text: "hi", Kind: models.CommentGeneral})
	assert.ErrorIs(t, err, apperrors.ErrStartupNotFound)

	f.store.SetOffline(true)
	_, err = f.comments.Append(ctx, CommentInput{StartupID: "payeasy", Investor: u1, Text: "hi", Kind: models.CommentGeneral})
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}
