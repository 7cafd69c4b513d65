package services

import (
	"context"
	"testing"

	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/models/dto"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registrationForm(name string) *dto.InviteRegistrationRequest {
	return &dto.InviteRegistrationRequest{
		Name:    name,
		Tagline: "Solar kiosks for every village",
		Story:   "We started in a hostel room. Now we power schools.",
		Sector:  "Energy",
		Badges:  []string{"CleanTech"},
		Team:    []dto.TeamMemberRequest{{Name: "Ravi", Role: "CEO", Hiring: true}},
	}
}

func TestInvites_RegisterOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.admin.IssueInvite(ctx, "team@sunbox.in", "iit-bombay")
	require.NoError(t, err)

	done, st, err := f.invites.Register(ctx, inv.Token, registrationForm("SunBox Energy"))
	require.NoError(t, err)
	assert.Equal(t, models.InviteRegistered, done.Status)
	assert.Equal(t, "sunbox-energy", done.StartupSlug)
	assert.Equal(t, "sunbox-energy", st.ID)
	assert.Equal(t, "Solar kiosks for every village", st.Pitch)
	assert.Equal(t, "team@sunbox.in", st.CreatedBy)
	assert.Equal(t, "iit-bombay", st.CollegeID)
	require.NotNil(t, st.Profile)
	assert.Len(t, st.Profile.Team, 1)

	got, err := f.catalog.Get(ctx, "sunbox-energy")
	require.NoError(t, err)
	assert.Equal(t, "SunBox Energy", got.Name)

	_, err = f.invites.Lookup(ctx, inv.Token)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyUsed)

	_, _, err = f.invites.Register(ctx, inv.Token, registrationForm("SunBox Two"))
	assert.ErrorIs(t, err, apperrors.ErrAlreadyUsed)
}

func TestInvites_SlugTakenKeepsInvitePending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.admin.IssueInvite(ctx, "team@payeasy.in", "")
	require.NoError(t, err)

	_, _, err = f.invites.Register(ctx, inv.Token, registrationForm("PAYEASY"))
	assert.ErrorIs(t, err, apperrors.ErrSlugTaken)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	still, err := f.invites.Lookup(ctx, inv.Token)
	require.NoError(t, err)
	assert.Equal(t, models.InvitePending, still.Status)
}

func TestInvites_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.admin.IssueInvite(ctx, "team@x.in", "")
	require.NoError(t, err)

	noTeam := registrationForm("X Labs")
	noTeam.Team = nil
	_, _, err = f.invites.Register(ctx, inv.Token, noTeam)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	noStory := registrationForm("X Labs")
	noStory.Story = "  "
	_, _, err = f.invites.Register(ctx, inv.Token, noStory)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	badMember := registrationForm("X Labs")
	badMember.Team = []dto.TeamMemberRequest{{Name: "Ravi"}}
	_, _, err = f.invites.Register(ctx, inv.Token, badMember)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	still, err := f.invites.Lookup(ctx, inv.Token)
	require.NoError(t, err)
	assert.Equal(t, models.InvitePending, still.Status)
}

func TestInvites_UnknownToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.invites.Lookup(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, apperrors.ErrInviteNotFound)
}
