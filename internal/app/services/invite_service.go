package services

import (
	"context"
	"strings"
	"time"

	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/models/dto"
	"github.com/jazbaa/showcase/internal/app/repositories"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// InviteService handles the invite-only startup registration
type InviteService struct {
	invites repositories.InviteRepository
	timeout time.Duration
	logger  zerolog.Logger
	now     func() time.Time
}

// NewInviteService creates a new InviteService
func NewInviteService(invites repositories.InviteRepository, timeout time.Duration, logger zerolog.Logger) *InviteService {
	return &InviteService{
		invites: invites,
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

// Lookup returns the pending invite for token.
func (s *InviteService) Lookup(ctx context.Context, token string) (*models.Invite, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, apperrors.ErrInviteNotFound
	}
	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	inv, err := s.invites.GetByToken(sctx, token)
	if err != nil {
		return nil, storeErr(err)
	}
	if inv.Status == models.InviteRegistered {
		return nil, apperrors.ErrAlreadyUsed
	}
	return inv, nil
}

func validateRegistration(form *dto.InviteRegistrationRequest) error {
	required := []struct{ field, value string }{
		{"name", form.Name},
		{"tagline", form.Tagline},
		{"story", form.Story},
		{"sector", form.Sector},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return apperrors.NewValidationError(r.field, r.field+" is required")
		}
	}
	if len(form.Team) == 0 {
		return apperrors.NewValidationError("team", "at least one team member is required")
	}
	for _, m := range form.Team {
		if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Role) == "" {
			return apperrors.NewValidationError("team", "every team member needs a name and a role")
		}
	}
	return nil
}

// Register consumes the invite and creates the startup it was issued for.
// The startup and the invite transition are written in one transaction.
func (s *InviteService) Register(ctx context.Context, token string, form *dto.InviteRegistrationRequest) (*models.Invite, *models.Startup, error) {
	if err := validateRegistration(form); err != nil {
		return nil, nil, err
	}

	inv, err := s.Lookup(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	st, err := NewStartup(StartupInput{
		Name:      form.Name,
		Sector:    form.Sector,
		Badges:    form.Badges,
		CollegeID: inv.CollegeID,
		CreatedBy: inv.Email,
		Profile:   form.Profile(),
	}, s.now())
	if err != nil {
		return nil, nil, err
	}

	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	done, err := s.invites.CompleteRegistration(sctx, inv.Token, st)
	if err != nil {
		s.logger.Warn().Err(err).Str("startup", st.ID).Msg("Invite registration rejected")
		return nil, nil, storeErr(err)
	}

	s.logger.Info().Str("startup", st.ID).Str("email", inv.Email).Msg("Startup registered from invite")
	return done, st, nil
}
