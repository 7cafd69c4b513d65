package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/models/dto"
	"github.com/jazbaa/showcase/internal/app/repositories"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/jazbaa/showcase/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// AdminService derives the admin views from the current catalog and
// directory. Nothing it returns is cached.
type AdminService struct {
	repos   *repositories.Repositories
	auth    *AuthService
	timeout time.Duration
	logger  zerolog.Logger
	now     func() time.Time
}

// NewAdminService creates a new AdminService
func NewAdminService(repos *repositories.Repositories, authService *AuthService, timeout time.Duration, logger zerolog.Logger) *AdminService {
	return &AdminService{
		repos:   repos,
		auth:    authService,
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

// FlattenInterests expands every membership of startups into one event per
// (investor, startup, kind), optionally restricted to one kind. Emails are
// looked up in emails and fall back to the uid.
func FlattenInterests(startups []*models.Startup, kind models.InterestKind, emails map[string]string) []models.InterestEvent {
	kinds := []models.InterestKind{models.InterestInvestment, models.InterestHiring}
	if kind != "" {
		kinds = []models.InterestKind{kind}
	}

	events := make([]models.InterestEvent, 0)
	for _, st := range startups {
		for _, k := range kinds {
			for _, uid := range st.Members(k) {
				email, ok := emails[uid]
				if !ok || email == "" {
					email = uid
				}
				events = append(events, models.InterestEvent{
					InvestorID:    uid,
					InvestorEmail: email,
					StartupID:     st.ID,
					StartupName:   st.Name,
					Sector:        st.Sector,
					Type:          k,
				})
			}
		}
	}
	return events
}

func memberUIDs(startups []*models.Startup) []string {
	var uids []string
	for _, st := range startups {
		uids = append(uids, st.InterestedInvestors...)
		uids = append(uids, st.HiringInvestors...)
	}
	return models.NormalizeSet(uids)
}

// AllInterestEvents lists the flattened interest events. An empty kind
// returns both kinds.
func (s *AdminService) AllInterestEvents(ctx context.Context, kind models.InterestKind) ([]models.InterestEvent, error) {
	if kind != "" && !kind.Valid() {
		return nil, apperrors.NewValidationError("type", "type must be investment or hiring")
	}
	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	startups, err := s.repos.Startups.List(sctx, repositories.StartupFilter{})
	if err != nil {
		return nil, storeErr(err)
	}

	emails, err := s.repos.Users.EmailsByUID(sctx, memberUIDs(startups))
	if err != nil {
		// the uid is an acceptable label when the directory is unavailable
		s.logger.Warn().Err(err).Msg("Failed to resolve investor emails")
		emails = nil
	}

	return FlattenInterests(startups, kind, emails), nil
}

// RosterStats recomputes the overview counters.
func (s *AdminService) RosterStats(ctx context.Context) (*dto.RosterStats, error) {
	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	startups, err := s.repos.Startups.List(sctx, repositories.StartupFilter{})
	if err != nil {
		return nil, storeErr(err)
	}
	byRole, err := s.repos.Users.CountByRole(sctx)
	if err != nil {
		return nil, storeErr(err)
	}

	events := 0
	for _, st := range startups {
		events += len(st.InterestedInvestors) + len(st.HiringInvestors)
	}
	return &dto.RosterStats{
		TotalStartups:       len(startups),
		TotalInvestors:      byRole[models.RoleInvestor],
		TotalColleges:       byRole[models.RoleCollege],
		TotalInterestEvents: events,
	}, nil
}

// Users returns one page of the roster, oldest accounts first.
func (s *AdminService) Users(ctx context.Context, role models.Role, page, size int) (*dto.UserListResponse, error) {
	if role != "" && !role.Valid() {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}
	page, size = helpers.NormalizePage(page, size)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	users, total, err := s.repos.Users.List(sctx, repositories.UserListParams{Role: role, Offset: offset, Limit: limit})
	if err != nil {
		return nil, storeErr(err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return &dto.UserListResponse{
		Users:      out,
		Pagination: helpers.NewPaginationInfo(int64(total), page, size),
	}, nil
}

// AddUser creates an account of any role.
func (s *AdminService) AddUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	return s.auth.CreateUser(ctx, NewUserInput{
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		DisplayName: req.DisplayName,
		CollegeID:   req.CollegeID,
		InvestorID:  req.InvestorID,
	})
}

// IssueInvite creates a pending registration invite with a fresh token.
func (s *AdminService) IssueInvite(ctx context.Context, email, collegeID string) (*models.Invite, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, apperrors.NewValidationError("email", "email is required")
	}

	inv := &models.Invite{
		ID:        uuid.NewString(),
		Token:     uuid.NewString(),
		Email:     email,
		CollegeID: strings.TrimSpace(collegeID),
		Status:    models.InvitePending,
		CreatedAt: s.now().UTC(),
	}

	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	if err := s.repos.Invites.Create(sctx, inv); err != nil {
		return nil, storeErr(err)
	}

	s.logger.Info().Str("email", inv.Email).Str("collegeId", inv.CollegeID).Msg("Invite issued")
	return inv, nil
}
