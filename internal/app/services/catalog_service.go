package services

import (
	"context"
	"strings"
	"time"

	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/models/dto"
	"github.com/jazbaa/showcase/internal/app/repositories"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/jazbaa/showcase/internal/pkg/slug"
	"github.com/rs/zerolog"
)

// CatalogLoadFailedMessage is shown in place of a listing the store could not serve.
const CatalogLoadFailedMessage = "Startups could not be loaded right now. Please try again."

// CatalogScope narrows a listing: CollegeID binds it to one college and
// Sector ("" or "all" for every sector) to one tab.
type CatalogScope struct {
	CollegeID string
	Sector    string
}

// StartupInput is the admin "add startup" form.
type StartupInput struct {
	Name      string
	Pitch     string
	Sector    string
	Badges    []string
	Special   string
	CollegeID string
	CreatedBy string
	Profile   *models.StartupProfile
}

// CatalogService defines the startup catalog operations
type CatalogService interface {
	List(ctx context.Context, scope CatalogScope) *dto.StartupListResponse
	Get(ctx context.Context, id string) (*models.Startup, error)
	Create(ctx context.Context, in StartupInput) (*models.Startup, error)
	Meta() dto.CatalogMetaResponse
}

type catalogServiceImpl struct {
	startups repositories.StartupRepository
	timeout  time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(startups repositories.StartupRepository, timeout time.Duration, logger zerolog.Logger) CatalogService {
	return &catalogServiceImpl{
		startups: startups,
		timeout:  timeout,
		logger:   logger,
		now:      time.Now,
	}
}

// List never fails: a store outage yields an empty listing flagged as failed,
// which is distinct from an ok listing with no items.
func (s *catalogServiceImpl) List(ctx context.Context, scope CatalogScope) *dto.StartupListResponse {
	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	list, err := s.startups.List(sctx, repositories.StartupFilter{CollegeID: scope.CollegeID, Sector: scope.Sector})
	if err != nil {
		s.logger.Error().Err(err).Str("collegeId", scope.CollegeID).Str("sector", scope.Sector).Msg("Failed to list startups")
		return &dto.StartupListResponse{
			Startups:  []*models.Startup{},
			LoadState: dto.LoadStateFailed,
			Message:   CatalogLoadFailedMessage,
		}
	}
	return &dto.StartupListResponse{Startups: nonNilStartups(list), LoadState: dto.LoadStateOK}
}

func (s *catalogServiceImpl) Get(ctx context.Context, id string) (*models.Startup, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperrors.ErrStartupNotFound
	}
	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	st, err := s.startups.Get(sctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return st, nil
}

// NewStartup validates in and builds the startup it describes. The id is the
// slug of the name and the pitch is resolved from the profile when missing.
func NewStartup(in StartupInput, createdAt time.Time) (*models.Startup, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}
	id := slug.Make(name)
	if id == "" {
		return nil, apperrors.NewValidationError("name", "name must contain at least one letter or digit")
	}
	pitch := models.CanonicalPitch(in.Pitch, in.Profile)
	if pitch == "" {
		return nil, apperrors.NewValidationError("pitch", "pitch is required")
	}
	sector := strings.TrimSpace(in.Sector)
	if sector == "" {
		return nil, apperrors.NewValidationError("sector", "sector is required")
	}

	st := &models.Startup{
		ID:                  id,
		Name:                name,
		Pitch:               pitch,
		Sector:              sector,
		Badges:              in.Badges,
		Special:             strings.TrimSpace(in.Special),
		CollegeID:           strings.TrimSpace(in.CollegeID),
		CreatedBy:           in.CreatedBy,
		CreatedAt:           createdAt.UTC(),
		InterestedInvestors: []string{},
		HiringInvestors:     []string{},
		Profile:             in.Profile,
	}
	st.Normalize()
	return st, nil
}

func (s *catalogServiceImpl) Create(ctx context.Context, in StartupInput) (*models.Startup, error) {
	if strings.TrimSpace(in.CollegeID) == "" {
		return nil, apperrors.NewValidationError("collegeId", "collegeId is required")
	}
	st, err := NewStartup(in, s.now())
	if err != nil {
		return nil, err
	}

	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	if err := s.startups.Create(sctx, st); err != nil {
		return nil, storeErr(err)
	}

	s.logger.Info().Str("startup", st.ID).Str("createdBy", st.CreatedBy).Msg("Startup added")
	return st, nil
}

func (s *catalogServiceImpl) Meta() dto.CatalogMetaResponse {
	return dto.CatalogMetaResponse{
		DashboardSectors:    models.DashboardSectors,
		RegistrationSectors: models.RegistrationSectors,
		Badges:              models.Badges,
		InterestTypes:       []string{string(models.InterestInvestment), string(models.InterestHiring)},
		CommentTypes:        []string{string(models.CommentInvestment), string(models.CommentHiring), string(models.CommentGeneral)},
	}
}
