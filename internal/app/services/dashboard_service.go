package services

import (
	"context"
	"time"

	appAuth "github.com/jazbaa/showcase/internal/app/auth"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/models/dto"
	"github.com/jazbaa/showcase/internal/app/repositories"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultCollegeSector is the tab a college dashboard opens on.
const DefaultCollegeSector = "HealthTech"

// CollegeScopeMissingMessage is reported when the caller has no college id.
// The catalog is never listed unscoped for a college.
const CollegeScopeMissingMessage = "Your account is not linked to a college"

// DashboardService builds the role dashboards.
type DashboardService struct {
	startups repositories.StartupRepository
	comments repositories.CommentRepository
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	startups repositories.StartupRepository,
	comments repositories.CommentRepository,
	timeout time.Duration,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		startups: startups,
		comments: comments,
		timeout:  timeout,
		logger:   logger,
	}
}

// Investor loads every startup and every comment concurrently. A store
// failure yields an empty dashboard flagged as failed.
func (s *DashboardService) Investor(ctx context.Context, d appAuth.InvestorDashboard) *dto.InvestorDashboardResponse {
	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	var (
		startups []*models.Startup
		comments []*models.Comment
	)
	g, gctx := errgroup.WithContext(sctx)
	g.Go(func() error {
		var err error
		startups, err = s.startups.List(gctx, repositories.StartupFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = s.comments.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("investor", d.InvestorUID).Msg("Failed to load investor dashboard")
		return &dto.InvestorDashboardResponse{
			Startups:  []*models.Startup{},
			Comments:  []*models.Comment{},
			LoadState: dto.LoadStateFailed,
			Message:   CatalogLoadFailedMessage,
		}
	}

	sectors := make(map[string]struct{})
	totals := dto.InvestorTotals{Startups: len(startups)}
	for _, st := range startups {
		totals.InterestCount += len(st.InterestedInvestors)
		totals.HiringCount += len(st.HiringInvestors)
		sectors[st.Sector] = struct{}{}
	}
	totals.Sectors = len(sectors)

	return &dto.InvestorDashboardResponse{
		Startups:  nonNilStartups(startups),
		Comments:  nonNilComments(comments),
		Totals:    totals,
		LoadState: dto.LoadStateOK,
	}
}

// College loads the startups of the college's own scope. The store filters by
// college; the sector tab is applied over that scope while the totals cover
// the whole scope.
func (s *DashboardService) College(ctx context.Context, d appAuth.CollegeDashboard, sector string) *dto.CollegeDashboardResponse {
	if sector == "" {
		sector = DefaultCollegeSector
	}
	resp := &dto.CollegeDashboardResponse{
		CollegeID: d.CollegeID,
		Sector:    sector,
		Sectors:   models.DashboardSectors,
		Startups:  []*models.Startup{},
	}
	if d.CollegeID == "" {
		s.logger.Warn().Msg("College dashboard requested without a college scope")
		resp.LoadState = dto.LoadStateFailed
		resp.Message = CollegeScopeMissingMessage
		return resp
	}

	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	scoped, err := s.startups.List(sctx, repositories.StartupFilter{CollegeID: d.CollegeID})
	if err != nil {
		s.logger.Error().Err(err).Str("collegeId", d.CollegeID).Msg("Failed to load college dashboard")
		resp.LoadState = dto.LoadStateFailed
		resp.Message = CatalogLoadFailedMessage
		return resp
	}

	tab := repositories.StartupFilter{Sector: sector}
	for _, st := range scoped {
		resp.Totals.InterestedCount += len(st.InterestedInvestors)
		resp.Totals.HiringCount += len(st.HiringInvestors)
		if tab.Matches(st) {
			resp.Startups = append(resp.Startups, st)
		}
	}
	resp.Totals.Startups = len(scoped)
	resp.LoadState = dto.LoadStateOK
	return resp
}

func nonNilStartups(list []*models.Startup) []*models.Startup {
	if list == nil {
		return []*models.Startup{}
	}
	return list
}
