// Package seed holds the demo directory and catalog used by the in-memory
// backend and loaded into an empty database on first start.
package seed

import (
	"context"
	"errors"
	"time"

	appModels "github.com/jazbaa/showcase/internal/app/models"
	appRepos "github.com/jazbaa/showcase/internal/app/repositories"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	pkgAuth "github.com/jazbaa/showcase/internal/pkg/auth"
	"github.com/jazbaa/showcase/internal/pkg/slug"
	"github.com/rs/zerolog"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "password123"

// Dataset is a complete set of seed records.
type Dataset struct {
	Users    []*appModels.User
	Startups []*appModels.Startup
	Comments []*appModels.Comment
}

// base is the creation time of the oldest seeded record.
var base = time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)

type demoStartup struct {
	name    string
	pitch   string
	sector  string
	badges  []string
	special string
	college string
}

var demoStartups = []demoStartup{
	{"MediCare AI", "AI-powered diagnosis for rural healthcare", "HealthTech", []string{"Open to Invest"}, "", "iit-delhi"},
	{"HealthBridge", "Connecting patients with specialists virtually", "HealthTech", []string{"Open to Hire"}, "Built by All-Women Team", "iit-bombay"},
	{"PillTracker", "Smart medication management system", "HealthTech", []string{"Open to Invest", "Open to Hire"}, "Flagship Startup", "iit-delhi"},
	{"FarmSmart", "IoT sensors for precision farming", "AgriTech", []string{"Open to Invest"}, "", "iit-bombay"},
	{"CropGuard", "AI-based crop disease detection", "AgriTech", []string{"Open to Hire"}, "Built by All-Women Team", "iit-delhi"},
	{"PayEasy", "Digital payments for rural merchants", "FinTech", []string{"Open to Invest"}, "Flagship Startup", "iit-bombay"},
	{"MicroLend", "Peer-to-peer lending platform", "FinTech", []string{"Open to Hire"}, "", "iit-delhi"},
}

// Demo builds the demo dataset. Passwords are hashed with cost so tests can
// pass bcrypt.MinCost.
func Demo(cost int) (*Dataset, error) {
	hash, err := pkgAuth.HashPasswordWithCost(DemoPassword, cost)
	if err != nil {
		return nil, err
	}

	users := []*appModels.User{
		{UID: "admin-1", Email: "admin@test.com", DisplayName: "Event Admin", Role: appModels.RoleAdmin},
		{UID: "u1", Email: "investor@test.com", DisplayName: "Asha Investor", Role: appModels.RoleInvestor, InvestorID: "inv-001"},
		{UID: "u2", Email: "investor2@test.com", Role: appModels.RoleInvestor, InvestorID: "inv-002"},
		{UID: "college-1", Email: "college@test.com", DisplayName: "IIT Delhi Incubator", Role: appModels.RoleCollege, CollegeID: "iit-delhi"},
		{UID: "college-2", Email: "college2@test.com", DisplayName: "IIT Bombay E-Cell", Role: appModels.RoleCollege, CollegeID: "iit-bombay"},
	}
	for i, u := range users {
		u.PasswordHash = hash
		u.CreatedAt = base.Add(time.Duration(i) * time.Minute)
	}

	startups := make([]*appModels.Startup, 0, len(demoStartups))
	for i, d := range demoStartups {
		s := &appModels.Startup{
			ID:        slug.Make(d.name),
			Name:      d.name,
			Pitch:     d.pitch,
			Sector:    d.sector,
			Badges:    d.badges,
			Special:   d.special,
			CollegeID: d.college,
			CreatedBy: "admin-1",
			CreatedAt: base.Add(time.Duration(i+1) * time.Hour),
		}
		s.Normalize()
		startups = append(startups, s)
	}

	comments := []*appModels.Comment{
		{
			ID: "seed-comment-1", InvestorID: "u2", InvestorName: "investor2@test.com",
			StartupID: "payeasy", Text: "Strong traction with rural merchants.",
			Timestamp: base.Add(24 * time.Hour), Type: appModels.CommentInvestment,
		},
	}

	return &Dataset{Users: users, Startups: startups, Comments: comments}, nil
}

// Apply writes data into repos, skipping records that already exist.
func Apply(ctx context.Context, repos *appRepos.Repositories, data *Dataset, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating demo data (users, startups, comments)...")
	var finalErr error

	for _, u := range data.Users {
		err := repos.Users.Create(ctx, u)
		if err != nil && !errors.Is(err, apperrors.ErrConflict) {
			lgr.Error().Err(err).Str("email", u.Email).Msg("Error creating demo user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	created := make(map[string]bool, len(data.Startups))
	for _, s := range data.Startups {
		err := repos.Startups.Create(ctx, s)
		switch {
		case err == nil:
			created[s.ID] = true
		case errors.Is(err, apperrors.ErrConflict):
		default:
			lgr.Error().Err(err).Str("startup", s.ID).Msg("Error creating demo startup")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// Comments are only seeded alongside a freshly created startup so restarts
	// do not duplicate them.
	for _, c := range data.Comments {
		if !created[c.StartupID] {
			continue
		}
		if err := repos.Comments.Append(ctx, c); err != nil {
			lgr.Error().Err(err).Str("startup", c.StartupID).Msg("Error creating demo comment")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Demo data ready")
	}
	return finalErr
}
