package services

import (
	"context"
	"strings"
	"time"

	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/repositories"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// ToggleResult is the startup as re-read after a toggle.
type ToggleResult struct {
	Startup *models.Startup
	Kind    models.InterestKind
	// Active reports whether the investor is in the set after the toggle.
	Active bool
}

// InterestLedger flips investor membership in a startup's interest and
// hiring sets.
type InterestLedger struct {
	startups repositories.StartupRepository
	timeout  time.Duration
	logger   zerolog.Logger
	group    singleflight.Group
}

// NewInterestLedger creates a new ledger
func NewInterestLedger(startups repositories.StartupRepository, timeout time.Duration, logger zerolog.Logger) *InterestLedger {
	return &InterestLedger{
		startups: startups,
		timeout:  timeout,
		logger:   logger,
	}
}

// Toggle adds investorUID to the kind set of startupID when absent and
// removes it when present. Identical toggles in flight at the same time
// share one execution, so a double submit flips the membership once.
func (l *InterestLedger) Toggle(ctx context.Context, startupID, investorUID string, kind models.InterestKind) (*ToggleResult, error) {
	if !kind.Valid() {
		return nil, apperrors.NewValidationError("type", "type must be investment or hiring")
	}
	startupID = strings.TrimSpace(startupID)
	if startupID == "" {
		return nil, apperrors.ErrStartupNotFound
	}
	if investorUID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	key := startupID + "\x00" + investorUID + "\x00" + string(kind)
	v, err, shared := l.group.Do(key, func() (interface{}, error) {
		return l.toggle(ctx, startupID, investorUID, kind)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		l.logger.Debug().Str("startup", startupID).Str("investor", investorUID).Msg("Collapsed duplicate toggle")
	}
	res := v.(*ToggleResult)
	return &ToggleResult{Startup: res.Startup, Kind: res.Kind, Active: res.Active}, nil
}

func (l *InterestLedger) toggle(ctx context.Context, startupID, investorUID string, kind models.InterestKind) (*ToggleResult, error) {
	sctx, cancel := storeContext(ctx, l.timeout)
	defer cancel()

	// The startup must exist before anything is written.
	current, err := l.startups.Get(sctx, startupID)
	if err != nil {
		return nil, storeErr(err)
	}

	if current.HasMember(kind, investorUID) {
		err = l.startups.RemoveMember(sctx, startupID, kind, investorUID)
	} else {
		err = l.startups.AddMember(sctx, startupID, kind, investorUID)
	}
	if err != nil {
		l.logger.Error().Err(err).Str("startup", startupID).Str("type", string(kind)).Msg("Failed to toggle interest")
		return nil, storeErr(err)
	}

	updated, err := l.startups.Get(sctx, startupID)
	if err != nil {
		return nil, storeErr(err)
	}

	active := updated.HasMember(kind, investorUID)
	l.logger.Info().
		Str("startup", startupID).
		Str("investor", investorUID).
		Str("type", string(kind)).
		Bool("active", active).
		Msg("Interest toggled")
	return &ToggleResult{Startup: updated, Kind: kind, Active: active}, nil
}
