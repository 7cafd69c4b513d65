// Package services holds the business logic behind the HTTP controllers:
//   - AuthService: login, logout, self-registration and per-request identity
//   - CatalogService: startup listing, profile lookup and admin add
//   - InterestLedger: investor interest/hiring toggles
//   - CommentService: the append-only investor comment log
//   - AdminService: derived admin views, the user roster and invites
//   - InviteService: invite lookup and startup registration
//   - DashboardService: the per-role dashboard payloads
package services

import (
	"context"
	"errors"
	"time"

	"github.com/jazbaa/showcase/internal/pkg/apperrors"
)

// DefaultStoreTimeout bounds a single store operation when none is configured.
const DefaultStoreTimeout = 10 * time.Second

// storeContext derives the context a store call runs under.
func storeContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// storeErr turns a deadline or cancellation that escaped the backend into a
// retryable store failure.
func storeErr(err error) error {
	if err == nil || errors.Is(err, apperrors.ErrStoreUnavailable) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.NewStoreUnavailableError(err)
	}
	return err
}
