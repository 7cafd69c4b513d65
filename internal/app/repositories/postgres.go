package repositories

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/jazbaa/showcase/internal/pkg/dberrors"
	"github.com/jazbaa/showcase/internal/pkg/logger"
)

// psql builds statements with PostgreSQL placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// wrapDBError turns connectivity failures into apperrors.ErrStoreUnavailable
// and annotates everything else with the failed operation.
func wrapDBError(op string, err error) error {
	if dberrors.IsUnavailable(err) {
		logger.Warn().Err(err).Str("op", op).Msg("Database unavailable")
		return apperrors.NewStoreUnavailableError(err)
	}
	logger.Error().Err(err).Str("op", op).Msg("Database operation failed")
	return fmt.Errorf("%s: %w", op, err)
}
