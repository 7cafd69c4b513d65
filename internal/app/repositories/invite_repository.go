package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/db"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/jazbaa/showcase/internal/pkg/dberrors"
)

var inviteColumns = []string{"id", "token", "email", "college_id", "status", "startup_slug", "created_at"}

// PostgresInviteRepository handles invite database operations
type PostgresInviteRepository struct {
	db *pgxpool.Pool
}

// NewInviteRepository creates a new PostgresInviteRepository
func NewInviteRepository(db *pgxpool.Pool) *PostgresInviteRepository {
	return &PostgresInviteRepository{db: db}
}

// Create inserts an invite
func (r *PostgresInviteRepository) Create(ctx context.Context, inv *models.Invite) error {
	sql, args, err := psql.Insert("invites").
		Columns(inviteColumns...).
		Values(inv.ID, inv.Token, inv.Email, inv.CollegeID, inv.Status, inv.StartupSlug, inv.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create invite query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.NewConflictError("invite token already exists")
		}
		return wrapDBError("create invite", err)
	}
	return nil
}

func getInvite(ctx context.Context, q dbtx, token string, forUpdate bool) (*models.Invite, error) {
	sel := psql.Select(inviteColumns...).From("invites").Where(squirrel.Eq{"token": token}).Limit(1)
	if forUpdate {
		sel = sel.Suffix("FOR UPDATE")
	}
	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get invite query: %w", err)
	}

	inv := &models.Invite{}
	err = q.QueryRow(ctx, sql, args...).Scan(&inv.ID, &inv.Token, &inv.Email, &inv.CollegeID,
		&inv.Status, &inv.StartupSlug, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInviteNotFound
		}
		return nil, wrapDBError("get invite", err)
	}
	return inv, nil
}

// GetByToken retrieves an invite by token
func (r *PostgresInviteRepository) GetByToken(ctx context.Context, token string) (*models.Invite, error) {
	return getInvite(ctx, r.db, token, false)
}

// CompleteRegistration locks the invite row, inserts the startup and marks the
// invite registered, all in one transaction.
func (r *PostgresInviteRepository) CompleteRegistration(ctx context.Context, token string, startup *models.Startup) (*models.Invite, error) {
	var result *models.Invite
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		inv, err := getInvite(ctx, tx, token, true)
		if err != nil {
			return err
		}
		if inv.Status == models.InviteRegistered {
			return apperrors.ErrAlreadyUsed
		}

		if err := insertStartup(ctx, tx, startup); err != nil {
			return err
		}

		sql, args, err := psql.Update("invites").
			Set("status", models.InviteRegistered).
			Set("startup_slug", startup.ID).
			Where(squirrel.Eq{"id": inv.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update invite query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return wrapDBError("update invite", err)
		}

		inv.Status = models.InviteRegistered
		inv.StartupSlug = startup.ID
		result = inv
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrStoreUnavailable) && dberrors.IsUnavailable(err) {
			return nil, apperrors.NewStoreUnavailableError(err)
		}
		return nil, err
	}
	return result, nil
}
