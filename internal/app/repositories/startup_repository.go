package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/jazbaa/showcase/internal/pkg/dberrors"
)

var startupColumns = []string{
	"id", "name", "pitch", "sector", "badges", "special", "college_id",
	"created_by", "created_at", "interested_investors", "hiring_investors", "profile",
}

// dbtx is satisfied by *pgxpool.Pool and pgx.Tx.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// memberColumn maps a membership kind to its array column. Column names are
// never taken from input.
func memberColumn(kind models.InterestKind) (string, error) {
	switch kind {
	case models.InterestInvestment:
		return "interested_investors", nil
	case models.InterestHiring:
		return "hiring_investors", nil
	}
	return "", apperrors.NewValidationError("type", fmt.Sprintf("unknown interest type %q", kind))
}

// PostgresStartupRepository handles startup database operations
type PostgresStartupRepository struct {
	db *pgxpool.Pool
}

// NewStartupRepository creates a new PostgresStartupRepository
func NewStartupRepository(db *pgxpool.Pool) *PostgresStartupRepository {
	return &PostgresStartupRepository{db: db}
}

func scanStartup(row pgx.Row) (*models.Startup, error) {
	s := &models.Startup{}
	err := row.Scan(&s.ID, &s.Name, &s.Pitch, &s.Sector, &s.Badges, &s.Special, &s.CollegeID,
		&s.CreatedBy, &s.CreatedAt, &s.InterestedInvestors, &s.HiringInvestors, &s.Profile)
	if err != nil {
		return nil, err
	}
	s.Normalize()
	return s, nil
}

func insertStartup(ctx context.Context, db dbtx, startup *models.Startup) error {
	startup.Normalize()
	sql, args, err := psql.Insert("startups").
		Columns(startupColumns...).
		Values(startup.ID, startup.Name, startup.Pitch, startup.Sector, startup.Badges, startup.Special,
			startup.CollegeID, startup.CreatedBy, startup.CreatedAt,
			startup.InterestedInvestors, startup.HiringInvestors, startup.Profile).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create startup query: %w", err)
	}
	if _, err := db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrSlugTaken
		}
		return wrapDBError("create startup", err)
	}
	return nil
}

// Create inserts a new startup
func (r *PostgresStartupRepository) Create(ctx context.Context, startup *models.Startup) error {
	return insertStartup(ctx, r.db, startup)
}

// Get retrieves a startup by its slug
func (r *PostgresStartupRepository) Get(ctx context.Context, id string) (*models.Startup, error) {
	sql, args, err := psql.Select(startupColumns...).From("startups").
		Where(squirrel.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get startup query: %w", err)
	}

	startup, err := scanStartup(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStartupNotFound
		}
		return nil, wrapDBError("get startup", err)
	}
	return startup, nil
}

// List returns the startups matching filter, newest first
func (r *PostgresStartupRepository) List(ctx context.Context, filter StartupFilter) ([]*models.Startup, error) {
	q := psql.Select(startupColumns...).From("startups").OrderBy("created_at DESC", "id ASC")
	if filter.CollegeID != "" {
		q = q.Where(squirrel.Eq{"college_id": filter.CollegeID})
	}
	if sector := filter.SectorFilter(); sector != "" {
		q = q.Where(squirrel.Eq{"sector": sector})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list startups query: %w", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapDBError("list startups", err)
	}
	defer rows.Close()

	startups := make([]*models.Startup, 0)
	for rows.Next() {
		s, err := scanStartup(rows)
		if err != nil {
			return nil, wrapDBError("scan startup", err)
		}
		startups = append(startups, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("list startups", err)
	}
	return startups, nil
}

// AddMember appends uid to the membership array unless it is already present.
// The check and the append happen in one statement.
func (r *PostgresStartupRepository) AddMember(ctx context.Context, id string, kind models.InterestKind, uid string) error {
	col, err := memberColumn(kind)
	if err != nil {
		return err
	}
	expr := squirrel.Expr(
		fmt.Sprintf("CASE WHEN ? = ANY(%[1]s) THEN %[1]s ELSE array_append(%[1]s, ?) END", col),
		uid, uid,
	)
	return r.updateMembers(ctx, id, col, expr, "add member")
}

// RemoveMember removes uid from the membership array.
func (r *PostgresStartupRepository) RemoveMember(ctx context.Context, id string, kind models.InterestKind, uid string) error {
	col, err := memberColumn(kind)
	if err != nil {
		return err
	}
	expr := squirrel.Expr(fmt.Sprintf("array_remove(%s, ?)", col), uid)
	return r.updateMembers(ctx, id, col, expr, "remove member")
}

func (r *PostgresStartupRepository) updateMembers(ctx context.Context, id, col string, expr squirrel.Sqlizer, op string) error {
	sql, args, err := psql.Update("startups").Set(col, expr).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build %s query: %w", op, err)
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return wrapDBError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStartupNotFound
	}
	return nil
}

// Count returns the number of startups
func (r *PostgresStartupRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM startups").Scan(&n); err != nil {
		return 0, wrapDBError("count startups", err)
	}
	return n, nil
}
