package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/jazbaa/showcase/internal/pkg/dberrors"
)

var userColumns = []string{
	"uid", "email", "display_name", "password_hash", "role",
	"college_id", "investor_id", "created_at",
}

// PostgresUserRepository handles user database operations
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new PostgresUserRepository
func NewUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.UID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.Role,
		&u.CollegeID, &u.InvestorID, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new user
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	sql, args, err := psql.Insert("users").
		Columns(userColumns...).
		Values(user.UID, user.Email, user.DisplayName, user.PasswordHash, user.Role,
			user.CollegeID, user.InvestorID, user.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return wrapDBError("create user", err)
	}
	return nil
}

func (r *PostgresUserRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.User, error) {
	sql, args, err := psql.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, wrapDBError("get user", err)
	}
	return user, nil
}

// GetByUID retrieves a user by uid
func (r *PostgresUserRepository) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"uid": uid})
}

// GetByEmail retrieves a user by email
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// List returns a page of users and the total number of matching users
func (r *PostgresUserRepository) List(ctx context.Context, params UserListParams) ([]*models.User, int, error) {
	countQ := psql.Select("COUNT(*)").From("users")
	listQ := psql.Select(userColumns...).From("users").OrderBy("created_at ASC", "uid ASC")
	if params.Role != "" {
		countQ = countQ.Where(squirrel.Eq{"role": params.Role})
		listQ = listQ.Where(squirrel.Eq{"role": params.Role})
	}
	if params.Limit > 0 {
		listQ = listQ.Limit(uint64(params.Limit))
	}
	if params.Offset > 0 {
		listQ = listQ.Offset(uint64(params.Offset))
	}

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count users query: %w", err)
	}
	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, wrapDBError("count users", err)
	}

	sql, args, err := listQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list users query: %w", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, wrapDBError("list users", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, wrapDBError("scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapDBError("list users", err)
	}
	return users, total, nil
}

// CountByRole counts users per role
func (r *PostgresUserRepository) CountByRole(ctx context.Context) (map[models.Role]int, error) {
	sql, args, err := psql.Select("role", "COUNT(*)").From("users").GroupBy("role").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count by role query: %w", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapDBError("count users by role", err)
	}
	defer rows.Close()

	counts := make(map[models.Role]int)
	for rows.Next() {
		var role models.Role
		var n int
		if err := rows.Scan(&role, &n); err != nil {
			return nil, wrapDBError("scan role count", err)
		}
		counts[role] = n
	}
	return counts, wrapRowsErr("count users by role", rows.Err())
}

// EmailsByUID resolves uids to emails
func (r *PostgresUserRepository) EmailsByUID(ctx context.Context, uids []string) (map[string]string, error) {
	emails := make(map[string]string, len(uids))
	if len(uids) == 0 {
		return emails, nil
	}
	// squirrel.Eq with a slice renders as IN (...)
	sql, args, err := psql.Select("uid", "email").From("users").Where(squirrel.Eq{"uid": uids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build emails query: %w", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapDBError("resolve emails", err)
	}
	defer rows.Close()

	for rows.Next() {
		var uid, email string
		if err := rows.Scan(&uid, &email); err != nil {
			return nil, wrapDBError("scan email", err)
		}
		emails[uid] = email
	}
	return emails, wrapRowsErr("resolve emails", rows.Err())
}

func wrapRowsErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return wrapDBError(op, err)
}
