package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jazbaa/showcase/internal/app/models"
)

var commentColumns = []string{"id", "investor_id", "investor_name", "startup_id", "comment", "created_at", "type"}

// PostgresCommentRepository handles comment database operations
type PostgresCommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new PostgresCommentRepository
func NewCommentRepository(db *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// Append inserts a comment
func (r *PostgresCommentRepository) Append(ctx context.Context, c *models.Comment) error {
	sql, args, err := psql.Insert("comments").
		Columns(commentColumns...).
		Values(c.ID, c.InvestorID, c.InvestorName, c.StartupID, c.Text, c.Timestamp, c.Type).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build append comment query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return wrapDBError("append comment", err)
	}
	return nil
}

// ListByStartup returns the comments of one startup, oldest first
func (r *PostgresCommentRepository) ListByStartup(ctx context.Context, startupID string) ([]*models.Comment, error) {
	return r.list(ctx, squirrel.Eq{"startup_id": startupID})
}

// ListAll returns all comments, oldest first
func (r *PostgresCommentRepository) ListAll(ctx context.Context) ([]*models.Comment, error) {
	return r.list(ctx, nil)
}

func (r *PostgresCommentRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.Comment, error) {
	q := psql.Select(commentColumns...).From("comments").OrderBy("created_at ASC", "id ASC")
	if where != nil {
		q = q.Where(where)
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list comments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapDBError("list comments", err)
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		c := &models.Comment{}
		if err := rows.Scan(&c.ID, &c.InvestorID, &c.InvestorName, &c.StartupID, &c.Text, &c.Timestamp, &c.Type); err != nil {
			return nil, wrapDBError("scan comment", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("list comments", err)
	}
	return comments, nil
}
