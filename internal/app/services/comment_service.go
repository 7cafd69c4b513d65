package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/repositories"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// CommentInput is one investor note.
type CommentInput struct {
	StartupID string
	Investor  *models.User
	Text      string
	Kind      models.CommentKind
}

// CommentService defines the comment log operations
type CommentService interface {
	Append(ctx context.Context, in CommentInput) (*models.Comment, error)
	ListFor(ctx context.Context, startupID string) ([]*models.Comment, error)
	ListAll(ctx context.Context) ([]*models.Comment, error)
}

type commentServiceImpl struct {
	comments repositories.CommentRepository
	startups repositories.StartupRepository
	timeout  time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

// NewCommentService creates a new comment service instance
func NewCommentService(
	comments repositories.CommentRepository,
	startups repositories.StartupRepository,
	timeout time.Duration,
	logger zerolog.Logger,
) CommentService {
	return &commentServiceImpl{
		comments: comments,
		startups: startups,
		timeout:  timeout,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *commentServiceImpl) Append(ctx context.Context, in CommentInput) (*models.Comment, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, apperrors.NewValidationError("comment", "comment cannot be empty")
	}
	if !in.Kind.Valid() {
		return nil, apperrors.NewValidationError("type", "type must be investment, hiring or general")
	}
	if in.Investor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	if _, err := s.startups.Get(sctx, in.StartupID); err != nil {
		return nil, storeErr(err)
	}

	c := &models.Comment{
		ID:           uuid.NewString(),
		InvestorID:   in.Investor.UID,
		InvestorName: in.Investor.AttributionName(),
		StartupID:    in.StartupID,
		Text:         text,
		Timestamp:    s.now().UTC(),
		Type:         in.Kind,
	}
	if err := s.comments.Append(sctx, c); err != nil {
		s.logger.Error().Err(err).Str("startup", in.StartupID).Msg("Failed to append comment")
		return nil, storeErr(err)
	}

	s.logger.Info().Str("startup", c.StartupID).Str("investor", c.InvestorID).Str("type", string(c.Type)).Msg("Comment added")
	return c, nil
}

func (s *commentServiceImpl) ListFor(ctx context.Context, startupID string) ([]*models.Comment, error) {
	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	list, err := s.comments.ListByStartup(sctx, startupID)
	if err != nil {
		return nil, storeErr(err)
	}
	return nonNilComments(list), nil
}

func (s *commentServiceImpl) ListAll(ctx context.Context) ([]*models.Comment, error) {
	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	list, err := s.comments.ListAll(sctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return nonNilComments(list), nil
}

func nonNilComments(list []*models.Comment) []*models.Comment {
	if list == nil {
		return []*models.Comment{}
	}
	return list
}
