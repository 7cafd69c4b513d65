// Package docstore implements the repository contracts on Cloud Firestore.
// Startups are keyed by slug and users by uid. Invites are found by their
// token field.
package docstore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/jazbaa/showcase/internal/app/repositories"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection    = "users"
	startupsCollection = "startups"
	commentsCollection = "comments"
	invitesCollection  = "invites"
)

// New returns repositories backed by client.
func New(client *firestore.Client) *repositories.Repositories {
	return &repositories.Repositories{
		Users:    &UserRepository{client: client},
		Startups: &StartupRepository{client: client},
		Comments: &CommentRepository{client: client},
		Invites:  &InviteRepository{client: client},
	}
}

// mapError converts Firestore status codes into the application taxonomy.
// notFound is returned for codes.NotFound.
func mapError(op string, err error, notFound error) error {
	if err == nil {
		return nil
	}
	var ce *apperrors.CustomError
	if errors.As(err, &ce) || errors.Is(err, apperrors.ErrAlreadyUsed) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.NewStoreUnavailableError(err)
	}
	switch status.Code(err) {
	case codes.NotFound:
		if notFound != nil {
			return notFound
		}
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted, codes.Canceled:
		return apperrors.NewStoreUnavailableError(err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// count runs a COUNT aggregation over q.
func count(ctx context.Context, q firestore.Query) (int, error) {
	res, err := q.NewAggregationQuery().WithCount("all").Get(ctx)
	if err != nil {
		return 0, err
	}
	return countValue(res["all"])
}

func countValue(v interface{}) (int, error) {
	switch val := v.(type) {
	case int64:
		return int(val), nil
	case *firestorepb.Value:
		return int(val.GetIntegerValue()), nil
	case nil:
		return 0, fmt.Errorf("count aggregation result missing")
	default:
		return 0, fmt.Errorf("count aggregation result has unexpected type %T", v)
	}
}
