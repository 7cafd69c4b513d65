package docstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/repositories"
)

// CommentRepository appends comments with generated document ids.
type CommentRepository struct {
	client *firestore.Client
}

func (r *CommentRepository) col() *firestore.CollectionRef {
	return r.client.Collection(commentsCollection)
}

// Append stores the comment under c.ID when set, otherwise under a new id
func (r *CommentRepository) Append(ctx context.Context, c *models.Comment) error {
	ref := r.col().NewDoc()
	if c.ID != "" {
		ref = r.col().Doc(c.ID)
	}
	if _, err := ref.Create(ctx, c); err != nil {
		return mapError("append comment", err, nil)
	}
	c.ID = ref.ID
	return nil
}

// ListByStartup filters on startupId
func (r *CommentRepository) ListByStartup(ctx context.Context, startupID string) ([]*models.Comment, error) {
	return r.list(ctx, r.col().Where("startupId", "==", startupID))
}

// ListAll reads the whole log
func (r *CommentRepository) ListAll(ctx context.Context) ([]*models.Comment, error) {
	return r.list(ctx, r.col().Query)
}

func (r *CommentRepository) list(ctx context.Context, q firestore.Query) ([]*models.Comment, error) {
	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, mapError("list comments", err, nil)
	}
	comments := make([]*models.Comment, 0, len(docs))
	for _, doc := range docs {
		var c models.Comment
		if err := doc.DataTo(&c); err != nil {
			return nil, fmt.Errorf("failed to decode comment %s: %w", doc.Ref.ID, err)
		}
		c.ID = doc.Ref.ID
		comments = append(comments, &c)
	}
	repositories.SortComments(comments)
	return comments, nil
}
