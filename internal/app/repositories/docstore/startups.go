package docstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/repositories"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StartupRepository stores startups under their slug.
type StartupRepository struct {
	client *firestore.Client
}

func (r *StartupRepository) col() *firestore.CollectionRef {
	return r.client.Collection(startupsCollection)
}

func memberField(kind models.InterestKind) (string, error) {
	switch kind {
	case models.InterestInvestment:
		return "interestedInvestors", nil
	case models.InterestHiring:
		return "hiringInvestors", nil
	}
	return "", apperrors.NewValidationError("type", fmt.Sprintf("unknown interest type %q", kind))
}

func decodeStartup(doc *firestore.DocumentSnapshot) (*models.Startup, error) {
	var s models.Startup
	if err := doc.DataTo(&s); err != nil {
		return nil, fmt.Errorf("failed to decode startup %s: %w", doc.Ref.ID, err)
	}
	s.ID = doc.Ref.ID
	s.Normalize()
	return &s, nil
}

// Create fails with apperrors.ErrSlugTaken when the slug document exists
func (r *StartupRepository) Create(ctx context.Context, startup *models.Startup) error {
	startup.Normalize()
	_, err := r.col().Doc(startup.ID).Create(ctx, startup)
	if status.Code(err) == codes.AlreadyExists {
		return apperrors.ErrSlugTaken
	}
	return mapError("create startup", err, nil)
}

// Get loads one startup
func (r *StartupRepository) Get(ctx context.Context, id string) (*models.Startup, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError("get startup", err, apperrors.ErrStartupNotFound)
	}
	return decodeStartup(doc)
}

// List queries by college and sector with equality filters and orders the
// result in memory, which avoids a composite index per filter combination.
func (r *StartupRepository) List(ctx context.Context, filter repositories.StartupFilter) ([]*models.Startup, error) {
	q := r.col().Query
	if filter.CollegeID != "" {
		q = q.Where("collegeId", "==", filter.CollegeID)
	}
	if sector := filter.SectorFilter(); sector != "" {
		q = q.Where("sector", "==", sector)
	}

	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, mapError("list startups", err, nil)
	}
	startups := make([]*models.Startup, 0, len(docs))
	for _, doc := range docs {
		s, err := decodeStartup(doc)
		if err != nil {
			return nil, err
		}
		startups = append(startups, s)
	}
	repositories.SortStartups(startups)
	return startups, nil
}

// AddMember applies ArrayUnion on the server
func (r *StartupRepository) AddMember(ctx context.Context, id string, kind models.InterestKind, uid string) error {
	field, err := memberField(kind)
	if err != nil {
		return err
	}
	_, err = r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: field, Value: firestore.ArrayUnion(uid)},
	})
	return mapError("add member", err, apperrors.ErrStartupNotFound)
}

// RemoveMember applies ArrayRemove on the server
func (r *StartupRepository) RemoveMember(ctx context.Context, id string, kind models.InterestKind, uid string) error {
	field, err := memberField(kind)
	if err != nil {
		return err
	}
	_, err = r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: field, Value: firestore.ArrayRemove(uid)},
	})
	return mapError("remove member", err, apperrors.ErrStartupNotFound)
}

// Count aggregates the number of startups
func (r *StartupRepository) Count(ctx context.Context) (int, error) {
	n, err := count(ctx, r.col().Query)
	if err != nil {
		return 0, mapError("count startups", err, nil)
	}
	return n, nil
}
