package docstore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InviteRepository stores invites as auto-id documents that carry their
// token as a field, so lookups go through a token query.
type InviteRepository struct {
	client *firestore.Client
}

func (r *InviteRepository) col() *firestore.CollectionRef {
	return r.client.Collection(invitesCollection)
}

func (r *InviteRepository) byToken(token string) firestore.Query {
	return r.col().Where("token", "==", token).Limit(1)
}

func decodeInvite(doc *firestore.DocumentSnapshot) (*models.Invite, error) {
	var inv models.Invite
	if err := doc.DataTo(&inv); err != nil {
		return nil, fmt.Errorf("failed to decode invite %s: %w", doc.Ref.ID, err)
	}
	if inv.ID == "" {
		inv.ID = doc.Ref.ID
	}
	return &inv, nil
}

// firstInvite returns the first document of it, or ErrInviteNotFound.
func firstInvite(it *firestore.DocumentIterator) (*firestore.DocumentSnapshot, error) {
	defer it.Stop()
	doc, err := it.Next()
	if errors.Is(err, iterator.Done) {
		return nil, apperrors.ErrInviteNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Create stores a new invite
func (r *InviteRepository) Create(ctx context.Context, inv *models.Invite) error {
	if _, err := firstInvite(r.byToken(inv.Token).Documents(ctx)); err == nil {
		return apperrors.NewConflictError("invite token already exists")
	} else if !errors.Is(err, apperrors.ErrInviteNotFound) {
		return mapError("create invite", err, nil)
	}

	ref := r.col().NewDoc()
	if inv.ID != "" {
		ref = r.col().Doc(inv.ID)
	}
	_, err := ref.Create(ctx, inv)
	if status.Code(err) == codes.AlreadyExists {
		return apperrors.NewConflictError("invite already exists")
	}
	return mapError("create invite", err, nil)
}

// GetByToken loads an invite
func (r *InviteRepository) GetByToken(ctx context.Context, token string) (*models.Invite, error) {
	doc, err := firstInvite(r.byToken(token).Documents(ctx))
	if err != nil {
		return nil, mapError("get invite", err, apperrors.ErrInviteNotFound)
	}
	return decodeInvite(doc)
}

// CompleteRegistration finds the invite and checks the slug, then creates the
// startup and flips the invite inside one Firestore transaction.
func (r *InviteRepository) CompleteRegistration(ctx context.Context, token string, startup *models.Startup) (*models.Invite, error) {
	startupRef := r.client.Collection(startupsCollection).Doc(startup.ID)
	startup.Normalize()

	var result *models.Invite
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := firstInvite(tx.Documents(r.byToken(token)))
		if err != nil {
			return mapError("get invite", err, apperrors.ErrInviteNotFound)
		}
		inviteRef := doc.Ref
		inv, err := decodeInvite(doc)
		if err != nil {
			return err
		}
		if inv.Status == models.InviteRegistered {
			return apperrors.ErrAlreadyUsed
		}

		existing, err := tx.Get(startupRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if existing != nil && existing.Exists() {
			return apperrors.ErrSlugTaken
		}

		if err := tx.Create(startupRef, startup); err != nil {
			return err
		}
		if err := tx.Update(inviteRef, []firestore.Update{
			{Path: "status", Value: string(models.InviteRegistered)},
			{Path: "startupSlug", Value: startup.ID},
		}); err != nil {
			return err
		}

		inv.Status = models.InviteRegistered
		inv.StartupSlug = startup.ID
		result = inv
		return nil
	})
	if err != nil {
		return nil, mapError("complete registration", err, apperrors.ErrInviteNotFound)
	}
	return result, nil
}
