package docstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/repositories"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"google.golang.org/api/iterator"
)

// UserRepository stores users under their uid.
type UserRepository struct {
	client *firestore.Client
}

func (r *UserRepository) col() *firestore.CollectionRef {
	return r.client.Collection(usersCollection)
}

// Create checks email uniqueness and creates the user document in one transaction.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docs, err := tx.Documents(r.col().Where("email", "==", user.Email).Limit(1)).GetAll()
		if err != nil {
			return err
		}
		if len(docs) > 0 {
			return apperrors.ErrEmailAlreadyExists
		}
		return tx.Create(r.col().Doc(user.UID), user)
	})
	return mapError("create user", err, nil)
}

func decodeUser(doc *firestore.DocumentSnapshot) (*models.User, error) {
	var u models.User
	if err := doc.DataTo(&u); err != nil {
		return nil, fmt.Errorf("failed to decode user %s: %w", doc.Ref.ID, err)
	}
	if u.UID == "" {
		u.UID = doc.Ref.ID
	}
	return &u, nil
}

// GetByUID loads the user document
func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	doc, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		return nil, mapError("get user", err, apperrors.ErrUserNotFound)
	}
	return decodeUser(doc)
}

// GetByEmail queries the user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	iter := r.col().Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, mapError("get user by email", err, apperrors.ErrUserNotFound)
	}
	return decodeUser(doc)
}

// List returns one page of users ordered by creation time
func (r *UserRepository) List(ctx context.Context, params repositories.UserListParams) ([]*models.User, int, error) {
	q := r.col().Query
	if params.Role != "" {
		q = q.Where("role", "==", string(params.Role))
	}

	total, err := count(ctx, q)
	if err != nil {
		return nil, 0, mapError("count users", err, nil)
	}

	page := q.OrderBy("createdAt", firestore.Asc)
	if params.Offset > 0 {
		page = page.Offset(params.Offset)
	}
	if params.Limit > 0 {
		page = page.Limit(params.Limit)
	}

	docs, err := page.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, mapError("list users", err, nil)
	}
	users := make([]*models.User, 0, len(docs))
	for _, doc := range docs {
		u, err := decodeUser(doc)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, nil
}

// CountByRole runs one count aggregation per role
func (r *UserRepository) CountByRole(ctx context.Context) (map[models.Role]int, error) {
	counts := make(map[models.Role]int, 3)
	for _, role := range []models.Role{models.RoleAdmin, models.RoleInvestor, models.RoleCollege} {
		n, err := count(ctx, r.col().Where("role", "==", string(role)))
		if err != nil {
			return nil, mapError("count users by role", err, nil)
		}
		counts[role] = n
	}
	return counts, nil
}

// EmailsByUID batch-reads the user documents
func (r *UserRepository) EmailsByUID(ctx context.Context, uids []string) (map[string]string, error) {
	emails := make(map[string]string, len(uids))
	if len(uids) == 0 {
		return emails, nil
	}
	refs := make([]*firestore.DocumentRef, 0, len(uids))
	for _, uid := range uids {
		refs = append(refs, r.col().Doc(uid))
	}
	docs, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, mapError("resolve emails", err, nil)
	}
	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}
		u, err := decodeUser(doc)
		if err != nil {
			return nil, err
		}
		emails[doc.Ref.ID] = u.Email
	}
	return emails, nil
}
