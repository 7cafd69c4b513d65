// Package memory is an in-process implementation of the repository contracts.
// It backs the demo deployment and the service tests.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/repositories"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/jazbaa/showcase/internal/pkg/helpers"
)

var errOffline = errors.New("memory store offline")

// Store holds all collections behind one lock, so every method is atomic.
type Store struct {
	mu       sync.RWMutex
	offline  bool
	users    map[string]*models.User
	emails   map[string]string
	startups map[string]*models.Startup
	comments []*models.Comment
	invites  map[string]*models.Invite
}

// New creates an empty store.
func New() *Store {
	return &Store{
		users:    make(map[string]*models.User),
		emails:   make(map[string]string),
		startups: make(map[string]*models.Startup),
		invites:  make(map[string]*models.Invite),
	}
}

// Repositories exposes the store through the repository contracts.
func (s *Store) Repositories() *repositories.Repositories {
	return &repositories.Repositories{
		Users:    &userRepo{s},
		Startups: &startupRepo{s},
		Comments: &commentRepo{s},
		Invites:  &inviteRepo{s},
	}
}

// SetOffline makes every operation fail with apperrors.ErrStoreUnavailable
// until it is switched back.
func (s *Store) SetOffline(offline bool) {
	s.mu.Lock()
	s.offline = offline
	s.mu.Unlock()
}

// check must be called with the lock held.
func (s *Store) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStoreUnavailableError(err)
	}
	if s.offline {
		return apperrors.NewStoreUnavailableError(errOffline)
	}
	return nil
}

func cloneUser(u *models.User) *models.User {
	c := *u
	return &c
}

func cloneStartup(st *models.Startup) *models.Startup {
	c := *st
	c.Badges = append([]string(nil), st.Badges...)
	c.InterestedInvestors = append([]string(nil), st.InterestedInvestors...)
	c.HiringInvestors = append([]string(nil), st.HiringInvestors...)
	if st.Profile != nil {
		p := *st.Profile
		c.Profile = &p
	}
	c.Normalize()
	return &c
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return err
	}
	if _, ok := r.s.emails[user.Email]; ok {
		return apperrors.ErrEmailAlreadyExists
	}
	if _, ok := r.s.users[user.UID]; ok {
		return apperrors.NewConflictError("user id already exists")
	}
	r.s.users[user.UID] = cloneUser(user)
	r.s.emails[user.Email] = user.UID
	return nil
}

func (r *userRepo) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx); err != nil {
		return nil, err
	}
	u, ok := r.s.users[uid]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx); err != nil {
		return nil, err
	}
	uid, ok := r.s.emails[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return cloneUser(r.s.users[uid]), nil
}

func (r *userRepo) List(ctx context.Context, params repositories.UserListParams) ([]*models.User, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx); err != nil {
		return nil, 0, err
	}

	all := make([]*models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if params.Role == "" || u.Role == params.Role {
			all = append(all, cloneUser(u))
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].UID < all[j].UID
	})

	start, end := helpers.SliceBounds(params.Offset, params.Limit, len(all))
	return all[start:end], len(all), nil
}

func (r *userRepo) CountByRole(ctx context.Context) (map[models.Role]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx); err != nil {
		return nil, err
	}
	counts := make(map[models.Role]int)
	for _, u := range r.s.users {
		counts[u.Role]++
	}
	return counts, nil
}

func (r *userRepo) EmailsByUID(ctx context.Context, uids []string) (map[string]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx); err != nil {
		return nil, err
	}
	emails := make(map[string]string, len(uids))
	for _, uid := range uids {
		if u, ok := r.s.users[uid]; ok {
			emails[uid] = u.Email
		}
	}
	return emails, nil
}

type startupRepo struct{ s *Store }

// createStartupLocked must be called with the write lock held.
func (s *Store) createStartupLocked(st *models.Startup) error {
	if _, ok := s.startups[st.ID]; ok {
		return apperrors.ErrSlugTaken
	}
	s.startups[st.ID] = cloneStartup(st)
	return nil
}

func (r *startupRepo) Create(ctx context.Context, st *models.Startup) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return err
	}
	return r.s.createStartupLocked(st)
}

func (r *startupRepo) Get(ctx context.Context, id string) (*models.Startup, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx); err != nil {
		return nil, err
	}
	st, ok := r.s.startups[id]
	if !ok {
		return nil, apperrors.ErrStartupNotFound
	}
	return cloneStartup(st), nil
}

func (r *startupRepo) List(ctx context.Context, filter repositories.StartupFilter) ([]*models.Startup, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx); err != nil {
		return nil, err
	}
	out := make([]*models.Startup, 0, len(r.s.startups))
	for _, st := range r.s.startups {
		if filter.Matches(st) {
			out = append(out, cloneStartup(st))
		}
	}
	repositories.SortStartups(out)
	return out, nil
}

func (r *startupRepo) AddMember(ctx context.Context, id string, kind models.InterestKind, uid string) error {
	return r.mutate(ctx, id, kind, func(set []string) []string {
		for _, m := range set {
			if m == uid {
				return set
			}
		}
		return append(set, uid)
	})
}

func (r *startupRepo) RemoveMember(ctx context.Context, id string, kind models.InterestKind, uid string) error {
	return r.mutate(ctx, id, kind, func(set []string) []string {
		out := set[:0]
		for _, m := range set {
			if m != uid {
				out = append(out, m)
			}
		}
		return out
	})
}

func (r *startupRepo) mutate(ctx context.Context, id string, kind models.InterestKind, fn func([]string) []string) error {
	if !kind.Valid() {
		return apperrors.NewValidationError("type", "unknown interest type")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return err
	}
	st, ok := r.s.startups[id]
	if !ok {
		return apperrors.ErrStartupNotFound
	}
	if kind == models.InterestHiring {
		st.HiringInvestors = fn(st.HiringInvestors)
	} else {
		st.InterestedInvestors = fn(st.InterestedInvestors)
	}
	return nil
}

func (r *startupRepo) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx); err != nil {
		return 0, err
	}
	return len(r.s.startups), nil
}

type commentRepo struct{ s *Store }

func (r *commentRepo) Append(ctx context.Context, c *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return err
	}
	cp := *c
	r.s.comments = append(r.s.comments, &cp)
	return nil
}

func (r *commentRepo) ListByStartup(ctx context.Context, startupID string) ([]*models.Comment, error) {
	return r.list(ctx, func(c *models.Comment) bool { return c.StartupID == startupID })
}

func (r *commentRepo) ListAll(ctx context.Context) ([]*models.Comment, error) {
	return r.list(ctx, func(*models.Comment) bool { return true })
}

func (r *commentRepo) list(ctx context.Context, keep func(*models.Comment) bool) ([]*models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx); err != nil {
		return nil, err
	}
	out := make([]*models.Comment, 0)
	for _, c := range r.s.comments {
		if keep(c) {
			cp := *c
			out = append(out, &cp)
		}
	}
	repositories.SortComments(out)
	return out, nil
}

type inviteRepo struct{ s *Store }

func (r *inviteRepo) Create(ctx context.Context, inv *models.Invite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return err
	}
	if _, ok := r.s.invites[inv.Token]; ok {
		return apperrors.NewConflictError("invite token already exists")
	}
	cp := *inv
	r.s.invites[inv.Token] = &cp
	return nil
}

func (r *inviteRepo) GetByToken(ctx context.Context, token string) (*models.Invite, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx); err != nil {
		return nil, err
	}
	inv, ok := r.s.invites[token]
	if !ok {
		return nil, apperrors.ErrInviteNotFound
	}
	cp := *inv
	return &cp, nil
}

func (r *inviteRepo) CompleteRegistration(ctx context.Context, token string, st *models.Startup) (*models.Invite, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return nil, err
	}
	inv, ok := r.s.invites[token]
	if !ok {
		return nil, apperrors.ErrInviteNotFound
	}
	if inv.Status == models.InviteRegistered {
		return nil, apperrors.ErrAlreadyUsed
	}
	if err := r.s.createStartupLocked(st); err != nil {
		return nil, err
	}
	inv.Status = models.InviteRegistered
	inv.StartupSlug = st.ID
	cp := *inv
	return &cp, nil
}
