package repositories

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jazbaa/showcase/internal/app/models"
)

// StartupFilter narrows a catalog listing. Empty fields do not filter; a
// Sector of models.SectorAll is treated as empty.
type StartupFilter struct {
	CollegeID string
	Sector    string
}

// SectorFilter returns the sector to match, or "" when sector matching is disabled.
func (f StartupFilter) SectorFilter() string {
	if f.Sector == models.SectorAll {
		return ""
	}
	return f.Sector
}

// Matches reports whether s passes the filter.
func (f StartupFilter) Matches(s *models.Startup) bool {
	if f.CollegeID != "" && s.CollegeID != f.CollegeID {
		return false
	}
	if sector := f.SectorFilter(); sector != "" && s.Sector != sector {
		return false
	}
	return true
}

// UserListParams selects a page of the user roster.
type UserListParams struct {
	Role   models.Role
	Offset int
	Limit  int
}

// UserRepository is the role directory.
type UserRepository interface {
	// Create stores a new user; apperrors.ErrEmailAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *models.User) error
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	// GetByEmail expects an already normalized email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// List returns a page of users ordered by creation time plus the total count.
	List(ctx context.Context, params UserListParams) ([]*models.User, int, error)
	CountByRole(ctx context.Context) (map[models.Role]int, error)
	// EmailsByUID resolves uids to emails; unknown uids are left out.
	EmailsByUID(ctx context.Context, uids []string) (map[string]string, error)
}

// StartupRepository is the catalog store. Membership sets change only through
// AddMember and RemoveMember, which are applied atomically by the backend.
type StartupRepository interface {
	// Create stores a new startup; apperrors.ErrSlugTaken when the id exists.
	Create(ctx context.Context, startup *models.Startup) error
	Get(ctx context.Context, id string) (*models.Startup, error)
	// List returns startups newest first, ties broken by id.
	List(ctx context.Context, filter StartupFilter) ([]*models.Startup, error)
	AddMember(ctx context.Context, id string, kind models.InterestKind, uid string) error
	RemoveMember(ctx context.Context, id string, kind models.InterestKind, uid string) error
	Count(ctx context.Context) (int, error)
}

// CommentRepository is the append-only comment log.
type CommentRepository interface {
	Append(ctx context.Context, comment *models.Comment) error
	// ListByStartup returns the startup's comments, oldest first.
	ListByStartup(ctx context.Context, startupID string) ([]*models.Comment, error)
	// ListAll returns every comment, oldest first.
	ListAll(ctx context.Context) ([]*models.Comment, error)
}

// InviteRepository stores registration invites.
type InviteRepository interface {
	Create(ctx context.Context, invite *models.Invite) error
	GetByToken(ctx context.Context, token string) (*models.Invite, error)
	// CompleteRegistration creates startup and marks the invite registered in
	// one transaction. apperrors.ErrAlreadyUsed on replay, apperrors.ErrSlugTaken
	// when the startup id exists.
	CompleteRegistration(ctx context.Context, token string, startup *models.Startup) (*models.Invite, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	Users    UserRepository
	Startups StartupRepository
	Comments CommentRepository
	Invites  InviteRepository
}

// NewPostgresRepositories initializes the PostgreSQL-backed repositories
func NewPostgresRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db),
		Startups: NewStartupRepository(db),
		Comments: NewCommentRepository(db),
		Invites:  NewInviteRepository(db),
	}
}

// SortStartups orders startups newest first, ties broken by id.
func SortStartups(startups []*models.Startup) {
	sort.SliceStable(startups, func(i, j int) bool {
		a, b := startups[i], startups[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

// SortComments orders comments oldest first, ties broken by id.
func SortComments(comments []*models.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		a, b := comments[i], comments[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		return a.ID < b.ID
	})
}
