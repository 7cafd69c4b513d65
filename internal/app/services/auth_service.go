package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	appAuth "github.com/jazbaa/showcase/internal/app/auth"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/models/dto"
	"github.com/jazbaa/showcase/internal/app/repositories"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/jazbaa/showcase/internal/pkg/auth"
	"github.com/jazbaa/showcase/internal/pkg/session"
	"github.com/rs/zerolog"
)

// Principal is the identity attached to an authenticated request.
type Principal struct {
	User      *models.User
	SessionID string
}

// NewUserInput is the data needed to create a directory entry.
type NewUserInput struct {
	Email       string
	Password    string
	Role        models.Role
	DisplayName string
	CollegeID   string
	InvestorID  string
}

// AuthService handles authentication operations
type AuthService struct {
	users      repositories.UserRepository
	sessions   session.Store
	jwtService *auth.JWTService
	timeout    time.Duration
	hashCost   int
	logger     zerolog.Logger
	now        func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users repositories.UserRepository,
	sessions session.Store,
	jwtService *auth.JWTService,
	timeout time.Duration,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		jwtService: jwtService,
		timeout:    timeout,
		hashCost:   auth.BcryptCost,
		logger:     logger,
		now:        time.Now,
	}
}

// SetHashCost overrides the bcrypt cost used for new passwords.
func (s *AuthService) SetHashCost(cost int) {
	s.hashCost = cost
}

// NormalizeEmail trims and lowercases an email for directory lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login looks the email up in the role directory, verifies the password and
// opens a session. An unknown email fails with apperrors.ErrUserNotFound
// before the password is looked at.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := NormalizeEmail(req.Email)
	if email == "" {
		return nil, apperrors.NewValidationError("email", "email is required")
	}

	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	user, err := s.users.GetByEmail(sctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Info().Str("email", email).Msg("Login attempt for unknown email")
			return nil, apperrors.ErrUserNotFound
		}
		return nil, storeErr(err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Info().Str("uid", user.UID).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.openSession(sctx, user)
}

func (s *AuthService) openSession(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	sess := session.New(user, s.jwtService.AccessTokenTTL(), s.now())
	if err := s.sessions.Create(ctx, sess); err != nil {
		s.logger.Error().Err(err).Str("uid", user.UID).Msg("Failed to create session")
		return nil, apperrors.NewStoreUnavailableError(err)
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(user, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.logger.Info().Str("uid", user.UID).Str("role", string(user.Role)).Msg("User logged in")
	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int64(s.jwtService.AccessTokenTTL().Seconds()),
			ExpiresAt:   expiresAt,
		},
		User:     dto.NewUserResponse(user),
		Redirect: appAuth.DashboardPath(user.Role),
	}, nil
}

// Resolve turns an access token into the request principal. The token must
// be valid, its session still registered and its user still in the directory.
func (s *AuthService) Resolve(ctx context.Context, token string) (*Principal, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	sess, err := s.sessions.Get(sctx, claims.SessionID())
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, apperrors.NewStoreUnavailableError(err)
	}
	if sess.UID != claims.UserID {
		return nil, apperrors.ErrTokenInvalid
	}

	user, err := s.users.GetByUID(sctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, storeErr(err)
	}

	return &Principal{User: user, SessionID: sess.ID}, nil
}

// Logout revokes the session. It always succeeds from the caller's point of
// view; a failing registry is only logged.
func (s *AuthService) Logout(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	if err := s.sessions.Delete(sctx, sessionID); err != nil {
		s.logger.Warn().Err(err).Str("session", sessionID).Msg("Failed to delete session on logout")
		return
	}
	s.logger.Info().Str("session", sessionID).Msg("User logged out")
}

// Register is the public sign-up. Only investor and college accounts can be
// created this way; the new user is logged in straight away.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Role != models.RoleInvestor && req.Role != models.RoleCollege {
		return nil, apperrors.NewValidationError("role", "role must be investor or college")
	}

	user, err := s.CreateUser(ctx, NewUserInput{
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		DisplayName: req.DisplayName,
		CollegeID:   req.CollegeID,
		InvestorID:  req.InvestorID,
	})
	if err != nil {
		return nil, err
	}

	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	return s.openSession(sctx, user)
}

// CreateUser validates and stores a new directory entry of any role.
func (s *AuthService) CreateUser(ctx context.Context, in NewUserInput) (*models.User, error) {
	email := NormalizeEmail(in.Email)
	if email == "" {
		return nil, apperrors.NewValidationError("email", "email is required")
	}
	if len(in.Password) < 8 {
		return nil, apperrors.NewValidationError("password", "password must be at least 8 characters long")
	}
	if !in.Role.Valid() {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}
	collegeID := strings.TrimSpace(in.CollegeID)
	if in.Role == models.RoleCollege && collegeID == "" {
		return nil, apperrors.NewValidationError("collegeId", "collegeId is required for college accounts")
	}

	hash, err := auth.HashPasswordWithCost(in.Password, s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		UID:          uuid.NewString(),
		Email:        email,
		DisplayName:  strings.TrimSpace(in.DisplayName),
		PasswordHash: hash,
		Role:         in.Role,
		CollegeID:    collegeID,
		InvestorID:   strings.TrimSpace(in.InvestorID),
		CreatedAt:    s.now().UTC(),
	}

	sctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()
	if err := s.users.Create(sctx, user); err != nil {
		return nil, storeErr(err)
	}

	s.logger.Info().Str("uid", user.UID).Str("role", string(user.Role)).Msg("User created")
	return user, nil
}
