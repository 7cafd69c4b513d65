package middleware

import (
	"github.com/gin-gonic/gin"
	appAuth "github.com/jazbaa/showcase/internal/app/auth"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/services"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/jazbaa/showcase/internal/pkg/auth"
)

const principalKey = "principal"

// AuthMiddleware attaches the resolved identity to each request and gates
// role-only routes through the access guard.
type AuthMiddleware struct {
	authService *services.AuthService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Identify resolves the bearer token when one is sent. A missing or invalid
// token leaves the request anonymous; only a store outage is an error.
func (m *AuthMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		token, err := auth.ExtractBearerToken(header)
		if err != nil {
			c.Next()
			return
		}
		principal, err := m.authService.Resolve(c.Request.Context(), token)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrStoreUnavailable) {
				HandleAPIError(c, err)
				return
			}
			c.Next()
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// JWTAuth requires a valid token whose session is still registered.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			HandleAPIError(c, apperrors.ErrUnauthenticated)
			return
		}
		token, err := auth.ExtractBearerToken(header)
		if err != nil {
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			return
		}
		principal, err := m.authService.Resolve(c.Request.Context(), token)
		if err != nil {
			HandleAPIError(c, err)
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// RoleRequired lets the request through only when the guard allows the
// resolved identity for one of roles. Redirect("/login") becomes 401 and
// Redirect("/") becomes 403, each carrying the redirect target.
func (m *AuthMiddleware) RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := appAuth.Authorize(appAuth.Resolved(CurrentUser(c)), roles...)
		switch {
		case decision.Outcome == appAuth.Allow:
			c.Next()
		case decision.Target == appAuth.PathLogin:
			HandleAPIError(c, apperrors.ErrUnauthenticated)
		default:
			HandleAPIError(c, apperrors.NewForbiddenError("this area is not available for your role"))
		}
	}
}

// PrincipalFrom returns the identity attached by Identify or JWTAuth.
func PrincipalFrom(c *gin.Context) (*services.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*services.Principal)
	return p, ok && p != nil
}

// CurrentUser returns the request's user, or nil when anonymous.
func CurrentUser(c *gin.Context) *models.User {
	if p, ok := PrincipalFrom(c); ok {
		return p.User
	}
	return nil
}
