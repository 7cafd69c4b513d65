package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/models/dto"
	"github.com/jazbaa/showcase/internal/app/services"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/jazbaa/showcase/internal/pkg/validation"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validation.RegisterWithGin(); err != nil {
		panic(err)
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp
}

func TestHandleAPIError_Mapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"startup miss", apperrors.ErrStartupNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"user miss", apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"bad password", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"revoked session", apperrors.ErrSessionNotFound, http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"forbidden", apperrors.NewForbiddenError("no"), http.StatusForbidden, dto.ErrorCodeForbidden},
		{"validation", apperrors.NewValidationError("comment", "comment cannot be empty"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"slug taken", apperrors.ErrSlugTaken, http.StatusConflict, dto.ErrorCodeConflict},
		{"email taken", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"invite replay", apperrors.ErrAlreadyUsed, http.StatusGone, dto.ErrorCodeInviteAlreadyUsed},
		{"store down", apperrors.NewStoreUnavailableError(errors.New("dial tcp")), http.StatusServiceUnavailable, dto.ErrorCodeStoreUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.False(t, resp.Success)
		})
	}
}

func TestHandleAPIError_Details(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleAPIError(c, apperrors.NewStoreUnavailableError(errors.New("timeout")))
	assert.True(t, decodeError(t, w).Error.Retryable)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	HandleAPIError(c, apperrors.NewValidationError("comment", "comment cannot be empty"))
	resp := decodeError(t, w)
	assert.Equal(t, "comment", resp.Error.Field)
	assert.Equal(t, "comment cannot be empty", resp.Error.Message)
}

func TestRoleRequired(t *testing.T) {
	m := NewAuthMiddleware(nil)
	withUser := func(u *models.User) gin.HandlerFunc {
		return func(c *gin.Context) {
			if u != nil {
				c.Set(principalKey, &services.Principal{User: u, SessionID: "s"})
			}
		}
	}

	tests := []struct {
		name     string
		user     *models.User
		status   int
		redirect string
	}{
		{"anonymous", nil, http.StatusUnauthorized, "/login"},
		{"wrong role", &models.User{UID: "c", Role: models.RoleCollege}, http.StatusForbidden, "/"},
		{"allowed", &models.User{UID: "a", Role: models.RoleAdmin}, http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/admin", withUser(tt.user), m.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

			assert.Equal(t, tt.status, w.Code)
			if tt.redirect != "" {
				resp := decodeError(t, w)
				details, ok := resp.Error.Details.(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, tt.redirect, details["redirect"])
			}
		})
	}
}

func TestBindJSON(t *testing.T) {
	r := gin.New()
	r.POST("/comments", func(c *gin.Context) {
		var req dto.CreateCommentRequest
		if !BindJSON(c, &req) {
			return
		}
		c.Status(http.StatusCreated)
	})

	send := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/comments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	w := send(`{"comment":"   ","type":"general"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
	assert.Equal(t, "comment", resp.Error.Field)

	w = send(`{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeBadRequest, decodeError(t, w).Error.Code)

	w = send(`{"comment":"Looks great","type":"general"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestIPRateLimiter(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(60, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("1.1.1.1"))
	assert.False(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("2.2.2.2"))

	now = now.Add(time.Second)
	assert.True(t, l.Allow("1.1.1.1"))
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zerolog.Nop()))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}
