package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jazbaa/showcase/internal/app/models/dto"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/jazbaa/showcase/internal/pkg/logger"
	"github.com/jazbaa/showcase/internal/pkg/validation"
)

// abortWithError writes the standard error envelope and stops the chain.
func abortWithError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// Checked first: a store failure may carry a context error in its chain.
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		logger.Warn().Err(err).Str("path", c.FullPath()).Msg("Store unavailable")
		abortWithError(c, http.StatusServiceUnavailable,
			dto.NewErrorDetail(dto.ErrorCodeStoreUnavailable, "The data store is unavailable, please retry").
				AsRetryable().WithSeverity(dto.ErrorSeverityWarning))
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
		if field, ok := apperrors.DetailsOf(err)["field"].(string); ok {
			detail.WithField(field)
		}
		abortWithError(c, http.StatusBadRequest, detail)
	case errors.Is(err, apperrors.ErrBadRequest):
		abortWithError(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, err.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		abortWithError(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid email or password"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		abortWithError(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired").WithDetails(redirectDetails("/login")))
	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrSessionNotFound, apperrors.ErrUnauthenticated):
		abortWithError(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").WithDetails(redirectDetails("/login")))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		abortWithError(c, http.StatusForbidden,
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied").WithDetails(redirectDetails("/")))
	case errors.Is(err, apperrors.ErrAlreadyUsed):
		abortWithError(c, http.StatusGone, dto.NewErrorDetail(dto.ErrorCodeInviteAlreadyUsed, "This invite has already been used"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		abortWithError(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		abortWithError(c, http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists").WithField("email"))
	case errors.Is(err, apperrors.ErrConflict):
		abortWithError(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, err.Error()))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		abortWithError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").WithSeverity(dto.ErrorSeverityCritical))
	}
}

func redirectDetails(target string) map[string]string {
	return map[string]string{"redirect": target}
}

// BindJSON binds the request body into obj and answers 400 when the body is
// malformed or fails the binding rules.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		abortWithError(c, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid request format").WithDetails(err.Error()))
		return
	}

	fields := dto.NewValidationErrors()
	for _, fe := range verrs {
		fields.AddError(fe.Field(), validation.Message(fe))
	}
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, fields.Errors[0].Message).
		WithField(fields.Errors[0].Field).
		WithDetails(fields.Errors)
	abortWithError(c, http.StatusBadRequest, detail)
}
