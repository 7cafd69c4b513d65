package controllers

import (
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
)

func badRequest(message string) error {
	return apperrors.NewCustomError(apperrors.ErrBadRequest, message)
}
