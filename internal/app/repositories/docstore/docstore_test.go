package docstore

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		notFound error
		want     error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "not found", err: status.Error(codes.NotFound, "missing"), notFound: apperrors.ErrStartupNotFound, want: apperrors.ErrResourceNotFound},
		{name: "unavailable", err: status.Error(codes.Unavailable, "down"), want: apperrors.ErrStoreUnavailable},
		{name: "deadline", err: status.Error(codes.DeadlineExceeded, "slow"), want: apperrors.ErrStoreUnavailable},
		{name: "context deadline", err: context.DeadlineExceeded, want: apperrors.ErrStoreUnavailable},
		{name: "domain error kept", err: apperrors.ErrSlugTaken, want: apperrors.ErrConflict},
		{name: "already used kept", err: apperrors.ErrAlreadyUsed, want: apperrors.ErrAlreadyUsed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError("op", tt.err, tt.notFound)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapError_OtherCodesAreWrapped(t *testing.T) {
	src := status.Error(codes.PermissionDenied, "rules")
	got := mapError("list startups", src, nil)
	assert.True(t, errors.Is(got, src))
	assert.False(t, errors.Is(got, apperrors.ErrStoreUnavailable))
	assert.Contains(t, got.Error(), "list startups")
}

func TestCountValue(t *testing.T) {
	n, err := countValue(int64(7))
	assert.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = countValue(&firestorepb.Value{ValueType: &firestorepb.Value_IntegerValue{IntegerValue: 42}})
	assert.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = countValue("seven")
	assert.Error(t, err)

	_, err = countValue(nil)
	assert.Error(t, err)
}

func TestMemberField(t *testing.T) {
	f, err := memberField(models.InterestInvestment)
	assert.NoError(t, err)
	assert.Equal(t, "interestedInvestors", f)

	f, err = memberField(models.InterestHiring)
	assert.NoError(t, err)
	assert.Equal(t, "hiringInvestors", f)

	_, err = memberField("bogus")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
