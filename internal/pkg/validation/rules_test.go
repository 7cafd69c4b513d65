package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	Comment string   `json:"comment" validate:"notblank"`
	Team    []string `json:"team" validate:"notblank"`
	Email   string   `json:"email" validate:"omitempty,email"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func TestNotBlank(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(form{Comment: "hello", Team: []string{"a"}}))

	err := v.Struct(form{Comment: "   \t", Team: []string{"a"}})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "comment", verrs[0].Field())
	assert.Equal(t, "comment is required", Message(verrs[0]))

	err = v.Struct(form{Comment: "x"})
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "team", verrs[0].Field())
}

func TestMessage_Email(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(form{Comment: "x", Team: []string{"a"}, Email: "not-an-email"})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "email must be a valid email address", Message(verrs[0]))
}
