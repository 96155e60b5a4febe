package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "Record not found", NotFound("Record not found").Error())

	wrapped := Wrap(errors.New("boom"), ErrCodeInternal, "Something failed")
	assert.Equal(t, "Something failed: boom", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, ErrCodeUnavailable, "Cannot reach the platform API.")

	assert.ErrorIs(t, err, cause)
}

func TestWrap_NilIsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrCodeInternal, "ignored %d", 1))
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{"not found", NotFound("x"), IsNotFound},
		{"conflict", Conflict("x"), IsConflict},
		{"validation", Validation("x"), IsValidation},
		{"unauthorized", Unauthorized("x"), IsUnauthorized},
		{"forbidden", Forbidden("x"), IsForbidden},
		{"unavailable", Unavailable("x"), IsUnavailable},
		{"internal", Internal("x"), IsInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.pred(tt.err))
			assert.False(t, tt.pred(errors.New("plain")))
		})
	}
}

func TestPredicates_SeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("get guide: %w", NotFound("Guide not found"))

	assert.True(t, IsNotFound(err))
	assert.Equal(t, ErrCodeNotFound, GetCode(err))
}

func TestGetField(t *testing.T) {
	err := ValidationField("email", "Email is required.")

	assert.Equal(t, "email", GetField(err))
	assert.Equal(t, "", GetField(errors.New("plain")))
}

func TestGetCode_NonAppError(t *testing.T) {
	assert.Equal(t, ErrorCode(""), GetCode(errors.New("plain")))
}

func TestNotFoundf(t *testing.T) {
	err := NotFoundf("Guide %q is not in the current list", "g1")

	require.True(t, IsNotFound(err))
	assert.Equal(t, `Guide "g1" is not in the current list`, err.Message)
}
