package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeValidation, 400},
		{CodeAuthRequired, 401},
		{CodeForbidden, 403},
		{CodeNotFound, 404},
		{CodeConflict, 409},
		{CodeUpstreamMalformed, 500},
		{CodeUpstreamUnavailable, 503},
		{CodeInternal, 500},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.code, "boom").Status())
		})
	}
}

func TestAsUnwrapsThroughWrapping(t *testing.T) {
	inner := NotFound("College not found")
	wrapped := fmt.Errorf("loading college: %w", inner)

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(CodeUpstreamUnavailable, "Recommendation service unreachable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Recommendation service unreachable", err.Message)
}
