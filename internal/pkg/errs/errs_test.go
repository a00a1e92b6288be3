//go:build unit

package errs_test

import (
	"testing"

	"marketplace-orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestClassHelpers(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		class error
	}{
		{"validation", errs.Validation("bad %s", "input"), errs.ErrValidation},
		{"not found", errs.NotFound("missing"), errs.ErrNotFound},
		{"conflict", errs.Conflict("busy"), errs.ErrConflict},
		{"invalid state", errs.InvalidState("cannot cancel purchase with status %s", "SHIPPED"), errs.ErrInvalidState},
		{"internal", errs.Internal(errs.New("pool closed"), "load booking"), errs.ErrInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, errs.Is(tc.err, tc.class))
			assert.False(t, errs.Is(tc.err, errs.ErrForbidden))
		})
	}
}

func TestMessagesArePreserved(t *testing.T) {
	assert.Equal(t, "cannot cancel purchase with status SHIPPED",
		errs.InvalidState("cannot cancel purchase with status %s", "SHIPPED").Error())
	assert.Equal(t, "load booking: pool closed",
		errs.Internal(errs.New("pool closed"), "load booking").Error())
}

func TestWithDetails(t *testing.T) {
	err := errs.WithDetails(errs.Validation("listing is incomplete"), []string{"a", "b"})

	assert.True(t, errs.Is(err, errs.ErrValidation))
	assert.Equal(t, "listing is incomplete", err.Error())
	assert.Equal(t, []string{"a", "b"}, errs.Details(errs.Wrap(err, "activate")))
	assert.Nil(t, errs.Details(errs.New("plain")))
	assert.Nil(t, errs.WithDetails(nil, []string{"a"}))
}
