package httperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/httperr"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("message is the translation key", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "not_found", httperr.ErrNotFound.Error())
		assert.Equal(t, http.StatusNotFound, httperr.ErrNotFound.Code)
	})

	t.Run("multi-key message joins keys", func(t *testing.T) {
		t.Parallel()

		err := httperr.NewMulti(http.StatusUnprocessableEntity, "email_required", "password_too_short")
		assert.Equal(t, "email_required; password_too_short", err.Error())
	})

	t.Run("sentinel comparison", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, httperr.ErrUnauthorized, httperr.ErrUnauthorized)
		assert.NotErrorIs(t, httperr.ErrUnauthorized, httperr.ErrForbidden)
	})

	t.Run("unwraps from error chain", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("auth check failed: %w", httperr.ErrUnauthorized)

		var httpErr httperr.Error
		require.True(t, errors.As(wrapped, &httpErr))
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		assert.Equal(t, "unauthorized", httpErr.Key)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	err := httperr.New(http.StatusForbidden, "insufficient_permissions")
	assert.Equal(t, http.StatusForbidden, err.Code)
	assert.Equal(t, "insufficient_permissions", err.Key)
	assert.Empty(t, err.Keys)
}

func TestNewMulti(t *testing.T) {
	t.Parallel()

	err := httperr.NewMulti(http.StatusBadRequest, "a", "b")
	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, []string{"a", "b"}, err.Keys)
}
