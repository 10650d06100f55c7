package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/nerdeck/internal/errors"
)

func TestClientMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     *errors.AppError
		status  int
		message string
	}{
		{"invalid json", errors.NewInvalidJSONError(stderrors.New("eof")), http.StatusBadRequest, "Invalid JSON"},
		{"missing fields", errors.NewMissingFieldsError(nil), http.StatusBadRequest, "Missing fields"},
		{"not found", errors.NewNotFoundError("card", 42), http.StatusNotFound, "card not found: 42"},
		{"unauthorized", errors.NewUnauthorizedError(), http.StatusUnauthorized, "Unauthorized"},
		{"internal", errors.NewInternalError(stderrors.New("disk")), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.message, tt.err.Message)
		})
	}
}

func TestAs_FindsWrappedAppError(t *testing.T) {
	cause := stderrors.New("database is locked")
	wrapped := fmt.Errorf("record answer: %w", errors.NewInternalError(cause))

	appErr, ok := errors.As(wrapped)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeInternal, appErr.Code)
	assert.ErrorIs(t, wrapped, cause)

	_, ok = errors.As(cause)
	assert.False(t, ok)
}
