package errors

import (
	"net/http"
	"testing"

	"feira/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	t.Parallel()

	err := ErrDuplicateEmail.WithDetails("ana@feira.com")

	assert.True(t, errors.Is(err, ErrDuplicateEmail))
	assert.False(t, errors.Is(err, ErrStallNotFound))
	assert.Equal(t, "ana@feira.com", err.Details())
	assert.Equal(t, http.StatusConflict, err.HTTPCode())
}

func TestBaseError_WrapMessage(t *testing.T) {
	t.Parallel()

	err := ErrStallNotFound.WrapMessage("create product")

	appErr, ok := errors.AsType[AppError](err)
	assert.True(t, ok)
	assert.Equal(t, "STALL_NOT_FOUND", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "create product")
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "list products")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "list products", err.Details())
}
