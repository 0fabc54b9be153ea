package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID_GeneratesWhenMissing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestLoggerAndPrincipalRoundTrip(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-2"))
	ctx := context.Background()

	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
	assert.Empty(t, GetRequestIDFromContext(ctx))
	_, ok := GetPrincipal(ctx)
	assert.False(t, ok)

	id := uuid.New()
	ctx = WithLogger(ctx, scoped)
	ctx = WithRequestID(ctx, "req-2")
	ctx = WithPrincipal(ctx, Principal{ID: id, Type: "supplier"})

	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	principal, ok := GetPrincipal(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, principal.ID)
	assert.Equal(t, "supplier", principal.Type)
}
