package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmskit/core/handler"
	"github.com/dmitrymomot/cmskit/middleware"
)

// runStatus executes the middleware around a handler that responds with the
// given status and error, and returns what the Response handed back.
func runStatus(t *testing.T, ctx handler.Context, mw handler.Middleware[handler.Context], status int, handlerErr error) error {
	t.Helper()

	h := mw(func(ctx handler.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(status)
			return handlerErr
		}
	})
	return h(ctx)(ctx.ResponseWriter(), ctx.Request())
}

func TestLoggingCompletedRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mw := middleware.LoggingWithConfig[handler.Context](middleware.LoggingConfig{Logger: log})

	ctx := testContext(t, "/de/produkte/")
	require.NoError(t, runStatus(t, ctx, mw, http.StatusOK, nil))

	out := buf.String()
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/de/produkte/")
	assert.Contains(t, out, "status_code=200")
	assert.Contains(t, out, "level=INFO")
}

func TestLoggingIncludesLanguage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	mw := compose(
		middleware.LoggingWithConfig[handler.Context](middleware.LoggingConfig{Logger: log}),
		middleware.Language[handler.Context](testLanguages(t)),
	)

	ctx := testContext(t, "/de/produkte/")
	require.NoError(t, runStatus(t, ctx, mw, http.StatusOK, nil))

	assert.Contains(t, buf.String(), "language=de")
}

func TestLoggingServerErrorLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	mw := middleware.LoggingWithConfig[handler.Context](middleware.LoggingConfig{Logger: log})

	ctx := testContext(t, "/broken/")
	wantErr := errors.New("boom")
	err := runStatus(t, ctx, mw, http.StatusInternalServerError, wantErr)
	require.ErrorIs(t, err, wantErr)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "status_code=500")
	assert.Contains(t, out, "boom")
}

func TestLoggingClientErrorLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	mw := middleware.LoggingWithConfig[handler.Context](middleware.LoggingConfig{Logger: log})

	ctx := testContext(t, "/missing/")
	require.NoError(t, runStatus(t, ctx, mw, http.StatusNotFound, nil))

	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLoggingSkip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	mw := middleware.LoggingWithConfig[handler.Context](middleware.LoggingConfig{
		Logger: log,
		Skip:   func(handler.Context) bool { return true },
	})

	ctx := testContext(t, "/health")
	require.NoError(t, runStatus(t, ctx, mw, http.StatusOK, nil))

	assert.Empty(t, buf.String())
}
