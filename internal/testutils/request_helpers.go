package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	"github.com/vamm99/moterplace/internal/api/middleware"
	"github.com/vamm99/moterplace/internal/session"
)

// CreateTestRequest builds a request with a discarding logger and a fresh
// visitor id in context, the way the middleware chain leaves it.
func CreateTestRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {

	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := middleware.WithVisitor(req.Context(), uuid.NewString())

	return req.WithContext(middleware.WithLogger(ctx, logger))
}

// CreateAuthedRequest additionally carries session cookies for the given
// token.
func CreateAuthedRequest(method, target string, body io.Reader, token string, pathParams map[string]string) *http.Request {

	req := CreateTestRequest(method, target, body, pathParams)

	req.AddCookie(&http.Cookie{Name: session.TokenCookieName, Value: token})

	return req
}
