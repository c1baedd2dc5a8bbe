package interfaces

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/auth"
)

// authedRequest builds a request carrying an authenticated user id,
// the way the auth middleware would.
func authedRequest(method, target string, body io.Reader, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), auth.UserIDContextKey, userID)
	return req.WithContext(ctx)
}
