package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
)

type contextKey string

// UserIDContextKey is where the middleware stores the authenticated
// user's id (a uuid.UUID) in the request context.
const UserIDContextKey contextKey = "userID"

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// UserFromContext retrieves the authenticated user id set by the
// middleware.
func UserFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(uuid.UUID)
	return userID, ok
}

type Middleware struct {
	jwtManager JWTManagerInterface
	users      domain.UserRepository
}

func NewMiddleware(jwtManager JWTManagerInterface, users domain.UserRepository) *Middleware {
	return &Middleware{jwtManager: jwtManager, users: users}
}

// RequireAuth validates the bearer token and re-checks the account on
// every request: an unknown user gets 401, a deactivated one 403.
func (m *Middleware) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "Authorization header is required")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				writeJSONError(w, http.StatusUnauthorized, "Invalid token format")
				return
			}

			rawUserID, err := m.jwtManager.ValidateAccessToken(tokenString)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			userID, err := uuid.Parse(rawUserID)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			user, err := m.users.GetByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, financeErrors.ErrNotFound) {
					writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
					return
				}
				writeJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			if !user.IsActive {
				writeJSONError(w, http.StatusForbidden, "Account is inactive")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDContextKey, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeJSONError writes an error response in JSON format
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:  "error",
		Message: message,
	})
}
