package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/kamilczajka/FinanceTracker/internal/finance/application"
	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
)

type RegistrationServiceInterface interface {
	Register(ctx context.Context, email, name, password string) (*domain.User, error)
}

type LoginServiceInterface interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type AuthHandler struct {
	users        RegistrationServiceInterface
	auth         LoginServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewAuthHandler(
	users RegistrationServiceInterface,
	auth LoginServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *AuthHandler {
	if users == nil || auth == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	if respondJSON == nil || respondError == nil {
		log.Fatal("Respond functions must not be nil")
		return nil
	}
	return &AuthHandler{
		users:        users,
		auth:         auth,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case financeErrors.IsValidationError(err), financeErrors.IsDuplicateError(err):
			h.respondError(w, http.StatusBadRequest, err.Error())
		default:
			log.Println("Error during registration:", err.Error())
			h.respondError(w, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "User successfully registered.",
		"data":    user,
	})
}

// HandleLogin accepts form-encoded credentials under the OAuth2
// password-grant field names and returns a bearer token.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		h.respondError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	token, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			h.respondError(w, http.StatusUnauthorized, "Incorrect email or password")
			return
		}
		log.Println("Error during login:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}
