package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
)

func TestHandleGetMe(t *testing.T) {
	user := domain.NewUser("anna@example.com", "Anna", "hashed")
	req := authedRequest(http.MethodGet, "/api/v1/users/me", nil, user.ID)
	w := httptest.NewRecorder()

	handler := NewUserHandler(&MockUserService{user: user}, respondJSON, respondError)
	handler.HandleGetMe(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Anna", data["name"])
}

func TestHandleGetMe_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	w := httptest.NewRecorder()

	handler := NewUserHandler(&MockUserService{}, respondJSON, respondError)
	handler.HandleGetMe(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestHandleUpdateMe(t *testing.T) {
	user := domain.NewUser("anna@example.com", "Anna", "hashed")
	body := strings.NewReader(`{"name":"Anna Nowak"}`)
	req := authedRequest(http.MethodPatch, "/api/v1/users/me", body, user.ID)
	w := httptest.NewRecorder()

	handler := NewUserHandler(&MockUserService{user: user}, respondJSON, respondError)
	handler.HandleUpdateMe(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Anna Nowak", data["name"])
}

func TestHandleUpdateMe_ValidationError(t *testing.T) {
	body := strings.NewReader(`{"name":"A"}`)
	req := authedRequest(http.MethodPatch, "/api/v1/users/me", body, uuid.New())
	w := httptest.NewRecorder()

	handler := NewUserHandler(&MockUserService{invalid: "name must be between 2 and 100 characters"}, respondJSON, respondError)
	handler.HandleUpdateMe(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
