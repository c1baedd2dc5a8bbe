package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/auth"
	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, userID uuid.UUID, name, color, icon string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID uuid.UUID) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID, userID uuid.UUID, name, color, icon string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID, userID uuid.UUID) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *CategoryHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	if respondJSON == nil || respondError == nil {
		log.Fatal("Respond functions must not be nil")
		return nil
	}
	return &CategoryHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

type categoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

func validateCategoryRequest(req categoryRequest, nameRequired bool) string {
	if nameRequired && req.Name == "" {
		return "Category name is required"
	}
	if len(req.Name) > 50 {
		return "Category name must be at most 50 characters"
	}
	if req.Color != "" && !hexColorPattern.MatchString(req.Color) {
		return "Color must be a hex value like #6366f1"
	}
	if len(req.Icon) > 30 {
		return "Icon must be at most 30 characters"
	}
	return ""
}

func (h *CategoryHandler) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateCategoryRequest(req, true); msg != "" {
		h.respondError(w, http.StatusBadRequest, msg)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), userID, req.Name, req.Color, req.Icon)
	if err != nil {
		log.Println("Error during category creation:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully created.",
		"data":    category,
	})
}

func (h *CategoryHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categories, err := h.service.ListCategories(r.Context(), userID)
	if err != nil {
		log.Println("Error listing categories:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   categories,
	})
}

func (h *CategoryHandler) HandleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID, err := uuid.Parse(r.PathValue("categoryID"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateCategoryRequest(req, false); msg != "" {
		h.respondError(w, http.StatusBadRequest, msg)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), categoryID, userID, req.Name, req.Color, req.Icon)
	if err != nil {
		if errors.Is(err, financeErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "Category not found")
			return
		}
		log.Println("Error updating category:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully updated.",
		"data":    category,
	})
}

func (h *CategoryHandler) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID, err := uuid.Parse(r.PathValue("categoryID"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := h.service.DeleteCategory(r.Context(), categoryID, userID); err != nil {
		if errors.Is(err, financeErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "Category not found")
			return
		}
		log.Println("Error deleting category:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
