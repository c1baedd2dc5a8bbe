package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/auth"
	"github.com/kamilczajka/FinanceTracker/internal/finance/application"
	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
	"github.com/kamilczajka/FinanceTracker/internal/money"
)

type BudgetServiceInterface interface {
	CreateBudget(ctx context.Context, userID uuid.UUID, in application.CreateBudgetInput) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID uuid.UUID, month, year int) ([]application.BudgetWithSpend, error)
	UpdateBudget(ctx context.Context, budgetID, userID uuid.UUID, amount *money.Amount) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID, userID uuid.UUID) error
}

type BudgetHandler struct {
	service      BudgetServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewBudgetHandler(
	service BudgetServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *BudgetHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	if respondJSON == nil || respondError == nil {
		log.Fatal("Respond functions must not be nil")
		return nil
	}
	return &BudgetHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

func (h *BudgetHandler) HandleCreateBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		CategoryID uuid.UUID    `json:"category_id"`
		Amount     money.Amount `json:"amount"`
		Month      int          `json:"month"`
		Year       int          `json:"year"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CategoryID == uuid.Nil {
		h.respondError(w, http.StatusBadRequest, "Category ID is required")
		return
	}

	budget, err := h.service.CreateBudget(r.Context(), userID, application.CreateBudgetInput{
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Month:      req.Month,
		Year:       req.Year,
	})
	if err != nil {
		switch {
		case financeErrors.IsValidationError(err), financeErrors.IsDuplicateError(err):
			h.respondError(w, http.StatusBadRequest, err.Error())
		default:
			log.Println("Error during budget creation:", err.Error())
			h.respondError(w, http.StatusInternalServerError, "Failed to create budget")
		}
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Budget successfully created.",
		"data":    budget,
	})
}

// HandleListBudgets defaults to the current month when no period is
// given.
func (h *BudgetHandler) HandleListBudgets(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	now := time.Now().UTC()
	month := int(now.Month())
	year := now.Year()

	if value := r.URL.Query().Get("month"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 || parsed > 12 {
			h.respondError(w, http.StatusBadRequest, "Month must be between 1 and 12")
			return
		}
		month = parsed
	}
	if value := r.URL.Query().Get("year"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 2000 {
			h.respondError(w, http.StatusBadRequest, "Invalid year")
			return
		}
		year = parsed
	}

	budgets, err := h.service.ListBudgets(r.Context(), userID, month, year)
	if err != nil {
		log.Println("Error listing budgets:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch budgets")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   budgets,
	})
}

func (h *BudgetHandler) HandleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	budgetID, err := uuid.Parse(r.PathValue("budgetID"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid budget ID")
		return
	}

	var req struct {
		Amount *money.Amount `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	budget, err := h.service.UpdateBudget(r.Context(), budgetID, userID, req.Amount)
	if err != nil {
		switch {
		case financeErrors.IsValidationError(err):
			h.respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, financeErrors.ErrNotFound):
			h.respondError(w, http.StatusNotFound, "Budget not found")
		default:
			log.Println("Error updating budget:", err.Error())
			h.respondError(w, http.StatusInternalServerError, "Failed to update budget")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget successfully updated.",
		"data":    budget,
	})
}

func (h *BudgetHandler) HandleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	budgetID, err := uuid.Parse(r.PathValue("budgetID"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid budget ID")
		return
	}

	if err := h.service.DeleteBudget(r.Context(), budgetID, userID); err != nil {
		if errors.Is(err, financeErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "Budget not found")
			return
		}
		log.Println("Error deleting budget:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to delete budget")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
