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

type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, in application.CreateTransactionInput) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, filter domain.TransactionFilter) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID, userID uuid.UUID, update domain.TransactionUpdate) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID, userID uuid.UUID) error
	GetTransactionSummary(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) (*application.TransactionSummary, error)
	GetMonthlySummary(ctx context.Context, userID uuid.UUID, year int) ([]application.MonthlySummary, error)
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *TransactionHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	if respondJSON == nil || respondError == nil {
		log.Fatal("Respond functions must not be nil")
		return nil
	}
	return &TransactionHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

// parseDate accepts either a full RFC3339 timestamp or a bare day.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func (h *TransactionHandler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Description string       `json:"description"`
		Amount      money.Amount `json:"amount"`
		Type        string       `json:"type"`
		CategoryID  *uuid.UUID   `json:"category_id"`
		Date        string       `json:"date"`
		Notes       *string      `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var date time.Time
	if req.Date != "" {
		var err error
		date, err = parseDate(req.Date)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid date format")
			return
		}
	}

	transaction, err := h.service.CreateTransaction(r.Context(), userID, application.CreateTransactionInput{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        domain.TransactionType(req.Type),
		CategoryID:  req.CategoryID,
		Date:        date,
		Notes:       req.Notes,
	})
	if err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Println("Error during transaction creation:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully created.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	query := r.URL.Query()
	var filter domain.TransactionFilter

	if value := query.Get("start_date"); value != "" {
		startDate, err := parseDate(value)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid start date format")
			return
		}
		filter.StartDate = &startDate
	}
	if value := query.Get("end_date"); value != "" {
		endDate, err := parseDate(value)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid end date format")
			return
		}
		filter.EndDate = &endDate
	}
	if value := query.Get("type"); value != "" {
		if !domain.IsValidTransactionType(value) {
			h.respondError(w, http.StatusBadRequest, "Invalid transaction type")
			return
		}
		transactionType := domain.TransactionType(value)
		filter.Type = &transactionType
	}
	if value := query.Get("category_id"); value != "" {
		categoryID, err := uuid.Parse(value)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid category ID")
			return
		}
		filter.CategoryID = &categoryID
	}
	if value := query.Get("limit"); value != "" {
		limit, err := strconv.Atoi(value)
		if err != nil || limit < 1 || limit > application.MaxTransactionLimit {
			h.respondError(w, http.StatusBadRequest, "Limit must be between 1 and 1000")
			return
		}
		filter.Limit = limit
	}
	if value := query.Get("offset"); value != "" {
		offset, err := strconv.Atoi(value)
		if err != nil || offset < 0 {
			h.respondError(w, http.StatusBadRequest, "Offset must not be negative")
			return
		}
		filter.Offset = offset
	}

	transactions, err := h.service.ListTransactions(r.Context(), userID, filter)
	if err != nil {
		log.Println("Error listing transactions:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   transactions,
	})
}

func (h *TransactionHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var startDate, endDate *time.Time
	if value := r.URL.Query().Get("start_date"); value != "" {
		parsed, err := parseDate(value)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid start date format")
			return
		}
		startDate = &parsed
	}
	if value := r.URL.Query().Get("end_date"); value != "" {
		parsed, err := parseDate(value)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid end date format")
			return
		}
		endDate = &parsed
	}

	summary, err := h.service.GetTransactionSummary(r.Context(), userID, startDate, endDate)
	if err != nil {
		log.Println("Error building summary:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to build summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   summary,
	})
}

func (h *TransactionHandler) HandleGetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	year := time.Now().UTC().Year()
	if value := r.URL.Query().Get("year"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 2000 {
			h.respondError(w, http.StatusBadRequest, "Invalid year")
			return
		}
		year = parsed
	}

	summaries, err := h.service.GetMonthlySummary(r.Context(), userID, year)
	if err != nil {
		log.Println("Error building monthly summary:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to build monthly summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   summaries,
	})
}

func (h *TransactionHandler) HandleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionID, err := uuid.Parse(r.PathValue("transactionID"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	var req struct {
		Description *string       `json:"description"`
		Amount      *money.Amount `json:"amount"`
		Type        *string       `json:"type"`
		CategoryID  *uuid.UUID    `json:"category_id"`
		Date        *string       `json:"date"`
		Notes       *string       `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := domain.TransactionUpdate{
		Description: req.Description,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Notes:       req.Notes,
	}
	if req.Type != nil {
		transactionType := domain.TransactionType(*req.Type)
		update.Type = &transactionType
	}
	if req.Date != nil && *req.Date != "" {
		date, err := parseDate(*req.Date)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		update.Date = &date
	}

	transaction, err := h.service.UpdateTransaction(r.Context(), transactionID, userID, update)
	if err != nil {
		switch {
		case financeErrors.IsValidationError(err):
			h.respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, financeErrors.ErrNotFound):
			h.respondError(w, http.StatusNotFound, "Transaction not found")
		default:
			log.Println("Error updating transaction:", err.Error())
			h.respondError(w, http.StatusInternalServerError, "Failed to update transaction")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully updated.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) HandleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionID, err := uuid.Parse(r.PathValue("transactionID"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	if err := h.service.DeleteTransaction(r.Context(), transactionID, userID); err != nil {
		if errors.Is(err, financeErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		log.Println("Error deleting transaction:", err.Error())
		h.respondError(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
