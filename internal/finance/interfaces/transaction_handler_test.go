package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kamilczajka/FinanceTracker/internal/finance/application"
	"github.com/kamilczajka/FinanceTracker/internal/money"
)

func TestHandleCreateTransaction_Success(t *testing.T) {
	body := strings.NewReader(`{"description":"Salary","amount":5000.00,"type":"income","date":"2024-03-10"}`)
	req := authedRequest(http.MethodPost, "/api/v1/transactions", body, uuid.New())
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.HandleCreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Salary", data["description"])
	assert.Equal(t, 5000.00, data["amount"])
}

func TestHandleCreateTransaction_InvalidType(t *testing.T) {
	body := strings.NewReader(`{"description":"Transfer","amount":100,"type":"transfer"}`)
	req := authedRequest(http.MethodPost, "/api/v1/transactions", body, uuid.New())
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.HandleCreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestHandleCreateTransaction_InvalidDate(t *testing.T) {
	body := strings.NewReader(`{"description":"Salary","amount":100,"type":"income","date":"10-03-2024"}`)
	req := authedRequest(http.MethodPost, "/api/v1/transactions", body, uuid.New())
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.HandleCreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Invalid date format", response["message"])
}

func TestHandleListTransactions_LimitOutOfRange(t *testing.T) {
	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)

	for _, limit := range []string{"0", "1001", "abc"} {
		req := authedRequest(http.MethodGet, "/api/v1/transactions?limit="+limit, nil, uuid.New())
		w := httptest.NewRecorder()

		handler.HandleListTransactions(w, req)

		res := w.Result()
		res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "limit=%s", limit)
	}
}

func TestHandleListTransactions_FilterParsing(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	categoryID := uuid.New()
	req := authedRequest(http.MethodGet,
		"/api/v1/transactions?start_date=2024-03-01&end_date=2024-04-01&type=expense&category_id="+categoryID.String()+"&limit=50&offset=10",
		nil, uuid.New())
	w := httptest.NewRecorder()

	handler.HandleListTransactions(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotNil(t, service.lastFilter.StartDate)
	assert.NotNil(t, service.lastFilter.EndDate)
	assert.Equal(t, categoryID, *service.lastFilter.CategoryID)
	assert.Equal(t, 50, service.lastFilter.Limit)
	assert.Equal(t, 10, service.lastFilter.Offset)
}

func TestHandleGetSummary(t *testing.T) {
	service := &MockTransactionService{
		summary: &application.TransactionSummary{
			TotalIncome:      money.Amount(500000),
			TotalExpense:     money.Amount(150000),
			Balance:          money.Amount(350000),
			TransactionCount: 2,
		},
	}
	req := authedRequest(http.MethodGet, "/api/v1/transactions/summary", nil, uuid.New())
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(service, respondJSON, respondError)
	handler.HandleGetSummary(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, 5000.00, data["total_income"])
	assert.Equal(t, 1500.00, data["total_expense"])
	assert.Equal(t, 3500.00, data["balance"])
	assert.Equal(t, float64(2), data["transaction_count"])
}

func TestHandleGetMonthlySummary_InvalidYear(t *testing.T) {
	req := authedRequest(http.MethodGet, "/api/v1/transactions/monthly?year=abc", nil, uuid.New())
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.HandleGetMonthlySummary(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestHandleUpdateTransaction_NotFound(t *testing.T) {
	req := authedRequest(http.MethodPatch, "/api/v1/transactions/"+uuid.NewString(), strings.NewReader(`{"amount":10}`), uuid.New())
	req.SetPathValue("transactionID", uuid.NewString())
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{notFound: true}, respondJSON, respondError)
	handler.HandleUpdateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestHandleDeleteTransaction_InvalidID(t *testing.T) {
	req := authedRequest(http.MethodDelete, "/api/v1/transactions/not-a-uuid", nil, uuid.New())
	req.SetPathValue("transactionID", "not-a-uuid")
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.HandleDeleteTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
