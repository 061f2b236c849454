package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter/adaptertest"
	"github.com/budget-tracker/backend/internal/application/usecase/budget"
	"github.com/budget-tracker/backend/internal/application/usecase/dashboard"
	"github.com/budget-tracker/backend/internal/application/usecase/transaction"
	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/validator"
)

type testServer struct {
	router       *gin.Engine
	budgets      *adaptertest.MemoryBudgetRepository
	transactions *adaptertest.MemoryTransactionRepository
	cache        *adaptertest.MemoryCache
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.Register()

	s := &testServer{
		budgets:      adaptertest.NewMemoryBudgetRepository(),
		transactions: adaptertest.NewMemoryTransactionRepository(),
		cache:        adaptertest.NewMemoryCache(),
	}
	now := func() time.Time { return time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC) }

	listBudgets := budget.NewListBudgetsUseCase(s.budgets, s.cache, 300*time.Second)
	listTransactions := transaction.NewListTransactionsUseCase(s.transactions, s.cache, 300*time.Second)

	budgetController := NewBudgetController(listBudgets, budget.NewSetBudgetUseCase(s.budgets))
	transactionController := NewTransactionController(listTransactions, transaction.NewCreateTransactionUseCase(s.transactions))
	dashboardController := NewDashboardController(
		dashboard.NewGetOverviewUseCase(listTransactions, now),
		dashboard.NewGetBudgetInsightsUseCase(listBudgets, listTransactions, now),
	)

	s.router = gin.New()
	api := s.router.Group("/api")
	api.GET("/budgets", budgetController.List)
	api.POST("/budgets", budgetController.Set)
	api.GET("/budgets/insights", dashboardController.GetBudgetInsights)
	api.GET("/transactions", transactionController.List)
	api.POST("/transactions", transactionController.Create)
	api.GET("/dashboard", dashboardController.GetOverview)

	return s
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
	return out
}

func TestBudgetController_List(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantCode   string
	}{
		{"missing params", "", http.StatusBadRequest, "BDG-010001"},
		{"missing year", "?month=3", http.StatusBadRequest, "BDG-010001"},
		{"month out of range", "?month=13&year=2024", http.StatusBadRequest, "BDG-010002"},
		{"non-numeric year", "?month=3&year=abc", http.StatusBadRequest, "BDG-010003"},
		{"fractional month truncates", "?month=3.7&year=2024", http.StatusOK, ""},
		{"valid", "?month=3&year=2024", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			w := s.do(http.MethodGet, "/api/budgets"+tt.query, "")

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantCode != "" {
				if got := decode[dto.ErrorResponse](t, w); got.Code != tt.wantCode {
					t.Errorf("expected code %s, got %s", tt.wantCode, got.Code)
				}
			}
		})
	}
}

func TestBudgetController_SetThenList(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/budgets", `{"category":"FOOD","amount":500,"month":3,"year":2024}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodPost, "/api/budgets", `{"category":"FOOD","amount":"650.50","month":"3","year":"2024"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d: %s", w.Code, w.Body.String())
	}
	updated := decode[dto.BudgetResponse](t, w)
	if updated.Amount != 650.5 || updated.Month != 3 || updated.Year != 2024 {
		t.Errorf("unexpected update response %+v", updated)
	}

	w = s.do(http.MethodGet, "/api/budgets?month=3&year=2024", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Cache") != "MISS" {
		t.Errorf("expected MISS, got %q", w.Header().Get("X-Cache"))
	}
	list := decode[[]dto.BudgetResponse](t, w)
	if len(list) != 1 || list[0].Amount != 650.5 {
		t.Fatalf("expected single budget of 650.5, got %+v", list)
	}

	w = s.do(http.MethodGet, "/api/budgets?month=3&year=2024", "")
	if w.Header().Get("X-Cache") != "HIT" {
		t.Errorf("expected HIT, got %q", w.Header().Get("X-Cache"))
	}
}

func TestBudgetController_SetValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"missing amount", `{"category":"FOOD","month":3,"year":2024}`, "BDG-010001"},
		{"missing category", `{"amount":10,"month":3,"year":2024}`, "BDG-010001"},
		{"unknown category", `{"category":"SHOES","amount":10,"month":3,"year":2024}`, "BDG-010004"},
		{"zero amount", `{"category":"FOOD","amount":0,"month":3,"year":2024}`, "BDG-010005"},
		{"sub-cent amount", `{"category":"FOOD","amount":0.001,"month":3,"year":2024}`, "BDG-010005"},
		{"amount too large", `{"category":"FOOD","amount":10000000000000,"month":3,"year":2024}`, "BDG-010005"},
		{"month out of range", `{"category":"FOOD","amount":10,"month":0,"year":2024}`, "BDG-010002"},
		{"year zero", `{"category":"FOOD","amount":10,"month":3,"year":0}`, "BDG-010003"},
		{"malformed json", `{"category":`, "REQ-010001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			w := s.do(http.MethodPost, "/api/budgets", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if got := decode[dto.ErrorResponse](t, w); got.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s (%s)", tt.wantCode, got.Code, got.Error)
			}
			if len(s.budgets.All()) != 0 {
				t.Error("expected nothing to be persisted")
			}
		})
	}
}

func TestBudgetController_StoreFailureIsGeneric500(t *testing.T) {
	s := newTestServer(t)
	s.budgets.Err = errors.New("pq: password authentication failed for user app")

	w := s.do(http.MethodGet, "/api/budgets?month=3&year=2024", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Error("expected store details to stay out of the response")
	}
}

func TestTransactionController_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"valid rfc3339", `{"amount":-42.5,"date":"2024-03-02T10:00:00Z","description":"groceries","category":"FOOD"}`, http.StatusCreated, ""},
		{"valid plain date and string amount", `{"amount":"-10","date":"2024-03-02","description":"bus","category":"TRAVEL"}`, http.StatusCreated, ""},
		{"missing amount", `{"date":"2024-03-02","description":"x","category":"FOOD"}`, http.StatusBadRequest, "TXN-010010"},
		{"missing description", `{"amount":5,"date":"2024-03-02","category":"FOOD"}`, http.StatusBadRequest, "TXN-010010"},
		{"missing category", `{"amount":5,"date":"2024-03-02","description":"x"}`, http.StatusBadRequest, "TXN-010001"},
		{"invalid category", `{"amount":5,"date":"2024-03-02","description":"x","category":"SHOES"}`, http.StatusBadRequest, "TXN-010001"},
		{"zero amount", `{"amount":0,"date":"2024-03-02","description":"x","category":"FOOD"}`, http.StatusBadRequest, "TXN-010003"},
		{"bad date", `{"amount":5,"date":"02/03/2024","description":"x","category":"FOOD"}`, http.StatusBadRequest, "TXN-010002"},
		{"description too long", `{"amount":5,"date":"2024-03-02","description":"` + strings.Repeat("a", 256) + `","category":"FOOD"}`, http.StatusBadRequest, "TXN-010008"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			w := s.do(http.MethodPost, "/api/transactions", tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantCode != "" {
				if got := decode[dto.ErrorResponse](t, w); got.Code != tt.wantCode {
					t.Errorf("expected code %s, got %s", tt.wantCode, got.Code)
				}
				if s.transactions.Created != 0 {
					t.Error("expected nothing to be persisted")
				}
				return
			}

			created := decode[dto.TransactionResponse](t, w)
			if created.ID == "" {
				t.Error("expected a generated id")
			}
			if _, err := time.Parse(time.RFC3339, created.Date); err != nil {
				t.Errorf("expected RFC3339 date, got %q", created.Date)
			}
		})
	}
}

func TestTransactionController_ListIsStaleAfterWrite(t *testing.T) {
	s := newTestServer(t)

	s.do(http.MethodPost, "/api/transactions", `{"amount":-5,"date":"2024-03-02","description":"tea","category":"FOOD"}`)
	w := s.do(http.MethodGet, "/api/transactions?month=3&year=2024", "")
	if len(decode[[]dto.TransactionResponse](t, w)) != 1 {
		t.Fatal("expected one transaction")
	}

	s.do(http.MethodPost, "/api/transactions", `{"amount":-7,"date":"2024-03-03","description":"cake","category":"FOOD"}`)
	w = s.do(http.MethodGet, "/api/transactions?month=3&year=2024", "")
	if w.Header().Get("X-Cache") != "HIT" {
		t.Errorf("expected HIT, got %q", w.Header().Get("X-Cache"))
	}
	if len(decode[[]dto.TransactionResponse](t, w)) != 1 {
		t.Error("expected the cached list to stay stale until it expires")
	}

	w = s.do(http.MethodGet, "/api/transactions", "")
	if got := decode[[]dto.TransactionResponse](t, w); len(got) != 2 || got[0].Description != "cake" {
		t.Errorf("expected unfiltered list newest first, got %+v", got)
	}
}

func TestTransactionController_ListEmptyIsArray(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/transactions", "")

	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("expected 200 with [], got %d %s", w.Code, w.Body.String())
	}
}

func TestTransactionController_StoreFailure(t *testing.T) {
	s := newTestServer(t)
	s.transactions.Err = errors.New("connection refused")

	if w := s.do(http.MethodGet, "/api/transactions", ""); w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on list, got %d", w.Code)
	}
	w := s.do(http.MethodPost, "/api/transactions", `{"amount":-5,"date":"2024-03-02","description":"tea","category":"FOOD"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on create, got %d", w.Code)
	}
}

func TestDashboardController(t *testing.T) {
	s := newTestServer(t)
	s.budgets.Insert(entity.NewBudget(entity.CategoryFood, decimal.NewFromInt(1000), 3, 2024))
	s.do(http.MethodPost, "/api/transactions", `{"amount":300,"date":"2024-03-03","description":"market","category":"FOOD"}`)
	s.do(http.MethodPost, "/api/transactions", `{"amount":800,"date":"2024-03-04","description":"dinner","category":"FOOD"}`)

	w := s.do(http.MethodGet, "/api/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	overview := decode[dto.OverviewResponse](t, w)
	if len(overview.MonthlyExpenses) != 12 || overview.MonthlyExpenses[2].Amount != 1100 {
		t.Errorf("unexpected monthly series %+v", overview.MonthlyExpenses)
	}
	if len(overview.CategoryBreakdown) != 4 || overview.CategoryCount != 4 || overview.TransactionCount != 2 {
		t.Errorf("unexpected overview %+v", overview)
	}

	w = s.do(http.MethodGet, "/api/budgets/insights", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	insights := decode[dto.BudgetInsightsResponse](t, w)
	if len(insights.OverBudget) != 1 || insights.OverBudget[0].Difference != -100 {
		t.Errorf("expected FOOD 100 over budget, got %+v", insights.OverBudget)
	}
	if insights.TopSpendingCategory == nil || insights.TopSpendingCategory.Category != "FOOD" {
		t.Errorf("expected FOOD as top spending, got %+v", insights.TopSpendingCategory)
	}

	if w := s.do(http.MethodGet, "/api/budgets/insights?month=13", ""); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid month, got %d", w.Code)
	}
}
