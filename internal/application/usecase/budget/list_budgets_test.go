package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter/adaptertest"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

func intPtr(v int) *int { return &v }

func seededBudgets() *adaptertest.MemoryBudgetRepository {
	return adaptertest.NewMemoryBudgetRepository(
		entity.NewBudget(entity.CategoryRent, decimal.NewFromInt(1200), 3, 2024),
		entity.NewBudget(entity.CategoryFood, decimal.NewFromInt(500), 3, 2024),
		entity.NewBudget(entity.CategoryFood, decimal.NewFromInt(450), 4, 2024),
	)
}

func TestListBudgets_Validation(t *testing.T) {
	tests := []struct {
		name     string
		input    ListBudgetsInput
		wantCode domainerror.BudgetErrorCode
	}{
		{"missing month", ListBudgetsInput{Year: intPtr(2024)}, domainerror.ErrCodeMissingBudgetFields},
		{"missing year", ListBudgetsInput{Month: intPtr(3)}, domainerror.ErrCodeMissingBudgetFields},
		{"missing both", ListBudgetsInput{}, domainerror.ErrCodeMissingBudgetFields},
		{"month too large", ListBudgetsInput{Month: intPtr(13), Year: intPtr(2024)}, domainerror.ErrCodeInvalidBudgetMonth},
		{"month zero", ListBudgetsInput{Month: intPtr(0), Year: intPtr(2024)}, domainerror.ErrCodeInvalidBudgetMonth},
		{"year too small", ListBudgetsInput{Month: intPtr(3), Year: intPtr(1999)}, domainerror.ErrCodeInvalidBudgetYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := adaptertest.NewMemoryCache()
			uc := NewListBudgetsUseCase(seededBudgets(), cache, 300*time.Second)

			_, err := uc.Execute(context.Background(), tt.input)

			var budgetErr *domainerror.BudgetError
			if !errors.As(err, &budgetErr) {
				t.Fatalf("expected BudgetError, got %v", err)
			}
			if budgetErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, budgetErr.Code)
			}
			if cache.Hits+cache.Misses != 0 {
				t.Error("expected no cache lookup on invalid input")
			}
		})
	}
}

func TestListBudgets_CacheAside(t *testing.T) {
	repo := seededBudgets()
	cache := adaptertest.NewMemoryCache()
	uc := NewListBudgetsUseCase(repo, cache, 300*time.Second)
	ctx := context.Background()
	input := ListBudgetsInput{Month: intPtr(3), Year: intPtr(2024)}

	first, err := uc.Execute(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.FromCache {
		t.Error("expected first call to read the store")
	}
	if len(first.Budgets) != 2 || first.Budgets[0].Category != entity.CategoryFood {
		t.Fatalf("expected FOOD then RENT, got %+v", first.Budgets)
	}
	if ttl := cache.TTLs["budgets:2024:3"]; ttl != 300*time.Second {
		t.Errorf("expected entry under budgets:2024:3 with 300s TTL, got %v", ttl)
	}

	second, err := uc.Execute(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.FromCache {
		t.Error("expected second call to be served from cache")
	}
	if repo.FindByPeriodCalls != 1 {
		t.Errorf("expected the store to be read once, got %d", repo.FindByPeriodCalls)
	}
	if !sameBudgets(first.Budgets, second.Budgets) {
		t.Error("expected cached payload to equal the store payload")
	}
}

func TestListBudgets_CacheDownServesStore(t *testing.T) {
	ctx := context.Background()
	input := ListBudgetsInput{Month: intPtr(3), Year: intPtr(2024)}

	healthy, err := NewListBudgetsUseCase(seededBudgets(), adaptertest.NewMemoryCache(), time.Minute).Execute(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	down := adaptertest.NewMemoryCache()
	down.Down = true
	degraded, err := NewListBudgetsUseCase(seededBudgets(), down, time.Minute).Execute(ctx, input)
	if err != nil {
		t.Fatalf("cache failure must not fail the read: %v", err)
	}

	if !sameBudgets(healthy.Budgets, degraded.Budgets) {
		t.Error("expected identical payloads with and without cache")
	}
}

func TestListBudgets_CorruptSnapshotIsMiss(t *testing.T) {
	repo := seededBudgets()
	cache := adaptertest.NewMemoryCache()
	cache.Put("budgets:2024:3", []byte("not json"))

	out, err := NewListBudgetsUseCase(repo, cache, time.Minute).Execute(context.Background(), ListBudgetsInput{Month: intPtr(3), Year: intPtr(2024)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FromCache || repo.FindByPeriodCalls != 1 {
		t.Error("expected corrupt snapshot to fall through to the store")
	}
	if len(out.Budgets) != 2 {
		t.Errorf("expected 2 budgets, got %d", len(out.Budgets))
	}
}

func TestListBudgets_StoreFailure(t *testing.T) {
	repo := seededBudgets()
	repo.Err = errors.New("connection refused")
	cache := adaptertest.NewMemoryCache()

	_, err := NewListBudgetsUseCase(repo, cache, time.Minute).Execute(context.Background(), ListBudgetsInput{Month: intPtr(3), Year: intPtr(2024)})

	var budgetErr *domainerror.BudgetError
	if !errors.As(err, &budgetErr) || budgetErr.Code != domainerror.ErrCodeBudgetPersistence {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if budgetErr.IsValidation() {
		t.Error("persistence error must not be a validation error")
	}
	if cache.Writes != 0 {
		t.Error("expected nothing to be cached on failure")
	}
}

func TestBudgetSnapshot_RoundTrip(t *testing.T) {
	budgets := []*entity.Budget{
		entity.NewBudget(entity.CategoryTravel, decimal.RequireFromString("199.99"), 7, 2025),
	}

	data, err := encodeBudgets(budgets)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	decoded, err := decodeBudgets(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !sameBudgets(budgets, decoded) {
		t.Errorf("expected %+v, got %+v", budgets[0], decoded[0])
	}

	if _, err := decodeBudgets([]byte(`{"v":99,"budgets":[]}`)); err == nil {
		t.Error("expected unknown version to be rejected")
	}
}

func sameBudgets(a, b []*entity.Budget) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID ||
			a[i].Category != b[i].Category ||
			!a[i].Amount.Equal(b[i].Amount) ||
			a[i].Month != b[i].Month ||
			a[i].Year != b[i].Year ||
			!a[i].CreatedAt.Equal(b[i].CreatedAt) {
			return false
		}
	}
	return true
}

