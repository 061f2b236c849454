// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"log/slog"
	"time"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// ListBudgetsInput represents the input for listing budgets of a period.
// Both fields are required.
type ListBudgetsInput struct {
	Month *int
	Year  *int
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets   []*entity.Budget
	FromCache bool
}

// ListBudgetsUseCase serves budget lists through the cache.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.Cache
	ttl        time.Duration
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository, cache adapter.Cache, ttl time.Duration) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
		ttl:        ttl,
	}
}

// Execute returns the budgets of the requested month ordered by category.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	if input.Month == nil || input.Year == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			"month and year parameters are required",
			domainerror.ErrMissingBudgetFields,
		)
	}

	period := valueobject.NewPeriod(*input.Month, *input.Year)
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	key := valueobject.BudgetsCacheKey(period)
	if data, ok := uc.cache.Get(ctx, key); ok {
		budgets, err := decodeBudgets(data)
		if err == nil {
			slog.Debug("Budgets served from cache", "key", key, "count", len(budgets))
			return &ListBudgetsOutput{Budgets: budgets, FromCache: true}, nil
		}
		slog.Warn("Discarding unreadable budget snapshot", "key", key, "error", err)
	}

	budgets, err := uc.budgetRepo.FindByPeriod(ctx, period)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetPersistence,
			"failed to fetch budgets",
			err,
		)
	}

	if data, err := encodeBudgets(budgets); err != nil {
		slog.Warn("Failed to encode budget snapshot", "key", key, "error", err)
	} else {
		uc.cache.Set(ctx, key, data, uc.ttl)
	}

	return &ListBudgetsOutput{Budgets: budgets}, nil
}

// validatePeriod checks month and year ranges.
func validatePeriod(period valueobject.Period) error {
	if !period.ValidMonth() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidBudgetMonth,
		)
	}
	if !period.ValidYear() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetYear,
			"year must be between 2000 and 2100",
			domainerror.ErrInvalidBudgetYear,
		)
	}
	return nil
}
