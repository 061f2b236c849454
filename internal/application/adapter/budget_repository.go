// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create persists a new budget. It returns domainerror.ErrBudgetAlreadyExists
	// when the (category, month, year) natural key is taken.
	Create(ctx context.Context, budget *entity.Budget) error

	// Update saves the amount of an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// FindByNaturalKey retrieves the budget for a category and period.
	// Returns nil, nil when none exists.
	FindByNaturalKey(ctx context.Context, category entity.Category, period valueobject.Period) (*entity.Budget, error)

	// FindByPeriod retrieves all budgets of a period ordered by category ascending.
	FindByPeriod(ctx context.Context, period valueobject.Period) ([]*entity.Budget, error)
}
