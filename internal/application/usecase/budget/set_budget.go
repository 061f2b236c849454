package budget

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// SetBudgetInput represents the input for creating or updating a budget.
type SetBudgetInput struct {
	Category string
	Amount   *decimal.Decimal
	Month    *int
	Year     *int
}

// SetBudgetOutput represents the output of setting a budget.
type SetBudgetOutput struct {
	Budget  *entity.Budget
	Created bool // False when an existing budget was updated in place
}

// SetBudgetUseCase upserts a budget by its (category, month, year) natural key.
// It never touches the cache; cached lists may stay stale until their TTL expires.
type SetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(budgetRepo adapter.BudgetRepository) *SetBudgetUseCase {
	return &SetBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the upsert.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	if input.Category == "" || input.Amount == nil || input.Month == nil || input.Year == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			"missing required fields",
			domainerror.ErrMissingBudgetFields,
		)
	}

	category, ok := entity.ParseCategory(input.Category)
	if !ok {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetCategory,
			"category must be one of FOOD, RENT, TRAVEL, OTHER",
			domainerror.ErrInvalidBudgetCategory,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	if !entity.AmountFitsStorage(*input.Amount) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must have at most 2 decimal places and be below 10^13",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	period := valueobject.NewPeriod(*input.Month, *input.Year)
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	updated, err := uc.updateExisting(ctx, category, period, *input.Amount)
	if err != nil {
		return nil, err
	}
	if updated != nil {
		return &SetBudgetOutput{Budget: updated}, nil
	}

	budget := entity.NewBudget(category, *input.Amount, period.Month, period.Year)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		if !errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
			return nil, persistenceError("failed to create budget", err)
		}

		// A concurrent writer created the same natural key between the lookup
		// and the insert; the unique index rejected ours, so apply it as an update.
		slog.Info("Budget created concurrently, retrying as update",
			"category", category,
			"period", period.String(),
		)
		updated, err := uc.updateExisting(ctx, category, period, *input.Amount)
		if err != nil {
			return nil, err
		}
		if updated == nil {
			return nil, persistenceError("failed to create budget", domainerror.ErrBudgetAlreadyExists)
		}
		return &SetBudgetOutput{Budget: updated}, nil
	}

	return &SetBudgetOutput{Budget: budget, Created: true}, nil
}

// updateExisting overwrites the amount of the budget matching the natural key.
// It returns nil, nil when no such budget exists.
func (uc *SetBudgetUseCase) updateExisting(
	ctx context.Context,
	category entity.Category,
	period valueobject.Period,
	amount decimal.Decimal,
) (*entity.Budget, error) {
	existing, err := uc.budgetRepo.FindByNaturalKey(ctx, category, period)
	if err != nil {
		return nil, persistenceError("failed to look up budget", err)
	}
	if existing == nil {
		return nil, nil
	}

	existing.SetAmount(amount)
	if err := uc.budgetRepo.Update(ctx, existing); err != nil {
		return nil, persistenceError("failed to update budget", err)
	}
	return existing, nil
}

func persistenceError(message string, err error) error {
	return domainerror.NewBudgetError(domainerror.ErrCodeBudgetPersistence, message, err)
}
