package dashboard

import (
	"context"
	"time"

	"github.com/budget-tracker/backend/internal/application/usecase/budget"
	"github.com/budget-tracker/backend/internal/application/usecase/transaction"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// GetBudgetInsightsInput selects the month to analyse. Nil fields default to
// the current month and year.
type GetBudgetInsightsInput struct {
	Month *int
	Year  *int
}

// GetBudgetInsightsOutput represents budget vs actual spending for a month.
type GetBudgetInsightsOutput struct {
	Period      valueobject.Period
	Comparisons []entity.BudgetComparison
	TopSpending *entity.BudgetComparison
	OverBudget  []entity.BudgetComparison
}

// GetBudgetInsightsUseCase compares the budgets of a month with its transactions.
type GetBudgetInsightsUseCase struct {
	listBudgets      *budget.ListBudgetsUseCase
	listTransactions *transaction.ListTransactionsUseCase
	now              func() time.Time
}

// NewGetBudgetInsightsUseCase creates a new GetBudgetInsightsUseCase instance.
func NewGetBudgetInsightsUseCase(
	listBudgets *budget.ListBudgetsUseCase,
	listTransactions *transaction.ListTransactionsUseCase,
	now func() time.Time,
) *GetBudgetInsightsUseCase {
	return &GetBudgetInsightsUseCase{
		listBudgets:      listBudgets,
		listTransactions: listTransactions,
		now:              now,
	}
}

// Execute loads both lists through the cache and compares them.
func (uc *GetBudgetInsightsUseCase) Execute(ctx context.Context, input GetBudgetInsightsInput) (*GetBudgetInsightsOutput, error) {
	period := valueobject.PeriodOf(uc.now().UTC())
	if input.Month != nil {
		period.Month = *input.Month
	}
	if input.Year != nil {
		period.Year = *input.Year
	}
	if !period.ValidMonth() || !period.ValidYear() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDashboardPeriod,
			"month must be between 1 and 12 and year between 2000 and 2100",
			domainerror.ErrInvalidDashboardPeriod,
		)
	}

	budgets, err := uc.listBudgets.Execute(ctx, budget.ListBudgetsInput{
		Month: &period.Month,
		Year:  &period.Year,
	})
	if err != nil {
		return nil, internalError("failed to load budgets", err)
	}

	txns, err := uc.listTransactions.Execute(ctx, transaction.ListTransactionsInput{
		Month: &period.Month,
		Year:  &period.Year,
	})
	if err != nil {
		return nil, internalError("failed to load transactions", err)
	}

	comparisons := CompareBudgets(budgets.Budgets, txns.Transactions)

	return &GetBudgetInsightsOutput{
		Period:      period,
		Comparisons: comparisons,
		TopSpending: TopSpendingCategory(comparisons),
		OverBudget:  OverBudgetCategories(comparisons),
	}, nil
}

func internalError(message string, err error) error {
	return domainerror.NewDashboardError(domainerror.ErrCodeDashboardInternalError, message, err)
}
