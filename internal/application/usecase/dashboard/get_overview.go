package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/usecase/transaction"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// GetOverviewOutput represents the spending overview shown on the dashboard.
type GetOverviewOutput struct {
	MonthlySeries      []entity.MonthlyTotal
	CategoryTotals     []entity.CategoryTotal
	CurrentMonthTotal  decimal.Decimal
	TransactionCount   int
	CategoryCount      int
	RecentTransactions []*entity.Transaction
	FromCache          bool
}

// GetOverviewUseCase aggregates every transaction into the dashboard overview.
type GetOverviewUseCase struct {
	listTransactions *transaction.ListTransactionsUseCase
	now              func() time.Time
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(listTransactions *transaction.ListTransactionsUseCase, now func() time.Time) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		listTransactions: listTransactions,
		now:              now,
	}
}

// Execute computes the overview as of the injected clock.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*GetOverviewOutput, error) {
	list, err := uc.listTransactions.Execute(ctx, transaction.ListTransactionsInput{})
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardInternalError,
			"failed to load transactions",
			err,
		)
	}

	now := uc.now().UTC()
	txns := list.Transactions

	return &GetOverviewOutput{
		MonthlySeries:      MonthlySeries(txns, now),
		CategoryTotals:     CategoryTotals(txns),
		CurrentMonthTotal:  CurrentMonthTotal(txns, now),
		TransactionCount:   len(txns),
		CategoryCount:      len(entity.AllCategories()),
		RecentTransactions: RecentTransactions(txns, RecentTransactionsLimit),
		FromCache:          list.FromCache,
	}, nil
}
