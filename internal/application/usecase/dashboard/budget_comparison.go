package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CompareBudgets builds one comparison row per budget, in budget order.
// Actual is the signed sum of the transactions of the budget's category dated
// within the budget's month, so refunds reduce spending.
func CompareBudgets(budgets []*entity.Budget, txns []*entity.Transaction) []entity.BudgetComparison {
	out := make([]entity.BudgetComparison, 0, len(budgets))
	for _, budget := range budgets {
		actual := decimal.Zero
		for _, txn := range txns {
			if txn.Category == budget.Category && txn.InPeriod(time.Month(budget.Month), budget.Year) {
				actual = actual.Add(txn.Amount)
			}
		}

		out = append(out, entity.BudgetComparison{
			Category:   budget.Category,
			Budget:     budget.Amount,
			Actual:     actual,
			Difference: budget.Amount.Sub(actual),
		})
	}
	return out
}

// TopSpendingCategory returns the row with the largest actual spending.
// Ties go to the earliest row; nil when there are no rows.
func TopSpendingCategory(rows []entity.BudgetComparison) *entity.BudgetComparison {
	if len(rows) == 0 {
		return nil
	}

	top := rows[0]
	for _, row := range rows[1:] {
		if row.Actual.GreaterThan(top.Actual) {
			top = row
		}
	}
	return &top
}

// OverBudgetCategories returns the rows whose difference is negative.
func OverBudgetCategories(rows []entity.BudgetComparison) []entity.BudgetComparison {
	out := make([]entity.BudgetComparison, 0)
	for _, row := range rows {
		if row.OverBudget() {
			out = append(out, row)
		}
	}
	return out
}
