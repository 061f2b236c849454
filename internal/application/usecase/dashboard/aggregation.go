// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// RecentTransactionsLimit is the number of transactions shown on the overview.
const RecentTransactionsLimit = 5

// Display aggregates sum absolute amounts so income and expenses both count
// as activity. Budget comparisons use signed sums instead (see CompareBudgets).

// MonthlySeries returns one entry per month of now's year, January first,
// labelled "Jan 2006". Months without transactions report zero.
func MonthlySeries(txns []*entity.Transaction, now time.Time) []entity.MonthlyTotal {
	totals := make(map[valueobject.Period]decimal.Decimal)
	for _, txn := range txns {
		period := valueobject.PeriodOf(txn.Date)
		totals[period] = totals[period].Add(txn.Amount.Abs())
	}

	series := make([]entity.MonthlyTotal, 12)
	for i := range series {
		period := valueobject.NewPeriod(i+1, now.Year())
		series[i] = entity.MonthlyTotal{
			Month:  period.Label(),
			Amount: totals[period],
		}
	}
	return series
}

// CategoryTotals returns the absolute spending of every category in
// enumeration order, including categories without transactions.
func CategoryTotals(txns []*entity.Transaction) []entity.CategoryTotal {
	totals := make(map[entity.Category]decimal.Decimal)
	for _, txn := range txns {
		category := txn.Category.OrDefault()
		totals[category] = totals[category].Add(txn.Amount.Abs())
	}

	categories := entity.AllCategories()
	out := make([]entity.CategoryTotal, len(categories))
	for i, category := range categories {
		out[i] = entity.CategoryTotal{
			Category: category,
			Label:    category.Label(),
			Amount:   totals[category],
		}
	}
	return out
}

// CurrentMonthTotal sums the absolute amounts dated in now's calendar month.
func CurrentMonthTotal(txns []*entity.Transaction, now time.Time) decimal.Decimal {
	current := valueobject.PeriodOf(now)

	total := decimal.Zero
	for _, txn := range txns {
		if current.Contains(txn.Date) {
			total = total.Add(txn.Amount.Abs())
		}
	}
	return total
}

// RecentTransactions returns up to n transactions, newest first.
// The input slice is not modified.
func RecentTransactions(txns []*entity.Transaction, n int) []*entity.Transaction {
	sorted := make([]*entity.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if n < 0 {
		n = 0
	}
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
