// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// MonthlyTotal is the absolute spending of one calendar month.
type MonthlyTotal struct {
	Month  string // "Jan 2006" layout
	Amount decimal.Decimal
}

// CategoryTotal is the absolute spending of one category.
type CategoryTotal struct {
	Category Category
	Label    string
	Amount   decimal.Decimal
}

// BudgetComparison compares a budget with the signed spending of its period.
type BudgetComparison struct {
	Category   Category
	Budget     decimal.Decimal
	Actual     decimal.Decimal
	Difference decimal.Decimal // Budget - Actual
}

// OverBudget reports whether actual spending exceeded the budget.
func (c BudgetComparison) OverBudget() bool {
	return c.Difference.IsNegative()
}
