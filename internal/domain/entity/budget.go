// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget caps spending for one category in one calendar month.
// (Category, Month, Year) is the natural key; at most one budget exists per triple.
type Budget struct {
	ID        uuid.UUID
	Category  Category
	Amount    decimal.Decimal
	Month     int
	Year      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity with a generated ID.
func NewBudget(category Category, amount decimal.Decimal, month, year int) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        uuid.New(),
		Category:  category,
		Amount:    amount,
		Month:     month,
		Year:      year,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetAmount overwrites the budgeted amount in place.
func (b *Budget) SetAmount(amount decimal.Decimal) {
	b.Amount = amount
	b.UpdatedAt = time.Now().UTC()
}
