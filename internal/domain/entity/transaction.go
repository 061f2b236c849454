// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a single recorded money movement.
// Transactions are immutable once created.
type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal // Signed; sign convention is chosen by the caller
	Date        time.Time
	Description string
	Category    Category
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity with a generated ID.
func NewTransaction(amount decimal.Decimal, date time.Time, description string, category Category) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		Amount:      amount,
		Date:        date,
		Description: description,
		Category:    category,
		CreatedAt:   time.Now().UTC(),
	}
}

// InPeriod reports whether the transaction date falls within the given calendar month.
func (t *Transaction) InPeriod(month time.Month, year int) bool {
	return t.Date.Month() == month && t.Date.Year() == year
}
