// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindAll retrieves every transaction ordered by date descending.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindByDateRange retrieves transactions with start <= date < end,
	// ordered by date descending.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Transaction, error)
}
