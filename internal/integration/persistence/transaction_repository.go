// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create inserts a new transaction.
func (r *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	txnModel := model.TransactionFromEntity(txn)
	result := r.db.WithContext(ctx).Create(txnModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindAll retrieves every transaction, newest first.
func (r *transactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	var txnModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&txnModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(txnModels), nil
}

// FindByDateRange retrieves transactions dated within [start, end), newest first.
func (r *transactionRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Transaction, error) {
	var txnModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start.UTC(), end.UTC()).
		Order("date DESC").
		Find(&txnModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(txnModels), nil
}

func toTransactionEntities(models []model.TransactionModel) []*entity.Transaction {
	txns := make([]*entity.Transaction, len(models))
	for i := range models {
		txns[i] = models[i].ToEntity()
	}
	return txns
}
