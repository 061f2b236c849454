// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Category    string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
// Rows with an unknown category are reported as OTHER.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		Amount:      m.Amount,
		Date:        m.Date.UTC(),
		Description: m.Description,
		Category:    entity.Category(m.Category).OrDefault(),
		CreatedAt:   m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(txn *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          txn.ID,
		Amount:      txn.Amount,
		Date:        txn.Date.UTC(),
		Description: txn.Description,
		Category:    string(txn.Category),
		CreatedAt:   txn.CreatedAt,
	}
}
