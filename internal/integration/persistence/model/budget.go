// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Category  string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_budget_natural_key,priority:1"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Month     int             `gorm:"not null;uniqueIndex:idx_budget_natural_key,priority:3"`
	Year      int             `gorm:"not null;uniqueIndex:idx_budget_natural_key,priority:2"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:        m.ID,
		Category:  entity.Category(m.Category).OrDefault(),
		Amount:    m.Amount,
		Month:     m.Month,
		Year:      m.Year,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:        budget.ID,
		Category:  string(budget.Category),
		Amount:    budget.Amount,
		Month:     budget.Month,
		Year:      budget.Year,
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}
