package dto

import (
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// SetBudgetRequest represents the request body for creating or updating a budget.
// Amount, month and year accept JSON numbers or numeric strings.
type SetBudgetRequest struct {
	Category string           `json:"category" binding:"required,transaction_category" enums:"FOOD,RENT,TRAVEL,OTHER"`
	Amount   *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number"`
	Month    *NumericInt      `json:"month" binding:"required" swaggertype:"integer"`
	Year     *NumericInt      `json:"year" binding:"required" swaggertype:"integer"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Month    int     `json:"month"`
	Year     int     `json:"year"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:       budget.ID.String(),
		Category: string(budget.Category),
		Amount:   budget.Amount.InexactFloat64(),
		Month:    budget.Month,
		Year:     budget.Year,
	}
}

// ToBudgetListResponse converts budgets to their response form.
func ToBudgetListResponse(budgets []*entity.Budget) []BudgetResponse {
	out := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		out[i] = ToBudgetResponse(budget)
	}
	return out
}
