package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount accepts a JSON number or a numeric string.
type CreateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number"`
	Date        string           `json:"date" binding:"required" example:"2024-03-15T00:00:00Z"`
	Description string           `json:"description" binding:"required,max=255"`
	Category    string           `json:"category" binding:"required,transaction_category" enums:"FOOD,RENT,TRAVEL,OTHER"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID.String(),
		Amount:      txn.Amount.InexactFloat64(),
		Date:        txn.Date.UTC().Format(time.RFC3339),
		Description: txn.Description,
		Category:    string(txn.Category),
	}
}

// ToTransactionListResponse converts transactions to their response form.
// An empty list encodes as [] rather than null.
func ToTransactionListResponse(txns []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		out[i] = ToTransactionResponse(txn)
	}
	return out
}
