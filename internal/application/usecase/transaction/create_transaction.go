// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Amount      *decimal.Decimal
	Date        *time.Time
	Description string
	Category    string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
// Cached transaction lists are not invalidated.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	description := strings.TrimSpace(input.Description)

	if input.Amount == nil || input.Date == nil || description == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"amount, date and description are required",
			domainerror.ErrMissingTransactionFields,
		)
	}

	if input.Amount.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !entity.AmountFitsStorage(*input.Amount) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must have at most 2 decimal places and be below 10^13",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	category, ok := entity.ParseCategory(input.Category)
	if !ok {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionCategory,
			"category must be one of FOOD, RENT, TRAVEL, OTHER",
			domainerror.ErrInvalidTransactionCategory,
		)
	}

	txn := entity.NewTransaction(*input.Amount, input.Date.UTC(), description, category)
	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionPersistence,
			"failed to create transaction",
			err,
		)
	}

	slog.Info("Transaction created",
		"transaction_id", txn.ID,
		"category", txn.Category,
	)

	return &CreateTransactionOutput{Transaction: txn}, nil
}
