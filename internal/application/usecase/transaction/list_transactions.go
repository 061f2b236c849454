// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// ListTransactionsInput represents the input for listing transactions.
// The month filter applies only when both Month and Year are set and valid.
type ListTransactionsInput struct {
	Month         *int
	Year          *int
	SortField     string
	SortDirection string
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Period       *valueobject.Period // Nil when unfiltered
	FromCache    bool
}

// ListTransactionsUseCase serves transaction lists through the cache.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.Cache
	ttl             time.Duration
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository, cache adapter.Cache, ttl time.Duration) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
		ttl:             ttl,
	}
}

// Execute returns transactions newest first, or in the requested sort order.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	period := periodFilter(input.Month, input.Year)
	key := valueobject.TransactionsCacheKey(period)

	txns, fromCache, err := uc.load(ctx, key, period)
	if err != nil {
		return nil, err
	}

	if field, ok := entity.ParseTransactionSortField(input.SortField); ok {
		txns = entity.SortTransactions(txns, field, entity.ParseSortDirection(input.SortDirection))
	}

	return &ListTransactionsOutput{
		Transactions: txns,
		Period:       period,
		FromCache:    fromCache,
	}, nil
}

func (uc *ListTransactionsUseCase) load(ctx context.Context, key string, period *valueobject.Period) ([]*entity.Transaction, bool, error) {
	if data, ok := uc.cache.Get(ctx, key); ok {
		txns, err := decodeTransactions(data)
		if err == nil {
			slog.Debug("Transactions served from cache", "key", key, "count", len(txns))
			return txns, true, nil
		}
		slog.Warn("Discarding unreadable transaction snapshot", "key", key, "error", err)
	}

	var (
		txns []*entity.Transaction
		err  error
	)
	if period != nil {
		start, end := period.Bounds()
		txns, err = uc.transactionRepo.FindByDateRange(ctx, start, end)
	} else {
		txns, err = uc.transactionRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, false, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionPersistence,
			"failed to fetch transactions",
			err,
		)
	}

	if data, err := encodeTransactions(txns); err != nil {
		slog.Warn("Failed to encode transaction snapshot", "key", key, "error", err)
	} else {
		uc.cache.Set(ctx, key, data, uc.ttl)
	}

	return txns, false, nil
}

// periodFilter returns nil unless both parts are present and in range.
func periodFilter(month, year *int) *valueobject.Period {
	if month == nil || year == nil {
		return nil
	}
	period := valueobject.NewPeriod(*month, *year)
	if !period.ValidMonth() || !period.ValidYear() {
		return nil
	}
	return &period
}
