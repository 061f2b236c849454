package transaction

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

const transactionSnapshotVersion = 1

// transactionListSnapshot is the cached payload of a transaction list query,
// stored in store order.
type transactionListSnapshot struct {
	Version      int                   `json:"v"`
	Transactions []transactionSnapshot `json:"transactions"`
}

type transactionSnapshot struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
}

func encodeTransactions(txns []*entity.Transaction) ([]byte, error) {
	snapshot := transactionListSnapshot{
		Version:      transactionSnapshotVersion,
		Transactions: make([]transactionSnapshot, len(txns)),
	}
	for i, txn := range txns {
		snapshot.Transactions[i] = transactionSnapshot{
			ID:          txn.ID,
			Amount:      txn.Amount,
			Date:        txn.Date,
			Description: txn.Description,
			Category:    string(txn.Category),
			CreatedAt:   txn.CreatedAt,
		}
	}
	return json.Marshal(snapshot)
}

func decodeTransactions(data []byte) ([]*entity.Transaction, error) {
	var snapshot transactionListSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}
	if snapshot.Version != transactionSnapshotVersion {
		return nil, fmt.Errorf("unsupported transaction snapshot version %d", snapshot.Version)
	}

	txns := make([]*entity.Transaction, len(snapshot.Transactions))
	for i, s := range snapshot.Transactions {
		category, ok := entity.ParseCategory(s.Category)
		if !ok {
			return nil, fmt.Errorf("unknown category %q in transaction snapshot", s.Category)
		}
		txns[i] = &entity.Transaction{
			ID:          s.ID,
			Amount:      s.Amount,
			Date:        s.Date.UTC(),
			Description: s.Description,
			Category:    category,
			CreatedAt:   s.CreatedAt,
		}
	}
	return txns, nil
}
