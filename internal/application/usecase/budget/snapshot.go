package budget

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// budgetSnapshotVersion is bumped whenever the cached layout changes so stale
// entries written by an older binary decode as misses.
const budgetSnapshotVersion = 1

// budgetListSnapshot is the cached payload of a budget list query.
type budgetListSnapshot struct {
	Version int              `json:"v"`
	Budgets []budgetSnapshot `json:"budgets"`
}

type budgetSnapshot struct {
	ID        uuid.UUID       `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func encodeBudgets(budgets []*entity.Budget) ([]byte, error) {
	snapshot := budgetListSnapshot{
		Version: budgetSnapshotVersion,
		Budgets: make([]budgetSnapshot, len(budgets)),
	}
	for i, b := range budgets {
		snapshot.Budgets[i] = budgetSnapshot{
			ID:        b.ID,
			Category:  string(b.Category),
			Amount:    b.Amount,
			Month:     b.Month,
			Year:      b.Year,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
		}
	}
	return json.Marshal(snapshot)
}

func decodeBudgets(data []byte) ([]*entity.Budget, error) {
	var snapshot budgetListSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}
	if snapshot.Version != budgetSnapshotVersion {
		return nil, fmt.Errorf("unsupported budget snapshot version %d", snapshot.Version)
	}

	budgets := make([]*entity.Budget, len(snapshot.Budgets))
	for i, s := range snapshot.Budgets {
		category, ok := entity.ParseCategory(s.Category)
		if !ok {
			return nil, fmt.Errorf("unknown category %q in budget snapshot", s.Category)
		}
		budgets[i] = &entity.Budget{
			ID:        s.ID,
			Category:  category,
			Amount:    s.Amount,
			Month:     s.Month,
			Year:      s.Year,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		}
	}
	return budgets, nil
}
