// Package adaptertest provides in-memory adapter implementations for tests.
package adaptertest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// MemoryCache is a map-backed adapter.Cache. With Down set it behaves like an
// unreachable store: every Get misses and every Set fails.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	TTLs    map[string]time.Duration
	Down    bool
	Hits    int
	Misses  int
	Writes  int
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string][]byte),
		TTLs:    make(map[string]time.Duration),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.entries[key]
	if c.Down || !ok {
		c.Misses++
		return nil, false
	}
	c.Hits++
	return data, true
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Down {
		return false
	}
	c.entries[key] = value
	c.TTLs[key] = ttl
	c.Writes++
	return true
}

func (c *MemoryCache) Available() bool { return !c.Down }

func (c *MemoryCache) Ping(context.Context) error {
	if c.Down {
		return domainerror.ErrCacheUnavailable
	}
	return nil
}

// Put stores raw bytes under key, bypassing the counters.
func (c *MemoryCache) Put(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Has reports whether key is stored.
func (c *MemoryCache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// MemoryBudgetRepository is a slice-backed adapter.BudgetRepository that
// enforces the (category, month, year) uniqueness of the real store.
type MemoryBudgetRepository struct {
	mu      sync.Mutex
	budgets []*entity.Budget
	Err     error

	// BeforeCreate runs ahead of every Create, outside the lock.
	BeforeCreate func()

	FindByPeriodCalls int
}

// NewMemoryBudgetRepository creates a repository seeded with budgets.
func NewMemoryBudgetRepository(budgets ...*entity.Budget) *MemoryBudgetRepository {
	return &MemoryBudgetRepository{budgets: budgets}
}

func (r *MemoryBudgetRepository) Create(_ context.Context, budget *entity.Budget) error {
	if r.BeforeCreate != nil {
		r.BeforeCreate()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	for _, b := range r.budgets {
		if sameKey(b, budget) {
			return domainerror.ErrBudgetAlreadyExists
		}
	}
	stored := *budget
	r.budgets = append(r.budgets, &stored)
	return nil
}

func (r *MemoryBudgetRepository) Update(_ context.Context, budget *entity.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	for i, b := range r.budgets {
		if b.ID == budget.ID {
			stored := *budget
			r.budgets[i] = &stored
			return nil
		}
	}
	return nil
}

func (r *MemoryBudgetRepository) FindByNaturalKey(_ context.Context, category entity.Category, period valueobject.Period) (*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	for _, b := range r.budgets {
		if b.Category == category && b.Month == period.Month && b.Year == period.Year {
			found := *b
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryBudgetRepository) FindByPeriod(_ context.Context, period valueobject.Period) ([]*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.FindByPeriodCalls++
	if r.Err != nil {
		return nil, r.Err
	}

	var out []*entity.Budget
	for _, b := range r.budgets {
		if b.Month == period.Month && b.Year == period.Year {
			found := *b
			out = append(out, &found)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

// Insert stores a budget directly, bypassing uniqueness and hooks.
func (r *MemoryBudgetRepository) Insert(budget *entity.Budget) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.budgets = append(r.budgets, budget)
}

// All returns a copy of every stored budget.
func (r *MemoryBudgetRepository) All() []*entity.Budget {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Budget, len(r.budgets))
	copy(out, r.budgets)
	return out
}

func sameKey(a, b *entity.Budget) bool {
	return a.Category == b.Category && a.Month == b.Month && a.Year == b.Year
}

// MemoryTransactionRepository is a slice-backed adapter.TransactionRepository.
type MemoryTransactionRepository struct {
	mu   sync.Mutex
	txns []*entity.Transaction
	Err  error

	Reads   int
	Created int
}

// NewMemoryTransactionRepository creates a repository seeded with txns.
func NewMemoryTransactionRepository(txns ...*entity.Transaction) *MemoryTransactionRepository {
	return &MemoryTransactionRepository{txns: txns}
}

func (r *MemoryTransactionRepository) Create(_ context.Context, txn *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	r.txns = append(r.txns, txn)
	r.Created++
	return nil
}

func (r *MemoryTransactionRepository) FindAll(context.Context) ([]*entity.Transaction, error) {
	return r.find(func(*entity.Transaction) bool { return true })
}

func (r *MemoryTransactionRepository) FindByDateRange(_ context.Context, start, end time.Time) ([]*entity.Transaction, error) {
	return r.find(func(txn *entity.Transaction) bool {
		return !txn.Date.Before(start) && txn.Date.Before(end)
	})
}

func (r *MemoryTransactionRepository) find(match func(*entity.Transaction) bool) ([]*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Reads++
	if r.Err != nil {
		return nil, r.Err
	}

	var out []*entity.Transaction
	for _, txn := range r.txns {
		if match(txn) {
			out = append(out, txn)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

var (
	_ adapter.Cache                 = (*MemoryCache)(nil)
	_ adapter.BudgetRepository      = (*MemoryBudgetRepository)(nil)
	_ adapter.TransactionRepository = (*MemoryTransactionRepository)(nil)
)
