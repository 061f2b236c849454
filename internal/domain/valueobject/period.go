// Package valueobject contains immutable domain value types.
package valueobject

import (
	"fmt"
	"strconv"
	"time"
)

// Year bounds accepted for budgeting periods.
const (
	MinYear = 2000
	MaxYear = 2100
)

// Cache key prefixes per query shape.
const (
	budgetsKeyPrefix      = "budgets"
	transactionsKeyPrefix = "transactions"
	unfilteredKeyPart     = "all"
)

// Period is a calendar month of a given year.
type Period struct {
	Month int
	Year  int
}

// NewPeriod returns a Period for the given month and year.
func NewPeriod(month, year int) Period {
	return Period{Month: month, Year: year}
}

// PeriodOf returns the Period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// ValidMonth reports whether the month is within 1-12.
func (p Period) ValidMonth() bool {
	return p.Month >= 1 && p.Month <= 12
}

// ValidYear reports whether the year is within the accepted range.
func (p Period) ValidYear() bool {
	return p.Year >= MinYear && p.Year <= MaxYear
}

// Bounds returns the half-open range [first day of month, first day of next month) in UTC.
func (p Period) Bounds() (start, end time.Time) {
	start = time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end
}

// Contains reports whether t falls within the period.
func (p Period) Contains(t time.Time) bool {
	return int(t.Month()) == p.Month && t.Year() == p.Year
}

// Label formats the period as "Jan 2006".
func (p Period) Label() string {
	start, _ := p.Bounds()
	return start.Format("Jan 2006")
}

// String implements fmt.Stringer.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// BudgetsCacheKey returns the cache key for the budget list of a period,
// e.g. "budgets:2024:3".
func BudgetsCacheKey(p Period) string {
	return budgetsKeyPrefix + ":" + strconv.Itoa(p.Year) + ":" + strconv.Itoa(p.Month)
}

// TransactionsCacheKey returns the cache key for a transaction list.
// A nil period stands for the unfiltered list and uses a literal "all" for
// both parts, so filtered and unfiltered lists never share a key.
func TransactionsCacheKey(p *Period) string {
	if p == nil {
		return transactionsKeyPrefix + ":" + unfilteredKeyPart + ":" + unfilteredKeyPart
	}
	return transactionsKeyPrefix + ":" + strconv.Itoa(p.Year) + ":" + strconv.Itoa(p.Month)
}
