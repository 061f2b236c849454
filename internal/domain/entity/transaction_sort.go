package entity

import (
	"sort"
	"strings"
)

// TransactionSortField names a displayed transaction column.
type TransactionSortField string

const (
	SortByID          TransactionSortField = "id"
	SortByDate        TransactionSortField = "date"
	SortByAmount      TransactionSortField = "amount"
	SortByDescription TransactionSortField = "description"
	SortByCategory    TransactionSortField = "category"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseTransactionSortField returns the field for raw, or false when raw
// does not name a sortable column.
func ParseTransactionSortField(raw string) (TransactionSortField, bool) {
	field := TransactionSortField(strings.ToLower(strings.TrimSpace(raw)))
	switch field {
	case SortByID, SortByDate, SortByAmount, SortByDescription, SortByCategory:
		return field, true
	default:
		return "", false
	}
}

// ParseSortDirection defaults to ascending for anything but "desc".
func ParseSortDirection(raw string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(raw), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// SortTransactions returns a sorted copy of txns. Text columns compare
// lexicographically, amount and date numerically. Equal keys keep their
// input order. An unknown field returns the copy unsorted.
func SortTransactions(txns []*Transaction, field TransactionSortField, direction SortDirection) []*Transaction {
	sorted := make([]*Transaction, len(txns))
	copy(sorted, txns)

	var less func(a, b *Transaction) bool
	switch field {
	case SortByID:
		less = func(a, b *Transaction) bool { return a.ID.String() < b.ID.String() }
	case SortByDate:
		less = func(a, b *Transaction) bool { return a.Date.Before(b.Date) }
	case SortByAmount:
		less = func(a, b *Transaction) bool { return a.Amount.LessThan(b.Amount) }
	case SortByDescription:
		less = func(a, b *Transaction) bool { return a.Description < b.Description }
	case SortByCategory:
		less = func(a, b *Transaction) bool { return a.Category < b.Category }
	default:
		return sorted
	}

	if direction == SortDesc {
		asc := less
		less = func(a, b *Transaction) bool { return asc(b, a) }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}
