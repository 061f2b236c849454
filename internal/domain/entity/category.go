// Package entity defines the core business entities for the domain layer.
package entity

import "strings"

// Category is the closed set of spending categories a transaction or budget
// can belong to. It is transmitted as its literal upper-case name.
type Category string

const (
	CategoryFood   Category = "FOOD"
	CategoryRent   Category = "RENT"
	CategoryTravel Category = "TRAVEL"
	CategoryOther  Category = "OTHER"
)

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{CategoryFood, CategoryRent, CategoryTravel, CategoryOther}
}

// ParseCategory converts a raw string into a Category.
// Matching is exact; the second return value is false for unknown values.
func ParseCategory(raw string) (Category, bool) {
	category := Category(strings.TrimSpace(raw))
	if !category.IsValid() {
		return "", false
	}
	return category, true
}

// IsValid reports whether the category is a member of the enumeration.
func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryRent, CategoryTravel, CategoryOther:
		return true
	default:
		return false
	}
}

// Label returns the human-readable name used on dashboards.
func (c Category) Label() string {
	switch c {
	case CategoryFood:
		return "Food"
	case CategoryRent:
		return "Rent"
	case CategoryTravel:
		return "Travel"
	case CategoryOther:
		return "Other"
	default:
		return string(c)
	}
}

// OrDefault returns OTHER for an unset or unknown category.
func (c Category) OrDefault() Category {
	if !c.IsValid() {
		return CategoryOther
	}
	return c
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}
