// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

const (
	cacheHeader = "X-Cache"
	cacheHit    = "HIT"
	cacheMiss   = "MISS"
)

// setCacheHeader reports whether the payload came from the cache.
func setCacheHeader(ctx *gin.Context, fromCache bool) {
	if fromCache {
		ctx.Header(cacheHeader, cacheHit)
		return
	}
	ctx.Header(cacheHeader, cacheMiss)
}

// queryInt reads an integer query parameter, truncating fractions. Absent
// yields nil; a value that is not a number yields 0, which no month or year
// range accepts.
func queryInt(ctx *gin.Context, name string) *int {
	raw, ok := ctx.GetQuery(name)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	value, err := dto.ParseNumericInt(raw)
	if err != nil {
		value = 0
	}
	return &value
}

// parseDate accepts RFC3339 timestamps and plain YYYY-MM-DD dates.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// failedFields returns the struct field names rejected by the binding
// validator, and false when err is not a validation failure (e.g. bad JSON).
func failedFields(err error) (map[string]string, bool) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, false
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields, true
}
