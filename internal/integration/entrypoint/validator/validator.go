// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// TransactionCategoryTag is the binding tag accepting FOOD, RENT, TRAVEL or OTHER.
const TransactionCategoryTag = "transaction_category"

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation(TransactionCategoryTag, validateTransactionCategory)
	}
}

func validateTransactionCategory(fl validator.FieldLevel) bool {
	_, ok := entity.ParseCategory(fl.Field().String())
	return ok
}
