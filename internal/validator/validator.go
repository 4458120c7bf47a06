// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"pennywise/internal/models"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("base_frequency", validateBaseFrequency)
		_ = v.RegisterValidation("cycle_months", validateCycleMonths)
	}
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "expense", "budget":
		return true
	}
	return false
}

func validateBaseFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "daily", "monthly", "bimonthly":
		return true
	}
	return false
}

func validateCycleMonths(fl validator.FieldLevel) bool {
	return models.ValidCycleMonths(int(fl.Field().Int()))
}
