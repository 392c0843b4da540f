package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("zip_code", validateZipCode)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("fee_type", validateFeeType)
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateZipCode validates a US ZIP code: 5 digits, optionally ZIP+4
func validateZipCode(fl validator.FieldLevel) bool {
	zip := fl.Field().String()
	if zip == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^\d{5}(-\d{4})?$`, zip)
	return matched
}

// validateAccountType validates that the banking setup is one of the allowed types
func validateAccountType(fl validator.FieldLevel) bool {
	accountType := strings.ToLower(fl.Field().String())
	validTypes := map[string]bool{
		"personal": true,
		"business": true,
	}
	return validTypes[accountType]
}

// validateFeeType validates that a fee type is one of the recognized categories
func validateFeeType(fl validator.FieldLevel) bool {
	feeType := strings.ToLower(fl.Field().String())
	validTypes := map[string]bool{
		"overdraft":       true,
		"maintenance":     true,
		"atm":             true,
		"wire":            true,
		"foreign":         true,
		"minimum_balance": true,
		"statement":       true,
		"ach_return":      true,
	}
	return validTypes[feeType]
}

// validateMoneyAmount validates that an amount is non-negative with at most 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().Float()

	if amount < 0 {
		return false
	}

	// Check decimal places (at most 2)
	amountStr := fmt.Sprintf("%.10f", amount)
	parts := strings.Split(amountStr, ".")
	if len(parts) > 1 {
		decimal := strings.TrimRight(parts[1], "0")
		if len(decimal) > 2 {
			return false
		}
	}

	return true
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}
