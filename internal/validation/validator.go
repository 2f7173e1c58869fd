package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
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

	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("money_target", validateMoneyTarget)
	_ = v.RegisterValidation("transaction_kind", validateTransactionKind)

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

var moneyFormat = regexp.MustCompile(`^-?\d+(\.\d{1,2})?$`)

// validateMoneyAmount validates a strictly positive money string with at most
// two decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if !moneyFormat.MatchString(raw) {
		return false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	return amount.IsPositive()
}

// validateMoneyTarget validates a non-negative money string; zero is a legal
// goal target
func validateMoneyTarget(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if !moneyFormat.MatchString(raw) {
		return false
	}

	target, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	return !target.IsNegative()
}

// validateTransactionKind validates the entry direction
func validateTransactionKind(fl validator.FieldLevel) bool {
	kind := fl.Field().String()
	return kind == "income" || kind == "expense"
}
