package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Validator collects field errors
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records the first error for a field
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks if a string is not blank
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "is required")
}

// MaxLength checks if a string has at most n characters
func (v *Validator) MaxLength(field string, value string, n int) {
	v.Check(len(value) <= n, field, fmt.Sprintf("must not be more than %d characters long", n))
}

// Decimal parses value as a decimal number, recording an error on failure.
func (v *Validator) Decimal(field, value string) decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		v.AddError(field, "is required")
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		v.AddError(field, "must be a number")
		return decimal.Zero
	}
	return d
}

// Range checks if a number is between min and max, inclusive
func (v *Validator) Range(field string, value, min, max decimal.Decimal) {
	v.Check(value.GreaterThanOrEqual(min) && value.LessThanOrEqual(max), field,
		fmt.Sprintf("must be between %s and %s", min.String(), max.String()))
}

// Message joins all errors as "field message" pairs in field order.
func (v *Validator) Message() string {
	fields := make([]string, 0, len(v.Errors))
	for f := range v.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + " " + v.Errors[f]
	}
	return strings.Join(parts, "; ")
}
