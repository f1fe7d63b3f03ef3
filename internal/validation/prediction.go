package validation

import (
	"fraudcheck/internal/models"

	"github.com/shopspring/decimal"
)

// PredictionForm is the raw form submitted to the scoring endpoint.
type PredictionForm struct {
	Amount   string `form:"amount"`
	CardType string `form:"card_type"`
	Bank     string `form:"bank"`
	Category string `form:"category"`
	State    string `form:"state"`
}

var (
	minAmount = decimal.RequireFromString(MinTransactionAmount)
	maxAmount = decimal.RequireFromString(MaxTransactionAmount)
)

// Prediction validates f and converts it to a transaction input.
// Categorical values are only checked for presence; vocabulary membership
// is decided by the encoder.
func (v *Validator) Prediction(f PredictionForm) models.TransactionInput {
	amount := v.Decimal("amount", f.Amount)
	if _, failed := v.Errors["amount"]; !failed {
		v.Range("amount", amount, minAmount, maxAmount)
	}

	categorical := []struct {
		field string
		value string
	}{
		{"card_type", f.CardType},
		{"bank", f.Bank},
		{"category", f.Category},
		{"state", f.State},
	}
	for _, c := range categorical {
		v.Required(c.field, c.value)
		v.MaxLength(c.field, c.value, MaxCategoricalLength)
	}

	return models.TransactionInput{
		Amount:   amount,
		CardType: f.CardType,
		Bank:     f.Bank,
		Category: f.Category,
		State:    f.State,
	}
}
