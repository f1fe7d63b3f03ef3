package models

import "github.com/shopspring/decimal"

// TransactionInput is a validated scoring request.
// Values are set once by the prediction service and never mutated.
type TransactionInput struct {
	Amount   decimal.Decimal `json:"amount"`
	CardType string          `json:"card_type"`
	Bank     string          `json:"bank"`
	Category string          `json:"category"`
	State    string          `json:"state"`
}

// Categorical returns the categorical fields in encoder feature order.
func (t TransactionInput) Categorical() []string {
	return []string{t.CardType, t.Bank, t.Category, t.State}
}
