package models

import "github.com/shopspring/decimal"

// RiskLevel is the tri-level classification shown to the operator.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "Low"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelHigh   RiskLevel = "High"
)

func (r RiskLevel) String() string {
	return string(r)
}

// ScoreResult is the adjusted outcome of one scoring request.
type ScoreResult struct {
	BaseProbability float64         `json:"base_probability"`
	Risk            float64         `json:"risk"` // clamped, unrounded
	RiskPercent     decimal.Decimal `json:"risk_percent"`
	RiskLevel       RiskLevel       `json:"risk_level"`
	Color           string          `json:"color"`
	Prediction      string          `json:"prediction"`
	Advice          string          `json:"advice"`
	Insights        []string        `json:"insights"`
}

// HistoryEntry is one row of a session's recent activity.
type HistoryEntry struct {
	Amount      decimal.Decimal `json:"amount"`
	Bank        string          `json:"bank"`
	Category    string          `json:"category"`
	RiskPercent decimal.Decimal `json:"risk_percent"`
	RiskLevel   RiskLevel       `json:"risk_level"`
}

// NewHistoryEntry builds the history row for a scored transaction.
func NewHistoryEntry(tx TransactionInput, res ScoreResult) HistoryEntry {
	return HistoryEntry{
		Amount:      tx.Amount,
		Bank:        tx.Bank,
		Category:    tx.Category,
		RiskPercent: res.RiskPercent,
		RiskLevel:   res.RiskLevel,
	}
}
