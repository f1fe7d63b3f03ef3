// Package scoring turns a classifier's fraud probability into the risk
// result shown to the operator.
//
// The adjustment is additive: an amount tier boost and a category boost are
// stacked on the base probability, the sum is clamped to [0, 1], and the
// clamped value is bucketed into Low, Medium or High. Bucketing uses the
// unrounded value; only the display percentage is rounded.
package scoring

import (
	"fmt"
	"math"

	"fraudcheck/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Adjust applies the business rules to baseProb for the given transaction.
// It is pure: identical inputs always produce identical results.
func Adjust(baseProb float64, tx models.TransactionInput) models.ScoreResult {
	risk := baseProb
	risk += AmountBoost(tx.Amount)
	risk += CategoryBoost(tx.Category)
	risk = clamp(risk)

	level := Classify(risk)
	band := bands[level]

	return models.ScoreResult{
		BaseProbability: baseProb,
		Risk:            risk,
		RiskPercent:     Percent(risk),
		RiskLevel:       level,
		Color:           band.color,
		Prediction:      band.prediction,
		Advice:          band.advice,
		Insights:        Insights(tx),
	}
}

// AmountBoost returns the probability delta for the transaction amount.
func AmountBoost(amount decimal.Decimal) float64 {
	switch {
	case amount.GreaterThan(tierHighThreshold):
		return tierHighBoost
	case amount.GreaterThan(tierMediumThreshold):
		return tierMediumBoost
	case amount.GreaterThan(tierLowThreshold):
		return tierLowBoost
	default:
		return 0
	}
}

// CategoryBoost returns the probability delta for the transaction category.
func CategoryBoost(category string) float64 {
	if IsRiskyCategory(category) {
		return riskyCategoryBoost
	}
	return 0
}

// IsRiskyCategory reports whether category is in RiskyCategories.
// Matching is exact and case-sensitive.
func IsRiskyCategory(category string) bool {
	_, ok := riskyCategorySet[category]
	return ok
}

// Classify buckets a clamped risk value.
func Classify(risk float64) models.RiskLevel {
	switch {
	case risk < LowRiskCeiling:
		return models.RiskLevelLow
	case risk < MediumRiskCeiling:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelHigh
	}
}

// Percent converts a risk value to a percentage rounded to two places.
func Percent(risk float64) decimal.Decimal {
	return decimal.NewFromFloat(risk).Mul(hundred).Round(2)
}

// Insights returns the ordered explanation lines for tx.
func Insights(tx models.TransactionInput) []string {
	insights := make([]string, 0, 3)
	if tx.Amount.GreaterThan(InsightAmountThreshold) {
		insights = append(insights, "High transaction amount increases risk.")
	}
	if IsRiskyCategory(tx.Category) {
		insights = append(insights, fmt.Sprintf("'%s' category has higher fraud incidence.", tx.Category))
	}
	insights = append(insights, fmt.Sprintf("Regional monitoring applied for %s.", tx.State))
	return insights
}

func clamp(risk float64) float64 {
	if math.IsNaN(risk) {
		return 0
	}
	return math.Max(0, math.Min(risk, 1))
}
