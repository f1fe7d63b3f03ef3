package scoring

import "github.com/shopspring/decimal"

// Amount tiers. Only the highest tier crossed applies.
var (
	tierHighThreshold   = decimal.NewFromInt(50000)
	tierMediumThreshold = decimal.NewFromInt(20000)
	tierLowThreshold    = decimal.NewFromInt(10000)

	// InsightAmountThreshold is the amount above which the amount insight is shown.
	InsightAmountThreshold = decimal.NewFromInt(20000)
)

const (
	tierHighBoost   = 0.15
	tierMediumBoost = 0.10
	tierLowBoost    = 0.05

	riskyCategoryBoost = 0.10
)

// Classification boundaries, applied to the clamped unrounded risk.
const (
	LowRiskCeiling    = 0.30
	MediumRiskCeiling = 0.70
)

// RiskyCategories lists transaction categories with higher fraud incidence.
var RiskyCategories = []string{
	"E-commerce",
	"Food Delivery",
	"Online Gaming",
	"Travel",
	"Luxury",
}

var riskyCategorySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(RiskyCategories))
	for _, c := range RiskyCategories {
		set[c] = struct{}{}
	}
	return set
}()
