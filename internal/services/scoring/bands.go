package scoring

import "fraudcheck/internal/models"

type band struct {
	color      string
	prediction string
	advice     string
}

var bands = map[models.RiskLevel]band{
	models.RiskLevelLow: {
		color:      "green",
		prediction: "Transaction appears Legitimate",
		advice:     "This transaction is safe.",
	},
	models.RiskLevelMedium: {
		color:      "orange",
		prediction: "Transaction may be Risky",
		advice:     "Verify transaction details carefully.",
	},
	models.RiskLevelHigh: {
		color:      "red",
		prediction: "Potential Fraud Detected",
		advice:     "High risk! Contact your bank immediately.",
	},
}
