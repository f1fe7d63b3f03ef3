package validation

const (
	// Amount limits
	MinTransactionAmount = "0.01"
	MaxTransactionAmount = "1000000000"

	// String lengths
	MaxCategoricalLength = 100
)
