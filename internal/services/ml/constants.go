package ml

// Feature names as fitted by the training pipeline, in encoder order.
const (
	FeatureCardType = "Card Type"
	FeatureBank     = "Bank"
	FeatureCategory = "Transaction Category"
	FeatureState    = "State"
)

// Artifact file names inside the model directory.
const (
	EncoderFile = "encoder.json"
	ScalerFile  = "scaler.json"
	ModelFile   = "model.json"
)

const ModelTypeLogisticRegression = "logistic_regression"

// NumericFeatures is the count of numeric columns preceding the one-hot block:
// amount and the fraud score placeholder.
const NumericFeatures = 2
