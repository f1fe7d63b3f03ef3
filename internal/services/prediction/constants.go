package prediction

// PlaceholderFraudScore fills the fraud-score column the model was trained
// with. The live score is not available at inference time; 50 is the
// neutral midpoint of its 0-100 range. Changing it shifts every prediction.
const PlaceholderFraudScore = 50.0

// Error kinds used as metric labels.
const (
	ErrorKindInput           = "invalid_input"
	ErrorKindUnknownCategory = "unknown_category"
	ErrorKindFeatureShape    = "feature_shape"
	ErrorKindInternal        = "internal"
)
