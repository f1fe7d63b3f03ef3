package prediction

import (
	"time"
)

// MetricsCollector receives scoring outcomes.
type MetricsCollector interface {
	RecordPrediction(level string, riskPercent float64, d time.Duration)
	RecordError(kind string)
}
