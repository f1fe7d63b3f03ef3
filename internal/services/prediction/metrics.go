package prediction

import "time"

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordPrediction(string, float64, time.Duration) {}
func (n *NoopMetricsCollector) RecordError(string)                              {}
