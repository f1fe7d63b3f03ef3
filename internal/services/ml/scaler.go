package ml

import "fmt"

// StandardScaler applies (x - mean) / scale per column.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s *StandardScaler) validate() error {
	if len(s.Mean) == 0 {
		return fmt.Errorf("scaler has no columns: %w", ErrArtifactNotLoaded)
	}
	if len(s.Mean) != len(s.Scale) {
		return &FeatureShapeError{Component: "scaler scale", Expected: len(s.Mean), Got: len(s.Scale)}
	}
	return nil
}

func (s *StandardScaler) Width() int {
	return len(s.Mean)
}

func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.Mean) {
		return nil, &FeatureShapeError{Component: "scaler", Expected: len(s.Mean), Got: len(x)}
	}

	out := make([]float64, len(x))
	for i, v := range x {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}
	return out, nil
}
