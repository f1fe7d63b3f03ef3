package ml

import (
	"fmt"
	"math"
)

// LogisticRegression is a fitted binary classifier; class 1 is fraud.
type LogisticRegression struct {
	Type         string    `json:"type"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

func (m *LogisticRegression) validate() error {
	if m.Type != ModelTypeLogisticRegression {
		return fmt.Errorf("%w: %q", ErrUnsupportedModel, m.Type)
	}
	if len(m.Coefficients) == 0 {
		return fmt.Errorf("model has no coefficients: %w", ErrArtifactNotLoaded)
	}
	return nil
}

func (m *LogisticRegression) Width() int {
	return len(m.Coefficients)
}

// PredictProba returns the probability of the fraud class.
func (m *LogisticRegression) PredictProba(x []float64) (float64, error) {
	if len(x) != len(m.Coefficients) {
		return 0, &FeatureShapeError{Component: "classifier", Expected: len(m.Coefficients), Got: len(x)}
	}

	z := m.Intercept
	for i, v := range x {
		z += m.Coefficients[i] * v
	}
	return sigmoid(z), nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	ez := math.Exp(z)
	return ez / (1 + ez)
}
