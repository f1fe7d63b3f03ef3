package prediction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fraudcheck/internal/models"
	"fraudcheck/internal/services/ml"
	"fraudcheck/internal/services/scoring"
	"fraudcheck/internal/validation"
)

// Outcome is a successful scoring: the validated input and its result.
type Outcome struct {
	Input  models.TransactionInput
	Result models.ScoreResult
}

// Service runs the encoder, scorer and adjuster for one form submission.
type Service struct {
	encoder ml.Encoder
	scorer  ml.Scorer
	logger  *slog.Logger
	metrics MetricsCollector
}

func NewService(encoder ml.Encoder, scorer ml.Scorer, logger *slog.Logger, metrics MetricsCollector) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &Service{
		encoder: encoder,
		scorer:  scorer,
		logger:  logger,
		metrics: metrics,
	}
}

// Vocabulary returns the dropdown options for the form.
func (s *Service) Vocabulary() ml.Vocabulary {
	return s.encoder.Vocabulary()
}

// Score validates form and returns its adjusted risk.
func (s *Service) Score(ctx context.Context, form validation.PredictionForm) (*Outcome, error) {
	start := time.Now()

	outcome, err := s.score(form)
	if err != nil {
		kind := Kind(err)
		s.metrics.RecordError(kind)
		s.logger.WarnContext(ctx, "prediction failed", "kind", kind, "error", err)
		return nil, err
	}

	elapsed := time.Since(start)
	percent := outcome.Result.RiskPercent.InexactFloat64()
	s.metrics.RecordPrediction(outcome.Result.RiskLevel.String(), percent, elapsed)
	s.logger.InfoContext(ctx, "transaction scored",
		"risk_level", outcome.Result.RiskLevel,
		"risk_percent", percent,
		"base_probability", outcome.Result.BaseProbability,
		"category", outcome.Input.Category,
		"duration", elapsed,
	)
	return outcome, nil
}

func (s *Service) score(form validation.PredictionForm) (*Outcome, error) {
	v := validation.New()
	input := v.Prediction(form)
	if !v.Valid() {
		return nil, &InputError{Message: v.Message()}
	}

	features, err := s.BuildFeatures(input)
	if err != nil {
		return nil, err
	}

	baseProb, err := s.scorer.Score(features)
	if err != nil {
		return nil, fmt.Errorf("failed to score transaction: %w", err)
	}

	return &Outcome{
		Input:  input,
		Result: scoring.Adjust(baseProb, input),
	}, nil
}

// BuildFeatures assembles the raw vector in the order the scaler was fit on.
func (s *Service) BuildFeatures(input models.TransactionInput) ([]float64, error) {
	encoded, err := s.encoder.Encode(input.Categorical()...)
	if err != nil {
		return nil, err
	}

	features := make([]float64, 0, ml.NumericFeatures+len(encoded))
	features = append(features, input.Amount.InexactFloat64(), PlaceholderFraudScore)
	features = append(features, encoded...)

	if want := s.scorer.Width(); len(features) != want {
		return nil, &ml.FeatureShapeError{Component: "feature vector", Expected: want, Got: len(features)}
	}
	return features, nil
}
