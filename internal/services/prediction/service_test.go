package prediction

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fraudcheck/internal/models"
	"fraudcheck/internal/services/ml"
	"fraudcheck/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEncoder struct {
	mock.Mock
}

type MockScorer struct {
	mock.Mock
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockEncoder) Encode(values ...string) ([]float64, error) {
	args := m.Called(values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockEncoder) Vocabulary() ml.Vocabulary {
	args := m.Called()
	return args.Get(0).(ml.Vocabulary)
}

func (m *MockEncoder) Width() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockScorer) Score(features []float64) (float64, error) {
	args := m.Called(features)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockScorer) Width() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockMetrics) RecordPrediction(level string, riskPercent float64, d time.Duration) {
	m.Called(level, riskPercent, d)
}

func (m *MockMetrics) RecordError(kind string) {
	m.Called(kind)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func travelForm() validation.PredictionForm {
	return validation.PredictionForm{
		Amount:   "60000",
		CardType: "Visa",
		Bank:     "SBI",
		Category: "Travel",
		State:    "Kerala",
	}
}

func TestService_Score(t *testing.T) {
	encoder := new(MockEncoder)
	scorer := new(MockScorer)
	metrics := new(MockMetrics)

	onehot := []float64{0, 1, 1, 0, 0, 1, 1, 0}
	encoder.On("Encode", []string{"Visa", "SBI", "Travel", "Kerala"}).Return(onehot, nil)
	scorer.On("Width").Return(10)
	want := append([]float64{60000, PlaceholderFraudScore}, onehot...)
	scorer.On("Score", want).Return(0.10, nil)
	metrics.On("RecordPrediction", "Medium", 35.0, mock.Anything).Return()

	svc := NewService(encoder, scorer, quietLogger(), metrics)
	outcome, err := svc.Score(context.Background(), travelForm())

	require.NoError(t, err)
	assert.Equal(t, "35.00", outcome.Result.RiskPercent.StringFixed(2))
	assert.Equal(t, models.RiskLevelMedium, outcome.Result.RiskLevel)
	assert.Equal(t, "Travel", outcome.Input.Category)
	assert.Len(t, outcome.Result.Insights, 3)

	encoder.AssertExpectations(t)
	scorer.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestService_ScoreErrors(t *testing.T) {
	tests := []struct {
		name      string
		form      func() validation.PredictionForm
		setupMock func(*MockEncoder, *MockScorer)
		kind      string
		target    error
		message   string
	}{
		{
			name: "malformed amount",
			form: func() validation.PredictionForm {
				f := travelForm()
				f.Amount = "sixty"
				return f
			},
			kind:    ErrorKindInput,
			target:  ErrInvalidInput,
			message: "Error: amount must be a number",
		},
		{
			name: "missing field",
			form: func() validation.PredictionForm {
				f := travelForm()
				f.State = ""
				return f
			},
			kind:    ErrorKindInput,
			target:  ErrInvalidInput,
			message: "Error: state is required",
		},
		{
			name: "unknown category",
			form: travelForm,
			setupMock: func(e *MockEncoder, s *MockScorer) {
				e.On("Encode", mock.Anything).Return(nil, &ml.UnknownCategoryError{Feature: ml.FeatureCategory, Value: "Travel"})
			},
			kind:    ErrorKindUnknownCategory,
			target:  ml.ErrUnknownCategory,
			message: `Error: "Travel" is not a known Transaction Category`,
		},
		{
			name: "vector width mismatch",
			form: travelForm,
			setupMock: func(e *MockEncoder, s *MockScorer) {
				e.On("Encode", mock.Anything).Return([]float64{1, 0, 1}, nil)
				s.On("Width").Return(10)
			},
			kind:    ErrorKindFeatureShape,
			target:  ml.ErrFeatureShape,
			message: "Error: the scoring model could not process this transaction",
		},
		{
			name: "scorer rejects vector",
			form: travelForm,
			setupMock: func(e *MockEncoder, s *MockScorer) {
				e.On("Encode", mock.Anything).Return([]float64{1}, nil)
				s.On("Width").Return(3)
				s.On("Score", mock.Anything).Return(0.0, &ml.FeatureShapeError{Component: "scaler", Expected: 4, Got: 3})
			},
			kind:    ErrorKindFeatureShape,
			target:  ml.ErrFeatureShape,
			message: "Error: the scoring model could not process this transaction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoder := new(MockEncoder)
			scorer := new(MockScorer)
			metrics := new(MockMetrics)
			if tt.setupMock != nil {
				tt.setupMock(encoder, scorer)
			}
			metrics.On("RecordError", tt.kind).Return()

			svc := NewService(encoder, scorer, quietLogger(), metrics)
			outcome, err := svc.Score(context.Background(), tt.form())

			assert.Nil(t, outcome)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target))
			assert.Equal(t, tt.message, Message(err))

			encoder.AssertExpectations(t)
			scorer.AssertExpectations(t)
			metrics.AssertExpectations(t)
		})
	}
}

func TestService_WithBundledArtifacts(t *testing.T) {
	artifacts, err := ml.LoadArtifacts("../../../artifacts")
	require.NoError(t, err)

	svc := NewService(artifacts.Encoder, artifacts.Pipeline, quietLogger(), nil)

	first, err := svc.Score(context.Background(), travelForm())
	require.NoError(t, err)
	second, err := svc.Score(context.Background(), travelForm())
	require.NoError(t, err)

	assert.Equal(t, first.Result, second.Result)
	assert.GreaterOrEqual(t, first.Result.BaseProbability, 0.0)
	assert.LessOrEqual(t, first.Result.BaseProbability, 1.0)

	f := travelForm()
	f.Category = "Crypto"
	_, err = svc.Score(context.Background(), f)
	assert.True(t, errors.Is(err, ml.ErrUnknownCategory))
}

func TestKind_Internal(t *testing.T) {
	assert.Equal(t, ErrorKindInternal, Kind(errors.New("boom")))
	assert.Equal(t, "Error: boom", Message(errors.New("boom")))
}
