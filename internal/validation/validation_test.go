package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() PredictionForm {
	return PredictionForm{
		Amount:   "1250.50",
		CardType: "Visa",
		Bank:     "SBI",
		Category: "Travel",
		State:    "Kerala",
	}
}

func TestPrediction_Valid(t *testing.T) {
	v := New()
	in := v.Prediction(validForm())

	assert.True(t, v.Valid())
	assert.Equal(t, "1250.5", in.Amount.String())
	assert.Equal(t, "Visa", in.CardType)
	assert.Equal(t, "Kerala", in.State)
}

func TestPrediction_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PredictionForm)
		field   string
		message string
	}{
		{"missing amount", func(f *PredictionForm) { f.Amount = "" }, "amount", "is required"},
		{"non numeric amount", func(f *PredictionForm) { f.Amount = "12abc" }, "amount", "must be a number"},
		{"zero amount", func(f *PredictionForm) { f.Amount = "0" }, "amount", "must be between"},
		{"negative amount", func(f *PredictionForm) { f.Amount = "-5" }, "amount", "must be between"},
		{"missing bank", func(f *PredictionForm) { f.Bank = "  " }, "bank", "is required"},
		{"missing state", func(f *PredictionForm) { f.State = "" }, "state", "is required"},
		{"overlong category", func(f *PredictionForm) {
			f.Category = string(make([]byte, MaxCategoricalLength+1))
		}, "category", "must not be more than"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)

			v := New()
			v.Prediction(f)

			assert.False(t, v.Valid())
			assert.Contains(t, v.Errors[tt.field], tt.message)
		})
	}
}

func TestMessage_SortedFields(t *testing.T) {
	v := New()
	v.AddError("state", "is required")
	v.AddError("amount", "must be a number")
	v.AddError("amount", "ignored second error")

	assert.Equal(t, "amount must be a number; state is required", v.Message())
}
