package ml

import (
	"errors"
	"fmt"
)

// Service errors
var (
	ErrUnknownCategory   = errors.New("unknown category")
	ErrFeatureShape      = errors.New("feature shape mismatch")
	ErrUnsupportedModel  = errors.New("unsupported model type")
	ErrArtifactNotLoaded = errors.New("model artifact not loaded")
)

// UnknownCategoryError reports a categorical value outside the trained vocabulary.
type UnknownCategoryError struct {
	Feature string
	Value   string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("found unknown category %q in feature %q", e.Value, e.Feature)
}

func (e *UnknownCategoryError) Is(target error) bool {
	return target == ErrUnknownCategory
}

// FeatureShapeError reports a vector whose width does not match what a
// fitted component expects.
type FeatureShapeError struct {
	Component string
	Expected  int
	Got       int
}

func (e *FeatureShapeError) Error() string {
	return fmt.Sprintf("%s expects %d features, got %d", e.Component, e.Expected, e.Got)
}

func (e *FeatureShapeError) Is(target error) bool {
	return target == ErrFeatureShape
}
