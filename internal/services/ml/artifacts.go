package ml

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Artifacts bundles the fitted encoder and scoring pipeline loaded from disk.
// They are read-only after loading and safe to share across requests.
type Artifacts struct {
	Encoder  *OneHotEncoder
	Pipeline *Pipeline
}

type encoderFile struct {
	Features Vocabulary `json:"features"`
}

// LoadArtifacts reads encoder, scaler and model files from dir and checks
// that their widths agree.
func LoadArtifacts(dir string) (*Artifacts, error) {
	var enc encoderFile
	if err := readJSON(filepath.Join(dir, EncoderFile), &enc); err != nil {
		return nil, err
	}
	var scaler StandardScaler
	if err := readJSON(filepath.Join(dir, ScalerFile), &scaler); err != nil {
		return nil, err
	}
	var model LogisticRegression
	if err := readJSON(filepath.Join(dir, ModelFile), &model); err != nil {
		return nil, err
	}

	return NewArtifacts(enc.Features, &scaler, &model)
}

// NewArtifacts assembles already-decoded components.
func NewArtifacts(vocab Vocabulary, scaler *StandardScaler, model *LogisticRegression) (*Artifacts, error) {
	encoder, err := NewOneHotEncoder(vocab)
	if err != nil {
		return nil, fmt.Errorf("encoder: %w", err)
	}
	pipeline, err := NewPipeline(scaler, model)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	if want := NumericFeatures + encoder.Width(); pipeline.Width() != want {
		return nil, &FeatureShapeError{Component: "scaler", Expected: want, Got: pipeline.Width()}
	}
	return &Artifacts{Encoder: encoder, Pipeline: pipeline}, nil
}

func readJSON(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
