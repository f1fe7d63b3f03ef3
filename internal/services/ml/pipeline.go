package ml

// Pipeline scales a raw feature vector and feeds it to the classifier.
type Pipeline struct {
	scaler     *StandardScaler
	classifier *LogisticRegression
}

func NewPipeline(scaler *StandardScaler, classifier *LogisticRegression) (*Pipeline, error) {
	if err := scaler.validate(); err != nil {
		return nil, err
	}
	if err := classifier.validate(); err != nil {
		return nil, err
	}
	if scaler.Width() != classifier.Width() {
		return nil, &FeatureShapeError{Component: "classifier", Expected: classifier.Width(), Got: scaler.Width()}
	}
	return &Pipeline{scaler: scaler, classifier: classifier}, nil
}

func (p *Pipeline) Score(features []float64) (float64, error) {
	scaled, err := p.scaler.Transform(features)
	if err != nil {
		return 0, err
	}
	return p.classifier.PredictProba(scaled)
}

func (p *Pipeline) Width() int {
	return p.scaler.Width()
}
