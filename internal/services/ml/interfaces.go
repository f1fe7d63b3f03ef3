package ml

// Encoder one-hot encodes categorical values against a fixed vocabulary.
type Encoder interface {
	// Encode returns the one-hot vector for values given in feature order.
	Encode(values ...string) ([]float64, error)
	Vocabulary() Vocabulary
	Width() int
}

// Scorer turns a raw feature vector into a fraud probability in [0, 1].
type Scorer interface {
	Score(features []float64) (float64, error)
	Width() int
}

// Feature is one categorical input column and its trained categories.
type Feature struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

// Vocabulary lists the categorical features in encoder order.
type Vocabulary []Feature

// Categories returns the categories of the named feature, or nil.
func (v Vocabulary) Categories(name string) []string {
	for _, f := range v {
		if f.Name == name {
			return f.Categories
		}
	}
	return nil
}
