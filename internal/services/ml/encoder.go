package ml

import "fmt"

// OneHotEncoder mirrors a fitted categorical one-hot encoder that errors on
// unknown categories.
type OneHotEncoder struct {
	features Vocabulary
	index    []map[string]int
	width    int
}

func NewOneHotEncoder(features Vocabulary) (*OneHotEncoder, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("encoder has no features: %w", ErrArtifactNotLoaded)
	}

	e := &OneHotEncoder{
		features: features,
		index:    make([]map[string]int, len(features)),
	}
	for i, f := range features {
		if len(f.Categories) == 0 {
			return nil, fmt.Errorf("feature %q has no categories", f.Name)
		}
		idx := make(map[string]int, len(f.Categories))
		for j, c := range f.Categories {
			if _, dup := idx[c]; dup {
				return nil, fmt.Errorf("feature %q lists category %q twice", f.Name, c)
			}
			idx[c] = j
		}
		e.index[i] = idx
		e.width += len(f.Categories)
	}
	return e, nil
}

func (e *OneHotEncoder) Encode(values ...string) ([]float64, error) {
	if len(values) != len(e.features) {
		return nil, &FeatureShapeError{Component: "encoder", Expected: len(e.features), Got: len(values)}
	}

	out := make([]float64, e.width)
	offset := 0
	for i, v := range values {
		j, ok := e.index[i][v]
		if !ok {
			return nil, &UnknownCategoryError{Feature: e.features[i].Name, Value: v}
		}
		out[offset+j] = 1
		offset += len(e.features[i].Categories)
	}
	return out, nil
}

func (e *OneHotEncoder) Vocabulary() Vocabulary {
	return e.features
}

func (e *OneHotEncoder) Width() int {
	return e.width
}

// FeatureNames returns "<feature>_<category>" for every output column.
func (e *OneHotEncoder) FeatureNames() []string {
	names := make([]string, 0, e.width)
	for _, f := range e.features {
		for _, c := range f.Categories {
			names = append(names, f.Name+"_"+c)
		}
	}
	return names
}
