// Package classifier scores skill-proficiency vectors against a pretrained
// multi-class model. The model is a black box behind the Model interface:
// vector in, probability distribution out. Training happens offline; this
// package only loads and evaluates the serialized artifact.
package classifier

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch indicates the input vector length does not match the
// model's feature count. This is a fatal configuration error (taxonomy and
// model artifact out of sync), never a per-request condition.
var ErrDimensionMismatch = errors.New("classifier: input dimension mismatch")

// Model maps a positionally encoded skill-proficiency vector to a probability
// distribution over the model's classes. Implementations are read-only after
// construction and safe for concurrent use.
type Model interface {
	// Classes returns the class identifiers in output order.
	Classes() []string

	// Predict returns one probability per class, summing to 1.
	Predict(vector []float64) ([]float64, error)

	// FeatureCount returns the expected input vector length.
	FeatureCount() int
}

// CheckShape verifies the model's feature list matches the taxonomy's
// canonical name order exactly. Called once at startup.
func CheckShape(features, taxonomyNames []string) error {
	if len(features) != len(taxonomyNames) {
		return fmt.Errorf("%w: model has %d features, taxonomy has %d entries",
			ErrDimensionMismatch, len(features), len(taxonomyNames))
	}
	for i, name := range taxonomyNames {
		if features[i] != name {
			return fmt.Errorf("%w: feature %d is %q, taxonomy entry is %q",
				ErrDimensionMismatch, i, features[i], name)
		}
	}
	return nil
}
