package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
)

// Artifact is the on-disk shape of a serialized multinomial logistic
// regression model. Weights are sparse: absent feature weights are zero.
type Artifact struct {
	ModelType string                        `json:"model_type" validate:"required,eq=multinomial_logistic_regression"`
	Version   int                           `json:"version" validate:"gte=1"`
	TrainedAt string                        `json:"trained_at,omitempty"`
	Features  []string                      `json:"features" validate:"required,min=1"`
	Classes   []string                      `json:"classes" validate:"required,min=2"`
	Weights   map[string]map[string]float64 `json:"weights" validate:"required"`
	Bias      map[string]float64            `json:"bias,omitempty"`
}

// Validate validates the artifact using the struct validator.
func (a *Artifact) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}

// LogisticModel is a dense multinomial logistic regression evaluator built
// from a sparse artifact at load time.
type LogisticModel struct {
	classes []string
	weights [][]float64 // [class][feature]
	bias    []float64
	nInput  int
}

// Load reads, validates and densifies a model artifact.
func Load(path string) (*LogisticModel, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read model artifact %s: %w", path, err)
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}
	if err := artifact.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid model artifact: %w", err)
	}

	model, err := NewLogisticModel(&artifact)
	if err != nil {
		return nil, nil, err
	}
	return model, artifact.Features, nil
}

// NewLogisticModel densifies a sparse artifact into an evaluator.
func NewLogisticModel(artifact *Artifact) (*LogisticModel, error) {
	featureIndex := make(map[string]int, len(artifact.Features))
	for i, f := range artifact.Features {
		if _, dup := featureIndex[f]; dup {
			return nil, fmt.Errorf("model artifact: duplicate feature %q", f)
		}
		featureIndex[f] = i
	}

	model := &LogisticModel{
		classes: artifact.Classes,
		weights: make([][]float64, len(artifact.Classes)),
		bias:    make([]float64, len(artifact.Classes)),
		nInput:  len(artifact.Features),
	}

	for c, class := range artifact.Classes {
		row := make([]float64, len(artifact.Features))
		for feature, weight := range artifact.Weights[class] {
			idx, ok := featureIndex[feature]
			if !ok {
				return nil, fmt.Errorf("model artifact: class %q has weight for unknown feature %q", class, feature)
			}
			row[idx] = weight
		}
		model.weights[c] = row
		model.bias[c] = artifact.Bias[class]
	}

	return model, nil
}

// Classes returns the class identifiers in output order.
func (m *LogisticModel) Classes() []string { return m.classes }

// FeatureCount returns the expected input vector length.
func (m *LogisticModel) FeatureCount() int { return m.nInput }

// Predict evaluates the softmax over class logits. A vector of the wrong
// length returns ErrDimensionMismatch.
func (m *LogisticModel) Predict(vector []float64) ([]float64, error) {
	if len(vector) != m.nInput {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(vector), m.nInput)
	}

	logits := make([]float64, len(m.classes))
	for c := range m.classes {
		sum := m.bias[c]
		row := m.weights[c]
		for i, x := range vector {
			sum += row[i] * x
		}
		logits[c] = sum
	}

	return softmax(logits), nil
}

// softmax converts logits to probabilities, shifted by the max for numeric
// stability.
func softmax(logits []float64) []float64 {
	maxLogit := math.Inf(-1)
	for _, l := range logits {
		if l > maxLogit {
			maxLogit = l
		}
	}

	probs := make([]float64, len(logits))
	total := 0.0
	for i, l := range logits {
		probs[i] = math.Exp(l - maxLogit)
		total += probs[i]
	}
	for i := range probs {
		probs[i] /= total
	}
	return probs
}
