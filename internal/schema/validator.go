// Package schema validates analysis outputs against their invariants before
// they leave the process.
package schema

import (
	"fmt"
	"math"

	"truth-analysis-service/internal/models"
)

// weightSumEpsilon is the tolerance for the normalized weight vector sum.
const weightSumEpsilon = 1e-9

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateScore checks a ModalityScore: every sub-score and the confidence
// must be in [0,100] and the interpretation must be non-empty.
func (v *Validator) ValidateScore(s *models.ModalityScore) error {
	if s == nil {
		return fmt.Errorf("nil modality score")
	}
	if len(s.Scores) == 0 {
		return fmt.Errorf("%s: score has no sub-scores", s.Modality)
	}
	for name, val := range s.Scores {
		if val < 0 || val > 100 {
			return fmt.Errorf("%s: sub-score %q out of range: %d", s.Modality, name, val)
		}
	}
	if s.Confidence < 0 || s.Confidence > 100 {
		return fmt.Errorf("%s: confidence out of range: %d", s.Modality, s.Confidence)
	}
	if s.Interpretation == "" {
		return fmt.Errorf("%s: empty interpretation", s.Modality)
	}
	return nil
}

// ValidateResult checks a FusedResult: bounded scores, a non-empty
// interpretation, feature values in [0,1] and a weight vector that sums to 1.
func (v *Validator) ValidateResult(r *models.FusedResult) error {
	if r == nil {
		return fmt.Errorf("nil fused result")
	}
	if r.Truthfulness < 0 || r.Truthfulness > 100 {
		return fmt.Errorf("truthfulness out of range: %d", r.Truthfulness)
	}
	if r.Confidence < 0 || r.Confidence > 100 {
		return fmt.Errorf("confidence out of range: %d", r.Confidence)
	}
	if r.Interpretation == "" {
		return fmt.Errorf("empty interpretation")
	}
	if len(r.FeatureVector) != len(r.Weights) {
		return fmt.Errorf("feature vector and weights length mismatch: %d != %d", len(r.FeatureVector), len(r.Weights))
	}
	for i, f := range r.FeatureVector {
		if f < 0 || f > 1 {
			return fmt.Errorf("feature %d out of range: %v", i, f)
		}
	}
	sum := 0.0
	for _, w := range r.Weights {
		sum += w
	}
	if math.Abs(sum-1) > weightSumEpsilon {
		return fmt.Errorf("weights do not sum to 1: %v", sum)
	}
	return nil
}
