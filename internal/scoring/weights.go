package scoring

import (
	"fmt"
	"math"
)

// weightSumTolerance bounds how far a normalized WeightSet may drift from 1.0.
const weightSumTolerance = 1e-9

// ZeroWeightPolicy decides what NormalizeWeights does when every raw weight is zero.
type ZeroWeightPolicy string

const (
	// ZeroWeightEqual falls back to 0.25 for each criterion.
	ZeroWeightEqual ZeroWeightPolicy = "equal"
	// ZeroWeightReject returns a *ZeroWeightError.
	ZeroWeightReject ZeroWeightPolicy = "reject"
)

// ParseZeroWeightPolicy maps a config value onto a policy. Empty means equal.
func ParseZeroWeightPolicy(s string) (ZeroWeightPolicy, error) {
	switch ZeroWeightPolicy(s) {
	case "", ZeroWeightEqual:
		return ZeroWeightEqual, nil
	case ZeroWeightReject:
		return ZeroWeightReject, nil
	default:
		return ZeroWeightEqual, fmt.Errorf("unknown zero weight policy: %q", s)
	}
}

// WeightSet holds the relative importance of each criterion.
type WeightSet struct {
	Impact        float64 `json:"impact" yaml:"impact"`
	Cost          float64 `json:"cost" yaml:"cost"`
	Feasibility   float64 `json:"feasibility" yaml:"feasibility"`
	TimeToBenefit float64 `json:"time_to_benefit" yaml:"time_to_benefit"`
}

// DefaultWeights returns the initial slider positions.
func DefaultWeights() WeightSet {
	return WeightSet{
		Impact:        0.40,
		Cost:          0.20,
		Feasibility:   0.20,
		TimeToBenefit: 0.20,
	}
}

// EqualWeights gives every criterion the same share.
func EqualWeights() WeightSet {
	return WeightSet{Impact: 0.25, Cost: 0.25, Feasibility: 0.25, TimeToBenefit: 0.25}
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() float64 {
	return w.Impact + w.Cost + w.Feasibility + w.TimeToBenefit
}

// Get returns the weight for a criterion.
func (w WeightSet) Get(c Criterion) float64 {
	switch c {
	case CriterionImpact:
		return w.Impact
	case CriterionCost:
		return w.Cost
	case CriterionFeasibility:
		return w.Feasibility
	case CriterionTimeToBenefit:
		return w.TimeToBenefit
	default:
		return 0
	}
}

// Set replaces the weight for a criterion.
func (w *WeightSet) Set(c Criterion, v float64) {
	switch c {
	case CriterionImpact:
		w.Impact = v
	case CriterionCost:
		w.Cost = v
	case CriterionFeasibility:
		w.Feasibility = v
	case CriterionTimeToBenefit:
		w.TimeToBenefit = v
	}
}

// Clamp pins every weight into [0,1], the range a slider can produce.
func (w WeightSet) Clamp() WeightSet {
	return WeightSet{
		Impact:        clamp(w.Impact, 0, 1),
		Cost:          clamp(w.Cost, 0, 1),
		Feasibility:   clamp(w.Feasibility, 0, 1),
		TimeToBenefit: clamp(w.TimeToBenefit, 0, 1),
	}
}

// Validate rejects negative weights. Raw weights need not sum to 1.
func (w WeightSet) Validate() error {
	for _, c := range Criteria() {
		if v := w.Get(c); v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("invalid %s weight: %f", c, v)
		}
	}
	return nil
}

// Normalized reports whether the weights already sum to 1.0.
func (w WeightSet) Normalized() bool {
	return math.Abs(w.Sum()-1.0) <= weightSumTolerance
}

// NormalizeWeights scales raw so its components sum to 1.0. A zero sum is
// resolved by policy.
func NormalizeWeights(raw WeightSet, policy ZeroWeightPolicy) (WeightSet, error) {
	sum := raw.Sum()
	if sum == 0 {
		if policy == ZeroWeightReject {
			return WeightSet{}, &ZeroWeightError{Raw: raw}
		}
		return EqualWeights(), nil
	}

	return WeightSet{
		Impact:        raw.Impact / sum,
		Cost:          raw.Cost / sum,
		Feasibility:   raw.Feasibility / sum,
		TimeToBenefit: raw.TimeToBenefit / sum,
	}, nil
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
