package scoring

import (
	"log/slog"
)

// Ranking is the output of one full recomputation.
type Ranking struct {
	Raw     WeightSet      `json:"raw_weights"`
	Weights WeightSet      `json:"weights"`
	Results []RankedResult `json:"results"`
}

// Scorer normalizes raw weights under a zero-weight policy and ranks a table.
type Scorer struct {
	policy ZeroWeightPolicy
	logger *slog.Logger
}

// NewScorer creates a Scorer with the given zero-weight policy.
func NewScorer(policy ZeroWeightPolicy, logger *slog.Logger) *Scorer {
	if policy == "" {
		policy = ZeroWeightEqual
	}
	return &Scorer{policy: policy, logger: logger}
}

// Policy returns the configured zero-weight policy.
func (s *Scorer) Policy() ZeroWeightPolicy {
	return s.policy
}

// Rank normalizes raw and ranks initiatives with the result.
func (s *Scorer) Rank(initiatives []Initiative, raw WeightSet) (Ranking, error) {
	weights, err := NormalizeWeights(raw, s.policy)
	if err != nil {
		s.logger.Warn("weights rejected", "error", err)
		return Ranking{}, err
	}
	if raw.Sum() == 0 {
		s.logger.Info("zero weight sum, using equal weights")
	}

	results, err := ComputeRanking(initiatives, weights)
	if err != nil {
		s.logger.Warn("ranking failed", "error", err, "rows", len(initiatives))
		return Ranking{}, err
	}

	s.logger.Debug("ranking computed", "rows", len(results))
	return Ranking{Raw: raw, Weights: weights, Results: results}, nil
}
