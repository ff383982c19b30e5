package scoring

// FactorResult captures one criterion's contribution to a weighted score.
type FactorResult struct {
	Name     Criterion `json:"name"`
	Score    float64   `json:"score"`
	Weight   float64   `json:"weight"`
	Weighted float64   `json:"weighted"`
}

// Factors breaks a checked initiative down into its four weighted contributions.
// The caller must have run Check on in.
func Factors(in Initiative, weights WeightSet) []FactorResult {
	factors := make([]FactorResult, 0, len(Criteria()))
	for _, c := range Criteria() {
		score, _ := in.Score(c)
		w := weights.Get(c)
		factors = append(factors, FactorResult{
			Name:     c,
			Score:    float64(score),
			Weight:   w,
			Weighted: float64(score) * w,
		})
	}
	return factors
}
