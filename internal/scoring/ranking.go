package scoring

import "sort"

// RankedResult is an initiative with its weighted score and position.
type RankedResult struct {
	Initiative
	WeightedScore float64        `json:"weighted_score"`
	Rank          int            `json:"rank"`
	Factors       []FactorResult `json:"factors"`
}

// ComputeRanking scores every initiative with already-normalized weights and
// orders the rows by weighted score, highest first. Equal scores keep their
// input order. Scores outside 1–5 are multiplied through unchanged.
func ComputeRanking(initiatives []Initiative, weights WeightSet) ([]RankedResult, error) {
	results := make([]RankedResult, 0, len(initiatives))
	for i, in := range initiatives {
		if err := in.Check(i); err != nil {
			return nil, err
		}
		factors := Factors(in, weights)
		var total float64
		for _, f := range factors {
			total += f.Weighted
		}
		results = append(results, RankedResult{
			Initiative:    in.Clone(),
			WeightedScore: total,
			Factors:       factors,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].WeightedScore > results[j].WeightedScore
	})
	for i := range results {
		results[i].Rank = i + 1
	}
	return results, nil
}

// SelectForComparison returns the first ranked result named name.
func SelectForComparison(ranked []RankedResult, name string) (RankedResult, error) {
	for _, r := range ranked {
		if r.Name == name {
			return r, nil
		}
	}
	return RankedResult{}, &NotFoundError{Name: name}
}

// Names lists initiative names in ranked order, duplicates included.
func Names(ranked []RankedResult) []string {
	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.Name
	}
	return names
}
