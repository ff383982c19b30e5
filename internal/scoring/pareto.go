package scoring

// Frontier returns the ranked results that no other result dominates.
// A result is dominated if another scores >= on every criterion and strictly
// higher on at least one. On the 1–5 rubric a higher score is always better,
// cost included, so no criterion is inverted. Ranked order is preserved.
// O(n^2) dominance check, fine for a hand-edited table.
func Frontier(ranked []RankedResult) []RankedResult {
	if len(ranked) <= 1 {
		return ranked
	}

	var frontier []RankedResult
	for i := range ranked {
		dominated := false
		for j := range ranked {
			if i == j {
				continue
			}
			if dominates(ranked[j].Initiative, ranked[i].Initiative) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, ranked[i])
		}
	}
	return frontier
}

// dominates returns true if a dominates b. Both must be fully scored.
func dominates(a, b Initiative) bool {
	strictly := false
	for _, c := range Criteria() {
		av, _ := a.Score(c)
		bv, _ := b.Score(c)
		if av < bv {
			return false
		}
		if av > bv {
			strictly = true
		}
	}
	return strictly
}
