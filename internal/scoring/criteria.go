package scoring

// Criterion names one of the four scoring dimensions. The string values
// double as the JSON keys and the spreadsheet column headers.
type Criterion string

const (
	CriterionImpact        Criterion = "Impact"
	CriterionCost          Criterion = "Cost"
	CriterionFeasibility   Criterion = "Feasibility"
	CriterionTimeToBenefit Criterion = "Time_to_Benefit"
)

// Criteria returns the four criteria in display order.
func Criteria() []Criterion {
	return []Criterion{CriterionImpact, CriterionCost, CriterionFeasibility, CriterionTimeToBenefit}
}

// Field returns the JSON field name used for the criterion on an initiative row.
func (c Criterion) Field() string {
	switch c {
	case CriterionImpact:
		return "impact"
	case CriterionCost:
		return "cost"
	case CriterionFeasibility:
		return "feasibility"
	case CriterionTimeToBenefit:
		return "time_to_benefit"
	default:
		return string(c)
	}
}

// RubricLevel describes what a single score on the 1–5 scale means.
type RubricLevel struct {
	Score   int    `json:"score"`
	Label   string `json:"label"`
	Meaning string `json:"meaning"`
}

// Rubric returns the scoring guide shown next to the matrix, highest score first.
func Rubric() []RubricLevel {
	return []RubricLevel{
		{Score: 5, Label: "Excellent", Meaning: "high impact, very low cost, highly feasible, immediate benefits"},
		{Score: 4, Label: "Strong", Meaning: "significant benefits, reasonable cost"},
		{Score: 3, Label: "Moderate", Meaning: "useful impact, moderate cost, feasible with some constraints"},
		{Score: 2, Label: "Weak", Meaning: "limited impact or rising costs, delayed benefits"},
		{Score: 1, Label: "Very low", Meaning: "minimal impact, major barriers, high cost, long-term"},
	}
}
