package scoring

// Initiative is one candidate intervention. Scores are pointers so that a row
// with an absent score can be told apart from a row scored zero.
type Initiative struct {
	Name          string `json:"name"`
	Impact        *int   `json:"impact"`
	Cost          *int   `json:"cost"`
	Feasibility   *int   `json:"feasibility"`
	TimeToBenefit *int   `json:"time_to_benefit"`
}

// NewInitiative builds a fully scored row.
func NewInitiative(name string, impact, cost, feasibility, timeToBenefit int) Initiative {
	return Initiative{
		Name:          name,
		Impact:        intPtr(impact),
		Cost:          intPtr(cost),
		Feasibility:   intPtr(feasibility),
		TimeToBenefit: intPtr(timeToBenefit),
	}
}

// DefaultInitiatives returns the rows a fresh session starts with.
func DefaultInitiatives() []Initiative {
	return []Initiative{
		NewInitiative("Targeted Network Rehabilitation", 5, 3, 3, 4),
		NewInitiative("Selective Pluvial Drainage Upgrades", 4, 2, 4, 3),
		NewInitiative("Cost-Recovery & Household Metering", 3, 4, 5, 3),
	}
}

// Score returns the score for c and whether it is present.
func (in Initiative) Score(c Criterion) (int, bool) {
	var p *int
	switch c {
	case CriterionImpact:
		p = in.Impact
	case CriterionCost:
		p = in.Cost
	case CriterionFeasibility:
		p = in.Feasibility
	case CriterionTimeToBenefit:
		p = in.TimeToBenefit
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// SetScore records v for c.
func (in *Initiative) SetScore(c Criterion, v int) {
	switch c {
	case CriterionImpact:
		in.Impact = intPtr(v)
	case CriterionCost:
		in.Cost = intPtr(v)
	case CriterionFeasibility:
		in.Feasibility = intPtr(v)
	case CriterionTimeToBenefit:
		in.TimeToBenefit = intPtr(v)
	}
}

// Check returns a *MissingFieldError naming the first absent score. row is the
// row's position in the edited table.
func (in Initiative) Check(row int) error {
	for _, c := range Criteria() {
		if _, ok := in.Score(c); !ok {
			return &MissingFieldError{Row: row, Initiative: in.Name, Field: c.Field()}
		}
	}
	return nil
}

// Clone returns a copy that shares no score pointers with in.
func (in Initiative) Clone() Initiative {
	out := Initiative{Name: in.Name}
	if in.Impact != nil {
		out.Impact = intPtr(*in.Impact)
	}
	if in.Cost != nil {
		out.Cost = intPtr(*in.Cost)
	}
	if in.Feasibility != nil {
		out.Feasibility = intPtr(*in.Feasibility)
	}
	if in.TimeToBenefit != nil {
		out.TimeToBenefit = intPtr(*in.TimeToBenefit)
	}
	return out
}

// CloneInitiatives deep-copies a table.
func CloneInitiatives(in []Initiative) []Initiative {
	if in == nil {
		return nil
	}
	out := make([]Initiative, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

func intPtr(v int) *int { return &v }
