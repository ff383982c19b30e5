package roadmap

import "time"

// DateLayout is how phase dates are printed.
const DateLayout = "2006-01-02"

// PhaseTotalKey is the budget line holding a phase's overall range.
const PhaseTotalKey = "phase_total"

// Indicator is one monitoring indicator and its target or description.
type Indicator struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}

// BudgetLine is one budget item and its amount range.
type BudgetLine struct {
	Item   string `json:"item"`
	Amount string `json:"amount"`
}

// Phase is a fixed roadmap segment. Only Start and End depend on the anchor.
type Phase struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Start         time.Time    `json:"start"`
	End           time.Time    `json:"end"`
	Explanation   string       `json:"explanation"`
	Milestones    []string     `json:"milestones"`
	LeadActors    []string     `json:"lead_actors"`
	Monitoring    []Indicator  `json:"monitoring"`
	Budget        []BudgetLine `json:"budget"`
	Contingencies []string     `json:"contingencies"`
}

// PhaseTotal returns the phase_total budget amount, or "" when absent.
func (p Phase) PhaseTotal() string {
	for _, b := range p.Budget {
		if b.Item == PhaseTotalKey {
			return b.Amount
		}
	}
	return ""
}

// Duration returns End - Start.
func (p Phase) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// Title is the phase id and name as shown on cards and the timeline.
func (p Phase) Title() string {
	return p.ID + " — " + p.Name
}

// AddMonths moves t forward by n calendar months, keeping the day of month
// and clamping it to the last day of the target month when it does not exist.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	// day 0 of the following month is the last day of the target month
	last := time.Date(y, m+time.Month(n)+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if d > last {
		d = last
	}
	return time.Date(y, m+time.Month(n), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
