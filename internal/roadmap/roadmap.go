package roadmap

import (
	"fmt"
	"strings"
	"time"
)

// Timeline row types.
const (
	RowPhase     = "Phase"
	RowMilestone = "Milestone"
)

// milestoneWindow is how long each milestone marker spans on the timeline.
const milestoneWindow = 10 * 24 * time.Hour

// summaryMilestones and summaryIndicators cap the summary table columns.
const (
	summaryMilestones = 3
	summaryIndicators = 2
)

// TimelineRow is one bar on the Gantt chart.
type TimelineRow struct {
	Task   string    `json:"task"`
	Start  time.Time `json:"start"`
	Finish time.Time `json:"finish"`
	Type   string    `json:"type"`
}

// SummaryRow is one line of the roadmap summary table.
type SummaryRow struct {
	Phase         string `json:"phase"`
	Timeframe     string `json:"timeframe"`
	TopMilestones string `json:"top_milestones"`
	LeadActors    string `json:"lead_actors"`
	KeyKPIs       string `json:"key_kpis"`
	BudgetRange   string `json:"budget_range"`
}

// Roadmap bundles everything the roadmap page shows for one anchor date.
type Roadmap struct {
	Anchor   time.Time     `json:"anchor"`
	Phases   []Phase       `json:"phases"`
	Timeline []TimelineRow `json:"timeline"`
	Summary  []SummaryRow  `json:"summary"`
}

// Build derives the full roadmap from an anchor date.
func Build(anchor time.Time) Roadmap {
	phases := BuildPhases(anchor)
	return Roadmap{
		Anchor:   Day(anchor),
		Phases:   phases,
		Timeline: BuildTimelineRows(phases),
		Summary:  BuildSummaryRows(phases),
	}
}

// BuildPhases places the three static phases on the calendar starting at anchor.
func BuildPhases(anchor time.Time) []Phase {
	anchor = Day(anchor)
	phases := phaseTemplates()
	for i := range phases {
		phases[i].Start = AddMonths(anchor, monthOffsets[i])
		phases[i].End = AddMonths(anchor, monthOffsets[i+1])
	}
	return phases
}

// BuildTimelineRows emits a phase bar plus a first and last milestone marker
// per phase. Markers on phases shorter than two windows overlap.
func BuildTimelineRows(phases []Phase) []TimelineRow {
	rows := make([]TimelineRow, 0, len(phases)*3)
	for _, ph := range phases {
		rows = append(rows, TimelineRow{
			Task:   ph.Title(),
			Start:  ph.Start,
			Finish: ph.End,
			Type:   RowPhase,
		})
		if len(ph.Milestones) == 0 {
			continue
		}
		rows = append(rows,
			TimelineRow{
				Task:   ph.ID + " — Key: " + ph.Milestones[0],
				Start:  ph.Start,
				Finish: ph.Start.Add(milestoneWindow),
				Type:   RowMilestone,
			},
			TimelineRow{
				Task:   ph.ID + " — Key: " + ph.Milestones[len(ph.Milestones)-1],
				Start:  ph.End.Add(-milestoneWindow),
				Finish: ph.End,
				Type:   RowMilestone,
			},
		)
	}
	return rows
}

// BuildSummaryRows condenses each phase into one table row.
func BuildSummaryRows(phases []Phase) []SummaryRow {
	rows := make([]SummaryRow, 0, len(phases))
	for _, ph := range phases {
		kpis := make([]string, 0, summaryIndicators)
		for _, ind := range head(ph.Monitoring, summaryIndicators) {
			kpis = append(kpis, fmt.Sprintf("%s: %s", ind.Name, ind.Target))
		}
		rows = append(rows, SummaryRow{
			Phase:         ph.ID,
			Timeframe:     ph.Start.Format(DateLayout) + " : " + ph.End.Format(DateLayout),
			TopMilestones: strings.Join(head(ph.Milestones, summaryMilestones), "; "),
			LeadActors:    strings.Join(ph.LeadActors, ", "),
			KeyKPIs:       strings.Join(kpis, "; "),
			BudgetRange:   ph.PhaseTotal(),
		})
	}
	return rows
}

func head[T any](s []T, n int) []T {
	if len(s) < n {
		return s
	}
	return s[:n]
}
