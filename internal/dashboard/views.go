package dashboard

import (
	"encoding/json"
	"html/template"
	"strconv"

	"github.com/MikeSquared-Agency/Prioritization/internal/export"
	"github.com/MikeSquared-Agency/Prioritization/internal/roadmap"
	"github.com/MikeSquared-Agency/Prioritization/internal/scoring"
	"github.com/MikeSquared-Agency/Prioritization/internal/store"
)

// Cell is one rendered table cell.
type Cell struct {
	Text  string
	Style CellStyle
}

// MatrixRow is one ranked row of the shaded matrix.
type MatrixRow struct {
	Rank  int
	Name  string
	Cells []Cell
}

// EditRow is one row of the editable score table. Missing scores render as
// empty inputs.
type EditRow struct {
	Index  int
	Name   string
	Scores []string
}

// WeightInput is one weight slider.
type WeightInput struct {
	Field string
	Label string
	Value float64
}

// MatrixPage is everything the matrix template needs.
type MatrixPage struct {
	SessionID  string
	Error      string
	ErrorKind  string
	Rubric     []scoring.RubricLevel
	Criteria   []scoring.Criterion
	Edit       []EditRow
	Weights    []WeightInput
	Normalized scoring.WeightSet
	Columns    []string
	Rows       []MatrixRow
	Frontier   []string
	Options    []string
	Selected   string
	RadarJSON  template.JS
	ExportURL  string
	ExportName string
}

// NewMatrixPage builds the matrix view model from a session.
func NewMatrixPage(s *store.Session) (MatrixPage, error) {
	page := MatrixPage{
		SessionID:  s.ID.String(),
		Error:      s.LastError,
		ErrorKind:  s.LastErrorKind,
		Rubric:     scoring.Rubric(),
		Criteria:   scoring.Criteria(),
		Normalized: s.View.Weights,
		Columns:    append([]string{"Rank"}, export.Columns()...),
		Options:    s.Options(),
		Selected:   s.View.Selected,
		ExportURL:  "/api/v1/sessions/" + s.ID.String() + "/export",
		ExportName: export.FileName,
	}

	for i, in := range s.Initiatives {
		row := EditRow{Index: i, Name: in.Name}
		for _, c := range scoring.Criteria() {
			if v, ok := in.Score(c); ok {
				row.Scores = append(row.Scores, strconv.Itoa(v))
			} else {
				row.Scores = append(row.Scores, "")
			}
		}
		page.Edit = append(page.Edit, row)
	}

	for _, c := range scoring.Criteria() {
		page.Weights = append(page.Weights, WeightInput{Field: c.Field(), Label: string(c), Value: s.RawWeights.Get(c)})
	}

	page.Rows = matrixRows(s.View.Ranking)
	page.Frontier = scoring.Names(scoring.Frontier(s.View.Ranking))

	if s.View.Radar != nil {
		radar, err := json.Marshal(s.View.Radar)
		if err != nil {
			return MatrixPage{}, err
		}
		page.RadarJSON = template.JS(radar)
	}
	return page, nil
}

// matrixRows shades every numeric column independently.
func matrixRows(ranked []scoring.RankedResult) []MatrixRow {
	criteria := scoring.Criteria()
	columns := make([][]float64, len(criteria)+1)
	for _, r := range ranked {
		for j, c := range criteria {
			v, _ := r.Score(c)
			columns[j] = append(columns[j], float64(v))
		}
		columns[len(criteria)] = append(columns[len(criteria)], r.WeightedScore)
	}
	styles := make([][]CellStyle, len(columns))
	for j, col := range columns {
		styles[j] = Shade(col)
	}

	rows := make([]MatrixRow, len(ranked))
	for i, r := range ranked {
		row := MatrixRow{Rank: r.Rank, Name: r.Name}
		for j, col := range columns {
			text := strconv.FormatFloat(col[i], 'f', -1, 64)
			if j == len(criteria) {
				text = strconv.FormatFloat(col[i], 'f', 3, 64)
			}
			row.Cells = append(row.Cells, Cell{Text: text, Style: styles[j][i]})
		}
		rows[i] = row
	}
	return rows
}

// TimelineTrace is one coloured series of horizontal bars on the Gantt chart.
// Base holds start dates and Width holds bar lengths in milliseconds.
type TimelineTrace struct {
	Name  string   `json:"name"`
	Y     []string `json:"y"`
	Base  []string `json:"base"`
	Width []int64  `json:"x"`
	Start []string `json:"start"`
	End   []string `json:"end"`
}

// TimelineTraces groups rows by type, phases first, keeping row order.
func TimelineTraces(rows []roadmap.TimelineRow) []TimelineTrace {
	traces := []TimelineTrace{{Name: roadmap.RowPhase}, {Name: roadmap.RowMilestone}}
	for _, r := range rows {
		i := 0
		if r.Type == roadmap.RowMilestone {
			i = 1
		}
		t := &traces[i]
		t.Y = append(t.Y, r.Task)
		t.Base = append(t.Base, r.Start.Format(roadmap.DateLayout))
		t.Width = append(t.Width, r.Finish.Sub(r.Start).Milliseconds())
		t.Start = append(t.Start, r.Start.Format(roadmap.DateLayout))
		t.End = append(t.End, r.Finish.Format(roadmap.DateLayout))
	}
	return traces
}

// RoadmapPage is everything the roadmap template needs.
type RoadmapPage struct {
	SessionID    string
	Anchor       string
	Phases       []roadmap.Phase
	Summary      []roadmap.SummaryRow
	Tasks        []string
	TimelineJSON template.JS
}

// NewRoadmapPage builds the roadmap view model for a session's anchor date.
func NewRoadmapPage(s *store.Session) (RoadmapPage, error) {
	rm := roadmap.Build(s.Anchor)
	timeline, err := json.Marshal(TimelineTraces(rm.Timeline))
	if err != nil {
		return RoadmapPage{}, err
	}
	page := RoadmapPage{
		SessionID:    s.ID.String(),
		Anchor:       rm.Anchor.Format(roadmap.DateLayout),
		Phases:       rm.Phases,
		Summary:      rm.Summary,
		TimelineJSON: template.JS(timeline),
	}
	for _, r := range rm.Timeline {
		page.Tasks = append(page.Tasks, r.Task)
	}
	return page, nil
}
