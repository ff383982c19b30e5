package dashboard

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Prioritization/internal/roadmap"
	"github.com/MikeSquared-Agency/Prioritization/internal/scoring"
	"github.com/MikeSquared-Agency/Prioritization/internal/store"
)

var anchor = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func computedSession(t *testing.T) *store.Session {
	t.Helper()
	s := store.NewSession(scoring.DefaultWeights(), anchor, anchor)
	sc := scoring.NewScorer(scoring.ZeroWeightEqual, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, s.Recompute(sc, anchor))
	return s
}

func TestShade(t *testing.T) {
	styles := Shade([]float64{1, 3, 5})
	require.Len(t, styles, 3)
	assert.Equal(t, "#f7fbff", styles[0].Background)
	assert.Equal(t, darkText, styles[0].Color)
	assert.Equal(t, "#08306b", styles[2].Background)
	assert.Equal(t, lightText, styles[2].Color)
	assert.Equal(t, "#6baed6", styles[1].Background)

	for _, s := range Shade([]float64{4, 4}) {
		assert.Equal(t, "#f7fbff", s.Background)
	}
	assert.Empty(t, Shade(nil))
}

func TestShadeIsPerColumn(t *testing.T) {
	// the same value gets different shades in columns with different ranges
	a := Shade([]float64{3, 5})
	b := Shade([]float64{1, 3})
	assert.NotEqual(t, a[0].Background, b[1].Background)
}

func TestNewMatrixPage(t *testing.T) {
	s := computedSession(t)
	page, err := NewMatrixPage(s)
	require.NoError(t, err)

	assert.Equal(t, []string{"Rank", "Initiative", "Impact", "Cost", "Feasibility", "Time_to_Benefit", "Weighted Score"}, page.Columns)
	require.Len(t, page.Rows, 3)
	assert.Equal(t, "Targeted Network Rehabilitation", page.Rows[0].Name)
	require.Len(t, page.Rows[0].Cells, 5)
	assert.Equal(t, "5", page.Rows[0].Cells[0].Text)
	assert.Equal(t, "4.000", page.Rows[0].Cells[4].Text)
	assert.Equal(t, "#08306b", page.Rows[0].Cells[4].Style.Background)

	require.Len(t, page.Edit, 3)
	assert.Equal(t, []string{"5", "3", "3", "4"}, page.Edit[0].Scores)
	require.Len(t, page.Weights, 4)
	assert.Equal(t, "impact", page.Weights[0].Field)
	assert.Equal(t, 0.4, page.Weights[0].Value)

	assert.Equal(t, page.Rows[0].Name, page.Selected)
	var radar scoring.RadarSeries
	require.NoError(t, json.Unmarshal([]byte(page.RadarJSON), &radar))
	assert.Equal(t, []float64{5, 3, 3, 4, 5}, radar.Values)
	assert.Contains(t, page.ExportURL, s.ID.String())
}

func TestNewMatrixPageMissingScore(t *testing.T) {
	s := computedSession(t)
	s.Initiatives[1].Feasibility = nil
	s.LastError = "missing"
	page, err := NewMatrixPage(s)
	require.NoError(t, err)
	assert.Equal(t, "", page.Edit[1].Scores[2])
	assert.Equal(t, "missing", page.Error)
}

func TestTimelineTraces(t *testing.T) {
	rows := roadmap.BuildTimelineRows(roadmap.BuildPhases(anchor))
	traces := TimelineTraces(rows)
	require.Len(t, traces, 2)
	assert.Equal(t, roadmap.RowPhase, traces[0].Name)
	assert.Len(t, traces[0].Y, 3)
	assert.Len(t, traces[1].Y, 6)
	assert.Equal(t, "2024-01-15", traces[0].Base[0])
	assert.Equal(t, "2024-04-15", traces[0].End[0])
	assert.Equal(t, int64(10*24*time.Hour/time.Millisecond), traces[1].Width[0])
}

func TestRenderMatrix(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	s := computedSession(t)
	s.Initiatives[0].Name = `<script>alert(1)</script>`
	page, err := NewMatrixPage(s)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Matrix(&buf, page))
	html := buf.String()
	assert.Contains(t, html, "Infrastructure Prioritization Matrix")
	assert.Contains(t, html, "Selective Pluvial Drainage Upgrades")
	assert.Contains(t, html, "background-color: #08306b")
	assert.Contains(t, html, "scatterpolar")
	assert.NotContains(t, html, `<script>alert(1)</script>`)
}

func TestRenderEmptyMatrix(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	s := computedSession(t)
	s.View = store.View{}
	page, err := NewMatrixPage(s)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Matrix(&buf, page))
	assert.Contains(t, buf.String(), "Add an initiative to compare.")
	assert.NotContains(t, buf.String(), "scatterpolar")
}

func TestRenderRoadmap(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	page, err := NewRoadmapPage(computedSession(t))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", page.Anchor)
	assert.Len(t, page.Tasks, 9)

	var buf bytes.Buffer
	require.NoError(t, r.Roadmap(&buf, page))
	html := buf.String()
	assert.Contains(t, html, `value="2024-01-15"`)
	assert.Contains(t, html, "2024-01-15 : 2024-04-15")
	assert.Equal(t, 3, strings.Count(html, `<section class="phase">`))
}
