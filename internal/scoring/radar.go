package scoring

// RadarMax is the outer ring of the radar chart for in-range scores.
const RadarMax = 5.0

// RadarSeries is a single closed polygon over the four criteria.
type RadarSeries struct {
	Name       string      `json:"name"`
	Categories []Criterion `json:"categories"`
	Values     []float64   `json:"values"`
	RangeMin   float64     `json:"range_min"`
	RangeMax   float64     `json:"range_max"`
}

// Radar builds the chart series for one ranked result. The first category and
// value are repeated at the end to close the loop. The radial range widens past
// RadarMax when a score exceeds it so the point stays on the chart.
func Radar(r RankedResult) RadarSeries {
	criteria := Criteria()
	series := RadarSeries{
		Name:       r.Name,
		Categories: make([]Criterion, 0, len(criteria)+1),
		Values:     make([]float64, 0, len(criteria)+1),
		RangeMax:   RadarMax,
	}
	for _, c := range criteria {
		v, _ := r.Score(c)
		series.Categories = append(series.Categories, c)
		series.Values = append(series.Values, float64(v))
		if float64(v) > series.RangeMax {
			series.RangeMax = float64(v)
		}
		if float64(v) < series.RangeMin {
			series.RangeMin = float64(v)
		}
	}
	series.Categories = append(series.Categories, series.Categories[0])
	series.Values = append(series.Values, series.Values[0])
	return series
}
