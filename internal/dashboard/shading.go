package dashboard

import (
	"fmt"
	"math"
)

// blues is the nine-stop sequential blue palette, lightest first.
var blues = [...][3]float64{
	{0xf7, 0xfb, 0xff},
	{0xde, 0xeb, 0xf7},
	{0xc6, 0xdb, 0xef},
	{0x9e, 0xca, 0xe1},
	{0x6b, 0xae, 0xd6},
	{0x42, 0x92, 0xc6},
	{0x21, 0x71, 0xb5},
	{0x08, 0x51, 0x9c},
	{0x08, 0x30, 0x6b},
}

// textThreshold is the relative luminance below which cell text turns light.
const textThreshold = 0.408

const (
	darkText  = "#000000"
	lightText = "#f1f1f1"
)

// CellStyle is the inline colouring of one numeric table cell.
type CellStyle struct {
	Background string
	Color      string
}

// Shade maps each value onto the palette using the column's own min and max.
// A column whose values are all equal gets the lightest colour.
func Shade(values []float64) []CellStyle {
	styles := make([]CellStyle, len(values))
	if len(values) == 0 {
		return styles
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	for i, v := range values {
		var pos float64
		if hi > lo {
			pos = (v - lo) / (hi - lo)
		}
		rgb := interpolate(pos)
		styles[i] = CellStyle{Background: hex(rgb), Color: darkText}
		if luminance(rgb) < textThreshold {
			styles[i].Color = lightText
		}
	}
	return styles
}

func interpolate(pos float64) [3]float64 {
	pos = math.Max(0, math.Min(1, pos))
	scaled := pos * float64(len(blues)-1)
	i := int(scaled)
	if i >= len(blues)-1 {
		return blues[len(blues)-1]
	}
	frac := scaled - float64(i)
	var out [3]float64
	for c := range out {
		out[c] = blues[i][c] + (blues[i+1][c]-blues[i][c])*frac
	}
	return out
}

// luminance is the WCAG relative luminance of an sRGB colour.
func luminance(rgb [3]float64) float64 {
	lin := func(c float64) float64 {
		c /= 255
		if c <= 0.03928 {
			return c / 12.92
		}
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(rgb[0]) + 0.7152*lin(rgb[1]) + 0.0722*lin(rgb[2])
}

func hex(rgb [3]float64) string {
	return fmt.Sprintf("#%02x%02x%02x", int(math.Round(rgb[0])), int(math.Round(rgb[1])), int(math.Round(rgb[2])))
}
