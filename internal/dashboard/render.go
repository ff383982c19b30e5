// Package dashboard renders the matrix and roadmap pages.
package dashboard

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

type Renderer struct {
	matrix  *template.Template
	roadmap *template.Template
}

var funcs = template.FuncMap{
	"pct": func(v float64) string { return strconv.FormatFloat(v*100, 'f', 1, 64) + "%" },
	"weight": func(v float64) string {
		return strconv.FormatFloat(v, 'f', 2, 64)
	},
	"style": func(s CellStyle) template.CSS {
		return template.CSS(fmt.Sprintf("background-color: %s; color: %s", s.Background, s.Color))
	},
}

func NewRenderer() (*Renderer, error) {
	matrix, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/matrix.html")
	if err != nil {
		return nil, fmt.Errorf("parse matrix template: %w", err)
	}
	rm, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/roadmap.html")
	if err != nil {
		return nil, fmt.Errorf("parse roadmap template: %w", err)
	}
	return &Renderer{matrix: matrix, roadmap: rm}, nil
}

// Matrix renders the prioritization matrix page. Output is buffered so a
// template failure never leaves a half-written page.
func (r *Renderer) Matrix(w io.Writer, page MatrixPage) error {
	return execute(w, r.matrix, page)
}

func (r *Renderer) Roadmap(w io.Writer, page RoadmapPage) error {
	return execute(w, r.roadmap, page)
}

func execute(w io.Writer, t *template.Template, data interface{}) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
