// Package export writes the ranked prioritization matrix to an xlsx workbook
// and reads it back.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/MikeSquared-Agency/Prioritization/internal/scoring"
)

const (
	FileName    = "prioritization_matrix.xlsx"
	SheetName   = "Prioritization Matrix"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// defaultSheet is the sheet excelize creates with a new workbook.
	defaultSheet = "Sheet1"
)

// WeightedScoreColumn heads the computed column.
const WeightedScoreColumn = "Weighted Score"

// Columns returns the header row in export order.
func Columns() []string {
	cols := []string{"Initiative"}
	for _, c := range scoring.Criteria() {
		cols = append(cols, string(c))
	}
	return append(cols, WeightedScoreColumn)
}

// ExportTable writes ranked into a single-sheet workbook, header first, rows in
// ranked order.
func ExportTable(ranked []scoring.RankedResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, 0, len(Columns()))
	for _, c := range Columns() {
		header = append(header, c)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, r := range ranked {
		row := []interface{}{r.Name}
		for _, c := range scoring.Criteria() {
			v, ok := r.Score(c)
			if !ok {
				return nil, &scoring.MissingFieldError{Row: i, Initiative: r.Name, Field: c.Field()}
			}
			row = append(row, v)
		}
		row = append(row, r.WeightedScore)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ReadTable parses a workbook written by ExportTable. Ranks follow row order.
func ReadTable(r io.Reader) ([]scoring.RankedResult, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	if err := checkHeader(rows[0], len(Columns())); err != nil {
		return nil, err
	}

	out := make([]scoring.RankedResult, 0, len(rows)-1)
	for i, row := range rows[1:] {
		in, err := parseInitiative(i, row)
		if err != nil {
			return nil, err
		}
		col := len(Columns()) - 1
		if len(row) <= col || strings.TrimSpace(row[col]) == "" {
			return nil, &scoring.MissingFieldError{Row: i, Initiative: in.Name, Field: "weighted_score"}
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: weighted score %q: %w", i+2, row[col], err)
		}
		out = append(out, scoring.RankedResult{Initiative: in, WeightedScore: score, Rank: i + 1})
	}
	return out, nil
}

// ReadInitiatives parses the initiative columns of a workbook and ignores any
// weighted score column, so both exported matrices and hand-made sheets with
// just the five input columns can be imported.
func ReadInitiatives(r io.Reader) ([]scoring.Initiative, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	if err := checkHeader(rows[0], len(Columns())-1); err != nil {
		return nil, err
	}

	out := make([]scoring.Initiative, 0, len(rows)-1)
	for i, row := range rows[1:] {
		in, err := parseInitiative(i, row)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

func readRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := SheetName
	if idx, _ := f.GetSheetIndex(SheetName); idx < 0 {
		// fall back to the first sheet for workbooks not written by us
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}
	return rows, nil
}

func checkHeader(header []string, n int) error {
	want := Columns()[:n]
	if len(header) < n {
		return fmt.Errorf("header has %d columns, want %d", len(header), n)
	}
	for i, c := range want {
		if !strings.EqualFold(strings.TrimSpace(header[i]), c) {
			return fmt.Errorf("column %d is %q, want %q", i+1, header[i], c)
		}
	}
	return nil
}

// parseInitiative reads the name and the four score cells. Blank score cells
// become nil so ranking reports them as missing.
func parseInitiative(i int, row []string) (scoring.Initiative, error) {
	in := scoring.Initiative{}
	if len(row) > 0 {
		in.Name = row[0]
	}
	targets := []**int{&in.Impact, &in.Cost, &in.Feasibility, &in.TimeToBenefit}
	for j, target := range targets {
		col := j + 1
		if len(row) <= col || strings.TrimSpace(row[col]) == "" {
			continue
		}
		v, err := parseScore(row[col])
		if err != nil {
			return in, fmt.Errorf("row %d, %s: %w", i+2, scoring.Criteria()[j], err)
		}
		*target = &v
	}
	return in, nil
}

// parseScore accepts integers and integral floats such as "4.0".
func parseScore(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("score %q is not an integer", s)
	}
	return int(f), nil
}
