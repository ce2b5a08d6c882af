package parser

import "refeitorio/internal/model"

// Layout physical shape of an incoming grid. Source files never declare
// it; it is probed.
type Layout string

const (
	// LayoutRowWise one row per day, row 0 names the fields (one of
	// which is the date).
	LayoutRowWise Layout = "row-wise"
	// LayoutColumnar dates run down column 0, row 0 names the fields
	// for columns 1..N.
	LayoutColumnar Layout = "columnar"
	// LayoutTransposed field labels run down column 0, dates run
	// across row 0 for columns 1..N.
	LayoutTransposed Layout = "transposed"
)

// Detection layout decision plus the two probe-cell outcomes, kept for
// the debug payload.
type Detection struct {
	Layout          Layout
	ColumnarProbe   model.ProbeOutcome
	TransposedProbe model.ProbeOutcome
}

// DetectLayout decides which of the three layouts the grid uses. Probe
// order favors the cheapest unambiguous signal, a literal date in a fixed
// cell, before falling back to header-text heuristics:
//
//  1. cell A2 resolves as a date        -> columnar
//  2. cell B1 resolves as a date        -> transposed
//  3. row 0 carries a date field token  -> row-wise
//  4. otherwise                          -> transposed
//
// The final fallback matches the most common shape seen when the top-left
// header cell is blank.
func DetectLayout(grid [][]string) Detection {
	d := Detection{
		ColumnarProbe:   probe("A2", cellAt(grid, 1, 0)),
		TransposedProbe: probe("B1", cellAt(grid, 0, 1)),
	}

	if d.ColumnarProbe.Resolved != "" {
		d.Layout = LayoutColumnar
		return d
	}
	if d.TransposedProbe.Resolved != "" {
		d.Layout = LayoutTransposed
		return d
	}
	if len(grid) > 0 && rowHasDateHeader(grid[0]) {
		d.Layout = LayoutRowWise
		return d
	}

	d.Layout = LayoutTransposed
	return d
}

func probe(cell, value string) model.ProbeOutcome {
	out := model.ProbeOutcome{Cell: cell, Value: value}
	iso, err := ResolveDateISO(value)
	if err != nil {
		out.Err = err.Error()
		return out
	}
	out.Resolved = iso
	return out
}

func cellAt(grid [][]string, row, col int) string {
	if row >= len(grid) || col >= len(grid[row]) {
		return ""
	}
	return grid[row][col]
}

func rowHasDateHeader(row []string) bool {
	for _, cell := range row {
		if key, ok := MapField(NormalizeToken(cell)); ok && key == model.FieldDate {
			return true
		}
	}
	return false
}
