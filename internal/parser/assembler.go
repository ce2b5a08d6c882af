package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"refeitorio/internal/model"
)

// Assemble turns a raw grid plus the detected layout into (date,
// field-map) records. All three variants share the contract: records
// missing dish1 or dish2 never come back as records, they come back as
// errors, and a bad date skips only the row or column carrying it.
func Assemble(grid [][]string, layout Layout) ([]model.ImportRecord, []model.ImportError) {
	if len(grid) == 0 {
		return nil, nil
	}
	switch layout {
	case LayoutRowWise:
		return assembleRowWise(grid)
	case LayoutColumnar:
		return assembleColumnar(grid)
	default:
		return assembleTransposed(grid)
	}
}

// assembleRowWise row 0 is a header naming fields, one of them the date;
// each following non-empty row is one day.
func assembleRowWise(grid [][]string) ([]model.ImportRecord, []model.ImportError) {
	var records []model.ImportRecord
	var errs []model.ImportError

	columns := MapHeaderRow(grid[0])
	dateCol := -1
	for idx, key := range columns {
		if key == model.FieldDate {
			dateCol = idx
			break
		}
	}
	if dateCol < 0 {
		errs = append(errs, model.ImportError{
			Locator: "row 1",
			Message: "header row has no date column",
		})
		return nil, errs
	}

	for rowIdx := 1; rowIdx < len(grid); rowIdx++ {
		row := grid[rowIdx]
		if rowEmpty(row) {
			continue
		}
		locator := fmt.Sprintf("row %d", rowIdx+1)

		date, err := ResolveDateISO(valueAt(row, dateCol))
		if err != nil {
			errs = append(errs, model.ImportError{Locator: locator, Message: err.Error()})
			continue
		}

		fields := map[model.FieldKey]string{}
		for colIdx, key := range columns {
			if key == model.FieldDate {
				continue
			}
			if v := strings.TrimSpace(valueAt(row, colIdx)); v != "" {
				fields[key] = v
			}
		}

		rec, recErr := buildRecord(date, locator, fields)
		if recErr != nil {
			errs = append(errs, *recErr)
			continue
		}
		records = append(records, rec)
	}

	return records, errs
}

// assembleColumnar column 0 holds the dates, row 0 names the fields for
// columns 1..N. Rows whose first data cell looks like a field header are
// spurious header repeats and are skipped without an error.
func assembleColumnar(grid [][]string) ([]model.ImportRecord, []model.ImportError) {
	var records []model.ImportRecord
	var errs []model.ImportError

	columns := MapHeaderRow(grid[0])
	delete(columns, 0) // column 0 is implicitly the date

	for rowIdx := 1; rowIdx < len(grid); rowIdx++ {
		row := grid[rowIdx]
		if rowEmpty(row) {
			continue
		}
		if LooksLikeHeader(NormalizeToken(valueAt(row, 1))) {
			continue
		}
		locator := fmt.Sprintf("row %d", rowIdx+1)

		date, err := ResolveDateISO(valueAt(row, 0))
		if err != nil {
			errs = append(errs, model.ImportError{Locator: locator, Message: err.Error()})
			continue
		}

		fields := map[model.FieldKey]string{}
		for colIdx, key := range columns {
			if v := strings.TrimSpace(valueAt(row, colIdx)); v != "" {
				fields[key] = v
			}
		}

		rec, recErr := buildRecord(date, locator, fields)
		if recErr != nil {
			errs = append(errs, *recErr)
			continue
		}
		records = append(records, rec)
	}

	return records, errs
}

// assembleTransposed field labels run down column 0, dates run across
// row 0. Every kept date-column becomes one record read vertically.
func assembleTransposed(grid [][]string) ([]model.ImportRecord, []model.ImportError) {
	var records []model.ImportRecord
	var errs []model.ImportError

	// Label rows: row index -> canonical key.
	labels := map[int]model.FieldKey{}
	for rowIdx := 1; rowIdx < len(grid); rowIdx++ {
		token := NormalizeToken(valueAt(grid[rowIdx], 0))
		if token == "" {
			continue
		}
		if key, ok := MapField(token); ok && key != model.FieldDate {
			labels[rowIdx] = key
		}
	}

	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}

	for colIdx := 1; colIdx < width; colIdx++ {
		raw := valueAt(grid[0], colIdx)
		if strings.TrimSpace(raw) == "" {
			continue
		}
		locator := fmt.Sprintf("column %s", columnName(colIdx))

		date, err := ResolveDateISO(raw)
		if err != nil {
			errs = append(errs, model.ImportError{Locator: locator, Message: err.Error()})
			continue
		}

		fields := map[model.FieldKey]string{}
		for rowIdx, key := range labels {
			if v := CollapseSpaces(valueAt(grid[rowIdx], colIdx)); v != "" {
				fields[key] = v
			}
		}

		rec, recErr := buildRecord(date, locator, fields)
		if recErr != nil {
			errs = append(errs, *recErr)
			continue
		}
		records = append(records, rec)
	}

	return records, errs
}

// buildRecord applies the shared validation: dish1 and dish2 are
// required, capacity is an optional integer (non-numeric means absent).
func buildRecord(date, locator string, fields map[model.FieldKey]string) (model.ImportRecord, *model.ImportError) {
	rec := model.ImportRecord{
		Date:    date,
		Fields:  map[model.FieldKey]string{},
		Locator: fmt.Sprintf("%s (%s)", locator, date),
	}

	for key, value := range fields {
		if key == model.FieldCapacity {
			if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
				rec.Capacity = &n
			}
			continue
		}
		rec.Fields[key] = value
	}

	for _, required := range []model.FieldKey{model.FieldDish1, model.FieldDish2} {
		if rec.Fields[required] == "" {
			return model.ImportRecord{}, &model.ImportError{
				Locator: rec.Locator,
				Message: fmt.Sprintf("missing required field %s", required),
			}
		}
	}

	return rec, nil
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func valueAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// columnName spreadsheet-style column letter for a zero-based index.
func columnName(idx int) string {
	name, err := excelize.ColumnNumberToName(idx + 1)
	if err != nil {
		return strconv.Itoa(idx + 1)
	}
	return name
}
