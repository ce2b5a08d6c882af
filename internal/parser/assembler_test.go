package parser

import (
	"strings"
	"testing"

	"refeitorio/internal/model"
)

func TestAssemble_Transposed(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"", "15/12/25", "16/12/25"},
		{"prato principal 01", "Fricassé", "Lombo"},
		{"prato principal 02", "Frango", "Peixe"},
		{"guarnição", "Arroz   branco", "Purê"},
	}

	records, errs := Assemble(grid, LayoutTransposed)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	if records[0].Date != "2025-12-15" || records[1].Date != "2025-12-16" {
		t.Fatalf("dates = %s, %s", records[0].Date, records[1].Date)
	}
	if records[0].Fields[model.FieldDish1] != "Fricassé" {
		t.Fatalf("dish1 = %q", records[0].Fields[model.FieldDish1])
	}
	if records[1].Fields[model.FieldDish2] != "Peixe" {
		t.Fatalf("dish2 = %q", records[1].Fields[model.FieldDish2])
	}
	// Internal whitespace runs collapse to one space.
	if records[0].Fields[model.FieldSide] != "Arroz branco" {
		t.Fatalf("side = %q", records[0].Fields[model.FieldSide])
	}
}

func TestAssemble_TransposedBadDateColumn(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"", "15/12/25", "feriado"},
		{"prato principal 01", "Fricassé", "Lombo"},
		{"prato principal 02", "Frango", "Peixe"},
	}

	records, errs := Assemble(grid, LayoutTransposed)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Locator, "column C") {
		t.Fatalf("locator = %q", errs[0].Locator)
	}
}

func TestAssemble_RowWise(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"data", "prato_principal_ptn01", "prato_principal_ptn02", "vagas"},
		{"2026-01-10", "Arroz", "Feijão", "120"},
		{"", "", "", ""},
		{"2026-01-11", "Carne", "Frango", "abc"},
	}

	records, errs := Assemble(grid, LayoutRowWise)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Date != "2026-01-10" {
		t.Fatalf("date = %s", records[0].Date)
	}
	if records[0].Capacity == nil || *records[0].Capacity != 120 {
		t.Fatalf("capacity = %v", records[0].Capacity)
	}
	// Non-numeric capacity means absent, not an error.
	if records[1].Capacity != nil {
		t.Fatalf("capacity = %v, want nil", records[1].Capacity)
	}
}

func TestAssemble_RowWiseUnparsableDate(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"data", "prato_principal_ptn01", "prato_principal_ptn02"},
		{"not-a-date", "Arroz", "Feijão"},
	}

	records, errs := Assemble(grid, LayoutRowWise)
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Locator != "row 2" {
		t.Fatalf("locator = %q", errs[0].Locator)
	}
}

func TestAssemble_MissingRequiredDish(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"data", "prato_principal_ptn01", "prato_principal_ptn02"},
		{"2026-01-10", "", "Feijão"},
	}

	records, errs := Assemble(grid, LayoutRowWise)
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Message, "dish1") {
		t.Fatalf("message = %q", errs[0].Message)
	}
	if !strings.Contains(errs[0].Locator, "2026-01-10") {
		t.Fatalf("locator should carry the date: %q", errs[0].Locator)
	}
}

func TestAssemble_ColumnarSkipsRepeatedHeaders(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Data", "Prato Principal 01", "Prato Principal 02"},
		{"15/12/25", "Fricassé", "Frango"},
		{"Data", "Prato Principal 01", "Prato Principal 02"}, // header repeat
		{"16/12/25", "Lombo", "Peixe"},
	}

	records, errs := Assemble(grid, LayoutColumnar)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[1].Date != "2025-12-16" || records[1].Fields[model.FieldDish1] != "Lombo" {
		t.Fatalf("second record = %+v", records[1])
	}
}

func TestAssemble_EmptyGrid(t *testing.T) {
	t.Parallel()

	records, errs := Assemble(nil, LayoutTransposed)
	if len(records) != 0 || len(errs) != 0 {
		t.Fatalf("expected empty output, got %v / %v", records, errs)
	}
}
