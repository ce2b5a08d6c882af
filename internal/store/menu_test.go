package store

import (
	"path/filepath"
	"testing"

	"refeitorio/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(filepath.Join(t.TempDir(), "refeitorio.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func countRows(t *testing.T, st *Store, table string) int {
	t.Helper()
	var n int
	if err := st.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestUpsertDayShift_CreateThenUpdate(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	params := UpsertParams{
		Date:  "2025-12-15",
		Shift: model.ShiftLunch,
		Fields: map[model.FieldKey]string{
			model.FieldDish1: "Fricassé",
			model.FieldDish2: "Frango",
			model.FieldSalad: "Alface",
		},
		ActorID: "tester",
	}

	first, err := st.UpsertDayShift(params)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.Action != model.ActionCreated {
		t.Fatalf("first action = %s, want created", first.Action)
	}

	second, err := st.UpsertDayShift(params)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.Action != model.ActionUpdated {
		t.Fatalf("second action = %s, want updated", second.Action)
	}
	if second.MenuDayID != first.MenuDayID {
		t.Fatalf("day id changed: %d -> %d", first.MenuDayID, second.MenuDayID)
	}

	if n := countRows(t, st, "menu_days"); n != 1 {
		t.Fatalf("menu_days count = %d, want 1", n)
	}
	if n := countRows(t, st, "meal_shifts"); n != 1 {
		t.Fatalf("meal_shifts count = %d, want 1", n)
	}

	day, err := st.GetMenuDay("2025-12-15")
	if err != nil {
		t.Fatalf("get day: %v", err)
	}
	if day == nil || day.Dish1 == nil || *day.Dish1 != "Fricassé" {
		t.Fatalf("day = %+v", day)
	}
	if day.CreatedBy != "tester" {
		t.Fatalf("created_by = %q", day.CreatedBy)
	}
}

func TestUpsertDayShift_MergeKeepsAbsentFields(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	_, err := st.UpsertDayShift(UpsertParams{
		Date:  "2025-12-15",
		Shift: model.ShiftLunch,
		Fields: map[model.FieldKey]string{
			model.FieldDish1: "Fricassé",
			model.FieldDish2: "Frango",
			model.FieldSalad: "Alface",
		},
		ActorID: "a",
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	// Later call carries only some fields; stored ones must survive.
	_, err = st.UpsertDayShift(UpsertParams{
		Date:  "2025-12-15",
		Shift: model.ShiftLunch,
		Fields: map[model.FieldKey]string{
			model.FieldDish1: "Lombo",
			model.FieldJuice: "Laranja",
		},
		ActorID: "b",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	day, err := st.GetMenuDay("2025-12-15")
	if err != nil {
		t.Fatalf("get day: %v", err)
	}
	if *day.Dish1 != "Lombo" {
		t.Fatalf("dish1 = %q, want overwritten", *day.Dish1)
	}
	if day.Dish2 == nil || *day.Dish2 != "Frango" {
		t.Fatalf("dish2 should survive merge: %v", day.Dish2)
	}
	if day.Salad == nil || *day.Salad != "Alface" {
		t.Fatalf("salad should survive merge: %v", day.Salad)
	}
	if day.Juice == nil || *day.Juice != "Laranja" {
		t.Fatalf("juice = %v", day.Juice)
	}
	// Creator is recorded at creation and never rewritten by merges.
	if day.CreatedBy != "a" {
		t.Fatalf("created_by = %q, want a", day.CreatedBy)
	}
}

func TestUpsertDayShift_CapacityOnlyWhenSupplied(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	fields := map[model.FieldKey]string{
		model.FieldDish1: "Arroz",
		model.FieldDish2: "Feijão",
	}

	if _, err := st.UpsertDayShift(UpsertParams{Date: "2026-01-10", Shift: model.ShiftLunch, Fields: fields}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	day, _ := st.GetMenuDay("2026-01-10")
	if day.Shifts[0].Capacity != nil {
		t.Fatalf("capacity = %v, want nil", day.Shifts[0].Capacity)
	}

	capacity := 120
	if _, err := st.UpsertDayShift(UpsertParams{Date: "2026-01-10", Shift: model.ShiftLunch, Fields: fields, Capacity: &capacity}); err != nil {
		t.Fatalf("upsert with capacity: %v", err)
	}

	day, _ = st.GetMenuDay("2026-01-10")
	if day.Shifts[0].Capacity == nil || *day.Shifts[0].Capacity != 120 {
		t.Fatalf("capacity = %v, want 120", day.Shifts[0].Capacity)
	}

	// A third call without capacity leaves the stored one alone.
	if _, err := st.UpsertDayShift(UpsertParams{Date: "2026-01-10", Shift: model.ShiftLunch, Fields: fields}); err != nil {
		t.Fatalf("upsert without capacity: %v", err)
	}

	day, _ = st.GetMenuDay("2026-01-10")
	if day.Shifts[0].Capacity == nil || *day.Shifts[0].Capacity != 120 {
		t.Fatalf("capacity = %v, want 120 preserved", day.Shifts[0].Capacity)
	}
}

func TestUpsertDayShift_TwoShiftsOneDay(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	fields := map[model.FieldKey]string{
		model.FieldDish1: "Arroz",
		model.FieldDish2: "Feijão",
	}

	lunch, err := st.UpsertDayShift(UpsertParams{Date: "2026-01-10", Shift: model.ShiftLunch, Fields: fields})
	if err != nil {
		t.Fatalf("lunch upsert: %v", err)
	}
	dinner, err := st.UpsertDayShift(UpsertParams{Date: "2026-01-10", Shift: model.ShiftDinner, Fields: fields})
	if err != nil {
		t.Fatalf("dinner upsert: %v", err)
	}

	if lunch.MenuDayID != dinner.MenuDayID {
		t.Fatalf("shifts landed on different days: %d vs %d", lunch.MenuDayID, dinner.MenuDayID)
	}
	if lunch.Action != model.ActionCreated || dinner.Action != model.ActionUpdated {
		t.Fatalf("actions = %s, %s", lunch.Action, dinner.Action)
	}

	if n := countRows(t, st, "menu_days"); n != 1 {
		t.Fatalf("menu_days count = %d, want 1", n)
	}
	if n := countRows(t, st, "meal_shifts"); n != 2 {
		t.Fatalf("meal_shifts count = %d, want 2", n)
	}
}

func TestUpsertDayShift_InvalidShift(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	_, err := st.UpsertDayShift(UpsertParams{Date: "2026-01-10", Shift: "brunch"})
	if err == nil {
		t.Fatalf("expected error for invalid shift")
	}
}

func TestListMenuDays(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	fields := map[model.FieldKey]string{
		model.FieldDish1: "Arroz",
		model.FieldDish2: "Feijão",
	}
	for _, date := range []string{"2026-01-10", "2026-01-11", "2026-02-01"} {
		if _, err := st.UpsertDayShift(UpsertParams{Date: date, Shift: model.ShiftLunch, Fields: fields}); err != nil {
			t.Fatalf("upsert %s: %v", date, err)
		}
	}

	days, err := st.ListMenuDays("2026-01-01", "2026-01-31")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	if days[0].MenuDate != "2026-01-10" || days[1].MenuDate != "2026-01-11" {
		t.Fatalf("dates = %s, %s", days[0].MenuDate, days[1].MenuDate)
	}
	if len(days[0].Shifts) != 1 {
		t.Fatalf("shifts = %v", days[0].Shifts)
	}
}
