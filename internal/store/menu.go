package store

import (
	"database/sql"
	"fmt"

	"refeitorio/internal/model"
)

// UpsertParams one (date, shift, field-map) tuple to persist.
type UpsertParams struct {
	Date     string // YYYY-MM-DD
	Shift    model.Shift
	Fields   map[model.FieldKey]string
	Capacity *int
	ActorID  string
}

// UpsertResult what happened to the tuple.
type UpsertResult struct {
	MenuDayID int64              `json:"menuDayId"`
	Shift     model.Shift        `json:"shift"`
	Action    model.ImportAction `json:"action"`
}

// UpsertDayShift persists one tuple inside a single transaction: the
// MenuDay is created on first sight of its date, later calls merge the
// supplied fields over the stored row without touching absent ones; the
// MealShift is created on first sight of (day, shift) and its capacity
// changes only when the caller supplies one. Re-running the same tuple
// converges to the same stored state.
func (s *Store) UpsertDayShift(p UpsertParams) (UpsertResult, error) {
	if !p.Shift.Valid() {
		return UpsertResult{}, fmt.Errorf("invalid shift: %q", p.Shift)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return UpsertResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result := UpsertResult{Shift: p.Shift}

	var dayID int64
	err = tx.QueryRow("SELECT id FROM menu_days WHERE menu_date = ?", p.Date).Scan(&dayID)
	switch {
	case err == sql.ErrNoRows:
		dayID, err = insertMenuDay(tx, p)
		if err != nil {
			return UpsertResult{}, err
		}
		result.Action = model.ActionCreated
	case err != nil:
		return UpsertResult{}, fmt.Errorf("failed to look up menu day: %w", err)
	default:
		if err := mergeMenuDay(tx, dayID, p.Fields); err != nil {
			return UpsertResult{}, err
		}
		result.Action = model.ActionUpdated
	}
	result.MenuDayID = dayID

	if err := upsertMealShift(tx, dayID, p.Shift, p.Capacity); err != nil {
		return UpsertResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return UpsertResult{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return result, nil
}

func insertMenuDay(tx *sql.Tx, p UpsertParams) (int64, error) {
	args := []interface{}{p.Date}
	for _, key := range model.DishKeys {
		args = append(args, nullable(p.Fields, key))
	}
	args = append(args, p.ActorID)

	res, err := tx.Exec(`
		INSERT INTO menu_days (
			menu_date,
			dish1, dish2, side, accompaniment1, accompaniment2,
			salad, vegetarian_option, juice, dessert,
			created_by
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert menu day: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get menu day id: %w", err)
	}
	return id, nil
}

// mergeMenuDay overwrites only the fields present in the incoming map;
// a later call carrying fewer fields cannot erase previously stored ones.
func mergeMenuDay(tx *sql.Tx, dayID int64, fields map[model.FieldKey]string) error {
	setClause := ""
	var args []interface{}
	for _, key := range model.DishKeys {
		value, ok := fields[key]
		if !ok || value == "" {
			continue
		}
		if setClause != "" {
			setClause += ", "
		}
		setClause += string(key) + " = ?"
		args = append(args, value)
	}
	if setClause == "" {
		return nil
	}

	args = append(args, dayID)
	query := "UPDATE menu_days SET " + setClause + ", updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to merge menu day: %w", err)
	}
	return nil
}

func upsertMealShift(tx *sql.Tx, dayID int64, shift model.Shift, capacity *int) error {
	var shiftID int64
	err := tx.QueryRow(
		"SELECT id FROM meal_shifts WHERE menu_day_id = ? AND shift = ?",
		dayID, string(shift),
	).Scan(&shiftID)

	switch {
	case err == sql.ErrNoRows:
		_, err := tx.Exec(
			"INSERT INTO meal_shifts (menu_day_id, shift, capacity) VALUES (?, ?, ?)",
			dayID, string(shift), capacityArg(capacity),
		)
		if err != nil {
			return fmt.Errorf("failed to insert meal shift: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to look up meal shift: %w", err)
	case capacity != nil:
		_, err := tx.Exec(
			"UPDATE meal_shifts SET capacity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
			*capacity, shiftID,
		)
		if err != nil {
			return fmt.Errorf("failed to update meal shift: %w", err)
		}
	}
	return nil
}

// GetMenuDay loads one day with its shifts. Returns (nil, nil) when the
// date has no row.
func (s *Store) GetMenuDay(date string) (*model.MenuDay, error) {
	row := s.db.QueryRow(`
		SELECT id, menu_date,
			dish1, dish2, side, accompaniment1, accompaniment2,
			salad, vegetarian_option, juice, dessert,
			created_by, created_at, updated_at
		FROM menu_days WHERE menu_date = ?
	`, date)

	day, err := scanMenuDay(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load menu day: %w", err)
	}

	shifts, err := s.loadShifts(day.ID)
	if err != nil {
		return nil, err
	}
	day.Shifts = shifts
	return day, nil
}

// ListMenuDays loads the days in [from, to] inclusive, date order, with
// their shifts.
func (s *Store) ListMenuDays(from, to string) ([]*model.MenuDay, error) {
	rows, err := s.db.Query(`
		SELECT id, menu_date,
			dish1, dish2, side, accompaniment1, accompaniment2,
			salad, vegetarian_option, juice, dessert,
			created_by, created_at, updated_at
		FROM menu_days
		WHERE menu_date >= ? AND menu_date <= ?
		ORDER BY menu_date
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu days: %w", err)
	}
	defer rows.Close()

	var days []*model.MenuDay
	for rows.Next() {
		day, err := scanMenuDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu day: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, day := range days {
		shifts, err := s.loadShifts(day.ID)
		if err != nil {
			return nil, err
		}
		day.Shifts = shifts
	}
	return days, nil
}

func (s *Store) loadShifts(dayID int64) ([]model.MealShift, error) {
	rows, err := s.db.Query(`
		SELECT id, menu_day_id, shift, capacity, created_at, updated_at
		FROM meal_shifts WHERE menu_day_id = ? ORDER BY shift
	`, dayID)
	if err != nil {
		return nil, fmt.Errorf("failed to load meal shifts: %w", err)
	}
	defer rows.Close()

	var shifts []model.MealShift
	for rows.Next() {
		var ms model.MealShift
		var capacity sql.NullInt64
		if err := rows.Scan(&ms.ID, &ms.MenuDayID, &ms.Shift, &capacity, &ms.CreatedAt, &ms.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meal shift: %w", err)
		}
		if capacity.Valid {
			n := int(capacity.Int64)
			ms.Capacity = &n
		}
		shifts = append(shifts, ms)
	}
	return shifts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMenuDay(r rowScanner) (*model.MenuDay, error) {
	var day model.MenuDay
	err := r.Scan(
		&day.ID, &day.MenuDate,
		&day.Dish1, &day.Dish2, &day.Side,
		&day.Accompaniment1, &day.Accompaniment2,
		&day.Salad, &day.Vegetarian, &day.Juice, &day.Dessert,
		&day.CreatedBy, &day.CreatedAt, &day.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func nullable(fields map[model.FieldKey]string, key model.FieldKey) interface{} {
	if v, ok := fields[key]; ok && v != "" {
		return v
	}
	return nil
}

func capacityArg(capacity *int) interface{} {
	if capacity == nil {
		return nil
	}
	return *capacity
}
