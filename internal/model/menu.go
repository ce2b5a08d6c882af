package model

import "time"

// Shift meal service period.
type Shift string

const (
	ShiftLunch  Shift = "lunch"
	ShiftDinner Shift = "dinner"
)

// Valid reports whether s is one of the two supported shifts.
func (s Shift) Valid() bool {
	return s == ShiftLunch || s == ShiftDinner
}

// FieldKey canonical menu-field key a raw spreadsheet header resolves to.
type FieldKey string

const (
	FieldDish1          FieldKey = "dish1"
	FieldDish2          FieldKey = "dish2"
	FieldSide           FieldKey = "side"
	FieldAccompaniment1 FieldKey = "accompaniment1"
	FieldAccompaniment2 FieldKey = "accompaniment2"
	FieldSalad          FieldKey = "salad"
	FieldVegetarian     FieldKey = "vegetarian_option"
	FieldJuice          FieldKey = "juice"
	FieldDessert        FieldKey = "dessert"
	FieldCapacity       FieldKey = "capacity"

	// FieldDate is not a menu field; it marks the date column of
	// row-wise sheets and the date header token probe.
	FieldDate FieldKey = "date"
)

// DishKeys the nine keys stored on a MenuDay, in column order.
var DishKeys = []FieldKey{
	FieldDish1, FieldDish2, FieldSide,
	FieldAccompaniment1, FieldAccompaniment2,
	FieldSalad, FieldVegetarian, FieldJuice, FieldDessert,
}

// MenuDay canonical per-date menu record. One row per calendar date.
type MenuDay struct {
	ID             int64   `json:"id"`
	MenuDate       string  `json:"menuDate"` // YYYY-MM-DD
	Dish1          *string `json:"dish1"`
	Dish2          *string `json:"dish2"`
	Side           *string `json:"side"`
	Accompaniment1 *string `json:"accompaniment1"`
	Accompaniment2 *string `json:"accompaniment2"`
	Salad          *string `json:"salad"`
	Vegetarian     *string `json:"vegetarianOption"`
	Juice          *string `json:"juice"`
	Dessert        *string `json:"dessert"`
	CreatedBy      string  `json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Shifts []MealShift `json:"shifts,omitempty"`
}

// Field returns a pointer to the dish field addressed by key, nil for
// non-dish keys.
func (d *MenuDay) Field(key FieldKey) **string {
	switch key {
	case FieldDish1:
		return &d.Dish1
	case FieldDish2:
		return &d.Dish2
	case FieldSide:
		return &d.Side
	case FieldAccompaniment1:
		return &d.Accompaniment1
	case FieldAccompaniment2:
		return &d.Accompaniment2
	case FieldSalad:
		return &d.Salad
	case FieldVegetarian:
		return &d.Vegetarian
	case FieldJuice:
		return &d.Juice
	case FieldDessert:
		return &d.Dessert
	}
	return nil
}

// MealShift per-date, per-shift availability record tied to a MenuDay.
type MealShift struct {
	ID        int64     `json:"id"`
	MenuDayID int64     `json:"menuDayId"`
	Shift     Shift     `json:"shift"`
	Capacity  *int      `json:"capacity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
