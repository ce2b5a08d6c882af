package model

// ImportRecord one assembled (date, field-map) pair. Transient: it only
// exists between assembly and persistence.
type ImportRecord struct {
	Date     string // YYYY-MM-DD
	Fields   map[FieldKey]string
	Capacity *int
	Locator  string // source position, e.g. "row 4" / "column C" / the date
}

// ImportAction what the upsert engine did with a tuple.
type ImportAction string

const (
	ActionCreated ImportAction = "created"
	ActionUpdated ImportAction = "updated"
)

// CreatedEntry one successfully persisted (record, shift) tuple.
type CreatedEntry struct {
	ID     int64        `json:"id"` // MenuDay id
	Date   string       `json:"date"`
	Shift  Shift        `json:"shift"`
	Action ImportAction `json:"action"`
}

// ImportError one rejected record or failed write, batch continues past it.
type ImportError struct {
	Locator string `json:"locator"`
	Message string `json:"message"`
}

// ProbeOutcome date-resolution outcome for one layout-probe cell.
type ProbeOutcome struct {
	Cell     string `json:"cell"`
	Value    string `json:"value"`
	Resolved string `json:"resolved,omitempty"`
	Err      string `json:"error,omitempty"`
}

// DebugInfo diagnostic payload returned when the caller sets debug=true.
// It never changes which writes occur.
type DebugInfo struct {
	Rows           [][]string   `json:"rows"` // first three rows verbatim
	RowCount       int          `json:"rowCount"`
	ColCount       int          `json:"colCount"`
	Layout         string       `json:"layout"`
	ColumnarProbe  ProbeOutcome `json:"columnarProbe"`
	TransposedProbe ProbeOutcome `json:"transposedProbe"`
}

// ImportResult aggregated outcome of one import call. Both lists keep
// pipeline order; an empty grid yields two empty lists.
type ImportResult struct {
	Created []CreatedEntry `json:"created"`
	Errors  []ImportError  `json:"errors"`
	Debug   *DebugInfo     `json:"debug,omitempty"`
}
