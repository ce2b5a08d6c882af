package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/xuri/excelize/v2"
)

// ErrDateUnparsable the cell value could not be resolved to a calendar date.
var ErrDateUnparsable = errors.New("unparsable date")

// serialFloor sanity floor for spreadsheet serial dates. 30000 is early
// 1982 under the 1899-12-30 epoch; anything smaller is a plain number.
const serialFloor = 30000

// dateLayouts the supported explicit textual patterns, tried in order.
// Day-first throughout; the ISO form is the only year-first one.
var dateLayouts = []string{
	"02/01/06",
	"2/1/06",
	"02/01/2006",
	"2/1/2006",
	"2006-01-02",
	"02-01-2006",
	"02-01-06",
	"2/01/06",
	"02/1/06",
	"2-1-06",
	"02.01.06",
	"02.01.2006",
}

// slashLayouts subset retried against substrings extracted by embeddedDate.
var slashLayouts = []string{
	"2/1/06",
	"2/1/2006",
}

// embeddedDate matches a slash date buried in surrounding text, e.g.
// "SEGUNDA 15/12/25".
var embeddedDate = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`)

// ResolveDate turns one raw cell value into a calendar date. Resolution
// order: spreadsheet serial number, explicit patterns, embedded slash
// date, generic free-text parse. It never panics; failure is an error
// wrapping ErrDateUnparsable.
func ResolveDate(cell string) (time.Time, error) {
	value := strings.TrimSpace(cell)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty cell", ErrDateUnparsable)
	}

	// Spreadsheet serial day count (excelize renders numeric cells as
	// digit strings). Epoch 1899-12-30.
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial < serialFloor {
			return time.Time{}, fmt.Errorf("%w: number %s below serial floor", ErrDateUnparsable, value)
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: serial %s: %v", ErrDateUnparsable, value, err)
		}
		return dateOnly(t), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return dateOnly(t), nil
		}
	}

	if sub := embeddedDate.FindString(value); sub != "" {
		for _, layout := range slashLayouts {
			if t, err := time.Parse(layout, sub); err == nil {
				return dateOnly(t), nil
			}
		}
	}

	if t, err := dateparse.ParseAny(value); err == nil {
		return dateOnly(t), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrDateUnparsable, value)
}

// ResolveDateISO resolves a cell and formats it as YYYY-MM-DD.
func ResolveDateISO(cell string) (string, error) {
	t, err := ResolveDate(cell)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
