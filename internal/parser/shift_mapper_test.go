package parser

import (
	"testing"

	"refeitorio/internal/model"
)

func TestMapShift(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want model.Shift
	}{
		{"Almoço", model.ShiftLunch},
		{"manhã", model.ShiftLunch},
		{"TARDE", model.ShiftLunch},
		{"lunch", model.ShiftLunch},
		{"Jantar", model.ShiftDinner},
		{"janta", model.ShiftDinner},
		{"NOITE", model.ShiftDinner},
		{"dinner", model.ShiftDinner},
	}

	for _, tc := range cases {
		shift, ok := MapShift(NormalizeToken(tc.raw))
		if !ok {
			t.Fatalf("MapShift(%q): no mapping", tc.raw)
		}
		if shift != tc.want {
			t.Fatalf("MapShift(%q) = %s, want %s", tc.raw, shift, tc.want)
		}
	}

	if _, ok := MapShift("madrugada"); ok {
		t.Fatalf("unexpected mapping for unknown shift")
	}
}

func TestResolveShifts(t *testing.T) {
	t.Parallel()

	if got := ResolveShifts(nil); len(got) != 1 || got[0] != model.ShiftLunch {
		t.Fatalf("empty codes: got %v, want [lunch]", got)
	}

	got := ResolveShifts([]string{"lunch", "dinner", "almoço"})
	if len(got) != 2 || got[0] != model.ShiftLunch || got[1] != model.ShiftDinner {
		t.Fatalf("got %v, want [lunch dinner]", got)
	}

	// Unknown codes fall back to lunch.
	if got := ResolveShifts([]string{"???"}); len(got) != 1 || got[0] != model.ShiftLunch {
		t.Fatalf("unknown code: got %v, want [lunch]", got)
	}
}
