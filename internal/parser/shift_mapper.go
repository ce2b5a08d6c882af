package parser

import "refeitorio/internal/model"

// shiftSynonyms maps normalized shift labels to the canonical enum.
// Morning and afternoon service both land on lunch; only the night
// service is dinner.
var shiftSynonyms = map[string]model.Shift{
	"lunch":  model.ShiftLunch,
	"almoco": model.ShiftLunch,
	"manha":  model.ShiftLunch,
	"tarde":  model.ShiftLunch,

	"dinner": model.ShiftDinner,
	"jantar": model.ShiftDinner,
	"janta":  model.ShiftDinner,
	"noite":  model.ShiftDinner,
}

// MapShift maps a normalized shift token to the canonical shift. The
// second return is false for unknown tokens; callers default to lunch.
func MapShift(token string) (model.Shift, bool) {
	shift, ok := shiftSynonyms[token]
	return shift, ok
}

// ResolveShifts maps a list of raw shift codes to canonical shifts,
// deduplicated, preserving first-seen order. Empty input and unknown
// codes fall back to lunch.
func ResolveShifts(codes []string) []model.Shift {
	var shifts []model.Shift
	seen := map[model.Shift]bool{}
	for _, code := range codes {
		shift, ok := MapShift(NormalizeToken(code))
		if !ok {
			shift = model.ShiftLunch
		}
		if !seen[shift] {
			seen[shift] = true
			shifts = append(shifts, shift)
		}
	}
	if len(shifts) == 0 {
		shifts = []model.Shift{model.ShiftLunch}
	}
	return shifts
}
