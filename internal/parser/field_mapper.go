package parser

import (
	"strings"

	"refeitorio/internal/model"
)

// fieldSynonyms maps normalized header tokens to canonical field keys.
// Spreadsheets arrive with and without accents, with spaces or
// underscores, and with 01/02 or 1/2 suffixes; NormalizeToken already
// folds the first two, the table carries the rest. Unknown tokens map to
// nothing and are ignored.
var fieldSynonyms = map[string]model.FieldKey{
	"prato_principal_01":    model.FieldDish1,
	"prato_principal_1":     model.FieldDish1,
	"prato_principal_ptn01": model.FieldDish1,
	"prato_principal_ptn1":  model.FieldDish1,
	"prato_principal_ptn_01": model.FieldDish1,
	"prato_01":              model.FieldDish1,
	"prato_1":               model.FieldDish1,
	"principal_01":          model.FieldDish1,
	"principal_1":           model.FieldDish1,
	"prato_principal":       model.FieldDish1,

	"prato_principal_02":    model.FieldDish2,
	"prato_principal_2":     model.FieldDish2,
	"prato_principal_ptn02": model.FieldDish2,
	"prato_principal_ptn2":  model.FieldDish2,
	"prato_principal_ptn_02": model.FieldDish2,
	"prato_02":              model.FieldDish2,
	"prato_2":               model.FieldDish2,
	"principal_02":          model.FieldDish2,
	"principal_2":           model.FieldDish2,

	"guarnicao":  model.FieldSide,
	"guarnicoes": model.FieldSide,

	"acompanhamento_01": model.FieldAccompaniment1,
	"acompanhamento_1":  model.FieldAccompaniment1,
	"acompanhamento":    model.FieldAccompaniment1,
	"acomp_01":          model.FieldAccompaniment1,
	"acomp_1":           model.FieldAccompaniment1,

	"acompanhamento_02": model.FieldAccompaniment2,
	"acompanhamento_2":  model.FieldAccompaniment2,
	"acomp_02":          model.FieldAccompaniment2,
	"acomp_2":           model.FieldAccompaniment2,

	"salada":  model.FieldSalad,
	"saladas": model.FieldSalad,

	"opcao_vegetariana": model.FieldVegetarian,
	"opcao_vegetariano": model.FieldVegetarian,
	"opcao_veg":         model.FieldVegetarian,
	"vegetariano":       model.FieldVegetarian,
	"vegetariana":       model.FieldVegetarian,
	"prato_vegetariano": model.FieldVegetarian,

	"suco":        model.FieldJuice,
	"sucos":       model.FieldJuice,
	"suco_do_dia": model.FieldJuice,
	"refresco":    model.FieldJuice,

	"sobremesa":  model.FieldDessert,
	"sobremesas": model.FieldDessert,

	"capacidade": model.FieldCapacity,
	"vagas":      model.FieldCapacity,
	"quantidade": model.FieldCapacity,
	"qtd":        model.FieldCapacity,
	"limite":     model.FieldCapacity,

	"data":            model.FieldDate,
	"date":            model.FieldDate,
	"dia":             model.FieldDate,
	"data_cardapio":   model.FieldDate,
	"data_do_cardapio": model.FieldDate,
}

// headerFragments substrings that identify a label cell as a field header.
// Used to spot header rows repeated inside the data area.
var headerFragments = []string{
	"prato", "principal", "guarnicao", "acompanhamento",
	"salada", "vegetarian", "suco", "sobremesa", "data",
}

// MapField maps a normalized header token to its canonical field key.
// The second return is false for unrecognized tokens; those columns are
// extraneous, not errors.
func MapField(token string) (model.FieldKey, bool) {
	key, ok := fieldSynonyms[token]
	return key, ok
}

// LooksLikeHeader reports whether a normalized token contains a known
// field-name fragment. Some sheets repeat their header row mid-data.
func LooksLikeHeader(token string) bool {
	for _, frag := range headerFragments {
		if strings.Contains(token, frag) {
			return true
		}
	}
	return false
}

// MapHeaderRow maps a raw header row through NormalizeToken and MapField,
// returning column index → canonical key for the recognized columns.
func MapHeaderRow(headers []string) map[int]model.FieldKey {
	mapped := make(map[int]model.FieldKey)
	for idx, raw := range headers {
		token := NormalizeToken(raw)
		if token == "" {
			continue
		}
		if key, ok := MapField(token); ok {
			mapped[idx] = key
		}
	}
	return mapped
}
