package usecase

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/asset-tracker/internal/domain/status"
)

// sortByName ordena alfabéticamente con colación pt-BR ("Ângela" junto a "Ana", sin distinguir mayúsculas).
// collate.Collator no es seguro para uso concurrente: se crea uno por llamada.
func sortByName[T any](items []T, name func(T) string) {
	col := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		return col.CompareString(name(items[i]), name(items[j])) < 0
	})
}

// sortByDateDesc ordena por fecha descendente; las fechas ilegibles van al final.
func sortByDateDesc[T any](items []T, date func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		a, okA := status.ParseDate(date(items[i]))
		b, okB := status.ParseDate(date(items[j]))
		switch {
		case okA && okB:
			return a.After(b)
		case okA:
			return true
		default:
			return false
		}
	})
}
