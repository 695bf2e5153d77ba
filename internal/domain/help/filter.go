package help

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FilterFAQs devuelve, en el orden original, las preguntas de la categoría cuyo
// texto de pregunta o respuesta contiene searchTerm sin distinguir mayúsculas
// ni tildes. Una categoría inexistente produce un resultado vacío.
func FilterFAQs(kb *KnowledgeBase, categoryID, searchTerm string) []Entry {
	cat, ok := kb.Category(categoryID)
	if !ok {
		return []Entry{}
	}
	needle := Fold(searchTerm)
	out := make([]Entry, 0, len(cat.Entries))
	for _, e := range cat.Entries {
		if needle == "" || strings.Contains(Fold(e.Question), needle) || strings.Contains(Fold(e.Answer), needle) {
			out = append(out, e)
		}
	}
	return out
}

// ToggleExpanded devuelve nil si se pulsa la pregunta ya abierta y, si no, la pulsada.
func ToggleExpanded(current *int, clicked int) *int {
	if current != nil && *current == clicked {
		return nil
	}
	id := clicked
	return &id
}

// Fold normaliza un texto para la búsqueda: minúsculas y sin diacríticos.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, cases.Lower(language.Und))
	folded, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}
