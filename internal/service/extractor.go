package service

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"reddit-persona/internal/domain"
	"reddit-persona/internal/lexicon"
)

// SignalExtractor escanea items contra una categoria del lexicon.
// El ensamblador depende de esta interfaz para poder aislar fallos por eje.
type SignalExtractor interface {
	Extract(items []domain.EvidenceItem, dimension domain.Dimension, category string) ([]domain.RawMatch, error)
}

// Extractor es la implementacion pura sobre el lexicon store.
type Extractor struct {
	lexicon *lexicon.Store
}

func NewExtractor(store *lexicon.Store) *Extractor {
	return &Extractor{lexicon: store}
}

// Extract emite matches en orden de item y, dentro de un item, titulo antes
// que cuerpo y por posicion ascendente. Determinista, sin efectos.
// Items con cuerpo vacio o borrado se saltan completos.
func (x *Extractor) Extract(items []domain.EvidenceItem, dimension domain.Dimension, category string) ([]domain.RawMatch, error) {
	terms, ok := x.lexicon.Lookup(dimension, category)
	if !ok {
		return nil, fmt.Errorf("lexicon lookup %s/%s: category not declared", dimension, category)
	}

	var out []domain.RawMatch
	for i := range items {
		item := &items[i]
		if !item.HasUsableBody() {
			continue
		}
		out = append(out, scanField(item, category, "title", item.Title, terms)...)
		out = append(out, scanField(item, category, "body", item.Body, terms)...)
	}
	return out, nil
}

func scanField(item *domain.EvidenceItem, category, field, text string, terms []string) []domain.RawMatch {
	if text == "" {
		return nil
	}

	var matches []domain.RawMatch
	folded := foldText(text)
	for _, term := range terms {
		for _, pos := range findWholeWord(folded.lower, strings.ToLower(term)) {
			matches = append(matches, domain.RawMatch{
				Item:     item,
				Category: category,
				Term:     term,
				Field:    field,
				Position: folded.orig[pos],
			})
		}
	}

	// Orden por posicion; el orden de terminos del lexicon no debe filtrarse
	// al resultado.
	sortMatchesByPosition(matches)
	return matches
}

// foldText baja el texto a minusculas conservando, por cada byte del
// resultado, el offset del byte original. Hay runas cuya forma en minuscula
// cambia de tamano (p.ej. 'İ' ocupa 2 bytes y su minuscula 'i' ocupa 1), asi
// que los offsets sobre el texto bajado no sirven para recortar el original.
type foldedText struct {
	lower string
	orig  []int
}

func foldText(text string) foldedText {
	var b strings.Builder
	b.Grow(len(text))
	orig := make([]int, 0, len(text))
	for i, r := range text {
		lr := unicode.ToLower(r)
		b.WriteRune(lr)
		for n := utf8.RuneLen(lr); n > 0; n-- {
			orig = append(orig, i)
		}
	}
	return foldedText{lower: b.String(), orig: orig}
}

// findWholeWord devuelve los offsets donde term aparece como palabra o frase
// completa: los bordes no pueden ser letras ni digitos.
func findWholeWord(lower, term string) []int {
	if term == "" {
		return nil
	}

	var positions []int
	from := 0
	for {
		i := strings.Index(lower[from:], term)
		if i < 0 {
			return positions
		}
		pos := from + i
		if boundaryBefore(lower, pos) && boundaryAfter(lower, pos+len(term)) {
			positions = append(positions, pos)
		}
		from = pos + len(term)
	}
}

func boundaryBefore(s string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:pos])
	return !isWordRune(r)
}

func boundaryAfter(s string, end int) bool {
	if end >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[end:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func sortMatchesByPosition(matches []domain.RawMatch) {
	// Insercion: los slices por campo son cortos.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].Position < matches[j-1].Position; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
}
