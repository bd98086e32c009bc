package service

import (
	"sort"
	"unicode/utf8"

	"reddit-persona/internal/domain"
)

const snippetLimit = 200

// CitationBinder selecciona la evidencia que respalda un rasgo asignado y
// construye las citas con su fragmento de contexto.
type CitationBinder struct {
	cfg ScoringConfig
}

func NewCitationBinder(cfg ScoringConfig) *CitationBinder {
	return &CitationBinder{cfg: cfg}
}

// Bind devuelve hasta MaxCitations citas para la categoria ganadora,
// priorizando items con mas upvotes y despues los mas recientes.
// Para el centinela no hay citas.
func (b *CitationBinder) Bind(assignment domain.TraitAssignment, matches []domain.RawMatch) []domain.Citation {
	if assignment.Sentinel() {
		return nil
	}

	selected := capPerItem(matches)
	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].Item.Score != selected[j].Item.Score {
			return selected[i].Item.Score > selected[j].Item.Score
		}
		return selected[i].Item.CreatedAt.After(selected[j].Item.CreatedAt)
	})

	if len(selected) > b.cfg.MaxCitations {
		selected = selected[:b.cfg.MaxCitations]
	}

	out := make([]domain.Citation, 0, len(selected))
	for _, m := range selected {
		text := m.Item.Body
		if m.Field == "title" {
			text = m.Item.Title
		}
		out = append(out, domain.Citation{
			SourceURL:   m.Item.SourceURL,
			Snippet:     buildSnippet(text, m.Position, m.Term),
			MatchedTerm: m.Term,
		})
	}
	return out
}

// buildSnippet recorta una ventana de como mucho 200 caracteres centrada en
// el match. Los cortes se ajustan a espacios para no partir palabras y se
// marcan con "..."; el termino queda siempre dentro del fragmento.
func buildSnippet(text string, pos int, term string) string {
	if utf8.RuneCountInString(text) <= snippetLimit {
		return text
	}

	const marker = "..."
	// Presupuesto del cuerpo descontando marcadores en ambos extremos.
	budget := snippetLimit - 2*len(marker)

	if pos < 0 || pos > len(text) {
		pos = 0
	}
	tend := pos + len(term)
	if tend > len(text) {
		tend = len(text)
	}
	// El match se encontro sobre texto en minusculas, que puede ser mas corto
	// en bytes que el original; empujar el fin hasta el borde real de palabra.
	for tend < len(text) {
		r, n := utf8.DecodeRuneInString(text[tend:])
		if !isWordRune(r) {
			break
		}
		tend += n
	}

	start := pos - (budget-(tend-pos))/2
	if start < 0 {
		start = 0
	}
	stop := start + budget
	if stop > len(text) {
		stop = len(text)
		start = stop - budget
		if start < 0 {
			start = 0
		}
	}

	// Ajuste a espacios sin expulsar el termino de la ventana.
	if start > 0 {
		if i := indexSpace(text[start:pos]); i >= 0 {
			start += i + 1
		}
		for start < len(text) && !utf8.RuneStart(text[start]) {
			start++
		}
	}
	if stop < len(text) {
		if i := lastIndexSpace(text[tend:stop]); i >= 0 {
			stop = tend + i
		}
		for stop > tend && !utf8.RuneStart(text[stop]) {
			stop--
		}
	}

	snippet := text[start:stop]
	if start > 0 {
		snippet = marker + snippet
	}
	if stop < len(text) {
		snippet = snippet + marker
	}
	return snippet
}

func indexSpace(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\n' || s[i] == '\t' {
			return i
		}
	}
	return -1
}

func lastIndexSpace(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ' ' || s[i] == '\n' || s[i] == '\t' {
			return i
		}
	}
	return -1
}
