package lexicon

import (
	"errors"
	"fmt"

	"reddit-persona/internal/domain"
)

var (
	ErrNoEntries       = errors.New("lexicon has no entries")
	ErrNoCategories    = errors.New("dimension has no categories")
	ErrDuplicateEntry  = errors.New("duplicate lexicon entry")
	ErrEmptyTerms      = errors.New("lexicon entry has no terms")
	ErrNegativeWeight  = errors.New("lexicon entry has negative weight")
	ErrUnknownDimension = errors.New("lexicon entry references unknown dimension")
)

// Entry define una categoria de un eje: el rasgo que representa y los
// terminos que la evidencian. Identidad unica: (dimension, categoria).
type Entry struct {
	Dimension domain.Dimension
	Category  string
	Trait     string
	Terms     []string
	Weight    float64
}

// Store es el lexicon inmutable del proceso. Se construye una vez al
// arrancar y se pasa por referencia a cada componente; nunca se muta.
type Store struct {
	byDimension map[domain.Dimension][]Entry
	byKey       map[string]Entry
}

// NewStore valida y congela las entradas. Falla rapido con un error de
// configuracion si algun eje queda sin categorias o una entrada es invalida.
func NewStore(entries []Entry) (*Store, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	known := make(map[domain.Dimension]bool, len(domain.Dimensions))
	for _, d := range domain.Dimensions {
		known[d] = true
	}

	s := &Store{
		byDimension: make(map[domain.Dimension][]Entry),
		byKey:       make(map[string]Entry),
	}

	for _, e := range entries {
		if !known[e.Dimension] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, e.Dimension)
		}
		if len(e.Terms) == 0 {
			return nil, fmt.Errorf("%w: %s/%s", ErrEmptyTerms, e.Dimension, e.Category)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: %s/%s", ErrNegativeWeight, e.Dimension, e.Category)
		}
		if e.Weight == 0 {
			e.Weight = 1.0
		}
		key := entryKey(e.Dimension, e.Category)
		if _, dup := s.byKey[key]; dup {
			return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateEntry, e.Dimension, e.Category)
		}
		s.byKey[key] = e
		s.byDimension[e.Dimension] = append(s.byDimension[e.Dimension], e)
	}

	for _, d := range domain.Dimensions {
		if len(s.byDimension[d]) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoCategories, d)
		}
	}

	return s, nil
}

// Lookup devuelve los terminos de una categoria.
func (s *Store) Lookup(dimension domain.Dimension, category string) ([]string, bool) {
	e, ok := s.byKey[entryKey(dimension, category)]
	if !ok {
		return nil, false
	}
	return e.Terms, true
}

// Entry devuelve la entrada completa de una categoria.
func (s *Store) Entry(dimension domain.Dimension, category string) (Entry, bool) {
	e, ok := s.byKey[entryKey(dimension, category)]
	return e, ok
}

// CategoriesOf devuelve las categorias de un eje en orden de declaracion.
// Ese orden es el desempate determinista del scorer.
func (s *Store) CategoriesOf(dimension domain.Dimension) []string {
	entries := s.byDimension[dimension]
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Category)
	}
	return out
}

// EntriesOf devuelve las entradas de un eje en orden de declaracion.
func (s *Store) EntriesOf(dimension domain.Dimension) []Entry {
	entries := s.byDimension[dimension]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

func entryKey(d domain.Dimension, category string) string {
	return string(d) + "/" + category
}
