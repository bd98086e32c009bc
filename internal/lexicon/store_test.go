package lexicon

import (
	"errors"
	"testing"

	"reddit-persona/internal/domain"
)

func fullEntries() []Entry {
	entries := make([]Entry, 0, len(domain.Dimensions))
	for _, d := range domain.Dimensions {
		entries = append(entries, Entry{
			Dimension: d,
			Category:  "general",
			Trait:     "General",
			Terms:     []string{"term"},
		})
	}
	return entries
}

func TestNewStore_FailsWhenDimensionHasNoCategories(t *testing.T) {
	entries := fullEntries()
	// Quitar la unica categoria de lifestyle debe romper la validacion.
	trimmed := entries[:0]
	for _, e := range entries {
		if e.Dimension == domain.DimensionLifestyle {
			continue
		}
		trimmed = append(trimmed, e)
	}

	_, err := NewStore(trimmed)
	if !errors.Is(err, ErrNoCategories) {
		t.Fatalf("expected ErrNoCategories, got %v", err)
	}
}

func TestNewStore_FailsOnDuplicateEntry(t *testing.T) {
	entries := append(fullEntries(), Entry{
		Dimension: domain.DimensionLifestyle,
		Category:  "general",
		Trait:     "General",
		Terms:     []string{"other"},
	})

	_, err := NewStore(entries)
	if !errors.Is(err, ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}
}

func TestNewStore_FailsOnEmptyTerms(t *testing.T) {
	entries := fullEntries()
	entries[0].Terms = nil

	_, err := NewStore(entries)
	if !errors.Is(err, ErrEmptyTerms) {
		t.Fatalf("expected ErrEmptyTerms, got %v", err)
	}
}

func TestNewStore_DefaultsWeightToOne(t *testing.T) {
	store, err := NewStore(fullEntries())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e, ok := store.Entry(domain.DimensionLifestyle, "general")
	if !ok {
		t.Fatal("expected entry to exist")
	}
	if e.Weight != 1.0 {
		t.Fatalf("expected default weight 1.0, got %f", e.Weight)
	}
}

func TestCategoriesOf_PreservesDeclarationOrder(t *testing.T) {
	entries := fullEntries()
	entries = append(entries,
		Entry{Dimension: domain.DimensionLifestyle, Category: "zeta", Trait: "Z", Terms: []string{"z"}},
		Entry{Dimension: domain.DimensionLifestyle, Category: "alpha", Trait: "A", Terms: []string{"a"}},
	)

	store, err := NewStore(entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := store.CategoriesOf(domain.DimensionLifestyle)
	want := []string{"general", "zeta", "alpha"}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected category %q at %d, got %q", want[i], i, got[i])
		}
	}
}

func TestDefault_CoversAllDimensions(t *testing.T) {
	store, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, d := range domain.Dimensions {
		if len(store.CategoriesOf(d)) == 0 {
			t.Fatalf("dimension %s has no categories", d)
		}
	}

	terms, ok := store.Lookup(domain.DimensionTechnologyUsage, "programming")
	if !ok || len(terms) == 0 {
		t.Fatal("expected programming terms under technology_usage")
	}
}
