package service

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"reddit-persona/internal/domain"
	"reddit-persona/internal/lexicon"
)

func defaultAssembler(t *testing.T) *Assembler {
	t.Helper()

	store, err := lexicon.Default()
	if err != nil {
		t.Fatalf("default lexicon: %v", err)
	}
	return NewAssembler(store, DefaultScoringConfig(), zap.NewNop())
}

func TestAssemble_AlwaysTenDimensions(t *testing.T) {
	a := defaultAssembler(t)

	for _, items := range [][]domain.EvidenceItem{
		nil,
		{},
		{item("a", "", "python is great for scripting", 5, time.Now())},
	} {
		persona := a.Assemble("kojied", items)
		if len(persona.Dimensions) != len(domain.Dimensions) {
			t.Fatalf("expected %d dimensions, got %d", len(domain.Dimensions), len(persona.Dimensions))
		}
		for i, d := range domain.Dimensions {
			if persona.Dimensions[i].Dimension != d {
				t.Fatalf("expected dimension %s at %d, got %s", d, i, persona.Dimensions[i].Dimension)
			}
		}
	}
}

func TestAssemble_ZeroItemsAllSentinel(t *testing.T) {
	a := defaultAssembler(t)

	persona := a.Assemble("kojied", nil)
	if persona.ItemCount != 0 {
		t.Fatalf("expected item_count 0, got %d", persona.ItemCount)
	}
	for _, r := range persona.Dimensions {
		if !r.Assignment.Sentinel() {
			t.Fatalf("expected sentinel for %s, got %+v", r.Dimension, r.Assignment)
		}
		if len(r.Citations) != 0 {
			t.Fatalf("sentinel must not carry citations, got %d for %s", len(r.Citations), r.Dimension)
		}
	}
}

func TestAssemble_IsDeterministic(t *testing.T) {
	a := defaultAssembler(t)

	base := time.Now()
	items := []domain.EvidenceItem{
		item("a", "switching careers", "I work as a developer and love python and linux", 12, base),
		item("b", "", "python question: how to read a file", 3, base.Add(time.Hour)),
		item("c", "", "my javascript side project is fun, lol", 7, base.Add(2*time.Hour)),
		item("d", "", "thinking about a new mechanical keyboard", 1, base.Add(3*time.Hour)),
	}

	first := a.Assemble("kojied", items)
	second := a.Assemble("kojied", items)

	// ID y timestamp cambian por corrida; el contenido analitico no.
	if !reflect.DeepEqual(first.Dimensions, second.Dimensions) {
		t.Fatal("expected identical dimension results across runs")
	}
	if first.ItemCount != second.ItemCount {
		t.Fatalf("expected identical item_count, got %d vs %d", first.ItemCount, second.ItemCount)
	}
}

func TestAssemble_NoMatchesYieldsSentinelWithoutCitations(t *testing.T) {
	a := defaultAssembler(t)

	base := time.Now()
	items := []domain.EvidenceItem{
		item("a", "", "zzz qqq vvv", 1, base),
		item("b", "", "xxx yyy www", 1, base.Add(time.Minute)),
		item("c", "", "mmm nnn ooo", 1, base.Add(2*time.Minute)),
	}

	persona := a.Assemble("kojied", items)
	r, ok := persona.Result(domain.DimensionTechnologyUsage)
	if !ok {
		t.Fatal("technology_usage result missing")
	}
	if !r.Assignment.Sentinel() {
		t.Fatalf("expected sentinel, got %+v", r.Assignment)
	}
	if len(r.Citations) != 0 {
		t.Fatalf("expected zero citations, got %d", len(r.Citations))
	}
}

func TestAssemble_ProgrammingScenario(t *testing.T) {
	a := defaultAssembler(t)

	base := time.Now()
	items := []domain.EvidenceItem{
		item("p1", "", "wrote a python script today", 9, base),
		item("p2", "", "python typing question", 4, base.Add(time.Hour)),
		item("p3", "", "debugging python at 2am", 2, base.Add(2*time.Hour)),
		item("n1", "", "made pasta for dinner", 1, base.Add(3*time.Hour)),
		item("n2", "", "rainy day outside", 1, base.Add(4*time.Hour)),
	}

	persona := a.Assemble("kojied", items)
	if persona.ItemCount != 5 {
		t.Fatalf("expected item_count 5, got %d", persona.ItemCount)
	}

	r, _ := persona.Result(domain.DimensionTechnologyUsage)
	if r.Assignment.Sentinel() {
		t.Fatalf("expected programming assignment, got sentinel: %+v", r.Assignment)
	}
	if r.Assignment.Category != "programming" {
		t.Fatalf("expected programming category, got %q", r.Assignment.Category)
	}
	if r.Assignment.SupportingMatchCount != 3 {
		t.Fatalf("expected 3 supporting items, got %d", r.Assignment.SupportingMatchCount)
	}
	if len(r.Citations) != 3 {
		t.Fatalf("expected 3 citations (max_citations), got %d", len(r.Citations))
	}
	if r.Citations[0].SourceURL != items[0].SourceURL {
		t.Fatalf("expected highest-scored item cited first, got %q", r.Citations[0].SourceURL)
	}
}

func TestAssemble_CitationTermsAppearInSource(t *testing.T) {
	a := defaultAssembler(t)

	base := time.Now()
	items := []domain.EvidenceItem{
		item("a", "Python at work", "I work as a developer, mostly python and linux, and I love helping juniors", 10, base),
		item("b", "", "Finished a long run before the gym, training plan is working", 5, base.Add(time.Hour)),
		item("c", "", "lol tbh my budget is gone, rent is expensive", 2, base.Add(2*time.Hour)),
		item("d", "", "another python refactor at the office today", 4, base.Add(3*time.Hour)),
	}

	persona := a.Assemble("kojied", items)
	for _, r := range persona.Dimensions {
		if r.Assignment.Sentinel() {
			continue
		}
		if len(r.Citations) == 0 {
			t.Fatalf("non-sentinel %s must carry at least one citation", r.Dimension)
		}
		for _, c := range r.Citations {
			src := sourceByURL(t, items, c.SourceURL)
			haystack := strings.ToLower(src.Title + " " + src.Body)
			if !strings.Contains(haystack, strings.ToLower(c.MatchedTerm)) {
				t.Fatalf("matched term %q not found in cited item %s", c.MatchedTerm, src.ID)
			}
			if n := len([]rune(c.Snippet)); n > snippetLimit {
				t.Fatalf("snippet too long for %s: %d runes", r.Dimension, n)
			}
		}
	}
}

func TestAssemble_IsolatesFailingDimension(t *testing.T) {
	store, err := lexicon.Default()
	if err != nil {
		t.Fatalf("default lexicon: %v", err)
	}

	failing := &faultyExtractor{
		inner:   NewExtractor(store),
		failDim: domain.DimensionLifestyle,
	}
	a := NewAssemblerWithExtractor(store, DefaultScoringConfig(), zap.NewNop(), failing)

	base := time.Now()
	items := []domain.EvidenceItem{
		item("a", "", "python every day", 3, base),
		item("b", "", "more python notes", 2, base.Add(time.Hour)),
	}

	persona := a.Assemble("kojied", items)
	if len(persona.Dimensions) != len(domain.Dimensions) {
		t.Fatalf("expected all dimensions despite failure, got %d", len(persona.Dimensions))
	}

	lifestyle, _ := persona.Result(domain.DimensionLifestyle)
	if !lifestyle.Assignment.Sentinel() {
		t.Fatalf("expected sentinel for failing dimension, got %+v", lifestyle.Assignment)
	}
	if lifestyle.Assignment.Note == "" {
		t.Fatal("expected diagnostic note on failing dimension")
	}

	tech, _ := persona.Result(domain.DimensionTechnologyUsage)
	if tech.Assignment.Sentinel() {
		t.Fatal("sibling dimension must not be affected by the failure")
	}
}

func TestAssemble_RecoversFromPanickingExtractor(t *testing.T) {
	store, err := lexicon.Default()
	if err != nil {
		t.Fatalf("default lexicon: %v", err)
	}

	panicking := &faultyExtractor{
		inner:   NewExtractor(store),
		failDim: domain.DimensionLifestyle,
		doPanic: true,
	}
	a := NewAssemblerWithExtractor(store, DefaultScoringConfig(), zap.NewNop(), panicking)

	persona := a.Assemble("kojied", []domain.EvidenceItem{item("a", "", "python", 1, time.Now())})
	lifestyle, _ := persona.Result(domain.DimensionLifestyle)
	if !lifestyle.Assignment.Sentinel() || lifestyle.Assignment.Note == "" {
		t.Fatalf("expected sentinel with note after panic, got %+v", lifestyle.Assignment)
	}
}

type faultyExtractor struct {
	inner   SignalExtractor
	failDim domain.Dimension
	doPanic bool
}

func (f *faultyExtractor) Extract(items []domain.EvidenceItem, dimension domain.Dimension, category string) ([]domain.RawMatch, error) {
	if dimension == f.failDim {
		if f.doPanic {
			panic("extractor blew up")
		}
		return nil, errors.New("synthetic extraction failure")
	}
	return f.inner.Extract(items, dimension, category)
}

func sourceByURL(t *testing.T, items []domain.EvidenceItem, url string) domain.EvidenceItem {
	t.Helper()
	for _, it := range items {
		if it.SourceURL == url {
			return it
		}
	}
	t.Fatalf("no item with source url %q", url)
	return domain.EvidenceItem{}
}
