package service

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"reddit-persona/internal/domain"
	"reddit-persona/internal/lexicon"
)

var (
	ErrInvalidMinMatches    = errors.New("min matches must be >= 1")
	ErrInvalidMinConfidence = errors.New("min confidence must be in [0,1]")
	ErrInvalidMaxCitations  = errors.New("max citations must be >= 1")
	ErrInvalidRecencyBoost  = errors.New("recency boost factor must be >= 1")
	ErrInvalidRecencyWindow = errors.New("recency window fraction must be in [0,1]")
)

// ScoringConfig son los parametros afinables del motor. Los valores por
// defecto reflejan la politica documentada; todo es sobreescribible por
// configuracion.
type ScoringConfig struct {
	MinMatches            int
	MinConfidence         float64
	MaxCitations          int
	RecencyBoostFactor    float64
	RecencyWindowFraction float64
}

// DefaultScoringConfig devuelve los valores por defecto del motor.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		MinMatches:            2,
		MinConfidence:         0.05,
		MaxCitations:          3,
		RecencyBoostFactor:    1.5,
		RecencyWindowFraction: 0.20,
	}
}

// Validate falla rapido ante umbrales invalidos: es error de configuracion.
func (c ScoringConfig) Validate() error {
	if c.MinMatches < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMinMatches, c.MinMatches)
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("%w: got %f", ErrInvalidMinConfidence, c.MinConfidence)
	}
	if c.MaxCitations < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxCitations, c.MaxCitations)
	}
	if c.RecencyBoostFactor < 1 {
		return fmt.Errorf("%w: got %f", ErrInvalidRecencyBoost, c.RecencyBoostFactor)
	}
	if c.RecencyWindowFraction < 0 || c.RecencyWindowFraction > 1 {
		return fmt.Errorf("%w: got %f", ErrInvalidRecencyWindow, c.RecencyWindowFraction)
	}
	return nil
}

// Scorer agrega matches por categoria en una asignacion de rasgo.
type Scorer struct {
	lexicon *lexicon.Store
	cfg     ScoringConfig
}

func NewScorer(store *lexicon.Store, cfg ScoringConfig) *Scorer {
	return &Scorer{lexicon: store, cfg: cfg}
}

// Score aplica frecuencia, boost de recencia, umbrales y desempate.
// Si ninguna categoria califica devuelve el centinela, nunca adivina.
func (s *Scorer) Score(dimension domain.Dimension, items []domain.EvidenceItem, matchesByCategory map[string][]domain.RawMatch) domain.TraitAssignment {
	totalItems := len(items)
	recent := recentItemIDs(items, s.cfg.RecencyWindowFraction)

	var (
		winner       lexicon.Entry
		winnerWeight float64
		winnerConf   float64
		winnerCount  int
		found        bool
	)

	// El orden de declaracion de categorias es el desempate determinista.
	for _, entry := range s.lexicon.EntriesOf(dimension) {
		capped := capPerItem(matchesByCategory[entry.Category])
		if len(capped) == 0 {
			continue
		}

		weighted := 0.0
		for _, m := range capped {
			itemWeight := 1.0
			if recent[m.Item.ID] {
				itemWeight = s.cfg.RecencyBoostFactor
			}
			weighted += itemWeight * entry.Weight
		}

		confidence := weighted / math.Max(1, float64(totalItems))
		confidence = math.Min(1, math.Max(0, confidence))

		if weighted < float64(s.cfg.MinMatches) || confidence < s.cfg.MinConfidence {
			continue
		}
		// Empate exacto: gana la categoria declarada antes.
		if found && weighted <= winnerWeight {
			continue
		}

		winner = entry
		winnerWeight = weighted
		winnerConf = confidence
		winnerCount = len(capped)
		found = true
	}

	if !found {
		return SentinelAssignment(dimension, "")
	}

	return domain.TraitAssignment{
		Dimension:            dimension,
		TraitValue:           winner.Trait,
		Category:             winner.Category,
		Confidence:           winnerConf,
		SupportingMatchCount: winnerCount,
	}
}

// SentinelAssignment construye el resultado de evidencia insuficiente.
func SentinelAssignment(dimension domain.Dimension, note string) domain.TraitAssignment {
	return domain.TraitAssignment{
		Dimension:  dimension,
		TraitValue: domain.TraitInsufficientEvidence,
		Note:       note,
	}
}

// capPerItem limita la contribucion a 1 match por item y categoria: un solo
// post verboso no puede dominar el score. Conserva el primer match del item
// en orden de emision.
func capPerItem(matches []domain.RawMatch) []domain.RawMatch {
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	out := make([]domain.RawMatch, 0, len(matches))
	for _, m := range matches {
		if m.Item == nil || seen[m.Item.ID] {
			continue
		}
		seen[m.Item.ID] = true
		out = append(out, m)
	}
	return out
}

// recentItemIDs marca los items del tramo mas nuevo por created_at.
// Con n items y fraccion f, se marcan ceil(n*f) items (al menos 1 si f > 0).
func recentItemIDs(items []domain.EvidenceItem, fraction float64) map[string]bool {
	out := make(map[string]bool)
	if len(items) == 0 || fraction <= 0 {
		return out
	}

	window := int(math.Ceil(float64(len(items)) * fraction))
	if window < 1 {
		window = 1
	}
	if window > len(items) {
		window = len(items)
	}

	ordered := make([]domain.EvidenceItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})

	for _, item := range ordered[:window] {
		out[item.ID] = true
	}
	return out
}
