package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"reddit-persona/internal/domain"
	"reddit-persona/internal/lexicon"
)

// Assembler orquesta los diez ejes: extraccion, scoring y citas por eje,
// con fallos aislados. Assemble nunca falla: cero items o extracciones
// rotas producen centinelas, no errores.
type Assembler struct {
	lexicon   *lexicon.Store
	extractor SignalExtractor
	scorer    *Scorer
	binder    *CitationBinder
	logger    *zap.Logger
}

func NewAssembler(store *lexicon.Store, cfg ScoringConfig, logger *zap.Logger) *Assembler {
	return NewAssemblerWithExtractor(store, cfg, logger, NewExtractor(store))
}

// NewAssemblerWithExtractor permite inyectar un extractor alternativo en tests.
func NewAssemblerWithExtractor(store *lexicon.Store, cfg ScoringConfig, logger *zap.Logger, extractor SignalExtractor) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{
		lexicon:   store,
		extractor: extractor,
		scorer:    NewScorer(store, cfg),
		binder:    NewCitationBinder(cfg),
		logger:    logger,
	}
}

// Assemble produce el persona completo para un usuario. Siempre devuelve
// exactamente un resultado por eje, en el orden declarado.
func (a *Assembler) Assemble(username string, items []domain.EvidenceItem) domain.Persona {
	considered := usableItems(items)

	results := make([]domain.DimensionResult, len(domain.Dimensions))
	var wg sync.WaitGroup

	// Extractores puros + items de solo lectura: los ejes corren en paralelo
	// sin estado compartido mutable. Un eje caido no cancela a sus hermanos.
	for i, dimension := range domain.Dimensions {
		wg.Add(1)
		go func(idx int, d domain.Dimension) {
			defer wg.Done()
			results[idx] = a.analyzeDimension(d, considered)
		}(i, dimension)
	}
	wg.Wait()

	return domain.Persona{
		ID:          uuid.NewString(),
		Username:    username,
		GeneratedAt: time.Now().UTC(),
		ItemCount:   len(considered),
		Dimensions:  results,
	}
}

func (a *Assembler) analyzeDimension(dimension domain.Dimension, items []domain.EvidenceItem) (result domain.DimensionResult) {
	result.Dimension = dimension

	defer func() {
		if r := recover(); r != nil {
			a.logger.Warn("dimension analysis panicked",
				zap.String("dimension", string(dimension)),
				zap.Any("panic", r),
			)
			result.Assignment = SentinelAssignment(dimension, fmt.Sprintf("analysis panicked: %v", r))
			result.Citations = nil
		}
	}()

	matchesByCategory := make(map[string][]domain.RawMatch)
	for _, category := range a.lexicon.CategoriesOf(dimension) {
		matches, err := a.extractor.Extract(items, dimension, category)
		if err != nil {
			a.logger.Warn("extraction failed",
				zap.String("dimension", string(dimension)),
				zap.String("category", category),
				zap.Error(err),
			)
			result.Assignment = SentinelAssignment(dimension, fmt.Sprintf("extraction failed for category %s: %v", category, err))
			return result
		}
		matchesByCategory[category] = matches
	}

	assignment := a.scorer.Score(dimension, items, matchesByCategory)
	result.Assignment = assignment
	result.Citations = a.binder.Bind(assignment, matchesByCategory[assignment.Category])
	return result
}

func usableItems(items []domain.EvidenceItem) []domain.EvidenceItem {
	out := make([]domain.EvidenceItem, 0, len(items))
	for _, item := range items {
		if item.HasUsableBody() {
			out = append(out, item)
		}
	}
	return out
}
