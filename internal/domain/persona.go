package domain

import "time"

// TraitInsufficientEvidence es el valor centinela cuando ninguna categoria
// califica para un eje. No es un error: es un resultado valido.
const TraitInsufficientEvidence = "insufficient_evidence"

// RawMatch es una ocurrencia de un termino del lexicon en un item.
// Transitorio: se produce y consume dentro de una pasada de scoring.
type RawMatch struct {
	Item     *EvidenceItem
	Category string
	Term     string
	// Field indica donde aparecio el termino ("title" o "body");
	// Position es el offset en bytes dentro de ese campo.
	Field    string
	Position int
}

// TraitAssignment es el rasgo asignado a un eje tras el scoring.
type TraitAssignment struct {
	Dimension            Dimension `json:"dimension"`
	TraitValue           string    `json:"trait_value"`
	Category             string    `json:"category,omitempty"`
	Confidence           float64   `json:"confidence"`
	SupportingMatchCount int       `json:"supporting_match_count"`
	// Note acompana al centinela cuando la extraccion fallo para este eje.
	Note string `json:"note,omitempty"`
}

// Sentinel indica si la asignacion es el centinela de evidencia insuficiente.
func (t TraitAssignment) Sentinel() bool {
	return t.TraitValue == TraitInsufficientEvidence
}

// Citation enlaza una asignacion con el item que la respalda.
type Citation struct {
	SourceURL   string `json:"source_url"`
	Snippet     string `json:"snippet"`
	MatchedTerm string `json:"matched_term"`
}

// DimensionResult agrupa la asignacion de un eje con sus citas ordenadas.
type DimensionResult struct {
	Dimension  Dimension       `json:"dimension"`
	Assignment TraitAssignment `json:"assignment"`
	Citations  []Citation      `json:"citations"`
}

// Persona es el documento final: exactamente un resultado por cada uno de
// los diez ejes, en el orden declarado en Dimensions.
type Persona struct {
	ID          string            `json:"id"`
	Username    string            `json:"username"`
	GeneratedAt time.Time         `json:"generated_at"`
	ItemCount   int               `json:"item_count"`
	Dimensions  []DimensionResult `json:"dimensions"`
}

// Result busca el resultado de un eje concreto.
func (p Persona) Result(d Dimension) (DimensionResult, bool) {
	for _, r := range p.Dimensions {
		if r.Dimension == d {
			return r, true
		}
	}
	return DimensionResult{}, false
}
