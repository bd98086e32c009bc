package domain

import "time"

const (
	EvidenceKindPost    = "post"
	EvidenceKindComment = "comment"
)

// EvidenceItem es un post o comentario normalizado del perfil analizado.
// Inmutable una vez construido; el motor solo lo lee.
type EvidenceItem struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body"`
	Subreddit string    `json:"subreddit"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	SourceURL string    `json:"source_url"`
}

// HasUsableBody descarta cuerpos vacios o borrados por moderacion.
// Es contrato del extractor, no del scraper: el motor se protege solo
// aunque el filtrado aguas arriba sea imperfecto.
func (e EvidenceItem) HasUsableBody() bool {
	switch e.Body {
	case "", "[deleted]", "[removed]":
		return false
	}
	return true
}
