package reddit

import (
	"context"

	"reddit-persona/internal/domain"
)

// Fetcher define la frontera de entrada del motor: entrega los items de un
// perfil ya normalizados y ordenados del mas nuevo al mas viejo.
type Fetcher interface {
	FetchItems(ctx context.Context, username string, limit int) ([]domain.EvidenceItem, error)
}

// MockFetcher permite tests y corridas offline sin tocar la red.
type MockFetcher struct {
	Items []domain.EvidenceItem
	Err   error

	LastUsername string
	LastLimit    int
	Calls        int
}

func (m *MockFetcher) FetchItems(ctx context.Context, username string, limit int) ([]domain.EvidenceItem, error) {
	m.LastUsername = username
	m.LastLimit = limit
	m.Calls++
	return m.Items, m.Err
}
