package service

import (
	"context"
	"sync"

	"dowry-calculator/internal/domain"
)

// TallyStore lleva contadores anónimos de tasaciones. Nunca recibe datos del formulario.
type TallyStore interface {
	Record(ctx context.Context, priceless bool) error
	Snapshot(ctx context.Context) (domain.Tally, error)
}

type memoryTallyStore struct {
	mu    sync.Mutex
	tally domain.Tally
}

func NewMemoryTallyStore() TallyStore {
	return &memoryTallyStore{}
}

func (s *memoryTallyStore) Record(_ context.Context, priceless bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tally.TotalValuations++
	if priceless {
		s.tally.PricelessValuations++
	}
	return nil
}

func (s *memoryTallyStore) Snapshot(_ context.Context) (domain.Tally, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tally, nil
}
