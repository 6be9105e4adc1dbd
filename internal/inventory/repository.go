package inventory

import (
	"context"
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("screen not found")

// Repository provides access to the screen fleet.
type Repository interface {
	Get(ctx context.Context, id string) (*Screen, error)
	List(ctx context.Context) ([]Screen, error)
	Upsert(ctx context.Context, screen Screen) error
}

type memoryRepository struct {
	mu      sync.RWMutex
	screens map[string]Screen
}

// NewMemoryRepository returns an in-memory screen store seeded with the
// given screens.
func NewMemoryRepository(seed []Screen) Repository {
	repo := &memoryRepository{screens: make(map[string]Screen, len(seed))}
	for _, s := range seed {
		repo.screens[s.ID] = s
	}
	return repo
}

func (r *memoryRepository) Get(ctx context.Context, id string) (*Screen, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.screens[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *memoryRepository) List(ctx context.Context) ([]Screen, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Screen, 0, len(r.screens))
	for _, s := range r.screens {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memoryRepository) Upsert(ctx context.Context, screen Screen) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screens[screen.ID] = screen
	return nil
}
