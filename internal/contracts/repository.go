package contracts

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("contract not found")

// Repository provides access to tenant contracts. The portal runs against
// an in-memory implementation; the interface keeps the pricing engines
// free of storage concerns.
type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*Contract, error)
	ListByTenant(ctx context.Context, tenant string) ([]Contract, error)
	List(ctx context.Context) ([]Contract, error)
	Create(ctx context.Context, contract Contract) (*Contract, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status ContractStatus) error
}

type memoryRepository struct {
	mu        sync.RWMutex
	contracts map[uuid.UUID]Contract
}

// NewMemoryRepository returns an in-memory contract store seeded with the
// given contracts.
func NewMemoryRepository(seed []Contract) Repository {
	repo := &memoryRepository{contracts: make(map[uuid.UUID]Contract, len(seed))}
	for _, c := range seed {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		repo.contracts[c.ID] = c
	}
	return repo
}

func (r *memoryRepository) Get(ctx context.Context, id uuid.UUID) (*Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.contracts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *memoryRepository) ListByTenant(ctx context.Context, tenant string) ([]Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []Contract
	for _, c := range r.contracts {
		if c.TenantName == tenant {
			result = append(result, c)
		}
	}
	sortByCreation(result)
	return result, nil
}

func (r *memoryRepository) List(ctx context.Context) ([]Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Contract, 0, len(r.contracts))
	for _, c := range r.contracts {
		result = append(result, c)
	}
	sortByCreation(result)
	return result, nil
}

func (r *memoryRepository) Create(ctx context.Context, contract Contract) (*Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if contract.ID == uuid.Nil {
		contract.ID = uuid.New()
	}
	if contract.CreatedAt.IsZero() {
		contract.CreatedAt = time.Now()
	}
	r.contracts[contract.ID] = contract
	return &contract, nil
}

func (r *memoryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status ContractStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contracts[id]
	if !ok {
		return ErrNotFound
	}
	c.Status = status
	r.contracts[id] = c
	return nil
}

// sortByCreation keeps listing order aligned with creation order so the
// first-match-wins contract resolution stays deterministic.
func sortByCreation(list []Contract) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID.String() < list[j].ID.String()
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
}
