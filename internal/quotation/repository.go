package quotation

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("quotation not found")

// Repository stores quotations. The portal runs against the in-memory
// implementation; the interface keeps the engine and service testable
// without process-wide state.
type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*Quotation, error)
	List(ctx context.Context, req ListQuotationsRequest) ([]Quotation, error)
	Create(ctx context.Context, q Quotation) (*Quotation, error)
	Update(ctx context.Context, q Quotation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type memoryRepository struct {
	mu         sync.RWMutex
	quotations map[uuid.UUID]Quotation
}

// NewMemoryRepository returns an empty in-memory quotation store.
func NewMemoryRepository() Repository {
	return &memoryRepository{quotations: make(map[uuid.UUID]Quotation)}
}

func (r *memoryRepository) Get(ctx context.Context, id uuid.UUID) (*Quotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.quotations[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := q
	clone.Items = append([]LineItem(nil), q.Items...)
	return &clone, nil
}

func (r *memoryRepository) List(ctx context.Context, req ListQuotationsRequest) ([]Quotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []Quotation
	for _, q := range r.quotations {
		if req.ClientName != nil && q.ClientName != *req.ClientName {
			continue
		}
		if req.Status != nil && q.Status != *req.Status {
			continue
		}
		clone := q
		clone.Items = append([]LineItem(nil), q.Items...)
		result = append(result, clone)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID.String() < result[j].ID.String()
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *memoryRepository) Create(ctx context.Context, q Quotation) (*Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	r.quotations[q.ID] = q
	clone := q
	clone.Items = append([]LineItem(nil), q.Items...)
	return &clone, nil
}

func (r *memoryRepository) Update(ctx context.Context, q Quotation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.quotations[q.ID]; !ok {
		return ErrNotFound
	}
	r.quotations[q.ID] = q
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.quotations[id]; !ok {
		return ErrNotFound
	}
	delete(r.quotations, id)
	return nil
}
