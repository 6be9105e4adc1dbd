package campaign

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("campaign not found")

// Repository stores campaigns and their bookings.
type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*Campaign, error)
	List(ctx context.Context) ([]Campaign, error)
	Create(ctx context.Context, c Campaign) (*Campaign, error)
	Update(ctx context.Context, c Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RuleRepository provides the standard pricing rules per screen slot.
type RuleRepository interface {
	List(ctx context.Context) ([]PricingRule, error)
}

type memoryRepository struct {
	mu        sync.RWMutex
	campaigns map[uuid.UUID]Campaign
}

// NewMemoryRepository returns an empty in-memory campaign store.
func NewMemoryRepository() Repository {
	return &memoryRepository{campaigns: make(map[uuid.UUID]Campaign)}
}

func (r *memoryRepository) Get(ctx context.Context, id uuid.UUID) (*Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := c
	clone.Bookings = append([]Booking(nil), c.Bookings...)
	return &clone, nil
}

func (r *memoryRepository) List(ctx context.Context) ([]Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		clone := c
		clone.Bookings = append([]Booking(nil), c.Bookings...)
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

func (r *memoryRepository) Create(ctx context.Context, c Campaign) (*Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.campaigns[c.ID] = c
	clone := c
	clone.Bookings = append([]Booking(nil), c.Bookings...)
	return &clone, nil
}

func (r *memoryRepository) Update(ctx context.Context, c Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[c.ID]; !ok {
		return ErrNotFound
	}
	r.campaigns[c.ID] = c
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[id]; !ok {
		return ErrNotFound
	}
	delete(r.campaigns, id)
	return nil
}

type memoryRuleRepository struct {
	mu    sync.RWMutex
	rules []PricingRule
}

// NewMemoryRuleRepository returns an in-memory pricing-rule store seeded
// with the given rules.
func NewMemoryRuleRepository(seed []PricingRule) RuleRepository {
	return &memoryRuleRepository{rules: append([]PricingRule(nil), seed...)}
}

func (r *memoryRuleRepository) List(ctx context.Context) ([]PricingRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]PricingRule(nil), r.rules...), nil
}
