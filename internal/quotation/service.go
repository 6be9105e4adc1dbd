package quotation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/marquee-ooh/marquee/internal/rates"
)

var (
	ErrInvalidStatus = errors.New("invalid status transition")
	ErrLineNotFound  = errors.New("line item not found")
)

// Defaults for a freshly added line item before the user picks values.
const (
	DefaultCategory = rates.CategoryPremium
	DefaultDuration = rates.Duration4W
	DefaultQty      = 1
)

// Service owns the quotation lifecycle. Every mutation goes through the
// repository and triggers an explicit full recompute; there is no
// reactive recalculation anywhere else.
type Service struct {
	repo     Repository
	engine   *Engine
	validate *validator.Validate
}

func NewService(repo Repository, engine *Engine) *Service {
	return &Service{
		repo:     repo,
		engine:   engine,
		validate: validator.New(),
	}
}

// Create builds a new draft quotation from the request, pricing any
// initial line items.
func (s *Service) Create(ctx context.Context, req CreateQuotationRequest) (*Quotation, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validate request: %w", err)
	}

	items := make([]LineItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, err := s.buildLineItem(itemReq)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	now := time.Now()
	q := Quotation{
		ID:         uuid.New(),
		ClientName: req.ClientName,
		Agency:     req.Agency,
		Status:     QuotationStatusDraft,
		Items:      items,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	q.Totals = s.engine.Calculate(q.Items, q.Discounts)

	return s.repo.Create(ctx, q)
}

// AddLineItem appends a line item to the quotation's section, using the
// portal defaults for any field left empty, and recomputes totals.
func (s *Service) AddLineItem(ctx context.Context, id uuid.UUID, req CreateLineItemReq) (*Quotation, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validate request: %w", err)
	}

	q, err := s.editable(ctx, id)
	if err != nil {
		return nil, err
	}

	item, err := s.buildLineItem(req)
	if err != nil {
		return nil, err
	}
	q.Items = append(q.Items, item)

	return s.recomputeAndSave(ctx, q)
}

// UpdateLineItem edits a line item's category, duration or quantity and
// recomputes totals. Gross and net are never edited directly.
func (s *Service) UpdateLineItem(ctx context.Context, id, lineID uuid.UUID, req UpdateLineItemReq) (*Quotation, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validate request: %w", err)
	}

	q, err := s.editable(ctx, id)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range q.Items {
		if q.Items[i].ID == lineID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrLineNotFound
	}

	if req.Category != nil {
		category, err := rates.ParseCategory(*req.Category)
		if err != nil {
			return nil, err
		}
		q.Items[idx].Category = category
	}
	if req.Duration != nil {
		duration, err := rates.ParseDuration(*req.Duration)
		if err != nil {
			return nil, err
		}
		q.Items[idx].Duration = duration
	}
	if req.Qty != nil {
		q.Items[idx].Qty = *req.Qty
	}

	return s.recomputeAndSave(ctx, q)
}

// RemoveLineItem deletes a line item and recomputes totals.
func (s *Service) RemoveLineItem(ctx context.Context, id, lineID uuid.UUID) (*Quotation, error) {
	q, err := s.editable(ctx, id)
	if err != nil {
		return nil, err
	}

	kept := q.Items[:0]
	found := false
	for _, item := range q.Items {
		if item.ID == lineID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return nil, ErrLineNotFound
	}
	q.Items = kept

	return s.recomputeAndSave(ctx, q)
}

// SetManualDiscounts replaces the quotation's manual overrides and
// recomputes totals.
func (s *Service) SetManualDiscounts(ctx context.Context, id uuid.UUID, req SetManualDiscountsReq) (*Quotation, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validate request: %w", err)
	}

	q, err := s.editable(ctx, id)
	if err != nil {
		return nil, err
	}

	q.Discounts = ManualDiscounts{
		PackageAmount:   req.PackageAmount,
		OtherPercentage: req.OtherPercentage,
	}

	return s.recomputeAndSave(ctx, q)
}

// Finalize moves a draft quotation into its terminal state. The engine
// stays policy-free; rejecting further edits is a service concern.
func (s *Service) Finalize(ctx context.Context, id uuid.UUID) (*Quotation, error) {
	q, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	if q.Status != QuotationStatusDraft {
		return nil, fmt.Errorf("%w: only DRAFT quotations can be finalized", ErrInvalidStatus)
	}

	q.Status = QuotationStatusFinalized
	q.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, *q); err != nil {
		return nil, fmt.Errorf("update quotation: %w", err)
	}
	return q, nil
}

// Recompute re-runs the full pricing computation for a stored quotation
// and persists the refreshed totals.
func (s *Service) Recompute(ctx context.Context, id uuid.UUID) (*Quotation, error) {
	q, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	return s.recomputeAndSave(ctx, q)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Quotation, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, req ListQuotationsRequest) ([]Quotation, error) {
	return s.repo.List(ctx, req)
}

// editable fetches a quotation and enforces the draft-only edit policy.
func (s *Service) editable(ctx context.Context, id uuid.UUID) (*Quotation, error) {
	q, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	if q.Status != QuotationStatusDraft {
		return nil, fmt.Errorf("%w: only DRAFT quotations can be edited", ErrInvalidStatus)
	}
	return q, nil
}

func (s *Service) recomputeAndSave(ctx context.Context, q *Quotation) (*Quotation, error) {
	q.Totals = s.engine.Calculate(q.Items, q.Discounts)
	q.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, *q); err != nil {
		return nil, fmt.Errorf("update quotation: %w", err)
	}
	return q, nil
}

func (s *Service) buildLineItem(req CreateLineItemReq) (LineItem, error) {
	item := LineItem{
		ID:       uuid.New(),
		Section:  req.Section,
		Category: DefaultCategory,
		Duration: DefaultDuration,
		Qty:      DefaultQty,
	}
	if req.Category != "" {
		category, err := rates.ParseCategory(req.Category)
		if err != nil {
			return LineItem{}, err
		}
		item.Category = category
	}
	if req.Duration != "" {
		duration, err := rates.ParseDuration(req.Duration)
		if err != nil {
			return LineItem{}, err
		}
		item.Duration = duration
	}
	if req.Qty > 0 {
		item.Qty = req.Qty
	}
	return item, nil
}
