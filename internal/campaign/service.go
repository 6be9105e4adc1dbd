package campaign

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/marquee-ooh/marquee/internal/contracts"
	"github.com/marquee-ooh/marquee/internal/inventory"
)

var (
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrInvalidSegment   = errors.New("segment outside the hourly vocabulary")
	ErrBookingNotFound  = errors.New("booking not found")
)

// Service owns the campaign lifecycle: booking management with capacity
// enforcement, and price/impression estimation over the repositories.
type Service struct {
	repo      Repository
	rules     RuleRepository
	screens   inventory.Repository
	contracts contracts.Repository
	engine    *Engine
	validate  *validator.Validate
}

func NewService(repo Repository, rules RuleRepository, screens inventory.Repository, contractRepo contracts.Repository, engine *Engine) *Service {
	return &Service{
		repo:      repo,
		rules:     rules,
		screens:   screens,
		contracts: contractRepo,
		engine:    engine,
		validate:  validator.New(),
	}
}

// Create builds a new draft campaign with no bookings.
func (s *Service) Create(ctx context.Context, req CreateCampaignRequest) (*Campaign, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validate request: %w", err)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidDateRange
	}

	now := time.Now()
	c := Campaign{
		ID:         uuid.New(),
		Name:       req.Name,
		TenantName: req.TenantName,
		Status:     CampaignStatusDraft,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s.repo.Create(ctx, c)
}

// AddBooking reserves screen capacity for the campaign. The requested
// quantity must fit the screen's capacity net of reservations held by
// other bookings over an overlapping date range.
func (s *Service) AddBooking(ctx context.Context, id uuid.UUID, req AddBookingRequest) (*Campaign, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validate request: %w", err)
	}
	for _, segment := range req.Segments {
		if !ValidSegment(segment) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSegment, segment)
		}
	}

	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}

	screen, err := s.screens.Get(ctx, req.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("get screen: %w", err)
	}

	start, end := req.StartDate, req.EndDate
	if start.IsZero() || end.IsZero() {
		start, end = c.StartDate, c.EndDate
	}

	existing, err := s.reservationsForScreen(ctx, req.ScreenID)
	if err != nil {
		return nil, err
	}
	if err := inventory.CheckCapacity(*screen, req.Quantity, start, end, existing); err != nil {
		return nil, err
	}

	c.Bookings = append(c.Bookings, Booking{
		ID:        uuid.New(),
		ScreenID:  req.ScreenID,
		Quantity:  req.Quantity,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Segments:  append([]string(nil), req.Segments...),
	})
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, *c); err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	return c, nil
}

// RemoveBooking releases a reservation.
func (s *Service) RemoveBooking(ctx context.Context, id, bookingID uuid.UUID) (*Campaign, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}

	kept := c.Bookings[:0]
	found := false
	for _, b := range c.Bookings {
		if b.ID == bookingID {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return nil, ErrBookingNotFound
	}
	c.Bookings = kept
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, *c); err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	return c, nil
}

// Estimate runs the full price and impression computation for a stored
// campaign against the current contracts, rules and screen fleet.
func (s *Service) Estimate(ctx context.Context, id uuid.UUID) (*Estimate, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}

	contractList, err := s.contracts.ListByTenant(ctx, c.TenantName)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	rules, err := s.rules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pricing rules: %w", err)
	}
	screenList, err := s.screens.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list screens: %w", err)
	}
	screens := make(map[string]inventory.Screen, len(screenList))
	for _, screen := range screenList {
		screens[screen.ID] = screen
	}

	return &Estimate{
		TotalPrice:       s.engine.Price(c.Bookings, c.StartDate, c.EndDate, c.TenantName, contractList, rules),
		TotalImpressions: s.engine.Impressions(c.Bookings, c.StartDate, c.EndDate, screens),
	}, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Campaign, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Campaign, error) {
	return s.repo.List(ctx)
}

// reservationsForScreen collects every existing reservation on the
// screen across all campaigns; each one counts against capacity when its
// dates overlap the requested range.
func (s *Service) reservationsForScreen(ctx context.Context, screenID string) ([]inventory.Reservation, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	var reservations []inventory.Reservation
	for _, other := range all {
		for _, b := range other.Bookings {
			if b.ScreenID != screenID {
				continue
			}
			start, end := b.StartDate, b.EndDate
			if start.IsZero() || end.IsZero() {
				start, end = other.StartDate, other.EndDate
			}
			reservations = append(reservations, inventory.Reservation{
				Quantity: b.Quantity,
				Start:    start,
				End:      end,
			})
		}
	}
	return reservations, nil
}
