// Package inventory manages the screen fleet: identity, capacity and the
// audience reference numbers the impression estimates are derived from.
package inventory

import (
	"fmt"
	"time"

	"github.com/marquee-ooh/marquee/internal/rates"
	"github.com/marquee-ooh/marquee/internal/shared"
)

// Screen is one bookable display in the network.
type Screen struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Location string         `json:"location"`
	Category rates.Category `json:"category"`
	// Capacity is how many units can run concurrently on the screen.
	Capacity int `json:"capacity"`
	// Imp2Weeks is the measured impression count over a reference
	// 14-day window.
	Imp2Weeks float64 `json:"imp_2_weeks"`
	Active    bool    `json:"active"`
}

// DailyImpressions derives the per-day audience rate from the reference
// two-week measurement.
func (s Screen) DailyImpressions() float64 {
	return shared.Finite(s.Imp2Weeks / 14)
}

// Reservation is an existing claim on a screen's capacity over an
// inclusive date range.
type Reservation struct {
	Quantity int
	Start    time.Time
	End      time.Time
}

// ErrCapacityExceeded is returned when a requested quantity does not fit
// the screen's remaining capacity.
type ErrCapacityExceeded struct {
	ScreenID  string
	Requested int
	Available int
}

func (e ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("inventory: screen %s capacity exceeded: requested %d, available %d", e.ScreenID, e.Requested, e.Available)
}

// CheckCapacity verifies that quantity units fit on the screen between
// start and end, given the reservations already held against it.
// Reservations that do not overlap the requested range do not count.
func CheckCapacity(screen Screen, quantity int, start, end time.Time, existing []Reservation) error {
	reserved := 0
	for _, r := range existing {
		if shared.RangesOverlap(start, end, r.Start, r.End) {
			reserved += r.Quantity
		}
	}
	available := screen.Capacity - reserved
	if quantity > available {
		return ErrCapacityExceeded{ScreenID: screen.ID, Requested: quantity, Available: available}
	}
	return nil
}
