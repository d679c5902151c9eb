package booking

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/hanksha/court-booking-backend/schedule"
)

type ConflictError struct {
	Date     string
	Window   schedule.Window
	CourtIDs []int64
}

func (e *ConflictError) Error() string {
	ids := make([]string, len(e.CourtIDs))
	for i, id := range e.CourtIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("courts unavailable on %s %s: %s", e.Date, e.Window, strings.Join(ids, ", "))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrSlotConflict
}

// ConflictGuard is called by the repository inside the write transaction,
// after the per-court locks are held, with the live bookings of the date.
// A non-nil error aborts the transaction.
type ConflictGuard func(live []Booking) error

// CheckConflicts rejects the candidate window when any requested court is
// held by a live booking of the same date whose window overlaps it. A stored
// booking whose times cannot be parsed, or that runs past midnight, is treated
// as occupying its courts for the whole day.
func CheckConflicts(live []Booking, date string, window schedule.Window, courtIDs []int64) error {
	var conflicting []int64

	for _, b := range live {
		if !b.Live() || b.Date != date {
			continue
		}

		if w, err := b.Window(); err == nil && !w.CrossesMidnight() && !w.Overlaps(window) {
			continue
		}

		for _, id := range courtIDs {
			if b.HasCourt(id) && !slices.Contains(conflicting, id) {
				conflicting = append(conflicting, id)
			}
		}
	}

	if len(conflicting) == 0 {
		return nil
	}

	slices.Sort(conflicting)

	return &ConflictError{Date: date, Window: window, CourtIDs: conflicting}
}

func conflictGuard(date string, window schedule.Window, courtIDs []int64) ConflictGuard {
	return func(live []Booking) error {
		return CheckConflicts(live, date, window, courtIDs)
	}
}
