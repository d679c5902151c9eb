package booking

import (
	"errors"
	"fmt"

	"github.com/hanksha/court-booking-backend/database"
	"github.com/hanksha/court-booking-backend/schedule"
)

var ErrBookingNotFound = errors.New("booking not found")
var ErrInvalidBookingState = errors.New("invalid booking state")
var ErrNotAllowed = errors.New("not allowed to perform this operation")

// ErrSlotConflict is matched by *ConflictError.
var ErrSlotConflict = errors.New("slot no longer available")

var ErrStoreUnavailable = database.ErrStoreUnavailable

// ErrValidation is wrapped by every request validation failure; those are
// rejected before any persistence call.
var ErrValidation = errors.New("invalid booking request")

var (
	ErrInvalidUser         = errors.New("user id must be a positive integer")
	ErrNoCourts            = errors.New("at least one court must be selected")
	ErrUnknownCourt        = errors.New("unknown court")
	ErrSlotNotBookable     = errors.New("start time is not a bookable slot")
	ErrOutsideOpeningHours = errors.New("booking window is outside opening hours")
	ErrCrossesMidnight     = errors.New("booking window crosses midnight")
	ErrSlotInPast          = errors.New("booking window starts in the past")
	ErrPriceMismatch       = errors.New("total price does not match the current rates")

	ErrInvalidDate     = schedule.ErrInvalidDate
	ErrInvalidTime     = schedule.ErrInvalidTime
	ErrInvalidDuration = schedule.ErrInvalidDuration
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
