package booking

import (
	"time"

	"github.com/hanksha/court-booking-backend/schedule"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type Booking struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	Date        string     `json:"date"`
	StartTime   string     `json:"startTime"`
	EndTime     string     `json:"endTime"`
	TotalPrice  float64    `json:"totalPrice"`
	Status      Status     `json:"status"`
	CourtIDs    []int64    `json:"courtIds"`
	CreatedAt   time.Time  `json:"createdAt"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

// Live bookings hold their courts; cancelled ones are kept for audit only.
func (b Booking) Live() bool {
	return b.Status != StatusCancelled
}

func (b Booking) Window() (schedule.Window, error) {
	return schedule.ParseWindow(b.StartTime, b.EndTime)
}

// StartsAt combines the booking date and start time in loc.
func (b Booking) StartsAt(loc *time.Location) (time.Time, error) {
	date, err := schedule.ParseDate(b.Date)
	if err != nil {
		return time.Time{}, err
	}
	start, err := schedule.ParseTime(b.StartTime)
	if err != nil {
		return time.Time{}, err
	}
	return schedule.At(date, start, loc), nil
}

func (b Booking) HasCourt(courtID int64) bool {
	for _, id := range b.CourtIDs {
		if id == courtID {
			return true
		}
	}
	return false
}
