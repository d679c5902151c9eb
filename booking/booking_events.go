package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventCreated   = "booking.created"
	EventConfirmed = "booking.confirmed"
	EventCancelled = "booking.cancelled"
)

type Event struct {
	EventID    uuid.UUID `json:"eventId"`
	Type       string    `json:"type"`
	BookingID  int64     `json:"bookingId"`
	UserID     int64     `json:"userId"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	CourtIDs   []int64   `json:"courtIds"`
	TotalPrice float64   `json:"totalPrice"`
	Status     Status    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

func newEvent(kind string, b Booking, at time.Time) Event {
	return Event{
		EventID:    uuid.New(),
		Type:       kind,
		BookingID:  b.ID,
		UserID:     b.UserID,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		CourtIDs:   b.CourtIDs,
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		OccurredAt: at.UTC(),
	}
}

// notify publishes after the state change is committed. Delivery failures
// never undo the change and are only logged.
func (s *Service) notify(ctx context.Context, kind string, b Booking) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishJSON(ctx, kind, newEvent(kind, b, s.now())); err != nil {
		s.logger.Warn("failed to publish booking event", "event", kind, "booking_id", b.ID, "err", err)
	}
}
