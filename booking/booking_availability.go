package booking

import (
	"time"

	"github.com/hanksha/court-booking-backend/court"
	"github.com/hanksha/court-booking-backend/schedule"
)

type CourtAvailability struct {
	Court     court.Court `json:"court"`
	FreeSlots []string    `json:"freeSlots"`
	// FreeForWindow is only set when a window was requested.
	FreeForWindow *bool `json:"freeForWindow,omitempty"`
}

type WindowRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Availability struct {
	Date   string              `json:"date"`
	Window *WindowRequest      `json:"window,omitempty"`
	Slots  []string            `json:"slots"`
	Courts []CourtAvailability `json:"courts"`
}

// AvailableCourts lists the courts free for the whole requested window.
func (a Availability) AvailableCourts() []court.Court {
	courts := []court.Court{}
	for _, ca := range a.Courts {
		if ca.FreeForWindow != nil && *ca.FreeForWindow {
			courts = append(courts, ca.Court)
		}
	}
	return courts
}

type availabilityQuery struct {
	date    time.Time
	window  *schedule.Window
	catalog schedule.Catalog
	now     time.Time
	loc     *time.Location
}

// resolve expands the live bookings into occupied windows per court and
// derives, for every court, the catalog slots left free. Slots already in the
// past are never offered.
func (q availabilityQuery) resolve(courts []court.Court, live []Booking) []CourtAvailability {
	occupied := occupiedWindows(live)

	var upcoming []schedule.TimeOfDay
	for _, slot := range q.catalog.Slots() {
		if !schedule.IsPast(q.date, slot, q.now, q.loc) {
			upcoming = append(upcoming, slot)
		}
	}

	result := make([]CourtAvailability, 0, len(courts))
	for _, c := range courts {
		held := occupied[c.ID]

		free := []string{}
		for _, slot := range upcoming {
			if !anyOverlap(held, q.catalog.SlotWindow(slot)) {
				free = append(free, slot.String())
			}
		}

		ca := CourtAvailability{Court: c, FreeSlots: free}
		if q.window != nil {
			ok := !anyOverlap(held, *q.window)
			ca.FreeForWindow = &ok
		}
		result = append(result, ca)
	}

	return result
}

// occupiedWindows maps each court to the windows held on it. Bookings with
// unreadable times block the whole day.
func occupiedWindows(live []Booking) map[int64][]schedule.Window {
	occupied := make(map[int64][]schedule.Window)
	for _, b := range live {
		if !b.Live() {
			continue
		}
		w, err := b.Window()
		if err != nil || w.CrossesMidnight() {
			w = schedule.Window{Start: 0, End: 24 * 60}
		}
		for _, id := range b.CourtIDs {
			occupied[id] = append(occupied[id], w)
		}
	}
	return occupied
}

func anyOverlap(held []schedule.Window, w schedule.Window) bool {
	for _, h := range held {
		if h.Overlaps(w) {
			return true
		}
	}
	return false
}
