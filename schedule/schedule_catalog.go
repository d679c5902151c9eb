package schedule

import (
	"errors"
	"fmt"
)

var ErrInvalidCatalog = errors.New("invalid slot catalog")

// Catalog is the fixed, ordered set of bookable start times of a day.
// Slots start at Opening and every Step minutes after it, the last one
// ending no later than Closing.
type Catalog struct {
	Opening TimeOfDay
	Closing TimeOfDay
	Step    int
}

func DefaultCatalog() Catalog {
	return Catalog{Opening: 8 * 60, Closing: 22 * 60, Step: 60}
}

func NewCatalog(opening, closing string, stepMinutes int) (Catalog, error) {
	o, err := ParseTime(opening)
	if err != nil {
		return Catalog{}, err
	}
	c, err := ParseTime(closing)
	if err != nil {
		return Catalog{}, err
	}
	if stepMinutes <= 0 || c <= o {
		return Catalog{}, fmt.Errorf("%w: %s-%s every %d minutes", ErrInvalidCatalog, opening, closing, stepMinutes)
	}
	if int(c-o) < stepMinutes {
		return Catalog{}, fmt.Errorf("%w: opening hours shorter than one slot", ErrInvalidCatalog)
	}
	return Catalog{Opening: o, Closing: c, Step: stepMinutes}, nil
}

func (c Catalog) Slots() []TimeOfDay {
	var slots []TimeOfDay
	for t := c.Opening; int(t)+c.Step <= int(c.Closing); t += TimeOfDay(c.Step) {
		slots = append(slots, t)
	}
	return slots
}

func (c Catalog) SlotStrings() []string {
	slots := c.Slots()
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func (c Catalog) Contains(t TimeOfDay) bool {
	if t < c.Opening || int(t)+c.Step > int(c.Closing) {
		return false
	}
	return int(t-c.Opening)%c.Step == 0
}

// SlotWindow is the window occupied by the slot starting at t.
func (c Catalog) SlotWindow(t TimeOfDay) Window {
	return Window{Start: t, End: t + TimeOfDay(c.Step)}
}

// Fits reports whether w lies inside opening hours.
func (c Catalog) Fits(w Window) bool {
	return w.Start >= c.Opening && w.End <= c.Closing && w.End > w.Start
}
