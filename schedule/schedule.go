package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	TimeLayout = "15:04"
	DateLayout = time.DateOnly

	minutesPerDay = 24 * 60

	// MaxDurationHours bounds a single booking to one day.
	MaxDurationHours = 24
)

var (
	ErrInvalidTime     = errors.New("invalid time, expected HH:MM")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDuration = errors.New("invalid duration, expected a positive number of hours")
)

var durationDigits = regexp.MustCompile(`\d+`)

// TimeOfDay is a wall-clock time expressed in minutes since midnight.
type TimeOfDay int

func ParseTime(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	m := int(t) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddHours adds whole hours on a 24 hour clock.
func (t TimeOfDay) AddHours(hours int) TimeOfDay {
	m := (int(t) + hours*60) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return TimeOfDay(m)
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// ParseDuration reads the leading number of hours from values such as "2",
// "2 hours" or "1 hour". Negative values and more than MaxDurationHours are
// rejected.
func ParseDuration(s string) (int, error) {
	loc := durationDigits.FindStringIndex(s)
	if loc == nil || (loc[0] > 0 && s[loc[0]-1] == '-') {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	hours, err := strconv.Atoi(s[loc[0]:loc[1]])
	if err != nil || hours <= 0 || hours > MaxDurationHours {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	return hours, nil
}

// EndTime returns start + duration formatted as HH:MM. The result wraps
// around midnight; callers that must reject overnight windows compare it
// against the start.
func EndTime(start, duration string) (string, error) {
	hours, err := ParseDuration(duration)
	if err != nil {
		return "", err
	}
	t, err := ParseTime(start)
	if err != nil {
		return "", err
	}
	return t.AddHours(hours).String(), nil
}

// Overlaps reports whether the half-open windows [aStart, aEnd) and
// [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart < bEnd && aEnd > bStart
}

type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

func ParseWindow(start, end string) (Window, error) {
	s, err := ParseTime(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseTime(end)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: s, End: e}, nil
}

func (w Window) Overlaps(o Window) bool {
	return Overlaps(w.Start, w.End, o.Start, o.End)
}

// CrossesMidnight is true when the end wrapped past 24:00.
func (w Window) CrossesMidnight() bool {
	return w.End <= w.Start
}

func (w Window) Hours() int {
	return int(w.End-w.Start) / 60
}

func (w Window) String() string {
	return w.Start.String() + "-" + w.End.String()
}

// At combines a calendar date and a wall-clock time in loc.
func At(date time.Time, t TimeOfDay, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	m := int(t)
	return time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, loc)
}

// IsPast reports whether the slot starting at slotStart on date lies
// strictly before now.
func IsPast(date time.Time, slotStart TimeOfDay, now time.Time, loc *time.Location) bool {
	return At(date, slotStart, loc).Before(now)
}

// Today returns now's calendar date in loc formatted as YYYY-MM-DD.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return now.In(loc).Format(DateLayout)
}
