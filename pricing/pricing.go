package pricing

import (
	"math"

	"github.com/hanksha/court-booking-backend/court"
	"github.com/hanksha/court-booking-backend/schedule"
)

type CourtPrice struct {
	CourtID int64   `json:"courtId"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
}

type Quote struct {
	Hours    int          `json:"hours"`
	PerCourt []CourtPrice `json:"perCourt"`
	Total    float64      `json:"total"`
}

// Price returns rate × hours rounded to cents. A non-positive number of
// hours costs nothing.
func Price(hourlyRate float64, hours int) float64 {
	if hours <= 0 {
		return 0
	}
	return roundCents(hourlyRate * float64(hours))
}

func Calculate(courts []court.Court, hours int) Quote {
	quote := Quote{Hours: max(hours, 0), PerCourt: make([]CourtPrice, 0, len(courts))}
	for _, c := range courts {
		price := Price(c.HourlyRate, hours)
		quote.PerCourt = append(quote.PerCourt, CourtPrice{CourtID: c.ID, Name: c.Name, Price: price})
		quote.Total += price
	}
	quote.Total = roundCents(quote.Total)
	return quote
}

// CalculateDuration prices a duration string such as "2 hours"; anything
// that does not parse is priced as zero hours.
func CalculateDuration(courts []court.Court, duration string) Quote {
	hours, err := schedule.ParseDuration(duration)
	if err != nil {
		hours = 0
	}
	return Calculate(courts, hours)
}

// Equal compares two amounts to the cent.
func Equal(a, b float64) bool {
	return math.Abs(roundCents(a)-roundCents(b)) < 0.005
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
