package schedule_test

import (
	"testing"
	"time"

	"github.com/hanksha/court-booking-backend/schedule"
	"github.com/stretchr/testify/require"
)

func TestEndTime(t *testing.T) {
	t.Run("adds hours", func(t *testing.T) {
		end, err := schedule.EndTime("14:00", "2 hours")
		require.NoError(t, err)
		require.Equal(t, "16:00", end)
	})

	t.Run("bare number", func(t *testing.T) {
		end, err := schedule.EndTime("09:30", "1")
		require.NoError(t, err)
		require.Equal(t, "10:30", end)
	})

	t.Run("wraps past midnight", func(t *testing.T) {
		end, err := schedule.EndTime("23:00", "2 hours")
		require.NoError(t, err)
		require.Equal(t, "01:00", end)
	})

	t.Run("bogus duration", func(t *testing.T) {
		_, err := schedule.EndTime("14:00", "bogus")
		require.ErrorIs(t, err, schedule.ErrInvalidDuration)
	})

	t.Run("zero duration", func(t *testing.T) {
		_, err := schedule.EndTime("14:00", "0 hours")
		require.ErrorIs(t, err, schedule.ErrInvalidDuration)
	})

	t.Run("negative duration", func(t *testing.T) {
		_, err := schedule.EndTime("14:00", "-2 hours")
		require.ErrorIs(t, err, schedule.ErrInvalidDuration)
	})

	t.Run("bad start", func(t *testing.T) {
		_, err := schedule.EndTime("25:00", "1 hour")
		require.ErrorIs(t, err, schedule.ErrInvalidTime)
	})
}

func TestParseDuration(t *testing.T) {
	for _, ok := range []struct {
		in    string
		hours int
	}{{"1", 1}, {"2 hours", 2}, {"1 hour", 1}, {"24 hours", 24}} {
		hours, err := schedule.ParseDuration(ok.in)
		require.NoError(t, err, ok.in)
		require.Equal(t, ok.hours, hours, ok.in)
	}

	for _, bad := range []string{"", "hours", "0", "-2 hours", "25 hours", "4611686018427387905 hours", "99999999999999999999999"} {
		_, err := schedule.ParseDuration(bad)
		require.ErrorIs(t, err, schedule.ErrInvalidDuration, bad)
	}
}

func TestParseTime(t *testing.T) {
	tod, err := schedule.ParseTime("07:45")
	require.NoError(t, err)
	require.Equal(t, schedule.TimeOfDay(7*60+45), tod)
	require.Equal(t, "07:45", tod.String())

	for _, bad := range []string{"", "7", "7:5x", "24:00", "12:60"} {
		_, err := schedule.ParseTime(bad)
		require.ErrorIs(t, err, schedule.ErrInvalidTime, bad)
	}
}

func TestOverlaps(t *testing.T) {
	at := func(s string) schedule.TimeOfDay {
		tod, err := schedule.ParseTime(s)
		require.NoError(t, err)
		return tod
	}

	cases := []struct {
		name         string
		aStart, aEnd string
		bStart, bEnd string
		expected     bool
	}{
		{"identical", "10:00", "11:00", "10:00", "11:00", true},
		{"contained", "10:00", "13:00", "11:00", "12:00", true},
		{"partial", "10:00", "12:00", "11:00", "13:00", true},
		{"touching end", "10:00", "11:00", "11:00", "12:00", false},
		{"touching start", "11:00", "12:00", "10:00", "11:00", false},
		{"disjoint", "08:00", "09:00", "15:00", "16:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := schedule.Overlaps(at(tc.aStart), at(tc.aEnd), at(tc.bStart), at(tc.bEnd))
			require.Equal(t, tc.expected, got)
			require.Equal(t, got, schedule.Overlaps(at(tc.bStart), at(tc.bEnd), at(tc.aStart), at(tc.aEnd)))
		})
	}
}

func TestIsPast(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 10, 12, 30, 0, 0, loc)
	today, _ := schedule.ParseDate("2026-03-10")
	tomorrow, _ := schedule.ParseDate("2026-03-11")
	yesterday, _ := schedule.ParseDate("2026-03-09")

	require.True(t, schedule.IsPast(today, 12*60, now, loc))
	require.False(t, schedule.IsPast(today, 12*60+30, now, loc))
	require.False(t, schedule.IsPast(today, 13*60, now, loc))
	require.False(t, schedule.IsPast(tomorrow, 8*60, now, loc))
	require.True(t, schedule.IsPast(yesterday, 21*60, now, loc))
}

func TestCatalog(t *testing.T) {
	t.Run("default hourly slots", func(t *testing.T) {
		c := schedule.DefaultCatalog()
		slots := c.SlotStrings()
		require.Len(t, slots, 14)
		require.Equal(t, "08:00", slots[0])
		require.Equal(t, "21:00", slots[len(slots)-1])
	})

	t.Run("contains", func(t *testing.T) {
		c, err := schedule.NewCatalog("09:00", "12:00", 30)
		require.NoError(t, err)
		require.True(t, c.Contains(9*60+30))
		require.False(t, c.Contains(9*60+15))
		require.False(t, c.Contains(12*60))
		require.False(t, c.Contains(8*60+30))
	})

	t.Run("fits", func(t *testing.T) {
		c := schedule.DefaultCatalog()
		require.True(t, c.Fits(schedule.Window{Start: 20 * 60, End: 22 * 60}))
		require.False(t, c.Fits(schedule.Window{Start: 21 * 60, End: 23 * 60}))
		require.False(t, c.Fits(schedule.Window{Start: 7 * 60, End: 9 * 60}))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := schedule.NewCatalog("12:00", "09:00", 60)
		require.ErrorIs(t, err, schedule.ErrInvalidCatalog)
		_, err = schedule.NewCatalog("09:00", "09:30", 60)
		require.ErrorIs(t, err, schedule.ErrInvalidCatalog)
		_, err = schedule.NewCatalog("08:00", "24:00", 60)
		require.ErrorIs(t, err, schedule.ErrInvalidTime)
	})
}
