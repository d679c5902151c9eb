package booking_test

import (
	"testing"

	bk "github.com/hanksha/court-booking-backend/booking"
	"github.com/hanksha/court-booking-backend/schedule"
	"github.com/stretchr/testify/require"
)

func TestCheckConflicts(t *testing.T) {
	window := schedule.Window{Start: 10 * 60, End: 12 * 60}

	live := []bk.Booking{
		{ID: 1, Date: "2026-03-11", StartTime: "08:00", EndTime: "10:00", Status: bk.StatusConfirmed, CourtIDs: []int64{1, 2}},
		{ID: 2, Date: "2026-03-11", StartTime: "11:00", EndTime: "13:00", Status: bk.StatusPending, CourtIDs: []int64{3}},
		{ID: 3, Date: "2026-03-11", StartTime: "10:00", EndTime: "11:00", Status: bk.StatusCancelled, CourtIDs: []int64{1}},
		{ID: 4, Date: "2026-03-12", StartTime: "10:00", EndTime: "11:00", Status: bk.StatusPending, CourtIDs: []int64{2}},
	}

	t.Run("free", func(t *testing.T) {
		require.NoError(t, bk.CheckConflicts(live, "2026-03-11", window, []int64{1, 2, 4}))
	})

	t.Run("conflict", func(t *testing.T) {
		err := bk.CheckConflicts(live, "2026-03-11", window, []int64{4, 3, 1})

		var conflict *bk.ConflictError
		require.ErrorAs(t, err, &conflict)
		require.ErrorIs(t, err, bk.ErrSlotConflict)
		require.Equal(t, []int64{3}, conflict.CourtIDs)
		require.Contains(t, err.Error(), "2026-03-11 10:00-12:00")
	})

	t.Run("unreadable booking blocks its courts", func(t *testing.T) {
		corrupt := []bk.Booking{{ID: 9, Date: "2026-03-11", StartTime: "??", EndTime: "10:00", Status: bk.StatusPending, CourtIDs: []int64{5}}}

		err := bk.CheckConflicts(corrupt, "2026-03-11", window, []int64{5})

		require.ErrorIs(t, err, bk.ErrSlotConflict)
	})

	t.Run("overnight booking blocks its courts", func(t *testing.T) {
		overnight := []bk.Booking{{ID: 10, Date: "2026-03-11", StartTime: "23:00", EndTime: "01:00", Status: bk.StatusPending, CourtIDs: []int64{6}}}

		err := bk.CheckConflicts(overnight, "2026-03-11", window, []int64{6})

		require.ErrorIs(t, err, bk.ErrSlotConflict)
	})
}
