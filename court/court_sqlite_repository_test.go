package court_test

import (
	"context"
	"testing"

	"github.com/hanksha/court-booking-backend/court"
	"github.com/hanksha/court-booking-backend/testutil"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepository(t *testing.T) {
	repo := court.NewSQLiteRepository(testutil.NewSQLiteDB(t))
	ctx := context.Background()

	courts, err := repo.ListCourts(ctx)
	require.NoError(t, err)
	require.Empty(t, courts)

	a, err := repo.InsertCourt(ctx, court.Court{Name: "Court A", Type: "Rubber", HourlyRate: 50})
	require.NoError(t, err)
	require.NotZero(t, a.ID)

	e, err := repo.InsertCourt(ctx, court.Court{Name: "Court E", Type: "Wooden", HourlyRate: 30.5})
	require.NoError(t, err)

	got, err := repo.GetCourtByID(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, e, got)

	_, err = repo.GetCourtByID(ctx, 999)
	require.ErrorIs(t, err, court.ErrCourtNotFound)

	courts, err = repo.ListCourts(ctx)
	require.NoError(t, err)
	require.Equal(t, []court.Court{a, e}, courts)
}
