package booking

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/hanksha/court-booking-backend/court"
	"github.com/hanksha/court-booking-backend/database"
	"github.com/hanksha/court-booking-backend/schedule"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgForeignKeyViolation = "23503"

const selectBookings = `
			SELECT b.id, b.user_id, to_char(b.booking_date, 'YYYY-MM-DD'), b.start_time, b.end_time,
				b.total_price::float8, b.status, b.created_at, b.cancelled_at,
				COALESCE(array_agg(bc.court_id ORDER BY bc.court_id) FILTER (WHERE bc.court_id IS NOT NULL), '{}')
			FROM bookings b
			LEFT JOIN booking_courts bc ON bc.booking_id = b.id
		`

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// InsertBookingAtomic takes a transaction-scoped advisory lock per
// (court, date) in ascending court order, so writers touching the same
// courts on the same day run one after the other and never deadlock.
// The read that feeds guard happens after the locks are granted; under
// READ COMMITTED it sees every booking committed by earlier holders.
func (r *Repository) InsertBookingAtomic(ctx context.Context, booking Booking, guard ConflictGuard) (Booking, error) {
	date, err := schedule.ParseDate(booking.Date)
	if err != nil {
		return Booking{}, err
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})

	if err != nil {
		return Booking{}, fmt.Errorf("failed to begin transaction: %w", database.Unavailable(err))
	}

	defer tx.Rollback(ctx)

	courtIDs := slices.Sorted(slices.Values(booking.CourtIDs))

	for _, courtID := range courtIDs {
		key := fmt.Sprintf("court:%d:%s", courtID, booking.Date)

		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0));`, key); err != nil {
			return Booking{}, fmt.Errorf("failed to lock court %d: %w", courtID, database.Unavailable(err))
		}
	}

	live, err := listBookings(ctx, tx, selectBookings+`
			WHERE b.booking_date = $1 AND b.status <> 'cancelled'
			GROUP BY b.id
			ORDER BY b.start_time, b.id;
		`, date)

	if err != nil {
		return Booking{}, err
	}

	if err := guard(live); err != nil {
		return Booking{}, err
	}

	sql := `
			INSERT INTO bookings(user_id, booking_date, start_time, end_time, total_price, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at;
		`

	err = tx.QueryRow(ctx, sql,
		booking.UserID,
		date,
		booking.StartTime,
		booking.EndTime,
		booking.TotalPrice,
		string(booking.Status),
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", database.Unavailable(err))
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"booking_courts"},
		[]string{"booking_id", "court_id"},
		pgx.CopyFromSlice(len(courtIDs), func(i int) ([]any, error) {
			return []any{booking.ID, courtIDs[i]}, nil
		}),
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return Booking{}, fmt.Errorf("failed to link courts: %w", court.ErrCourtNotFound)
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to link courts: %w", database.Unavailable(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return Booking{}, fmt.Errorf("failed to commit booking: %w", database.Unavailable(err))
	}

	booking.CourtIDs = courtIDs

	return booking, nil
}

func (r *Repository) GetBookingByID(ctx context.Context, id int64) (Booking, error) {
	bookings, err := listBookings(ctx, r.pool, selectBookings+`
			WHERE b.id = $1
			GROUP BY b.id;
		`, id)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	if len(bookings) == 0 {
		return Booking{}, ErrBookingNotFound
	}

	return bookings[0], nil
}

func (r *Repository) ListBookingsByDate(ctx context.Context, date string) ([]Booking, error) {
	d, err := schedule.ParseDate(date)
	if err != nil {
		return nil, err
	}

	return listBookings(ctx, r.pool, selectBookings+`
			WHERE b.booking_date = $1 AND b.status <> 'cancelled'
			GROUP BY b.id
			ORDER BY b.start_time, b.id;
		`, d)
}

func (r *Repository) ListBookingsByUser(ctx context.Context, userID int64) ([]Booking, error) {
	return listBookings(ctx, r.pool, selectBookings+`
			WHERE b.user_id = $1
			GROUP BY b.id
			ORDER BY b.booking_date, b.start_time, b.id;
		`, userID)
}

func (r *Repository) SetBookingStatus(ctx context.Context, id int64, from, to Status) error {
	sql := `
			UPDATE bookings
			SET status=$1
			WHERE id=$2 AND status=$3;
		`

	tag, err := r.pool.Exec(ctx, sql, string(to), id, string(from))

	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", database.Unavailable(err))
	}

	if tag.RowsAffected() == 0 {
		return ErrInvalidBookingState
	}

	return nil
}

func (r *Repository) CancelBooking(ctx context.Context, id int64, at time.Time) (bool, error) {
	sql := `
			UPDATE bookings
			SET status='cancelled', cancelled_at=$2
			WHERE id=$1 AND status <> 'cancelled';
		`

	tag, err := r.pool.Exec(ctx, sql, id, at)

	if err != nil {
		return false, fmt.Errorf("failed to cancel booking: %w", database.Unavailable(err))
	}

	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListCourtsForBooking(ctx context.Context, id int64) ([]court.Court, error) {
	sql := `
			SELECT c.id, c.name, c.type, c.hourly_rate::float8
			FROM courts c
			INNER JOIN booking_courts bc ON bc.court_id = c.id
			WHERE bc.booking_id = $1
			ORDER BY c.id;
		`

	rows, err := r.pool.Query(ctx, sql, id)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch courts for booking: %w", database.Unavailable(err))
	}

	defer rows.Close()

	courts := []court.Court{}

	for rows.Next() {
		var c court.Court

		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.HourlyRate); err != nil {
			return nil, fmt.Errorf("error scanning court row: %w", database.Unavailable(err))
		}

		courts = append(courts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating court rows: %w", database.Unavailable(err))
	}

	return courts, nil
}

// PurgeCancelled deletes cancelled bookings; their court links go with them
// through ON DELETE CASCADE.
func (r *Repository) PurgeCancelled(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM bookings WHERE status = 'cancelled' AND cancelled_at < $1;`,
		before,
	)

	if err != nil {
		return 0, fmt.Errorf("failed to purge bookings: %w", database.Unavailable(err))
	}

	return tag.RowsAffected(), nil
}

func listBookings(ctx context.Context, q querier, sql string, args ...any) ([]Booking, error) {
	rows, err := q.Query(ctx, sql, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", database.Unavailable(err))
	}

	defer rows.Close()

	bookings := []Booking{}

	for rows.Next() {
		var booking Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&booking.TotalPrice,
			&booking.Status,
			&booking.CreatedAt,
			&booking.CancelledAt,
			&booking.CourtIDs,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", database.Unavailable(err))
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", database.Unavailable(err))
	}

	return bookings, nil
}
