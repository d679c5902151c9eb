package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/hanksha/court-booking-backend/court"
	"github.com/hanksha/court-booking-backend/database"
	"github.com/mattn/go-sqlite3"
)

const selectSQLiteBookings = `
			SELECT b.id, b.user_id, b.booking_date, b.start_time, b.end_time, b.total_price,
				b.status, b.created_at, b.cancelled_at, COALESCE(group_concat(bc.court_id), '')
			FROM bookings b
			LEFT JOIN booking_courts bc ON bc.booking_id = b.id
		`

type sqliteQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// SQLiteRepository is the embedded store. database.OpenSQLite limits the
// pool to one connection, which serialises write transactions; inside a
// transaction every statement must go through the tx or it would wait on
// that single connection forever.
type SQLiteRepository struct{ db *sql.DB }

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) InsertBookingAtomic(ctx context.Context, booking Booking, guard ConflictGuard) (Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to begin transaction: %w", database.Unavailable(err))
	}

	defer tx.Rollback()

	live, err := listSQLiteBookings(ctx, tx, selectSQLiteBookings+`
			WHERE b.booking_date = ? AND b.status <> 'cancelled'
			GROUP BY b.id
			ORDER BY b.start_time, b.id;
		`, booking.Date)

	if err != nil {
		return Booking{}, err
	}

	if err := guard(live); err != nil {
		return Booking{}, err
	}

	booking.CreatedAt = time.Now().UTC().Truncate(time.Second)

	res, err := tx.ExecContext(ctx, `
			INSERT INTO bookings(user_id, booking_date, start_time, end_time, total_price, status, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?);
		`,
		booking.UserID,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.TotalPrice,
		string(booking.Status),
		booking.CreatedAt,
	)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", database.Unavailable(err))
	}

	if booking.ID, err = res.LastInsertId(); err != nil {
		return Booking{}, fmt.Errorf("failed to read booking id: %w", database.Unavailable(err))
	}

	courtIDs := slices.Sorted(slices.Values(booking.CourtIDs))

	for _, courtID := range courtIDs {
		_, err := tx.ExecContext(ctx, `INSERT INTO booking_courts(booking_id, court_id) VALUES (?, ?);`, booking.ID, courtID)

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
			return Booking{}, fmt.Errorf("failed to link court %d: %w", courtID, court.ErrCourtNotFound)
		}

		if err != nil {
			return Booking{}, fmt.Errorf("failed to link court %d: %w", courtID, database.Unavailable(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return Booking{}, fmt.Errorf("failed to commit booking: %w", database.Unavailable(err))
	}

	booking.CourtIDs = courtIDs

	return booking, nil
}

func (r *SQLiteRepository) GetBookingByID(ctx context.Context, id int64) (Booking, error) {
	bookings, err := listSQLiteBookings(ctx, r.db, selectSQLiteBookings+`
			WHERE b.id = ?
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

func (r *SQLiteRepository) ListBookingsByDate(ctx context.Context, date string) ([]Booking, error) {
	return listSQLiteBookings(ctx, r.db, selectSQLiteBookings+`
			WHERE b.booking_date = ? AND b.status <> 'cancelled'
			GROUP BY b.id
			ORDER BY b.start_time, b.id;
		`, date)
}

func (r *SQLiteRepository) ListBookingsByUser(ctx context.Context, userID int64) ([]Booking, error) {
	return listSQLiteBookings(ctx, r.db, selectSQLiteBookings+`
			WHERE b.user_id = ?
			GROUP BY b.id
			ORDER BY b.booking_date, b.start_time, b.id;
		`, userID)
}

func (r *SQLiteRepository) SetBookingStatus(ctx context.Context, id int64, from, to Status) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = ? WHERE id = ? AND status = ?;`,
		string(to), id, string(from),
	)

	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", database.Unavailable(err))
	}

	n, err := res.RowsAffected()

	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", database.Unavailable(err))
	}

	if n == 0 {
		return ErrInvalidBookingState
	}

	return nil
}

func (r *SQLiteRepository) CancelBooking(ctx context.Context, id int64, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = 'cancelled', cancelled_at = ? WHERE id = ? AND status <> 'cancelled';`,
		at.UTC(), id,
	)

	if err != nil {
		return false, fmt.Errorf("failed to cancel booking: %w", database.Unavailable(err))
	}

	n, err := res.RowsAffected()

	if err != nil {
		return false, fmt.Errorf("failed to cancel booking: %w", database.Unavailable(err))
	}

	return n == 1, nil
}

func (r *SQLiteRepository) ListCourtsForBooking(ctx context.Context, id int64) ([]court.Court, error) {
	rows, err := r.db.QueryContext(ctx, `
			SELECT c.id, c.name, c.type, c.hourly_rate
			FROM courts c
			INNER JOIN booking_courts bc ON bc.court_id = c.id
			WHERE bc.booking_id = ?
			ORDER BY c.id;
		`, id)

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

func (r *SQLiteRepository) PurgeCancelled(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM bookings WHERE status = 'cancelled' AND cancelled_at < ?;`,
		before.UTC(),
	)

	if err != nil {
		return 0, fmt.Errorf("failed to purge bookings: %w", database.Unavailable(err))
	}

	n, err := res.RowsAffected()

	if err != nil {
		return 0, fmt.Errorf("failed to purge bookings: %w", database.Unavailable(err))
	}

	return n, nil
}

func listSQLiteBookings(ctx context.Context, q sqliteQuerier, query string, args ...any) ([]Booking, error) {
	rows, err := q.QueryContext(ctx, query, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", database.Unavailable(err))
	}

	defer rows.Close()

	bookings := []Booking{}

	for rows.Next() {
		var (
			booking     Booking
			createdAt   sqliteTime
			cancelledAt sqliteTime
			courtIDs    string
		)

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&booking.TotalPrice,
			&booking.Status,
			&createdAt,
			&cancelledAt,
			&courtIDs,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", database.Unavailable(err))
		}

		booking.CreatedAt = createdAt.Time

		if cancelledAt.Valid {
			t := cancelledAt.Time
			booking.CancelledAt = &t
		}

		if booking.CourtIDs, err = parseCourtIDs(courtIDs); err != nil {
			return nil, fmt.Errorf("error scanning booking courts: %w", database.Unavailable(err))
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", database.Unavailable(err))
	}

	return bookings, nil
}

func parseCourtIDs(s string) ([]int64, error) {
	ids := []int64{}

	if s == "" {
		return ids, nil
	}

	for _, part := range strings.Split(s, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids, nil
}

var sqliteTimeLayouts = []string{
	sqlite3.SQLiteTimestampFormats[0],
	time.RFC3339Nano,
	time.DateTime,
}

// sqliteTime accepts both the time.Time the driver produces for DATETIME
// columns and the raw text it falls back to for expressions.
type sqliteTime struct {
	Time  time.Time
	Valid bool
}

func (t *sqliteTime) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		t.Time, t.Valid = time.Time{}, false
		return nil
	case time.Time:
		t.Time, t.Valid = v, true
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	}
	return fmt.Errorf("unsupported time value %T", value)
}

func (t *sqliteTime) parse(s string) error {
	for _, layout := range sqliteTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time, t.Valid = parsed, true
			return nil
		}
	}
	return fmt.Errorf("unsupported time format %q", s)
}
