package court

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hanksha/court-booking-backend/database"
)

type SQLiteRepository struct{ db *sql.DB }

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) InsertCourt(ctx context.Context, court Court) (Court, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO courts(name, type, hourly_rate) VALUES (?, ?, ?);`,
		court.Name, court.Type, court.HourlyRate,
	)

	if err != nil {
		return Court{}, fmt.Errorf("failed to insert court: %w", database.Unavailable(err))
	}

	id, err := res.LastInsertId()

	if err != nil {
		return Court{}, fmt.Errorf("failed to read court id: %w", database.Unavailable(err))
	}

	court.ID = id

	return court, nil
}

func (r *SQLiteRepository) ListCourts(ctx context.Context) ([]Court, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, type, hourly_rate FROM courts ORDER BY id;`)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch courts: %w", database.Unavailable(err))
	}

	defer rows.Close()

	courts := []Court{}

	for rows.Next() {
		var court Court

		if err := rows.Scan(&court.ID, &court.Name, &court.Type, &court.HourlyRate); err != nil {
			return nil, fmt.Errorf("error scanning court row: %w", database.Unavailable(err))
		}

		courts = append(courts, court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating court rows: %w", database.Unavailable(err))
	}

	return courts, nil
}

func (r *SQLiteRepository) GetCourtByID(ctx context.Context, id int64) (Court, error) {
	var court Court
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, type, hourly_rate FROM courts WHERE id = ?;`, id,
	).Scan(&court.ID, &court.Name, &court.Type, &court.HourlyRate)

	if errors.Is(err, sql.ErrNoRows) {
		return Court{}, ErrCourtNotFound
	}

	if err != nil {
		return Court{}, fmt.Errorf("failed to fetch court with id %v: %w", id, database.Unavailable(err))
	}

	return court, nil
}
