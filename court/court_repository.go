package court

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanksha/court-booking-backend/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) InsertCourt(ctx context.Context, court Court) (Court, error) {
	sql := `
			INSERT INTO courts(name, type, hourly_rate)
			VALUES ($1, $2, $3)
			RETURNING id;
		`

	err := r.pool.QueryRow(ctx, sql, court.Name, court.Type, court.HourlyRate).Scan(&court.ID)

	if err != nil {
		return Court{}, fmt.Errorf("failed to insert court: %w", database.Unavailable(err))
	}

	return court, nil
}

func (r *Repository) ListCourts(ctx context.Context) ([]Court, error) {
	sql := `SELECT id, name, type, hourly_rate::float8 FROM courts ORDER BY id;`

	rows, err := r.pool.Query(ctx, sql)

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

func (r *Repository) GetCourtByID(ctx context.Context, id int64) (Court, error) {
	sql := `SELECT id, name, type, hourly_rate::float8 FROM courts WHERE id=$1;`

	var court Court
	err := r.pool.QueryRow(ctx, sql, id).Scan(&court.ID, &court.Name, &court.Type, &court.HourlyRate)

	if errors.Is(err, pgx.ErrNoRows) {
		return Court{}, ErrCourtNotFound
	}

	if err != nil {
		return Court{}, fmt.Errorf("failed to fetch court with id %v: %w", id, database.Unavailable(err))
	}

	return court, nil
}
