package testutil

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hanksha/court-booking-backend/database"
)

// NewSQLiteDB creates a temporary SQLite database with migrations applied.
func NewSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("create test db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// NewPostgresPool connects to TEST_DATABASE_URL, migrates it and empties
// every table. The test is skipped when the variable is not set.
func NewPostgresPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if err := database.MigratePostgres(url); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	pool, err := database.OpenPostgres(context.Background(), url, 5*time.Second)
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(context.Background(), "TRUNCATE booking_courts, bookings, courts RESTART IDENTITY CASCADE"); err != nil {
		t.Fatalf("reset test db: %v", err)
	}

	return pool
}
