package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/hanksha/court-booking-backend/schedule"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":9090"`

	// Store
	DatabaseDriver string        `envconfig:"DATABASE_DRIVER" default:"postgres"`
	DatabaseURL    string        `envconfig:"DATABASE_URL"`
	SQLitePath     string        `envconfig:"SQLITE_PATH" default:"data/courts.db"`
	StoreTimeout   time.Duration `envconfig:"STORE_TIMEOUT" default:"5s"`

	// Venue
	VenueTimezone string        `envconfig:"VENUE_TIMEZONE" default:"Local"`
	OpeningTime   string        `envconfig:"OPENING_TIME" default:"08:00"`
	ClosingTime   string        `envconfig:"CLOSING_TIME" default:"22:00"`
	SlotMinutes   int           `envconfig:"SLOT_MINUTES" default:"60"`
	CourtSeedFile string        `envconfig:"COURT_SEED_FILE"`
	CourtCacheTTL time.Duration `envconfig:"COURT_CACHE_TTL" default:"5m"`

	// RabbitMQ; events are disabled when RABBIT_URL is empty
	RabbitURL         string   `envconfig:"RABBIT_URL"`
	BookingExchange   string   `envconfig:"BOOKING_EXCHANGE" default:"booking.exchange"`
	PaymentExchange   string   `envconfig:"PAYMENT_EXCHANGE" default:"payment.exchange"`
	ConfirmationQueue string   `envconfig:"CONFIRMATION_QUEUE" default:"booking.confirmation.q"`
	ConfirmationKeys  []string `envconfig:"CONFIRMATION_KEYS" default:"payment.paid"`

	// Callers (X-User-ID) allowed to confirm bookings and create courts
	AdminUserIDs []int64 `envconfig:"ADMIN_USER_IDS"`

	// Rate limiting of booking creation; in-memory store unless REDIS_URL is set
	RedisURL  string `envconfig:"REDIS_URL"`
	RateLimit string `envconfig:"RATE_LIMIT" default:"30-M"`

	// Maintenance
	CancelledRetention time.Duration `envconfig:"CANCELLED_RETENTION" default:"720h"`
	PurgeCron          string        `envconfig:"PURGE_CRON" default:"0 3 * * *"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE"`
}

// Load reads an optional .env file, then the environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading .env file: %w", err)
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("error reading environment: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}

	if c.StoreTimeout <= 0 {
		return errors.New("STORE_TIMEOUT must be positive")
	}

	if _, err := c.Catalog(); err != nil {
		return err
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	if c.CancelledRetention < 0 {
		return errors.New("CANCELLED_RETENTION cannot be negative")
	}

	return nil
}

func (c Config) Catalog() (schedule.Catalog, error) {
	return schedule.NewCatalog(c.OpeningTime, c.ClosingTime, c.SlotMinutes)
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.VenueTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid VENUE_TIMEZONE %q: %w", c.VenueTimezone, err)
	}
	return loc, nil
}
