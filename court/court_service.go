package court

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

type CourtRepository interface {
	InsertCourt(ctx context.Context, court Court) (Court, error)
	ListCourts(ctx context.Context) ([]Court, error)
	GetCourtByID(ctx context.Context, id int64) (Court, error)
}

const courtsCacheKey = "courts"

// Service serves the court catalog. Courts are reference data that only
// change through CreateCourt, so the full list is cached and flushed on
// every insert.
type Service struct {
	repo   CourtRepository
	cache  *cache.Cache
	logger *slog.Logger
}

func NewService(repo CourtRepository, ttl time.Duration) *Service {
	return &Service{
		repo:   repo,
		cache:  cache.New(ttl, 2*ttl),
		logger: slog.Default().With("component", "court"),
	}
}

func (s *Service) ListCourts(ctx context.Context) ([]Court, error) {
	if cached, found := s.cache.Get(courtsCacheKey); found {
		return copyCourts(cached.([]Court)), nil
	}

	courts, err := s.repo.ListCourts(ctx)

	if err != nil {
		return nil, err
	}

	s.cache.Set(courtsCacheKey, copyCourts(courts), cache.DefaultExpiration)

	return courts, nil
}

func (s *Service) GetCourtByID(ctx context.Context, id int64) (Court, error) {
	if cached, found := s.cache.Get(courtsCacheKey); found {
		for _, court := range cached.([]Court) {
			if court.ID == id {
				return court, nil
			}
		}
	}

	return s.repo.GetCourtByID(ctx, id)
}

func (s *Service) CreateCourt(ctx context.Context, court Court) (Court, error) {
	court.Name = strings.TrimSpace(court.Name)
	court.Type = strings.TrimSpace(court.Type)

	if err := validate(court); err != nil {
		return Court{}, err
	}

	inserted, err := s.repo.InsertCourt(ctx, court)

	if err != nil {
		return Court{}, err
	}

	s.cache.Flush()
	s.logger.Info("court created", "court_id", inserted.ID, "name", inserted.Name)

	return inserted, nil
}

// Seed inserts courts into an empty catalog. It returns the number of
// courts inserted, zero when the catalog already had entries.
func (s *Service) Seed(ctx context.Context, courts []Court) (int, error) {
	existing, err := s.repo.ListCourts(ctx)

	if err != nil {
		return 0, err
	}

	if len(existing) > 0 {
		return 0, nil
	}

	for i, court := range courts {
		if _, err := s.CreateCourt(ctx, court); err != nil {
			return i, fmt.Errorf("failed to seed court %q: %w", court.Name, err)
		}
	}

	return len(courts), nil
}

func validate(court Court) error {
	if len(court.Name) == 0 {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidCourt)
	}

	if court.HourlyRate < 0 || math.IsNaN(court.HourlyRate) || math.IsInf(court.HourlyRate, 0) {
		return fmt.Errorf("%w: hourly rate must be a non-negative number", ErrInvalidCourt)
	}

	return nil
}

func copyCourts(courts []Court) []Court {
	out := make([]Court, len(courts))
	copy(out, courts)
	return out
}
