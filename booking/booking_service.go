package booking

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/hanksha/court-booking-backend/court"
	"github.com/hanksha/court-booking-backend/pricing"
	"github.com/hanksha/court-booking-backend/schedule"
)

type BookingRepository interface {
	// InsertBookingAtomic persists booking and its court links in one
	// transaction, calling guard with the live bookings of the date once
	// concurrent writers on the same courts are excluded.
	InsertBookingAtomic(ctx context.Context, booking Booking, guard ConflictGuard) (Booking, error)
	GetBookingByID(ctx context.Context, id int64) (Booking, error)
	ListBookingsByDate(ctx context.Context, date string) ([]Booking, error)
	ListBookingsByUser(ctx context.Context, userID int64) ([]Booking, error)
	SetBookingStatus(ctx context.Context, id int64, from, to Status) error
	// CancelBooking reports whether the booking moved to cancelled.
	CancelBooking(ctx context.Context, id int64, at time.Time) (bool, error)
	ListCourtsForBooking(ctx context.Context, id int64) ([]court.Court, error)
	PurgeCancelled(ctx context.Context, before time.Time) (int64, error)
}

type CourtCatalog interface {
	ListCourts(ctx context.Context) ([]court.Court, error)
	GetCourtByID(ctx context.Context, id int64) (court.Court, error)
}

// EventPublisher delivers booking lifecycle events to downstream consumers.
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
}

type Options struct {
	Catalog      schedule.Catalog
	Location     *time.Location
	StoreTimeout time.Duration
	Now          func() time.Time
}

type Service struct {
	repo      BookingRepository
	courts    CourtCatalog
	publisher EventPublisher
	catalog   schedule.Catalog
	loc       *time.Location
	timeout   time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// NewService wires the booking engine. publisher may be nil.
func NewService(repo BookingRepository, courts CourtCatalog, publisher EventPublisher, opts Options) *Service {
	if opts.Catalog.Step == 0 {
		opts.Catalog = schedule.DefaultCatalog()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Service{
		repo:      repo,
		courts:    courts,
		publisher: publisher,
		catalog:   opts.Catalog,
		loc:       opts.Location,
		timeout:   opts.StoreTimeout,
		now:       opts.Now,
		logger:    slog.Default().With("component", "booking"),
	}
}

type CreateRequest struct {
	UserID    int64   `json:"userId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	Duration  string  `json:"duration"`
	CourtIDs  []int64 `json:"courtIds"`
	// ExpectedTotal is the price shown to the user; when set it must match
	// the price computed from current rates.
	ExpectedTotal *float64 `json:"totalPrice,omitempty"`
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Service) CreateBooking(ctx context.Context, req CreateRequest) (Booking, error) {
	if req.UserID <= 0 {
		return Booking{}, invalid(ErrInvalidUser)
	}

	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		return Booking{}, invalid(err)
	}

	hours, err := schedule.ParseDuration(req.Duration)
	if err != nil {
		return Booking{}, invalid(err)
	}

	start, err := schedule.ParseTime(req.StartTime)
	if err != nil {
		return Booking{}, invalid(err)
	}

	if !s.catalog.Contains(start) {
		return Booking{}, invalid(fmt.Errorf("%w: %s", ErrSlotNotBookable, start))
	}

	// TimeOfDay has no 24:00, so a window may not end at midnight either.
	if int(start)+hours*60 >= 24*60 {
		return Booking{}, invalid(fmt.Errorf("%w: %s for %d hours", ErrCrossesMidnight, start, hours))
	}

	window := schedule.Window{Start: start, End: start.AddHours(hours)}

	if !s.catalog.Fits(window) {
		return Booking{}, invalid(fmt.Errorf("%w: %s", ErrOutsideOpeningHours, window))
	}

	if schedule.IsPast(date, start, s.now(), s.loc) {
		return Booking{}, invalid(fmt.Errorf("%w: %s %s", ErrSlotInPast, req.Date, start))
	}

	courtIDs := normalizeCourtIDs(req.CourtIDs)

	if len(courtIDs) == 0 {
		return Booking{}, invalid(ErrNoCourts)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	courts, err := s.lookupCourts(ctx, courtIDs)
	if err != nil {
		return Booking{}, err
	}

	quote := pricing.Calculate(courts, hours)

	if req.ExpectedTotal != nil && !pricing.Equal(*req.ExpectedTotal, quote.Total) {
		return Booking{}, invalid(fmt.Errorf("%w: expected %.2f, got %.2f", ErrPriceMismatch, quote.Total, *req.ExpectedTotal))
	}

	booking := Booking{
		UserID:     req.UserID,
		Date:       date.Format(schedule.DateLayout),
		StartTime:  window.Start.String(),
		EndTime:    window.End.String(),
		TotalPrice: quote.Total,
		Status:     StatusPending,
		CourtIDs:   courtIDs,
	}

	created, err := s.repo.InsertBookingAtomic(ctx, booking, conflictGuard(booking.Date, window, courtIDs))

	if errors.Is(err, court.ErrCourtNotFound) {
		return Booking{}, invalid(fmt.Errorf("%w: %w", ErrUnknownCourt, err))
	}

	if err != nil {
		return Booking{}, err
	}

	s.logger.Info("booking created",
		"booking_id", created.ID,
		"user_id", created.UserID,
		"date", created.Date,
		"window", window.String(),
		"courts", created.CourtIDs,
	)

	s.notify(ctx, EventCreated, created)

	return created, nil
}

func (s *Service) ConfirmBooking(ctx context.Context, id int64) (Booking, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if booking.Status != StatusPending {
		return Booking{}, ErrInvalidBookingState
	}

	if err := s.repo.SetBookingStatus(ctx, id, StatusPending, StatusConfirmed); err != nil {
		return Booking{}, fmt.Errorf("failed to confirm booking: %w", err)
	}

	booking.Status = StatusConfirmed

	s.logger.Info("booking confirmed", "booking_id", id)
	s.notify(ctx, EventConfirmed, booking)

	return booking, nil
}

// CancelBooking releases the courts held by the booking. Cancelling an
// unknown or already cancelled booking succeeds without effect.
func (s *Service) CancelBooking(ctx context.Context, id, userID int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	booking, err := s.repo.GetBookingByID(ctx, id)

	if errors.Is(err, ErrBookingNotFound) {
		return nil
	}

	if err != nil {
		return err
	}

	if booking.UserID != userID {
		return ErrNotAllowed
	}

	if booking.Status == StatusCancelled {
		return nil
	}

	now := s.now()
	changed, err := s.repo.CancelBooking(ctx, id, now)

	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	if !changed {
		return nil
	}

	booking.Status = StatusCancelled
	booking.CancelledAt = &now

	s.logger.Info("booking cancelled", "booking_id", id, "user_id", userID)
	s.notify(ctx, EventCancelled, booking)

	return nil
}

func (s *Service) FindBookingByID(ctx context.Context, id int64) (Booking, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.repo.GetBookingByID(ctx, id)
}

// FindBookingsByDate returns the live bookings of date ordered by start time.
func (s *Service) FindBookingsByDate(ctx context.Context, date string) ([]Booking, error) {
	d, err := schedule.ParseDate(date)
	if err != nil {
		return nil, invalid(err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.repo.ListBookingsByDate(ctx, d.Format(schedule.DateLayout))
}

// FindBookingsByUser returns every booking of the user, cancelled included.
func (s *Service) FindBookingsByUser(ctx context.Context, userID int64) ([]Booking, error) {
	if userID <= 0 {
		return nil, invalid(ErrInvalidUser)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	bookings, err := s.repo.ListBookingsByUser(ctx, userID)

	if err != nil {
		return nil, err
	}

	sortByStart(bookings)

	return bookings, nil
}

// ListUpcoming returns the user's live bookings starting after now, soonest
// first.
func (s *Service) ListUpcoming(ctx context.Context, userID int64) ([]Booking, error) {
	now := s.now()
	return s.filterUserBookings(ctx, userID, func(start time.Time) bool { return start.After(now) })
}

// ListPast returns the user's live bookings that started before now.
func (s *Service) ListPast(ctx context.Context, userID int64) ([]Booking, error) {
	now := s.now()
	return s.filterUserBookings(ctx, userID, func(start time.Time) bool { return start.Before(now) })
}

func (s *Service) filterUserBookings(ctx context.Context, userID int64, keep func(start time.Time) bool) ([]Booking, error) {
	bookings, err := s.FindBookingsByUser(ctx, userID)

	if err != nil {
		return nil, err
	}

	filtered := []Booking{}

	for _, b := range bookings {
		if !b.Live() {
			continue
		}

		start, err := b.StartsAt(s.loc)
		if err != nil {
			s.logger.Warn("skipping booking with unreadable start", "booking_id", b.ID, "err", err)
			continue
		}

		if keep(start) {
			filtered = append(filtered, b)
		}
	}

	return filtered, nil
}

func (s *Service) FindCourtsForBooking(ctx context.Context, id int64) ([]court.Court, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.repo.GetBookingByID(ctx, id); err != nil {
		return nil, err
	}

	return s.repo.ListCourtsForBooking(ctx, id)
}

// QuotePrice prices the given courts for a number of hours at current rates.
func (s *Service) QuotePrice(ctx context.Context, courtIDs []int64, hours int) (pricing.Quote, error) {
	ids := normalizeCourtIDs(courtIDs)

	if len(ids) == 0 {
		return pricing.Calculate(nil, hours), nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	courts, err := s.lookupCourts(ctx, ids)
	if err != nil {
		return pricing.Quote{}, err
	}

	return pricing.Calculate(courts, hours), nil
}

// ComputeAvailability reports, for each court (all courts when courtIDs is
// empty), the free catalog slots of date and, when window is given, whether
// the court is free for the whole window. Everything is derived from a
// single read of the date's live bookings.
func (s *Service) ComputeAvailability(ctx context.Context, date string, window *WindowRequest, courtIDs []int64) (Availability, error) {
	d, err := schedule.ParseDate(date)
	if err != nil {
		return Availability{}, invalid(err)
	}

	query := availabilityQuery{
		date:    d,
		catalog: s.catalog,
		now:     s.now(),
		loc:     s.loc,
	}

	if window != nil {
		w, err := schedule.ParseWindow(window.Start, window.End)
		if err != nil {
			return Availability{}, invalid(err)
		}
		if w.CrossesMidnight() {
			return Availability{}, invalid(fmt.Errorf("%w: %s", ErrCrossesMidnight, w))
		}
		query.window = &w
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var courts []court.Court

	if ids := normalizeCourtIDs(courtIDs); len(ids) != 0 {
		courts, err = s.lookupCourts(ctx, ids)
	} else {
		courts, err = s.courts.ListCourts(ctx)
	}

	if err != nil {
		return Availability{}, err
	}

	dateStr := d.Format(schedule.DateLayout)
	live, err := s.repo.ListBookingsByDate(ctx, dateStr)

	if err != nil {
		return Availability{}, err
	}

	availability := Availability{
		Date:   dateStr,
		Slots:  s.catalog.SlotStrings(),
		Courts: query.resolve(courts, live),
	}

	if query.window != nil {
		availability.Window = &WindowRequest{Start: query.window.Start.String(), End: query.window.End.String()}
	}

	return availability, nil
}

func (s *Service) FreeSlots(ctx context.Context, date string, courtIDs []int64) ([]CourtAvailability, error) {
	availability, err := s.ComputeAvailability(ctx, date, nil, courtIDs)

	if err != nil {
		return nil, err
	}

	return availability.Courts, nil
}

func (s *Service) AvailableCourts(ctx context.Context, date, start, end string) ([]court.Court, error) {
	availability, err := s.ComputeAvailability(ctx, date, &WindowRequest{Start: start, End: end}, nil)

	if err != nil {
		return nil, err
	}

	return availability.AvailableCourts(), nil
}

// PurgeCancelled hard-deletes bookings cancelled more than retention ago.
func (s *Service) PurgeCancelled(ctx context.Context, retention time.Duration) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	purged, err := s.repo.PurgeCancelled(ctx, s.now().Add(-retention))

	if err != nil {
		return 0, fmt.Errorf("failed to purge cancelled bookings: %w", err)
	}

	if purged > 0 {
		s.logger.Info("purged cancelled bookings", "count", purged)
	}

	return purged, nil
}

func (s *Service) lookupCourts(ctx context.Context, ids []int64) ([]court.Court, error) {
	courts := make([]court.Court, 0, len(ids))

	for _, id := range ids {
		if id <= 0 {
			return nil, invalid(fmt.Errorf("%w: %d", ErrUnknownCourt, id))
		}

		c, err := s.courts.GetCourtByID(ctx, id)

		if errors.Is(err, court.ErrCourtNotFound) {
			return nil, invalid(fmt.Errorf("%w: %d", ErrUnknownCourt, id))
		}

		if err != nil {
			return nil, err
		}

		courts = append(courts, c)
	}

	return courts, nil
}

func sortByStart(bookings []Booking) {
	slices.SortStableFunc(bookings, func(a, b Booking) int {
		return cmp.Or(cmp.Compare(a.Date, b.Date), cmp.Compare(a.StartTime, b.StartTime), cmp.Compare(a.ID, b.ID))
	})
}

func normalizeCourtIDs(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
