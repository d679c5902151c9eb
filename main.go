package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/hanksha/court-booking-backend/api"
	bk "github.com/hanksha/court-booking-backend/booking"
	"github.com/hanksha/court-booking-backend/config"
	"github.com/hanksha/court-booking-backend/court"
	"github.com/hanksha/court-booking-backend/database"
	"github.com/hanksha/court-booking-backend/events"
	"github.com/hanksha/court-booking-backend/logging"
	"github.com/hanksha/court-booking-backend/scheduler"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	logger, logCloser := logging.New(cfg.LogLevel, cfg.LogFile)
	slog.SetDefault(logger)

	err = run(cfg)

	if err != nil {
		slog.Error("server stopped", "component", "main", "err", err)
	}

	logCloser.Close()

	if err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	logger := slog.Default().With("component", "main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		courtRepo   court.CourtRepository
		bookingRepo bk.BookingRepository
	)

	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		logger.Info("connecting to PostgreSQL database")
		pool, err := database.OpenPostgres(ctx, cfg.DatabaseURL, 10*time.Second)

		if err != nil {
			return err
		}

		defer pool.Close()

		if err := database.MigratePostgres(cfg.DatabaseURL); err != nil {
			return err
		}

		courtRepo = court.NewRepository(pool)
		bookingRepo = bk.NewRepository(pool)
	case config.DriverSQLite:
		logger.Info("opening SQLite database", "path", cfg.SQLitePath)
		db, err := database.OpenSQLite(cfg.SQLitePath)

		if err != nil {
			return err
		}

		defer db.Close()

		courtRepo = court.NewSQLiteRepository(db)
		bookingRepo = bk.NewSQLiteRepository(db)
	}

	logger.Info("initialized database tables", "driver", cfg.DatabaseDriver)

	courtService := court.NewService(courtRepo, cfg.CourtCacheTTL)

	if cfg.CourtSeedFile != "" {
		courts, err := court.LoadSeedFile(cfg.CourtSeedFile)

		if err != nil {
			return err
		}

		seeded, err := courtService.Seed(ctx, courts)

		if err != nil {
			return err
		}

		logger.Info("court catalog seeded", "courts", seeded, "file", cfg.CourtSeedFile)
	}

	// a nil *events.Publisher must not end up inside the interface
	var publisher bk.EventPublisher

	if cfg.RabbitURL != "" {
		p, err := events.NewPublisher(cfg.RabbitURL, cfg.BookingExchange)

		if err != nil {
			return err
		}

		defer p.Close()
		publisher = p
	} else {
		logger.Warn("RABBIT_URL not set, booking events are disabled")
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	bookingService := bk.NewService(bookingRepo, courtService, publisher, bk.Options{
		Catalog:      catalog,
		Location:     loc,
		StoreTimeout: cfg.StoreTimeout,
	})

	jobs, err := scheduler.New()
	if err != nil {
		return err
	}

	defer jobs.Stop()

	if _, err := jobs.AddJob(scheduler.PurgeJobName, cfg.PurgeCron, scheduler.PurgeCancelledTask(ctx, bookingService, cfg.CancelledRetention)); err != nil {
		return err
	}

	jobs.Start()

	limiterStore, closeLimiterStore, err := api.NewLimiterStore(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}

	defer closeLimiterStore()

	createLimit, err := api.NewRateLimiter(cfg.RateLimit, limiterStore)
	if err != nil {
		return err
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	if len(cfg.AdminUserIDs) == 0 {
		logger.Warn("ADMIN_USER_IDS not set, court creation and manual confirmation are disabled")
	}

	requireUser := api.RequireUser(cfg.AdminUserIDs...)

	v1 := r.Group("/api/v1")

	// COURT API

	api.NewCourtHandler(courtService, requireUser).Register(v1.Group("/courts"))

	// AVAILABILITY API

	api.NewAvailabilityHandler(bookingService).Register(v1)

	// BOOKING API

	bookingRouter := v1.Group("/bookings")
	bookingRouter.Use(requireUser)
	bookingHandler := api.NewBookingHandler(bookingService, createLimit)

	bookingHandler.Register(bookingRouter)

	userRouter := v1.Group("/users")
	userRouter.Use(requireUser)
	bookingHandler.RegisterUserRoutes(userRouter)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.RabbitURL != "" {
		consumer, err := events.NewConsumer(cfg.RabbitURL, cfg.PaymentExchange, cfg.ConfirmationQueue, cfg.ConfirmationKeys)

		if err != nil {
			stop()
			_ = g.Wait()
			return err
		}

		defer consumer.Close()

		deliveries, err := consumer.Deliveries(gctx)

		if err != nil {
			stop()
			_ = g.Wait()
			return err
		}

		worker := events.NewConfirmationWorker(bookingService)

		g.Go(func() error {
			return worker.Run(gctx, deliveries)
		})
	}

	return g.Wait()
}
