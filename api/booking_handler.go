package api

import (
	"context"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	bk "github.com/hanksha/court-booking-backend/booking"
	"github.com/hanksha/court-booking-backend/court"
	"github.com/hanksha/court-booking-backend/pricing"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req bk.CreateRequest) (bk.Booking, error)
	ConfirmBooking(ctx context.Context, id int64) (bk.Booking, error)
	CancelBooking(ctx context.Context, id, userID int64) error
	FindBookingByID(ctx context.Context, id int64) (bk.Booking, error)
	FindBookingsByDate(ctx context.Context, date string) ([]bk.Booking, error)
	FindBookingsByUser(ctx context.Context, userID int64) ([]bk.Booking, error)
	FindCourtsForBooking(ctx context.Context, id int64) ([]court.Court, error)
	ListUpcoming(ctx context.Context, userID int64) ([]bk.Booking, error)
	ListPast(ctx context.Context, userID int64) ([]bk.Booking, error)
	ComputeAvailability(ctx context.Context, date string, window *bk.WindowRequest, courtIDs []int64) (bk.Availability, error)
	QuotePrice(ctx context.Context, courtIDs []int64, hours int) (pricing.Quote, error)
}

type BookingHandler struct {
	service      BookingService
	createGuards []gin.HandlerFunc
}

// NewBookingHandler creates the booking routes; createGuards run before
// booking creation only (rate limiting).
func NewBookingHandler(service BookingService, createGuards ...gin.HandlerFunc) *BookingHandler {
	return &BookingHandler{service: service, createGuards: createGuards}
}

// Register expects a group authenticated with RequireUser.
func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.ListByDate)
	rg.GET("/booking/:id", h.GetByID)
	rg.GET("/booking/:id/courts", h.GetCourts)
	rg.POST("", append(slices.Clone(h.createGuards), h.Create)...)
	rg.PUT("/:id/confirm", AdminOnly(), h.Confirm)
	rg.PUT("/:id/cancel", h.Cancel)
}

// RegisterUserRoutes exposes a user's bookings under /users. The group must
// be authenticated with RequireUser; only the user or an admin may read them.
func (h *BookingHandler) RegisterUserRoutes(rg *gin.RouterGroup) {
	rg.GET("/:userId/bookings", h.GetByUser)
}

type createBookingRequest struct {
	Date       string   `json:"date" binding:"required"`
	StartTime  string   `json:"startTime" binding:"required"`
	Duration   string   `json:"duration" binding:"required"`
	CourtIDs   []int64  `json:"courtIds" binding:"required"`
	TotalPrice *float64 `json:"totalPrice"`
}

func (h *BookingHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")

	if len(date) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date cannot be empty"})
		return
	}

	if bookings, err := h.service.FindBookingsByDate(c.Request.Context(), date); err != nil {
		respondError(c, err, "failed to retrieve bookings")
	} else {
		c.IndentedJSON(http.StatusOK, bookings)
	}
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := h.service.FindBookingByID(c.Request.Context(), id)

	if err != nil {
		respondError(c, err, "failed to fetch booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) GetCourts(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	courts, err := h.service.FindCourtsForBooking(c.Request.Context(), id)

	if err != nil {
		respondError(c, err, "failed to fetch booking courts")
		return
	}

	c.IndentedJSON(http.StatusOK, courts)
}

func (h *BookingHandler) GetByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if userID != currentUser(c) && !isAdmin(c) {
		respondError(c, bk.ErrNotAllowed, "failed to get bookings")
		return
	}

	var (
		bookings []bk.Booking
		err      error
	)

	switch scope := c.DefaultQuery("scope", "all"); scope {
	case "all":
		bookings, err = h.service.FindBookingsByUser(c.Request.Context(), userID)
	case "upcoming":
		bookings, err = h.service.ListUpcoming(c.Request.Context(), userID)
	case "past":
		bookings, err = h.service.ListPast(c.Request.Context(), userID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "scope must be one of all, upcoming, past"})
		return
	}

	if err != nil {
		respondError(c, err, "failed to get bookings")
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	inserted, err := h.service.CreateBooking(c.Request.Context(), bk.CreateRequest{
		UserID:        currentUser(c),
		Date:          req.Date,
		StartTime:     req.StartTime,
		Duration:      req.Duration,
		CourtIDs:      req.CourtIDs,
		ExpectedTotal: req.TotalPrice,
	})

	if err != nil {
		respondError(c, err, "failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := h.service.ConfirmBooking(c.Request.Context(), id)

	if err != nil {
		respondError(c, err, "failed to confirm booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.CancelBooking(c.Request.Context(), id, currentUser(c)); err != nil {
		respondError(c, err, "failed to cancel booking")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}
