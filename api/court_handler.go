package api

import (
	"context"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/hanksha/court-booking-backend/court"
)

type CourtService interface {
	ListCourts(ctx context.Context) ([]court.Court, error)
	GetCourtByID(ctx context.Context, id int64) (court.Court, error)
	CreateCourt(ctx context.Context, c court.Court) (court.Court, error)
}

type CourtHandler struct {
	service      CourtService
	createGuards []gin.HandlerFunc
}

// NewCourtHandler creates the court routes. Reads are public; createGuards
// (authentication) run before the admin check on court creation.
func NewCourtHandler(service CourtService, createGuards ...gin.HandlerFunc) *CourtHandler {
	return &CourtHandler{service: service, createGuards: createGuards}
}

func (h *CourtHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.POST("", append(slices.Clone(h.createGuards), AdminOnly(), h.Create)...)
}

func (h *CourtHandler) List(c *gin.Context) {
	if courts, err := h.service.ListCourts(c.Request.Context()); err != nil {
		respondError(c, err, "failed to retrieve courts")
	} else {
		c.IndentedJSON(http.StatusOK, courts)
	}
}

func (h *CourtHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	found, err := h.service.GetCourtByID(c.Request.Context(), id)

	if err != nil {
		respondError(c, err, "failed to fetch court")
		return
	}

	c.IndentedJSON(http.StatusOK, found)
}

func (h *CourtHandler) Create(c *gin.Context) {
	var req court.Court

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	req.ID = 0

	created, err := h.service.CreateCourt(c.Request.Context(), req)

	if err != nil {
		respondError(c, err, "failed to create court")
		return
	}

	c.JSON(http.StatusCreated, created)
}
