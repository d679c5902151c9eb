package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	bk "github.com/hanksha/court-booking-backend/booking"
	"github.com/hanksha/court-booking-backend/schedule"
)

type AvailabilityHandler struct {
	service BookingService
}

func NewAvailabilityHandler(service BookingService) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

func (h *AvailabilityHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/availability", h.GetAvailability)
	rg.GET("/quote", h.GetQuote)
}

// GetAvailability serves ?date=YYYY-MM-DD[&start=HH:MM&(end=HH:MM|duration=2)][&courts=1,2].
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")

	if len(date) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date cannot be empty"})
		return
	}

	courtIDs, ok := parseCourtIDs(c)
	if !ok {
		return
	}

	var window *bk.WindowRequest

	if start := c.Query("start"); len(start) != 0 {
		end := c.Query("end")

		if duration := c.Query("duration"); len(end) == 0 && len(duration) != 0 {
			computed, err := schedule.EndTime(start, duration)
			if err != nil {
				c.Error(err)
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			end = computed
		}

		if len(end) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end or duration is required with start"})
			return
		}

		window = &bk.WindowRequest{Start: start, End: end}
	}

	availability, err := h.service.ComputeAvailability(c.Request.Context(), date, window, courtIDs)

	if err != nil {
		respondError(c, err, "failed to compute availability")
		return
	}

	c.IndentedJSON(http.StatusOK, availability)
}

// GetQuote serves ?courts=1,2&duration=2 hours.
func (h *AvailabilityHandler) GetQuote(c *gin.Context) {
	courtIDs, ok := parseCourtIDs(c)
	if !ok {
		return
	}

	hours, err := schedule.ParseDuration(c.Query("duration"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.service.QuotePrice(c.Request.Context(), courtIDs, hours)

	if err != nil {
		respondError(c, err, "failed to compute price")
		return
	}

	c.IndentedJSON(http.StatusOK, quote)
}

func parseCourtIDs(c *gin.Context) ([]int64, bool) {
	raw := strings.TrimSpace(c.Query("courts"))

	if len(raw) == 0 {
		return nil, true
	}

	var ids []int64

	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)

		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "courts must be a comma separated list of court ids"})
			return nil, false
		}

		ids = append(ids, id)
	}

	return ids, true
}
