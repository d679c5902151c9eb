package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	bk "github.com/hanksha/court-booking-backend/booking"
	"github.com/hanksha/court-booking-backend/court"
	"github.com/hanksha/court-booking-backend/database"
)

// respondError maps domain errors onto HTTP responses; anything unknown is
// reported as fallback with a 500.
func respondError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	var conflict *bk.ConflictError

	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":    "slot no longer available",
			"courtIds": conflict.CourtIDs,
		})
	case errors.Is(err, bk.ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "slot no longer available"})
	case errors.Is(err, bk.ErrValidation), errors.Is(err, court.ErrInvalidCourt):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, bk.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, court.ErrCourtNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
	case errors.Is(err, bk.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to perform this operation"})
	case errors.Is(err, bk.ErrInvalidBookingState):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking state"})
	case errors.Is(err, database.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)

	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}

	return id, true
}
