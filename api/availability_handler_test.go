package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/court-booking-backend/api"
	mock_api "github.com/hanksha/court-booking-backend/api/mocks"
	bk "github.com/hanksha/court-booking-backend/booking"
	"github.com/hanksha/court-booking-backend/court"
	"github.com/hanksha/court-booking-backend/pricing"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAvailabilityRouter(t *testing.T) (*gin.Engine, *mock_api.MockBookingService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockBookingService(ctrl)
	api.NewAvailabilityHandler(mockService).Register(router.Group("/api/v1"))

	return router, mockService
}

func TestGetAvailability(t *testing.T) {
	free := true
	availability := bk.Availability{
		Date:   "2026-03-11",
		Window: &bk.WindowRequest{Start: "10:00", End: "12:00"},
		Slots:  []string{"10:00", "11:00"},
		Courts: []bk.CourtAvailability{{
			Court:         court.Court{ID: 1, Name: "Court A", Type: "Rubber", HourlyRate: 50},
			FreeSlots:     []string{"10:00", "11:00"},
			FreeForWindow: &free,
		}},
	}

	t.Run("whole day", func(t *testing.T) {
		router, mockService := setupAvailabilityRouter(t)

		day := bk.Availability{Date: "2026-03-11", Slots: []string{}, Courts: []bk.CourtAvailability{}}
		aJson, _ := json.Marshal(day)
		mockService.EXPECT().ComputeAvailability(gomock.Any(), "2026-03-11", (*bk.WindowRequest)(nil), []int64(nil)).
			Return(day, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/availability?date=2026-03-11", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(aJson), w.Body.String())
	})

	t.Run("window from duration", func(t *testing.T) {
		router, mockService := setupAvailabilityRouter(t)

		aJson, _ := json.Marshal(availability)
		mockService.EXPECT().ComputeAvailability(gomock.Any(), "2026-03-11", &bk.WindowRequest{Start: "10:00", End: "12:00"}, []int64{1, 2}).
			Return(availability, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/availability?date=2026-03-11&start=10:00&duration=2&courts=1,2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(aJson), w.Body.String())
	})

	t.Run("explicit end", func(t *testing.T) {
		router, mockService := setupAvailabilityRouter(t)

		mockService.EXPECT().ComputeAvailability(gomock.Any(), "2026-03-11", &bk.WindowRequest{Start: "10:00", End: "12:00"}, []int64(nil)).
			Return(availability, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/availability?date=2026-03-11&start=10:00&end=12:00", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("start without end", func(t *testing.T) {
		router, _ := setupAvailabilityRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/availability?date=2026-03-11&start=10:00", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"end or duration is required with start"}`, w.Body.String())
	})

	t.Run("bad courts", func(t *testing.T) {
		router, _ := setupAvailabilityRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/availability?date=2026-03-11&courts=1,x", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"courts must be a comma separated list of court ids"}`, w.Body.String())
	})

	t.Run("missing date", func(t *testing.T) {
		router, _ := setupAvailabilityRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/availability", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"date cannot be empty"}`, w.Body.String())
	})
}

func TestGetQuote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, mockService := setupAvailabilityRouter(t)

		quote := pricing.Quote{
			Hours: 2,
			PerCourt: []pricing.CourtPrice{
				{CourtID: 1, Name: "Court A", Price: 100},
				{CourtID: 5, Name: "Court E", Price: 60},
			},
			Total: 160,
		}
		qJson, _ := json.Marshal(quote)
		mockService.EXPECT().QuotePrice(gomock.Any(), []int64{1, 5}, 2).Return(quote, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/quote?courts=1,5&duration=2+hours", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(qJson), w.Body.String())
	})

	t.Run("bad duration", func(t *testing.T) {
		router, mockService := setupAvailabilityRouter(t)

		mockService.EXPECT().QuotePrice(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/quote?courts=1&duration=soon", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("unknown court", func(t *testing.T) {
		router, mockService := setupAvailabilityRouter(t)

		mockService.EXPECT().QuotePrice(gomock.Any(), []int64{9}, 1).Return(pricing.Quote{}, court.ErrCourtNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/quote?courts=9&duration=1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"court not found"}`, w.Body.String())
	})
}
