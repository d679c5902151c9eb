package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/court-booking-backend/api"
	mock_api "github.com/hanksha/court-booking-backend/api/mocks"
	bk "github.com/hanksha/court-booking-backend/booking"
	"github.com/hanksha/court-booking-backend/court"
	"github.com/hanksha/court-booking-backend/database"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(t *testing.T, createGuards ...gin.HandlerFunc) (*gin.Engine, *gomock.Controller, *mock_api.MockBookingService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockBookingService(ctrl)
	handler := api.NewBookingHandler(mockService, createGuards...)

	requireUser := api.RequireUser(adminID)

	bookings := router.Group("/api/v1/bookings")
	bookings.Use(requireUser)
	handler.Register(bookings)

	users := router.Group("/api/v1/users")
	users.Use(requireUser)
	handler.RegisterUserRoutes(users)

	return router, ctrl, mockService
}

const adminID int64 = 1

func asUser(req *http.Request, userID int64) *http.Request {
	req.Header.Set("X-User-ID", strconv.FormatInt(userID, 10))
	return req
}

func newRequest(method, url string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("X-User-ID", "42")
	return req
}

var sampleBooking = bk.Booking{
	ID:         7,
	UserID:     42,
	Date:       "2026-03-11",
	StartTime:  "10:00",
	EndTime:    "12:00",
	TotalPrice: 200,
	Status:     bk.StatusPending,
	CourtIDs:   []int64{1, 2},
}

var createBody = map[string]any{
	"date":      "2026-03-11",
	"startTime": "10:00",
	"duration":  "2 hours",
	"courtIds":  []int64{1, 2},
}

func TestCreateBooking(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		expected := bk.CreateRequest{
			UserID:    42,
			Date:      "2026-03-11",
			StartTime: "10:00",
			Duration:  "2 hours",
			CourtIDs:  []int64{1, 2},
		}
		bJson, _ := json.Marshal(sampleBooking)
		mockService.EXPECT().CreateBooking(gomock.Any(), expected).Return(sampleBooking, nil).Times(1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("POST", "/api/v1/bookings", createBody))

		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, string(bJson), w.Body.String())
	})

	t.Run("missing user", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		req := newRequest("POST", "/api/v1/bookings", createBody)
		req.Header.Del("X-User-ID")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"missing user id"}`, w.Body.String())
	})

	t.Run("invalid body", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("POST", "/api/v1/bookings", map[string]any{"date": "2026-03-11"}))

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
	})

	t.Run("conflict", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(bk.Booking{}, &bk.ConflictError{Date: "2026-03-11", CourtIDs: []int64{2}}).Times(1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("POST", "/api/v1/bookings", createBody))

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"slot no longer available","courtIds":[2]}`, w.Body.String())
	})

	t.Run("validation", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		err := fmt.Errorf("%w: %w", bk.ErrValidation, bk.ErrSlotInPast)
		mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(bk.Booking{}, err).Times(1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("POST", "/api/v1/bookings", createBody))

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, err.Error()), w.Body.String())
	})

	t.Run("store unavailable", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(bk.Booking{}, database.Unavailable(errors.New("timeout"))).Times(1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("POST", "/api/v1/bookings", createBody))

		assert.Equal(t, 503, w.Code)
		assert.JSONEq(t, `{"error":"service temporarily unavailable"}`, w.Body.String())
	})

	t.Run("unexpected error", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(bk.Booking{}, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("POST", "/api/v1/bookings", createBody))

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to create booking"}`, w.Body.String())
	})
}

func TestGetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		bJson, _ := json.MarshalIndent(sampleBooking, "", "    ")
		mockService.EXPECT().FindBookingByID(gomock.Any(), int64(7)).Return(sampleBooking, nil).Times(1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("GET", "/api/v1/bookings/booking/7", nil))

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(bJson), w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), int64(7)).Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("GET", "/api/v1/bookings/booking/7", nil))

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"booking not found"}`, w.Body.String())
	})

	t.Run("bad id", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("GET", "/api/v1/bookings/booking/abc", nil))

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"invalid id"}`, w.Body.String())
	})
}

func TestGetCourts(t *testing.T) {
	router, ctrl, mockService := setupRouter(t)
	defer ctrl.Finish()

	courts := []court.Court{{ID: 1, Name: "Court A", Type: "Rubber", HourlyRate: 50}}
	cJson, _ := json.Marshal(courts)
	mockService.EXPECT().FindCourtsForBooking(gomock.Any(), int64(7)).Return(courts, nil).Times(1)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newRequest("GET", "/api/v1/bookings/booking/7/courts", nil))

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, string(cJson), w.Body.String())
}

func TestListByDate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		bJson, _ := json.Marshal([]bk.Booking{sampleBooking})
		mockService.EXPECT().FindBookingsByDate(gomock.Any(), "2026-03-11").Return([]bk.Booking{sampleBooking}, nil).Times(1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("GET", "/api/v1/bookings?date=2026-03-11", nil))

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(bJson), w.Body.String())
	})

	t.Run("missing date", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("GET", "/api/v1/bookings", nil))

		assert.Equal(t, 400, w.Code)
	})
}

func TestConfirm(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		confirmed := sampleBooking
		confirmed.Status = bk.StatusConfirmed
		bJson, _ := json.Marshal(confirmed)
		mockService.EXPECT().ConfirmBooking(gomock.Any(), int64(7)).Return(confirmed, nil).Times(1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, asUser(newRequest("PUT", "/api/v1/bookings/7/confirm", nil), adminID))

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(bJson), w.Body.String())
	})

	t.Run("invalid state", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().ConfirmBooking(gomock.Any(), int64(7)).Return(bk.Booking{}, bk.ErrInvalidBookingState).Times(1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, asUser(newRequest("PUT", "/api/v1/bookings/7/confirm", nil), adminID))

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"invalid booking state"}`, w.Body.String())
	})
}

func TestConfirmAdminOnly(t *testing.T) {
	t.Run("regular user", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().ConfirmBooking(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("PUT", "/api/v1/bookings/7/confirm", nil))

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"not allowed"}`, w.Body.String())
	})

	t.Run("anonymous", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().ConfirmBooking(gomock.Any(), gomock.Any()).Times(0)

		req := newRequest("PUT", "/api/v1/bookings/7/confirm", nil)
		req.Header.Del("X-User-ID")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
	})
}

func TestCancel(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().CancelBooking(gomock.Any(), int64(7), int64(42)).Return(nil).Times(1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("PUT", "/api/v1/bookings/7/cancel", nil))

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"booking cancelled"}`, w.Body.String())
	})

	t.Run("not allowed", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().CancelBooking(gomock.Any(), int64(7), int64(42)).Return(bk.ErrNotAllowed).Times(1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("PUT", "/api/v1/bookings/7/cancel", nil))

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"not allowed to perform this operation"}`, w.Body.String())
	})
}

func TestGetByUser(t *testing.T) {
	bookings := []bk.Booking{sampleBooking}
	bJson, _ := json.Marshal(bookings)

	t.Run("all", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingsByUser(gomock.Any(), int64(42)).Return(bookings, nil).Times(1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("GET", "/api/v1/users/42/bookings", nil))

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(bJson), w.Body.String())
	})

	t.Run("upcoming", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().ListUpcoming(gomock.Any(), int64(42)).Return(bookings, nil).Times(1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("GET", "/api/v1/users/42/bookings?scope=upcoming", nil))

		assert.Equal(t, 200, w.Code)
	})

	t.Run("past", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().ListPast(gomock.Any(), int64(42)).Return([]bk.Booking{}, nil).Times(1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("GET", "/api/v1/users/42/bookings?scope=past", nil))

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("other user", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingsByUser(gomock.Any(), gomock.Any()).Times(0)
		mockService.EXPECT().ListUpcoming(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("GET", "/api/v1/users/7/bookings?scope=upcoming", nil))

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"not allowed to perform this operation"}`, w.Body.String())
	})

	t.Run("anonymous", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingsByUser(gomock.Any(), gomock.Any()).Times(0)

		req := newRequest("GET", "/api/v1/users/42/bookings", nil)
		req.Header.Del("X-User-ID")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"missing user id"}`, w.Body.String())
	})

	t.Run("admin reads any user", func(t *testing.T) {
		router, ctrl, mockService := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingsByUser(gomock.Any(), int64(42)).Return(bookings, nil).Times(1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, asUser(newRequest("GET", "/api/v1/users/42/bookings", nil), adminID))

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(bJson), w.Body.String())
	})

	t.Run("unknown scope", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest("GET", "/api/v1/users/42/bookings?scope=soon", nil))

		assert.Equal(t, 400, w.Code)
	})
}

func TestCreateRateLimited(t *testing.T) {
	store, closeStore, err := api.NewLimiterStore(t.Context(), "")
	assert.NoError(t, err)
	defer closeStore()

	limit, err := api.NewRateLimiter("1-M", store)
	assert.NoError(t, err)

	router, ctrl, mockService := setupRouter(t, limit)
	defer ctrl.Finish()

	mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(sampleBooking, nil).Times(1)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newRequest("POST", "/api/v1/bookings", createBody))
	assert.Equal(t, 201, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, newRequest("POST", "/api/v1/bookings", createBody))
	assert.Equal(t, 429, w.Code)

	_, err = api.NewRateLimiter("lots", store)
	assert.Error(t, err)
}
