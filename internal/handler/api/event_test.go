//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"seat-reservation/internal/domain/auth"
	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/handler/api"
	resdto "seat-reservation/internal/handler/dto/response"
	"seat-reservation/internal/usecase/queries"
	"seat-reservation/tests/common/httptest"
	queriesmock "seat-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReadHandlersTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockBookingQueries
}

func (s *ReadHandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)

	asAdmin := func(c *gin.Context) {
		c.Set("user_id", uuid.New())
		c.Set("user_role", auth.RoleAdmin)
		c.Next()
	}

	events := api.NewEventHandler(s.mockQueries)
	admin := api.NewAdminHandler(s.mockQueries)
	s.router.GET("/events/:id/seats", events.ListSeats)
	s.router.GET("/admin/bookings", asAdmin, admin.ListBookings)
	s.router.GET("/admin/bookings/:id", asAdmin, admin.GetBooking)
}

func (s *ReadHandlersTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReadHandlersSuite(t *testing.T) {
	suite.Run(t, new(ReadHandlersTestSuite))
}

func (s *ReadHandlersTestSuite) TestListSeats() {
	eventID := uuid.New()
	url := "/events/" + eventID.String() + "/seats"

	s.Run("success: returns seats with summary", func() {
		seatMap := &queries.EventSeatMap{
			Event: queries.EventView{ID: eventID, Title: "Hamlet", TheaterName: "Globe"},
			Seats: []queries.EventSeatView{
				{ShowSeatID: uuid.New(), SeatID: uuid.New(), Label: "A1", Category: "standard", Price: decimal.RequireFromString("12.50"), Status: "available"},
				{ShowSeatID: uuid.New(), SeatID: uuid.New(), Label: "A2", Category: "standard", Price: decimal.RequireFromString("12.50"), Status: "locked"},
			},
			Summary: map[string]int{"available": 1, "locked": 1, "booked": 0},
		}
		s.mockQueries.EXPECT().ListEventSeats(gomock.Any(), eventID).Return(seatMap, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.EventSeatMapResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(eventID, body.Event.ID)
		s.Require().Len(body.Seats, 2)
		s.Equal("A1", body.Seats[0].Label)
		s.Equal("locked", body.Seats[1].Status)
		s.Equal(map[string]int{"available": 1, "locked": 1, "booked": 0}, body.Summary)
	})

	s.Run("error: 404 for an unknown event", func() {
		s.mockQueries.EXPECT().ListEventSeats(gomock.Any(), eventID).Return(nil, booking.ErrEventNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})

	s.Run("error: 400 on malformed event id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/abc/seats", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ReadHandlersTestSuite) TestAdminListBookings() {
	createdAt := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
	views := []queries.BookingView{
		{ID: uuid.New(), UserID: uuid.New(), Status: "pending", TotalAmount: decimal.RequireFromString("10"), CreatedAt: createdAt},
		{ID: uuid.New(), UserID: uuid.New(), Status: "confirmed", TotalAmount: decimal.RequireFromString("20"), CreatedAt: createdAt.Add(-time.Minute)},
	}

	s.Run("success: passes limit and cursor through", func() {
		page := &queries.BookingPage{Items: views, NextCursor: &queries.Cursor{After: "next-page"}}
		s.mockQueries.EXPECT().ListAllBookings(gomock.Any(), 2, "prev-page").Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?limit=2&after=prev-page", nil, "")

		var body resdto.BookingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 2)
		s.Equal(views[0].ID, body.Items[0].ID)
		s.Require().NotNil(body.NextCursor)
		s.Equal("next-page", *body.NextCursor)
	})

	s.Run("success: last page has no cursor", func() {
		page := &queries.BookingPage{Items: views[:1]}
		s.mockQueries.EXPECT().ListAllBookings(gomock.Any(), 0, "").Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, "")

		var body resdto.BookingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Nil(body.NextCursor)
	})

	s.Run("error: 400 on out-of-range limit", func() {
		for _, q := range []string{"limit=201", "limit=-1", "limit=abc"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?"+q, nil, "")
			s.Equal(http.StatusBadRequest, rec.Code, q)
		}
	})

	s.Run("error: 400 on a malformed cursor", func() {
		s.mockQueries.EXPECT().ListAllBookings(gomock.Any(), 0, "garbage").
			Return(nil, booking.ErrInvalidArgument).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?after=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_ARGUMENT")
	})
}

func (s *ReadHandlersTestSuite) TestAdminGetBooking() {
	bookingID := uuid.New()

	s.Run("success: returns any user's booking", func() {
		view := &queries.BookingView{ID: bookingID, UserID: uuid.New(), Status: "cancelled"}
		s.mockQueries.EXPECT().GetBookingDetail(gomock.Any(), bookingID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings/"+bookingID.String(), nil, "")

		var body resdto.BookingDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.UserID, body.UserID)
		s.Equal("cancelled", body.Status)
		s.Nil(body.Payment)
	})

	s.Run("error: 404 for an unknown booking", func() {
		s.mockQueries.EXPECT().GetBookingDetail(gomock.Any(), bookingID).Return(nil, booking.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings/"+bookingID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}
