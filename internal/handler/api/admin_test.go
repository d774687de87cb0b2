//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-management-system/internal/handler/api"
	"hotel-management-system/internal/usecase/commands"
	"hotel-management-system/internal/usecase/queries"
	"hotel-management-system/tests/common/builder"
	"hotel-management-system/tests/common/httptest"
	"hotel-management-system/tests/common/testutil"
	commandsmock "hotel-management-system/tests/mock/commands"
	queriesmock "hotel-management-system/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockBookings *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	mockRevenue  *queriesmock.MockRevenueQueries
	handler      *api.AdminHandler
	staffID      uuid.UUID
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockRevenue = queriesmock.NewMockRevenueQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockBookings, s.mockQueries, s.mockRevenue)
	s.staffID = uuid.New()

	authMiddleware := newAuthStub(s.staffID, true)

	s.router.GET("/admin/bookings", authMiddleware, s.handler.SearchBookings)
	s.router.PUT("/admin/bookings/:id", authMiddleware, s.handler.UpdateBooking)
	s.router.DELETE("/admin/bookings/:id", authMiddleware, s.handler.DeleteBooking)
	s.router.GET("/admin/revenue", authMiddleware, s.handler.Revenue)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// ================================================================================
// TestUpdateBooking
// ================================================================================

func (s *AdminHandlerTestSuite) TestUpdateBooking() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String()
	reqBody := builder.NewBookingBuilder().BuildUpdateRequestDTO()

	s.Run("success: returns 204 No Content", func() {
		s.mockBookings.EXPECT().
			Update(gomock.Any(), commands.Actor{GuestID: s.staffID, Staff: true}, bookingID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: partial update with dates only", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("room_id", nil))

		s.mockBookings.EXPECT().
			Update(gomock.Any(), gomock.Any(), bookingID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on malformed date", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("check_in", "June 5th"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{"booking not found", commands.ErrNotFound, http.StatusNotFound},
			{"target room already booked", commands.ErrRoomConflict, http.StatusConflict},
			{"booking already finalized", commands.ErrBookingFinalized, http.StatusConflict},
			{"reversed range", commands.ErrInvalidRange, http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBookings.EXPECT().
					Update(gomock.Any(), gomock.Any(), bookingID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestDeleteBooking
// ================================================================================

func (s *AdminHandlerTestSuite) TestDeleteBooking() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockBookings.EXPECT().
			Delete(gomock.Any(), commands.Actor{GuestID: s.staffID, Staff: true}, bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when the booking does not exist", func() {
		s.mockBookings.EXPECT().
			Delete(gomock.Any(), gomock.Any(), bookingID).
			Return(commands.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestSearchBookings
// ================================================================================

func (s *AdminHandlerTestSuite) TestSearchBookings() {
	s.Run("success: passes filters through to the query side", func() {
		views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}
		s.mockQueries.EXPECT().
			SearchAdmin(gomock.Any(), "smith", "confirmed").
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?term=smith&status=confirmed", nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: no filters lists everything", func() {
		s.mockQueries.EXPECT().
			SearchAdmin(gomock.Any(), "", "").
			Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}

// ================================================================================
// TestRevenue
// ================================================================================

func (s *AdminHandlerTestSuite) TestRevenue() {
	s.Run("success: returns totals with the monthly breakdown", func() {
		summary := &queries.RevenueSummary{
			TotalCents:     115000,
			ConfirmedCount: 3,
			Monthly: []queries.MonthlyRevenue{
				{Year: 2026, Month: 5, Cents: 70000},
				{Year: 2026, Month: 6, Cents: 45000},
			},
		}
		s.mockRevenue.EXPECT().Summary(gomock.Any()).
			Return(summary, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/revenue", nil, "bearer-token")

		var body struct {
			TotalCents     int64 `json:"totalCents"`
			ConfirmedCount int64 `json:"confirmedCount"`
			Monthly        []struct {
				Year  int   `json:"year"`
				Month int   `json:"month"`
				Cents int64 `json:"cents"`
			} `json:"monthly"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(115000), body.TotalCents)
		s.Equal(int64(3), body.ConfirmedCount)
		s.Require().Len(body.Monthly, 2)
		s.Equal(5, body.Monthly[0].Month)
	})
}
