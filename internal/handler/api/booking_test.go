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
	commandsmock "hotel-management-system/tests/mock/commands"
	queriesmock "hotel-management-system/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// newAuthStub mimics the token middleware: unauthenticated requests are
// rejected, authenticated ones get the identity planted in the context.
func newAuthStub(guestID uuid.UUID, staff bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("guest_id", guestID)
		c.Set("staff", staff)
		c.Next()
	}
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockReservation *commandsmock.MockReservationCommands
	mockBookings    *commandsmock.MockBookingCommands
	mockQueries     *queriesmock.MockBookingQueries
	handler         *api.BookingHandler
	guestID         uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservation = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockReservation, s.mockBookings, s.mockQueries)
	s.guestID = uuid.New()

	authMiddleware := newAuthStub(s.guestID, false)

	s.router.POST("/bookings/confirm", authMiddleware, s.handler.Confirm)
	s.router.GET("/bookings", authMiddleware, s.handler.GetGuestBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirm() {
	url := "/bookings/confirm"

	s.Run("success: returns 201 Created with committed and skipped rooms", func() {
		b := builder.NewBookingBuilder().WithGuestID(s.guestID)
		result := b.BuildConfirmResult()
		skipped := uuid.New()
		result.SkippedRoomIDs = []uuid.UUID{skipped}

		s.mockReservation.EXPECT().Confirm(gomock.Any(), s.guestID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body struct {
			Committed []struct {
				BookingID  string `json:"bookingId"`
				RoomNumber string `json:"roomNumber"`
				Nights     int    `json:"nights"`
				TotalCents int64  `json:"totalCents"`
			} `json:"committed"`
			SkippedRoomIDs []string `json:"skippedRoomIds"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().Len(body.Committed, 1)
		s.Equal(b.BookingID.String(), body.Committed[0].BookingID)
		s.Equal(b.RoomNumber, body.Committed[0].RoomNumber)
		s.Equal(5, body.Committed[0].Nights)
		s.Equal(int64(45000), body.Committed[0].TotalCents)
		s.Equal([]string{skipped.String()}, body.SkippedRoomIDs)
	})

	s.Run("success: all rooms skipped still returns 201", func() {
		result := &commands.ConfirmResult{
			Committed:      []commands.ConfirmedBooking{},
			SkippedRoomIDs: []uuid.UUID{uuid.New()},
		}
		s.mockReservation.EXPECT().Confirm(gomock.Any(), s.guestID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Empty(body["committed"])
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{"empty cart", commands.ErrEmptyCart, http.StatusBadRequest},
			{"invalid range", commands.ErrInvalidRange, http.StatusBadRequest},
			{"unknown guest", commands.ErrNotFound, http.StatusNotFound},
			{"commit failed after retry", commands.ErrCommitFailed, http.StatusConflict},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockReservation.EXPECT().Confirm(gomock.Any(), s.guestID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: returns 204 No Content", func() {
		s.mockBookings.EXPECT().
			Cancel(gomock.Any(), commands.Actor{GuestID: s.guestID}, bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{"booking not found", commands.ErrNotFound, http.StatusNotFound},
			{"another guest's booking", commands.ErrForbidden, http.StatusForbidden},
			{"already cancelled or completed", commands.ErrBookingFinalized, http.StatusConflict},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBookings.EXPECT().
					Cancel(gomock.Any(), gomock.Any(), bookingID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: returns the booking view", func() {
		view := builder.NewBookingBuilder().WithGuestID(s.guestID).BuildView()

		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.guestID, false, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body["id"])
		s.Equal(view.RoomNumber, body["roomNumber"])
	})

	s.Run("error: 404 when the booking does not exist", func() {
		bookingID := uuid.New()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.guestID, false, bookingID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 when the booking belongs to another guest", func() {
		bookingID := uuid.New()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.guestID, false, bookingID).
			Return(nil, queries.ErrNotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

// ================================================================================
// TestGetGuestBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetGuestBookings() {
	url := "/bookings"

	s.Run("success: lists the guest's bookings", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().WithGuestID(s.guestID).BuildView(),
			builder.NewBookingBuilder().WithGuestID(s.guestID).WithRoomNumber("204").BuildView(),
		}
		s.mockQueries.EXPECT().ListByGuest(gomock.Any(), s.guestID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: no bookings yields an empty array", func() {
		s.mockQueries.EXPECT().ListByGuest(gomock.Any(), s.guestID).
			Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
