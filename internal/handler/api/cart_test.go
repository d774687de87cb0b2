//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-management-system/internal/domain/cart"
	"hotel-management-system/internal/handler/api"
	"hotel-management-system/internal/usecase/commands"
	"hotel-management-system/tests/common/builder"
	"hotel-management-system/tests/common/httptest"
	"hotel-management-system/tests/common/testutil"
	commandsmock "hotel-management-system/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	handler      *api.CartHandler
	guestID      uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands)
	s.guestID = uuid.New()

	authMiddleware := newAuthStub(s.guestID, false)

	s.router.GET("/cart", authMiddleware, s.handler.Get)
	s.router.DELETE("/cart", authMiddleware, s.handler.Abandon)
	s.router.POST("/cart/rooms", authMiddleware, s.handler.AddRoom)
	s.router.DELETE("/cart/rooms/:id", authMiddleware, s.handler.RemoveRoom)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) stagedCart(roomIDs ...uuid.UUID) *cart.Cart {
	return &cart.Cart{
		RoomIDs:  roomIDs,
		CheckIn:  time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
	}
}

// ================================================================================
// TestAddRoom
// ================================================================================

func (s *CartHandlerTestSuite) TestAddRoom() {
	url := "/cart/rooms"
	reqBody := builder.NewBookingBuilder().BuildAddCartRequestDTO()

	s.Run("success: returns the updated cart", func() {
		s.mockCommands.EXPECT().
			AddRoom(gomock.Any(), s.guestID, reqBody.RoomID, gomock.Any(), gomock.Any()).
			Return(s.stagedCart(reqBody.RoomID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body struct {
			RoomIDs  []string `json:"roomIds"`
			CheckIn  *string  `json:"checkIn"`
			CheckOut *string  `json:"checkOut"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]string{reqBody.RoomID.String()}, body.RoomIDs)
		s.Require().NotNil(body.CheckIn)
		s.Equal("2026-06-05", *body.CheckIn)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: room_id (required)", mutate: testutil.Field("room_id", nil)},
			{name: "missing field: check_in (required)", mutate: testutil.Field("check_in", nil)},
			{name: "missing field: check_out (required)", mutate: testutil.Field("check_out", nil)},
			{name: "malformed date", mutate: testutil.Field("check_in", "06/05/2026")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{"reversed range", commands.ErrInvalidRange, http.StatusBadRequest},
			{"unknown room", commands.ErrNotFound, http.StatusNotFound},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					AddRoom(gomock.Any(), s.guestID, reqBody.RoomID, gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestRemoveRoom
// ================================================================================

func (s *CartHandlerTestSuite) TestRemoveRoom() {
	roomID := uuid.New()

	s.Run("success: returns the cart without the room", func() {
		remaining := uuid.New()
		s.mockCommands.EXPECT().
			RemoveRoom(gomock.Any(), s.guestID, roomID).
			Return(s.stagedCart(remaining), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/rooms/"+roomID.String(), nil, "bearer-token")

		var body struct {
			RoomIDs []string `json:"roomIds"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]string{remaining.String()}, body.RoomIDs)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/rooms/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room ID")
	})
}

// ================================================================================
// TestGet / TestAbandon
// ================================================================================

func (s *CartHandlerTestSuite) TestGet() {
	s.Run("success: empty cart has no stay range", func() {
		s.mockCommands.EXPECT().Get(gomock.Any(), s.guestID).
			Return(cart.New(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "bearer-token")

		var body struct {
			RoomIDs  []string `json:"roomIds"`
			CheckIn  *string  `json:"checkIn"`
			CheckOut *string  `json:"checkOut"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.RoomIDs)
		s.Nil(body.CheckIn)
		s.Nil(body.CheckOut)
	})
}

func (s *CartHandlerTestSuite) TestAbandon() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Abandon(gomock.Any(), s.guestID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
