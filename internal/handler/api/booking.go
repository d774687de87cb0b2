package api

import (
	"errors"
	"net/http"

	resdto "hotel-management-system/internal/handler/dto/response"
	"hotel-management-system/internal/handler/middleware"
	"hotel-management-system/internal/usecase/commands"
	"hotel-management-system/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	reservationCommands commands.ReservationCommands
	bookingCommands     commands.BookingCommands
	bookingQueries      queries.BookingQueries
}

func NewBookingHandler(
	reservationCommands commands.ReservationCommands,
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
) *BookingHandler {
	return &BookingHandler{
		reservationCommands: reservationCommands,
		bookingCommands:     bookingCommands,
		bookingQueries:      bookingQueries,
	}
}

// @Summary Confirm cart
// @Description Convert staged cart entries into confirmed bookings; rooms lost to a race are reported as skipped
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.ConfirmResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.reservationCommands.Confirm(c.Request.Context(), guestID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, commands.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid stay range",
			})
		case errors.Is(err, commands.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		case errors.Is(err, commands.ErrCommitFailed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Commit failed after retry, please try again",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromConfirmResult(result))
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking; guests may cancel only their own
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.Cancel(c.Request.Context(), actor, bookingID); err != nil {
		respondBookingCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get booking
// @Description Get a booking by ID; guests see only their own
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), actor.GuestID, actor.Staff, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, queries.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another guest",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get guest bookings
// @Description List all bookings of the current guest
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetGuestBookings(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingQueries.ListByGuest(c.Request.Context(), guestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromBookingView(rm)
	}

	c.JSON(http.StatusOK, response)
}

func respondBookingCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, commands.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not allowed to manage this booking",
		})
	case errors.Is(err, commands.ErrBookingFinalized):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking is already cancelled or completed",
		})
	case errors.Is(err, commands.ErrRoomConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room already booked for an overlapping stay",
		})
	case errors.Is(err, commands.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid stay range",
		})
	case errors.Is(err, commands.ErrCommitFailed):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Commit failed after retry, please try again",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
