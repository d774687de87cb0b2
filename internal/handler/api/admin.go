package api

import (
	"net/http"

	reqdto "hotel-management-system/internal/handler/dto/request"
	resdto "hotel-management-system/internal/handler/dto/response"
	"hotel-management-system/internal/handler/middleware"
	"hotel-management-system/internal/usecase/commands"
	"hotel-management-system/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves the staff screens: booking management across all
// guests plus the revenue summary.
type AdminHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	revenueQueries  queries.RevenueQueries
}

func NewAdminHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	revenueQueries queries.RevenueQueries,
) *AdminHandler {
	return &AdminHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		revenueQueries:  revenueQueries,
	}
}

// @Summary Update booking
// @Description Edit a booking's dates and/or move it to another room
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Fields to change"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id} [put]
func (h *AdminHandler) UpdateBooking(c *gin.Context) {
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

	var req reqdto.UpdateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Dates must be formatted YYYY-MM-DD",
		})
		return
	}

	if err := h.bookingCommands.Update(c.Request.Context(), actor, bookingID, params); err != nil {
		respondBookingCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete booking
// @Description Remove a booking and its receipt entirely
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id} [delete]
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
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

	if err := h.bookingCommands.Delete(c.Request.Context(), actor, bookingID); err != nil {
		respondBookingCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Search bookings
// @Description List bookings across all guests, filtered by guest name / room number and status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param term query string false "Guest name or room number substring"
// @Param status query string false "Booking status filter"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminHandler) SearchBookings(c *gin.Context) {
	views, err := h.bookingQueries.SearchAdmin(c.Request.Context(), c.Query("term"), c.Query("status"))
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

// @Summary Revenue summary
// @Description Total receipts with a per-month breakdown
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RevenueSummaryResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/revenue [get]
func (h *AdminHandler) Revenue(c *gin.Context) {
	summary, err := h.revenueQueries.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRevenueSummary(summary))
}
