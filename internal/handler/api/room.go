package api

import (
	"errors"
	"net/http"
	"time"

	resdto "hotel-management-system/internal/handler/dto/response"
	"hotel-management-system/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomQueries queries.RoomQueries
}

func NewRoomHandler(roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomQueries: roomQueries,
	}
}

// @Summary Search available rooms
// @Description List rooms with no confirmed booking overlapping the requested stay
// @Tags rooms
// @Produce json
// @Param check_in query string false "Check-in date (YYYY-MM-DD)"
// @Param check_out query string false "Check-out date (YYYY-MM-DD)"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/search [get]
func (h *RoomHandler) SearchAvailable(c *gin.Context) {
	checkIn, err := dateQueryParam(c, "check_in")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid check_in date format",
		})
		return
	}
	checkOut, err := dateQueryParam(c, "check_out")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid check_out date format",
		})
		return
	}

	views, err := h.roomQueries.SearchAvailable(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidSearchRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out must be after check-in",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.RoomResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromRoomView(rm)
	}

	c.JSON(http.StatusOK, response)
}

func dateQueryParam(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
