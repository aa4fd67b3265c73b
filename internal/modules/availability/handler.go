package availability

import (
	"net/http"

	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/hotels/:id/availability", h.GetHotelAvailability)
	rg.GET("/room-types/:id/availability", h.GetRoomTypeAvailability)
}

func (h *Handler) GetHotelAvailability(c *gin.Context) {
	checkIn, err := ParseDate(c.Query("check_in"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in must be a YYYY-MM-DD date")
		return
	}
	checkOut, err := ParseDate(c.Query("check_out"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be a YYYY-MM-DD date")
		return
	}

	results, err := h.service.ComputeAvailability(c.Request.Context(), c.Param("id"), checkIn, checkOut)
	if err != nil {
		// "could not determine availability" is not the same as sold out
		response.Error(c, http.StatusServiceUnavailable, "AVAILABILITY_UNKNOWN", "Could not determine availability, try again")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room_types": results})
}

func (h *Handler) GetRoomTypeAvailability(c *gin.Context) {
	checkIn, err := ParseDate(c.Query("check_in"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in must be a YYYY-MM-DD date")
		return
	}
	checkOut, err := ParseDate(c.Query("check_out"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be a YYYY-MM-DD date")
		return
	}

	res, err := h.service.CheckRoomType(c.Request.Context(), c.Param("id"), checkIn, checkOut)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "AVAILABILITY_UNKNOWN", "Could not determine availability, try again")
		return
	}

	response.Success(c, http.StatusOK, res)
}
