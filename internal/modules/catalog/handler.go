package catalog

import (
	"net/http"
	"strconv"
	"time"

	"hotelbooking/internal/modules/availability"
	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes registers the customer-facing search and detail
// endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/hotels", h.SearchHotels)
	rg.GET("/hotels/:id", h.GetHotelDetail)
}

// RegisterOwnerRoutes registers the hotel management endpoints.
func (h *Handler) RegisterOwnerRoutes(rg *gin.RouterGroup) {
	rg.POST("/hotels", h.CreateHotel)
	rg.GET("/hotels/my", h.GetMyHotels)
	rg.PATCH("/hotels/:id", h.UpdateHotel)
	rg.DELETE("/hotels/:id", h.DeleteHotel)
	rg.POST("/hotels/:id/room-types", h.CreateRoomType)
	rg.PATCH("/room-types/:id", h.UpdateRoomType)
	rg.DELETE("/room-types/:id", h.DeleteRoomType)
}

// parseOptionalRange reads check_in/check_out query params; both absent is
// fine, one without the other or malformed dates is not.
func parseOptionalRange(c *gin.Context) (*time.Time, *time.Time, bool) {
	inStr, outStr := c.Query("check_in"), c.Query("check_out")
	if inStr == "" && outStr == "" {
		return nil, nil, true
	}

	checkIn, err := availability.ParseDate(inStr)
	if err != nil {
		return nil, nil, false
	}
	checkOut, err := availability.ParseDate(outStr)
	if err != nil {
		return nil, nil, false
	}
	return &checkIn, &checkOut, true
}

func (h *Handler) SearchHotels(c *gin.Context) {
	checkIn, checkOut, ok := parseOptionalRange(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in and check_out must both be YYYY-MM-DD dates")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	hotels, err := h.service.SearchHotels(c.Request.Context(), c.Query("city"), c.Query("q"), limit, offset, checkIn, checkOut)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search hotels")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) GetHotelDetail(c *gin.Context) {
	checkIn, checkOut, ok := parseOptionalRange(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in and check_out must both be YYYY-MM-DD dates")
		return
	}

	detail, err := h.service.GetHotelDetail(c.Request.Context(), c.Param("id"), checkIn, checkOut)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
		default:
			response.Error(c, http.StatusServiceUnavailable, "AVAILABILITY_UNKNOWN", "Could not determine availability, try again")
		}
		return
	}

	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) CreateHotel(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	hotel, err := h.service.CreateHotel(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create hotel")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"hotel": hotel})
}

func (h *Handler) GetMyHotels(c *gin.Context) {
	hotels, err := h.service.GetHotelsByOwner(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load hotels")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) UpdateHotel(c *gin.Context) {
	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	hotel, err := h.service.UpdateHotel(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotel": hotel})
}

func (h *Handler) DeleteHotel(c *gin.Context) {
	if err := h.service.DeleteHotel(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) CreateRoomType(c *gin.Context) {
	var req CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rt, err := h.service.CreateRoomType(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room_type": rt})
}

func (h *Handler) UpdateRoomType(c *gin.Context) {
	var req UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rt, err := h.service.UpdateRoomType(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_type": rt})
}

func (h *Handler) DeleteRoomType(c *gin.Context) {
	if err := h.service.DeleteRoomType(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this resource")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field values")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
