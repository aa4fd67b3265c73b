package admin

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/room-types/:id/rates", h.BulkSetRates)
	rg.DELETE("/room-types/:id/rates", h.DeleteRates)
	rg.GET("/room-types/:id/rates", h.GetRates)

	rg.POST("/blocks", h.CreateBlock)
	rg.GET("/hotels/:id/blocks", h.ListBlocks)
	rg.DELETE("/blocks/:id", h.DeleteBlock)

	rg.GET("/hotels/:id/bookings", h.ListHotelBookings)
	rg.PATCH("/bookings/:id/status", h.SetBookingStatus)
	rg.PATCH("/bookings/:id/payment", h.SetPaymentStatus)

	rg.GET("/users", h.ListUsers)
	rg.PATCH("/users/:id/role", h.UpdateUserRole)
	rg.PATCH("/users/:id/active", h.SetUserActive)

	rg.GET("/hotels/:id/reviews", h.ListHotelReviews)
	rg.PATCH("/reviews/:id/hidden", h.SetReviewHidden)
	rg.DELETE("/reviews/:id", h.DeleteReview)

	rg.PUT("/translations", h.UpsertTranslation)
	rg.GET("/translations/:locale", h.ListTranslations)
	rg.DELETE("/translations/:locale/:key", h.DeleteTranslation)
}

func (h *Handler) BulkSetRates(c *gin.Context) {
	var req BulkSetRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.BulkSetRates(c.Request.Context(), c.Param("id"), req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": len(req.Dates)})
}

func (h *Handler) DeleteRates(c *gin.Context) {
	var req DeleteRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.DeleteRates(c.Request.Context(), c.Param("id"), req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) GetRates(c *gin.Context) {
	from, err := availability.ParseDate(c.Query("from"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from must be a YYYY-MM-DD date")
		return
	}
	var to time.Time
	if to, err = availability.ParseDate(c.Query("to")); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "to must be a YYYY-MM-DD date")
		return
	}

	rates, err := h.service.GetRates(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load rates")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rates": rates})
}

func (h *Handler) CreateBlock(c *gin.Context) {
	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBlock(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"block": b})
}

func (h *Handler) ListBlocks(c *gin.Context) {
	blocks, err := h.service.ListBlocks(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load blocks")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"blocks": blocks})
}

func (h *Handler) DeleteBlock(c *gin.Context) {
	if err := h.service.DeleteBlock(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete block")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListHotelBookings(c *gin.Context) {
	bookings, err := h.service.ListHotelBookings(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) SetBookingStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.SetBookingStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.Error(c, http.StatusConflict, "INVALID_STATUS", "Status change not allowed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) SetPaymentStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.SetPaymentStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	users, err := h.service.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

func (h *Handler) UpdateUserRole(c *gin.Context) {
	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.UpdateUserRole(c.Request.Context(), c.Param("id"), req.Role); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) SetUserActive(c *gin.Context) {
	var req SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetUserActive(c.Request.Context(), c.Param("id"), req.Active); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) ListHotelReviews(c *gin.Context) {
	reviews, err := h.service.ListHotelReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reviews")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) SetReviewHidden(c *gin.Context) {
	var req struct {
		Hidden bool `json:"hidden"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetReviewHidden(c.Request.Context(), c.Param("id"), req.Hidden); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update review")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) DeleteReview(c *gin.Context) {
	if err := h.service.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete review")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) UpsertTranslation(c *gin.Context) {
	var req UpsertTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.UpsertTranslation(c.Request.Context(), req); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save translation")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"saved": true})
}

func (h *Handler) ListTranslations(c *gin.Context) {
	translations, err := h.service.ListTranslations(c.Request.Context(), c.Param("locale"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load translations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"translations": translations})
}

func (h *Handler) DeleteTranslation(c *gin.Context) {
	if err := h.service.DeleteTranslation(c.Request.Context(), c.Param("locale"), c.Param("key")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete translation")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field values")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
