package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nexthora/booking-api/internal/audit"
	"github.com/nexthora/booking-api/internal/cache"
	"github.com/nexthora/booking-api/internal/middleware"
	"github.com/nexthora/booking-api/internal/models"
)

type TimeOffHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewTimeOffHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *TimeOffHandler {
	return &TimeOffHandler{db: db, audit: audit, cache: cache}
}

type CreateTimeOffRequest struct {
	StartDate   string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate     string `json:"end_date" binding:"required"`   // YYYY-MM-DD
	Description string `json:"description"`
}

func (h *TimeOffHandler) List(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var blocks []models.TimeOff
	if err := h.db.
		Where("professional_id = ?", professionalID).
		Order("start_date ASC").
		Find(&blocks).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_time_off"})
		return
	}

	c.JSON(http.StatusOK, blocks)
}

func (h *TimeOffHandler) Create(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)
	accountID := c.MustGet(middleware.ContextAccountID).(uint)

	var req CreateTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_start_date"})
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_end_date"})
		return
	}

	// rango inclusivo: un solo día es start == end
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_date_range",
			"message": "La fecha de fin no puede ser anterior al inicio.",
		})
		return
	}

	block := models.TimeOff{
		ProfessionalID: professionalID,
		StartDate:      start,
		EndDate:        end,
		Description:    req.Description,
	}

	if err := h.db.Create(&block).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_time_off"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), professionalID)

	h.audit.Dispatch(audit.Event{
		ProfessionalID: professionalID,
		AccountID:      &accountID,
		Action:         "time_off_created",
		Entity:         "time_off",
		EntityID:       &block.ID,
	})

	c.JSON(http.StatusCreated, block)
}

func (h *TimeOffHandler) Delete(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)
	accountID := c.MustGet(middleware.ContextAccountID).(uint)

	id := c.Param("id")

	res := h.db.
		Where("id = ? AND professional_id = ?", id, professionalID).
		Delete(&models.TimeOff{})

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_time_off"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "time_off_not_found"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), professionalID)

	h.audit.Dispatch(audit.Event{
		ProfessionalID: professionalID,
		AccountID:      &accountID,
		Action:         "time_off_deleted",
		Entity:         "time_off",
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
