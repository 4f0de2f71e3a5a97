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

type BusinessHoursHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewBusinessHoursHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *BusinessHoursHandler {
	return &BusinessHoursHandler{db: db, audit: audit, cache: cache}
}

type BusinessDayConfig struct {
	// 0 = domingo ... 6 = sábado (convención de time.Weekday)
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type BusinessHoursUpdateRequest struct {
	Days []BusinessDayConfig `json:"days" binding:"required"`
}

func (h *BusinessHoursHandler) Get(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var hours []models.BusinessHours
	if err := h.db.
		Where("professional_id = ?", professionalID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_business_hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update reemplaza el horario semanal completo: se borran los bloques
// existentes y se insertan los enviados. Un bloque por día como máximo;
// reemplazar, no acumular.
func (h *BusinessHoursHandler) Update(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)
	accountID := c.MustGet(middleware.ContextAccountID).(uint)

	var req BusinessHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	seen := map[int]bool{}
	for _, d := range req.Days {
		start, err := parseHM(d.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_start_time"})
			return
		}
		end, err := parseHM(d.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_end_time"})
			return
		}
		if !start.Before(end) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_time_range",
				"message": "La hora de término debe ser después del inicio.",
			})
			return
		}
		if seen[d.Weekday] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate_weekday"})
			return
		}
		seen[d.Weekday] = true
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("professional_id = ?", professionalID).
			Delete(&models.BusinessHours{}).Error; err != nil {
			return err
		}

		var toCreate []models.BusinessHours
		for _, d := range req.Days {
			toCreate = append(toCreate, models.BusinessHours{
				ProfessionalID: professionalID,
				Weekday:        d.Weekday,
				StartTime:      d.StartTime,
				EndTime:        d.EndTime,
			})
		}

		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_business_hours"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), professionalID)

	h.audit.Dispatch(audit.Event{
		ProfessionalID: professionalID,
		AccountID:      &accountID,
		Action:         "schedule_updated",
		Entity:         "business_hours",
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
