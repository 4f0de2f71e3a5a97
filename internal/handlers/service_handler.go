package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nexthora/booking-api/internal/audit"
	"github.com/nexthora/booking-api/internal/cache"
	domain "github.com/nexthora/booking-api/internal/domain/booking"
	"github.com/nexthora/booking-api/internal/middleware"
	"github.com/nexthora/booking-api/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher, availCache *cache.AvailabilityCache) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit, cache: availCache}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	DurationMin int      `json:"duration_min" binding:"required,min=1"`
	Price       *float64 `json:"price"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var services []models.Service
	if err := h.db.
		Where("professional_id = ?", professionalID).
		Order("id ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// Create aplica la compuerta del plan gratuito antes de insertar: el
// conteo vigente de servicios debe estar bajo el tope.
func (h *ServiceHandler) Create(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)
	accountID := c.MustGet(middleware.ContextAccountID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var count int64
	if err := h.db.Model(&models.Service{}).
		Where("professional_id = ?", professionalID).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_count_services"})
		return
	}

	if !domain.CanCreateService(count) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "service_limit_reached",
			"limit":   domain.ServiceLimit,
			"message": "El plan gratuito permite hasta 2 servicios.",
		})
		return
	}

	service := models.Service{
		ProfessionalID: professionalID,
		Name:           req.Name,
		Description:    req.Description,
		DurationMin:    req.DurationMin,
		Price:          req.Price,
		Active:         true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	h.audit.Dispatch(audit.Event{
		ProfessionalID: professionalID,
		AccountID:      &accountID,
		Action:         "service_created",
		Entity:         "service",
		EntityID:       &service.ID,
	})

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND professional_id = ?", id, professionalID).
		First(&service).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		service.Price = req.Price
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	// cambios de duración o de estado activo alteran la disponibilidad
	h.cache.Invalidate(c.Request.Context(), professionalID)

	c.JSON(http.StatusOK, service)
}

// Delete elimina el servicio; las citas históricas quedan con la
// referencia en NULL y sobreviven.
func (h *ServiceHandler) Delete(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	id := c.Param("id")

	res := h.db.
		Where("id = ? AND professional_id = ?", id, professionalID).
		Delete(&models.Service{})

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_service"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), professionalID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
