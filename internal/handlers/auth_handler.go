package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nexthora/booking-api/internal/config"
	"github.com/nexthora/booking-api/internal/models"
	"github.com/nexthora/booking-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register crea la cuenta y su perfil profesional en una sola
// transacción explícita: dos pasos, sin listeners implícitos.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "El dominio del email no parece válido.",
		})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = req.Name
	}

	var account models.Account
	var pro models.Professional

	err = h.db.Transaction(func(tx *gorm.DB) error {
		account = models.Account{
			Name:         req.Name,
			Email:        email,
			PasswordHash: string(hashed),
		}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}

		slug, err := uniqueSlug(tx, req.Name)
		if err != nil {
			return err
		}

		pro = models.Professional{
			AccountID:   account.ID,
			Slug:        slug,
			DisplayName: displayName,
			Bio:         req.Bio,
		}
		return tx.Create(&pro).Error
	})

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed_to_register"})
		return
	}

	token, err := h.generateToken(&account, &pro)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"account": gin.H{
			"id":    account.ID,
			"name":  account.Name,
			"email": account.Email,
		},
		"professional": gin.H{
			"id":           pro.ID,
			"slug":         pro.Slug,
			"display_name": pro.DisplayName,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var account models.Account
	if err := h.db.Where("email = ?", email).First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	// La cuenta resuelve a exactamente un profesional; la relación se
	// materializa aquí, por request, sin estado global.
	var pro models.Professional
	if err := h.db.Where("account_id = ?", account.ID).First(&pro).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile_not_found"})
		return
	}

	token, err := h.generateToken(&account, &pro)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account": gin.H{
			"id":    account.ID,
			"name":  account.Name,
			"email": account.Email,
		},
		"professional": gin.H{
			"id":           pro.ID,
			"slug":         pro.Slug,
			"display_name": pro.DisplayName,
			"bio":          pro.Bio,
		},
		"token": token,
	})
}

// --------- Slug ---------

// uniqueSlug deriva el slug del nombre de la cuenta y desambigua
// colisiones con sufijo numérico: ana, ana-1, ana-2...
func uniqueSlug(tx *gorm.DB, name string) (string, error) {
	base := validators.Slugify(name)

	slug := base
	for counter := 1; ; counter++ {
		var count int64
		if err := tx.Model(&models.Professional{}).
			Where("slug = ?", slug).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(account *models.Account, pro *models.Professional) (string, error) {
	claims := jwt.MapClaims{
		"sub":            account.ID,
		"professionalId": pro.ID,
		"exp":            time.Now().Add(24 * time.Hour).Unix(),
		"iat":            time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
