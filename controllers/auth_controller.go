package controllers

import (
	"errors"
	"net/http"
	"time"

	"pgstay-backend/config"
	"pgstay-backend/models"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

const adminTokenTTL = 12 * time.Hour

// Login authenticates an admin and issues a signed JWT for the /api/admin
// routes.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	var admin models.Admin
	if err := config.DB.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	secret := utils.EnvOrDefault("JWT_SECRET", "")
	if secret == "" {
		utils.JSONError(c, http.StatusInternalServerError, "server auth not configured")
		return
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      admin.ID,
		"username": admin.Username,
		"role":     "admin",
		"iat":      now.Unix(),
		"exp":      now.Add(adminTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":        admin.ID,
			"username":  admin.Username,
			"full_name": admin.FullName,
		},
	})
}
