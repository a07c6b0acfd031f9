package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAdmin guards the /api/admin routes with the JWT issued at login.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := utils.EnvOrDefault("JWT_SECRET", "")
		if secret == "" {
			utils.JSONError(c, http.StatusInternalServerError, "server auth not configured")
			c.Abort()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["role"] != "admin" {
			utils.JSONError(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}

		c.Set("adminId", claims["sub"])
		c.Set("adminUsername", claims["username"])
		c.Next()
	}
}
