package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pgstay-backend/controllers"
	"pgstay-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controller instances onto the route tree.
func SetupRouter(
	prc *controllers.PropertyController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	pyc *controllers.PaymentController,
	pfc *controllers.ProfileController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		properties := api.Group("/properties")
		{
			properties.GET("", prc.GetProperties)
			properties.GET("/:id", prc.GetProperty)
			properties.GET("/:id/rooms", rc.GetPropertyRooms)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("/summary", bc.GetBookingSummary)
			bookings.GET("", bc.GetBookingByRef)
			bookings.GET("/:id", bc.GetBooking)
		}

		payments := api.Group("/payments")
		{
			payments.POST("/order", pyc.CreateOrder)
			payments.POST("/verify", pyc.VerifyPayment)
		}

		profiles := api.Group("/profiles")
		{
			profiles.POST("", pfc.GetOrCreateProfile)
			profiles.PUT("/:id", pfc.UpdateProfile)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/properties", prc.CreateProperty)
			admin.PUT("/properties/:id", prc.UpdateProperty)
			admin.PATCH("/properties/:id", prc.UpdateProperty)
			admin.DELETE("/properties/:id", prc.DeleteProperty)

			admin.POST("/rooms", rc.CreateRoom)
			admin.PUT("/rooms/:id", rc.UpdateRoom)
			admin.PATCH("/rooms/:id", rc.UpdateRoom)
			admin.DELETE("/rooms/:id", rc.DeleteRoom)

			admin.GET("/bookings", bc.GetBookings)
			admin.POST("/bookings/:id/cancel", bc.CancelBooking)
		}
	}

	return r
}
