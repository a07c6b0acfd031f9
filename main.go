package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pgstay-backend/config"
	"pgstay-backend/controllers"
	"pgstay-backend/routes"
	"pgstay-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	// Gateway credentials are required: without them no order can be created
	// and no signature can be verified.
	razorpayKeyID := os.Getenv("RAZORPAY_KEY_ID")
	razorpayKeySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if razorpayKeyID == "" || razorpayKeySecret == "" {
		log.Fatal("ERROR: RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET environment variables are not set. Cannot initialize payment gateway.")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established and migrations applied")

	// Optional listing cache
	cache := config.InitRedis()

	// Initialize services
	propertyService := services.NewPropertyService(db, cache)
	roomService := services.NewRoomService(db, propertyService)
	reservationService := services.NewReservationService(db)
	bookingService := services.NewBookingService(db)
	notificationService := services.NewNotificationService(db)
	profileService := services.NewProfileService(db)
	paymentService := services.NewPaymentService(
		services.NewOrderStore(db),
		services.NewRazorpayGateway(razorpayKeyID, razorpayKeySecret),
		bookingService,
		notificationService,
		reservationService,
		razorpayKeyID,
		razorpayKeySecret,
	)

	// Initialize controllers
	propertyController := controllers.NewPropertyController(propertyService)
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService, reservationService)
	paymentController := controllers.NewPaymentController(paymentService)
	profileController := controllers.NewProfileController(profileService)

	// Build router
	router := routes.SetupRouter(
		propertyController,
		roomController,
		bookingController,
		paymentController,
		profileController,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
