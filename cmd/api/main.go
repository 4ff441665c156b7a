package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-rotech-website/config"
	_ "go-rotech-website/docs" // Important for Swagger
	v1 "go-rotech-website/internal/delivery/http/v1"
	"go-rotech-website/internal/usecase"
	"go-rotech-website/pkg/email"
	"go-rotech-website/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// @title           Rotech Data Consult API
// @version         1.0
// @description     Booking and course catalog API behind the Rotech Data Consult website.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting rotech website backend", "port", cfg.Port, "mail_provider", cfg.MailProvider)

	// 3. Setup Mailer
	var mailer email.Mailer
	switch cfg.MailProvider {
	case "sendgrid":
		mailer = email.NewSendGridMailer(cfg)
	default:
		mailer = email.NewSMTPMailer(cfg)
	}
	if !mailer.IsConfigured() {
		logger.Log.Warn("Mail provider not fully configured - booking form will be unavailable",
			"provider", cfg.MailProvider)
	}

	// 4. Setup UseCases
	validate := validator.New()
	bookingUC := usecase.NewBookingUsecase(mailer, validate, cfg)
	courseUC := usecase.NewCourseUsecase()

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		BookingUC: bookingUC,
		CourseUC:  courseUC,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
