// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/cron"
	"medibook/database"
	appointmentRepoPkg "medibook/database/repository/appointment"
	userRepoPkg "medibook/database/repository/user"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/admin"
	"medibook/services/auth"
	"medibook/services/directory"
	ai "medibook/services/intelligence"
	"medibook/services/notification"
	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	authService := &auth.DefaultAuthService{
		Repo: userRepo,
	}

	directoryService := &directory.DefaultDirectoryService{
		Repo: userRepo,
	}

	notificationService := notification.NewDefaultNotificationService()

	schedulingEngine := &scheduling.DefaultSchedulingEngine{
		Repo:     appointmentRepo,
		Users:    userRepo,
		Notifier: notificationService,
	}

	adminService := &admin.DefaultAdminService{
		Users:        userRepo,
		Appointments: appointmentRepo,
	}

	aiSvc := ai.NewDefaultAIService(config.AppConfig.GeminiAPIKey)

	authHandler := handlers.NewAuthHandler(authService)
	doctorHandler := handlers.NewDoctorHandler(directoryService)
	appointmentHandler := handlers.NewAppointmentHandler(schedulingEngine)
	adminHandler := handlers.NewAdminHandler(adminService, directoryService, schedulingEngine)
	aiHandler := handlers.NewAIHandler(aiSvc)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,

		// Doctor directory.
		ListDoctorsHandler: doctorHandler.ListDoctorsHandler,

		// Appointment endpoints.
		BookAppointmentHandler:   appointmentHandler.BookHandler,
		MyAppointmentsHandler:    appointmentHandler.MyAppointmentsHandler,
		CancelAppointmentHandler: appointmentHandler.CancelHandler,
		UpdateStatusHandler:      appointmentHandler.UpdateStatusHandler,
		AvailableSlotsHandler:    appointmentHandler.AvailableSlotsHandler,

		// AI endpoints.
		RecommendDoctorHandler: aiHandler.RecommendDoctorHandler,

		// Admin endpoints.
		AdminCreateDoctorHandler:     adminHandler.CreateDoctorHandler,
		AdminListDoctorsHandler:      adminHandler.ListDoctorsHandler,
		AdminUpdateDoctorHandler:     adminHandler.UpdateDoctorHandler,
		AdminDeleteDoctorHandler:     adminHandler.DeleteDoctorHandler,
		AdminListAppointmentsHandler: adminHandler.ListAppointmentsHandler,
		AdminAnalyticsHandler:        adminHandler.AnalyticsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background notice worker consumes the booking notice queue.
	cron.InitNoticeWorker(nil)

	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
