package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/kibettheo/medicore-api/internal/application/service"
	"github.com/kibettheo/medicore-api/internal/config"
	"github.com/kibettheo/medicore-api/internal/infrastructure/database"
	"github.com/kibettheo/medicore-api/internal/infrastructure/repository"
	"github.com/kibettheo/medicore-api/internal/presentation/http/handler"
	"github.com/kibettheo/medicore-api/internal/presentation/http/routes"
	"github.com/kibettheo/medicore-api/pkg/oauth"
	"github.com/kibettheo/medicore-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	wardRepo := repository.NewWardRepository(db)
	billRepo := repository.NewBillRepository(db)
	medicineRepo := repository.NewMedicineRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, jwtManager)
	userService := service.NewUserService(userRepo, roleRepo)
	patientService := service.NewPatientService(patientRepo, userRepo)
	doctorService := service.NewDoctorService(doctorRepo)
	staffService := service.NewStaffService(staffRepo)
	wardService := service.NewWardService(wardRepo, patientRepo)
	billingService := service.NewBillingService(billRepo, patientRepo, userRepo)
	pharmacyService := service.NewPharmacyService(medicineRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, patientRepo, doctorRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, medicineRepo, billRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService, googleOAuthService),
		Patient:     handler.NewPatientHandler(patientService),
		Doctor:      handler.NewDoctorHandler(doctorService),
		Staff:       handler.NewStaffHandler(staffService),
		Ward:        handler.NewWardHandler(wardService),
		Billing:     handler.NewBillingHandler(billingService),
		Pharmacy:    handler.NewPharmacyHandler(pharmacyService),
		Appointment: handler.NewAppointmentHandler(appointmentService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		User:        handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
