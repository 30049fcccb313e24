package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kibettheo/medicore-api/internal/config"
	domainRepo "github.com/kibettheo/medicore-api/internal/domain/repository"
	"github.com/kibettheo/medicore-api/internal/presentation/http/handler"
	"github.com/kibettheo/medicore-api/internal/presentation/http/middleware"
	"github.com/kibettheo/medicore-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Patient     *handler.PatientHandler
	Doctor      *handler.DoctorHandler
	Staff       *handler.StaffHandler
	Ward        *handler.WardHandler
	Billing     *handler.BillingHandler
	Pharmacy    *handler.PharmacyHandler
	Appointment *handler.AppointmentHandler
	Dashboard   *handler.DashboardHandler
	User        *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	registerDashboardRoutes(protected, h)

	// Patients
	registerPatientRoutes(protected, h)

	// Doctors
	registerDoctorRoutes(protected, h)

	// Staff
	registerStaffRoutes(protected, h)

	// Wards and beds
	registerWardRoutes(protected, h)

	// Billing
	registerBillingRoutes(protected, h, deps)

	// Pharmacy
	registerPharmacyRoutes(protected, h)

	// Appointments
	registerAppointmentRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Roles (Admin)
	registerRoleRoutes(protected, h)
}

func registerDashboardRoutes(protected *gin.RouterGroup, h *Handlers) {
	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequirePermission("view-dashboard"))
	{
		dashboard.GET("", h.Dashboard.GetStats)
		dashboard.GET("/stock-alerts", h.Dashboard.GetStockAlerts)
	}
}

func registerPatientRoutes(protected *gin.RouterGroup, h *Handlers) {
	patients := protected.Group("/patients")
	patients.Use(middleware.RequirePermission("manage-patients"))
	{
		patients.GET("", h.Patient.List)
		patients.POST("", h.Patient.Create)
		patients.GET("/:id", h.Patient.Get)
		patients.PUT("/:id", h.Patient.Update)
		patients.DELETE("/:id", h.Patient.Delete)
	}
}

func registerDoctorRoutes(protected *gin.RouterGroup, h *Handlers) {
	doctors := protected.Group("/doctors")
	doctors.Use(middleware.RequirePermission("manage-doctors"))
	{
		doctors.GET("", h.Doctor.List)
		doctors.POST("", h.Doctor.Create)
		doctors.GET("/:id", h.Doctor.Get)
		doctors.PUT("/:id", h.Doctor.Update)
		doctors.DELETE("/:id", h.Doctor.Delete)
	}
}

func registerStaffRoutes(protected *gin.RouterGroup, h *Handlers) {
	staff := protected.Group("/staff")
	staff.Use(middleware.RequirePermission("manage-staff"))
	{
		staff.GET("", h.Staff.List)
		staff.POST("", h.Staff.Create)
		staff.GET("/:id", h.Staff.Get)
		staff.PUT("/:id", h.Staff.Update)
		staff.DELETE("/:id", h.Staff.Delete)
	}
}

func registerWardRoutes(protected *gin.RouterGroup, h *Handlers) {
	wards := protected.Group("/wards")
	wards.Use(middleware.RequirePermission("manage-wards"))
	{
		wards.GET("", h.Ward.List)
		wards.POST("", h.Ward.Create)
		wards.GET("/:id", h.Ward.Get)
		wards.PUT("/:id", h.Ward.Update)
		wards.DELETE("/:id", h.Ward.Delete)
		wards.POST("/:id/beds/allocate", h.Ward.AllocateBed)
		wards.POST("/:id/beds/:bed_number/release", h.Ward.ReleaseBed)
	}
}

func registerBillingRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	bills := protected.Group("/bills")
	bills.Use(middleware.RequirePermission("manage-billing"))
	{
		bills.GET("", h.Billing.List)
		// Bill creation uses idempotency middleware to prevent duplicates
		bills.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Billing.Create)
		bills.GET("/:id", h.Billing.Get)
		bills.DELETE("/:id", h.Billing.Delete)
		// Payments are append-only, so replays must not double-charge
		bills.POST("/:id/payments", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Billing.RecordPayment)
		bills.POST("/:id/claim", h.Billing.AttachClaim)
		bills.PUT("/:id/claim/status", h.Billing.UpdateClaimStatus)
	}
}

func registerPharmacyRoutes(protected *gin.RouterGroup, h *Handlers) {
	medicines := protected.Group("/medicines")
	medicines.Use(middleware.RequirePermission("manage-pharmacy"))
	{
		medicines.GET("", h.Pharmacy.List)
		medicines.POST("", h.Pharmacy.Create)
		medicines.GET("/low-stock", h.Pharmacy.GetLowStock)
		medicines.GET("/expiring", h.Pharmacy.GetExpiring)
		medicines.GET("/:id", h.Pharmacy.Get)
		medicines.PUT("/:id", h.Pharmacy.Update)
		medicines.DELETE("/:id", h.Pharmacy.Delete)
		medicines.POST("/:id/stock/add", h.Pharmacy.AddStock)
		medicines.POST("/:id/stock/reduce", h.Pharmacy.ReduceStock)
		medicines.PUT("/:id/stock", h.Pharmacy.SetStock)
	}
}

func registerAppointmentRoutes(protected *gin.RouterGroup, h *Handlers) {
	appointments := protected.Group("/appointments")
	appointments.Use(middleware.RequirePermission("manage-appointments"))
	{
		appointments.GET("", h.Appointment.List)
		appointments.POST("", h.Appointment.Create)
		appointments.GET("/:id", h.Appointment.Get)
		appointments.PUT("/:id/status", h.Appointment.UpdateStatus)
		appointments.PUT("/:id/reschedule", h.Appointment.Reschedule)
		appointments.DELETE("/:id", h.Appointment.Delete)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.AssignRoles)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerRoleRoutes(protected *gin.RouterGroup, h *Handlers) {
	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}
}
