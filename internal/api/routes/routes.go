package routes

import (
	"fmt"

	"lpg-backoffice/internal/api/handlers"
	"lpg-backoffice/internal/api/middleware"
	"lpg-backoffice/internal/auth"
	"lpg-backoffice/internal/config"
	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/repository"
	"lpg-backoffice/internal/seed"
	"lpg-backoffice/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. cache may be nil, which disables
// the OTP resend cooldown.
func SetupRoutes(db *gorm.DB, cfg *config.Config, cache *redis.Client) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	sessions, err := auth.NewSessionManager(cfg.JWTSecret, cfg.SessionTTL())
	if err != nil {
		return nil, fmt.Errorf("session manager: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	cylinderRepo := repository.NewCylinderRepository(db)
	billRepo := repository.NewBillRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	backupRepo := repository.NewBackupRepository(db)
	platformRepo := repository.NewPlatformRepository(db)

	// Initialize services
	var limiter service.CooldownLimiter = service.NoopCooldownLimiter{}
	if cache != nil {
		limiter = service.NewRedisCooldownLimiter(cache)
	}
	otpService := service.NewOTPService(otpRepo, limiter, service.LogMailer{RevealCode: cfg.IsDevelopment()}, service.OTPOptions{
		Length:         cfg.OTPLength,
		TTL:            cfg.OTPTTL(),
		MaxAttempts:    cfg.OTPMaxAttempts,
		ResendCooldown: cfg.OTPResendCooldown(),
	})
	accessService := service.NewAccessService(permissionRepo, userRepo, seed.DefaultRoleDefaults())
	accountService := service.NewAccountService(userRepo, accessService, otpService, sessions, validator)
	staffService := service.NewStaffService(userRepo, accessService, validator)
	settingService := service.NewSettingService(settingRepo)
	customerService := service.NewCustomerService(customerRepo, validator)
	cylinderService := service.NewCylinderService(cylinderRepo, settingService, validator)
	billingService := service.NewBillingService(billRepo, settingService, validator)
	paymentService := service.NewPaymentService(paymentRepo, validator)
	backupService := service.NewBackupService(backupRepo, settingService, cfg.BackupRetention)
	consoleService := service.NewConsoleService(platformRepo, userRepo, backupService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cache)
	authHandler := handlers.NewAuthHandler(accountService, handlers.CookieOptions{
		Name:   cfg.SessionCookieName,
		Secure: cfg.CookieSecure,
		TTL:    cfg.SessionTTL(),
	})
	permissionHandler := handlers.NewPermissionHandler(accessService)
	staffHandler := handlers.NewStaffHandler(staffService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	cylinderHandler := handlers.NewCylinderHandler(cylinderService)
	billHandler := handlers.NewBillHandler(billingService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	settingHandler := handlers.NewSettingHandler(settingService)
	backupHandler := handlers.NewBackupHandler(backupService)
	consoleHandler := handlers.NewConsoleHandler(consoleService)

	authMiddleware := auth.NewMiddleware(sessions, userRepo, cfg.SessionCookieName)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Public auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.POST("/verify-email", authHandler.VerifyEmail)
		authGroup.POST("/forgot-password", authHandler.ForgotPassword)
		authGroup.POST("/reset-password", authHandler.ResetPassword)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	otp := api.Group("/otp")
	{
		otp.POST("/request", authHandler.RequestOTP)
		otp.POST("/verify", authHandler.VerifyOTP)
	}

	// Page guards render for anonymous visitors too
	api.GET("/pages/:module", authMiddleware.OptionalAuth(), permissionHandler.GuardPage)

	protected := api.Group("", authMiddleware.RequireAuth())

	permissions := protected.Group("/permissions")
	{
		permissions.GET("", permissionHandler.Map)
		permissions.GET("/check", permissionHandler.Check)

		adminOnly := permissions.Group("", auth.RequireRole(models.RoleAdmin))
		adminOnly.PUT("/users/:id", permissionHandler.SetUserPermissions)
		adminOnly.PUT("/roles/:role", permissionHandler.SetRolePermissions)
		adminOnly.GET("/roles/:role", permissionHandler.RolePermissions)
	}

	guard := func(module models.Module, level models.AccessLevel) gin.HandlerFunc {
		return middleware.RequireModule(accessService, module, level)
	}
	view := models.AccessView
	edit := models.AccessEdit
	full := models.AccessFullAccess

	staff := protected.Group("/staff")
	{
		staff.GET("", guard(models.ModuleStaff, view), staffHandler.ListStaff)
		staff.POST("", guard(models.ModuleStaff, edit), staffHandler.CreateStaff)
		staff.GET("/:id", guard(models.ModuleStaff, view), staffHandler.GetStaff)
		staff.PUT("/:id", guard(models.ModuleStaff, edit), staffHandler.UpdateStaff)
		staff.DELETE("/:id", guard(models.ModuleStaff, full), staffHandler.DeleteStaff)
	}

	customers := protected.Group("/customers")
	{
		customers.GET("", guard(models.ModuleCustomers, view), customerHandler.ListCustomers)
		customers.POST("", guard(models.ModuleCustomers, edit), customerHandler.CreateCustomer)
		customers.GET("/:id", guard(models.ModuleCustomers, view), customerHandler.GetCustomer)
		customers.PUT("/:id", guard(models.ModuleCustomers, edit), customerHandler.UpdateCustomer)
		customers.DELETE("/:id", guard(models.ModuleCustomers, full), customerHandler.DeleteCustomer)
	}

	stock := protected.Group("/add-cylinder")
	{
		stock.GET("", guard(models.ModuleInventory, view), cylinderHandler.ListCylinders)
		stock.POST("", guard(models.ModuleInventory, edit), cylinderHandler.AddCylinders)
		stock.GET("/summary", guard(models.ModuleInventory, view), cylinderHandler.StockSummary)
		stock.GET("/:id", guard(models.ModuleInventory, view), cylinderHandler.GetCylinderEntry)
		stock.DELETE("/delete-all", guard(models.ModuleInventory, full), cylinderHandler.DeleteAllCylinders)
		stock.DELETE("/:id", guard(models.ModuleInventory, full), cylinderHandler.DeleteCylinderEntry)
	}

	bills := protected.Group("/bills")
	{
		bills.GET("", guard(models.ModuleBilling, view), billHandler.ListBills)
		bills.POST("", guard(models.ModuleBilling, edit), billHandler.CreateBill)
		bills.GET("/:id", guard(models.ModuleBilling, view), billHandler.GetBill)
		bills.DELETE("/:id", guard(models.ModuleBilling, full), billHandler.DeleteBill)
	}

	payments := protected.Group("/payments")
	{
		payments.GET("", guard(models.ModulePayments, view), paymentHandler.ListPayments)
		payments.POST("", guard(models.ModulePayments, edit), paymentHandler.CreatePayment)
		payments.GET("/:id", guard(models.ModulePayments, view), paymentHandler.GetPayment)
		payments.DELETE("/:id", guard(models.ModulePayments, full), paymentHandler.DeletePayment)
	}

	settings := protected.Group("/settings")
	{
		settings.GET("", guard(models.ModuleSettings, view), settingHandler.GetSettings)
		settings.PUT("", guard(models.ModuleSettings, edit), settingHandler.UpdateSettings)
	}

	backups := protected.Group("/backup")
	{
		backups.POST("/automatic", guard(models.ModuleBackup, edit), backupHandler.CreateAutomaticBackup)
		backups.POST("/restore", guard(models.ModuleBackup, full), backupHandler.RestoreBackup)
		backups.POST("", guard(models.ModuleBackup, edit), backupHandler.CreateBackup)
		backups.GET("", guard(models.ModuleBackup, view), backupHandler.ListBackups)
		backups.GET("/:id", guard(models.ModuleBackup, view), backupHandler.GetBackup)
		backups.GET("/:id/download", guard(models.ModuleBackup, view), backupHandler.DownloadBackup)
		backups.DELETE("/:id", guard(models.ModuleBackup, full), backupHandler.DeleteBackup)
	}

	// Platform console
	console := protected.Group("/admin", auth.RequireRole(models.RoleSuperAdmin))
	{
		console.GET("/admins", consoleHandler.ListAdmins)
		console.PATCH("/admins/:id/status", consoleHandler.SetAdminStatus)
		console.POST("/admins/:id/backup", consoleHandler.BackupTenant)
		console.GET("/stats", consoleHandler.PlatformStats)
	}

	return router, nil
}
