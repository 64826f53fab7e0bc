package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"kostify-backend/internal/config"
	"kostify-backend/internal/database"
	"kostify-backend/internal/handler"
	"kostify-backend/internal/integration/billing"
	"kostify-backend/internal/integration/whatsapp"
	"kostify-backend/internal/middleware"
	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"
	"kostify-backend/internal/service"
	"kostify-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection; Connect runs migrations
	db := database.Connect(cfg)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	propertyRepo := repository.NewPropertyRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	tenantRepo := repository.NewTenantRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	complaintRepo := repository.NewComplaintRepo(db)
	canteenRepo := repository.NewCanteenRepo(db)
	meterRepo := repository.NewUtilityMeterRepo(db)
	whatsappRepo := repository.NewWhatsAppRepo(db)
	statsRepo := repository.NewStatsRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize external integrations
	waGateway := whatsapp.NewClient(cfg.WhatsApp.BaseURL, cfg.WhatsApp.APIKey)
	paymentLinker := billing.NewSnapClient(cfg.Midtrans.ServerKey, cfg.Midtrans.Production)

	// 6. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo)
	propertyService := service.NewPropertyService(propertyRepo, auditRepo)
	roomService := service.NewRoomService(roomRepo, propertyRepo, auditRepo)
	tenantService := service.NewTenantService(tenantRepo, roomRepo, propertyRepo, auditRepo)
	paymentService := service.NewPaymentService(paymentRepo, tenantRepo, auditRepo, paymentLinker)
	complaintService := service.NewComplaintService(complaintRepo, tenantRepo, auditRepo)
	canteenService := service.NewCanteenService(canteenRepo, propertyRepo, auditRepo)
	utilityService := service.NewUtilityService(meterRepo, roomRepo, auditRepo)
	pengelolaService := service.NewPengelolaService(userRepo, propertyRepo, auditRepo)
	dashboardService := service.NewDashboardService(statsRepo)
	formService := service.NewFormService(roomRepo, tenantRepo)
	whatsappService := service.NewWhatsAppService(waGateway, tenantRepo, whatsappRepo, auditRepo)
	workerService := service.NewWorkerService(tenantRepo)

	// 7. Start background worker in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go workerService.Start(ctx)

	// 8. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 9. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 10. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	roomHandler := handler.NewRoomHandler(roomService)
	tenantHandler := handler.NewTenantHandler(tenantService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	canteenHandler := handler.NewCanteenHandler(canteenService)
	meterHandler := handler.NewUtilityMeterHandler(utilityService)
	pengelolaHandler := handler.NewPengelolaHandler(pengelolaService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	formHandler := handler.NewFormHandler(formService)
	whatsappHandler := handler.NewWhatsAppHandler(whatsappService)

	// 11. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "kostify-backend",
		})
	})

	api := r.Group("/api")

	// Auth routes (public, except /me)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), authHandler.Me)
	}

	// Everything below requires a valid access token
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())

	// Property routes (owner only)
	properties := authed.Group("/properties", middleware.RequireOwner())
	{
		properties.GET("", propertyHandler.List)
		properties.GET("/:id", propertyHandler.Get)
		properties.POST("", propertyHandler.Create)
		properties.PUT("/:id", propertyHandler.Update)
		properties.DELETE("/:id", propertyHandler.Delete)
	}

	// Room routes
	rooms := authed.Group("/rooms", middleware.RequirePermission(models.PermManageRooms))
	{
		rooms.GET("", roomHandler.List)
		rooms.POST("", roomHandler.Create)
		rooms.PUT("/:id", roomHandler.Update)
		rooms.DELETE("/:id", roomHandler.Delete)
	}

	// Tenant routes
	tenants := authed.Group("/tenants", middleware.RequirePermission(models.PermManageTenants))
	{
		tenants.GET("", tenantHandler.List)
		tenants.GET("/:id", tenantHandler.Get)
		tenants.POST("", tenantHandler.Create)
		tenants.PUT("/:id", tenantHandler.Update)
	}

	// Payment routes
	payments := authed.Group("/payments", middleware.RequirePermission(models.PermManagePayments))
	{
		payments.GET("", paymentHandler.List)
		payments.POST("", paymentHandler.Create)
		payments.PUT("/:id/approve", paymentHandler.Approve)
		payments.PUT("/:id/reject", paymentHandler.Reject)
		payments.POST("/:id/payment-link", paymentHandler.PaymentLink)
	}

	// Complaint routes
	complaints := authed.Group("/complaints", middleware.RequirePermission(models.PermManageComplaints))
	{
		complaints.GET("", complaintHandler.List)
		complaints.POST("", complaintHandler.Create)
		complaints.PUT("/:id/status", complaintHandler.UpdateStatus)
	}

	// Canteen routes
	canteen := authed.Group("/canteen", middleware.RequirePermission(models.PermManageCanteen))
	{
		canteen.GET("/products", canteenHandler.ListProducts)
		canteen.POST("/products", canteenHandler.CreateProduct)
		canteen.PUT("/products/:id", canteenHandler.UpdateProduct)
		canteen.DELETE("/products/:id", canteenHandler.DeleteProduct)
		canteen.GET("/transactions", canteenHandler.ListTransactions)
		canteen.POST("/transactions", canteenHandler.CreateTransaction)
		canteen.GET("/sales-report", canteenHandler.SalesReport)
	}

	// Utility meter routes
	meters := authed.Group("/utility-meters", middleware.RequirePermission(models.PermManageUtilities))
	{
		meters.GET("", meterHandler.List)
		meters.POST("", meterHandler.Create)
	}

	// Pengelola management (owner only)
	pengelola := authed.Group("/pengelola", middleware.RequireOwner())
	{
		pengelola.GET("", pengelolaHandler.List)
		pengelola.POST("", pengelolaHandler.Create)
		pengelola.PUT("/:id", pengelolaHandler.Update)
		pengelola.DELETE("/:id", pengelolaHandler.Delete)
	}

	// Dashboard stats
	authed.GET("/dashboard/stats", dashboardHandler.Stats)

	// Dependent dropdown options for forms
	forms := authed.Group("/forms")
	{
		forms.GET("/room-options", formHandler.RoomOptions)
		forms.GET("/tenant-options", formHandler.TenantOptions)
	}

	// WhatsApp outreach (owner only)
	wa := authed.Group("/whatsapp", middleware.RequireOwner())
	{
		wa.POST("/connect", whatsappHandler.Connect)
		wa.GET("/status", whatsappHandler.Status)
		wa.POST("/send", whatsappHandler.Broadcast)
		wa.GET("/messages", whatsappHandler.History)
	}

	// 12. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel background worker context
	cancel()
	log.Println("Server exited")
}
