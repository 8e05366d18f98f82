package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gamebook/gamebook-api/internal/config"
	domainRepo "github.com/gamebook/gamebook-api/internal/domain/repository"
	"github.com/gamebook/gamebook-api/internal/presentation/http/handler"
	"github.com/gamebook/gamebook-api/internal/presentation/http/middleware"
	"github.com/gamebook/gamebook-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Vendor   *handler.VendorHandler
	Customer *handler.CustomerHandler
	Receipt  *handler.ReceiptHandler
	Shortcut *handler.ShortcutHandler
	Market   *handler.MarketHandler
	Activity *handler.ActivityHandler
	Report   *handler.ReportHandler
	System   *handler.SystemHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	Logger          *zap.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
	SystemRepo      domainRepo.SystemStatusRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
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

		// Per-vendor rate limiter
		rateLimiter := middleware.NewVendorRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		// Admin routes sit outside the maintenance gate so the switch can
		// always be flipped back on
		registerAdminRoutes(protected, h)

		vendorRoutes := protected.Group("")
		vendorRoutes.Use(middleware.RequireRole(utils.RoleVendor))
		vendorRoutes.Use(middleware.Maintenance(deps.SystemRepo))
		registerVendorRoutes(vendorRoutes, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerVendorRoutes(vendor *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	vendor.POST("/auth/logout", h.Auth.Logout)
	vendor.PUT("/auth/password", h.Auth.ChangePassword)
	vendor.GET("/vendors/me", h.Vendor.Me)
	vendor.PUT("/vendors/me", h.Vendor.UpdateMe)

	// Retried writes with an Idempotency-Key replay the cached response;
	// receipt creation additionally requires the key
	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	registerCustomerRoutes(vendor, h, idempotency)
	registerReceiptRoutes(vendor, h, deps)
	registerMarketRoutes(vendor, h)
	registerReportRoutes(vendor, h)

	// Shortcuts
	vendor.POST("/shortcuts/incomes", idempotency, h.Shortcut.ApplyIncomes)

	// Activity feed
	vendor.GET("/activities", h.Activity.List)
}

func registerCustomerRoutes(vendor *gin.RouterGroup, h *Handlers, idempotency gin.HandlerFunc) {
	customers := vendor.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", idempotency, h.Customer.Create)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
		customers.PUT("/:id/balance", h.Customer.UpdateBalance)
	}
}

func registerReceiptRoutes(vendor *gin.RouterGroup, h *Handlers, deps *Deps) {
	receipts := vendor.Group("/receipts")
	{
		receipts.GET("", h.Receipt.List)
		// Receipt creation uses idempotency middleware to prevent duplicates
		receipts.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Receipt.Create)
		receipts.GET("/daily-totals", h.Receipt.DailyTotals)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.PUT("/:id", h.Receipt.Update)
		receipts.DELETE("/:id", h.Receipt.Delete)
	}
}

func registerMarketRoutes(vendor *gin.RouterGroup, h *Handlers) {
	market := vendor.Group("/market-details")
	{
		market.GET("", h.Market.ListDetails)
		market.POST("", h.Market.SaveDetails)
		market.GET("/lookup", h.Market.GetDetails)
		market.DELETE("", h.Market.DeleteDetailsByQuery)
		market.DELETE("/:id", h.Market.DeleteDetails)
	}

	daily := vendor.Group("/daily-values")
	{
		daily.GET("", h.Market.GetDailyValues)
		daily.POST("", h.Market.SaveDailyValues)
		daily.DELETE("", h.Market.DeleteDailyValues)
	}
}

func registerReportRoutes(vendor *gin.RouterGroup, h *Handlers) {
	reports := vendor.Group("/reports")
	{
		reports.GET("/summary/:period", h.Report.Summary)
		reports.GET("/monthly-trends", h.Report.MonthlyTrends)
		reports.GET("/top-customers", h.Report.TopCustomers)
		reports.GET("/income-by-game-type", h.Report.IncomeByGameType)
		reports.GET("/payment-stats", h.Report.PaymentStats)
		reports.GET("/customers/all-balances", h.Report.AllBalances)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(utils.RoleAdmin))
	{
		admin.GET("/vendors", h.Vendor.List)
		admin.POST("/vendors", h.Vendor.Create)
		admin.GET("/vendors/:id", h.Vendor.Get)
		admin.PUT("/vendors/:id", h.Vendor.Update)
		admin.DELETE("/vendors/:id", h.Vendor.Delete)
		admin.PUT("/vendors/:id/password", h.Vendor.ResetPassword)

		admin.GET("/system-status", h.System.GetStatus)
		admin.PUT("/system-status", h.System.UpdateStatus)

		admin.POST("/auth/logout", h.Auth.Logout)
		admin.PUT("/auth/password", h.Auth.ChangePassword)
	}
}
