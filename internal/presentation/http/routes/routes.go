package routes

import (
	"time"

	"github.com/castrillo/cafepos-api/internal/config"
	"github.com/castrillo/cafepos-api/internal/domain/entity"
	domainRepo "github.com/castrillo/cafepos-api/internal/domain/repository"
	"github.com/castrillo/cafepos-api/internal/presentation/http/handler"
	"github.com/castrillo/cafepos-api/internal/presentation/http/middleware"
	"github.com/castrillo/cafepos-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Product  *handler.ProductHandler
	Checkout *handler.CheckoutHandler
	Sale     *handler.SaleHandler
	Report   *handler.ReportHandler
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
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.GET("/auth/me", h.Auth.Me)

	registerProductRoutes(protected, h)
	registerCartRoutes(protected, h)
	registerCheckoutRoutes(protected, h)
	registerSaleRoutes(protected, h, deps)
	registerReportRoutes(protected, h)
	registerUserRoutes(protected, h)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/categories", h.Product.Categories)
		products.GET("/top", h.Product.TopSellers)
		products.GET("/:id", h.Product.Get)

		// Catalog edits are an admin surface
		admin := products.Group("")
		admin.Use(middleware.RequireRole(entity.RoleAdmin))
		{
			admin.POST("", h.Product.Create)
			admin.PUT("/:id", h.Product.Update)
			admin.DELETE("/:id", h.Product.Delete)
		}
	}
}

func registerCartRoutes(protected *gin.RouterGroup, h *Handlers) {
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Checkout.GetCart)
		cart.POST("/items", h.Checkout.AddItem)
		cart.PATCH("/items", h.Checkout.ChangeQuantity)
		cart.DELETE("/items/:productId", h.Checkout.RemoveItem)
		cart.PUT("/tier", h.Checkout.SetTier)
		cart.DELETE("", h.Checkout.ClearCart)
	}
}

func registerCheckoutRoutes(protected *gin.RouterGroup, h *Handlers) {
	checkout := protected.Group("/checkout")
	{
		checkout.POST("", h.Checkout.OpenCheckout)
		checkout.GET("", h.Checkout.GetCheckout)
		checkout.POST("/method", h.Checkout.ChooseMethod)
		checkout.POST("/cash", h.Checkout.TenderCash)
		checkout.POST("/back", h.Checkout.Back)
		checkout.POST("/retry", h.Checkout.Retry)
		checkout.DELETE("", h.Checkout.Cancel)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		// Sale recording uses idempotency middleware so a retried request
		// after a transient failure cannot record twice
		sales.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Sale.Create)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	reports.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		reports.GET("/summary", h.Report.Summary)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
	}
}
