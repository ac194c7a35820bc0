package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nexashop/backend/internal/infrastructure/auth"
	"github.com/nexashop/backend/internal/infrastructure/logger"
	"github.com/nexashop/backend/internal/interfaces/http/handler"
	"github.com/nexashop/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	System   *handler.SystemHandler
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Category *handler.CategoryHandler
	Banner   *handler.BannerHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
	Payment  *handler.PaymentHandler
	Webhook  *handler.WebhookHandler
}

// Config carries the cross-cutting dependencies of the HTTP surface.
type Config struct {
	Logger     *zap.Logger
	JWTService *auth.JWTService
	Blacklist  auth.TokenBlacklist
	CORS       *middleware.CORSConfig // nil uses the permissive default
	MaxBody    int64                  // request body cap, 0 defaults to 10MB
	RateLimit  int                    // requests per window per client, 0 disables
	RateWindow time.Duration          // defaults to one minute
}

// Setup builds the gin engine with middleware and all API routes.
func Setup(cfg Config, h Handlers) *gin.Engine {
	corsConfig := middleware.DefaultCORSConfig()
	if cfg.CORS != nil {
		corsConfig = *cfg.CORS
	}
	maxBody := cfg.MaxBody
	if maxBody <= 0 {
		maxBody = 10 << 20
	}

	engine := gin.New()
	// RequestID must precede the request logger so every log line
	// carries the ID.
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(cfg.Logger),
		logger.Recovery(cfg.Logger),
		middleware.CORSWithConfig(corsConfig),
		middleware.Secure(),
		middleware.BodyLimit(maxBody),
	)

	if cfg.RateLimit > 0 {
		window := cfg.RateWindow
		if window <= 0 {
			window = time.Minute
		}
		engine.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit, window)))
	}

	authCfg := middleware.AuthConfig{
		JWTService: cfg.JWTService,
		Blacklist:  cfg.Blacklist,
		Logger:     cfg.Logger,
	}

	engine.GET("/health", h.System.Health)

	api := engine.Group("/api")

	// Public storefront reads. A bearer token is not required, but a
	// valid one still attaches its identity for request logging.
	public := api.Group("", middleware.OptionalAuthenticate(authCfg))
	public.GET("/categories", h.Category.List)
	public.GET("/categories/:slug", h.Category.GetBySlug)
	public.GET("/products", h.Product.List)
	public.GET("/products/:id", h.Product.Get)
	public.GET("/banners", h.Banner.ListActive)

	// Payment provider callbacks carry no bearer token.
	api.POST("/webhook", h.Webhook.Handle)

	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)

	// Routes requiring a valid access token.
	authed := api.Group("", middleware.Authenticate(authCfg))
	authed.POST("/auth/logout", h.Auth.Logout)
	authed.GET("/auth/me", h.Auth.Me)

	authed.GET("/cart", h.Cart.Get)
	authed.POST("/cart/items", h.Cart.AddItem)
	authed.PUT("/cart/items/:productId", h.Cart.SetQuantity)
	authed.DELETE("/cart/items/:productId", h.Cart.RemoveItem)
	authed.DELETE("/cart", h.Cart.Clear)

	authed.POST("/create-payment-intent", h.Payment.CreateIntent)

	authed.POST("/orders", h.Order.Create)
	authed.GET("/orders", h.Order.List)
	authed.GET("/orders/:id", h.Order.Get)
	authed.GET("/orders/:id/receipt", h.Order.Receipt)

	// Admin-only catalog and order management.
	admin := api.Group("", middleware.Authenticate(authCfg), middleware.RequireAdmin())
	admin.POST("/products", h.Product.Create)
	admin.PUT("/products/:id", h.Product.Update)
	admin.DELETE("/products/:id", h.Product.Delete)
	admin.POST("/products/:id/image", h.Product.UploadImage)

	admin.POST("/categories", h.Category.Create)
	admin.PUT("/categories/:id", h.Category.Update)
	admin.DELETE("/categories/:id", h.Category.Delete)

	admin.GET("/admin/banners", h.Banner.ListAll)
	admin.POST("/banners", h.Banner.Create)
	admin.PUT("/banners/:id", h.Banner.Update)
	admin.DELETE("/banners/:id", h.Banner.Delete)

	admin.PUT("/orders/:id/status", h.Order.UpdateStatus)

	return engine
}
