package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	cartapp "github.com/nexashop/backend/internal/application/cart"
	catalogapp "github.com/nexashop/backend/internal/application/catalog"
	identityapp "github.com/nexashop/backend/internal/application/identity"
	orderingapp "github.com/nexashop/backend/internal/application/ordering"
	paymentapp "github.com/nexashop/backend/internal/application/payment"
	domcatalog "github.com/nexashop/backend/internal/domain/catalog"
	domidentity "github.com/nexashop/backend/internal/domain/identity"
	domordering "github.com/nexashop/backend/internal/domain/ordering"
	"github.com/nexashop/backend/internal/infrastructure/auth"
	"github.com/nexashop/backend/internal/infrastructure/billing"
	"github.com/nexashop/backend/internal/infrastructure/cache"
	"github.com/nexashop/backend/internal/infrastructure/config"
	"github.com/nexashop/backend/internal/infrastructure/logger"
	"github.com/nexashop/backend/internal/infrastructure/persistence"
	"github.com/nexashop/backend/internal/infrastructure/persistence/memory"
	"github.com/nexashop/backend/internal/infrastructure/receipt"
	"github.com/nexashop/backend/internal/infrastructure/seed"
	"github.com/nexashop/backend/internal/infrastructure/storage"
	"github.com/nexashop/backend/internal/interfaces/http/handler"
	"github.com/nexashop/backend/internal/interfaces/http/middleware"
	"github.com/nexashop/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

// repositories groups the entity store implementations behind their
// domain interfaces, regardless of the configured backend.
type repositories struct {
	products   domcatalog.ProductRepository
	categories domcatalog.CategoryRepository
	banners    domcatalog.BannerRepository
	users      domidentity.UserRepository
	orders     domordering.OrderRepository
	orderItems domordering.OrderItemRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync(log) }()

	log.Info("starting nexashop backend",
		zap.String("version", version),
		zap.String("env", cfg.App.Env),
		zap.String("store_backend", cfg.Store.Backend),
		zap.String("cart_backend", cfg.Cart.Backend),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	repos, dbCloser, err := buildRepositories(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize entity store", zap.Error(err))
	}
	if dbCloser != nil {
		defer dbCloser()
	}

	ctx := context.Background()

	if cfg.Store.Seed {
		if err := seed.Run(ctx, seed.Repositories{
			Products:   repos.products,
			Categories: repos.categories,
			Banners:    repos.banners,
			Users:      repos.users,
		}, log); err != nil {
			log.Fatal("failed to seed entity store", zap.Error(err))
		}
	}

	var redisClient *redis.Client
	needsRedis := cfg.Cart.Backend == "redis"
	if needsRedis {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
	}

	var cartStore cache.CartStore
	var blacklist auth.TokenBlacklist
	if redisClient != nil {
		cartStore = cache.NewRedisCartStore(redisClient, cfg.Cart.TTL)
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
	} else {
		cartStore = cache.NewInMemoryCartStore(cfg.Cart.TTL)
		blacklist = auth.NewInMemoryTokenBlacklist()
	}
	defer cartStore.Close()

	gateway, err := buildGateway(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize payment gateway", zap.Error(err))
	}

	imageStore, err := buildImageStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to initialize image storage", zap.Error(err))
	}

	var pdfRenderer receipt.PDFRenderer = receipt.DisabledRenderer{}
	if cfg.Receipt.PDFEnabled {
		renderer := receipt.NewChromedpRenderer(cfg.Receipt.RenderTimeout, log)
		defer renderer.Close()
		pdfRenderer = renderer
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	handlers := router.Handlers{
		System: handler.NewSystemHandler(version),
		Auth: handler.NewAuthHandler(
			identityapp.NewAuthService(repos.users, jwtService, blacklist, log)),
		Product: handler.NewProductHandler(
			catalogapp.NewProductService(repos.products, repos.categories, log),
			catalogapp.NewImageService(repos.products, imageStore, log)),
		Category: handler.NewCategoryHandler(
			catalogapp.NewCategoryService(repos.categories, repos.products, log)),
		Banner: handler.NewBannerHandler(
			catalogapp.NewBannerService(repos.banners, log)),
		Cart: handler.NewCartHandler(
			cartapp.NewCartService(cartStore, repos.products, log)),
		Order: handler.NewOrderHandler(
			orderingapp.NewOrderService(repos.orders, repos.orderItems, repos.products, repos.users, log),
			pdfRenderer),
		Payment: handler.NewPaymentHandler(
			paymentapp.NewPaymentService(gateway, repos.products, cfg.Stripe.Currency, log)),
		Webhook: handler.NewWebhookHandler(
			paymentapp.NewWebhookService(gateway, repos.orders, log)),
	}

	routerCfg := router.Config{
		Logger:     log,
		JWTService: jwtService,
		Blacklist:  blacklist,
		MaxBody:    cfg.HTTP.MaxBodySize,
	}
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig := middleware.DefaultCORSConfig()
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
		routerCfg.CORS = &corsConfig
	}
	if cfg.HTTP.RateLimitEnabled {
		routerCfg.RateLimit = cfg.HTTP.RateLimitRequests
		routerCfg.RateWindow = cfg.HTTP.RateLimitWindow
	}

	engine := router.Setup(routerCfg, handlers)
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}

// buildRepositories selects the entity store backend. The returned
// closer is nil for the in-memory backend.
func buildRepositories(cfg *config.Config, log *zap.Logger) (repositories, func(), error) {
	if cfg.Store.Backend == "memory" {
		orderItems := memory.NewOrderItemRepository()
		return repositories{
			products:   memory.NewProductRepository(),
			categories: memory.NewCategoryRepository(),
			banners:    memory.NewBannerRepository(),
			users:      memory.NewUserRepository(),
			orders:     memory.NewOrderRepository(orderItems),
			orderItems: orderItems,
		}, nil, nil
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	var db *persistence.Database
	var err error
	switch cfg.Store.Backend {
	case "sqlite":
		db, err = persistence.NewSQLite(cfg.Store.SQLitePath, gormLog)
		if err == nil {
			err = db.AutoMigrate()
		}
	case "postgres":
		db, err = persistence.NewPostgres(&cfg.Database, gormLog)
	}
	if err != nil {
		return repositories{}, nil, err
	}

	closer := func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}

	return repositories{
		products:   persistence.NewGormProductRepository(db.DB),
		categories: persistence.NewGormCategoryRepository(db.DB),
		banners:    persistence.NewGormBannerRepository(db.DB),
		users:      persistence.NewGormUserRepository(db.DB),
		orders:     persistence.NewGormOrderRepository(db.DB),
		orderItems: persistence.NewGormOrderItemRepository(db.DB),
	}, closer, nil
}

// buildGateway uses the real Stripe client when a secret key is
// configured and the offline stub otherwise.
func buildGateway(cfg *config.Config, log *zap.Logger) (billing.PaymentGateway, error) {
	if cfg.Stripe.SecretKey == "" {
		log.Warn("no stripe secret key configured, using stub payment gateway")
		return billing.NewStubGateway(log), nil
	}
	return billing.NewStripeGateway(cfg.Stripe, log)
}

func buildImageStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) (storage.ImageStorage, error) {
	if cfg.Storage.Backend == "s3" {
		store, err := storage.NewS3ImageStorage(cfg.Storage, log)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return store, nil
	}
	return storage.NewStubImageStorage(cfg.Storage.PublicBaseURL), nil
}
