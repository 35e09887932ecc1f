package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/richxcame/fraudwatch/internal/accounts"
	"github.com/richxcame/fraudwatch/internal/analytics"
	"github.com/richxcame/fraudwatch/internal/crossings"
	"github.com/richxcame/fraudwatch/internal/devices"
	"github.com/richxcame/fraudwatch/internal/risk"
	"github.com/richxcame/fraudwatch/pkg/common"
	"github.com/richxcame/fraudwatch/pkg/config"
	"github.com/richxcame/fraudwatch/pkg/database"
	"github.com/richxcame/fraudwatch/pkg/health"
	"github.com/richxcame/fraudwatch/pkg/logger"
	"github.com/richxcame/fraudwatch/pkg/middleware"
	"github.com/richxcame/fraudwatch/pkg/redis"
	ws "github.com/richxcame/fraudwatch/pkg/websocket"
)

const serviceVersion = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load("dashboard")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Server.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Sentry
	if cfg.Sentry.Enabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Server.Environment,
			Release:     "fraudwatch@" + serviceVersion,
		}); err != nil {
			logger.Warn("sentry initialization failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Connect to PostgreSQL
	pool, err := database.NewPostgresPool(&cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("connected to PostgreSQL")

	// Run migrations
	if err := database.RunMigrations(cfg.Database.URL(), "migrations"); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("migrations up to date")

	// Connect to Redis
	redisClient, err := redis.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()
	logger.Info("connected to Redis")

	// Start WebSocket hub
	hub := ws.NewHub(logger.Get())
	go hub.Run()

	// Repositories
	deviceRepo := devices.NewRepository(pool)
	accountRepo := accounts.NewRepository(pool)
	crossingRepo := crossings.NewRepository(pool)
	analyticsRepo := analytics.NewRepository(pool)

	// Services
	deviceService := devices.NewService(deviceRepo)
	accountService := accounts.NewService(accountRepo)
	graphTTL := time.Duration(cfg.Cache.GraphTTLSeconds) * time.Second
	crossingService := crossings.NewService(crossingRepo, deviceRepo, accountRepo, redisClient, graphTTL)
	riskService := risk.NewService(deviceRepo, accountRepo, crossingService, hub)
	analyticsService := analytics.NewService(analyticsRepo)

	// Router
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics("dashboard"))

	if cfg.Sentry.Enabled {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.CORSOrigins, ",")
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Correlation-ID"}
	router.Use(cors.New(corsConfig))

	timeoutMiddleware := timeout.New(
		timeout.WithTimeout(time.Duration(cfg.Server.WriteTimeout)*time.Second),
		timeout.WithHandler(func(c *gin.Context) { c.Next() }),
		timeout.WithResponse(func(c *gin.Context) {
			common.ErrorResponse(c, http.StatusRequestTimeout, "request timed out")
		}),
	)
	router.Use(func(c *gin.Context) {
		// The timeout wrapper buffers responses, which breaks upgrades
		if c.IsWebsocket() {
			c.Next()
			return
		}
		timeoutMiddleware(c)
	})

	// Health check and metrics
	router.GET("/healthz", common.HealthCheckWithDeps("dashboard", serviceVersion, map[string]func() error{
		"database": health.DatabaseChecker(pool),
		"redis":    health.RedisChecker(redisClient.Client),
	}))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	devices.NewHandler(deviceService).RegisterRoutes(router)
	accounts.NewHandler(accountService).RegisterRoutes(router)
	crossings.NewHandler(crossingService).RegisterRoutes(router)
	risk.NewHandler(riskService).RegisterRoutes(router)
	analytics.NewHandler(analyticsService).RegisterRoutes(router)
	ws.NewHandler(hub, logger.Get()).RegisterRoutes(router)

	addr := ":" + cfg.Server.Port
	logger.Info("dashboard service starting", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
