package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lucky-money/pkg/cache"
	"lucky-money/pkg/config"
	"lucky-money/pkg/database"
	"lucky-money/pkg/jwt"
	"lucky-money/pkg/logger"
	"lucky-money/pkg/middleware"
	"lucky-money/pkg/oidc"
	authHTTP "lucky-money/services/auth/internal/controller/http"
	"lucky-money/services/auth/internal/repo/persistent"
	"lucky-money/services/auth/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "lucky-money/services/auth/docs" // Swagger docs
)

const loginAttemptsPerMinute = 10

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	jwtService  *jwt.Service
	verifier    usecase.IdentityVerifier
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithEnv(cfg.AppEnv).With("service", "auth")

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (login rate limiting disabled)", err)
		redisClient = nil
	}

	var verifier usecase.IdentityVerifier
	if cfg.GoogleClientID != "" {
		verifier = oidc.NewVerifier(cfg.GoogleIssuer, cfg.GoogleClientID)
	} else {
		log.Warn("GOOGLE_CLIENT_ID is not set, Google sign-in disabled")
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		jwtService:  jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL),
		verifier:    verifier,
	}, nil
}

func (a *App) Run() error {
	userRepo := persistent.NewUserRepository(a.db)
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.verifier, a.log)
	authHandler := authHTTP.NewAuthHandler(authUseCase, a.jwtService.TTL(), !a.cfg.IsDevelopment())

	if !a.cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1/auth")
	{
		throttled := api.Group("")
		throttled.Use(middleware.RateLimitMiddleware(a.redisClient, loginAttemptsPerMinute, time.Minute))
		{
			throttled.POST("/register", authHandler.Register)
			throttled.POST("/login", authHandler.Login)
			throttled.POST("/google", authHandler.GoogleLogin)
		}
		api.POST("/logout", authHandler.Logout)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		{
			protected.GET("/me", authHandler.Me)
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.AuthServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Auth service starting on port %s", a.cfg.AuthServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down auth service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Auth service exited")
	return nil
}
