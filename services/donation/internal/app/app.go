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
	"lucky-money/pkg/models"
	"lucky-money/pkg/queue"
	"lucky-money/pkg/vietqr"
	donationHTTP "lucky-money/services/donation/internal/controller/http"
	"lucky-money/services/donation/internal/repo/persistent"
	"lucky-money/services/donation/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "lucky-money/services/donation/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	queueClient *queue.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithEnv(cfg.AppEnv).With("service", "donation")

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (donation rate limiting disabled)", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable: %v (activities will not be published)", err)
		queueClient = nil
	}

	if cfg.BankAccountNo == "" {
		log.Warn("BANK_ACCOUNT_NO is not set, QR codes will not be scannable")
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		queueClient: queueClient,
		jwtService:  jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL),
	}, nil
}

func (a *App) Run() error {
	// Repositories
	donationRepo := persistent.NewDonationRepository(a.db)
	catalogRepo := persistent.NewCatalogRepository(a.db)
	goalRepo := persistent.NewGoalRepository(a.db)
	activityRepo := persistent.NewActivityRepository(a.db)
	reconciliationStore := persistent.NewReconciliationStore(a.db)

	var publisher usecase.ActivityPublisher
	if a.queueClient != nil {
		publisher = a.queueClient
	}

	qrBuilder := vietqr.NewBuilder(vietqr.Bank{
		Code:        a.cfg.BankCode,
		AccountNo:   a.cfg.BankAccountNo,
		AccountName: a.cfg.BankAccountName,
	}, a.cfg.QRTemplate, a.cfg.TransferMemoTag)

	// Use cases
	donationUseCase := usecase.NewDonationUseCase(donationRepo, catalogRepo, goalRepo, qrBuilder, a.log)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, a.log)
	goalUseCase := usecase.NewGoalUseCase(goalRepo, publisher, a.log)
	activityUseCase := usecase.NewActivityUseCase(activityRepo, a.log)
	adminUseCase := usecase.NewAdminUseCase(donationRepo, reconciliationStore, publisher, qrBuilder.MemoTag(), a.log)

	// Handlers
	donationHandler := donationHTTP.NewDonationHandler(donationUseCase, catalogUseCase, a.log)
	goalHandler := donationHTTP.NewGoalHandler(goalUseCase, activityUseCase, a.log)
	adminHandler := donationHTTP.NewAdminHandler(adminUseCase, a.log)

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

	api := r.Group("/api/v1")
	{
		api.GET("/donations/types", donationHandler.ListTypes)
		api.POST("/donations",
			middleware.OptionalAuth(a.jwtService),
			middleware.RateLimitMiddleware(a.redisClient, a.cfg.DonationRateLimit, time.Minute),
			donationHandler.CreateDonation,
		)
		api.GET("/donations/:id", donationHandler.GetDonation)
		api.GET("/payment/qr", donationHandler.GetPaymentQR)
		api.GET("/goals", goalHandler.ListGoals)
		api.GET("/activities", goalHandler.ListActivities)

		admin := api.Group("/admin")
		admin.Use(
			middleware.AuthMiddleware(a.jwtService, middleware.WithSignInRedirect(a.cfg.SignInPath)),
			middleware.RequireRole(string(models.RoleAdmin), "/"),
		)
		{
			admin.GET("/donations", adminHandler.ListDonations)
			admin.POST("/donations/:id/approve", adminHandler.ApproveDonation)
			admin.POST("/donations/:id/reject", adminHandler.RejectDonation)
			admin.POST("/goals", goalHandler.CreateGoal)
			admin.POST("/transfers/match", adminHandler.MatchTransfer)
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Donation service starting on port %s", a.cfg.ServerPort)
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
	a.log.Info("Shutting down donation service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	a.log.Info("Donation service exited")
	return nil
}
