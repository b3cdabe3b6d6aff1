package server

import (
	"log"
	"strings"
	"time"

	"github.com/cubehq/dailycube-backend/internal/config"
	"github.com/cubehq/dailycube-backend/internal/handler"
	"github.com/cubehq/dailycube-backend/internal/middleware"
	"github.com/cubehq/dailycube-backend/internal/repository"
	"github.com/cubehq/dailycube-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, signer *service.RewardSigner) *Server {
	clock := service.SystemClock()

	userRepo := repository.NewUserRepository(db)
	leaderboardRepo := repository.NewLeaderboardRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tierRepo := repository.NewTierRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	userSvc := service.NewUserService(userRepo, leaderboardRepo, clock)
	userHandler := handler.NewUserHandler(userSvc, clock)

	clickSvc := service.NewClickService(userRepo, leaderboardRepo, redisClient, clock)
	clickHandler := handler.NewClickHandler(clickSvc, clock)

	leaderboardSvc := service.NewLeaderboardService(leaderboardRepo, userRepo)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardSvc)

	taskSvc := service.NewTaskService(taskRepo, userRepo, notificationRepo, clock)
	taskHandler := handler.NewTaskHandler(taskSvc)

	tierSvc := service.NewTierService(userRepo, tierRepo, leaderboardRepo, cfg.TierLockWindow, clock)
	tierHandler := handler.NewTierHandler(tierSvc, clock)

	signSvc := service.NewSignService(userRepo, signer, redisClient, cfg.SignRateLimit)
	signHandler := handler.NewSignHandler(signSvc)

	rewardSvc := service.NewRewardService(userRepo, clock)
	rewardHandler := handler.NewRewardHandler(rewardSvc)

	notificationSvc := service.NewNotificationService(notificationRepo)
	webhookHandler := handler.NewWebhookHandler(notificationSvc)

	if signer != nil {
		log.Printf("reward signer address: %s", signer.Address().Hex())
	} else {
		log.Printf("reward signer not configured; /api/sign will report a configuration error")
	}

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	serviceAuth := middleware.NewServiceAuthMiddleware(cfg.InternalAPISecret)

	api := router.Group("/api")
	{
		api.POST("/user", userHandler.SyncUser)
		api.GET("/user", userHandler.GetUser)

		api.POST("/click", clickHandler.Click)

		api.GET("/leaderboard", leaderboardHandler.GetLeaderboard)

		api.GET("/tasks", taskHandler.ListCompleted)
		api.POST("/tasks", taskHandler.ClaimTask)

		api.GET("/tiers", tierHandler.ListTiers)
		api.POST("/tier", tierHandler.SetTier)

		api.POST("/sign", signHandler.Sign)

		api.POST("/webhook", webhookHandler.HandleLifecycle)

		internal := api.Group("")
		internal.Use(serviceAuth.RequireServiceToken())
		{
			internal.POST("/sync-rewards", rewardHandler.SyncRewards)
		}
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
