package main

import (
	"log"

	"github.com/cubehq/dailycube-backend/internal/config"
	"github.com/cubehq/dailycube-backend/internal/model"
	"github.com/cubehq/dailycube-backend/internal/server"
	"github.com/cubehq/dailycube-backend/internal/service"
	"github.com/cubehq/dailycube-backend/pkg/database"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := seedTierConfigs(db); err != nil {
		log.Fatalf("failed to seed tier configs: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Println("REDIS_URL not set, running without the redis click guard")
	}

	var signer *service.RewardSigner
	if cfg.SignerPrivateKey != "" {
		signer, err = service.NewRewardSigner(cfg.SignerPrivateKey, service.SystemClock())
		if err != nil {
			// A present-but-broken key is a deployment mistake, not a
			// degraded mode.
			log.Fatalf("failed to initialize reward signer: %v", err)
		}
	} else {
		log.Println("SIGNER_PRIVATE_KEY not set, score attestation disabled")
	}

	srv := server.NewServer(db, redisClient, cfg, signer)

	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.TaskCompletion{},
		&model.TierConfig{},
		&model.NotificationToken{},
	)
}

func seedTierConfigs(db *gorm.DB) error {
	defaultTiers := []model.TierConfig{
		{
			Version:         1,
			ContractAddress: "0x4200000000000000000000000000000000000011",
			StreamShare:     decimal.NewFromFloat(0.5),
			UnitPrice:       decimal.RequireFromString("0.0000025"),
		},
		{
			Version:         2,
			ContractAddress: "0x4200000000000000000000000000000000000012",
			StreamShare:     decimal.NewFromFloat(0.8),
			UnitPrice:       decimal.RequireFromString("0.000004"),
		},
	}

	for _, tier := range defaultTiers {
		var count int64
		if err := db.Model(&model.TierConfig{}).
			Where("version = ?", tier.Version).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&tier).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
