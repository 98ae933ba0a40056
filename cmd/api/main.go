package main

import (
	app "pixvault/internal/app"
	"pixvault/pkg/assethost"
	"pixvault/pkg/cache"
	"pixvault/pkg/config"
	"pixvault/pkg/database"
	"pixvault/pkg/logger"
)

// @title           PixVault Gallery API
// @version         1.0
// @description     Image gallery backend with category management and S3-backed asset storage

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	assetClient, err := assethost.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create asset host client: %v", err)
		panic(err)
	}

	app.Run(cfg, log, db, assetClient, redisClient)
}
