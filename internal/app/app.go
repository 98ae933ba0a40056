package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	galleryHTTP "pixvault/internal/controller/http"
	"pixvault/internal/repo/persistent"
	"pixvault/internal/usecase"
	"pixvault/pkg/assethost"
	"pixvault/pkg/config"
	"pixvault/pkg/logger"
	"pixvault/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "pixvault/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, assetClient *assethost.Client, redisClient *redis.Client) {
	// Initialize repositories
	categoryRepo := persistent.NewCategoryRepository(db)
	imageRepo := persistent.NewImageRepository(db)

	// Initialize use cases
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, imageRepo, assetClient, log)
	imageUseCase := usecase.NewImageUseCase(imageRepo, categoryRepo, categoryUseCase, assetClient, log)

	// Initialize HTTP handlers
	categoryHandler := galleryHTTP.NewCategoryHandler(categoryUseCase, log, cfg.IsDevelopment())
	imageHandler := galleryHTTP.NewImageHandler(imageUseCase, log, cfg.IsDevelopment())

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		api.POST("/categories", categoryHandler.CreateCategory)
		api.GET("/categories", categoryHandler.ListCategories)
		api.GET("/categories/search", categoryHandler.SearchCategories)
		api.GET("/categories/stats", categoryHandler.CategoryStats)
		api.GET("/categories/name/:name", categoryHandler.GetCategoryByName)
		api.GET("/categories/:id", categoryHandler.GetCategory)
		api.PATCH("/categories/:id", categoryHandler.UpdateCategory)
		api.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		api.POST("/images", imageHandler.UploadImage)
		api.POST("/images/with-category", imageHandler.UploadImageWithCategory)
		api.GET("/images", imageHandler.ListImages)
		api.GET("/images/homepage", imageHandler.HomepageImages)
		api.GET("/images/featured", imageHandler.FeaturedImages)
		api.GET("/images/search", imageHandler.SearchImages)
		api.GET("/images/stats", imageHandler.ImageStats)
		api.GET("/images/category/:name", imageHandler.ImagesByCategoryName)
		api.GET("/images/:id", imageHandler.GetImage)
		api.PATCH("/images/:id", imageHandler.UpdateImage)
		api.DELETE("/images/:id", imageHandler.DeleteImage)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Gallery API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down gallery API...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Gallery API exited")
}
