package main

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"pixvault/internal/repo/persistent"
	"pixvault/internal/usecase"
	"pixvault/pkg/assethost"
	"pixvault/pkg/config"
	"pixvault/pkg/database"
	"pixvault/pkg/logger"
)

var seedCategories = []struct {
	name        string
	description string
	imageCount  int
}{
	{"weddings", "Ceremonies and receptions", 3},
	{"portraits", "Studio and outdoor portraits", 3},
	{"landscapes", "Wide open spaces", 2},
	{"events", "Corporate and private events", 2},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	assetClient, err := assethost.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create asset host client: %v", err)
		panic(err)
	}

	categoryRepo := persistent.NewCategoryRepository(db)
	imageRepo := persistent.NewImageRepository(db)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, imageRepo, assetClient, log)
	imageUC := usecase.NewImageUseCase(imageRepo, categoryRepo, categoryUC, assetClient, log)

	if err := seedGallery(categoryUC, imageUC, log); err != nil {
		log.Error("Failed to seed gallery: %v", err)
		panic(err)
	}

	log.Info("Gallery seeded successfully!")
}

func seedGallery(categoryUC usecase.CategoryUseCase, imageUC usecase.ImageUseCase, log *logger.Logger) error {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	for _, seed := range seedCategories {
		category, err := categoryUC.Create(seed.name, seed.description)
		if err != nil {
			// Category may survive a previous run; reuse it.
			category, err = categoryUC.GetByName(seed.name)
			if err != nil {
				return fmt.Errorf("category %s: %w", seed.name, err)
			}
			log.Info("Category %s already exists, reusing", seed.name)
		} else {
			log.Info("Created category: %s", category.Name)
		}

		for i := 0; i < seed.imageCount; i++ {
			data, err := fetchSampleImage(httpClient, 800+i)
			if err != nil {
				log.Error("Failed to fetch sample image: %v", err)
				continue
			}

			image, err := imageUC.Upload(data, usecase.ImageUploadMeta{
				Title:        fmt.Sprintf("%s sample %d", seed.name, i+1),
				Description:  fmt.Sprintf("Seeded demo image for the %s gallery", seed.name),
				Tags:         []string{"demo", seed.name},
				IsFeatured:   i == 0,
				OriginalName: fmt.Sprintf("seed_%d.jpg", i),
				ContentType:  "image/jpeg",
			}, category.ID)
			if err != nil {
				log.Error("Failed to upload seed image for %s: %v", seed.name, err)
				continue
			}
			log.Info("Uploaded seed image: %s (%s)", image.Title, image.AssetKey)
			time.Sleep(200 * time.Millisecond)
		}
	}

	return nil
}

func fetchSampleImage(client *http.Client, size int) ([]byte, error) {
	url := fmt.Sprintf("https://picsum.photos/%d", size)
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sample image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sample image source returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("received empty image data")
	}
	return data, nil
}
