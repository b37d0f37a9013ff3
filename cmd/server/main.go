package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"shopassist/internal/adapter/api"
	"shopassist/internal/adapter/client"
	"shopassist/internal/adapter/store"
	"shopassist/internal/config"
	"shopassist/internal/domain/repository"
	"shopassist/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	log.Printf("Groq model: %s", cfg.GroqModel)
	log.Printf("Catalog source: %s", cfg.CatalogBaseURL)

	// Catalog: fetched once, cached for the process lifetime.
	catalog := store.NewCatalogCache(store.NewDummyJSONSource(cfg.CatalogBaseURL))

	// Rate limiting is optional; without Redis, chat is unlimited.
	var limiter repository.RequestLimiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		limiter = store.NewRedisLimiter(rdb, cfg.RateLimit, cfg.RateWindow)
		log.Printf("Rate limiting enabled: %d requests per %s", cfg.RateLimit, cfg.RateWindow)
	}

	// The Groq key can arrive per request, so generators are built per request.
	factory := repository.TextGeneratorFactory(func(apiKey string) repository.TextGenerator {
		return client.NewGroqClient(apiKey, cfg.GroqModel, cfg.GroqBaseURL)
	})

	orchestrator := usecase.NewOrchestrator(catalog, limiter, factory, cfg.GroqAPIKey)

	// Pre-warm the catalog so the first chat doesn't pay fetch latency.
	// A failure here is harmless: the cache stays empty and retries on demand.
	go func() {
		warmCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := catalog.Products(warmCtx); err != nil {
			log.Printf("[WARMER] catalog warm-up failed: %v", err)
		} else {
			log.Println("[WARMER] catalog cache populated")
		}
	}()

	app := fiber.New(fiber.Config{
		AppName: "ShopAssist Gateway",
	})

	handler := api.NewChatHandler(orchestrator)
	api.SetupRouter(app, handler)

	log.Printf("ShopAssist Gateway running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
