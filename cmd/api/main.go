package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/frontdeskai/receptionist-core/internal/cache"
	"github.com/frontdeskai/receptionist-core/internal/config"
	"github.com/frontdeskai/receptionist-core/internal/core/llm"
	"github.com/frontdeskai/receptionist-core/internal/core/pipeline"
	"github.com/frontdeskai/receptionist-core/internal/core/regen"
	"github.com/frontdeskai/receptionist-core/internal/handlers"
	"github.com/frontdeskai/receptionist-core/internal/repositories"
	"github.com/frontdeskai/receptionist-core/internal/shared/database"
	"github.com/frontdeskai/receptionist-core/internal/shared/utils"

	_ "github.com/frontdeskai/receptionist-core/docs"
)

// @title Receptionist Core API
// @version 1.0
// @description Prompt generation and regeneration API for the AI phone receptionist
// @contact.name API Support
// @contact.email support@frontdeskai.com
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting receptionist-core API on port %s", cfg.Port)

	// Init database
	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()

	// Init prompt cache (optional, degrades to misses without Redis)
	promptCache := cache.NewPromptCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer promptCache.Close()

	// Init generation client
	llmClient, err := llm.NewClient(llm.LoadProviderFromEnv())
	if err != nil {
		log.Fatalf("❌ Failed to init generation client: %v", err)
	}

	// Init repositories
	businessRepo := repositories.NewBusinessRepo(db.GORM)
	artifactRepo := repositories.NewArtifactRepo(db.GORM)
	regenRepo := repositories.NewRegenRepo(db.GORM)
	callerRepo := repositories.NewCallerRepo(db.GORM)

	// Init services
	pipelineService := pipeline.NewService(businessRepo, artifactRepo, llmClient, promptCache)
	regenService := regen.NewService(regenRepo, pipelineService)
	processor := regen.NewProcessor(regenRepo, pipelineService, cfg.WorkerBatch)

	// Init handlers
	healthHandler := handlers.NewHealthHandler(regenService)
	promptHandler := handlers.NewPromptHandler(artifactRepo, regenService, promptCache)
	queueHandler := handlers.NewQueueHandler(regenService, processor)
	callerHandler := handlers.NewCallerHandler(callerRepo)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Receptionist Core API",
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// Prompt routes
	app.Get("/businesses/:id/prompt", promptHandler.GetActivePrompt)
	app.Get("/businesses/:id/prompt/versions", promptHandler.ListPromptVersions)
	app.Post("/businesses/:id/regenerate", promptHandler.RegeneratePrompt)

	// Queue routes
	app.Post("/businesses/:id/regenerations", queueHandler.EnqueueRegeneration)
	app.Post("/queue/process", queueHandler.ProcessQueue)
	app.Get("/queue/status", queueHandler.GetQueueStatus)

	// Caller routes
	app.Get("/businesses/:id/caller-context", callerHandler.GetCallerContext)
	app.Post("/businesses/:id/calls", callerHandler.RecordCall)

	// Start server
	log.Printf("✅ receptionist-core API running at :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
