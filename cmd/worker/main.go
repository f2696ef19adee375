package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/frontdeskai/receptionist-core/internal/cache"
	"github.com/frontdeskai/receptionist-core/internal/config"
	"github.com/frontdeskai/receptionist-core/internal/core/llm"
	"github.com/frontdeskai/receptionist-core/internal/core/pipeline"
	"github.com/frontdeskai/receptionist-core/internal/core/regen"
	"github.com/frontdeskai/receptionist-core/internal/repositories"
	"github.com/frontdeskai/receptionist-core/internal/shared/database"
	"github.com/frontdeskai/receptionist-core/internal/shared/utils"
)

// drainTimeout bounds one queue pass so a stuck backend cannot pile up
// overlapping runs.
const drainTimeout = 10 * time.Minute

func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Println("🚀 Starting receptionist-core worker")

	// Init database
	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()

	// Init prompt cache
	promptCache := cache.NewPromptCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer promptCache.Close()

	// Init generation client
	llmClient, err := llm.NewClient(llm.LoadProviderFromEnv())
	if err != nil {
		log.Fatalf("❌ Failed to init generation client: %v", err)
	}

	// Init pipeline and processor
	businessRepo := repositories.NewBusinessRepo(db.GORM)
	artifactRepo := repositories.NewArtifactRepo(db.GORM)
	regenRepo := repositories.NewRegenRepo(db.GORM)

	pipelineService := pipeline.NewService(businessRepo, artifactRepo, llmClient, promptCache)
	processor := regen.NewProcessor(regenRepo, pipelineService, cfg.WorkerBatch)

	// Schedule queue drains
	var running int32
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.WorkerSchedule, func() {
		if !atomic.CompareAndSwapInt32(&running, 0, 1) {
			log.Println("⏭️  Previous drain still running, skipping tick")
			return
		}
		defer atomic.StoreInt32(&running, 0)

		ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
		defer cancel()

		report, err := processor.ProcessPending(ctx)
		if err != nil {
			log.Printf("❌ Queue drain error: %v (processed=%d failed=%d)", err, report.Processed, report.Failed)
			return
		}
		if report.Processed > 0 || report.Failed > 0 {
			log.Printf("✅ Queue drained: processed=%d failed=%d", report.Processed, report.Failed)
		}
	})
	if err != nil {
		log.Fatalf("❌ Invalid worker schedule %q: %v", cfg.WorkerSchedule, err)
	}

	scheduler.Start()
	log.Printf("⏰ Worker scheduled: %s (batch=%d)", cfg.WorkerSchedule, cfg.WorkerBatch)

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("⏰ Stopping worker...")
	<-scheduler.Stop().Done()
	log.Println("✅ Worker stopped")
}
