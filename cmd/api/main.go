package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reelskills-backend/config"
	_ "reelskills-backend/docs" // Important for Swagger
	"reelskills-backend/internal/delivery/http/middleware"
	v1 "reelskills-backend/internal/delivery/http/v1"
	"reelskills-backend/internal/domain"
	"reelskills-backend/internal/repository/analyzer"
	"reelskills-backend/internal/repository/postgres"
	redisrepo "reelskills-backend/internal/repository/redis"
	"reelskills-backend/internal/usecase"
	"reelskills-backend/pkg/auth"
	"reelskills-backend/pkg/database"
	"reelskills-backend/pkg/genai"
	"reelskills-backend/pkg/logger"
	"reelskills-backend/pkg/redis"
	"reelskills-backend/pkg/security/antivirus"
	"reelskills-backend/pkg/storage"
	"reelskills-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
)

// @title           ReelSkills API
// @version         1.0
// @description     Skill portfolio, video verification and insight engine.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting reelskills backend", "port", cfg.Port)

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	redisClient, err = redis.Connect(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
	if err != nil {
		if !errors.Is(err, redis.ErrNotConfigured) {
			logger.Log.Warn("Redis unavailable, running without insight cache", "error", err)
		}
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// 5. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	insightCache := usecase.GuardInsightCache(redisrepo.NewInsightCache(redisClient, time.Duration(cfg.InsightCacheTTLSeconds)*time.Second))

	// 6. Setup external services
	var videoAnalyzer domain.VideoAnalyzer
	aiClient, err := genai.NewClient(genai.Config{
		BaseURL: cfg.AIBaseURL,
		APIKey:  cfg.AIAPIKey,
		Model:   cfg.AIModel,
		Timeout: time.Duration(cfg.AITimeoutSeconds) * time.Second,
	})
	if err != nil {
		logger.Log.Warn("Video analysis disabled", "error", err)
	} else {
		videoAnalyzer = analyzer.NewVideoAnalyzer(aiClient)
	}

	var videoStore domain.VideoStore
	uploader, err := storage.New(ctx, storage.Config{
		Provider:        storage.Provider(cfg.StorageProvider),
		Bucket:          cfg.VideoBucket,
		SupabaseURL:     cfg.SupabaseUrl,
		SupabaseKey:     cfg.SupabaseKey,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		PublicBaseURL:   cfg.S3PublicBaseURL,
	})
	if err != nil {
		logger.Log.Warn("Video storage disabled", "provider", cfg.StorageProvider, "error", err)
	} else {
		videoStore = uploader
	}

	var scanner antivirus.Scanner
	if cfg.ClamAVAddress != "" {
		clam := antivirus.NewClamAVScanner(cfg.ClamAVAddress, time.Duration(cfg.ClamAVTimeoutSeconds)*time.Second)
		if err := clam.Ping(ctx); err != nil {
			logger.Log.Warn("ClamAV not reachable at boot, uploads fail until it is", "error", err)
		}
		scanner = clam
	}

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	skillUC := usecase.NewSkillUsecase(skillRepo, insightCache, validate)
	insightUC := usecase.NewInsightUsecase(skillRepo, profileRepo, insightCache)
	videoUC := usecase.NewVideoUsecase(skillRepo, insightCache, videoAnalyzer, videoStore, scanner, cfg.MaxVideoUploadBytes())
	healthUC := usecase.NewHealthUsecase(dbPool, redisClient)

	// 8. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:    profileUC,
		SkillUC:      skillUC,
		InsightUC:    insightUC,
		VideoUC:      videoUC,
		HealthUC:     healthUC,
		RateLimiter:  middleware.NewRateLimiter(redisClient),
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
