package v1

import (
	"time"

	"reelskills-backend/config"
	"reelskills-backend/internal/delivery/http/middleware"
	"reelskills-backend/internal/domain"
	"reelskills-backend/internal/usecase"
	"reelskills-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC    domain.ProfileUsecase
	SkillUC      domain.SkillUsecase
	InsightUC    domain.InsightUsecase
	VideoUC      domain.VideoUsecase
	HealthUC     usecase.HealthUsecase
	RateLimiter  *middleware.RateLimiter
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	cfg := deps.Config
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	limiter := deps.RateLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(nil)
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(limiter.Middleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	v1.GET("/health", healthCheck(deps.HealthUC))

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, cfg, deps.ProfileUC))
	{
		NewProfileHandler(protected, deps.ProfileUC, deps.InsightUC)
		NewSkillHandler(protected, deps.SkillUC)
		NewVideoHandler(protected, deps.VideoUC, cfg.MaxVideoUploadBytes(),
			limiter.Middleware(middleware.VideoRateLimitConfig(cfg.RateLimitUploadThreshold, window)))
		NewInsightHandler(protected, deps.InsightUC)
	}

	return r
}
