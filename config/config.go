package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBUrl             string
	SupabaseUrl       string
	SupabaseKey       string
	SupabaseJWTSecret string
	FrontendURL       string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitUploadThreshold int
	InsightCacheTTLSeconds   int
	// Generative AI (video analysis)
	AIBaseURL        string
	AIAPIKey         string
	AIModel          string
	AITimeoutSeconds int
	// Video storage
	StorageProvider   string // supabase | s3 | wasabi
	VideoBucket       string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	S3PublicBaseURL   string
	MaxVideoUploadMB  int
	// Malware scanning (clamd), disabled when empty
	ClamAVAddress        string
	ClamAVTimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	// Load .env file (local development only; ignored when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		DBUrl: getEnv("DATABASE_URL", ""),
		// Strip trailing slash to avoid double slashes (e.g. .co//auth)
		SupabaseUrl:       strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseKey:       getEnv("SUPABASE_KEY", getEnv("SUPABASE_SERVICE_ROLE_KEY", "")),
		SupabaseJWTSecret: getEnv("SUPABASE_JWT_SECRET", getEnv("SUPABASE_JWT_KEY", "")),
		FrontendURL:       strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
		RateLimitUploadThreshold: getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", 5),   // 5 uploads/analyses per window
		InsightCacheTTLSeconds:   getEnvInt("INSIGHT_CACHE_TTL_SECONDS", 600),
		// Generative AI
		AIBaseURL:        strings.TrimRight(getEnv("AI_API_BASE_URL", "https://api.openai.com/v1"), "/"),
		AIAPIKey:         getEnv("AI_API_KEY", ""),
		AIModel:          getEnv("AI_MODEL", "gpt-4o-mini"),
		AITimeoutSeconds: getEnvInt("AI_TIMEOUT_SECONDS", 60),
		// Video storage
		StorageProvider:   strings.ToLower(getEnv("STORAGE_PROVIDER", "supabase")),
		VideoBucket:       getEnv("VIDEO_BUCKET", "skill-videos"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Region:          getEnv("S3_REGION", "ap-southeast-1"),
		S3PublicBaseURL:   getEnv("S3_PUBLIC_BASE_URL", ""),
		MaxVideoUploadMB:  getEnvInt("MAX_VIDEO_UPLOAD_MB", 100),
		// Malware scanning
		ClamAVAddress:        getEnv("CLAMAV_ADDRESS", ""),
		ClamAVTimeoutSeconds: getEnvInt("CLAMAV_TIMEOUT_SECONDS", 60),
	}

	// Basic checks so misconfiguration shows up at boot
	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback and insights are not cached.")
	}
	if cfg.AIAPIKey == "" {
		log.Println("WARNING: AI_API_KEY not configured. Video analysis is disabled.")
	}

	return cfg, nil
}

// MaxVideoUploadBytes is the upload limit in bytes.
func (c *Config) MaxVideoUploadBytes() int64 {
	return int64(c.MaxVideoUploadMB) << 20
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
