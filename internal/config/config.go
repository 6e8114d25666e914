package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Upload  UploadConfig
	Cleanup CleanupConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type UploadConfig struct {
	MaxFileSize   int64
	MaxBatchFiles int
	Dir           string
	AllowedExts   []string
}

type CleanupConfig struct {
	MaxAge   time.Duration
	Interval time.Duration
}

// Enabled reports whether the optional result cache is configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "3456"),
			ReadTimeout: getDuration("READ_TIMEOUT", 30*time.Second),
			// Bulk archives stream for a while on large batches.
			WriteTimeout: getDuration("WRITE_TIMEOUT", 5*time.Minute),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			CacheTTL: getDuration("CACHE_DURATION", 24*time.Hour),
		},
		Upload: UploadConfig{
			MaxFileSize:   getEnvAsInt64("MAX_FILE_SIZE", 50*1024*1024), // 50MB
			MaxBatchFiles: getEnvAsInt("MAX_BATCH_FILES", 100),
			Dir:           getEnv("UPLOAD_PATH", "./uploads"),
			AllowedExts:   getEnvAsSlice("ALLOWED_EXTENSIONS", []string{"jpeg", "jpg", "png", "gif", "tiff", "tif", "bmp", "webp"}),
		},
		Cleanup: CleanupConfig{
			MaxAge:   getDuration("CLEANUP_MAX_AGE", time.Hour),
			Interval: getDuration("CLEANUP_INTERVAL", 10*time.Minute),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultVal
}

func getEnvAsSlice(key string, defaultVal []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultVal
}
