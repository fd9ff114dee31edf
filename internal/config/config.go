package config

import (
	"os"
	"strconv"
	"time"
)

// BackendConfig holds the connection settings for the authoritative
// medical-records API.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// UploadConfig bounds exam file uploads. MaxFileBytes is checked per file
// before any network call; MaxBodyBytes caps the whole multipart request at
// the transport layer and must leave room for a multi-file batch.
type UploadConfig struct {
	MaxFileBytes int64
	MaxBodyBytes int64
}

// ReconcileConfig drives the post-upload reconciliation retries.
type ReconcileConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// AppConfig is the centralized configuration struct for the portal.
// It is populated from environment variables; sensitive values are not
// hardcoded.
type AppConfig struct {
	Port      string
	Backend   BackendConfig
	Upload    UploadConfig
	Reconcile ReconcileConfig
	ToastTTL  time.Duration
}

// Load reads configuration from environment variables. A .env file can be
// auto-loaded by importing: _ "github.com/joho/godotenv/autoload".
// Real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port: getEnv("PORT", "8080"),
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:5000"),
			Timeout: time.Duration(getEnvInt("BACKEND_TIMEOUT_SEC", 30)) * time.Second,
		},
		Upload: UploadConfig{
			MaxFileBytes: getEnvInt64("UPLOAD_MAX_FILE_BYTES", 16<<20),
			MaxBodyBytes: getEnvInt64("UPLOAD_MAX_BODY_BYTES", 64<<20),
		},
		Reconcile: ReconcileConfig{
			MaxRetries: getEnvInt("RECONCILE_MAX_RETRIES", 3),
			BaseDelay:  time.Duration(getEnvInt("RECONCILE_BASE_DELAY_MS", 500)) * time.Millisecond,
		},
		ToastTTL: time.Duration(getEnvInt("TOAST_TTL_SEC", 4)) * time.Second,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}
