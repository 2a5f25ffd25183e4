package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr     string
	DBDriver       string
	DBDSN          string
	MediaPath      string
	MediaURLPrefix string
	APIPrefix      string
	MaxUploadBytes int64
	APIKey         string
	APIKeyHeader   string
	LogLevel       string
	LogFile        string
}

func Load() (*Config, error) {
	maxUpload, err := getEnvInt64("MAX_UPLOAD_BYTES", 10<<20)
	if err != nil {
		return nil, err
	}
	return &Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBDSN:          getEnv("DB_DSN", "/data/homebase.db"),
		MediaPath:      getEnv("MEDIA_PATH", "/data/media"),
		MediaURLPrefix: getEnv("MEDIA_URL_PREFIX", "/media"),
		APIPrefix:      getEnv("API_PREFIX", "/api"),
		MaxUploadBytes: maxUpload,
		APIKey:         getEnv("BLOG_API_KEY", ""),
		APIKeyHeader:   getEnv("API_KEY_HEADER", "X-API-Key"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFile:        getEnv("LOG_FILE", ""),
	}, nil
}

// LoadEnvFile copies variables from a dotenv file into the environment without
// overriding ones that are already set. With an empty path ".env" is tried and
// may be absent.
func LoadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) (int64, error) {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, val)
	}
	return n, nil
}
