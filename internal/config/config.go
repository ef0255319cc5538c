package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/disaster-backend/internal/validation"
)

// Config хранит все параметры запуска приложения.
type Config struct {
	Env              string
	HTTPPort         string
	JWTSecret        string
	AccessTokenTTL   time.Duration
	AllowedOrigins   []string
	RateLimitLimit   int64
	RateLimitPeriod  time.Duration
	RosterFirstID    int
	RosterSize       int
	ReporterAccounts int
	AdminPassword    string
	DefaultPassword  string
	BcryptCost       int
	MaxPhotoSizeMB   int64
}

// Load читает переменные окружения и возвращает готовую конфигурацию.
func Load() (*Config, error) {
	// Загружаем .env только если он существует, иначе используем системные переменные.
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("config: .env не найден, используем переменные окружения: %v", err)
	}

	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		Env:             env,
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", "admin123"),
		DefaultPassword: getEnv("DEFAULT_PASSWORD", "1234"),
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if env == "production" {
		if len(jwtSecret) < 32 {
			return nil, fmt.Errorf("config: JWT_SECRET обязателен и должен быть не менее 32 символов в production")
		}
	} else if jwtSecret == "" {
		jwtSecret = "disaster-secret-development-only-change-in-production"
		log.Printf("config: WARNING - используется дефолтный JWT_SECRET, измените в production!")
	}
	cfg.JWTSecret = jwtSecret

	// CORS allowed origins
	originsStr := getEnv("CORS_ALLOWED_ORIGINS", "")
	if originsStr == "" {
		if env == "production" {
			return nil, fmt.Errorf("config: CORS_ALLOWED_ORIGINS обязателен в production")
		}
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5000"}
	} else {
		cfg.AllowedOrigins = strings.Split(originsStr, ",")
		for i, origin := range cfg.AllowedOrigins {
			cfg.AllowedOrigins[i] = strings.TrimSpace(origin)
		}
	}

	if env == "production" {
		if err := validation.ValidateAdminPassword(cfg.AdminPassword); err != nil {
			return nil, fmt.Errorf("config: ADMIN_PASSWORD: %w", err)
		}
	}

	cfg.AccessTokenTTL = mustParseDuration(getEnv("ACCESS_TOKEN_TTL", "12h"))
	cfg.RateLimitLimit = mustParseInt64(getEnv("RATE_LIMIT_LIMIT", "10"))
	cfg.RateLimitPeriod = mustParseDuration(getEnv("RATE_LIMIT_PERIOD", "1m"))
	cfg.MaxPhotoSizeMB = mustParseInt64(getEnv("MAX_PHOTO_MB", "10"))

	// Стартовый состав волонтёров и учётные записи
	cfg.RosterFirstID = int(mustParseInt64(getEnv("ROSTER_FIRST_ID", "101")))
	cfg.RosterSize = int(mustParseInt64(getEnv("ROSTER_SIZE", "20")))
	cfg.ReporterAccounts = int(mustParseInt64(getEnv("REPORTER_ACCOUNTS", "10")))
	cfg.BcryptCost = int(mustParseInt64(getEnv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost))))

	if cfg.RosterSize <= 0 {
		return nil, fmt.Errorf("config: ROSTER_SIZE должен быть положительным, получено %d", cfg.RosterSize)
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("config: BCRYPT_COST должен быть в диапазоне %d..%d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или дефолт.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// mustParseDuration безопасно парсит строку в duration.
func mustParseDuration(v string) time.Duration {
	dur, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: не удалось распарсить длительность %q: %v", v, err)
	}
	return dur
}

// mustParseInt64 безопасно парсит строку в int64.
func mustParseInt64(v string) int64 {
	num, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("config: не удалось распарсить число %q: %v", v, err)
	}
	return num
}
