package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Identity  IdentityConfig
	Catalog   CatalogConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port           string
	Environment    string
	LogLevel       string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// IdentityConfig 身分提供者：JWKS 用於驗證 session token，API 用於讀取使用者 metadata
type IdentityConfig struct {
	APIURL    string
	SecretKey string
	JWKSURL   string
	Issuer    string
	Timeout   time.Duration
}

type CatalogConfig struct {
	APIURL   string
	APIKey   string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

var AppConfig *Config

func LoadConfig() (*Config, error) {
	redisConfig, err := GetRedisConfig()
	if err != nil {
		return nil, err
	}
	identityConfig, err := GetIdentityConfig()
	if err != nil {
		return nil, err
	}
	catalogConfig, err := GetCatalogConfig()
	if err != nil {
		return nil, err
	}
	rateLimitConfig, err := GetRateLimitConfig()
	if err != nil {
		return nil, err
	}

	AppConfig = &Config{
		Server:    GetServerConfig(),
		Database:  GetDatabaseConfig(),
		Redis:     redisConfig,
		Identity:  identityConfig,
		Catalog:   catalogConfig,
		RateLimit: rateLimitConfig,
	}

	return AppConfig, nil
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Server: ServerConfig{
			Port:           "8081",
			Environment:    "test",
			LogLevel:       "debug",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Identity: IdentityConfig{
			APIURL:  "http://localhost:9999/v1",
			Timeout: 2 * time.Second,
		},
		Catalog: CatalogConfig{
			APIURL:   "http://localhost:9998/v2",
			Timeout:  2 * time.Second,
			CacheTTL: time.Minute,
		},
		RateLimit: RateLimitConfig{RPS: 100, Burst: 100},
	}
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() (RedisConfig, error) {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return RedisConfig{}, fmt.Errorf("REDIS_DB: %w", err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}, nil
}

func GetIdentityConfig() (IdentityConfig, error) {
	timeout, err := time.ParseDuration(getEnv("IDENTITY_TIMEOUT", "5s"))
	if err != nil {
		return IdentityConfig{}, fmt.Errorf("IDENTITY_TIMEOUT: %w", err)
	}

	cfg := IdentityConfig{
		APIURL:    strings.TrimRight(getEnv("IDENTITY_API_URL", "https://api.clerk.com/v1"), "/"),
		SecretKey: os.Getenv("IDENTITY_SECRET_KEY"),
		JWKSURL:   os.Getenv("IDENTITY_JWKS_URL"),
		Issuer:    os.Getenv("IDENTITY_ISSUER"),
		Timeout:   timeout,
	}
	if cfg.SecretKey == "" {
		return IdentityConfig{}, fmt.Errorf("IDENTITY_SECRET_KEY is required")
	}
	if cfg.JWKSURL == "" {
		return IdentityConfig{}, fmt.Errorf("IDENTITY_JWKS_URL is required")
	}
	return cfg, nil
}

func GetCatalogConfig() (CatalogConfig, error) {
	timeout, err := time.ParseDuration(getEnv("CATALOG_TIMEOUT", "10s"))
	if err != nil {
		return CatalogConfig{}, fmt.Errorf("CATALOG_TIMEOUT: %w", err)
	}
	ttl, err := time.ParseDuration(getEnv("CATALOG_CACHE_TTL", "10m"))
	if err != nil {
		return CatalogConfig{}, fmt.Errorf("CATALOG_CACHE_TTL: %w", err)
	}

	return CatalogConfig{
		APIURL:   strings.TrimRight(getEnv("CATALOG_API_URL", "https://api.pokemontcg.io/v2"), "/"),
		APIKey:   os.Getenv("CATALOG_API_KEY"),
		Timeout:  timeout,
		CacheTTL: ttl,
	}, nil
}

func GetRateLimitConfig() (RateLimitConfig, error) {
	rps, err := strconv.ParseFloat(getEnv("SEARCH_RATE_RPS", "2"), 64)
	if err != nil {
		return RateLimitConfig{}, fmt.Errorf("SEARCH_RATE_RPS: %w", err)
	}
	burst, err := strconv.Atoi(getEnv("SEARCH_RATE_BURST", "5"))
	if err != nil {
		return RateLimitConfig{}, fmt.Errorf("SEARCH_RATE_BURST: %w", err)
	}
	return RateLimitConfig{RPS: rps, Burst: burst}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
