package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config 服务运行时配置
type Config struct {
	Env             string
	Port            string
	DatabaseURL     string
	JWTSecret       string
	JWTExpiry       time.Duration
	AllowedOrigins  []string
	MetadataBaseURL string
	MetadataToken   string
}

// Load 从环境变量读取配置，缺省值面向本地开发
func Load() *Config {
	// 解析失败或非正数时退回 60 分钟，避免签出来的 Token 立即过期
	expiryMinutes, err := strconv.Atoi(getEnv("JWT_EXPIRY_MINUTES", "60"))
	if err != nil || expiryMinutes <= 0 {
		expiryMinutes = 60
	}

	dbUser := getEnv("PG_USER", "postgres")
	dbPass := getEnv("PG_PASSWORD", "postgres")
	dbHost := getEnv("PG_HOST", "localhost")
	dbPort := getEnv("PG_PORT", "5432")
	dbName := getEnv("PG_DB", "filmbase")
	dbSSL := getEnv("PG_SSLMODE", "disable")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)

	jwtSecret := getEnv("JWT_SECRET", "change-me-in-production")
	if getEnv("APP_ENV", "development") == "production" && jwtSecret == "change-me-in-production" {
		fmt.Println("WARNING: production is running with the default JWT secret, set JWT_SECRET")
	}

	origins := strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5500"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		Env:             getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "5500"),
		DatabaseURL:     dbURL,
		JWTSecret:       jwtSecret,
		JWTExpiry:       time.Duration(expiryMinutes) * time.Minute,
		AllowedOrigins:  origins,
		MetadataBaseURL: getEnv("METADATA_BASE_URL", "https://api.themoviedb.org/3"),
		MetadataToken:   getEnv("METADATA_TOKEN", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
