package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Shop   ShopConfig
	App    AppConfig
}

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type ShopConfig struct {
	// CatalogDSN is an optional Postgres DSN for the products table.
	// Empty means the built-in catalog seed is used.
	CatalogDSN string
	// RateMADToEUR is the fixed MAD -> EUR conversion rate.
	RateMADToEUR string
	// PayPalHandle is the shop's PayPal.me merchant handle.
	PayPalHandle string
	// CartTTLDays is how long abandoned session carts are kept.
	CartTTLDays int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Shop: ShopConfig{
			CatalogDSN:   getEnv("CATALOG_DB_DSN", ""),
			RateMADToEUR: getEnv("EXCHANGE_RATE_MAD_EUR", "0.093"),
			PayPalHandle: getEnv("PAYPAL_HANDLE", "incaprint25"),
			CartTTLDays:  getEnvAsInt("CART_TTL_DAYS", 30),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	if c.Shop.PayPalHandle == "" {
		return fmt.Errorf("PAYPAL_HANDLE is required")
	}

	if _, err := strconv.ParseFloat(c.Shop.RateMADToEUR, 64); err != nil {
		return fmt.Errorf("EXCHANGE_RATE_MAD_EUR is not a number: %w", err)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
