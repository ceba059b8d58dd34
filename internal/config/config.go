package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Content     ContentConfig
	Redis       RedisConfig
	Store       StoreConfig
	Catalog     CatalogConfig
	LogLevel    string
}

type ContentConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type StoreConfig struct {
	// BaseURL is the public storefront origin used in deep links
	BaseURL string
	// WhatsAppLink is the chat endpoint the checkout handoff opens
	WhatsAppLink string
}

type CatalogConfig struct {
	// PageSize is the product-list page size
	PageSize int
	// HomePageSize is the home-grid page size
	HomePageSize int
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("CONTENT_API_VERSION", "2023-05-03")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("CATALOG_PAGE_SIZE", "12")
	viper.SetDefault("CATALOG_HOME_PAGE_SIZE", "8")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Content: ContentConfig{
			ProjectID:  getEnvOrViper("CONTENT_PROJECT_ID", ""),
			Dataset:    getEnvOrViper("CONTENT_DATASET", "production"),
			APIVersion: getEnvOrViper("CONTENT_API_VERSION", "2023-05-03"),
			Token:      getEnvOrViper("CONTENT_TOKEN", ""),
			UseCDN:     getEnvOrViper("CONTENT_USE_CDN", "true") == "true",
		},
		Redis: RedisConfig{
			Addr:     getEnvOrViper("REDIS_ADDR", "localhost:6379"),
			Password: getEnvOrViper("REDIS_PASSWORD", ""),
			DB:       getIntOrDefault("REDIS_DB", 0),
		},
		Store: StoreConfig{
			BaseURL:      getEnvOrViper("STORE_BASE_URL", "https://northsidewear.in"),
			WhatsAppLink: getEnvOrViper("STORE_WHATSAPP_LINK", ""),
		},
		Catalog: CatalogConfig{
			PageSize:     getIntOrDefault("CATALOG_PAGE_SIZE", 12),
			HomePageSize: getIntOrDefault("CATALOG_HOME_PAGE_SIZE", 8),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Content.ProjectID == "" {
		return nil, fmt.Errorf("CONTENT_PROJECT_ID is required")
	}
	if cfg.Content.Dataset == "" {
		return nil, fmt.Errorf("CONTENT_DATASET is required")
	}
	if cfg.Catalog.PageSize <= 0 {
		return nil, fmt.Errorf("CATALOG_PAGE_SIZE must be positive")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	raw := getEnvOrViper(key, strconv.Itoa(defaultValue))
	val, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return val
}
