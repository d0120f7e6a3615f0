// Package config loads service settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all settings for both the Lambda and the standalone server.
type Config struct {
	Port     string
	LogLevel string

	AnthropicAPIKey  string
	AnthropicModel   string
	AnthropicBaseURL string
	LLMMaxTokens     int
	LLMProvider      string
	BedrockModelID   string
	ParamPrefix      string

	SessionBackend string
	SessionTTL     time.Duration
	RedisAddr      string
	RedisPassword  string
	RedisDB        int

	BookingsTable string
	AWSRegion     string

	ShopName    string
	ShopPhone   string
	ShopAddress string
	ShopMapsURL string
}

// Load reads the configuration from environment variables, applying defaults.
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		AnthropicAPIKey:  strings.TrimSpace(getEnv("ANTHROPIC_API_KEY", "")),
		AnthropicModel:   getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-latest"),
		AnthropicBaseURL: getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
		LLMMaxTokens:     getEnvAsInt("LLM_MAX_TOKENS", 1000),
		LLMProvider:      strings.ToLower(getEnv("LLM_PROVIDER", "anthropic")),
		BedrockModelID:   getEnv("BEDROCK_MODEL_ID", ""),
		ParamPrefix:      getEnv("PARAM_PREFIX", ""),

		SessionBackend: strings.ToLower(getEnv("SESSION_BACKEND", "memory")),
		SessionTTL:     getEnvAsDuration("SESSION_TTL", 30*time.Minute),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvAsInt("REDIS_DB", 0),

		BookingsTable: getEnv("BOOKINGS_TABLE", ""),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),

		ShopName:    getEnv("SHOP_NAME", ""),
		ShopPhone:   getEnv("SHOP_PHONE", ""),
		ShopAddress: getEnv("SHOP_ADDRESS", ""),
		ShopMapsURL: getEnv("SHOP_MAPS_URL", ""),
	}
}

// LLMConfigured reports whether any model provider can be constructed. When
// it is false every unmatched message is answered by the keyword fallback.
func (c *Config) LLMConfigured() bool {
	if c.LLMProvider == "bedrock" {
		return c.BedrockModelID != ""
	}
	return c.AnthropicAPIKey != "" || c.ParamPrefix != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
