package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AnthropicConfig struct {
	APIKey string
	Model  string
}

// IsConfigured returns true if all required Anthropic configuration is present
func (c AnthropicConfig) IsConfigured() bool {
	return c.APIKey != ""
}

type AdapterEndpoints struct {
	GitHubBaseURL string
	SlackBaseURL  string
}

type AppConfig struct {
	// Core configuration (always required)
	DatabaseURL        string
	DatabaseSchema     string
	Port               string // Optional with default "8080"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	ServerLogsURL      string
	AlertWebhookURL    string
	UseStrictConfig    bool // If true, error when the LLM is not fully configured

	// AggregatorMode selects how per-platform results are merged:
	// "concat" joins display texts, "synthesize" asks the LLM for a narrative
	AggregatorMode string

	AnthropicConfig  AnthropicConfig
	AdapterEndpoints AdapterEndpoints
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	// Core required configuration
	databaseURL, err := getEnvRequired("DB_URL")
	if err != nil {
		return nil, err
	}

	databaseSchema, err := getEnvRequired("DB_SCHEMA")
	if err != nil {
		return nil, err
	}

	aggregatorMode := getEnvWithDefault("AGGREGATOR_MODE", "concat")
	if aggregatorMode != "concat" && aggregatorMode != "synthesize" {
		return nil, fmt.Errorf("AGGREGATOR_MODE must be \"concat\" or \"synthesize\", got %q", aggregatorMode)
	}

	config := &AppConfig{
		DatabaseURL:        databaseURL,
		DatabaseSchema:     databaseSchema,
		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		ServerLogsURL:      getEnvWithDefault("SERVER_LOGS_URL", ""),
		AlertWebhookURL:    getEnvWithDefault("SLACK_ALERT_WEBHOOK_URL", ""),
		UseStrictConfig:    getEnvWithDefault("USE_STRICT_CONFIG", "true") == "true",
		AggregatorMode:     aggregatorMode,

		AnthropicConfig: AnthropicConfig{
			APIKey: os.Getenv("ANTHROPIC_API_KEY"),
			Model:  getEnvWithDefault("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
		},

		// Well-known default adapter targets; per-turn context may override
		AdapterEndpoints: AdapterEndpoints{
			GitHubBaseURL: getEnvWithDefault("GITHUB_API_BASE_URL", "https://api.github.com"),
			SlackBaseURL:  getEnvWithDefault("SLACK_API_BASE_URL", ""),
		},
	}

	if config.AnthropicConfig.IsConfigured() {
		log.Printf("✅ Anthropic LLM configured (model: %s)", config.AnthropicConfig.Model)
	} else {
		log.Printf("⚠️ Anthropic LLM not configured - all messages will fall back to the conversation intent")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("anthropic LLM is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
