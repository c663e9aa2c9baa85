package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultModel is the chat model used when OPENAI_MODEL is not set
const DefaultModel = "gpt-4o-mini"

// Config holds the application configuration
type Config struct {
	// OpenAIAPIKey is the only credential. An empty key disables remote rewriting.
	OpenAIAPIKey string
	Model        string
	// BaseURL overrides the OpenAI endpoint, e.g. for a proxy. Empty means the library default.
	BaseURL string
}

// Load loads the configuration from a .env file (if present) and environment variables.
// A missing API key is not an error; see HasOpenAIKey.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("OPENAI_MODEL", DefaultModel)

	return &Config{
		OpenAIAPIKey: v.GetString("OPENAI_API_KEY"),
		Model:        v.GetString("OPENAI_MODEL"),
		BaseURL:      v.GetString("OPENAI_BASE_URL"),
	}, nil
}

// HasOpenAIKey reports whether remote rewriting is available
func (c *Config) HasOpenAIKey() bool {
	return c != nil && c.OpenAIAPIKey != ""
}
