package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

type Config struct {
	Provider        string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	SlackBotToken   string
	SlackChannelID  string
}

// Load reads configuration from the environment. It fails before any
// network call is attempted so a misconfigured run dies immediately.
func Load() (*Config, error) {
	cfg := &Config{
		Provider:        os.Getenv("RESEARCH_PROVIDER"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		SlackBotToken:   os.Getenv("SLACK_BOT_TOKEN"),
		SlackChannelID:  os.Getenv("SLACK_CHANNEL_ID"),
	}

	if cfg.Provider == "" {
		cfg.Provider = ProviderOpenAI
	}

	var missing []string

	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
	case ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			missing = append(missing, "ANTHROPIC_API_KEY")
		}
	default:
		return nil, fmt.Errorf("unknown research provider %q", cfg.Provider)
	}

	if cfg.SlackBotToken == "" {
		missing = append(missing, "SLACK_BOT_TOKEN")
	}
	if cfg.SlackChannelID == "" {
		missing = append(missing, "SLACK_CHANNEL_ID")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}
