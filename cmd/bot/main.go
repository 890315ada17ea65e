package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lojoky/lexington-dev-bot/internal/bot"
	"github.com/lojoky/lexington-dev-bot/internal/config"
	"github.com/lojoky/lexington-dev-bot/pkg/notify"
	"github.com/lojoky/lexington-dev-bot/pkg/research"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	var searcher research.Client
	switch cfg.Provider {
	case config.ProviderAnthropic:
		searcher = research.NewAnthropicClient(cfg.AnthropicAPIKey)
	default:
		searcher = research.NewOpenAIClient(cfg.OpenAIAPIKey)
	}

	notifier := notify.NewSlackNotifier(cfg.SlackBotToken, cfg.SlackChannelID)

	if err := bot.New(searcher, notifier).Run(); err != nil {
		log.Fatalf("bot run failed: %v", err)
	}
}
