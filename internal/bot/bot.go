package bot

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lojoky/lexington-dev-bot/internal/digest"
	"github.com/lojoky/lexington-dev-bot/pkg/research"
)

type Searcher interface {
	Search(window research.Window) ([]research.Update, error)
	Name() string
}

type Notifier interface {
	Post(message string) error
}

// Bot runs one search-format-post cycle. The first error at any stage
// aborts the run; nothing is retried.
type Bot struct {
	searcher Searcher
	notifier Notifier
	now      func() time.Time
}

func New(searcher Searcher, notifier Notifier) *Bot {
	return &Bot{
		searcher: searcher,
		notifier: notifier,
		now:      time.Now,
	}
}

func (b *Bot) Run() error {
	window := research.NewWindow(b.now())
	slog.Info("searching for development updates", "provider", b.searcher.Name(), "window", window.String())

	updates, err := b.searcher.Search(window)
	if err != nil {
		return fmt.Errorf("searching for updates: %w", err)
	}
	slog.Info("search complete", "updates", len(updates))

	message := digest.FormatMessage(updates)

	if err := b.notifier.Post(message); err != nil {
		return fmt.Errorf("posting digest: %w", err)
	}
	slog.Info("digest posted")

	return nil
}
