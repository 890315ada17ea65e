package notify

import (
	"fmt"

	"github.com/slack-go/slack"
)

type SlackNotifier struct {
	client    *slack.Client
	channelID string
}

func NewSlackNotifier(botToken, channelID string) *SlackNotifier {
	return &SlackNotifier{
		client:    slack.New(botToken),
		channelID: channelID,
	}
}

func (n *SlackNotifier) Post(message string) error {
	_, _, err := n.client.PostMessage(
		n.channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionDisableLinkUnfurl(),
	)
	if err != nil {
		return fmt.Errorf("slack post: %w", err)
	}
	return nil
}
