package digest

import (
	"fmt"
	"strings"

	"github.com/lojoky/lexington-dev-bot/pkg/research"
)

const messageHeader = ":construction: *Lexington Development Updates*\n\n"

const noUpdatesMessage = ":no_entry_sign: No significant new development updates in Lexington in the past 14 days."

// FormatMessage renders the research findings as a single Slack message.
func FormatMessage(updates []research.Update) string {
	if len(updates) == 0 {
		return noUpdatesMessage
	}

	var sb strings.Builder
	sb.WriteString(messageHeader)

	for _, u := range updates {
		sb.WriteString(fmt.Sprintf("• *%s* — %s", u.Title, u.Summary))
		if u.URL != "" {
			sb.WriteString(fmt.Sprintf("  <%s|Read more>", u.URL))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
