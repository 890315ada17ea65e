package research

import (
	"encoding/json"
	"fmt"
	"strings"
)

func parseUpdates(content string) ([]Update, error) {
	cleaned := stripFences(content)

	// Search models often wrap the array in prose or citations.
	if start, end := strings.Index(cleaned, "["), strings.LastIndex(cleaned, "]"); start >= 0 && end > start {
		var updates []Update
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &updates); err == nil {
			return updates, nil
		}
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &wrapped); err == nil {
		for _, raw := range wrapped {
			var updates []Update
			if json.Unmarshal(raw, &updates) == nil {
				return updates, nil
			}
		}
	}

	return nil, fmt.Errorf("no update list found in response: %s", content)
}

func stripFences(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
