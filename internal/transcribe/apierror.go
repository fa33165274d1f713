package transcribe

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// formatAPIError renders a service error body into one readable line. The
// service answers with either a {code, message, data} object or a bare JSON
// string; anything else is reported verbatim.
func formatAPIError(status int, body []byte) string {
	var value any
	if err := json.Unmarshal(body, &value); err == nil {
		switch v := value.(type) {
		case map[string]any:
			code, hasCode := v["code"]
			message, _ := v["message"].(string)
			data, _ := v["data"].(string)
			if hasCode || message != "" || data != "" {
				codeText := "<none>"
				if hasCode {
					codeText = fmt.Sprintf("%v", code)
				}
				return strings.TrimSpace(fmt.Sprintf("API error (HTTP %d, code %s): %s %s", status, codeText, message, data))
			}
		case string:
			return fmt.Sprintf("API error (HTTP %d): %s", status, v)
		}
	}

	if status == http.StatusTooManyRequests {
		return fmt.Sprintf("rate limited (HTTP 429): %s", strings.TrimSpace(string(body)))
	}
	return fmt.Sprintf("API error (HTTP %d): %s", status, strings.TrimSpace(string(body)))
}
