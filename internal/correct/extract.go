package correct

import (
	"regexp"
	"strings"
)

// startOfBlockRegex matches the beginning of a fenced code block, e.g. ``` or
// ```python, capturing the language identifier when present.
var startOfBlockRegex = regexp.MustCompile("^\\s*```(\\S*)")

// extractCode pulls the first fenced code block out of a model response.
// When no well-formed block is present, the whole response is treated as the
// corrected code verbatim. An empty extraction reports ok=false so the caller
// can fall back.
func extractCode(response string) (code string, ok bool) {
	lines := strings.Split(response, "\n")
	var block strings.Builder
	inBlock := false
	closed := false

	for _, line := range lines {
		if !inBlock {
			if startOfBlockRegex.MatchString(line) {
				inBlock = true
			}
			continue
		}
		if strings.TrimSpace(line) == "```" {
			closed = true
			break
		}
		block.WriteString(line)
		block.WriteString("\n")
	}

	if inBlock && closed {
		out := strings.TrimRight(block.String(), "\n")
		if strings.TrimSpace(out) == "" {
			return "", false
		}
		return out, true
	}

	// No (or unterminated) fence: take the response as-is.
	out := strings.TrimSpace(response)
	if out == "" {
		return "", false
	}
	return out, true
}
