package correct

import "strings"

// Caps keep the prompt bounded no matter what the caller submits. Oversized
// sections are truncated head-first: the beginning of code and the beginning
// of a log carry the most signal.
const (
	maxPromptCode   = 16 * 1024
	maxPromptLog    = 8 * 1024
	maxPromptReport = 8 * 1024
)

// buildPrompt embeds the snippet, the log, and the assembled report into the
// correction instruction. The instruction asks for code only; the extractor
// tolerates models that answer with prose around a fenced block anyway.
func buildPrompt(code, log, report string) string {
	var b strings.Builder
	b.WriteString("Based on the error analysis report, generate only the corrected code ")
	b.WriteString("without any comments or explanations. Provide the complete working code ")
	b.WriteString("and nothing else, inside a single fenced code block.\n")
	b.WriteString("\nCode:\n")
	b.WriteString(truncate(code, maxPromptCode))
	b.WriteString("\n\nError log:\n")
	b.WriteString(truncate(log, maxPromptLog))
	b.WriteString("\n\nReport:\n")
	b.WriteString(truncate(report, maxPromptReport))
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "\n[truncated]"
}
