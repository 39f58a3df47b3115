package engine

import (
	"fmt"
	"regexp"
	"strconv"
)

// syntheticIndex orders matches minted outside the catalog (code-only
// heuristics, the unrecognized fallback) after every catalog entry when
// severities tie.
const syntheticIndex = 1 << 30

var lineHintPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bline (\d+)`),
	regexp.MustCompile(`\.(?:java|js|py|c|cc|cpp|h|hpp):(\d+)`),
	regexp.MustCompile(`:(\d+):\d+`),
	regexp.MustCompile(`:(\d+)\b`),
}

// extractLineHint pulls the first plausible line number out of a log excerpt.
// Returns 0 when nothing usable is found.
func extractLineHint(excerpt string) int {
	for _, re := range lineHintPatterns {
		if m := re.FindStringSubmatch(excerpt); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				return n
			}
		}
	}
	return 0
}

// Match runs the ordered signature list for lang against the log. Multiple
// distinct kinds may match; duplicates of the same kind collapse into one
// Match whose location hint comes from the first occurrence. An empty log
// falls back to code-only heuristics. A non-empty log that matches nothing
// yields the generic unrecognized signature so a supplied log never produces
// an empty report.
func (c *Catalog) Match(lang Language, code, log string) []Match {
	if log == "" {
		return c.matchCodeOnly(lang, code)
	}

	var out []Match
	seen := make(map[ErrorKind]bool)
	for i, s := range c.Signatures(lang) {
		locs := s.Pattern.FindAllStringIndex(log, -1)
		if locs == nil || seen[s.Kind] {
			continue
		}
		seen[s.Kind] = true
		out = append(out, newMatch(s, i, log, locs))
	}

	if len(out) == 0 && lang != LangUnknown {
		// No language-specific signature fired; fall through to the generic
		// matchers so the caller still gets a best-effort section.
		for i, s := range c.generic {
			locs := s.Pattern.FindAllStringIndex(log, -1)
			if locs == nil || seen[s.Kind] {
				continue
			}
			seen[s.Kind] = true
			out = append(out, newMatch(s, i, log, locs))
		}
	}
	if len(out) == 0 {
		// A supplied log never yields an empty report: emit the unrecognized
		// fallback even when no pattern text matched at all.
		out = append(out, unrecognizedMatch(log))
	}
	return out
}

func unrecognizedMatch(log string) Match {
	s := ErrorSignature{
		Language:     LangUnknown,
		Kind:         KindUnrecognized,
		Explanation:  "The log reports a failure that does not match a known signature.",
		BaseSeverity: SeverityMedium,
	}
	line := extractLineHint(log)
	explanation := s.Explanation
	if line > 0 {
		explanation = fmt.Sprintf("%s (near line %d)", s.Explanation, line)
	}
	return Match{
		Signature:    s,
		Line:         line,
		Occurrences:  1,
		Severity:     s.BaseSeverity,
		Explanation:  explanation,
		catalogIndex: syntheticIndex,
	}
}

func newMatch(s ErrorSignature, catalogIndex int, log string, locs [][]int) Match {
	// Scope the line hint to the neighborhood of the first occurrence so a
	// multi-error log does not bleed hints across matches.
	start := locs[0][0]
	end := start + 200
	if end > len(log) {
		end = len(log)
	}
	line := extractLineHint(log[start:end])
	if line == 0 {
		line = extractLineHint(log)
	}

	explanation := s.Explanation
	if line > 0 {
		explanation = fmt.Sprintf("%s (near line %d)", s.Explanation, line)
	}
	return Match{
		Signature:    s,
		Line:         line,
		Occurrences:  len(locs),
		Severity:     s.BaseSeverity,
		Explanation:  explanation,
		catalogIndex: catalogIndex,
	}
}

var (
	rePyNumericRange = regexp.MustCompile(`for\s+(\w+)\s+in\s+range\(\s*\d+\s*\)`)
	rePyIndexAccess  = regexp.MustCompile(`\w+\[\s*(\w+)\s*\]`)
	reLiteralDivZero = regexp.MustCompile(`(?:/|%)\s*0(?:[^.\d]|$)`)
)

// matchCodeOnly looks for static signals in the snippet when no runtime log
// exists: a loop over a numeric range that indexes a collection, or a literal
// zero divisor. No signal means zero matches, which is not an error.
func (c *Catalog) matchCodeOnly(lang Language, code string) []Match {
	if code == "" {
		return nil
	}
	var out []Match
	if lang == LangPython {
		if m := rePyNumericRange.FindStringSubmatch(code); m != nil {
			if idx := rePyIndexAccess.FindStringSubmatch(code); idx != nil && idx[1] == m[1] {
				out = append(out, Match{
					Signature: ErrorSignature{
						Language:     lang,
						Kind:         KindIndexOutOfRange,
						Explanation:  "A loop iterates over a fixed numeric range while indexing a collection whose length is not checked.",
						BaseSeverity: SeverityLow,
					},
					Occurrences:  1,
					Severity:     SeverityLow,
					Explanation:  "A loop iterates over a fixed numeric range while indexing a collection whose length is not checked.",
					catalogIndex: syntheticIndex,
				})
			}
		}
	}
	if reLiteralDivZero.MatchString(code) {
		out = append(out, Match{
			Signature: ErrorSignature{
				Language:     lang,
				Kind:         KindDivisionByZero,
				Explanation:  "The code divides by a literal zero.",
				BaseSeverity: SeverityMedium,
			},
			Occurrences:  1,
			Severity:     SeverityMedium,
			Explanation:  "The code divides by a literal zero.",
			catalogIndex: syntheticIndex,
		})
	}
	return out
}
