package engine

import "regexp"

// languageMarkers scores a language from code idioms and from the exception
// vocabulary of its runtimes. Regexes are compiled once at init.
type languageMarkers struct {
	lang Language
	code []*regexp.Regexp
	log  []*regexp.Regexp
}

// Fixed priority order doubles as the tie-breaker: Python > Java > C++ > JavaScript.
var markerTable = []languageMarkers{
	{
		lang: LangPython,
		code: compileAll(
			`(?m)^\s*def\s+\w+\s*\(`,
			`(?m)^\s*import\s+\w+`,
			`(?m)^\s*from\s+\w+\s+import\s`,
			`(?m)^\s*class\s+\w+.*:\s*$`,
			`\bprint\s*\(`,
			`(?m):\s*$`,
			`\bself\.`,
			`\belif\b`,
		),
		log: compileAll(
			`Traceback \(most recent call last\)`,
			`File "[^"]+", line \d+`,
			// Only names the CPython runtime raises; a generic \w+Error would
			// also swallow JavaScript's TypeError, ReferenceError, RangeError.
			`\b(?:IndexError|KeyError|NameError|AttributeError|ValueError|ZeroDivisionError|IndentationError|TabError|RecursionError|MemoryError|ImportError|ModuleNotFoundError|UnboundLocalError)\b`,
			`TypeError: unsupported operand`,
			`SyntaxError: invalid syntax`,
			`\bKeyboardInterrupt\b`,
		),
	},
	{
		lang: LangJava,
		code: compileAll(
			`public\s+static\s+void\s+main`,
			`public\s+class\s+\w+`,
			`System\.out\.print`,
			`\bprivate\s+\w+\s+\w+\s*;`,
			`\bnew\s+\w+\s*\(`,
			`@Override\b`,
		),
		log: compileAll(
			`Exception in thread "`,
			`\b\w+Exception\b`,
			`\bat\s+[\w.$]+\([\w.]+\.java:\d+\)`,
			`\bjava\.lang\.`,
		),
	},
	{
		lang: LangCpp,
		code: compileAll(
			`#include\s*[<"]`,
			`\bint\s+main\s*\(`,
			`\bstd::`,
			`\bcout\s*<<`,
			`\bprintf\s*\(`,
			`\bnullptr\b`,
			`\btemplate\s*<`,
		),
		log: compileAll(
			`(?i)segmentation fault`,
			`\bcore dumped\b`,
			`\bundefined reference to\b`,
			`\bstd::\w+`,
			`(?i)\bsigsegv\b`,
		),
	},
	{
		lang: LangJavaScript,
		code: compileAll(
			`\bfunction\s+\w*\s*\(`,
			`\bconsole\.log\s*\(`,
			`\b(?:var|let|const)\s+\w+`,
			`=>`,
			`\brequire\s*\(`,
			`\bexport\s+(?:default|const|function)\b`,
		),
		log: compileAll(
			`\bReferenceError\b`,
			`\bRangeError\b`,
			`\bTypeError: Cannot read`,
			`TypeError: .* is (?:null|undefined)`,
			`\bat\s+\S+\s+\(\S+\.js:\d+:\d+\)`,
			`\bnode:internal\b`,
			`\bUnhandledPromiseRejection`,
		),
	},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

// DetectLanguage infers the language of a snippet/log pair. Each marker hit
// counts one point; log vocabulary counts double because exception names are
// far more distinctive than code keywords. Highest score wins, ties resolved
// by table order, all-zero yields LangUnknown. Detection never fails.
func DetectLanguage(code, log string) Language {
	best := LangUnknown
	bestScore := 0
	for _, m := range markerTable {
		score := 0
		if code != "" {
			for _, re := range m.code {
				if re.MatchString(code) {
					score++
				}
			}
		}
		if log != "" {
			for _, re := range m.log {
				if re.MatchString(log) {
					score += 2
				}
			}
		}
		if score > bestScore {
			bestScore = score
			best = m.lang
		}
	}
	return best
}
