package engine

import (
	"fmt"
	"sort"
	"strings"
)

const reportBanner = "============================================================"

// remediationTips is the static per-kind best-practice lookup used for the
// short tip under each match paragraph.
var remediationTips = map[ErrorKind]string{
	KindIndexOutOfRange:    "Check the collection length before indexing, or iterate the collection directly instead of a numeric range.",
	KindNullDereference:    "Guard against null/None before dereferencing, and initialize objects where they are declared.",
	KindTypeMismatch:       "Validate or convert values to the expected type at the boundary where they enter the code.",
	KindSyntaxError:        "Fix the reported parse location first; later errors are often cascades of the same mistake.",
	KindUndefinedReference: "Define or import the name before use, and check its spelling against the declaration.",
	KindMemoryFault:        "Audit pointer lifetime and buffer bounds around the crash site; run under a memory checker if available.",
	KindDivisionByZero:     "Check the divisor before dividing and decide explicitly what a zero divisor should produce.",
	KindKeyNotFound:        "Test for the key first or use a lookup form that returns a default for missing keys.",
	KindRecursionLimit:     "Add or fix the base case of the recursion, or rewrite it iteratively for large inputs.",
	KindFormatError:        "Validate input before parsing and handle the parse failure path explicitly.",
	KindUnrecognized:       "Read the surrounding log lines for the first failure; later messages are usually consequences.",
}

var bestPractices = map[Language][]string{
	LangPython: {
		"Follow PEP 8 and keep functions small enough to reason about.",
		"Handle expected failure modes with specific except clauses, not bare except.",
		"Validate inputs at function boundaries instead of deep inside loops.",
	},
	LangJava: {
		"Initialize references where they are declared and prefer Optional for absent values.",
		"Catch specific exception types; never swallow Throwable.",
		"Check array and collection bounds before indexed access.",
	},
	LangCpp: {
		"Prefer RAII and smart pointers over raw new/delete.",
		"Use bounds-checked accessors (at, gsl::span) in non-hot paths.",
		"Compile with warnings as errors and run sanitizers in CI.",
	},
	LangJavaScript: {
		"Use strict mode and const/let; avoid implicit globals.",
		"Use optional chaining and nullish coalescing for possibly-absent values.",
		"Handle promise rejections; an unhandled rejection is a crash in waiting.",
	},
}

// Assemble renders the matches into the final report text. Output is a pure
// function of its inputs: identical matches always produce byte-identical
// text. Sections appear in fixed order: summary, per-match paragraphs sorted
// by severity (descending) then catalog order, and a closing best-practices
// note when the language is known.
func Assemble(matches []Match, lang Language) string {
	var b strings.Builder
	b.WriteString(reportBanner + "\n")
	b.WriteString("CODE ERROR ANALYSIS REPORT\n")
	b.WriteString(reportBanner + "\n\n")

	if len(matches) == 0 {
		b.WriteString("Summary: no issues detected.\n")
		b.WriteString("\n" + reportBanner + "\n")
		return b.String()
	}

	ordered := make([]Match, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Severity != ordered[j].Severity {
			return ordered[i].Severity > ordered[j].Severity
		}
		return ordered[i].catalogIndex < ordered[j].catalogIndex
	})

	highest := ordered[0].Severity
	b.WriteString(fmt.Sprintf("Summary: %d issue(s) found, highest severity %s.\n", len(ordered), highest))

	for i, m := range ordered {
		b.WriteString(fmt.Sprintf("\n[%d] %s (%s)\n", i+1, m.Signature.Kind, m.Severity))
		b.WriteString("    " + m.Explanation + "\n")
		if tip, ok := remediationTips[m.Signature.Kind]; ok {
			b.WriteString("    Tip: " + tip + "\n")
		}
	}

	if practices, ok := bestPractices[lang]; ok {
		b.WriteString(fmt.Sprintf("\nBest practices for %s:\n", lang.DisplayName()))
		for _, p := range practices {
			b.WriteString("  - " + p + "\n")
		}
	}
	b.WriteString("\n" + reportBanner + "\n")
	return b.String()
}

const noInputReport = reportBanner + "\n" +
	"CODE ERROR ANALYSIS REPORT\n" +
	reportBanner + "\n\n" +
	"No input provided: submit a code snippet, an error log, or both.\n"
