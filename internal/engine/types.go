package engine

import "regexp"

// Language identifies the source language a snippet/log pair belongs to.
type Language string

const (
	LangPython     Language = "python"
	LangJava       Language = "java"
	LangCpp        Language = "cpp"
	LangJavaScript Language = "javascript"
	LangUnknown    Language = "unknown"
)

// DisplayName returns the human-facing spelling used in reports.
func (l Language) DisplayName() string {
	switch l {
	case LangPython:
		return "Python"
	case LangJava:
		return "Java"
	case LangCpp:
		return "C++"
	case LangJavaScript:
		return "JavaScript"
	default:
		return "unknown"
	}
}

// ErrorKind is the canonical category of a diagnosed fault, independent of
// the source language's spelling (IndexError vs ArrayIndexOutOfBoundsException).
type ErrorKind string

const (
	KindIndexOutOfRange    ErrorKind = "IndexOutOfRange"
	KindNullDereference    ErrorKind = "NullDereference"
	KindTypeMismatch       ErrorKind = "TypeMismatch"
	KindSyntaxError        ErrorKind = "SyntaxError"
	KindUndefinedReference ErrorKind = "UndefinedReference"
	KindMemoryFault        ErrorKind = "MemoryFault"
	KindDivisionByZero     ErrorKind = "DivisionByZero"
	KindKeyNotFound        ErrorKind = "KeyNotFound"
	KindRecursionLimit     ErrorKind = "RecursionLimit"
	KindFormatError        ErrorKind = "FormatError"
	KindUnrecognized       ErrorKind = "Unrecognized"
)

// Severity is the four-tier impact scale.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "Critical"
	case SeverityHigh:
		return "High"
	case SeverityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// Escalate bumps one tier, capped at Critical.
func (s Severity) Escalate() Severity {
	if s >= SeverityCritical {
		return SeverityCritical
	}
	return s + 1
}

// ErrorSignature pairs a language-specific text pattern with a canonical
// error kind, an explanation template, and a base severity. Signatures live
// in a static ordered catalog; order determines match priority.
type ErrorSignature struct {
	Language     Language
	Kind         ErrorKind
	Pattern      *regexp.Regexp
	Explanation  string
	BaseSeverity Severity
}

// Match is one diagnosed fault: the signature that fired, the classified
// severity, the rendered explanation, and an optional line hint from the log.
type Match struct {
	Signature   ErrorSignature
	Line        int // 0 when the log carries no usable location
	Occurrences int
	Severity    Severity
	Explanation string

	catalogIndex int
}
