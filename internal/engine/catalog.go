package engine

import "regexp"

// Catalog is the static ordered set of error signatures. It is built once at
// process start, is read-only afterwards, and is shared by reference across
// concurrent diagnosis calls; no locking is needed.
type Catalog struct {
	byLanguage map[Language][]ErrorSignature
	generic    []ErrorSignature
}

// NewCatalog builds the full signature catalog. Within one language the slice
// order is the match priority: first signature wins per kind.
func NewCatalog() *Catalog {
	c := &Catalog{byLanguage: make(map[Language][]ErrorSignature)}
	c.registerPython()
	c.registerJava()
	c.registerCpp()
	c.registerJavaScript()
	c.registerGeneric()
	return c
}

func (c *Catalog) add(sig ErrorSignature) {
	if sig.Language == LangUnknown {
		c.generic = append(c.generic, sig)
		return
	}
	c.byLanguage[sig.Language] = append(c.byLanguage[sig.Language], sig)
}

func sig(lang Language, kind ErrorKind, pattern, explanation string, sev Severity) ErrorSignature {
	return ErrorSignature{
		Language:     lang,
		Kind:         kind,
		Pattern:      regexp.MustCompile(pattern),
		Explanation:  explanation,
		BaseSeverity: sev,
	}
}

func (c *Catalog) registerPython() {
	c.add(sig(LangPython, KindSyntaxError, `\b(?:SyntaxError|IndentationError|TabError)\b`,
		"The interpreter could not parse the code; nothing runs until the syntax is fixed.", SeverityCritical))
	c.add(sig(LangPython, KindIndexOutOfRange, `\bIndexError\b`,
		"An index outside the valid range of a list, tuple, or string was accessed.", SeverityHigh))
	c.add(sig(LangPython, KindKeyNotFound, `\bKeyError\b`,
		"A dictionary was accessed with a key that does not exist.", SeverityHigh))
	c.add(sig(LangPython, KindUndefinedReference, `\bNameError\b`,
		"A variable or function name was used before it was defined.", SeverityHigh))
	c.add(sig(LangPython, KindNullDereference, `\bAttributeError\b`,
		"An attribute or method was accessed on an object that does not provide it, often a None value.", SeverityHigh))
	c.add(sig(LangPython, KindDivisionByZero, `\bZeroDivisionError\b`,
		"A division or modulo operation was attempted with a zero divisor.", SeverityHigh))
	c.add(sig(LangPython, KindTypeMismatch, `\bTypeError\b`,
		"An operation was applied to a value of an incompatible type.", SeverityHigh))
	c.add(sig(LangPython, KindRecursionLimit, `\bRecursionError\b`,
		"The maximum recursion depth was exceeded, usually from a missing base case.", SeverityHigh))
	c.add(sig(LangPython, KindFormatError, `\bjson\.decoder\.JSONDecodeError\b|\bJSONDecodeError\b`,
		"Malformed JSON input could not be parsed.", SeverityMedium))
	c.add(sig(LangPython, KindMemoryFault, `\bMemoryError\b`,
		"The process ran out of memory while allocating an object.", SeverityHigh))
}

func (c *Catalog) registerJava() {
	c.add(sig(LangJava, KindNullDereference, `\bNullPointerException\b`,
		"A reference that points to no object (null) was dereferenced.", SeverityHigh))
	c.add(sig(LangJava, KindIndexOutOfRange, `\b(?:ArrayIndexOutOfBoundsException|IndexOutOfBoundsException|StringIndexOutOfBoundsException)\b`,
		"An array or collection index outside the valid range was accessed.", SeverityHigh))
	c.add(sig(LangJava, KindTypeMismatch, `\b(?:ClassCastException|NumberFormatException)\b`,
		"A value could not be converted to the expected type.", SeverityHigh))
	c.add(sig(LangJava, KindDivisionByZero, `\bArithmeticException\b`,
		"An illegal arithmetic operation was performed, typically an integer division by zero.", SeverityHigh))
	c.add(sig(LangJava, KindRecursionLimit, `\bStackOverflowError\b`,
		"The call stack overflowed, usually from unbounded recursion.", SeverityHigh))
	c.add(sig(LangJava, KindMemoryFault, `\bOutOfMemoryError\b`,
		"The JVM could not allocate memory for an object.", SeverityHigh))
	c.add(sig(LangJava, KindUndefinedReference, `\bcannot find symbol\b`,
		"A referenced class, method, or variable is not visible to the compiler.", SeverityCritical))
	c.add(sig(LangJava, KindSyntaxError, `(?m)\berror: (?:';' expected|illegal start of|reached end of file)`,
		"The compiler could not parse the source file.", SeverityCritical))
}

func (c *Catalog) registerCpp() {
	c.add(sig(LangCpp, KindMemoryFault, `(?i)segmentation fault|\bSIGSEGV\b|core dumped`,
		"The program accessed memory it does not own and was killed by the operating system.", SeverityCritical))
	c.add(sig(LangCpp, KindIndexOutOfRange, `\bstd::out_of_range\b`,
		"A bounds-checked container access was outside the valid range.", SeverityHigh))
	c.add(sig(LangCpp, KindNullDereference, `(?i)null pointer dereference|\bbad_access\b`,
		"A null pointer was dereferenced.", SeverityHigh))
	c.add(sig(LangCpp, KindUndefinedReference, `\bundefined reference to\b`,
		"The linker could not find a definition for a referenced symbol.", SeverityCritical))
	c.add(sig(LangCpp, KindTypeMismatch, `(?m)error: .*(?:invalid conversion|cannot convert)`,
		"A value of one type was used where an incompatible type is required.", SeverityHigh))
	c.add(sig(LangCpp, KindSyntaxError, `(?m)error: (?:expected|stray)`,
		"The compiler could not parse the source file.", SeverityCritical))
}

func (c *Catalog) registerJavaScript() {
	c.add(sig(LangJavaScript, KindNullDereference, `TypeError: Cannot read propert(?:y|ies) .* of (?:null|undefined)|TypeError: .* is (?:null|undefined)`,
		"A property was read from a null or undefined value.", SeverityHigh))
	c.add(sig(LangJavaScript, KindUndefinedReference, `ReferenceError: .* is not defined`,
		"An identifier was used before any declaration was in scope.", SeverityHigh))
	c.add(sig(LangJavaScript, KindTypeMismatch, `\bTypeError\b`,
		"An operation was applied to a value of an incompatible type.", SeverityHigh))
	c.add(sig(LangJavaScript, KindSyntaxError, `\bSyntaxError\b`,
		"The engine could not parse the script.", SeverityCritical))
	c.add(sig(LangJavaScript, KindIndexOutOfRange, `\bRangeError\b`,
		"A value was outside the range the operation accepts.", SeverityMedium))
}

func (c *Catalog) registerGeneric() {
	// Tried only when the language is unknown, or when no language-specific
	// signature fired but a log was supplied.
	c.add(sig(LangUnknown, KindMemoryFault, `(?i)segmentation fault|\bout of memory\b`,
		"The process crashed from a memory fault.", SeverityCritical))
	c.add(sig(LangUnknown, KindSyntaxError, `(?i)\bsyntax error\b`,
		"The input could not be parsed.", SeverityCritical))
	c.add(sig(LangUnknown, KindUnrecognized, `(?i)\b(?:error|exception|fatal|panic)\b`,
		"The log reports a failure that does not match a known signature.", SeverityMedium))
}

// Signatures returns the ordered signature list for a language. Unknown maps
// to the generic list only.
func (c *Catalog) Signatures(lang Language) []ErrorSignature {
	if lang == LangUnknown {
		return c.generic
	}
	return c.byLanguage[lang]
}

// Generic returns the language-independent fallback signatures.
func (c *Catalog) Generic() []ErrorSignature { return c.generic }
