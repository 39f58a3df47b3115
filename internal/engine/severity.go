package engine

// crashKinds are floored at High regardless of a signature's base severity:
// they terminate the process rather than corrupt a single operation.
var crashKinds = map[ErrorKind]bool{
	KindMemoryFault:    true,
	KindRecursionLimit: true,
}

// Classify derives the final severity for a match. The base tier comes from
// the signature; a kind repeated in the log escalates one tier (capped at
// Critical); crash-causing kinds are floored at High. The function is pure
// and idempotent: it reads only the match's immutable inputs, so reclassifying
// an already-classified match yields the same tier.
func Classify(m Match) Severity {
	sev := m.Signature.BaseSeverity
	if m.Occurrences > 1 {
		sev = sev.Escalate()
	}
	if crashKinds[m.Signature.Kind] && sev < SeverityHigh {
		sev = SeverityHigh
	}
	return sev
}

// classifyAll applies Classify across a slice, returning a new slice so the
// matcher's output stays untouched.
func classifyAll(matches []Match) []Match {
	out := make([]Match, len(matches))
	for i, m := range matches {
		m.Severity = Classify(m)
		out[i] = m
	}
	return out
}
