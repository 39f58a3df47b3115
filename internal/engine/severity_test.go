package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_BaseSeverityPassesThrough(t *testing.T) {
	m := Match{Signature: ErrorSignature{Kind: KindTypeMismatch, BaseSeverity: SeverityHigh}, Occurrences: 1}
	assert.Equal(t, SeverityHigh, Classify(m))
}

func TestClassify_RepeatedKindEscalatesOneTier(t *testing.T) {
	single := Match{Signature: ErrorSignature{Kind: KindKeyNotFound, BaseSeverity: SeverityMedium}, Occurrences: 1}
	repeated := single
	repeated.Occurrences = 3

	assert.Equal(t, SeverityMedium, Classify(single))
	assert.Equal(t, SeverityHigh, Classify(repeated))
	assert.Greater(t, Classify(repeated), Classify(single))
}

func TestClassify_EscalationCapsAtCritical(t *testing.T) {
	m := Match{Signature: ErrorSignature{Kind: KindSyntaxError, BaseSeverity: SeverityCritical}, Occurrences: 5}
	assert.Equal(t, SeverityCritical, Classify(m))
}

func TestClassify_CrashKindsFlooredAtHigh(t *testing.T) {
	m := Match{Signature: ErrorSignature{Kind: KindMemoryFault, BaseSeverity: SeverityLow}, Occurrences: 1}
	assert.Equal(t, SeverityHigh, Classify(m))

	m.Signature.Kind = KindRecursionLimit
	assert.Equal(t, SeverityHigh, Classify(m))
}

func TestClassify_Idempotent(t *testing.T) {
	m := Match{Signature: ErrorSignature{Kind: KindNullDereference, BaseSeverity: SeverityMedium}, Occurrences: 2}
	first := Classify(m)
	m.Severity = first
	assert.Equal(t, first, Classify(m))
}

func TestSeverityEscalateLadder(t *testing.T) {
	assert.Equal(t, SeverityMedium, SeverityLow.Escalate())
	assert.Equal(t, SeverityHigh, SeverityMedium.Escalate())
	assert.Equal(t, SeverityCritical, SeverityHigh.Escalate())
	assert.Equal(t, SeverityCritical, SeverityCritical.Escalate())
}
