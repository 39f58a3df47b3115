package engine_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixify/internal/correct"
	"fixify/internal/engine"
	"fixify/internal/llmclient"
)

func newOfflineEngine(t *testing.T) *engine.Engine {
	t.Helper()
	failing := &llmclient.FakeClient{Err: errors.New("capability unavailable")}
	corrector := correct.New(failing, time.Second)
	return engine.New(engine.NewCatalog(), corrector, nil)
}

func TestDiagnose_PythonIndexError(t *testing.T) {
	eng := newOfflineEngine(t)
	code := "def process_list(items):\n    for i in range(10):\n        print(items[i])"
	log := "IndexError: list index out of range at line 3"

	res := eng.Diagnose(context.Background(), code, log)

	assert.Equal(t, engine.LangPython, res.Language)
	assert.Contains(t, res.Report, "index")
	assert.Contains(t, res.Report, "range")
	assert.Contains(t, res.Report, "1 issue(s) found")
	// Capability is down, so the mechanical fix bounds the loop.
	assert.Equal(t, engine.SourceHeuristic, res.Source)
	assert.Contains(t, res.CorrectedCode, "range(len(items))")
}

func TestDiagnose_JavaLogOnly(t *testing.T) {
	eng := newOfflineEngine(t)
	log := "NullPointerException at Foo.bar(Foo.java:10)"

	res := eng.Diagnose(context.Background(), "", log)

	assert.Equal(t, engine.LangJava, res.Language)
	assert.Contains(t, res.Report, "NullDereference")
	assert.NotEmpty(t, res.Report)
	// No code was supplied; nothing to correct.
	assert.Equal(t, engine.SourceUnchanged, res.Source)
	assert.Empty(t, res.CorrectedCode)
}

func TestDiagnose_JavaScriptNullRead(t *testing.T) {
	eng := newOfflineEngine(t)
	code := "function show(user) {\n  return user.name;\n}"
	log := "TypeError: Cannot read properties of undefined (reading 'name')"

	res := eng.Diagnose(context.Background(), code, log)

	assert.Equal(t, engine.LangJavaScript, res.Language)
	assert.Contains(t, res.Report, "NullDereference")
	// Capability is down, so the optional-chaining rewrite applies.
	assert.Equal(t, engine.SourceHeuristic, res.Source)
	assert.Contains(t, res.CorrectedCode, "user?.name")
}

func TestDiagnose_NoInput(t *testing.T) {
	eng := newOfflineEngine(t)

	res := eng.Diagnose(context.Background(), "", "")

	assert.Contains(t, res.Report, "No input provided")
	assert.Empty(t, res.CorrectedCode)
	assert.Equal(t, engine.SourceUnchanged, res.Source)
}

func TestDiagnose_TwoDistinctPatternsOrdered(t *testing.T) {
	eng := newOfflineEngine(t)
	log := "TypeError: unsupported operand type(s)\nSyntaxError: invalid syntax"

	res := eng.Diagnose(context.Background(), "", log)

	require.Contains(t, res.Report, "SyntaxError")
	require.Contains(t, res.Report, "TypeMismatch")
	assert.Contains(t, res.Report, "2 issue(s) found")
	assert.Contains(t, res.Report, "[1] SyntaxError")
	assert.Contains(t, res.Report, "[2] TypeMismatch")
}

func TestDiagnose_GenerativeCorrection(t *testing.T) {
	response := "Here is the fix:\n```python\ndef process_list(items):\n    for i in range(len(items)):\n        print(items[i])\n```\n"
	corrector := correct.New(llmclient.NewFakeClient(response), time.Second)
	eng := engine.New(engine.NewCatalog(), corrector, nil)

	code := "def process_list(items):\n    for i in range(10):\n        print(items[i])"
	res := eng.Diagnose(context.Background(), code, "IndexError: list index out of range at line 3")

	assert.Equal(t, engine.SourceGenerative, res.Source)
	assert.Contains(t, res.CorrectedCode, "range(len(items))")
	assert.NotContains(t, res.CorrectedCode, "Here is the fix")
}

func TestDiagnose_StageHookSeesAllTransitions(t *testing.T) {
	eng := newOfflineEngine(t)
	var stages []engine.Stage
	ctx := engine.WithStageHook(context.Background(), func(s engine.Stage) {
		stages = append(stages, s)
	})

	_ = eng.Diagnose(ctx, "", "IndexError: boom")

	want := []engine.Stage{
		engine.StageReceived,
		engine.StageLanguageDetected,
		engine.StageMatched,
		engine.StageClassified,
		engine.StageReportAssembled,
		engine.StageCorrected,
		engine.StageDone,
	}
	assert.Equal(t, want, stages)
}
