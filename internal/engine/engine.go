package engine

import (
	"context"
	"log"
)

// CorrectionSource tells where the corrected code came from.
type CorrectionSource string

const (
	SourceGenerative CorrectionSource = "generative"
	SourceHeuristic  CorrectionSource = "heuristic"
	SourceUnchanged  CorrectionSource = "unchanged"
)

// Correction is the outcome of the correction step.
type Correction struct {
	Code   string
	Source CorrectionSource
}

// Corrector produces corrected code for a diagnosed snippet. Implementations
// must be total: degraded outcomes are expressed through Source, never through
// a pipeline-visible failure.
type Corrector interface {
	Correct(ctx context.Context, lang Language, code, log, report string, matches []Match) Correction
}

// Result is the caller-visible output of one diagnosis call.
type Result struct {
	Report        string           `json:"report"`
	CorrectedCode string           `json:"corrected_code"`
	Language      Language         `json:"language"`
	Source        CorrectionSource `json:"correction_source"`
}

// Engine drives the diagnosis pipeline: detect language, match patterns,
// classify severity, assemble the report, orchestrate correction. It holds no
// per-call state; one Engine serves all concurrent calls.
type Engine struct {
	catalog   *Catalog
	corrector Corrector
	logger    *log.Logger
}

// New wires an Engine. catalog must be non-nil; that is a process
// configuration invariant, not a per-request condition.
func New(catalog *Catalog, corrector Corrector, logger *log.Logger) *Engine {
	if catalog == nil {
		panic("engine: nil catalog")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{catalog: catalog, corrector: corrector, logger: logger}
}

// Diagnose runs the full pipeline for one snippet/log pair. Every internal
// step degrades gracefully (unknown language, zero matches, unchanged
// correction); the pipeline never fails for well-formed input.
func (e *Engine) Diagnose(ctx context.Context, code, logText string) Result {
	hook := stageHookFrom(ctx)
	hook(StageReceived)

	if code == "" && logText == "" {
		hook(StageDone)
		return Result{Report: noInputReport, Language: LangUnknown, Source: SourceUnchanged}
	}

	lang := DetectLanguage(code, logText)
	hook(StageLanguageDetected)

	matches := e.catalog.Match(lang, code, logText)
	hook(StageMatched)

	matches = classifyAll(matches)
	hook(StageClassified)

	report := Assemble(matches, lang)
	hook(StageReportAssembled)

	correction := Correction{Code: code, Source: SourceUnchanged}
	if e.corrector != nil {
		correction = e.corrector.Correct(ctx, lang, code, logText, report, matches)
	}
	hook(StageCorrected)

	e.logger.Printf("diagnosis done: lang=%s matches=%d source=%s", lang, len(matches), correction.Source)
	hook(StageDone)
	return Result{
		Report:        report,
		CorrectedCode: correction.Code,
		Language:      lang,
		Source:        correction.Source,
	}
}
