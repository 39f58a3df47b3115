package engine

import "context"

// Stage names the pipeline states in transition order.
type Stage string

const (
	StageReceived         Stage = "received"
	StageLanguageDetected Stage = "language_detected"
	StageMatched          Stage = "matched"
	StageClassified       Stage = "classified"
	StageReportAssembled  Stage = "report_assembled"
	StageCorrected        Stage = "corrected"
	StageDone             Stage = "done"
)

// StageHook observes pipeline transitions. Hooks are for reporting progress
// (e.g. streaming to a client); they must not mutate the diagnosis.
type StageHook func(stage Stage)

type ctxKeyStageHook struct{}

// WithStageHook attaches a stage hook to the context used by Diagnose.
func WithStageHook(ctx context.Context, hook StageHook) context.Context {
	return context.WithValue(ctx, ctxKeyStageHook{}, hook)
}

// stageHookFrom returns the hook stored in the context, or a no-op.
func stageHookFrom(ctx context.Context) StageHook {
	if v := ctx.Value(ctxKeyStageHook{}); v != nil {
		if h, ok := v.(StageHook); ok {
			return h
		}
	}
	return func(Stage) {}
}
