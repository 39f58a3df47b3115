package correct

import (
	"context"
	"log"
	"sort"
	"time"

	"fixify/internal/engine"
	"fixify/internal/llmclient"
)

// Input carries everything a strategy may consult.
type Input struct {
	Language engine.Language
	Code     string
	Log      string
	Report   string
	Matches  []engine.Match
}

// Strategy is one rung of the fallback chain. Apply returns ok=false to pass
// the input to the next strategy; it must not fail in any other way.
type Strategy interface {
	Source() engine.CorrectionSource
	Apply(ctx context.Context, in Input) (string, bool)
}

// Corrector runs an ordered strategy chain (generative, heuristic, unchanged)
// until one succeeds. The final rung always succeeds, so Correct is total.
type Corrector struct {
	strategies []Strategy
	logger     *log.Logger
}

// Option configures a Corrector.
type Option func(*Corrector)

func WithLogger(logger *log.Logger) Option {
	return func(c *Corrector) { c.logger = logger }
}

// New builds the standard chain around the given capability client. A nil
// client skips the generative rung entirely.
func New(client llmclient.Client, timeout time.Duration, opts ...Option) *Corrector {
	c := &Corrector{logger: log.Default()}
	if client != nil {
		c.strategies = append(c.strategies, &generative{client: client, timeout: timeout})
	}
	c.strategies = append(c.strategies, heuristic{}, unchanged{})
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Correct implements engine.Corrector.
func (c *Corrector) Correct(ctx context.Context, lang engine.Language, code, logText, report string, matches []engine.Match) engine.Correction {
	in := Input{Language: lang, Code: code, Log: logText, Report: report, Matches: sortBySeverity(matches)}
	for _, s := range c.strategies {
		if fixed, ok := s.Apply(ctx, in); ok {
			return engine.Correction{Code: fixed, Source: s.Source()}
		}
		c.logger.Printf("correction: %s strategy declined, falling back", s.Source())
	}
	// Unreachable while the chain ends in unchanged; kept for safety.
	return engine.Correction{Code: code, Source: engine.SourceUnchanged}
}

func sortBySeverity(matches []engine.Match) []engine.Match {
	out := make([]engine.Match, len(matches))
	copy(out, matches)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity > out[j].Severity
	})
	return out
}

// -------- generative --------

const defaultTimeout = 12 * time.Second

type generative struct {
	client  llmclient.Client
	timeout time.Duration
}

func (generative) Source() engine.CorrectionSource { return engine.SourceGenerative }

func (g *generative) Apply(ctx context.Context, in Input) (string, bool) {
	if in.Code == "" {
		// Nothing to correct; generating code from a bare log would invent a
		// program the user never wrote.
		return "", false
	}
	timeout := g.timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := g.client.GenerateText(ctx, buildPrompt(in.Code, in.Log, in.Report))
	if err != nil {
		return "", false
	}
	return extractCode(resp)
}

// -------- heuristic --------

type heuristic struct{}

func (heuristic) Source() engine.CorrectionSource { return engine.SourceHeuristic }

func (heuristic) Apply(_ context.Context, in Input) (string, bool) {
	return applyHeuristic(in.Language, in.Code, in.Matches)
}

// -------- unchanged --------

type unchanged struct{}

func (unchanged) Source() engine.CorrectionSource { return engine.SourceUnchanged }

func (unchanged) Apply(_ context.Context, in Input) (string, bool) {
	return in.Code, true
}
