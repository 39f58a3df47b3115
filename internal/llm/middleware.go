package llm

import (
	"context"
	"errors"
	"log"
	"time"

	"fixify/internal/llmclient"
)

// Middleware decorates a Client to inject cross-cutting concerns
// (rate limiting, retries, logging).
type Middleware func(llmclient.Client) llmclient.Client

// Wrap applies middlewares in left-to-right order.
// Example: Wrap(inner, A, B) => A(B(inner))
func Wrap(inner llmclient.Client, mws ...Middleware) llmclient.Client {
	out := inner
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}

// -------- Retry with exponential backoff --------

// Retry retries GenerateText up to maxAttempts with exponential backoff
// starting at baseDelay. Permanent errors short-circuit; context cancellation
// stops immediately.
func Retry(maxAttempts int, baseDelay time.Duration) Middleware {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if baseDelay <= 0 {
		baseDelay = 300 * time.Millisecond
	}
	return func(next llmclient.Client) llmclient.Client {
		return &retrying{next: next, max: maxAttempts, base: baseDelay}
	}
}

type retrying struct {
	next llmclient.Client
	max  int
	base time.Duration
}

func (r *retrying) Name() string { return r.next.Name() }
func (r *retrying) Close() error { return r.next.Close() }

func (r *retrying) GenerateText(ctx context.Context, prompt string) (string, error) {
	var last error
	for i := 0; i < r.max; i++ {
		resp, err := r.next.GenerateText(ctx, prompt)
		if err == nil {
			return resp, nil
		}
		var pErr *llmclient.PermanentError
		if errors.As(err, &pErr) {
			return "", err
		}
		last = err
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}
		time.Sleep(r.base * time.Duration(1<<i))
	}
	return "", last
}

// -------- Rate limiting --------

// RateLimit limits request rate with a token-bucket limiter.
// If rps <= 0, the limiter is disabled.
func RateLimit(rps float64, burst int) Middleware {
	return func(next llmclient.Client) llmclient.Client {
		return &rateLimited{next: next, rl: newRPSLimiter(rps, burst)}
	}
}

type rateLimited struct {
	next llmclient.Client
	rl   *rpsLimiter
}

func (c *rateLimited) Name() string { return c.next.Name() }
func (c *rateLimited) Close() error { return c.next.Close() }

func (c *rateLimited) GenerateText(ctx context.Context, prompt string) (string, error) {
	if err := c.rl.Acquire(ctx); err != nil {
		return "", err
	}
	return c.next.GenerateText(ctx, prompt)
}

// -------- Logging --------

// WithLogging logs request size and errors. Provide a custom logger or nil
// to use log.Default().
func WithLogging(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next llmclient.Client) llmclient.Client {
		return &logging{next: next, log: logger}
	}
}

type logging struct {
	next llmclient.Client
	log  *log.Logger
}

func (l *logging) Name() string { return l.next.Name() }
func (l *logging) Close() error { return l.next.Close() }

func (l *logging) GenerateText(ctx context.Context, prompt string) (string, error) {
	l.log.Printf("LLM request (%s): %d bytes", l.next.Name(), len(prompt))
	resp, err := l.next.GenerateText(ctx, prompt)
	if err != nil {
		l.log.Printf("LLM error (%s): %v", l.next.Name(), err)
	}
	return resp, err
}
