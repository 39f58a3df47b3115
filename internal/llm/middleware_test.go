package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixify/internal/llmclient"
)

// flaky fails a fixed number of times before succeeding.
type flaky struct {
	failures int
	calls    int
	err      error
}

func (f *flaky) Name() string { return "flaky" }
func (f *flaky) Close() error { return nil }
func (f *flaky) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", f.err
	}
	return "ok", nil
}

func TestRetry_RecoversFromTransientFailure(t *testing.T) {
	c := &flaky{failures: 1, err: errors.New("transient")}
	wrapped := Wrap(c, Retry(2, time.Millisecond))

	out, err := wrapped.GenerateText(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, 2, c.calls)
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	c := &flaky{failures: 10, err: errors.New("transient")}
	wrapped := Wrap(c, Retry(2, time.Millisecond))

	_, err := wrapped.GenerateText(context.Background(), "p")
	require.Error(t, err)
	assert.Equal(t, 2, c.calls)
}

func TestRetry_PermanentErrorShortCircuits(t *testing.T) {
	c := &flaky{failures: 10, err: llmclient.NewPermanentError(errors.New("too big"))}
	wrapped := Wrap(c, Retry(3, time.Millisecond))

	_, err := wrapped.GenerateText(context.Background(), "p")
	require.Error(t, err)
	assert.Equal(t, 1, c.calls)

	var pErr *llmclient.PermanentError
	assert.True(t, errors.As(err, &pErr))
}

func TestRetry_StopsOnCanceledContext(t *testing.T) {
	c := &flaky{failures: 10, err: errors.New("transient")}
	wrapped := Wrap(c, Retry(5, time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := wrapped.GenerateText(ctx, "p")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWrap_AppliesLeftToRight(t *testing.T) {
	inner := &flaky{}
	wrapped := Wrap(inner, WithLogging(nil), Retry(1, time.Millisecond))

	out, err := wrapped.GenerateText(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, "flaky", wrapped.Name())
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	inner := &flaky{}
	wrapped := Wrap(inner, RateLimit(0, 0))

	out, err := wrapped.GenerateText(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}
