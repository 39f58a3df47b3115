package llmclient

import (
	"context"
	"errors"
)

// Client is the external generative capability: prompt in, text out, may fail
// or time out. Cross-cutting concerns (retries, rate limiting, logging) are
// applied via middleware in internal/llm.
type Client interface {
	Name() string
	GenerateText(ctx context.Context, prompt string) (string, error)
	Close() error
}

// ErrEmptyResponse is returned when the provider answered without usable text.
var ErrEmptyResponse = errors.New("empty response from LLM")

// PermanentError indicates an error that will not resolve with retries.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}
