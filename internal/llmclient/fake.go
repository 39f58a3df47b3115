package llmclient

import "context"

// FakeClient returns a scripted response for offline runs and tests.
type FakeClient struct {
	Response string
	Err      error
}

func NewFakeClient(response string) *FakeClient {
	return &FakeClient{Response: response}
}

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.Err != nil {
		return "", f.Err
	}
	if f.Response == "" {
		return "", ErrEmptyResponse
	}
	return f.Response, nil
}
