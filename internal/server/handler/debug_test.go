package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixify/internal/cache/result"
	"fixify/internal/engine"
)

// countingCorrector records invocations so cache behavior is observable.
type countingCorrector struct {
	calls int
}

func (c *countingCorrector) Correct(_ context.Context, _ engine.Language, code, _, _ string, _ []engine.Match) engine.Correction {
	c.calls++
	return engine.Correction{Code: code, Source: engine.SourceUnchanged}
}

func newTestHandler(t *testing.T) (*DebugHandler, *countingCorrector) {
	t.Helper()
	corrector := &countingCorrector{}
	eng := engine.New(engine.NewCatalog(), corrector, nil)
	cache, err := result.New(16, time.Minute)
	require.NoError(t, err)
	return NewDebugHandler(eng, cache, nil), corrector
}

func postDebug(t *testing.T, h *DebugHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/debug", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleDebug(rec, req)
	return rec
}

func TestHandleDebug_Roundtrip(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postDebug(t, h, `{"code":"","log":"IndexError: list index out of range at line 3"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res engine.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Contains(t, res.Report, "IndexOutOfRange")
	assert.Equal(t, engine.LangPython, res.Language)
}

func TestHandleDebug_EmptyInputStillOK(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postDebug(t, h, `{"code":"","log":""}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res engine.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Contains(t, res.Report, "No input provided")
	assert.Empty(t, res.CorrectedCode)
}

func TestHandleDebug_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := postDebug(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDebug_MethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/debug", nil)
	rec := httptest.NewRecorder()
	h.HandleDebug(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleDebug_SecondIdenticalRequestHitsCache(t *testing.T) {
	h, corrector := newTestHandler(t)
	body := `{"code":"x = 1","log":"NameError: name 'y' is not defined"}`

	first := postDebug(t, h, body)
	second := postDebug(t, h, body)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, corrector.calls)
}
