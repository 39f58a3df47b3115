package correct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCode_FencedBlock(t *testing.T) {
	resp := "Sure, here you go:\n```python\nprint('hi')\n```\nHope that helps."
	code, ok := extractCode(resp)
	require.True(t, ok)
	assert.Equal(t, "print('hi')", code)
}

func TestExtractCode_FenceWithoutLanguage(t *testing.T) {
	resp := "```\nx = 1\ny = 2\n```"
	code, ok := extractCode(resp)
	require.True(t, ok)
	assert.Equal(t, "x = 1\ny = 2", code)
}

func TestExtractCode_NoFenceTakesWholeResponse(t *testing.T) {
	resp := "def f():\n    return 1\n"
	code, ok := extractCode(resp)
	require.True(t, ok)
	assert.Equal(t, "def f():\n    return 1", code)
}

func TestExtractCode_UnterminatedFenceFallsBackToVerbatim(t *testing.T) {
	resp := "```python\nprint('hi')"
	code, ok := extractCode(resp)
	require.True(t, ok)
	assert.Contains(t, code, "print('hi')")
}

func TestExtractCode_EmptyResponse(t *testing.T) {
	_, ok := extractCode("")
	assert.False(t, ok)

	_, ok = extractCode("   \n  ")
	assert.False(t, ok)
}

func TestExtractCode_EmptyFence(t *testing.T) {
	_, ok := extractCode("```python\n```")
	assert.False(t, ok)
}

func TestExtractCode_FirstBlockWins(t *testing.T) {
	resp := "```python\nfirst\n```\ntext\n```python\nsecond\n```"
	code, ok := extractCode(resp)
	require.True(t, ok)
	assert.Equal(t, "first", code)
}
