package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldAutoJSON(t *testing.T) {
	assert.True(t, shouldAutoJSON([]string{"--style", "Modern and minimal"}, false))
	assert.True(t, shouldAutoJSON([]string{"categories", "--style", "Classic"}, false))
	assert.False(t, shouldAutoJSON([]string{"--style", "Modern", "--json"}, false))
	assert.False(t, shouldAutoJSON([]string{"completion", "zsh"}, false))
	assert.False(t, shouldAutoJSON([]string{"tui"}, false))
	assert.False(t, shouldAutoJSON([]string{"--help"}, false))
	assert.False(t, shouldAutoJSON([]string{"--style", "Modern"}, true))
	assert.False(t, shouldAutoJSON(nil, false))
}

func TestFirstCommand_SkipsFlagValues(t *testing.T) {
	assert.Equal(t, "celebrities", firstCommand([]string{"--style", "Modern", "celebrities"}))
	assert.Equal(t, "categories", firstCommand([]string{"-s", "Modern and minimal", "categories"}))
	assert.Equal(t, "", firstCommand([]string{"--style", "Modern", "--json"}))
	assert.Equal(t, "", firstCommand([]string{"--", "ping"}))
}

func TestPrintQuickStart_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := printQuickStart(&buf, true)
	require.NoError(t, err)

	var payload quickStartJSON
	err = json.Unmarshal(buf.Bytes(), &payload)
	require.NoError(t, err)

	assert.Equal(t, "evolcli", payload.Name)
	assert.NotEmpty(t, payload.Usage)
	assert.Len(t, payload.Examples, 3)
}

func TestPrintCLIErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	err := printCLIErrorJSON(&buf, classifyCLIError(invalidArgsError("bad flag", "evolcli --style \"Modern\"")))
	require.NoError(t, err)

	var payload map[string]any
	err = json.Unmarshal(buf.Bytes(), &payload)
	require.NoError(t, err)

	errorObject, ok := payload["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "INVALID_ARGS", errorObject["code"])
	assert.Equal(t, "bad flag", errorObject["message"])
	assert.Equal(t, float64(ExitInvalidArgs), errorObject["exitCode"])
}

func TestClassifyCLIError_TypedErrorsPassThrough(t *testing.T) {
	err := classifyCLIError(notFoundError("no products match your filters"))
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, ExitNotFound, err.ExitCode)
}

func TestClassifyCLIError_UpstreamPatterns(t *testing.T) {
	for _, msg := range []string{
		"fetching recommendations: unexpected status 500 from /api/v1/recommendations: model not loaded",
		"fetching recommendations: executing request: connection refused",
		"checking health: unexpected status 503",
	} {
		err := classifyCLIError(errors.New(msg))
		assert.Equal(t, "UPSTREAM_ERROR", err.Code, msg)
		assert.Equal(t, ExitUpstream, err.ExitCode, msg)
	}
}

func TestClassifyCLIError_NotFoundPatterns(t *testing.T) {
	err := classifyCLIError(errors.New("no recommendations for these answers"))
	assert.Equal(t, "NOT_FOUND", err.Code)

	err = classifyCLIError(errors.New("no celebrity matches for these answers"))
	assert.Equal(t, "NOT_FOUND", err.Code)
}

func TestClassifyCLIError_UnknownFallsBackToInternal(t *testing.T) {
	err := classifyCLIError(errors.New("something inexplicable"))
	assert.Equal(t, "INTERNAL_ERROR", err.Code)
	assert.Equal(t, ExitInternal, err.ExitCode)
}

func TestFormatCLIErrorText(t *testing.T) {
	text := formatCLIErrorText(classifyCLIError(invalidArgsError("bad sort", "evolcli --sort price")))
	assert.Contains(t, text, "error[invalid_args]: bad sort")
	assert.Contains(t, text, "suggestions:")
	assert.Contains(t, text, "  evolcli --sort price")
}
