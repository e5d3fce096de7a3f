package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrArgs,
		ErrIO,
		ErrConfig,
		ErrRender,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "argument error",
			code:       ErrArgs,
			message:    "Duplicate flag --cpu",
			suggestion: "Pass each switch once",
		},
		{
			name:       "io error",
			code:       ErrIO,
			message:    "Can't read /proc/stat",
			suggestion: "",
		},
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "samples must be positive",
			suggestion: "Check config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestNewArgument(t *testing.T) {
	err := NewArgument("Unknown argument '%s'.", "--gpu")

	assert.Equal(t, ErrArgs, err.Code)
	assert.Equal(t, "Unknown argument '--gpu'.", err.Message)
	assert.Contains(t, err.Suggestion, "Usage: sysgraph")
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name:          "basic error formatting",
			err:           New(ErrConfig, "Invalid configuration", "Check config.yaml syntax"),
			expectedParts: []string{"✗ Invalid configuration", "Check config.yaml syntax"},
		},
		{
			name:          "error without suggestion",
			err:           New(ErrIO, "Read failed", ""),
			expectedParts: []string{"Read failed"},
			notExpected:   []string{"\n\n  \n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	wrapped := Wrap(cause, "Can't read /proc/meminfo")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrIO, wrapped.Code, "Wrap should default to ErrIO code")
	assert.Equal(t, cause, wrapped.Cause)
	assert.True(t, errors.Is(wrapped, cause))
	assert.Contains(t, wrapped.Error(), "permission denied")
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("broken pipe")
	wrapped := WrapWithCode(cause, ErrRender, "Failed to write to terminal", "Check the output stream")

	assert.Equal(t, ErrRender, wrapped.Code)
	assert.Equal(t, "Check the output stream", wrapped.Suggestion)
	assert.Equal(t, cause, wrapped.Unwrap())
}

func TestIsCode(t *testing.T) {
	err := New(ErrArgs, "bad input", "")

	assert.True(t, IsCode(err, ErrArgs))
	assert.False(t, IsCode(err, ErrIO))
	assert.False(t, IsCode(errors.New("standard error"), ErrArgs))
	assert.False(t, IsCode(nil, ErrArgs))
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("unexpected EOF"),
		ErrIO,
		"Malformed cpu line in /proc/stat",
		"",
	)

	lines := strings.Split(err.Error(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "✗"))
	assert.Contains(t, lines[0], "Malformed cpu line")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(New(ErrArgs, "bad", "")))
	assert.Equal(t, 1, ExitCode(errors.New("plain")))
}
