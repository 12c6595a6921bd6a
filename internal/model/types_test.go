package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseTarget verifies that only the exact "-" sentinel selects stdin.
func TestParseTarget(t *testing.T) {
	tests := []struct {
		input    string
		expected TargetKind
	}{
		{"-", KindStdin},
		{"file.txt", KindFile},
		{"./-", KindFile},
		{"--", KindFile},
		{"/tmp/a b.txt", KindFile},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			target := ParseTarget(tt.input)
			assert.Equal(t, tt.expected, target.Kind)
			assert.Equal(t, tt.input, target.Name)
			assert.Equal(t, tt.input, target.String())
			assert.Equal(t, tt.expected == KindStdin, target.IsStdin())
		})
	}
}

func TestTargetKind_String(t *testing.T) {
	assert.Equal(t, "stdin", KindStdin.String())
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "TargetKind(7)", TargetKind(7).String())
}

func TestNumberingMode_String(t *testing.T) {
	assert.Equal(t, "none", NumberNone.String())
	assert.Equal(t, "all", NumberAll.String())
	assert.Equal(t, "nonblank", NumberNonblank.String())
}

// TestNewConfig_DefaultsToStdin checks that an empty target list falls back
// to a single "-" target.
func TestNewConfig_DefaultsToStdin(t *testing.T) {
	cfg := NewConfig(nil, false, false)
	assert.Equal(t, []string{"-"}, cfg.Targets)
	require.NoError(t, cfg.Validate())

	cfg = NewConfig([]string{}, true, false)
	assert.Equal(t, []string{"-"}, cfg.Targets)
}

// TestNewConfig_CopiesTargets ensures later changes to the caller's slice
// do not leak into the Config.
func TestNewConfig_CopiesTargets(t *testing.T) {
	args := []string{"a.txt", "b.txt"}
	cfg := NewConfig(args, false, false)
	args[0] = "changed"
	assert.Equal(t, []string{"a.txt", "b.txt"}, cfg.Targets)
}

// TestConfig_Mode covers all four flag combinations. NumberAll wins when
// both are set.
func TestConfig_Mode(t *testing.T) {
	tests := []struct {
		name           string
		numberAll      bool
		numberNonblank bool
		expected       NumberingMode
	}{
		{"no flags", false, false, NumberNone},
		{"number all", true, false, NumberAll},
		{"number nonblank", false, true, NumberNonblank},
		{"both set prefers all", true, true, NumberAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig([]string{"x"}, tt.numberAll, tt.numberNonblank)
			assert.Equal(t, tt.expected, cfg.Mode())
		})
	}
}

func TestConfig_ParsedTargets(t *testing.T) {
	cfg := NewConfig([]string{"a.txt", "-", "b.txt"}, false, false)
	targets := cfg.ParsedTargets()
	require.Len(t, targets, 3)
	assert.Equal(t, Target{Name: "a.txt", Kind: KindFile}, targets[0])
	assert.Equal(t, Target{Name: "-", Kind: KindStdin}, targets[1])
	assert.Equal(t, Target{Name: "b.txt", Kind: KindFile}, targets[2])
}

func TestConfig_Validate(t *testing.T) {
	t.Run("empty targets", func(t *testing.T) {
		cfg := &Config{}
		assert.Error(t, cfg.Validate())
	})

	// An empty name is left for the emitter to report as an open failure.
	t.Run("empty target name", func(t *testing.T) {
		cfg := NewConfig([]string{"a.txt", ""}, false, false)
		assert.NoError(t, cfg.Validate())
		assert.Equal(t, Target{Name: "", Kind: KindFile}, cfg.ParsedTargets()[1])
	})

	t.Run("valid", func(t *testing.T) {
		cfg := NewConfig([]string{"a.txt", "-"}, true, false)
		assert.NoError(t, cfg.Validate())
	})
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := WrapCLIError(ExitGeneralError, "invalid arguments", nil)
		assert.Equal(t, ExitGeneralError, err.Code)
		assert.Equal(t, "invalid arguments", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("unknown shorthand flag: 'x' in -x")
		err := WrapCLIError(ExitGeneralError, "invalid arguments", inner)
		assert.Equal(t, ExitGeneralError, err.Code)
		assert.Equal(t, "invalid arguments: unknown shorthand flag: 'x' in -x", err.Error())
		assert.Equal(t, inner, err.Unwrap())
	})

	t.Run("errors.Is chain", func(t *testing.T) {
		inner := errors.New("boom")
		err := WrapCLIError(ExitGeneralError, "read failed", inner)
		assert.True(t, errors.Is(err, inner))
	})
}
