//go:build !wasm
// +build !wasm

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Level(t *testing.T) {
	logger, err := NewLogger("warn")
	require.NoError(t, err)

	assert.False(t, logger.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, err := NewLogger("loud")
	assert.Error(t, err)
}
