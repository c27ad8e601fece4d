// Package logging builds the zap logger shared by the slider components.
package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vcrobe/nojs-nouislider/console"
)

// NewLogger provides a logger instance for the whole program. Output goes
// through console.Writer, which lands in the browser devtools under WASM.
func NewLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()

	// the browser console doesn't do ANSI colors
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	// make it readable
	encoderConfig.EncodeCaller = nil
	encoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
	}
	encoderConfig.EncodeName = func(s string, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(fmt.Sprintf("%-22s", s))
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(console.Writer{}),
		zap.NewAtomicLevelAt(lvl),
	)

	return zap.New(core).Sugar(), nil
}
