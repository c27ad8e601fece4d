//go:build js || wasm

package console

import (
	"strings"
	"syscall/js"
)

func Log(args ...any) {
	console := js.Global().Get("console")
	console.Call("log", args...)
}

func Debug(args ...any) {
	console := js.Global().Get("console")
	console.Call("debug", args...)
}

func Warn(args ...any) {
	console := js.Global().Get("console")
	console.Call("warn", args...)
}

func Error(args ...any) {
	console := js.Global().Get("console")
	console.Call("error", args...)
}

// Writer forwards each written line to console.log. It is the sink the
// zap logger writes through in the browser.
type Writer struct{}

func (Writer) Write(p []byte) (int, error) {
	Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func (Writer) Sync() error { return nil }
