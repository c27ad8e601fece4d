//go:build !wasm
// +build !wasm

package dialogs

import "github.com/vcrobe/nojs-nouislider/console"

// Alert forwards to the console stub outside the browser.
func Alert(msg string) {
	console.Warn(msg)
}

// Confirm always declines outside the browser.
func Confirm(message string) bool {
	console.Warn(message)
	return false
}
