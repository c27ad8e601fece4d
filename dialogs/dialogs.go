//go:build js || wasm

package dialogs

import (
	"syscall/js"
)

func Alert(msg string) {
	js.Global().Call("alert", msg)
}

func Confirm(message string) bool {
	return js.Global().Call("confirm", message).Bool()
}
