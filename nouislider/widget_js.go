//go:build js || wasm
// +build js wasm

package nouislider

import (
	"errors"
	"fmt"
	"syscall/js"
)

type browserBinding struct{}

// Browser returns the binding backed by the page's global noUiSlider.
func Browser() Binding {
	return browserBinding{}
}

func (browserBinding) NewContainer(className string) (Container, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, errors.New("no document to create the slider container in")
	}

	el := doc.Call("createElement", "div")
	el.Set("className", className)
	return &jsContainer{el: el}, nil
}

func (browserBinding) Create(container Container, payload map[string]any) (w Widget, err error) {
	c, ok := container.(*jsContainer)
	if !ok {
		return nil, fmt.Errorf("container %T was not created by the browser binding", container)
	}

	if err := LibraryLoaded(); err != nil {
		return nil, err
	}
	lib := js.Global().Get("noUiSlider")

	// the widget throws on options it can't work with
	defer func() {
		if rec := recover(); rec != nil {
			w = nil
			err = fmt.Errorf("noUiSlider.create: %v", rec)
		}
	}()

	native := lib.Call("create", c.el, js.ValueOf(payload))
	return &jsWidget{v: native, listeners: make(map[string]js.Func)}, nil
}

// LibraryLoaded returns ErrNotLoaded until the page has defined the
// noUiSlider global.
func LibraryLoaded() error {
	if !js.Global().Get("noUiSlider").Truthy() {
		return ErrNotLoaded
	}
	return nil
}

type jsContainer struct {
	el js.Value
}

func (c *jsContainer) QueryAll(selector string) []Element {
	nodes := c.el.Call("querySelectorAll", selector)
	out := make([]Element, 0, nodes.Length())
	for i := 0; i < nodes.Length(); i++ {
		out = append(out, jsElement{v: nodes.Index(i)})
	}
	return out
}

func (c *jsContainer) Native() any {
	return c.el
}

type jsElement struct {
	v js.Value
}

func (e jsElement) Text() string {
	return e.v.Get("textContent").String()
}

func (e jsElement) SetText(text string) {
	e.v.Set("textContent", text)
}

func (e jsElement) Attr(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

type jsWidget struct {
	v         js.Value
	listeners map[string]js.Func
}

func (w *jsWidget) On(event string, l Listener) {
	w.Off(event)

	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		converted := make([]any, len(args))
		for i, a := range args {
			converted[i] = toGo(a)
		}
		l(converted)
		return nil
	})
	w.listeners[event] = fn
	w.v.Call("on", event, fn)
}

func (w *jsWidget) Off(event string) {
	fn, ok := w.listeners[event]
	if !ok {
		return
	}
	w.v.Call("off", event)
	fn.Release()
	delete(w.listeners, event)
}

func (w *jsWidget) Get(unencoded bool) []any {
	// a single handle slider returns a scalar
	v := toGo(w.v.Call("get", unencoded))
	if list, ok := v.([]any); ok {
		return list
	}
	return []any{v}
}

func (w *jsWidget) Set(values []float64, fireSetEvent bool) {
	w.v.Call("set", floatsToJS(values), fireSetEvent)
}

func (w *jsWidget) SetHandle(handle int, value float64, fireSetEvent, exactInput bool) {
	w.v.Call("setHandle", handle, value, fireSetEvent, exactInput)
}

func (w *jsWidget) Reset(fireSetEvent bool) {
	w.v.Call("reset", fireSetEvent)
}

func (w *jsWidget) UpdateOptions(partial map[string]any, fireSetEvent bool) {
	w.v.Call("updateOptions", js.ValueOf(partial), fireSetEvent)
}

func (w *jsWidget) GetTooltips() []Element {
	return elementList(w.v.Call("getTooltips"))
}

func (w *jsWidget) GetOrigins() []Element {
	return elementList(w.v.Call("getOrigins"))
}

func (w *jsWidget) GetPositions() []float64 {
	positions := w.v.Call("getPositions")
	out := make([]float64, positions.Length())
	for i := range out {
		out[i] = positions.Index(i).Float()
	}
	return out
}

func (w *jsWidget) Pips(options map[string]any) Element {
	el := w.v.Call("pips", js.ValueOf(options))
	if !el.Truthy() {
		return nil
	}
	return jsElement{v: el}
}

func (w *jsWidget) RemovePips() {
	w.v.Call("removePips")
}

func (w *jsWidget) RemoveTooltips() {
	w.v.Call("removeTooltips")
}

func (w *jsWidget) Destroy() {
	for event := range w.listeners {
		w.Off(event)
	}
	w.v.Call("destroy")
}

// elementList converts an array of nodes where handles without a node
// hold false.
func elementList(v js.Value) []Element {
	if !v.Truthy() {
		return nil
	}
	out := make([]Element, v.Length())
	for i := range out {
		item := v.Index(i)
		if item.Truthy() {
			out[i] = jsElement{v: item}
		}
	}
	return out
}

func floatsToJS(values []float64) js.Value {
	list := make([]any, len(values))
	for i, v := range values {
		list[i] = v
	}
	return js.ValueOf(list)
}

func toGo(v js.Value) any {
	switch v.Type() {
	case js.TypeString:
		return v.String()
	case js.TypeNumber:
		return v.Float()
	case js.TypeBoolean:
		return v.Bool()
	case js.TypeUndefined, js.TypeNull:
		return nil
	case js.TypeObject:
		if js.Global().Get("Array").Call("isArray", v).Bool() {
			list := make([]any, v.Length())
			for i := range list {
				list[i] = toGo(v.Index(i))
			}
			return list
		}
	}
	return v
}
