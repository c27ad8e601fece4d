package nouislider

// Element is a DOM node the widget renders: a tooltip, a handle origin or
// a pip label.
type Element interface {
	Text() string
	SetText(text string)
	Attr(name string) (string, bool)
}

// Container is the node the widget is mounted into. The host places
// Native() in its own tree.
type Container interface {
	QueryAll(selector string) []Element
	Native() any
}

// Listener receives the arguments of a native event, already converted to
// Go values: strings, float64, bool, []any and nil. Anything else is passed
// through untouched.
type Listener func(args []any)

// Widget is the noUiSlider instance API. Each method maps one to one onto
// the JavaScript method of the same name.
// See https://refreshless.com/nouislider/more/#section-methods
type Widget interface {
	On(event string, l Listener)
	Off(event string)
	Get(unencoded bool) []any
	Set(values []float64, fireSetEvent bool)
	SetHandle(handle int, value float64, fireSetEvent, exactInput bool)
	Reset(fireSetEvent bool)
	UpdateOptions(partial map[string]any, fireSetEvent bool)

	// GetTooltips holds one entry per handle, nil where the handle has
	// no tooltip.
	GetTooltips() []Element
	GetOrigins() []Element
	GetPositions() []float64
	Pips(options map[string]any) Element
	RemovePips()
	RemoveTooltips()
	Destroy()
}

// Binding constructs widgets. Browser() is the real one under WASM.
type Binding interface {
	NewContainer(className string) (Container, error)
	Create(container Container, payload map[string]any) (Widget, error)
}
