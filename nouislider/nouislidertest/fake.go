// Package nouislidertest provides an in-memory noUiSlider for tests of
// code built on package nouislider. It keeps handle values, tooltips and
// pip labels the way the real widget does and lets tests fire native events.
package nouislidertest

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/vcrobe/nojs-nouislider/nouislider"
)

// Compile-time assertions that the fakes satisfy the widget boundary.
var (
	_ nouislider.Binding   = (*Binding)(nil)
	_ nouislider.Container = (*Container)(nil)
	_ nouislider.Widget    = (*Widget)(nil)
	_ nouislider.Element   = (*Element)(nil)
)

// Format renders values the way the widget's default formatter does.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Element is a DOM node with text and attributes.
type Element struct {
	text  string
	attrs map[string]string
}

// NewElement returns an element with the given text and attributes.
func NewElement(text string, attrs map[string]string) *Element {
	return &Element{text: text, attrs: attrs}
}

func (e *Element) Text() string { return e.text }

func (e *Element) SetText(text string) { e.text = text }

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Container holds the pip labels of the widget mounted in it.
type Container struct {
	ClassName string
	pips      []*Element
}

func (c *Container) QueryAll(selector string) []nouislider.Element {
	if selector != ".noUi-value" {
		return nil
	}
	out := make([]nouislider.Element, len(c.pips))
	for i, p := range c.pips {
		out[i] = p
	}
	return out
}

func (c *Container) Native() any { return c }

// PipLabels returns the current text of every pip label.
func (c *Container) PipLabels() []string {
	out := make([]string, len(c.pips))
	for i, p := range c.pips {
		out[i] = p.text
	}
	return out
}

// Binding creates fake widgets and remembers them.
type Binding struct {
	// Err, when set, is returned by Create.
	Err     error
	Widgets []*Widget
}

// NewBinding returns an empty Binding.
func NewBinding() *Binding {
	return &Binding{}
}

func (b *Binding) NewContainer(className string) (nouislider.Container, error) {
	return &Container{ClassName: className}, nil
}

func (b *Binding) Create(container nouislider.Container, payload map[string]any) (nouislider.Widget, error) {
	if b.Err != nil {
		return nil, b.Err
	}
	c, ok := container.(*Container)
	if !ok {
		return nil, fmt.Errorf("container %T is not a fake container", container)
	}

	w, err := newWidget(c, payload)
	if err != nil {
		return nil, err
	}
	b.Widgets = append(b.Widgets, w)
	return w, nil
}

// Last returns the most recently created widget, or nil.
func (b *Binding) Last() *Widget {
	if len(b.Widgets) == 0 {
		return nil
	}
	return b.Widgets[len(b.Widgets)-1]
}

// Widget simulates a noUiSlider instance.
type Widget struct {
	// Payload is the creation payload as received.
	Payload map[string]any
	// Updates records every UpdateOptions payload.
	Updates []map[string]any
	// Registrations counts On calls per event name.
	Registrations map[string]int
	Destroyed     bool

	container *Container
	start     []float64
	values    []float64
	lo, hi    float64
	tooltips  []*Element
	listeners map[string]nouislider.Listener
}

func newWidget(c *Container, payload map[string]any) (*Widget, error) {
	start, err := floats(payload["start"])
	if err != nil || len(start) == 0 {
		return nil, errors.New("noUiSlider: 'start' option is incorrect")
	}

	w := &Widget{
		Payload:       payload,
		Registrations: make(map[string]int),
		container:     c,
		start:         start,
		values:        append([]float64(nil), start...),
		listeners:     make(map[string]nouislider.Listener),
	}
	if err := w.applyRange(payload["range"]); err != nil {
		return nil, err
	}
	for i := range w.values {
		w.values[i] = w.clamp(w.values[i])
	}
	w.applyTooltips(payload["tooltips"])
	if pips, ok := payload["pips"].(map[string]any); ok {
		w.Pips(pips)
	}
	return w, nil
}

func (w *Widget) applyRange(v any) error {
	r, ok := v.(map[string]any)
	if !ok {
		return errors.New("noUiSlider: 'range' is not an object")
	}
	lo, err := floats(r["min"])
	if err != nil || len(lo) == 0 {
		return errors.New("noUiSlider: missing 'min' in 'range'")
	}
	hi, err := floats(r["max"])
	if err != nil || len(hi) == 0 {
		return errors.New("noUiSlider: missing 'max' in 'range'")
	}
	w.lo, w.hi = lo[0], hi[0]
	return nil
}

func (w *Widget) applyTooltips(v any) {
	w.tooltips = make([]*Element, len(w.values))
	for i := range w.values {
		on := false
		switch t := v.(type) {
		case bool:
			on = t
		case []any:
			if i < len(t) {
				on, _ = t[i].(bool)
			}
		}
		if on {
			w.tooltips[i] = NewElement("", nil)
		}
	}
	w.refreshTooltips()
}

func (w *Widget) refreshTooltips() {
	for i, t := range w.tooltips {
		if t != nil {
			t.text = Format(w.values[i])
		}
	}
}

func (w *Widget) clamp(v float64) float64 {
	return math.Max(w.lo, math.Min(w.hi, v))
}

func (w *Widget) position(v float64) float64 {
	return (v - w.lo) / (w.hi - w.lo) * 100
}

// On registers l. Like the real widget, binding "update" fires it once
// per handle straight away.
func (w *Widget) On(event string, l nouislider.Listener) {
	w.listeners[event] = l
	w.Registrations[event]++

	if event == "update" {
		for i := range w.values {
			w.Fire("update", i, false)
		}
	}
}

func (w *Widget) Off(event string) {
	delete(w.listeners, event)
}

// Container returns the container the widget is mounted in.
func (w *Widget) Container() *Container {
	return w.container
}

// Listener returns the listener registered for event, or nil.
func (w *Widget) Listener(event string) nouislider.Listener {
	return w.listeners[event]
}

func (w *Widget) Get(unencoded bool) []any {
	out := make([]any, len(w.values))
	for i, v := range w.values {
		if unencoded {
			out[i] = v
		} else {
			out[i] = Format(v)
		}
	}
	return out
}

func (w *Widget) Set(values []float64, fireSetEvent bool) {
	for i, v := range values {
		if i >= len(w.values) {
			break
		}
		w.SetHandle(i, v, fireSetEvent, false)
	}
}

func (w *Widget) SetHandle(handle int, value float64, fireSetEvent, exactInput bool) {
	w.values[handle] = w.clamp(value)
	w.refreshTooltips()
	w.Fire("update", handle, false)
	if fireSetEvent {
		w.Fire("set", handle, false)
	}
}

func (w *Widget) Reset(fireSetEvent bool) {
	w.Set(w.start, fireSetEvent)
}

func (w *Widget) UpdateOptions(partial map[string]any, fireSetEvent bool) {
	w.Updates = append(w.Updates, partial)

	if r, ok := partial["range"]; ok {
		_ = w.applyRange(r)
	}
	if t, ok := partial["tooltips"]; ok {
		w.applyTooltips(t)
	}
	if p, ok := partial["pips"].(map[string]any); ok {
		w.Pips(p)
	}
	if s, err := floats(partial["start"]); err == nil && len(s) > 0 {
		w.start = s
		w.Set(s, fireSetEvent)
		return
	}
	w.Set(w.values, fireSetEvent)
}

func (w *Widget) GetTooltips() []nouislider.Element {
	if w.tooltips == nil {
		return nil
	}
	out := make([]nouislider.Element, len(w.tooltips))
	for i, t := range w.tooltips {
		if t != nil {
			out[i] = t
		}
	}
	return out
}

// TooltipTexts returns the text of every tooltip, "" where a handle has none.
func (w *Widget) TooltipTexts() []string {
	out := make([]string, len(w.tooltips))
	for i, t := range w.tooltips {
		if t != nil {
			out[i] = t.text
		}
	}
	return out
}

func (w *Widget) GetOrigins() []nouislider.Element {
	out := make([]nouislider.Element, len(w.values))
	for i := range w.values {
		out[i] = NewElement("", map[string]string{"class": "noUi-origin"})
	}
	return out
}

func (w *Widget) GetPositions() []float64 {
	out := make([]float64, len(w.values))
	for i, v := range w.values {
		out[i] = w.position(v)
	}
	return out
}

// Pips supports the positions, values, count and range modes.
func (w *Widget) Pips(options map[string]any) nouislider.Element {
	var values []float64
	explicit, _ := floats(options["values"])

	switch options["mode"] {
	case "positions":
		for _, p := range explicit {
			values = append(values, w.lo+(w.hi-w.lo)*p/100)
		}
	case "values":
		values = explicit
	case "count":
		n := 0
		if len(explicit) == 0 {
			if f, ok := options["values"].(float64); ok {
				n = int(f)
			}
		}
		for i := 0; i < n; i++ {
			values = append(values, w.lo+(w.hi-w.lo)*float64(i)/float64(max(n-1, 1)))
		}
	default:
		values = []float64{w.lo, w.hi}
	}

	w.container.pips = w.container.pips[:0]
	for _, v := range values {
		w.container.pips = append(w.container.pips, NewElement(Format(v), map[string]string{
			"data-value": strconv.FormatFloat(v, 'f', -1, 64),
		}))
	}
	return NewElement("", map[string]string{"class": "noUi-pips"})
}

func (w *Widget) RemovePips() {
	w.container.pips = nil
}

func (w *Widget) RemoveTooltips() {
	w.tooltips = nil
}

func (w *Widget) Destroy() {
	w.Destroyed = true
	w.container.pips = nil
}

// Fire calls the listener of event with the arguments the real widget
// passes: values, handle, unencoded, tap, positions and the widget.
func (w *Widget) Fire(event string, handle int, tap bool) {
	values := make([]any, len(w.values))
	unencoded := make([]any, len(w.values))
	positions := make([]any, len(w.values))
	for i, v := range w.values {
		values[i] = Format(v)
		unencoded[i] = v
		positions[i] = w.position(v)
	}
	w.FireRaw(event, values, float64(handle), unencoded, tap, positions, w)
}

// FireRaw calls the listener of event with args as given.
func (w *Widget) FireRaw(event string, args ...any) {
	if l, ok := w.listeners[event]; ok {
		l(args)
	}
}

// Drag moves handle to value and fires update then end, like a drag
// released at value.
func (w *Widget) Drag(handle int, value float64) {
	w.values[handle] = w.clamp(value)
	w.refreshTooltips()
	w.Fire("update", handle, false)
	w.Fire("end", handle, false)
}

func floats(v any) ([]float64, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected array, got %T", v)
	}
	out := make([]float64, len(list))
	for i, item := range list {
		f, ok := item.(float64)
		if !ok {
			return nil, fmt.Errorf("expected number at %d, got %T", i, item)
		}
		out[i] = f
	}
	return out, nil
}
