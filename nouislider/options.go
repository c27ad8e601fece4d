package nouislider

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidOptions is returned by Create when the options miss a field the
// widget requires.
var ErrInvalidOptions = errors.New("invalid slider options")

// Range maps stop names ("min", "50%", "max") to one or two values: the
// breakpoint value and an optional step for the segment that starts there.
// See https://refreshless.com/nouislider/slider-values/
type Range map[string][]float64

// LinearRange returns the plain {min, max} range.
func LinearRange(lo, hi float64) Range {
	return Range{
		"min": {lo},
		"max": {hi},
	}
}

func (r Range) bound(name string) (float64, bool) {
	v, ok := r[name]
	if !ok || len(v) == 0 {
		return 0, false
	}
	return v[0], true
}

func (r Range) validate() error {
	lo, ok := r.bound("min")
	if !ok {
		return fmt.Errorf("%w: range is missing 'min'", ErrInvalidOptions)
	}
	hi, ok := r.bound("max")
	if !ok {
		return fmt.Errorf("%w: range is missing 'max'", ErrInvalidOptions)
	}
	if lo >= hi {
		return fmt.Errorf("%w: range 'min' (%v) must be below 'max' (%v)", ErrInvalidOptions, lo, hi)
	}

	for stop, values := range r {
		if stop == "min" || stop == "max" {
			continue
		}
		pct, err := strconv.ParseFloat(strings.TrimSuffix(stop, "%"), 64)
		if err != nil || !strings.HasSuffix(stop, "%") || pct <= 0 || pct >= 100 {
			return fmt.Errorf("%w: range stop %q is not a percentage between 0%% and 100%%", ErrInvalidOptions, stop)
		}
		if len(values) == 0 {
			return fmt.Errorf("%w: range stop %q has no value", ErrInvalidOptions, stop)
		}
	}
	return nil
}

// Pip modes understood by the widget.
const (
	PipsRange     = "range"
	PipsSteps     = "steps"
	PipsPositions = "positions"
	PipsCount     = "count"
	PipsValues    = "values"
)

// Pips configures the scale drawn under the track.
// See https://refreshless.com/nouislider/pips/
type Pips struct {
	Mode    string    `json:"mode"`
	Density *float64  `json:"density,omitempty"`
	Values  []float64 `json:"values,omitempty"`
	Stepped *bool     `json:"stepped,omitempty"`
}

// Tooltips is either one toggle for every handle or one toggle per handle.
type Tooltips struct {
	all       bool
	perHandle []bool
}

// ShowTooltips toggles tooltips on every handle.
func ShowTooltips(on bool) *Tooltips {
	return &Tooltips{all: on}
}

// HandleTooltips toggles tooltips handle by handle.
func HandleTooltips(on ...bool) *Tooltips {
	return &Tooltips{perHandle: on}
}

// Enabled reports whether handle i shows a tooltip.
func (t *Tooltips) Enabled(i int) bool {
	if t == nil {
		return false
	}
	if t.perHandle == nil {
		return t.all
	}
	return i < len(t.perHandle) && t.perHandle[i]
}

func (t Tooltips) MarshalJSON() ([]byte, error) {
	if t.perHandle != nil {
		return json.Marshal(t.perHandle)
	}
	return json.Marshal(t.all)
}

func (t *Tooltips) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &t.all); err == nil {
		t.perHandle = nil
		return nil
	}
	return json.Unmarshal(b, &t.perHandle)
}

// Options is the creation payload handed to noUiSlider.create. Optional
// fields left at their zero value are not sent, so the widget's defaults
// apply. The json names are the widget's option names.
// See https://refreshless.com/nouislider/slider-options/
type Options struct {
	Start       []float64 `json:"start,omitempty"`
	Range       Range     `json:"range,omitempty"`
	Connect     []bool    `json:"connect,omitempty"`
	Step        *float64  `json:"step,omitempty"`
	Snap        *bool     `json:"snap,omitempty"`
	Margin      *float64  `json:"margin,omitempty"`
	Limit       *float64  `json:"limit,omitempty"`
	Padding     []float64 `json:"padding,omitempty"`
	Orientation string    `json:"orientation,omitempty"`
	Direction   string    `json:"direction,omitempty"`
	Behaviour   string    `json:"behaviour,omitempty"`
	Animate     *bool     `json:"animate,omitempty"`
	Tooltips    *Tooltips `json:"tooltips,omitempty"`
	Pips        *Pips     `json:"pips,omitempty"`

	HandleAttributes       []map[string]string `json:"handleAttributes,omitempty"`
	KeyboardSupport        *bool               `json:"keyboardSupport,omitempty"`
	KeyboardDefaultStep    *float64            `json:"keyboardDefaultStep,omitempty"`
	KeyboardPageMultiplier *float64            `json:"keyboardPageMultiplier,omitempty"`
	KeyboardMultiplier     *float64            `json:"keyboardMultiplier,omitempty"`
	CSSPrefix              *string             `json:"cssPrefix,omitempty"`
	CSSClasses             map[string]string   `json:"cssClasses,omitempty"`
}

// Validate checks the fields noUiSlider refuses to start without. The
// connect length is left to the widget.
func (o Options) Validate() error {
	if len(o.Start) == 0 {
		return fmt.Errorf("%w: start must hold at least one handle value", ErrInvalidOptions)
	}
	if o.Range == nil {
		return fmt.Errorf("%w: range is required", ErrInvalidOptions)
	}
	return o.Range.validate()
}

// Payload serializes the options into the plain object shape the widget
// expects: maps, slices, strings, float64 and bool only.
func (o Options) Payload() (map[string]any, error) {
	return toPayload("slider options", o)
}

func toPayload(what string, v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", what, err)
	}

	payload := map[string]any{}
	if err := json.Unmarshal(b, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal %s payload: %w", what, err)
	}
	return payload, nil
}

// Merge returns o with every field set in partial taken from partial.
func (o Options) Merge(partial Options) (Options, error) {
	base, err := o.Payload()
	if err != nil {
		return o, err
	}
	overlay, err := partial.Payload()
	if err != nil {
		return o, err
	}
	for k, v := range overlay {
		base[k] = v
	}

	b, err := json.Marshal(base)
	if err != nil {
		return o, fmt.Errorf("marshal merged options: %w", err)
	}
	var merged Options
	if err := json.Unmarshal(b, &merged); err != nil {
		return o, fmt.Errorf("unmarshal merged options: %w", err)
	}
	return merged, nil
}

// Float returns a pointer to v, for the optional numeric fields.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v, for the optional toggle fields.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
