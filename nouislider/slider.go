package nouislider

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"
)

// ErrDestroyed is returned by every Slider method called after Destroy.
var ErrDestroyed = errors.New("slider destroyed")

// Observer receives every decoded event synchronously, in firing order.
type Observer func(Event)

// DefaultEvents are the native events Subscribe listens to when none are named.
var DefaultEvents = []string{"update", "end"}

var knownEvents = []string{"start", "slide", "drag", "update", "change", "set", "end"}

// pip labels carry their raw value in data-value
const (
	pipSelector  = ".noUi-value"
	pipValueAttr = "data-value"
)

// Slider owns one widget instance and relays its events to an Observer.
// It is not safe for concurrent use; all calls happen on the UI goroutine.
type Slider struct {
	widget    Widget
	container Container
	options   Options
	observer  Observer
	events    []string
	destroyed bool

	logger *zap.SugaredLogger
}

// Create validates options, serializes them and constructs the widget in
// container. The options are copied; later changes go through UpdateOptions.
func Create(binding Binding, container Container, options Options, logger *zap.SugaredLogger) (*Slider, error) {
	logger = logger.Named("nouislider")

	if err := options.Validate(); err != nil {
		logger.Warnw("Refusing to create slider", "error", err)
		return nil, err
	}

	payload, err := options.Payload()
	if err != nil {
		return nil, err
	}

	widget, err := binding.Create(container, payload)
	if err != nil {
		logger.Warnw("Failed to create slider widget", "error", err)
		return nil, fmt.Errorf("create slider widget: %w", err)
	}

	logger.Debugw("Created slider", "handles", len(options.Start), "range", options.Range)

	return &Slider{
		widget:    widget,
		container: container,
		options:   options,
		logger:    logger,
	}, nil
}

// Subscribe sets the observer and registers one native listener for each
// event (DefaultEvents when none are given). Events already registered are
// not registered twice.
func (s *Slider) Subscribe(observer Observer, events ...string) error {
	if s.destroyed {
		return ErrDestroyed
	}
	if len(events) == 0 {
		events = DefaultEvents
	}
	for _, name := range events {
		if !funk.ContainsString(knownEvents, name) {
			return fmt.Errorf("unknown slider event %q", name)
		}
	}

	s.observer = observer
	for _, name := range events {
		if funk.ContainsString(s.events, name) {
			continue
		}
		s.widget.On(name, s.listener(name))
		s.events = append(s.events, name)
		s.logger.Debugw("Listening to slider event", "event", name)
	}
	return nil
}

// SetObserver swaps the observer without touching the native listeners.
// A nil observer drops events until a new one is set.
func (s *Slider) SetObserver(observer Observer) {
	s.observer = observer
}

func (s *Slider) listener(name string) Listener {
	return func(args []any) {
		if s.destroyed || s.observer == nil {
			return
		}

		event, err := DecodeEvent(args)
		if err != nil {
			s.logger.Warnw("Dropping malformed slider event", "event", name, "error", err)
			return
		}
		event.Pips = s.pipValues()

		s.observer(event)
	}
}

func (s *Slider) pipValues() []float64 {
	labels := s.container.QueryAll(pipSelector)
	values := make([]float64, 0, len(labels))
	for _, label := range labels {
		raw, ok := label.Attr(pipValueAttr)
		if !ok {
			continue
		}
		v, err := cast.ToFloat64E(raw)
		if err != nil {
			s.logger.Debugw("Skipping pip with unreadable value", "value", raw, "error", err)
			continue
		}
		values = append(values, v)
	}
	return values
}

// ApplyLabelOverrides replaces the text of tooltip i with TooltipsText[i]
// and of pip label i with PipsText[i]. Elements without an override keep
// the widget's text; overrides without an element are ignored.
func (s *Slider) ApplyLabelOverrides(v FormattedValues) error {
	if s.destroyed {
		return ErrDestroyed
	}

	for i, label := range s.container.QueryAll(pipSelector) {
		if i < len(v.PipsText) {
			label.SetText(v.PipsText[i])
		}
	}
	for i, tooltip := range s.widget.GetTooltips() {
		if tooltip != nil && i < len(v.TooltipsText) {
			tooltip.SetText(v.TooltipsText[i])
		}
	}
	return nil
}

// Get reads the raw handle values from the widget itself, so values set
// programmatically are seen even if no event was observed.
func (s *Slider) Get() ([]float64, error) {
	if s.destroyed {
		return nil, ErrDestroyed
	}

	raw := s.widget.Get(true)
	values := make([]float64, len(raw))
	for i, v := range raw {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("read handle %d: %w", i, err)
		}
		values[i] = f
	}
	return values, nil
}

// Formatted reads the display values of every handle.
func (s *Slider) Formatted() ([]string, error) {
	if s.destroyed {
		return nil, ErrDestroyed
	}

	raw := s.widget.Get(false)
	values := make([]string, len(raw))
	for i, v := range raw {
		str, err := cast.ToStringE(v)
		if err != nil {
			return nil, fmt.Errorf("read handle %d: %w", i, err)
		}
		values[i] = str
	}
	return values, nil
}

// Set moves the handles, firing the widget's set event.
func (s *Slider) Set(values ...float64) error {
	if s.destroyed {
		return ErrDestroyed
	}
	s.widget.Set(values, true)
	return nil
}

// SetHandle moves a single handle.
func (s *Slider) SetHandle(handle int, value float64, fireSetEvent, exactInput bool) error {
	if s.destroyed {
		return ErrDestroyed
	}
	if handle < 0 || handle >= s.Handles() {
		return fmt.Errorf("handle %d out of range [0, %d)", handle, s.Handles())
	}
	s.widget.SetHandle(handle, value, fireSetEvent, exactInput)
	return nil
}

// Reset moves the handles back to their start values.
func (s *Slider) Reset() error {
	if s.destroyed {
		return ErrDestroyed
	}
	s.widget.Reset(true)
	return nil
}

// UpdateOptions sends the fields set in partial to the live widget and
// merges them into the options Options() reports.
func (s *Slider) UpdateOptions(partial Options, fireSetEvent bool) error {
	if s.destroyed {
		return ErrDestroyed
	}

	merged, err := s.options.Merge(partial)
	if err != nil {
		return err
	}
	if err := merged.Validate(); err != nil {
		return err
	}
	payload, err := partial.Payload()
	if err != nil {
		return err
	}

	s.widget.UpdateOptions(payload, fireSetEvent)
	s.options = merged
	s.logger.Debugw("Updated slider options", "fields", funk.Keys(payload))
	return nil
}

// Options returns the options the widget currently runs with.
func (s *Slider) Options() Options {
	return s.options
}

// Handles is the number of handles, fixed by the start values.
func (s *Slider) Handles() int {
	return len(s.options.Start)
}

// Positions returns each handle's offset in percent of the track.
func (s *Slider) Positions() ([]float64, error) {
	if s.destroyed {
		return nil, ErrDestroyed
	}
	return s.widget.GetPositions(), nil
}

// Origins returns the handle origin elements.
func (s *Slider) Origins() ([]Element, error) {
	if s.destroyed {
		return nil, ErrDestroyed
	}
	return s.widget.GetOrigins(), nil
}

// SetPips replaces the pip scale.
func (s *Slider) SetPips(p Pips) error {
	if s.destroyed {
		return ErrDestroyed
	}

	payload, err := toPayload("pips", p)
	if err != nil {
		return err
	}

	s.widget.Pips(payload)
	s.options.Pips = &p
	return nil
}

// RemovePips removes the pip scale.
func (s *Slider) RemovePips() error {
	if s.destroyed {
		return ErrDestroyed
	}
	s.widget.RemovePips()
	s.options.Pips = nil
	return nil
}

// RemoveTooltips removes every tooltip.
func (s *Slider) RemoveTooltips() error {
	if s.destroyed {
		return ErrDestroyed
	}
	s.widget.RemoveTooltips()
	s.options.Tooltips = nil
	return nil
}

// Destroy unregisters the listeners and tears the widget down. The
// observer is never called afterwards. Calling it twice is a no-op.
func (s *Slider) Destroy() {
	if s.destroyed {
		return
	}

	for _, name := range s.events {
		s.widget.Off(name)
	}
	s.widget.Destroy()

	s.destroyed = true
	s.observer = nil
	s.events = nil

	s.logger.Debug("Destroyed slider")
}

// Destroyed reports whether Destroy was called.
func (s *Slider) Destroyed() bool {
	return s.destroyed
}
