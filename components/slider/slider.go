// Package slider is the component that mounts one noUiSlider widget.
package slider

import (
	"github.com/thoas/go-funk"
	"go.uber.org/zap"

	"github.com/vcrobe/nojs-nouislider/nouislider"
	"github.com/vcrobe/nojs-nouislider/runtime"
	"github.com/vcrobe/nojs-nouislider/vdom"
)

// ClassName is the class of the widget container unless Slider.ClassName is set.
const ClassName = "slider"

// Slider owns a nouislider.Slider for as long as it stays in the tree.
//
// The widget is built in OnInit, so it exists before the first render and
// label overrides can be written on every render. Listeners are bound in
// the first OnAfterRender because noUiSlider fires "update" as soon as it
// is bound, and the parent usually re-renders in response.
type Slider struct {
	runtime.ComponentBase

	// Props
	Options   nouislider.Options
	Labels    nouislider.FormattedValues
	OnUpdate  func(nouislider.Event)
	Binding   nouislider.Binding
	ClassName string
	Logger    *zap.SugaredLogger

	container      nouislider.Container
	adapter        *nouislider.Slider
	err            error
	pendingOptions *nouislider.Options
}

// Adapter returns the live adapter, or nil when construction failed.
func (s *Slider) Adapter() *nouislider.Slider {
	return s.adapter
}

// Err returns the construction error, if any.
func (s *Slider) Err() error {
	return s.err
}

func (s *Slider) OnInit() {
	if s.Logger == nil {
		s.Logger = zap.NewNop().Sugar()
	}
	if s.ClassName == "" {
		s.ClassName = ClassName
	}

	container, err := s.Binding.NewContainer(s.ClassName)
	if err != nil {
		s.err = err
		s.Logger.Warnw("Failed to create slider container", "error", err)
		return
	}

	adapter, err := nouislider.Create(s.Binding, container, s.Options, s.Logger)
	if err != nil {
		s.err = err
		return
	}
	s.container, s.adapter = container, adapter
}

// ApplyProps takes the parent's new props. Changed options are sent to the
// widget after the render.
func (s *Slider) ApplyProps(next runtime.Component) {
	n, ok := next.(*Slider)
	if !ok {
		return
	}
	if !funk.IsEqual(s.Options, n.Options) {
		opts := n.Options
		s.pendingOptions = &opts
	}
	s.Labels = n.Labels
	s.OnUpdate = n.OnUpdate
}

func (s *Slider) OnAfterRender(first bool) {
	if s.adapter == nil || s.adapter.Destroyed() {
		return
	}

	if first {
		if err := s.adapter.Subscribe(s.relay); err != nil {
			s.Logger.Warnw("Failed to subscribe to slider events", "error", err)
		}
		return
	}

	if s.pendingOptions != nil {
		opts := *s.pendingOptions
		s.pendingOptions = nil
		if err := s.adapter.UpdateOptions(opts, false); err != nil {
			s.Logger.Warnw("Failed to update slider options", "error", err)
			return
		}
		s.Options = opts
	}
}

// relay reads OnUpdate at call time so a parent that swaps its handler
// through ApplyProps is honoured.
func (s *Slider) relay(ev nouislider.Event) {
	if s.OnUpdate != nil {
		s.OnUpdate(ev)
	}
}

func (s *Slider) OnDestroy() {
	if s.adapter != nil {
		s.adapter.Destroy()
	}
}

func (s *Slider) Render(r runtime.Renderer) *vdom.VNode {
	if s.err != nil {
		return vdom.Paragraph("Slider unavailable: "+s.err.Error(), map[string]any{"class": "slider-error"})
	}
	if s.adapter == nil {
		return vdom.Div(map[string]any{"class": "slider-host"})
	}

	if err := s.adapter.ApplyLabelOverrides(s.Labels); err != nil {
		s.Logger.Debugw("Skipping label overrides", "error", err)
	}
	return vdom.Div(map[string]any{"class": "slider-host"}, vdom.Ref(s.container.Native()))
}
