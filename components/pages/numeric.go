// Package pages holds the demo pages, one slider setup each.
package pages

import (
	"go.uber.org/zap"

	"github.com/vcrobe/nojs-nouislider/components/eventtable"
	"github.com/vcrobe/nojs-nouislider/components/slider"
	"github.com/vcrobe/nojs-nouislider/nouislider"
	"github.com/vcrobe/nojs-nouislider/runtime"
	"github.com/vcrobe/nojs-nouislider/vdom"
)

// NumericPage is a two handle slider over numbers with a table of the
// last event and a reset button.
type NumericPage struct {
	runtime.ComponentBase

	Options nouislider.Options
	Binding nouislider.Binding
	Logger  *zap.SugaredLogger

	slider *slider.Slider
	last   nouislider.Event
}

func (p *NumericPage) OnInit() {
	if p.Logger == nil {
		p.Logger = zap.NewNop().Sugar()
	}
	p.Logger = p.Logger.Named("numeric")

	p.slider = &slider.Slider{
		Options:  p.Options,
		OnUpdate: p.onUpdate,
		Binding:  p.Binding,
		Logger:   p.Logger,
	}
}

func (p *NumericPage) onUpdate(ev nouislider.Event) {
	p.last = ev
	p.StateHasChanged()
}

// Reset moves the handles back to their start values.
func (p *NumericPage) Reset() {
	adapter := p.slider.Adapter()
	if adapter == nil {
		return
	}
	if err := adapter.Reset(); err != nil {
		p.Logger.Warnw("Failed to reset slider", "error", err)
	}
}

func (p *NumericPage) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Section(map[string]any{"class": "section mx-6"},
		vdom.Heading(2, "Numeric range"),
		r.RenderChild("numeric-slider", p.slider),
		r.RenderChild("numeric-events", &eventtable.EventTable{Event: p.last}),
		vdom.Button("Reset", map[string]any{"class": "button", "onClick": p.Reset}),
	)
}
