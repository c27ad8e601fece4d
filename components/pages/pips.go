package pages

import (
	"strings"

	"go.uber.org/zap"

	"github.com/vcrobe/nojs-nouislider/components/slider"
	"github.com/vcrobe/nojs-nouislider/nouislider"
	"github.com/vcrobe/nojs-nouislider/runtime"
	"github.com/vcrobe/nojs-nouislider/vdom"
)

// PipsPage is a slider over a non-linear range with a scale that can be
// hidden and shown again.
type PipsPage struct {
	runtime.ComponentBase

	Options nouislider.Options
	Binding nouislider.Binding
	Logger  *zap.SugaredLogger

	slider     *slider.Slider
	last       nouislider.Event
	pipsHidden bool
}

func (p *PipsPage) OnInit() {
	if p.Logger == nil {
		p.Logger = zap.NewNop().Sugar()
	}
	p.Logger = p.Logger.Named("pips")

	p.slider = &slider.Slider{
		Options:   p.Options,
		OnUpdate:  p.onUpdate,
		Binding:   p.Binding,
		ClassName: "slider slider-pips",
		Logger:    p.Logger,
	}
}

func (p *PipsPage) onUpdate(ev nouislider.Event) {
	p.last = ev
	p.StateHasChanged()
}

// TogglePips removes the scale or draws it again from Options.Pips.
func (p *PipsPage) TogglePips() {
	adapter := p.slider.Adapter()
	if adapter == nil || p.Options.Pips == nil {
		return
	}

	var err error
	if p.pipsHidden {
		err = adapter.SetPips(*p.Options.Pips)
	} else {
		err = adapter.RemovePips()
	}
	if err != nil {
		p.Logger.Warnw("Failed to toggle pips", "error", err)
		return
	}
	p.pipsHidden = !p.pipsHidden
	p.StateHasChanged()
}

func (p *PipsPage) Render(r runtime.Renderer) *vdom.VNode {
	label := "Hide scale"
	if p.pipsHidden {
		label = "Show scale"
	}

	return vdom.Section(map[string]any{"class": "section mx-6"},
		vdom.Heading(2, "Non-linear range"),
		r.RenderChild("pips-slider", p.slider),
		vdom.Paragraph("Value: "+strings.Join(p.last.Values, " - "), map[string]any{"class": "slider-value"}),
		vdom.Button(label, map[string]any{"class": "button", "onClick": p.TogglePips}),
	)
}
