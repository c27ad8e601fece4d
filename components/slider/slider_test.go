//go:build !wasm
// +build !wasm

package slider

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-nouislider/nouislider"
	"github.com/vcrobe/nojs-nouislider/nouislider/nouislidertest"
	"github.com/vcrobe/nojs-nouislider/runtime"
	"github.com/vcrobe/nojs-nouislider/testcomponents"
	"github.com/vcrobe/nojs-nouislider/vdom"
)

type host struct {
	runtime.ComponentBase
	binding *nouislidertest.Binding
	options nouislider.Options
	labels  nouislider.FormattedValues
	show    bool
	events  []nouislider.Event
	child   *Slider
}

func (h *host) onUpdate(ev nouislider.Event) {
	h.events = append(h.events, ev)
}

func (h *host) Render(r runtime.Renderer) *vdom.VNode {
	if !h.show {
		return vdom.Div(nil)
	}
	h.child = &Slider{
		Options:  h.options,
		Labels:   h.labels,
		OnUpdate: h.onUpdate,
		Binding:  h.binding,
	}
	return vdom.Div(nil, r.RenderChild("slider", h.child))
}

func newHost() *host {
	return &host{
		binding: nouislidertest.NewBinding(),
		options: nouislider.Options{
			Start:    []float64{20, 80},
			Connect:  []bool{false, true, false},
			Range:    nouislider.LinearRange(0, 100),
			Tooltips: nouislider.ShowTooltips(true),
			Pips:     &nouislider.Pips{Mode: nouislider.PipsValues, Values: []float64{0, 50, 100}},
		},
		show: true,
	}
}

func TestSlider_MountsWidgetAndSubscribesAfterRender(t *testing.T) {
	h := newHost()
	r := testcomponents.NewTestRenderer(h)

	root := r.RenderRoot()

	refs := root.FindAll(vdom.RefTag)
	require.Len(t, refs, 1)
	widget := h.binding.Last()
	require.NotNil(t, widget)
	assert.Same(t, widget.Container(), refs[0].Ref)

	// bound once, fired once per handle on bind
	assert.Equal(t, 1, widget.Registrations["update"])
	assert.Equal(t, 1, widget.Registrations["end"])
	require.Len(t, h.events, 2)
	assert.Equal(t, 0, h.events[0].Handle)
	assert.Equal(t, 1, h.events[1].Handle)
	assert.Equal(t, []float64{0, 50, 100}, h.events[1].Pips)
}

func TestSlider_KeepsOneWidgetAcrossRenders(t *testing.T) {
	h := newHost()
	r := testcomponents.NewTestRenderer(h)
	r.RenderRoot()

	h.StateHasChanged()
	h.StateHasChanged()

	assert.Len(t, h.binding.Widgets, 1)
	assert.Equal(t, 1, h.binding.Last().Registrations["update"])
}

func TestSlider_ForwardsDrag(t *testing.T) {
	h := newHost()
	r := testcomponents.NewTestRenderer(h)
	r.RenderRoot()
	h.events = nil

	h.binding.Last().Drag(0, 35)

	require.Len(t, h.events, 2)
	assert.Equal(t, []float64{35, 80}, h.events[1].Unencoded)
	assert.Equal(t, []string{"35.00", "80.00"}, h.events[1].Values)
}

func TestSlider_AppliesLabelsOnRender(t *testing.T) {
	h := newHost()
	r := testcomponents.NewTestRenderer(h)
	r.RenderRoot()
	widget := h.binding.Last()

	h.labels = nouislider.FormattedValues{
		TooltipsText: []string{"low", "high"},
		PipsText:     []string{"none", "", "all"},
	}
	h.StateHasChanged()

	assert.Equal(t, []string{"low", "high"}, widget.TooltipTexts())
	assert.Equal(t, []string{"none", "50.00", "all"}, widget.Container().PipLabels())
}

func TestSlider_UpdatesChangedOptions(t *testing.T) {
	h := newHost()
	r := testcomponents.NewTestRenderer(h)
	r.RenderRoot()
	widget := h.binding.Last()

	h.StateHasChanged()
	assert.Empty(t, widget.Updates)

	h.options.Step = nouislider.Float(5)
	h.StateHasChanged()

	require.Len(t, widget.Updates, 1)
	assert.Equal(t, 5.0, widget.Updates[0]["step"])
}

func TestSlider_DestroyedWhenRemoved(t *testing.T) {
	h := newHost()
	r := testcomponents.NewTestRenderer(h)
	r.RenderRoot()
	widget := h.binding.Last()
	adapter := h.child.Adapter()

	h.show = false
	h.StateHasChanged()

	assert.True(t, widget.Destroyed)
	assert.True(t, adapter.Destroyed())

	h.events = nil
	widget.Fire("update", 0, false)
	assert.Empty(t, h.events)
}

func TestSlider_RendersConstructionError(t *testing.T) {
	h := newHost()
	h.binding.Err = errors.New("noUiSlider is not loaded")
	r := testcomponents.NewTestRenderer(h)

	root := r.RenderRoot()

	ps := root.FindAll("p")
	require.Len(t, ps, 1)
	assert.Contains(t, ps[0].Content, "noUiSlider is not loaded")
	assert.Nil(t, h.child.Adapter())
	assert.Error(t, h.child.Err())
}
