//go:build !wasm
// +build !wasm

package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-nouislider/runtime"
	"github.com/vcrobe/nojs-nouislider/testcomponents"
	"github.com/vcrobe/nojs-nouislider/vdom"
)

type page struct {
	runtime.ComponentBase
	text      string
	destroyed bool
}

func (p *page) Render(runtime.Renderer) *vdom.VNode { return vdom.Paragraph(p.text, nil) }
func (p *page) OnDestroy()                          { p.destroyed = true }

func TestAppShell_SwapsPages(t *testing.T) {
	shell := NewAppShell("Sliders", []NavLink{{Path: "/", Label: "Numeric"}, {Path: "/dates", Label: "Dates"}})
	r := testcomponents.NewTestRenderer(shell)
	r.RenderRoot()

	first := &page{text: "numeric"}
	shell.SetPage(first, "/")
	ps := r.GetCurrentVDOM().FindAll("p")
	require.Len(t, ps, 1)
	assert.Equal(t, "numeric", ps[0].Content)

	shell.SetPage(&page{text: "dates"}, "/dates")
	ps = r.GetCurrentVDOM().FindAll("p")
	require.Len(t, ps, 1)
	assert.Equal(t, "dates", ps[0].Content)
	assert.True(t, first.destroyed)

	links := r.GetCurrentVDOM().FindAll("a")
	require.Len(t, links, 2)
	assert.Equal(t, "#/dates", links[1].Attributes["href"])
	assert.Equal(t, "nav-link active", links[1].Attributes["class"])
	assert.Equal(t, "nav-link", links[0].Attributes["class"])
}
