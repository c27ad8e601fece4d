//go:build !wasm
// +build !wasm

package testcomponents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-nouislider/runtime"
	"github.com/vcrobe/nojs-nouislider/vdom"
)

type recorder struct {
	runtime.ComponentBase
	name  string
	log   *[]string
	count int
}

func (c *recorder) OnInit()          { *c.log = append(*c.log, c.name+":init") }
func (c *recorder) OnPropertiesSet() { *c.log = append(*c.log, c.name+":props") }
func (c *recorder) OnDestroy()       { *c.log = append(*c.log, c.name+":destroy") }

func (c *recorder) OnAfterRender(first bool) {
	if first {
		*c.log = append(*c.log, c.name+":after-first")
		return
	}
	*c.log = append(*c.log, c.name+":after")
}

func (c *recorder) Render(runtime.Renderer) *vdom.VNode {
	*c.log = append(*c.log, c.name+":render")
	return vdom.Paragraph(c.name, nil)
}

type parent struct {
	runtime.ComponentBase
	log       *[]string
	showChild bool
}

func (p *parent) Render(r runtime.Renderer) *vdom.VNode {
	children := []*vdom.VNode{vdom.Heading(1, "parent")}
	if p.showChild {
		children = append(children, r.RenderChild("child", &recorder{name: "child", log: p.log}))
	}
	return vdom.Div(nil, children...)
}

func TestTestRenderer_RunsLifecycleInOrder(t *testing.T) {
	var log []string
	root := &parent{log: &log, showChild: true}
	r := NewTestRenderer(root)

	r.RenderRoot()
	assert.Equal(t, []string{"child:init", "child:props", "child:render", "child:after-first"}, log)

	log = nil
	root.StateHasChanged()
	assert.Equal(t, []string{"child:props", "child:render", "child:after"}, log)

	log = nil
	root.showChild = false
	root.StateHasChanged()
	assert.Equal(t, []string{"child:destroy"}, log)
	assert.Equal(t, 3, r.Renders())
}

type reentrant struct {
	runtime.ComponentBase
	renders int
}

func (c *reentrant) Render(runtime.Renderer) *vdom.VNode {
	c.renders++
	if c.renders == 1 {
		// queued until the running pass finishes
		c.StateHasChanged()
	}
	return vdom.Paragraph("x", nil)
}

func TestTestRenderer_QueuesReRenderRequestedDuringRender(t *testing.T) {
	c := &reentrant{}
	r := NewTestRenderer(c)

	r.RenderRoot()

	assert.Equal(t, 2, c.renders)
	assert.Equal(t, 2, r.Renders())
}

func TestTestRenderer_UnmountDestroysChildren(t *testing.T) {
	var log []string
	r := NewTestRenderer(&parent{log: &log, showChild: true})
	r.RenderRoot()
	log = nil

	r.Unmount()

	require.Equal(t, []string{"child:destroy"}, log)
	assert.Nil(t, r.GetCurrentVDOM())
}

func TestTestRenderer_RecordsNavigation(t *testing.T) {
	root := &parent{log: new([]string)}
	r := NewTestRenderer(root)

	require.NoError(t, root.Navigate("/dates"))
	assert.Equal(t, []string{"/dates"}, r.Navigations)
}

type binder struct {
	runtime.ComponentBase
	name    string
	log     *[]string
	onFirst func()
}

func (c *binder) OnAfterRender(first bool) {
	if first {
		*c.log = append(*c.log, c.name+":first")
		if c.onFirst != nil {
			c.onFirst()
		}
		return
	}
	*c.log = append(*c.log, c.name+":later")
}

func (c *binder) Render(runtime.Renderer) *vdom.VNode {
	return vdom.Paragraph(c.name, nil)
}

type pair struct {
	runtime.ComponentBase
	log *[]string
}

func (p *pair) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(nil,
		r.RenderChild("a", &binder{name: "a", log: p.log, onFirst: p.StateHasChanged}),
		r.RenderChild("b", &binder{name: "b", log: p.log}),
	)
}

func TestTestRenderer_SiblingsBindBeforeReRenderFromAfterRender(t *testing.T) {
	var log []string
	r := NewTestRenderer(&pair{log: &log})

	r.RenderRoot()

	assert.Equal(t, []string{"a:first", "b:first", "a:later", "b:later"}, log)
	assert.Equal(t, 2, r.Renders())
}
