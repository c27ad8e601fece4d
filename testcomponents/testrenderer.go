package testcomponents

import (
	"github.com/vcrobe/nojs-nouislider/runtime"
	"github.com/vcrobe/nojs-nouislider/vdom"
)

const rootKey = "__root__"

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It runs the same lifecycle as the browser renderer (OnInit, ApplyProps,
// OnPropertiesSet, OnAfterRender, OnDestroy) and keeps the resulting VDOM
// so tests can:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree
type TestRenderer struct {
	instances   *runtime.Instances
	component   runtime.Component
	currentVDOM *vdom.VNode
	renders     int
	rendering   bool
	pending     bool

	// Navigations records every path passed to Navigate.
	Navigations []string
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		instances: runtime.NewInstances(),
		component: comp,
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs a full render pass and returns the new VDOM.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	if r.rendering {
		r.pending = true
		return r.currentVDOM
	}

	r.rendering = true
	r.instances.BeginPass()
	r.currentVDOM = r.RenderChild(rootKey, r.component)
	r.renders++

	r.instances.Sweep(func(_ string, c runtime.Component) {
		if cleaner, ok := c.(runtime.Cleaner); ok {
			cleaner.OnDestroy()
		}
	})

	for _, call := range r.instances.Rendered() {
		call.Component.OnAfterRender(call.First)
	}
	r.rendering = false

	if r.pending {
		r.pending = false
		r.RenderRoot()
	}
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.RenderRoot()
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// Renders counts completed render passes.
func (r *TestRenderer) Renders() int {
	return r.renders
}

// RenderChild resolves the keyed instance and renders it.
func (r *TestRenderer) RenderChild(key string, childWithProps runtime.Component) *vdom.VNode {
	instance, first := r.instances.Resolve(key, childWithProps)
	instance.SetRenderer(r)

	if first {
		if initializer, ok := instance.(runtime.Initializer); ok {
			initializer.OnInit()
		}
	}
	if receiver, ok := instance.(runtime.ParameterReceiver); ok {
		receiver.OnPropertiesSet()
	}

	node := instance.Render(r)
	if node != nil {
		node.ComponentKey = key
	}
	return node
}

// Unmount drops every instance, calling OnDestroy on those that implement it.
func (r *TestRenderer) Unmount() {
	r.instances.BeginPass()
	r.instances.Sweep(func(_ string, c runtime.Component) {
		if cleaner, ok := c.(runtime.Cleaner); ok {
			cleaner.OnDestroy()
		}
	})
	r.currentVDOM = nil
}

// Navigate records the path.
func (r *TestRenderer) Navigate(path string) error {
	r.Navigations = append(r.Navigations, path)
	return nil
}
