//go:build js || wasm
// +build js wasm

package runtime

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vcrobe/nojs-nouislider/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

const rootKey = "__root__"

// RendererImpl is the concrete implementation of the Renderer interface.
// It manages the component instance tree and handles rendering lifecycle.
type RendererImpl struct {
	instances        *Instances
	currentComponent Component         // The currently active root component
	navManager       NavigationManager // Optional: router for client-side navigation
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
	rendering        bool
	pending          bool

	logger *zap.SugaredLogger
}

// NewRenderer creates a new runtime renderer.
// If navManager is nil, the renderer works without routing.
func NewRenderer(navManager NavigationManager, mountID string, logger *zap.SugaredLogger) *RendererImpl {
	return &RendererImpl{
		instances:  NewInstances(),
		navManager: navManager,
		mountID:    mountID,
		logger:     logger.Named("renderer"),
	}
}

// SetCurrentComponent sets the root component to be rendered.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	r.currentComponent = comp
}

// RenderRoot starts the rendering process for the entire application.
// A re-render requested while a pass is building its tree or running its
// OnAfterRender hooks is queued and runs once the pass is done.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}
	if r.rendering {
		r.pending = true
		return
	}

	r.rendering = true
	r.instances.BeginPass()
	newVDOM := r.RenderChild(rootKey, r.currentComponent)

	if r.prevVDOM == nil {
		// Initial render: clear and render fresh
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		// Subsequent renders: patch the existing DOM
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}

	// Store the new VDOM tree for the next render cycle
	r.prevVDOM = newVDOM

	// Clean up components that were not rendered in this cycle
	r.instances.Sweep(func(key string, c Component) {
		if cleaner, ok := c.(Cleaner); ok {
			r.callOnDestroy(cleaner, key)
		}
	})

	// The tree is in the DOM now, native widgets can bind. Re-renders
	// requested from these hooks wait until every hook of the pass has run.
	for _, call := range r.instances.Rendered() {
		r.callOnAfterRender(call.Component, call.First)
	}
	r.rendering = false

	if r.pending {
		r.pending = false
		r.RenderRoot()
	}
}

// RenderChild handles instance creation and reuse for a keyed child.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	instance, first := r.instances.Resolve(key, childWithProps)

	// Ensure the instance knows about the renderer so it can call StateHasChanged.
	instance.SetRenderer(r)

	if first {
		if initializer, ok := instance.(Initializer); ok {
			r.callOnInit(initializer, key)
		}
	}

	// Call OnPropertiesSet before every render (including first)
	if paramReceiver, ok := instance.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, key)
	}

	node := instance.Render(r)
	if node != nil {
		node.ComponentKey = key
	}
	return node
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}

// Navigate delegates to the NavigationManager (router).
// Returns an error if no router is configured.
func (r *RendererImpl) Navigate(path string) error {
	if r.navManager == nil {
		return fmt.Errorf("no router configured for navigation")
	}
	return r.navManager.Navigate(path)
}
