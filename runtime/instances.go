package runtime

// Instances tracks keyed component instances across render passes. Both
// the browser renderer and the test renderer keep their children here.
type Instances struct {
	live        map[string]Component
	active      map[string]bool
	afterRender []mounted
}

type mounted struct {
	component Component
	first     bool
}

// NewInstances returns an empty instance table.
func NewInstances() *Instances {
	return &Instances{
		live:   make(map[string]Component),
		active: make(map[string]bool),
	}
}

// BeginPass starts a render pass.
func (in *Instances) BeginPass() {
	in.active = make(map[string]bool)
	in.afterRender = in.afterRender[:0]
}

// Resolve returns the live instance for key, storing childWithProps when
// the key is new. first reports whether the instance was just stored.
// Existing instances receive the new props through PropUpdater.
func (in *Instances) Resolve(key string, childWithProps Component) (instance Component, first bool) {
	in.active[key] = true

	instance, exists := in.live[key]
	if !exists {
		in.live[key] = childWithProps
		instance, first = childWithProps, true
	} else if instance != childWithProps {
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(childWithProps)
		}
	}

	if _, ok := instance.(AfterRenderer); ok {
		in.afterRender = append(in.afterRender, mounted{component: instance, first: first})
	}
	return instance, first
}

// Rendered returns the components rendered in this pass that want
// OnAfterRender, in render order, and clears the list.
func (in *Instances) Rendered() []AfterRendererCall {
	calls := make([]AfterRendererCall, len(in.afterRender))
	for i, m := range in.afterRender {
		calls[i] = AfterRendererCall{Component: m.component.(AfterRenderer), First: m.first}
	}
	in.afterRender = in.afterRender[:0]
	return calls
}

// AfterRendererCall is one pending OnAfterRender invocation.
type AfterRendererCall struct {
	Component AfterRenderer
	First     bool
}

// Sweep removes instances not rendered in this pass and hands each one to
// fn before dropping it.
func (in *Instances) Sweep(fn func(key string, c Component)) {
	for key, instance := range in.live {
		if in.active[key] {
			continue
		}
		delete(in.live, key)
		fn(key, instance)
	}
}

// Len is the number of live instances.
func (in *Instances) Len() int {
	return len(in.live)
}
