package runtime

// Initializer is implemented by components that set up state once,
// before their first render.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that derive state from
// their props before every render.
type ParameterReceiver interface {
	OnPropertiesSet()
}

// PropUpdater copies props from a freshly built component onto the live
// instance that the renderer keeps for the same key.
type PropUpdater interface {
	ApplyProps(next Component)
}

// AfterRenderer is called once the rendered tree is in the DOM. first is
// true after the component's first render only. Components wrapping native
// widgets bind their listeners here.
type AfterRenderer interface {
	OnAfterRender(first bool)
}

// Cleaner is implemented by components holding resources that must be
// released when they leave the tree.
type Cleaner interface {
	OnDestroy()
}

// NavigationManager is the router side of the renderer.
type NavigationManager interface {
	Navigate(path string) error
}
