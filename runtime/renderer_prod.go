//go:build (js || wasm) && !dev
// +build js wasm
// +build !dev

package runtime

// In production mode, lifecycle panics are recovered and logged so one
// broken component does not take the page down.

func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	defer r.recoverLifecycle("OnInit", key)
	initializer.OnInit()
}

func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	defer r.recoverLifecycle("OnPropertiesSet", key)
	receiver.OnPropertiesSet()
}

func (r *RendererImpl) callOnAfterRender(after AfterRenderer, first bool) {
	defer r.recoverLifecycle("OnAfterRender", "")
	after.OnAfterRender(first)
}

func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	defer r.recoverLifecycle("OnDestroy", key)
	cleaner.OnDestroy()
}

func (r *RendererImpl) recoverLifecycle(hook, key string) {
	if rec := recover(); rec != nil {
		r.logger.Errorw("Lifecycle hook panicked", "hook", hook, "component", key, "panic", rec)
	}
}
