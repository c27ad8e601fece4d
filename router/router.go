//go:build js || wasm

package router

import (
	"fmt"
	"sync"
	"syscall/js"

	"go.uber.org/zap"

	"github.com/vcrobe/nojs-nouislider/runtime"
)

// Engine is a hash-mode router. The location hash holds the route path, so
// the demo works from any static file server without rewrite rules.
type Engine struct {
	mu            sync.Mutex
	routes        []Route
	notFound      runtime.ComponentFactory
	currentPath   string
	onRouteChange func(page runtime.Component, path string)
	hashListener  js.Func
	listening     bool

	logger *zap.SugaredLogger
}

// Compile-time assertion to ensure Engine can back the renderer's Navigate.
var _ runtime.NavigationManager = (*Engine)(nil)

// NewEngine creates a new router engine.
func NewEngine(logger *zap.SugaredLogger) *Engine {
	return &Engine{logger: logger.Named("router")}
}

// Handle registers a page for a pattern. Earlier patterns win.
func (e *Engine) Handle(pattern string, factory runtime.ComponentFactory) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.routes = append(e.routes, Route{Pattern: pattern, Factory: factory})
}

// HandleNotFound sets the page shown when no pattern matches.
func (e *Engine) HandleNotFound(factory runtime.ComponentFactory) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notFound = factory
}

// Navigate changes the location hash. The hashchange listener does the
// actual page switch.
func (e *Engine) Navigate(path string) error {
	path = normalize(path)
	if HashPath(js.Global().Get("location").Get("hash").String()) == path {
		// no hashchange will fire
		return e.show(path)
	}
	js.Global().Get("location").Set("hash", "#"+path)
	return nil
}

func (e *Engine) show(path string) error {
	e.mu.Lock()
	route, params, ok := Match(e.routes, path)
	factory := route.Factory
	if !ok {
		factory = e.notFound
		params = map[string]string{"path": path}
	}
	onChange := e.onRouteChange
	e.currentPath = path
	e.mu.Unlock()

	if factory == nil {
		e.logger.Warnw("No route for path", "path", path)
		return fmt.Errorf("no route for path: %s", path)
	}

	e.logger.Debugw("Showing route", "path", path, "pattern", route.Pattern, "params", params)
	if onChange != nil {
		onChange(factory(params), path)
	}
	return nil
}

// CurrentPath returns the current route path.
func (e *Engine) CurrentPath() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentPath
}

// Start listens for hash changes and shows the page for the initial hash.
func (e *Engine) Start(onChange func(page runtime.Component, path string)) error {
	e.mu.Lock()
	e.onRouteChange = onChange
	e.mu.Unlock()

	e.hashListener = js.FuncOf(func(this js.Value, args []js.Value) any {
		path := HashPath(js.Global().Get("location").Get("hash").String())
		if err := e.show(path); err != nil {
			e.logger.Warnw("Failed to show route", "path", path, "error", err)
		}
		return nil
	})
	js.Global().Call("addEventListener", "hashchange", e.hashListener)
	e.listening = true
	e.logger.Debug("hashchange listener registered")

	return e.show(HashPath(js.Global().Get("location").Get("hash").String()))
}

// Cleanup releases resources held by the engine.
func (e *Engine) Cleanup() {
	if !e.listening {
		return
	}
	js.Global().Call("removeEventListener", "hashchange", e.hashListener)
	e.hashListener.Release()
	e.listening = false
	e.logger.Debug("hashchange listener cleaned up")
}
