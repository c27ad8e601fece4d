package router

import (
	"strings"

	"github.com/vcrobe/nojs-nouislider/runtime"
)

// Route binds a path pattern to the page it renders.
// The pattern can contain parameters in curly braces, e.g., "/slider/{id}".
type Route struct {
	Pattern string
	Factory runtime.ComponentFactory
}

// Match returns the first route matching path together with the extracted
// parameters. ok is false when nothing matches.
func Match(routes []Route, path string) (route Route, params map[string]string, ok bool) {
	for _, r := range routes {
		if params, ok := matchPattern(r.Pattern, path); ok {
			return r, params, true
		}
	}
	return Route{}, nil, false
}

// HashPath turns a location hash ("#/dates", "#dates", "") into a route path.
func HashPath(hash string) string {
	path := strings.TrimPrefix(hash, "#")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return normalize(path)
}

func normalize(path string) string {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return "/"
	}
	return path
}

// matchPattern checks if an actual path matches a route pattern and parses
// the URL parameters on the way.
func matchPattern(pattern, path string) (map[string]string, bool) {
	pattern = normalize(pattern)
	path = normalize(path)

	params := make(map[string]string)
	if pattern == path {
		return params, true
	}

	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")

	if len(patternParts) != len(pathParts) {
		return nil, false
	}

	for i := range patternParts {
		if strings.HasPrefix(patternParts[i], "{") && strings.HasSuffix(patternParts[i], "}") {
			if pathParts[i] == "" {
				return nil, false
			}
			params[strings.Trim(patternParts[i], "{}")] = pathParts[i]
			continue
		}
		if patternParts[i] != pathParts[i] {
			return nil, false
		}
	}

	return params, true
}
