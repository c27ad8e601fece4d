package router

import (
	"github.com/vcrobe/nojs-nouislider/runtime"
	"github.com/vcrobe/nojs-nouislider/vdom"
)

// NavLink is one entry in the shell's navigation bar.
type NavLink struct {
	Path  string
	Label string
}

// AppShell is the stable root component. It keeps the title and the
// navigation bar and swaps only the page below them when the route changes.
type AppShell struct {
	runtime.ComponentBase

	Title string
	Links []NavLink

	page    runtime.Component
	pageKey string
	path    string
}

// NewAppShell creates a new AppShell.
func NewAppShell(title string, links []NavLink) *AppShell {
	return &AppShell{Title: title, Links: links}
}

// SetPage replaces the current page and triggers a re-render. A new key
// gives the page a fresh instance, so the previous page is destroyed.
func (a *AppShell) SetPage(page runtime.Component, key string) {
	a.page = page
	a.pageKey = key
	a.path = key
	a.StateHasChanged()
}

// Page returns the current page.
func (a *AppShell) Page() runtime.Component {
	return a.page
}

// Render composes the navigation bar with the current page.
func (a *AppShell) Render(r runtime.Renderer) *vdom.VNode {
	links := make([]*vdom.VNode, 0, len(a.Links))
	for _, l := range a.Links {
		attrs := map[string]any{"class": "nav-link"}
		if l.Path == a.path {
			attrs["class"] = "nav-link active"
		}
		links = append(links, vdom.Link("#"+l.Path, l.Label, attrs))
	}

	children := []*vdom.VNode{
		vdom.Heading(1, a.Title),
		vdom.NewVNode("nav", nil, links, ""),
	}
	if a.page != nil {
		children = append(children, r.RenderChild("page:"+a.pageKey, a.page))
	}
	return vdom.Div(map[string]any{"class": "app-shell"}, children...)
}
