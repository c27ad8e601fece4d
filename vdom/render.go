//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/nojs-nouislider/console"
)

// releaseCallbacks releases all js.Func objects stored in a VNode.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	for _, cb := range v.GetEventCallbacks() {
		if jsFunc, ok := cb.(js.Func); ok {
			jsFunc.Release()
		}
	}
	v.ClearEventCallbacks()
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	releaseCallbacks(v)

	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

// Clear empties the mount element, releasing the callbacks of prevVDOM.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}

	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}

	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}
	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}

	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}
	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}

	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

func querySelector(selector string) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
	}
	return mount
}

// setAttributeValue sets an attribute on an element, handling boolean attributes and event handlers correctly.
func setAttributeValue(el js.Value, key string, value any) {
	if isEventAttribute(key) {
		return
	}

	// Boolean attributes are present or absent
	if boolVal, ok := value.(bool); ok {
		if boolVal {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
		return
	}

	el.Call("setAttribute", key, value)
}

func isEventAttribute(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n'
}

// attachEventListeners attaches func(js.Value) attributes named onXxx as
// listeners for the xxx event. The js.Func values are stored on the VNode
// for later cleanup.
func attachEventListeners(el js.Value, vnode *VNode) {
	for key, value := range vnode.Attributes {
		if !isEventAttribute(key) {
			continue
		}
		handler, ok := value.(func(js.Value))
		if !ok {
			continue
		}

		// "onClick" -> "click", "onInput" -> "input"
		eventName := key[2:]
		if eventName[0] >= 'A' && eventName[0] <= 'Z' {
			eventName = string(eventName[0]+('a'-'A')) + eventName[1:]
		}

		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 {
				handler(args[0])
			}
			return nil
		})
		el.Call("addEventListener", eventName, cb)
		vnode.AddEventCallback(cb)
	}

	if vnode.OnClick != nil {
		onClick := vnode.OnClick
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			onClick()
			return nil
		})
		el.Call("addEventListener", "click", cb)
		vnode.AddEventCallback(cb)
	}
}

// setContent writes Content as the value of form controls and as text
// everywhere else, unless the node has children.
func setContent(el js.Value, n *VNode) {
	if n.Content == "" {
		return
	}
	switch n.Tag {
	case "input", "textarea", "select":
		el.Set("value", n.Content)
	default:
		if len(n.Children) == 0 {
			el.Set("textContent", n.Content)
		}
	}
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	switch n.Tag {
	case TextTag:
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)

	case RefTag:
		ref, ok := n.Ref.(js.Value)
		if !ok {
			console.Error("Ref node does not hold a DOM node")
			return js.Undefined()
		}
		return ref

	case "":
		console.Error("VNode without tag")
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)

	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	attachEventListeners(el, n)
	setContent(el, n)

	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}

	mount := querySelector(mountSelector)
	if !mount.Truthy() {
		return
	}

	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		// No existing DOM, just render fresh
		RenderTo(mount, newVNode)
		return
	}

	patchElement(rootElement, oldVNode, newVNode)
}

func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)

	newElement := createElement(newVNode)
	if !newElement.Truthy() {
		return
	}
	parent := domElement.Get("parentNode")
	if parent.Truthy() {
		parent.Call("replaceChild", newElement, domElement)
	}
}

func sameRef(a, b *VNode) bool {
	ra, okA := a.Ref.(js.Value)
	rb, okB := b.Ref.(js.Value)
	return okA && okB && ra.Equal(rb)
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	// A different component at this spot gets a fresh subtree
	if oldVNode.ComponentKey != "" && newVNode.ComponentKey != "" && oldVNode.ComponentKey != newVNode.ComponentKey {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	switch newVNode.Tag {
	case RefTag:
		// the owner mutates its node directly; only a different node is swapped in
		if !sameRef(oldVNode, newVNode) {
			replaceElement(domElement, oldVNode, newVNode)
		}
		return
	case TextTag:
		if oldVNode.Content != newVNode.Content {
			domElement.Set("textContent", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	// Release old callbacks and attach new ones
	releaseCallbacks(oldVNode)
	attachEventListeners(domElement, newVNode)

	switch newVNode.Tag {
	case "input", "textarea":
		// Only update value if element is NOT currently focused
		// This preserves the user's typing experience
		isFocused := domElement.Call("matches", ":focus")
		if !isFocused.Bool() && newVNode.Content != "" && domElement.Get("value").String() != newVNode.Content {
			domElement.Set("value", newVNode.Content)
		}
	case "select":
		if newVNode.Content != "" {
			domElement.Set("value", newVNode.Content)
		}
	default:
		// Setting textContent wipes out all child nodes, so only leaf nodes get it
		if len(newVNode.Children) == 0 && oldVNode.Content != newVNode.Content {
			domElement.Set("textContent", newVNode.Content)
		}
	}

	patchChildren(domElement, oldVNode.Children, newVNode.Children)
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if _, exists := newAttrs[key]; !exists && !isEventAttribute(key) {
			domElement.Call("removeAttribute", key)
		}
	}

	for key, value := range newAttrs {
		if isEventAttribute(key) {
			continue
		}
		if old, ok := oldAttrs[key]; !ok || old != value {
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := min(oldLen, newLen)

	domChildren := domElement.Get("childNodes")

	for i := 0; i < minLen; i++ {
		oldChild := oldChildren[i]
		newChild := newChildren[i]

		switch {
		case oldChild == nil && newChild != nil:
			// conditional content appearing
			newChildEl := createElement(newChild)
			if !newChildEl.Truthy() {
				continue
			}
			if refChild := domChildren.Call("item", i); refChild.Truthy() {
				domElement.Call("insertBefore", newChildEl, refChild)
			} else {
				domElement.Call("appendChild", newChildEl)
			}
		case oldChild != nil && newChild == nil:
			deepReleaseCallbacks(oldChild)
			if childElement := domChildren.Call("item", i); childElement.Truthy() {
				domElement.Call("removeChild", childElement)
			}
		case oldChild != nil && newChild != nil:
			if childElement := domChildren.Call("item", i); childElement.Truthy() {
				patchElement(childElement, oldChild, newChild)
			}
		}
	}

	for i := oldLen; i < newLen; i++ {
		newChild := createElement(newChildren[i])
		if newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	for i := oldLen - 1; i >= newLen; i-- {
		deepReleaseCallbacks(oldChildren[i])
		if childElement := domChildren.Call("item", i); childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
