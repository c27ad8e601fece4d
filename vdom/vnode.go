package vdom

// Tags for nodes that are not HTML elements.
const (
	TextTag = "#text"
	RefTag  = "#ref"
)

// VNode represents a virtual DOM node.
type VNode struct {
	Tag          string         // The HTML tag name, TextTag or RefTag
	Attributes   map[string]any // The attributes of the node
	Children     []*VNode       // The child nodes
	Content      string         // The content of the node
	OnClick      func()         // Optional click event handler
	Ref          any            // Externally owned DOM node mounted as-is (RefTag only)
	ComponentKey string         // Key of the component that rendered this node, if any

	eventCallbacks []any // js.Func values to release when the node goes away
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				// Remove from attributes so it doesn't get rendered as an HTML attribute
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// AddEventCallback stores a callback to release later.
func (v *VNode) AddEventCallback(cb any) {
	v.eventCallbacks = append(v.eventCallbacks, cb)
}

// GetEventCallbacks returns the stored callbacks.
func (v *VNode) GetEventCallbacks() []any {
	return v.eventCallbacks
}

// ClearEventCallbacks forgets the stored callbacks.
func (v *VNode) ClearEventCallbacks() {
	v.eventCallbacks = nil
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return &VNode{Tag: TextTag, Content: content}
}

// Ref wraps a node the caller owns, such as a widget container. The
// renderer inserts it untouched and keeps it in place while the same ref
// is rendered at the same position.
func Ref(node any) *VNode {
	return &VNode{Tag: RefTag, Ref: node}
}

// Paragraph creates a <p> VNode with the given text and attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Heading creates an <h1>..<h6> VNode.
func Heading(level int, text string) *VNode {
	if level < 1 || level > 6 {
		level = 1
	}
	return NewVNode("h"+string(rune('0'+level)), nil, nil, text)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Section creates a <section> VNode.
func Section(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("section", attrs, children, "")
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}

// Link creates an <a> VNode.
func Link(href, text string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["href"] = href
	return NewVNode("a", attrs, nil, text)
}

// Table creates a <table><tbody> with the given rows.
func Table(attrs map[string]any, rows ...*VNode) *VNode {
	return NewVNode("table", attrs, []*VNode{NewVNode("tbody", nil, rows, "")}, "")
}

// Row creates a <tr>.
func Row(cells ...*VNode) *VNode {
	return NewVNode("tr", nil, cells, "")
}

// Cell creates a <td> with text content.
func Cell(text string, attrs map[string]any) *VNode {
	return NewVNode("td", attrs, nil, text)
}

// FindAll returns every node in the tree with the given tag, depth first.
func (v *VNode) FindAll(tag string) []*VNode {
	if v == nil {
		return nil
	}
	var out []*VNode
	if v.Tag == tag {
		out = append(out, v)
	}
	for _, child := range v.Children {
		out = append(out, child.FindAll(tag)...)
	}
	return out
}
