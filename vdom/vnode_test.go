//go:build !wasm
// +build !wasm

package vdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVNode_ExtractsOnClick(t *testing.T) {
	clicked := false
	attrs := map[string]any{"class": "btn", "onClick": func() { clicked = true }}

	n := Button("Reset", attrs)

	require.NotNil(t, n.OnClick)
	assert.NotContains(t, n.Attributes, "onClick")
	assert.Equal(t, "btn", n.Attributes["class"])

	n.OnClick()
	assert.True(t, clicked)
}

func TestTable(t *testing.T) {
	n := Table(nil, Row(Cell("a", nil), Cell("b", nil)), Row(Cell("c", nil)))

	assert.Equal(t, "table", n.Tag)
	require.Len(t, n.Children, 1)
	assert.Equal(t, "tbody", n.Children[0].Tag)
	assert.Len(t, n.FindAll("tr"), 2)

	cells := n.FindAll("td")
	require.Len(t, cells, 3)
	assert.Equal(t, "c", cells[2].Content)
}

func TestRef(t *testing.T) {
	node := &struct{ id int }{id: 7}
	n := Div(nil, Ref(node))

	refs := n.FindAll(RefTag)
	require.Len(t, refs, 1)
	assert.Same(t, node, refs[0].Ref)
}

func TestHeading(t *testing.T) {
	assert.Equal(t, "h2", Heading(2, "x").Tag)
	assert.Equal(t, "h1", Heading(9, "x").Tag)
}

func TestEventCallbacks(t *testing.T) {
	n := Div(nil)
	n.AddEventCallback("cb1")
	n.AddEventCallback("cb2")
	assert.Len(t, n.GetEventCallbacks(), 2)

	n.ClearEventCallbacks()
	assert.Empty(t, n.GetEventCallbacks())
}
