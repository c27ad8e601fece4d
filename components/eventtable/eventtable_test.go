//go:build !wasm
// +build !wasm

package eventtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-nouislider/nouislider"
	"github.com/vcrobe/nojs-nouislider/testcomponents"
)

func cellTexts(t *testing.T, table *EventTable) [][]string {
	t.Helper()
	root := testcomponents.NewTestRenderer(table).RenderRoot()

	var out [][]string
	for _, tr := range root.FindAll("tr") {
		var texts []string
		for _, td := range tr.Children {
			texts = append(texts, td.Content)
		}
		out = append(out, texts)
	}
	return out
}

func TestEventTable_Rows(t *testing.T) {
	table := &EventTable{Event: nouislider.Event{
		Values:    []string{"20.00", "80.00"},
		Handle:    1,
		Unencoded: []float64{20, 80.5},
		Positions: []float64{20, 80.5},
	}}

	assert.Equal(t, [][]string{
		{"values", "20.00", "80.00"},
		{"unencoded", "20", "80.5"},
		{"position", "20", "80.5"},
		{"last handle", "1"},
	}, cellTexts(t, table))
}

func TestEventTable_ColumnWidths(t *testing.T) {
	table := &EventTable{Event: nouislider.Event{Values: []string{"a", "b"}}}
	root := testcomponents.NewTestRenderer(table).RenderRoot()

	first := root.FindAll("tr")[0]
	require.Len(t, first.Children, 3)
	assert.Equal(t, "10%", first.Children[0].Attributes["width"])
	assert.Equal(t, "45%", first.Children[1].Attributes["width"])
	assert.Equal(t, "45%", first.Children[2].Attributes["width"])
}

func TestEventTable_EmptyEvent(t *testing.T) {
	rows := cellTexts(t, &EventTable{})

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"values"}, rows[0])
	assert.Equal(t, []string{"last handle", "0"}, rows[3])
}
