// Package eventtable renders the last slider event as a table.
package eventtable

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/vcrobe/nojs-nouislider/nouislider"
	"github.com/vcrobe/nojs-nouislider/runtime"
	"github.com/vcrobe/nojs-nouislider/vdom"
)

// EventTable shows values, unencoded values, positions and the last
// handle of one event.
type EventTable struct {
	runtime.ComponentBase

	Event nouislider.Event
}

func (t *EventTable) ApplyProps(next runtime.Component) {
	if n, ok := next.(*EventTable); ok {
		t.Event = n.Event
	}
}

// columnWidths returns the width of the label column and of each value
// column. Value columns share 90% of the table.
func columnWidths(columns int) (string, string) {
	if columns < 1 {
		columns = 1
	}
	return "10%", fmt.Sprintf("%.0f%%", 90/float64(columns))
}

func numbers(values []float64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = cast.ToString(v)
	}
	return out
}

func row(label string, labelWidth, width string, values []string) *vdom.VNode {
	labelAttrs := map[string]any{}
	if labelWidth != "" {
		labelAttrs["width"] = labelWidth
	}
	cells := []*vdom.VNode{vdom.Cell(label, labelAttrs)}
	for _, v := range values {
		attrs := map[string]any{}
		if width != "" {
			attrs["width"] = width
		}
		cells = append(cells, vdom.Cell(v, attrs))
	}
	return vdom.Row(cells...)
}

func (t *EventTable) Render(r runtime.Renderer) *vdom.VNode {
	labelWidth, width := columnWidths(len(t.Event.Values))

	return vdom.Div(map[string]any{"class": "my-6"},
		vdom.Table(map[string]any{"width": "100%", "class": "table is-bordered is-narrow is-fullwidth"},
			row("values", labelWidth, width, t.Event.Values),
			row("unencoded", "", "", numbers(t.Event.Unencoded)),
			row("position", "", "", numbers(t.Event.Positions)),
			row("last handle", "", "", []string{cast.ToString(t.Event.Handle)}),
		),
	)
}
