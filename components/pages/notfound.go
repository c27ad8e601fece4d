package pages

import (
	"github.com/vcrobe/nojs-nouislider/runtime"
	"github.com/vcrobe/nojs-nouislider/vdom"
)

type NotFound struct {
	runtime.ComponentBase

	Path string
}

func (p *NotFound) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Section(map[string]any{"class": "section mx-6"},
		vdom.Heading(2, "Page not found"),
		vdom.Paragraph("Nothing lives at "+p.Path+".", nil),
		vdom.Link("#/", "Back to the numeric slider", nil),
	)
}
