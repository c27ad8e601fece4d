package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-nouislider/vdom"
)

type probe struct {
	ComponentBase
	Label   string
	applied []string
}

func (p *probe) Render(Renderer) *vdom.VNode { return vdom.Paragraph(p.Label, nil) }

func (p *probe) ApplyProps(next Component) {
	p.Label = next.(*probe).Label
	p.applied = append(p.applied, p.Label)
}

func (p *probe) OnAfterRender(bool) {}

func TestInstances_ResolveKeepsFirstInstanceAndAppliesProps(t *testing.T) {
	in := NewInstances()

	in.BeginPass()
	first := &probe{Label: "one"}
	got, isFirst := in.Resolve("k", first)
	assert.Same(t, first, got)
	assert.True(t, isFirst)

	in.BeginPass()
	got, isFirst = in.Resolve("k", &probe{Label: "two"})
	assert.Same(t, first, got)
	assert.False(t, isFirst)
	assert.Equal(t, "two", first.Label)
	assert.Equal(t, []string{"two"}, first.applied)
}

func TestInstances_RenderedListsAfterRenderersOnce(t *testing.T) {
	in := NewInstances()
	in.BeginPass()
	p := &probe{}
	in.Resolve("a", p)

	calls := in.Rendered()
	require.Len(t, calls, 1)
	assert.True(t, calls[0].First)
	assert.Empty(t, in.Rendered())
}

func TestInstances_SweepDropsUnrenderedKeys(t *testing.T) {
	in := NewInstances()
	in.BeginPass()
	in.Resolve("a", &probe{})
	in.Resolve("b", &probe{})

	in.BeginPass()
	in.Resolve("a", &probe{})
	var swept []string
	in.Sweep(func(key string, _ Component) { swept = append(swept, key) })

	assert.Equal(t, []string{"b"}, swept)
	assert.Equal(t, 1, in.Len())
}
