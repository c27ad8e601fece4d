//go:build !wasm
// +build !wasm

package dateslider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-nouislider/nouislider"
	"github.com/vcrobe/nojs-nouislider/nouislider/nouislidertest"
	"github.com/vcrobe/nojs-nouislider/signals"
	"github.com/vcrobe/nojs-nouislider/testcomponents"
)

var zone = time.FixedZone("", 2*3600)

func span() (time.Time, time.Time) {
	return time.Date(2000, 3, 29, 12, 6, 43, 0, zone), time.Date(2005, 12, 29, 4, 29, 15, 0, zone)
}

func TestBounds_UseWallClockSeconds(t *testing.T) {
	from, to := span()

	lo, hi := Bounds(from, to)

	assert.Equal(t, float64(time.Date(2000, 3, 29, 12, 6, 43, 0, time.UTC).Unix()), lo)
	assert.Equal(t, float64(time.Date(2005, 12, 29, 4, 29, 16, 0, time.UTC).Unix()), hi)
}

func TestOptions(t *testing.T) {
	from, to := span()
	lo, hi := Bounds(from, to)
	delta := hi - lo

	opts := Options(from, to)

	require.NoError(t, opts.Validate())
	assert.Equal(t, []float64{lo + delta/3, lo + delta/1.2}, opts.Start)
	assert.Equal(t, []bool{false, true, false}, opts.Connect)
	assert.Equal(t, delta/100, *opts.Margin)
	assert.Equal(t, delta/100, *opts.Step)
	assert.Equal(t, nouislider.PipsPositions, opts.Pips.Mode)
	assert.Equal(t, []float64{0, 25, 50, 75, 100}, opts.Pips.Values)
	assert.Equal(t, 1.0, *opts.Pips.Density)
	assert.Equal(t, "upper", opts.HandleAttributes[1]["aria-label"])
	assert.True(t, opts.Tooltips.Enabled(1))
}

func TestFormatAndToTime(t *testing.T) {
	from, to := span()
	lo, _ := Bounds(from, to)

	assert.Equal(t, "2000-03-29 12:06", FormatTimestamp(lo))

	back := ToTime(lo, zone)
	assert.True(t, back.Equal(from))
	_, offset := back.Zone()
	assert.Equal(t, 2*3600, offset)
}

func TestLabels(t *testing.T) {
	from, to := span()
	lo, hi := Bounds(from, to)

	labels := Labels(nouislider.Event{Unencoded: []float64{lo}, Pips: []float64{lo, hi}})

	assert.Equal(t, []string{"2000-03-29 12:06"}, labels.TooltipsText)
	assert.Equal(t, []string{"2000-03-29 12:06", "2005-12-29 04:29"}, labels.PipsText)
}

func TestDateSlider_PublishesSelectionAndLabels(t *testing.T) {
	from, to := span()
	binding := nouislidertest.NewBinding()
	selection := signals.NewSignal[[]time.Time](nil)
	d := &DateSlider{Min: from, Max: to, Selection: selection, Binding: binding, ShowEvents: true}

	testcomponents.NewTestRenderer(d).RenderRoot()

	dates := selection.Get()
	require.Len(t, dates, 2)
	assert.True(t, dates[0].After(from))
	assert.True(t, dates[1].After(dates[0]))
	assert.True(t, dates[1].Before(to))

	widget := binding.Last()
	require.NotNil(t, widget)
	tooltips := widget.TooltipTexts()
	require.Len(t, tooltips, 2)
	assert.Equal(t, dates[0].Format(Layout), tooltips[0])
	assert.Equal(t, dates[1].Format(Layout), tooltips[1])

	pips := widget.Container().PipLabels()
	require.Len(t, pips, 5)
	assert.Equal(t, "2000-03-29 12:06", pips[0])
	assert.Equal(t, 1, d.LastEvent().Handle)
}

func TestDateSlider_FollowsDrag(t *testing.T) {
	from, to := span()
	lo, _ := Bounds(from, to)
	binding := nouislidertest.NewBinding()
	selection := signals.NewSignal[[]time.Time](nil)
	var published int
	selection.Subscribe(func([]time.Time) { published++ })
	d := &DateSlider{Min: from, Max: to, Selection: selection, Binding: binding}
	r := testcomponents.NewTestRenderer(d)
	r.RenderRoot()
	published = 0

	binding.Last().Drag(0, lo)

	assert.Equal(t, 2, published)
	assert.True(t, selection.Get()[0].Equal(from))
	assert.Equal(t, "2000-03-29 12:06", binding.Last().TooltipTexts()[0])
}
