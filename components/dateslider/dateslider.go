// Package dateslider is a two handle slider over a time span.
package dateslider

import (
	"time"

	"go.uber.org/zap"

	"github.com/vcrobe/nojs-nouislider/components/eventtable"
	"github.com/vcrobe/nojs-nouislider/components/slider"
	"github.com/vcrobe/nojs-nouislider/nouislider"
	"github.com/vcrobe/nojs-nouislider/runtime"
	"github.com/vcrobe/nojs-nouislider/signals"
	"github.com/vcrobe/nojs-nouislider/vdom"
)

// Layout of tooltip and pip labels.
const Layout = "2006-01-02 15:04"

// PipPositions are the track percentages that get a date label.
var PipPositions = []float64{0, 25, 50, 75, 100}

// Bounds returns the slider range for [from, to]. The widget works on
// wall-clock seconds in from's zone, so the zone offset is added. to is
// widened by one second so the last instant stays selectable.
func Bounds(from, to time.Time) (lo, hi float64) {
	_, offset := from.Zone()
	lo = float64(from.Unix() + int64(offset))
	hi = float64(to.Unix() + int64(offset) + 1)
	return lo, hi
}

// Options builds the widget options for [from, to]: handles at one third
// and 1/1.2 of the span, margin and step of 1% of the span.
func Options(from, to time.Time) nouislider.Options {
	lo, hi := Bounds(from, to)
	delta := hi - lo

	return nouislider.Options{
		Start:   []float64{lo + delta/3, lo + delta/1.2},
		Connect: []bool{false, true, false},
		Range:   nouislider.LinearRange(lo, hi),
		Pips: &nouislider.Pips{
			Mode:    nouislider.PipsPositions,
			Density: nouislider.Float(1),
			Values:  PipPositions,
		},
		Margin: nouislider.Float(delta / 100),
		Step:   nouislider.Float(delta / 100),
		HandleAttributes: []map[string]string{
			{"aria-label": "lower"},
			{"aria-label": "upper"},
		},
		Tooltips: nouislider.ShowTooltips(true),
	}
}

// FormatTimestamp renders wall-clock seconds as a label.
func FormatTimestamp(ts float64) string {
	return time.Unix(int64(ts), 0).UTC().Format(Layout)
}

// ToTime turns wall-clock seconds back into an instant in zone.
func ToTime(ts float64, zone *time.Location) time.Time {
	_, offset := time.Unix(int64(ts), 0).In(zone).Zone()
	return time.Unix(int64(ts)-int64(offset), 0).In(zone)
}

// Labels formats the tooltips and pips of ev as dates.
func Labels(ev nouislider.Event) nouislider.FormattedValues {
	labels := nouislider.FormattedValues{
		TooltipsText: make([]string, len(ev.Unencoded)),
		PipsText:     make([]string, len(ev.Pips)),
	}
	for i, v := range ev.Pips {
		labels.PipsText[i] = FormatTimestamp(v)
	}
	for i, v := range ev.Unencoded {
		labels.TooltipsText[i] = FormatTimestamp(v)
	}
	return labels
}

// DateSlider publishes the selected dates to Selection on every event.
type DateSlider struct {
	runtime.ComponentBase

	// Props
	Min, Max   time.Time
	Selection  *signals.Signal[[]time.Time]
	Binding    nouislider.Binding
	ShowEvents bool
	Logger     *zap.SugaredLogger

	zone   *time.Location
	labels nouislider.FormattedValues
	last   nouislider.Event
}

func (d *DateSlider) OnInit() {
	if d.Logger == nil {
		d.Logger = zap.NewNop().Sugar()
	}
	d.Logger = d.Logger.Named("dateslider")

	name, offset := d.Min.Zone()
	d.zone = time.FixedZone(name, offset)
}

func (d *DateSlider) ApplyProps(next runtime.Component) {
	if n, ok := next.(*DateSlider); ok {
		d.Min, d.Max = n.Min, n.Max
		d.Selection = n.Selection
		d.ShowEvents = n.ShowEvents
	}
}

// LastEvent returns the most recent slider event.
func (d *DateSlider) LastEvent() nouislider.Event {
	return d.last
}

func (d *DateSlider) onUpdate(ev nouislider.Event) {
	d.last = ev
	d.labels = Labels(ev)

	dates := make([]time.Time, len(ev.Unencoded))
	for i, v := range ev.Unencoded {
		dates[i] = ToTime(v, d.zone)
	}
	if d.Selection != nil {
		d.Selection.Set(dates)
	}
	d.StateHasChanged()
}

func (d *DateSlider) Render(r runtime.Renderer) *vdom.VNode {
	children := []*vdom.VNode{
		r.RenderChild("slider", &slider.Slider{
			Options:  Options(d.Min, d.Max),
			Labels:   d.labels,
			OnUpdate: d.onUpdate,
			Binding:  d.Binding,
			Logger:   d.Logger,
		}),
	}
	if d.ShowEvents {
		children = append(children, r.RenderChild("events", &eventtable.EventTable{Event: d.last}))
	}
	return vdom.Div(map[string]any{"class": "date-slider"}, children...)
}
