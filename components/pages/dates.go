package pages

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/thoas/go-funk"
	"go.uber.org/zap"

	"github.com/vcrobe/nojs-nouislider/components/dateslider"
	"github.com/vcrobe/nojs-nouislider/nouislider"
	"github.com/vcrobe/nojs-nouislider/runtime"
	"github.com/vcrobe/nojs-nouislider/signals"
	"github.com/vcrobe/nojs-nouislider/vdom"
)

// GenRandomDates returns n sorted dates in [from, to] in from's location.
// from and to are always included.
func GenRandomDates(rng *rand.Rand, from, to time.Time, n int) []time.Time {
	n = max(n, 2)
	lo, hi := from.Unix(), to.Unix()

	dates := make([]time.Time, 0, n)
	for i := 0; i < n-2; i++ {
		ts := lo
		if hi > lo {
			ts += rng.Int64N(hi - lo)
		}
		dates = append(dates, time.Unix(ts, 0).In(from.Location()))
	}
	dates = append(dates, from, to)
	slices.SortFunc(dates, time.Time.Compare)
	return dates
}

// CountInRange counts the dates in [lo, hi].
func CountInRange(dates []time.Time, lo, hi time.Time) int {
	inRange := funk.Filter(dates, func(d time.Time) bool {
		return !d.Before(lo) && !d.After(hi)
	}).([]time.Time)
	return len(inRange)
}

// DatePage draws random dates and shows how many the date slider selects.
type DatePage struct {
	runtime.ComponentBase

	From, To   time.Time
	Count      int
	Seed       uint64
	ShowEvents bool
	Binding    nouislider.Binding
	Logger     *zap.SugaredLogger

	dates       []time.Time
	selection   *signals.Signal[[]time.Time]
	unsubscribe func()
	inRange     int
	selected    bool
}

func (p *DatePage) OnInit() {
	if p.Logger == nil {
		p.Logger = zap.NewNop().Sugar()
	}
	p.Logger = p.Logger.Named("dates")

	seed := p.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	p.dates = GenRandomDates(rand.New(rand.NewPCG(seed, seed>>1)), p.From, p.To, p.Count)
	p.Logger.Debugw("Generated dates", "count", len(p.dates), "seed", seed)

	p.selection = signals.NewSignal[[]time.Time](nil)
	p.unsubscribe = p.selection.Subscribe(p.onSelection)
}

func (p *DatePage) onSelection(selected []time.Time) {
	if len(selected) < 2 {
		return
	}
	p.inRange = CountInRange(p.dates, selected[0], selected[1])
	p.selected = true
	p.StateHasChanged()
}

// Dates returns the generated dates.
func (p *DatePage) Dates() []time.Time {
	return p.dates
}

// Selection is the signal the date slider publishes to.
func (p *DatePage) Selection() *signals.Signal[[]time.Time] {
	return p.selection
}

func (p *DatePage) OnDestroy() {
	if p.unsubscribe != nil {
		p.unsubscribe()
	}
}

func (p *DatePage) Render(r runtime.Renderer) *vdom.VNode {
	output := vdom.Div(nil)
	if p.selected {
		output = vdom.Paragraph(fmt.Sprintf("%d/%d dates in range", p.inRange, len(p.dates)), nil)
	}

	return vdom.Div(map[string]any{"class": "app"},
		vdom.Section(map[string]any{"class": "section mx-6"},
			r.RenderChild("date-slider", &dateslider.DateSlider{
				Min:        p.dates[0],
				Max:        p.dates[len(p.dates)-1],
				Selection:  p.selection,
				Binding:    p.Binding,
				ShowEvents: p.ShowEvents,
				Logger:     p.Logger,
			}),
		),
		vdom.Section(map[string]any{"class": "section mx-6"}, output),
	)
}
