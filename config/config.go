// Package config loads the demo configuration.
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/vcrobe/nojs-nouislider/nouislider"
)

// Notifier shows a message to the user.
type Notifier interface {
	Notify(title, message string)
}

// CanonicalConfig is the parsed configuration with defaults applied.
type CanonicalConfig struct {
	LogLevel string

	Numeric struct {
		Start    []float64
		Min, Max float64
		Step     float64
	}

	Dates struct {
		From, To   time.Time
		Count      int
		Seed       uint64
		ShowEvents bool
	}

	Pips struct {
		Start   []float64
		Range   nouislider.Range
		Density float64
	}
}

type marshalledConfig struct {
	LogLevel string `yaml:"log_level"`

	Numeric struct {
		Start []float64 `yaml:"start"`
		Min   *float64  `yaml:"min"`
		Max   *float64  `yaml:"max"`
		Step  float64   `yaml:"step"`
	} `yaml:"numeric"`

	Dates struct {
		From       string `yaml:"from"`
		To         string `yaml:"to"`
		Count      int    `yaml:"count"`
		Seed       uint64 `yaml:"seed"`
		ShowEvents bool   `yaml:"show_events"`
	} `yaml:"dates"`

	Pips struct {
		Start   []float64      `yaml:"start"`
		Range   map[string]any `yaml:"range"`
		Density float64        `yaml:"density"`
	} `yaml:"pips"`
}

const (
	defaultLogLevel    = "info"
	defaultNumericMin  = 0
	defaultNumericMax  = 100
	defaultDateCount   = 500
	defaultPipsDensity = 3
)

var (
	defaultNumericStart = []float64{20, 80}

	defaultDateFrom = time.Date(2000, 3, 29, 12, 6, 43, 0, time.FixedZone("", 2*3600))
	defaultDateTo   = time.Date(2005, 12, 29, 4, 29, 15, 0, time.FixedZone("", 2*3600))

	defaultPipsStart = []float64{500}
	defaultPipsRange = nouislider.Range{
		"min": {0},
		"25%": {10},
		"50%": {100},
		"75%": {1000},
		"max": {10000},
	}
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Load parses YAML into a CanonicalConfig. Missing keys take their
// defaults. notifier may be nil.
func Load(data []byte, notifier Notifier) (*CanonicalConfig, error) {
	mc := &marshalledConfig{}
	if err := yaml.Unmarshal(data, mc); err != nil {
		if notifier != nil {
			notifier.Notify("Invalid configuration!", "Please make sure config.yaml is a valid YAML format.")
		}
		return nil, fmt.Errorf("unmarshall yaml config: %w", err)
	}

	cc := &CanonicalConfig{}
	if err := cc.populateFromMarshalled(mc); err != nil {
		if notifier != nil {
			notifier.Notify("Invalid configuration!", err.Error())
		}
		return nil, fmt.Errorf("populate config fields: %w", err)
	}

	return cc, nil
}

func (cc *CanonicalConfig) populateFromMarshalled(mc *marshalledConfig) error {
	cc.LogLevel = mc.LogLevel
	if cc.LogLevel == "" {
		cc.LogLevel = defaultLogLevel
	}

	cc.Numeric.Start = mc.Numeric.Start
	if len(cc.Numeric.Start) == 0 {
		cc.Numeric.Start = slices.Clone(defaultNumericStart)
	}
	cc.Numeric.Min, cc.Numeric.Max = defaultNumericMin, defaultNumericMax
	if mc.Numeric.Min != nil {
		cc.Numeric.Min = *mc.Numeric.Min
	}
	if mc.Numeric.Max != nil {
		cc.Numeric.Max = *mc.Numeric.Max
	}
	cc.Numeric.Step = mc.Numeric.Step

	var err error
	if cc.Dates.From, err = parseTime("dates.from", mc.Dates.From, defaultDateFrom); err != nil {
		return err
	}
	if cc.Dates.To, err = parseTime("dates.to", mc.Dates.To, defaultDateTo); err != nil {
		return err
	}
	cc.Dates.Count = mc.Dates.Count
	if cc.Dates.Count == 0 {
		cc.Dates.Count = defaultDateCount
	}
	cc.Dates.Seed = mc.Dates.Seed
	cc.Dates.ShowEvents = mc.Dates.ShowEvents

	cc.Pips.Start = mc.Pips.Start
	if len(cc.Pips.Start) == 0 {
		cc.Pips.Start = slices.Clone(defaultPipsStart)
	}
	cc.Pips.Range = cloneRange(defaultPipsRange)
	if len(mc.Pips.Range) > 0 {
		if cc.Pips.Range, err = parseRange(mc.Pips.Range); err != nil {
			return err
		}
	}
	cc.Pips.Density = mc.Pips.Density
	if cc.Pips.Density == 0 {
		cc.Pips.Density = defaultPipsDensity
	}

	return cc.validate()
}

func parseTime(key, value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return t, nil
}

func cloneRange(r nouislider.Range) nouislider.Range {
	out := make(nouislider.Range, len(r))
	for stop, v := range r {
		out[stop] = slices.Clone(v)
	}
	return out
}

// parseRange accepts a number or a list of numbers per stop.
func parseRange(raw map[string]any) (nouislider.Range, error) {
	r := make(nouislider.Range, len(raw))
	for stop, v := range raw {
		if list, ok := v.([]any); ok {
			values := make([]float64, len(list))
			for i, item := range list {
				f, err := cast.ToFloat64E(item)
				if err != nil {
					return nil, fmt.Errorf("%w: pips.range.%s: %v", ErrInvalidConfig, stop, err)
				}
				values[i] = f
			}
			r[stop] = values
			continue
		}

		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("%w: pips.range.%s: %v", ErrInvalidConfig, stop, err)
		}
		r[stop] = []float64{f}
	}
	return r, nil
}

func (cc *CanonicalConfig) validate() error {
	if err := cc.NumericOptions().Validate(); err != nil {
		return fmt.Errorf("%w: numeric: %v", ErrInvalidConfig, err)
	}
	if err := cc.PipsOptions().Validate(); err != nil {
		return fmt.Errorf("%w: pips: %v", ErrInvalidConfig, err)
	}
	if !cc.Dates.From.Before(cc.Dates.To) {
		return fmt.Errorf("%w: dates.from must be before dates.to", ErrInvalidConfig)
	}
	if cc.Dates.Count < 2 {
		return fmt.Errorf("%w: dates.count must be at least 2, got %d", ErrInvalidConfig, cc.Dates.Count)
	}
	return nil
}

// NumericOptions are the options of the numeric demo slider.
func (cc *CanonicalConfig) NumericOptions() nouislider.Options {
	opts := nouislider.Options{
		Start:    cc.Numeric.Start,
		Connect:  []bool{false, true, false},
		Range:    nouislider.LinearRange(cc.Numeric.Min, cc.Numeric.Max),
		Tooltips: nouislider.ShowTooltips(true),
	}
	if cc.Numeric.Step > 0 {
		opts.Step = nouislider.Float(cc.Numeric.Step)
	}
	return opts
}

// PipsOptions are the options of the slider with a non-linear scale.
func (cc *CanonicalConfig) PipsOptions() nouislider.Options {
	// fill below the first handle only
	connect := make([]bool, len(cc.Pips.Start)+1)
	connect[0] = true

	return nouislider.Options{
		Start:    cc.Pips.Start,
		Range:    cc.Pips.Range,
		Connect:  connect,
		Tooltips: nouislider.ShowTooltips(true),
		Pips: &nouislider.Pips{
			Mode:    nouislider.PipsRange,
			Density: nouislider.Float(cc.Pips.Density),
			Stepped: nouislider.Bool(true),
		},
	}
}
