package nouislider

import (
	"fmt"
	"math"
)

// Event is one decoded firing of a native slider event.
// See https://refreshless.com/nouislider/events-callbacks/#section-binding
type Event struct {
	Values    []string  // formatted value per handle
	Handle    int       // handle that triggered the event
	Unencoded []float64 // raw value per handle
	Tap       bool      // event came from a tap on the track
	Positions []float64 // handle offsets in percent of the track
	Pips      []float64 // values of the pip labels currently rendered
}

// FormattedValues overrides the text the widget generated for its tooltips
// and pip labels, index by index.
type FormattedValues struct {
	TooltipsText []string
	PipsText     []string
}

// DecodeError reports a native callback payload that does not have the
// shape noUiSlider documents.
type DecodeError struct {
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode slider event: %s: %s", e.Field, e.Reason)
}

// nativeArgs is the number of arguments the widget passes to a listener
// that we read. The sixth, the widget itself, is ignored.
const nativeArgs = 5

// DecodeEvent maps the positional arguments of a native callback
// (values, handle, unencoded, tap, positions, widget) onto an Event.
func DecodeEvent(args []any) (Event, error) {
	if len(args) < nativeArgs {
		return Event{}, &DecodeError{Field: "args", Reason: fmt.Sprintf("expected %d arguments, got %d", nativeArgs, len(args))}
	}

	values, err := decodeStrings("values", args[0])
	if err != nil {
		return Event{}, err
	}
	handle, err := decodeIndex("handle", args[1])
	if err != nil {
		return Event{}, err
	}
	unencoded, err := decodeNumbers("unencoded", args[2])
	if err != nil {
		return Event{}, err
	}
	tap, ok := args[3].(bool)
	if !ok {
		return Event{}, &DecodeError{Field: "tap", Reason: fmt.Sprintf("expected bool, got %T", args[3])}
	}
	positions, err := decodeNumbers("positions", args[4])
	if err != nil {
		return Event{}, err
	}

	return Event{
		Values:    values,
		Handle:    handle,
		Unencoded: unencoded,
		Tap:       tap,
		Positions: positions,
	}, nil
}

func decodeList(field string, v any) ([]any, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, &DecodeError{Field: field, Reason: fmt.Sprintf("expected array, got %T", v)}
	}
	return list, nil
}

func decodeStrings(field string, v any) ([]string, error) {
	list, err := decodeList(field, v)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, &DecodeError{Field: fmt.Sprintf("%s[%d]", field, i), Reason: fmt.Sprintf("expected string, got %T", item)}
		}
		out[i] = s
	}
	return out, nil
}

func decodeNumbers(field string, v any) ([]float64, error) {
	list, err := decodeList(field, v)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(list))
	for i, item := range list {
		f, ok := item.(float64)
		if !ok {
			return nil, &DecodeError{Field: fmt.Sprintf("%s[%d]", field, i), Reason: fmt.Sprintf("expected number, got %T", item)}
		}
		out[i] = f
	}
	return out, nil
}

func decodeIndex(field string, v any) (int, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, &DecodeError{Field: field, Reason: fmt.Sprintf("expected number, got %T", v)}
	}
	if f < 0 || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, &DecodeError{Field: field, Reason: fmt.Sprintf("expected unsigned integer, got %v", f)}
	}
	if f > math.MaxInt32 {
		return 0, &DecodeError{Field: field, Reason: fmt.Sprintf("index %v out of range", f)}
	}
	return int(f), nil
}
