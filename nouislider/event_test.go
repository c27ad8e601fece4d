//go:build !wasm
// +build !wasm

package nouislider_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-nouislider/nouislider"
)

func nativeArgs() []any {
	return []any{
		[]any{"20.00", "80.00"},
		1.0,
		[]any{20.0, 80.0},
		false,
		[]any{20.0, 80.0},
		struct{}{},
	}
}

func TestDecodeEvent(t *testing.T) {
	event, err := nouislider.DecodeEvent(nativeArgs())
	require.NoError(t, err)

	assert.Equal(t, nouislider.Event{
		Values:    []string{"20.00", "80.00"},
		Handle:    1,
		Unencoded: []float64{20, 80},
		Tap:       false,
		Positions: []float64{20, 80},
	}, event)
}

func TestDecodeEvent_WidgetArgumentOptional(t *testing.T) {
	_, err := nouislider.DecodeEvent(nativeArgs()[:5])
	assert.NoError(t, err)
}

func TestDecodeEvent_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		field string
		patch func(args []any) []any
	}{
		{"too few arguments", "args", func(a []any) []any { return a[:3] }},
		{"values not an array", "values", func(a []any) []any { a[0] = "20.00"; return a }},
		{"value not a string", "values[1]", func(a []any) []any { a[0] = []any{"20.00", 80.0}; return a }},
		{"handle missing", "handle", func(a []any) []any { a[1] = nil; return a }},
		{"handle negative", "handle", func(a []any) []any { a[1] = -1.0; return a }},
		{"handle fractional", "handle", func(a []any) []any { a[1] = 0.5; return a }},
		{"handle overflow", "handle", func(a []any) []any { a[1] = 1e20; return a }},
		{"unencoded as strings", "unencoded[0]", func(a []any) []any { a[2] = []any{"20", "80"}; return a }},
		{"tap not a bool", "tap", func(a []any) []any { a[3] = 0.0; return a }},
		{"positions missing", "positions", func(a []any) []any { a[4] = nil; return a }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := nouislider.DecodeEvent(tt.patch(nativeArgs()))
			require.Error(t, err)

			var decodeErr *nouislider.DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, tt.field, decodeErr.Field)
		})
	}
}
