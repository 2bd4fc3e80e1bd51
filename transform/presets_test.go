package transform_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xml-binder/transform"
)

type toggle bool

func TestPresetsSerialize(t *testing.T) {
	t.Parallel()

	stamp := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	count := int32(7)

	tests := []struct {
		name string
		tr   transform.Transform
		in   any
		want any
	}{
		{name: "bool true", tr: transform.Bool, in: true, want: "true"},
		{name: "bool false", tr: transform.Bool, in: false, want: "false"},
		{name: "named bool", tr: transform.Bool, in: toggle(true), want: "true"},
		{name: "bool nil", tr: transform.Bool, in: nil, want: nil},
		{name: "int32", tr: transform.Int32, in: int32(42), want: "42"},
		{name: "int32 from pointer", tr: transform.Int32, in: &count, want: "7"},
		{name: "int32 wraps", tr: transform.Int32, in: int64(math.MaxInt32) + 1, want: "-2147483648"},
		{name: "int32 wraps at 2^32", tr: transform.Int32, in: int64(1) << 32, want: "0"},
		{name: "int64", tr: transform.Int64, in: int64(math.MaxInt64), want: "9223372036854775807"},
		{name: "float32", tr: transform.Float32, in: float32(1.1), want: "1.1"},
		{name: "float64", tr: transform.Float64, in: 2.5, want: "2.5"},
		{name: "float64 from int", tr: transform.Float64, in: 3, want: "3"},
		{name: "datetime", tr: transform.DateTime, in: stamp, want: "2024-03-01T12:30:00Z"},
		{name: "ascii", tr: transform.ASCII, in: []byte("1234"), want: "1234"},
		{name: "ascii empty", tr: transform.ASCII, in: []byte{}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.tr.Serialize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPresetsDeserialize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tr   transform.Transform
		in   any
		want any
	}{
		{name: "bool true", tr: transform.Bool, in: "true", want: true},
		{name: "bool false", tr: transform.Bool, in: "false", want: false},
		{name: "bool numeric", tr: transform.Bool, in: "1", want: true},
		{name: "int32", tr: transform.Int32, in: "42", want: int32(42)},
		{name: "int32 signed", tr: transform.Int32, in: "+5", want: int32(5)},
		{name: "int32 whitespace", tr: transform.Int32, in: " 5\n", want: int32(5)},
		{name: "int32 wraps", tr: transform.Int32, in: "2147483648", want: int32(math.MinInt32)},
		{name: "int64 wraps", tr: transform.Int64, in: "18446744073709551617", want: int64(1)},
		{name: "int64 negative", tr: transform.Int64, in: "-12", want: int64(-12)},
		{name: "empty int", tr: transform.Int32, in: "", want: nil},
		{name: "float32", tr: transform.Float32, in: "1.5", want: float32(1.5)},
		{name: "float64", tr: transform.Float64, in: "-2.25e3", want: -2250.0},
		{name: "datetime", tr: transform.DateTime, in: "2024-03-01T12:30:00Z", want: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
		{name: "naive datetime", tr: transform.DateTime, in: "2024-03-01T12:30:00", want: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
		{name: "ascii", tr: transform.ASCII, in: "1234", want: []byte("1234")},
		{name: "ascii empty", tr: transform.ASCII, in: "", want: nil},
		{name: "nil", tr: transform.Float64, in: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.tr.Deserialize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPresetsReject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		tr          transform.Transform
		serialize   any
		deserialize any
	}{
		{name: "bool", tr: transform.Bool, serialize: "true", deserialize: "yes"},
		{name: "int32", tr: transform.Int32, serialize: 1.5, deserialize: "1.5"},
		{name: "float64", tr: transform.Float64, serialize: "2", deserialize: "two"},
		{name: "datetime", tr: transform.DateTime, serialize: "2024", deserialize: "yesterday"},
		{name: "ascii", tr: transform.ASCII, serialize: []byte("caf\xc3\xa9"), deserialize: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.tr.Serialize(tt.serialize)
			require.ErrorIs(t, err, transform.ErrValue)

			_, err = tt.tr.Deserialize(tt.deserialize)
			require.ErrorIs(t, err, transform.ErrValue)
		})
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []int32{0, 1, -1, math.MaxInt32, math.MinInt32} {
		s, err := transform.Int32.Serialize(v)
		require.NoError(t, err)

		back, err := transform.Int32.Deserialize(s)
		require.NoError(t, err)
		assert.Equal(t, v, back)
	}
}
