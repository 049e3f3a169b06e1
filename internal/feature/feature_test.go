package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		has     []Capability
		lacks   []Capability
		wantErr bool
	}{
		{in: "2.0.0", want: "2.0.0", lacks: []Capability{ButtonClicks, WheelDirection, DropExtended}},
		{in: "2.0.4", want: "2.0.4", has: []Capability{WheelDirection, AudioHotplug}, lacks: []Capability{DropExtended}},
		{in: "v2.0.18", want: "2.0.18", has: []Capability{PreciseWheel, DropExtended, Display}, lacks: []Capability{TextEditingExt}},
		{in: "2.26", want: "2.26.0", has: []Capability{WheelMousePosition, JoyBattery}, lacks: []Capability{DisplayMoved}},
		{in: "2.28.0", want: "2.28.0", has: All()},
		{in: "3.0.0", wantErr: true},
		{in: "two", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			lvl, err := ParseLevel(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, lvl.String())
			for _, c := range tc.has {
				assert.True(t, lvl.Set.Has(c), "expected %s", c)
			}
			for _, c := range tc.lacks {
				assert.False(t, lvl.Set.Has(c), "unexpected %s", c)
			}
		})
	}
}

func TestBaselineAndLatest(t *testing.T) {
	assert.Empty(t, Baseline().Set.Capabilities())
	assert.Len(t, Latest().Set.Capabilities(), int(numCapabilities))
}

func TestLevelWithout(t *testing.T) {
	lvl := Latest().Without(DropExtended, PreciseWheel)
	assert.False(t, lvl.Set.Has(DropExtended))
	assert.False(t, lvl.Set.Has(PreciseWheel))
	assert.True(t, lvl.Set.Has(WheelMousePosition))
	assert.True(t, Latest().Set.Has(DropExtended), "Without must not mutate the original")
}

func TestParseCapability(t *testing.T) {
	for _, c := range All() {
		got, err := ParseCapability(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParseCapability("teleport")
	assert.Error(t, err)
}

func TestSetString(t *testing.T) {
	s := Set(0).With(ButtonClicks, Sensor)
	assert.Equal(t, "[button_clicks sensor]", s.String())
	assert.False(t, s.Has(numCapabilities))
}
