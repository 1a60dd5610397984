package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_MinBars(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		want int
	}{
		{"defaults", Default(), 30},                                          // recent+base+5
		{"spike dominates", Params{RecentDays: 3, BaseDays: 10, SpikeDays: 60}, 65}, // spike+5
		{"base slack dominates", Params{RecentDays: 3, BaseDays: 30, SpikeDays: 10}, 40}, // base+10
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.MinBars())
		})
	}
}

func TestParams_Validate(t *testing.T) {
	require.NoError(t, Default().Validate())

	p := Default()
	p.LookbackDays = 30
	assert.ErrorContains(t, p.Validate(), "lookback")

	p = Default()
	p.MinSpikeRatio = 20
	assert.ErrorContains(t, p.Validate(), "min-spike-ratio")

	p = Default()
	p.MinBaseVolume = -1
	assert.ErrorContains(t, p.Validate(), "min-base-volume")

	p = Default()
	p.TopN = 5
	assert.ErrorContains(t, p.Validate(), "top")
}
