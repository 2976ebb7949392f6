package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetChannelMap_LFERowIsAlwaysZero(t *testing.T) {
	devchans := DeviceChannels{FrontLeft, LFE, FrontRight}
	chanmap := ChannelMap{
		{FrontLeft, AmbiCoeffs{1, 2, 3, 4}},
		{FrontRight, AmbiCoeffs{5, 6, 7, 8}},
	}
	var rows [MaxOutputChannels]ChannelConfig
	n := SetChannelMap(nil, devchans, rows[:], chanmap, true)

	assert.Equal(t, 3, n)
	for _, v := range rows[1] {
		assert.Equal(t, 0.0, v)
	}
}

func TestSetChannelMap_UnmatchedChannelLeftZero(t *testing.T) {
	devchans := DeviceChannels{FrontLeft, FrontCenter}
	chanmap := ChannelMap{
		{FrontLeft, AmbiCoeffs{1}},
	}
	var rows [MaxOutputChannels]ChannelConfig
	n := SetChannelMap(nil, devchans, rows[:], chanmap, true)

	assert.Equal(t, 2, n)
	for _, v := range rows[1] {
		assert.Equal(t, 0.0, v)
	}
}

func TestSetChannelMap_StopsAtInvalidChannel(t *testing.T) {
	devchans := DeviceChannels{FrontLeft, InvalidChannel, FrontRight}
	chanmap := ChannelMap{
		{FrontLeft, AmbiCoeffs{1}},
		{FrontRight, AmbiCoeffs{1}},
	}
	var rows [MaxOutputChannels]ChannelConfig
	n := SetChannelMap(nil, devchans, rows[:], chanmap, true)

	assert.Equal(t, 1, n)
}

// TestSetChannelMap_FuMaInstallMatchesFormula is spec.md §8 invariant 3:
// the installed row at ACN index k equals
// src_fuma[FuMa2ACN^-1[k]] / FuMa2N3DScale[k].
func TestSetChannelMap_FuMaInstallMatchesFormula(t *testing.T) {
	srcFuma := AmbiCoeffs{}
	for i := range srcFuma {
		srcFuma[i] = float64(i + 1)
	}
	devchans := DeviceChannels{FrontLeft}
	chanmap := ChannelMap{{FrontLeft, srcFuma}}
	var rows [MaxOutputChannels]ChannelConfig
	SetChannelMap(nil, devchans, rows[:], chanmap, true)

	for acn := 0; acn < 16; acn++ {
		fumaIdx := inverseFuMa2ACN(acn)
		want := srcFuma[fumaIdx] / FuMa2N3DScale[acn]
		assert.InDelta(t, want, rows[0][acn], 1e-12)
	}
}

func TestSetChannelMap_N3DInstallIsStraightCopy(t *testing.T) {
	src := AmbiCoeffs{}
	for i := range src {
		src[i] = float64(i) * 0.5
	}
	devchans := DeviceChannels{FrontCenter}
	chanmap := ChannelMap{{FrontCenter, src}}
	var rows [MaxOutputChannels]ChannelConfig
	SetChannelMap(nil, devchans, rows[:], chanmap, false)

	assert.Equal(t, ChannelConfig(src), rows[0])
}
