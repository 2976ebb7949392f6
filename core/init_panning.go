package core

import "github.com/charmbracelet/log"

// InitPanning is the default/fallback layout initializer (component G).
// For BFormat3D it installs an identity first-order B-format bus; for
// every other layout it installs the matching built-in ChannelMap and
// derives FOAOut from it.
func InitPanning(dev *Device, logger *log.Logger) {
	logger = nonNilLogger(logger)

	if dev.FmtChans == BFormat3D {
		dev.Dry.NumChannels = 4
		dev.Dry.CoeffCount = 0
		for i := 0; i < 4; i++ {
			acn := FuMa2ACN[i]
			dev.Dry.Map[i] = BFChannelConfig{Scale: 1 / FuMa2N3DScale[acn], Index: acn}
		}
		dev.FOAOut = dev.Dry
		return
	}

	layout, ok := LayoutFor(dev.FmtChans)
	if !ok {
		logger.Warn("no built-in layout for format, leaving dry bus empty", "format", dev.FmtChans)
		return
	}

	n := SetChannelMap(logger, dev.Channels, dev.Dry.Coeffs[:], layout.Map, true)
	dev.Dry.NumChannels = n
	dev.Dry.CoeffCount = layout.CoeffCount
	deriveFOAOut(dev, layout.AmbiScale)
}

// deriveFOAOut builds the first-order-ambisonic-out bus from the just-
// installed Dry bus: one coefficient-style row per physical Dry channel,
// each row's ACN 0 column copied at unity and its ACN 1..3 columns copied
// attenuated by ambiscale, the per-order attenuation that keeps a
// first-order representation of a higher-order decode perceptually
// matched in loudness. FOAOut thus keeps Dry's physical-channel routing
// rather than collapsing to a generic 4-channel identity.
func deriveFOAOut(dev *Device, ambiscale float64) {
	dev.FOAOut.Reset()
	dev.FOAOut.NumChannels = dev.Dry.NumChannels
	dev.FOAOut.CoeffCount = 4
	for i := 0; i < dev.Dry.NumChannels; i++ {
		dryRow := dev.Dry.Coeffs[i]
		var row ChannelConfig
		row[0] = dryRow[0]
		row[1] = dryRow[1] * ambiscale
		row[2] = dryRow[2] * ambiscale
		row[3] = dryRow[3] * ambiscale
		dev.FOAOut.Coeffs[i] = row
	}
}

// coeffCountForOrder returns the order^2 + 2*order + 1 coefficient count
// for ambisonic order 0..3.
func coeffCountForOrder(order int) int {
	return order*order + 2*order + 1
}

// highestSetOrder returns the highest spherical-harmonic order with any
// bit set in mask (an ACN-indexed bitmask).
func highestSetOrder(mask uint32) int {
	order := 0
	for acn := 0; acn < 16; acn++ {
		if mask&(1<<uint(acn)) != 0 {
			if o := acnOrder(acn); o > order {
				order = o
			}
		}
	}
	return order
}
