package core

import "github.com/charmbracelet/log"

// InitCustomPanning installs a decoder-file-driven ChannelMap without the
// HQ ambisonic decoder: it rebuilds N3D/ACN rows directly from the
// decoder's high-frequency matrix and installs them through SetChannelMap
// with isFuma=false (the rows are already N3D/ACN).
func InitCustomPanning(dev *Device, conf *DecoderConf, logger *log.Logger) {
	logger = nonNilLogger(logger)

	if conf.FreqBands == 2 {
		logger.Warn("decoder uses dual-band matrix; InitCustomPanning discards the low-band", "device", dev.Name)
	}

	scaleTable := conventionScale(conf.CoeffScale)
	order := highestSetOrder(conf.ChanMask)
	ambiscale := ambiScaleForOrder[order]

	chanmap := make(ChannelMap, 0, len(conf.Speakers))
	for i, sp := range conf.Speakers {
		label, ok := ResolveSpeakerLabel(sp.Name, dev.FmtChans)
		if !ok {
			logger.Warn("decoder file speaker label unresolved, rejecting decoder", "label", sp.Name)
			InitPanning(dev, logger)
			return
		}

		var row AmbiCoeffs
		col := 0
		for acn := 0; acn < 16; acn++ {
			if conf.ChanMask&(1<<uint(acn)) == 0 {
				continue
			}
			var hf float64
			if i < len(conf.HFMatrix) && col < len(conf.HFMatrix[i]) {
				hf = conf.HFMatrix[i][col]
			}
			row[acn] = hf / scaleTable[acn] * conf.HFOrderGain[acnOrder(acn)]
			col++
		}
		chanmap = append(chanmap, ChannelMapEntry{Label: label, Coeffs: row})
	}

	n := SetChannelMap(logger, dev.Channels, dev.Dry.Coeffs[:], chanmap, false)
	dev.Dry.NumChannels = n
	dev.Dry.CoeffCount = coeffCountForOrder(order)
	deriveFOAOut(dev, ambiscale)
}

// conventionScale picks the per-ACN scale table that converts a decoder
// file's declared coefficient convention to N3D.
func conventionScale(scale CoeffScale) [16]float64 {
	switch scale {
	case ScaleSN3D:
		return SN3D2N3DScale
	case ScaleFuMa:
		return FuMa2N3DScale
	default:
		return UnitScale
	}
}
