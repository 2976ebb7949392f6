package core

import "github.com/charmbracelet/log"

// horizontalACNIndices is the fixed sparse mapping InitHQPanning uses when
// a decoder declares no elevated harmonic: ACN {0,1,3,4,8,9,15}.
var horizontalACNIndices = [7]int{0, 1, 3, 4, 8, 9, 15}

// InitHQPanning installs a decoder-file-driven high-quality ambisonic
// decode: Dry becomes an index-style bus carrying raw ambisonic channels
// through to an opaque AmbiDecoderDSP (allocated by factory), which
// performs the real per-speaker decode at mix time.
func InitHQPanning(dev *Device, conf *DecoderConf, speakerMap []int, distanceComp bool, factory AmbiDecoderFactory, logger *log.Logger) {
	logger = nonNilLogger(logger)

	if conf.ChanMask&^uint32(HorizontalACNMask) != 0 {
		order := highestSetOrder(conf.ChanMask)
		n := coeffCountForOrder(order)
		dev.Dry.NumChannels = n
		dev.Dry.CoeffCount = 0
		for i := 0; i < n; i++ {
			dev.Dry.Map[i] = BFChannelConfig{Scale: 1, Index: i}
		}
	} else {
		dev.Dry.NumChannels = len(horizontalACNIndices)
		dev.Dry.CoeffCount = 0
		for i, acn := range horizontalACNIndices {
			dev.Dry.Map[i] = BFChannelConfig{Scale: 1, Index: acn}
		}
	}

	if factory == nil {
		logger.Warn("no ambisonic decoder factory available, falling back", "device", dev.Name)
		InitPanning(dev, logger)
		return
	}

	decoder, err := factory.New(conf, speakerMap, dev.Frequency, distanceComp)
	if err != nil {
		logger.Warn("ambisonic decoder allocation failed, falling back", "device", dev.Name, "error", err)
		InitPanning(dev, logger)
		return
	}
	dev.AmbiDecoder = decoder

	if decoder.Order() < 2 {
		dev.FOAOut = dev.Dry
		return
	}
	dev.FOAOut.Reset()
	dev.FOAOut.NumChannels = 4
	dev.FOAOut.CoeffCount = 0
	for i := 0; i < 4; i++ {
		dev.FOAOut.Map[i] = BFChannelConfig{Scale: 1, Index: i}
	}
}
