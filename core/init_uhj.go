package core

import "github.com/charmbracelet/log"

// InitUhjPanning installs a 3-row index-style Dry bus (W, Y, X by FuMa
// order, ACN 0, 1, 3) scaled to undo FuMa normalization. FOAOut aliases
// Dry, even though it ends up 3 channels rather than the usual 4: a UHJ
// encode has no Z component to send.
func InitUhjPanning(dev *Device, _ *log.Logger) {
	dev.Dry.Reset()
	dev.Dry.NumChannels = 3
	dev.Dry.CoeffCount = 0
	acns := [3]int{0, 1, 3}
	for i, acn := range acns {
		dev.Dry.Map[i] = BFChannelConfig{Scale: 1 / FuMa2N3DScale[acn], Index: acn}
	}
	dev.FOAOut = dev.Dry
}
