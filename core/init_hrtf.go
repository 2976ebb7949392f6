package core

import (
	"github.com/charmbracelet/log"
	"github.com/golang/geo/s1"
)

// cubeAngle is the azimuth/elevation of one HrtfCubeLayout feed channel,
// in the same order as HrtfCubeLayout.Map.
type cubeAngle struct {
	az, el s1.Angle
}

var hrtfCubeAngles = [8]cubeAngle{
	{deg(-45), deg(45)},  // UpperFrontLeft
	{deg(45), deg(45)},   // UpperFrontRight
	{deg(-135), deg(45)}, // UpperBackLeft
	{deg(135), deg(45)},  // UpperBackRight
	{deg(-45), deg(-45)}, // LowerFrontLeft
	{deg(45), deg(-45)},  // LowerFrontRight
	{deg(-135), deg(-45)}, // LowerBackLeft
	{deg(135), deg(-45)}, // LowerBackRight
}

func deg(d float64) s1.Angle { return s1.Angle(d * 3.14159265358979323846 / 180) }

// InitHrtfPanning installs the 8-point HRTF cube as a first-order dry bus
// (CoeffCount=4) and caches each cube channel's HRIR lookup into
// dev.HrtfParams. FOAOut aliases Dry: the cube decode is already
// first-order.
func InitHrtfPanning(dev *Device, logger *log.Logger) {
	logger = nonNilLogger(logger)

	n := SetChannelMap(logger, cubeDeviceChannels(), dev.Dry.Coeffs[:], HrtfCubeLayout.Map, true)
	dev.Dry.NumChannels = n
	dev.Dry.CoeffCount = HrtfCubeLayout.CoeffCount
	dev.FOAOut = dev.Dry

	if dev.Hrtf == nil {
		return
	}
	for i, ang := range hrtfCubeAngles {
		coeffs, delay := dev.Hrtf.Lookup(ang.el, ang.az, 1, 0)
		dev.HrtfParams[i] = HrtfChannelParams{Coeffs: coeffs, Delay: delay}
	}
}

// cubeDeviceChannels is the virtual "device channel list" the HRTF cube
// decodes to: the 8 cube labels themselves, in layout order.
func cubeDeviceChannels() DeviceChannels {
	chans := make(DeviceChannels, len(HrtfCubeLayout.Map))
	for i, e := range HrtfCubeLayout.Map {
		chans[i] = e.Label
	}
	return chans
}
