package core

import "github.com/golang/geo/s1"

// ConfigSource is the read-only key/value configuration contract (spec.md
// §6). Section "" denotes the legacy global section. Implementations live
// outside this package (see internal/appconfig for a YAML-backed one);
// core only ever reads through this interface.
type ConfigSource interface {
	GetStr(device, section, key string) (value string, ok bool)
	GetBool(device, section, key string) (value bool, ok bool)
	GetInt(device, section, key string) (value int, ok bool)
}

// CoeffScale names the normalization convention a decoder file declares
// its HFMatrix entries in.
type CoeffScale int

const (
	ScaleN3D CoeffScale = iota
	ScaleSN3D
	ScaleFuMa
)

// SpeakerConf is one speaker declared by a decoder configuration file.
type SpeakerConf struct {
	Name string
}

// DecoderConf is the parsed shape of an ambdec-style decoder configuration
// file. Parsing it is out of scope for this package (owned by an external
// "ambdec" component); core only consumes the parsed value.
type DecoderConf struct {
	NumSpeakers  int
	Speakers     []SpeakerConf
	CoeffScale   CoeffScale
	ChanMask     uint32 // validated against the 0xFFFF ceiling by core, not the loader
	FreqBands    int // 1 or 2
	HFOrderGain  [4]float64
	HFMatrix     [][]float64 // [speaker][coeff]
	XOverFreq    float64
	DistanceComp bool
}

// DecoderConfLoader loads a decoder configuration file from a path found
// in device config. Out of scope to implement; core depends on the
// interface only.
type DecoderConfLoader interface {
	Load(path string) (*DecoderConf, error)
}

// HRTFHandle is one enumerated HRTF dataset. Dataset parsing and
// sample-rate-matched lookup are out of scope; core depends on this
// contract only.
type HRTFHandle interface {
	SampleRate() int
	Lookup(el, az s1.Angle, gain, delayBias float64) (coeffs []float64, delay int)
}

// HRTFEntry names one dataset a HRTFRegistry enumerates for a device.
type HRTFEntry struct {
	Name   string
	Handle HRTFHandle
}

// HRTFRegistry enumerates the HRTF datasets available for a device. Lazily
// consulted at most once per Device by SelectRenderer.
type HRTFRegistry interface {
	Enumerate(deviceName string) []HRTFEntry
}

// Bs2bState is the opaque crossfeed ("BS2B") DSP state. Its internals are
// out of scope; core only creates, holds, and releases one.
type Bs2bState interface{}

// CrossfeedFactory allocates a Bs2bState configured for a level (1..6)
// and a device sample rate.
type CrossfeedFactory interface {
	New(level, sampleRate int) Bs2bState
}

// UhjEncoderState is the opaque UHJ stereo encoder DSP state.
type UhjEncoderState interface{}

// UhjFactory allocates a UhjEncoderState.
type UhjFactory interface {
	New() UhjEncoderState
}

// AmbiDecoderDSP is the opaque HQ ambisonic decoder DSP state. Order
// reports the decoder's effective ambisonic order, the one piece of
// information InitHQPanning needs back out of an otherwise-opaque object
// to decide how FOAOut aliases Dry.
type AmbiDecoderDSP interface {
	Order() int
}

// AmbiDecoderFactory allocates and resets an AmbiDecoderDSP from a parsed
// decoder configuration, a resolved speaker map, the device sample rate,
// and whether distance compensation should be applied.
type AmbiDecoderFactory interface {
	New(conf *DecoderConf, speakerMap []int, sampleRate int, distanceComp bool) (AmbiDecoderDSP, error)
}
