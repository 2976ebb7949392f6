// Package core is the output-renderer configuration core of a 3D audio
// mixing library: given a device description and optional user
// configuration it decides how positional source material is spatialized
// to the device's physical channels, and builds the numeric decoder tables
// the real-time mixer later uses each audio block.
//
// The package is pure configuration and coefficient math. It performs no
// sample processing, no file I/O beyond handing a path to an injected
// DecoderConfLoader, and no thread scheduling: every exported function here
// either runs synchronously at device (re)open time, or is a pure function
// safe to call from mixer worker threads once a Device has been
// initialized.
package core

import "github.com/golang/geo/s2"

// MaxOutputChannels bounds every per-channel gain table this package
// produces; indices at or beyond a bus's NumChannels are always zeroed.
const MaxOutputChannels = 16

// MaxAmbiOrder is the highest spherical-harmonic order this package
// understands (third order, 16 ACN channels).
const MaxAmbiOrder = 3

// AmbiCoeffs holds 16 real, N3D-normalized, ACN-ordered spherical-harmonic
// coefficients, covering orders 0..3.
type AmbiCoeffs [16]float64

// Direction is a unit vector in the ambisonic frame (+X forward, +Y left,
// +Z up). Construct one from engine-space coordinates with
// DirectionFromEngine, or compute coefficients directly from az/el with
// CalcAngleCoeffs.
type Direction = s2.Point

// ChannelLabel identifies a physical or virtual speaker position.
type ChannelLabel int

const (
	InvalidChannel ChannelLabel = iota
	FrontLeft
	FrontRight
	FrontCenter
	LFE
	BackLeft
	BackRight
	BackCenter
	SideLeft
	SideRight
	UpperFrontLeft
	UpperFrontRight
	UpperBackLeft
	UpperBackRight
	LowerFrontLeft
	LowerFrontRight
	LowerBackLeft
	LowerBackRight
)

// Aux0..Aux15 are auxiliary channel slots. ResolveSpeakerLabel maps no
// decoder-file speaker name to them.
const (
	Aux0 ChannelLabel = iota + 100
	Aux1
	Aux2
	Aux3
	Aux4
	Aux5
	Aux6
	Aux7
	Aux8
	Aux9
	Aux10
	Aux11
	Aux12
	Aux13
	Aux14
	Aux15
)

func (l ChannelLabel) String() string {
	switch l {
	case InvalidChannel:
		return "InvalidChannel"
	case FrontLeft:
		return "FrontLeft"
	case FrontRight:
		return "FrontRight"
	case FrontCenter:
		return "FrontCenter"
	case LFE:
		return "LFE"
	case BackLeft:
		return "BackLeft"
	case BackRight:
		return "BackRight"
	case BackCenter:
		return "BackCenter"
	case SideLeft:
		return "SideLeft"
	case SideRight:
		return "SideRight"
	case UpperFrontLeft:
		return "UpperFrontLeft"
	case UpperFrontRight:
		return "UpperFrontRight"
	case UpperBackLeft:
		return "UpperBackLeft"
	case UpperBackRight:
		return "UpperBackRight"
	case LowerFrontLeft:
		return "LowerFrontLeft"
	case LowerFrontRight:
		return "LowerFrontRight"
	case LowerBackLeft:
		return "LowerBackLeft"
	case LowerBackRight:
		return "LowerBackRight"
	default:
		if l >= Aux0 && l <= Aux15 {
			return "Aux" + itoa(int(l-Aux0))
		}
		return "Unknown"
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// ChannelConfig is one output channel's N3D/ACN decoder row: for input
// ambisonic coefficients c, the channel's feed is dot(row, c).
type ChannelConfig [16]float64

// BFChannelConfig is the compact form used when a device's internal bus is
// itself B-format: the bus channel takes the source's ambisonic channel at
// Index, multiplied by Scale.
type BFChannelConfig struct {
	Scale float64
	Index int
}

// AmbiBus is one of a device's two ambisonic-fed buses. It is a tagged
// variant rather than two interfaces: CoeffCount == 0 means index-style
// (Map is authoritative up to NumChannels); CoeffCount > 0 means
// coefficient-style (Coeffs is authoritative up to NumChannels, each row
// read over its first CoeffCount entries).
type AmbiBus struct {
	NumChannels int
	CoeffCount  int
	Coeffs      [MaxOutputChannels]ChannelConfig
	Map         [MaxOutputChannels]BFChannelConfig
}

// IsIndexStyle reports whether this bus is the sparse (scale, index) form.
func (b *AmbiBus) IsIndexStyle() bool { return b.CoeffCount == 0 }

// Reset clears the bus back to its zero value, as an initializer does at
// the start of every device (re)open.
func (b *AmbiBus) Reset() { *b = AmbiBus{} }

// ChannelMapEntry pairs a speaker label with its ambisonic feed
// coefficients: FuMa-ordered and FuMa-normalized in the built-in layouts,
// N3D/ACN in the rows InitCustomPanning builds from a decoder file
// (SetChannelMap's isFuma flag says which).
type ChannelMapEntry struct {
	Label  ChannelLabel
	Coeffs AmbiCoeffs
}

// ChannelMap is an ordered list of speaker/coefficient pairs, the shape
// both built-in layouts (component D) and decoder-file-driven paths
// install through SetChannelMap (component E).
type ChannelMap []ChannelMapEntry

// FmtChans enumerates the output channel layouts this package knows how to
// spatialize to.
type FmtChans int

const (
	Mono FmtChans = iota
	Stereo
	Quad
	X51
	X51Rear
	X61
	X71
	BFormat3D
)

// DeviceKind distinguishes a normal playback device from a loopback
// capture device. Loopback devices never consult free-text device config.
type DeviceKind int

const (
	Normal DeviceKind = iota
	Loopback
)

// RenderMode is the strategy the mixer uses to consume Device.Dry/FOAOut.
type RenderMode int

const (
	NormalRender RenderMode = iota
	StereoPair
	HrtfRender
)

// HrtfStatus mirrors the ALC_HRTF_*_SOFT status codes surfaced to the
// application layer.
type HrtfStatus int

const (
	Disabled HrtfStatus = iota
	Enabled
	Required
	Denied
	UnsupportedFormat
	HeadphonesDetected
)

// HrtfRequest is a tri-state programmatic or user HRTF preference.
type HrtfRequest int

const (
	Default HrtfRequest = iota
	Enable
	Disable
)

// HrtfChannelParams caches the HRIR lookup result for one of InitHrtfPanning's
// eight cube feed channels.
type HrtfChannelParams struct {
	Coeffs []float64
	Delay  int
}
