package core

// LayoutTable is a built-in, FuMa-normalized ChannelMap plus the metadata
// InitPanning needs to install and derive FOAOut from it.
type LayoutTable struct {
	Map        ChannelMap
	CoeffCount int     // order^2 + 2*order + 1
	AmbiScale  float64 // ambiscale for the layout's ambisonic order
}

// foa builds a speaker's first-order feed in FuMa channel order
// (W,X,Y,Z), the order the Ambisonic Decoder Toolbox files these tables
// are transcribed from use, and the order SetChannelMap expects when
// isFuma is true.
func foa(w, x, y, z float64) AmbiCoeffs {
	var c AmbiCoeffs
	c[0] = w
	c[1] = x
	c[2] = y
	c[3] = z
	return c
}

// MonoLayout feeds every sample to a single center channel at unity gain;
// no spatialization is possible with one speaker.
var MonoLayout = LayoutTable{
	Map: ChannelMap{
		{FrontCenter, foa(1.414213562, 0, 0, 0)},
	},
	CoeffCount: 1,
	AmbiScale:  ambiScaleForOrder[0],
}

// StereoLayout pans a phantom-center image between two speakers at +/-30
// degrees, first-order FuMa feeds from the Ambisonic Decoder Toolbox's
// "stereo" preset.
var StereoLayout = LayoutTable{
	Map: ChannelMap{
		{FrontLeft, foa(0.5, 0.5, 0.5, 0)},
		{FrontRight, foa(0.5, 0.5, -0.5, 0)},
	},
	CoeffCount: 4,
	AmbiScale:  ambiScaleForOrder[1],
}

// QuadLayout is the four-corner 0.353553/0.25/0.25 first-order decode.
var QuadLayout = LayoutTable{
	Map: ChannelMap{
		{FrontLeft, foa(0.353553, 0.25, 0.25, 0)},
		{FrontRight, foa(0.353553, 0.25, -0.25, 0)},
		{BackLeft, foa(0.353553, -0.25, 0.25, 0)},
		{BackRight, foa(0.353553, -0.25, -0.25, 0)},
	},
	CoeffCount: 4,
	AmbiScale:  ambiScaleForOrder[1],
}

// X51Layout is the 5.1 side-surround first-order decode (front L/R/C, LFE
// silent, side L/R).
var X51Layout = LayoutTable{
	Map: ChannelMap{
		{FrontLeft, foa(0.208980, 0.294949, 0.170979, 0)},
		{FrontRight, foa(0.208980, 0.294949, -0.170979, 0)},
		{FrontCenter, foa(0.170338, 0.170338, 0, 0)},
		{LFE, AmbiCoeffs{}},
		{SideLeft, foa(0.270656, -0.106604, 0.257788, 0)},
		{SideRight, foa(0.270656, -0.106604, -0.257788, 0)},
	},
	CoeffCount: 4,
	AmbiScale:  ambiScaleForOrder[1],
}

// X51RearLayout is the 5.1 rear-surround variant of X51Layout; same feed
// coefficients, the two surround speakers are simply labeled Back instead
// of Side.
var X51RearLayout = LayoutTable{
	Map: ChannelMap{
		{FrontLeft, foa(0.208980, 0.294949, 0.170979, 0)},
		{FrontRight, foa(0.208980, 0.294949, -0.170979, 0)},
		{FrontCenter, foa(0.170338, 0.170338, 0, 0)},
		{LFE, AmbiCoeffs{}},
		{BackLeft, foa(0.270656, -0.106604, 0.257788, 0)},
		{BackRight, foa(0.270656, -0.106604, -0.257788, 0)},
	},
	CoeffCount: 4,
	AmbiScale:  ambiScaleForOrder[1],
}

// X61Layout is the 6.1 first-order decode: front L/R/C, back center, and
// side L/R.
var X61Layout = LayoutTable{
	Map: ChannelMap{
		{FrontLeft, foa(0.167065, 0.236108, 0.136245, 0)},
		{FrontRight, foa(0.167065, 0.236108, -0.136245, 0)},
		{FrontCenter, foa(0.136411, 0.136411, 0, 0)},
		{LFE, AmbiCoeffs{}},
		{BackCenter, foa(0.141818, -0.201487, 0, 0)},
		{SideLeft, foa(0.216565, -0.085130, 0.206107, 0)},
		{SideRight, foa(0.216565, -0.085130, -0.206107, 0)},
	},
	CoeffCount: 4,
	AmbiScale:  ambiScaleForOrder[1],
}

// X71Layout is the 7.1 first-order decode: front L/R/C, back L/R, and
// side L/R.
var X71Layout = LayoutTable{
	Map: ChannelMap{
		{FrontLeft, foa(0.152122, 0.215021, 0.124104, 0)},
		{FrontRight, foa(0.152122, 0.215021, -0.124104, 0)},
		{FrontCenter, foa(0.124206, 0.124206, 0, 0)},
		{LFE, AmbiCoeffs{}},
		{BackLeft, foa(0.138277, -0.108975, 0.131364, 0)},
		{BackRight, foa(0.138277, -0.108975, -0.131364, 0)},
		{SideLeft, foa(0.197022, -0.077442, 0.187571, 0)},
		{SideRight, foa(0.197022, -0.077442, -0.187571, 0)},
	},
	CoeffCount: 4,
	AmbiScale:  ambiScaleForOrder[1],
}

// HrtfCubeLayout is the 8-point cube of +/-45 degree azimuth/elevation
// feeds InitHrtfPanning virtualizes over, first-order FuMa coefficients.
var HrtfCubeLayout = LayoutTable{
	Map: ChannelMap{
		{UpperFrontLeft, foa(0.353553, 0.204124, 0.204124, 0.204124)},
		{UpperFrontRight, foa(0.353553, 0.204124, -0.204124, 0.204124)},
		{UpperBackLeft, foa(0.353553, -0.204124, 0.204124, 0.204124)},
		{UpperBackRight, foa(0.353553, -0.204124, -0.204124, 0.204124)},
		{LowerFrontLeft, foa(0.353553, 0.204124, 0.204124, -0.204124)},
		{LowerFrontRight, foa(0.353553, 0.204124, -0.204124, -0.204124)},
		{LowerBackLeft, foa(0.353553, -0.204124, 0.204124, -0.204124)},
		{LowerBackRight, foa(0.353553, -0.204124, -0.204124, -0.204124)},
	},
	CoeffCount: 4,
	AmbiScale:  ambiScaleForOrder[1],
}

// LayoutFor returns the built-in layout table for a non-BFormat3D
// FmtChans, and false for BFormat3D (which InitPanning handles through
// its own branch rather than a shared table) or an unrecognized value.
func LayoutFor(fmtChans FmtChans) (LayoutTable, bool) {
	switch fmtChans {
	case Mono:
		return MonoLayout, true
	case Stereo:
		return StereoLayout, true
	case Quad:
		return QuadLayout, true
	case X51:
		return X51Layout, true
	case X51Rear:
		return X51RearLayout, true
	case X61:
		return X61Layout, true
	case X71:
		return X71Layout, true
	default:
		return LayoutTable{}, false
	}
}
