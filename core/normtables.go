package core

// FuMa2ACN maps a FuMa channel index to its ACN index. FuMa orders
// components as W,X,Y,Z,R,S,T,U,V,K,L,M,N,O,P,Q; ACN orders them
// W,Y,Z,X,V,T,R,S,U,Q,O,M,K,L,N,P. Both are part of the public acoustic
// contract and must not drift.
var FuMa2ACN = [16]int{
	0, 3, 1, 2, 6, 7, 5, 8, 4, 12, 13, 11, 14, 10, 15, 9,
}

// FuMa2N3DScale converts a FuMa-normalized coefficient at ACN index k to
// N3D. Order 0 (W) and order 1 (X,Y,Z) share FuMa2ACN-ordered scales with
// SN3D2N3DScale's sqrt(2*order+1) except for W's extra 1/sqrt(2)
// attenuation, undone here by sqrt(2); at order >= 2 only the zonal
// (purely z-axis) component of each order — ACN 6, ACN 12 — keeps that
// sqrt(2*order+1) scale, while the sectoral/tesseral components carry
// FuMa's own distinct normalization. Values to 9 significant digits.
var FuMa2N3DScale = [16]float64{
	1.414213562,
	1.732050808, 1.732050808, 1.732050808,
	1.936491673, 1.936491673, 2.236067977, 1.936491673, 1.936491673,
	2.091650066, 1.972026594, 2.231093404, 2.645751311, 2.231093404, 1.972026594, 2.091650066,
}

// SN3D2N3DScale converts an SN3D-normalized coefficient at ACN index k to
// N3D: sqrt(2*order(k)+1).
var SN3D2N3DScale = [16]float64{
	1.000000000,
	1.732050808, 1.732050808, 1.732050808,
	2.236067977, 2.236067977, 2.236067977, 2.236067977, 2.236067977,
	2.645751311, 2.645751311, 2.645751311, 2.645751311, 2.645751311, 2.645751311, 2.645751311,
}

// UnitScale is the identity conversion, used when a decoder file already
// declares its coefficients in N3D.
var UnitScale = [16]float64{
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
}

// HorizontalACNMask selects the purely-horizontal ACN indices
// {0,1,3,4,8,9,15}: the zeroth-order channel, and the components of each
// order that carry no elevation information. Named per spec.md §9 rather
// than left as the magic number 0x831b.
const HorizontalACNMask uint16 = 0x831b

// ambiScaleForOrder is the per-order attenuation (spec.md §4.D) applied
// when deriving a first-order-out bus from a higher-order decoder.
var ambiScaleForOrder = [4]float64{
	0,
	1,
	1 / 1.22474,
	1 / 1.30657,
}
