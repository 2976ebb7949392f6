package core

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// sqrt table shared by the closed-form formulas below, named for the
// radicand so the formulas in CalcDirectionCoeffs read the same as the
// reference derivation.
var (
	sqrt3   = math.Sqrt(3)
	sqrt5   = math.Sqrt(5)
	sqrt7   = math.Sqrt(7)
	sqrt15  = math.Sqrt(15)
	sqrt42  = math.Sqrt(42)
	sqrt70  = math.Sqrt(70)
	sqrt105 = math.Sqrt(105)
)

// DirectionFromEngine converts an engine-space direction (+X right, +Y up,
// -Z forward) to the ambisonic-frame Direction (+X forward, +Y left, +Z
// up) CalcDirectionCoeffs expects, per (ax,ay,az) = (-z,-x,y). This is the
// one place the engine/ambisonic axis swap happens; callers should never
// duplicate it.
func DirectionFromEngine(x, y, z float64) Direction {
	return s2.PointFromCoords(-z, -x, y)
}

// CalcDirectionCoeffs computes the 16 N3D/ACN coefficients for a unit
// ambisonic-frame direction, optionally weighted for a disk source of the
// given angular spread (the full angular diameter, in radians; 0 is a
// point source).
func CalcDirectionCoeffs(dir Direction, spread s1.Angle) AmbiCoeffs {
	x, y, z := dir.X, dir.Y, dir.Z

	var c AmbiCoeffs
	// Order 0
	c[0] = 1
	// Order 1: Y, Z, X
	c[1] = sqrt3 * y
	c[2] = sqrt3 * z
	c[3] = sqrt3 * x
	// Order 2: V, T, R, S, U
	c[4] = sqrt15 * x * y
	c[5] = sqrt15 * y * z
	c[6] = (sqrt5 / 2) * (3*z*z - 1)
	c[7] = sqrt15 * x * z
	c[8] = (sqrt15 / 2) * (x*x - y*y)
	// Order 3: Q, O, M, K, L, N, P
	c[9] = (sqrt70 / 4) * y * (3*x*x - y*y)
	c[10] = sqrt105 * x * y * z
	c[11] = (sqrt42 / 4) * y * (5*z*z - 1)
	c[12] = (sqrt7 / 2) * z * (5*z*z - 3)
	c[13] = (sqrt42 / 4) * x * (5*z*z - 1)
	c[14] = (sqrt105 / 2) * z * (x*x - y*y)
	c[15] = (sqrt70 / 4) * x * (x*x - 3*y*y)

	if spread > 0 {
		applySpreadWeights(&c, spread)
	}
	return c
}

// CalcAngleCoeffs computes the same 16 coefficients from an azimuth (0 is
// forward, positive turns right) and elevation (positive is up), both in
// radians, plus spread. It builds an engine-space unit vector and
// delegates to CalcDirectionCoeffs so the axis conversion happens in
// exactly one place.
func CalcAngleCoeffs(az, el, spread s1.Angle) AmbiCoeffs {
	cosEl := math.Cos(el.Radians())
	x := math.Sin(az.Radians()) * cosEl
	y := math.Sin(el.Radians())
	z := -math.Cos(az.Radians()) * cosEl
	return CalcDirectionCoeffs(DirectionFromEngine(x, y, z), spread)
}

// applySpreadWeights multiplies c order-wise by the zonal-harmonic weights
// that model a finite disk of half-angle spread/2, per Sloan's
// zonal-harmonic area-light formulation. The order-0 weight is fixed at 1
// so overall loudness is preserved as spread grows.
func applySpreadWeights(c *AmbiCoeffs, spread s1.Angle) {
	ca := math.Cos(spread.Radians() / 2)
	w := [4]float64{
		1,
		(ca + 1) / 2,
		((ca + 1) / 2) * ca,
		((ca + 1) / 2) * (5*ca*ca - 1) / 4,
	}
	for k := range c {
		c[k] *= w[acnOrder(k)]
	}
}

// acnOrder returns the spherical-harmonic order (0..3) of ACN index k.
func acnOrder(k int) int {
	switch {
	case k < 1:
		return 0
	case k < 4:
		return 1
	case k < 9:
		return 2
	default:
		return 3
	}
}
