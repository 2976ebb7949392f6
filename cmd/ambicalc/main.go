// Command ambicalc is a one-shot spherical-harmonic coefficient
// calculator: given an azimuth, elevation, and optional spread, it prints
// the 16 N3D/ACN coefficients core.CalcAngleCoeffs would hand the renderer.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/golang/geo/s1"
	"github.com/spf13/pflag"

	"github.com/go-spatial/ambicore/core"
)

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

func main() {
	azimuth := pflag.Float64P("azimuth", "a", 0, "source azimuth in degrees, 0 = forward, positive = clockwise")
	elevation := pflag.Float64P("elevation", "e", 0, "source elevation in degrees, positive = up")
	spread := pflag.Float64P("spread", "s", 0, "source spread (diffuseness) in degrees, 0 = point source")
	help := pflag.BoolP("help", "h", false, "display this help text")
	pflag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "usage: ambicalc [-a azimuth] [-e elevation] [-s spread]")
		pflag.PrintDefaults()
		return
	}

	coeffs := core.CalcAngleCoeffs(
		s1.Angle(deg2rad(*azimuth)),
		s1.Angle(deg2rad(*elevation)),
		s1.Angle(deg2rad(*spread)),
	)

	for acn, v := range coeffs {
		fmt.Printf("ACN %2d: %+.6f\n", acn, v)
	}
}
