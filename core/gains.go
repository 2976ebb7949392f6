package core

import "math"

// AmbientGainsMC and its siblings always write MaxOutputChannels entries;
// indices at or beyond the bus's NumChannels are zeroed, so callers can
// index the result directly without separately bounds-checking against
// the active channel count.

// AmbientGainsMC computes per-channel gains for an ambient (zeroth-order,
// direction-independent) source against a coefficient-style decoder.
func AmbientGainsMC(bus *AmbiBus, ingain float64) [MaxOutputChannels]float64 {
	var out [MaxOutputChannels]float64
	for i := 0; i < bus.NumChannels && i < MaxOutputChannels; i++ {
		out[i] = math.Sqrt(bus.Coeffs[i][0]) * ingain
	}
	return out
}

// AmbientGainsBF computes the ambient gain for an index-style decoder.
// Only channel 0 (the W feed) receives energy; the legacy sqrt(2)
// multiplier is FuMa's W-channel boost, carried over from the reference
// decoder this spec is drawn from (see DESIGN.md's note on the spec's
// open question).
func AmbientGainsBF(bus *AmbiBus, ingain float64) [MaxOutputChannels]float64 {
	var out [MaxOutputChannels]float64
	var sum float64
	for i := 0; i < bus.NumChannels && i < MaxOutputChannels; i++ {
		if bus.Map[i].Index == 0 {
			sum += bus.Map[i].Scale
		}
	}
	out[0] = ingain * math.Sqrt2 * sum
	return out
}

// PanningGainsMC computes per-channel gains for a positional source's
// ambisonic coefficients against a coefficient-style decoder, using only
// the first numcoeffs entries of coeffs and of each decoder row.
func PanningGainsMC(bus *AmbiBus, coeffs AmbiCoeffs, numcoeffs int, ingain float64) [MaxOutputChannels]float64 {
	var out [MaxOutputChannels]float64
	for i := 0; i < bus.NumChannels && i < MaxOutputChannels; i++ {
		var sum float64
		row := bus.Coeffs[i]
		n := numcoeffs
		if n > bus.CoeffCount {
			n = bus.CoeffCount
		}
		for k := 0; k < n; k++ {
			sum += row[k] * coeffs[k]
		}
		out[i] = sum * ingain
	}
	return out
}

// PanningGainsBF computes per-channel gains against an index-style
// decoder.
func PanningGainsBF(bus *AmbiBus, coeffs AmbiCoeffs, ingain float64) [MaxOutputChannels]float64 {
	var out [MaxOutputChannels]float64
	for i := 0; i < bus.NumChannels && i < MaxOutputChannels; i++ {
		m := bus.Map[i]
		out[i] = m.Scale * coeffs[m.Index] * ingain
	}
	return out
}

// FirstOrderGainsMC computes per-channel gains from a 4-entry first-order
// ambisonic matrix against a coefficient-style decoder.
func FirstOrderGainsMC(bus *AmbiBus, mtx [4]float64, ingain float64) [MaxOutputChannels]float64 {
	var out [MaxOutputChannels]float64
	for i := 0; i < bus.NumChannels && i < MaxOutputChannels; i++ {
		var sum float64
		row := bus.Coeffs[i]
		for k := 0; k < 4; k++ {
			sum += row[k] * mtx[k]
		}
		out[i] = sum * ingain
	}
	return out
}

// FirstOrderGainsBF computes per-channel gains from a 4-entry first-order
// ambisonic matrix against an index-style decoder.
func FirstOrderGainsBF(bus *AmbiBus, mtx [4]float64, ingain float64) [MaxOutputChannels]float64 {
	var out [MaxOutputChannels]float64
	for i := 0; i < bus.NumChannels && i < MaxOutputChannels; i++ {
		m := bus.Map[i]
		out[i] = m.Scale * mtx[m.Index] * ingain
	}
	return out
}
