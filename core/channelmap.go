package core

import (
	"github.com/charmbracelet/log"
)

// DeviceChannels is the ordered list of physical channel labels a device
// exposes, terminated implicitly by InvalidChannel or the end of the
// slice.
type DeviceChannels []ChannelLabel

// SetChannelMap installs chanmap into outRows, one row per device
// channel, and returns the number of rows it processed. For each device
// channel in order:
//
//   - LFE always yields an all-zero row: LFE receives no spatial content.
//   - otherwise the first chanmap entry with a matching label is placed,
//     FuMa-deinterleaved to ACN/N3D if isFuma, or copied straight through
//     if the caller already normalized to N3D/ACN.
//   - a channel with no matching entry is logged and its row left
//     untouched (zero when outRows starts zeroed, as after AmbiBus.Reset).
func SetChannelMap(logger *log.Logger, devchans DeviceChannels, outRows []ChannelConfig, chanmap ChannelMap, isFuma bool) int {
	logger = nonNilLogger(logger)

	count := 0
	for i, label := range devchans {
		if i >= len(outRows) {
			break
		}
		if label == InvalidChannel {
			break
		}
		count++

		var row ChannelConfig
		if label == LFE {
			outRows[i] = row
			continue
		}

		entry, found := findChannelMapEntry(chanmap, label)
		if !found {
			logger.Warn("no channel-map entry for device channel", "channel", label.String())
			continue
		}

		if isFuma {
			for acn := 0; acn < 16; acn++ {
				fumaIdx := inverseFuMa2ACN(acn)
				row[acn] = entry.Coeffs[fumaIdx] / FuMa2N3DScale[acn]
			}
		} else {
			row = entry.Coeffs
		}
		outRows[i] = row
	}
	return count
}

func findChannelMapEntry(chanmap ChannelMap, label ChannelLabel) (ChannelMapEntry, bool) {
	for _, e := range chanmap {
		if e.Label == label {
			return e, true
		}
	}
	return ChannelMapEntry{}, false
}

// inverseFuMa2ACN returns the FuMa index whose ACN index is acn: the
// layout tables in layouts.go store coefficients FuMa-channel-ordered (foa's
// w,x,y,z), so installing into ACN order means reading backwards through
// FuMa2ACN.
func inverseFuMa2ACN(acn int) int {
	for fuma, a := range FuMa2ACN {
		if a == acn {
			return fuma
		}
	}
	return 0
}

