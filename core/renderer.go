package core

import "github.com/charmbracelet/log"

// SelectInputs are the caller-supplied (as opposed to config-supplied)
// inputs to the renderer selection state machine.
type SelectInputs struct {
	// HrtfID is the caller-requested dataset index; may be negative or
	// out of range, meaning "no preference".
	HrtfID int
	AppReq HrtfRequest
	UserReq HrtfRequest
}

// Collaborators bundles every external contract SelectRenderer consults.
// Any field may be nil; SelectRenderer degrades gracefully rather than
// panicking (a nil DecoderLoader behaves like every decoder-file load
// failing, a nil HRTF registry behaves like an empty dataset list, etc).
type Collaborators struct {
	Config        ConfigSource
	DecoderLoader DecoderConfLoader
	HRTF          HRTFRegistry
	Crossfeed     CrossfeedFactory
	Uhj           UhjFactory
	AmbiDecoder   AmbiDecoderFactory
	Logger        *log.Logger
}

// SelectRenderer is the renderer selection state machine (spec.md §4.H):
// given a device's format, headphone hint, app/user HRTF requests and
// configuration, it picks exactly one rendering strategy and runs its
// initializer. It is deterministic: identical dev/in/deps produce
// identical decoder tables (spec.md §8 invariant 7), and Loopback devices
// never consult free-text configuration.
func SelectRenderer(dev *Device, in SelectInputs, deps Collaborators) {
	logger := nonNilLogger(deps.Logger)
	dev.resetForReinit()

	cfg := deps.Config
	if dev.Kind == Loopback {
		cfg = nil
	}

	if dev.FmtChans != Stereo {
		selectNonStereo(dev, in, cfg, deps, logger)
		return
	}
	selectStereo(dev, in, cfg, deps, logger)
}

func selectNonStereo(dev *Device, in SelectInputs, cfg ConfigSource, deps Collaborators, logger *log.Logger) {
	if in.AppReq == Enable {
		dev.HrtfStatus = UnsupportedFormat
	}

	layoutName, hasLayout := layoutConfigName(dev.FmtChans)

	var path string
	var havePath bool
	if hasLayout && cfg != nil {
		path, havePath = cfg.GetStr(dev.Name, "decoder", layoutName)
	}

	var conf *DecoderConf
	var loadErr error
	if havePath && deps.DecoderLoader != nil {
		conf, loadErr = deps.DecoderLoader.Load(path)
	}

	if loadErr != nil {
		logger.Warn("decoder file load failed, falling back to built-in panning", "device", dev.Name, "error", loadErr)
		InitPanning(dev, logger)
		return
	}
	if conf == nil {
		InitPanning(dev, logger)
		return
	}
	if conf.ChanMask > 0xFFFF {
		logger.Warn("decoder channel mask exceeds 16 bits, rejecting decoder", "device", dev.Name, "mask", conf.ChanMask)
		InitPanning(dev, logger)
		return
	}

	names := make([]string, len(conf.Speakers))
	for i, sp := range conf.Speakers {
		names[i] = sp.Name
	}
	speakerMap, resolvedOK := ResolveSpeakerMap(names, dev.FmtChans, dev.Channels)
	if !resolvedOK {
		logger.Warn("decoder speaker map did not resolve against device layout, falling back", "device", dev.Name)
		InitPanning(dev, logger)
		return
	}

	hqMode := false
	if cfg != nil {
		hqMode, _ = cfg.GetBool(dev.Name, "decoder", "hq-mode")
	}

	if hqMode {
		distanceComp := true
		if cfg != nil {
			if v, ok := cfg.GetBool(dev.Name, "decoder", "distance-comp"); ok {
				distanceComp = v
			}
		}
		InitHQPanning(dev, conf, speakerMap, distanceComp, deps.AmbiDecoder, logger)
		return
	}
	InitCustomPanning(dev, conf, logger)
}

func selectStereo(dev *Device, in SelectInputs, cfg ConfigSource, deps Collaborators, logger *log.Logger) {
	headphones := dev.IsHeadphones
	if cfg != nil {
		if mode, ok := cfg.GetStr(dev.Name, "", "stereo-mode"); ok {
			switch mode {
			case "headphones":
				headphones = true
			case "speakers":
				headphones = false
			case "auto":
				// keep dev.IsHeadphones
			default:
				logger.Warn("unknown stereo-mode value, using auto-detect", "device", dev.Name, "value", mode)
			}
		}
	}

	var usehrtf bool
	switch in.UserReq {
	case Enable:
		usehrtf = true
		dev.HrtfStatus = Required
	case Disable:
		usehrtf = false
		if in.AppReq == Enable {
			dev.HrtfStatus = Denied
		}
	default:
		usehrtf = (headphones && in.AppReq != Disable) || in.AppReq == Enable
		if usehrtf {
			if headphones {
				dev.HrtfStatus = HeadphonesDetected
			} else {
				dev.HrtfStatus = Enabled
			}
		}
	}

	if usehrtf {
		if dev.HrtfList == nil {
			if deps.HRTF != nil {
				dev.HrtfList = deps.HRTF.Enumerate(dev.Name)
			}
			if dev.HrtfList == nil {
				dev.HrtfList = []HRTFEntry{}
			}
		}

		entry, found := pickHrtfEntry(dev.HrtfList, in.HrtfID, dev.Frequency)
		if found {
			dev.RenderMode = HrtfRender
			if cfg != nil {
				if m, ok := cfg.GetStr(dev.Name, "", "hrtf-mode"); ok {
					switch m {
					case "basic":
						dev.RenderMode = NormalRender
					case "full":
					default:
						logger.Warn("unknown hrtf-mode value, using full", "device", dev.Name, "value", m)
					}
				}
			}
			dev.Hrtf = entry.Handle
			dev.HrtfName = entry.Name
			InitHrtfPanning(dev, logger)
			return
		}
		dev.HrtfStatus = UnsupportedFormat
	}

	bs2blevel := 0
	if (headphones && in.AppReq != Disable) || in.AppReq == Enable {
		bs2blevel = 5
	}
	if cfg != nil {
		if v, ok := cfg.GetInt(dev.Name, "", "cf_level"); ok {
			bs2blevel = clampInt(v, 1, 6)
		}
	}
	if bs2blevel >= 1 && bs2blevel <= 6 {
		if deps.Crossfeed != nil {
			dev.Bs2b = deps.Crossfeed.New(bs2blevel, dev.Frequency)
		}
		dev.RenderMode = StereoPair
		InitPanning(dev, logger)
		return
	}

	dev.RenderMode = NormalRender
	panning := "uhj"
	if cfg != nil {
		if v, ok := cfg.GetStr(dev.Name, "", "stereo-panning"); ok {
			switch v {
			case "paired":
				panning = "paired"
			case "uhj":
				panning = "uhj"
			default:
				logger.Warn("unknown stereo-panning value, using uhj", "device", dev.Name, "value", v)
				panning = "uhj"
			}
		}
	}

	if panning == "paired" {
		dev.RenderMode = StereoPair
		InitPanning(dev, logger)
		return
	}
	if deps.Uhj != nil {
		dev.UhjEncoder = deps.Uhj.New()
	}
	InitUhjPanning(dev, logger)
}

func pickHrtfEntry(list []HRTFEntry, hrtfID, freq int) (HRTFEntry, bool) {
	if hrtfID >= 0 && hrtfID < len(list) && list[hrtfID].Handle != nil && list[hrtfID].Handle.SampleRate() == freq {
		return list[hrtfID], true
	}
	for _, e := range list {
		if e.Handle != nil && e.Handle.SampleRate() == freq {
			return e, true
		}
	}
	return HRTFEntry{}, false
}

func layoutConfigName(f FmtChans) (string, bool) {
	switch f {
	case Quad:
		return "quad", true
	case X51:
		return "surround51", true
	case X51Rear:
		return "surround51rear", true
	case X61:
		return "surround61", true
	case X71:
		return "surround71", true
	default:
		return "", false
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
