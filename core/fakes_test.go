package core

import "github.com/golang/geo/s1"

// fakeConfig is an in-memory ConfigSource double keyed by
// "section/key" (section "" for the legacy global section); it ignores
// the device-name scope since tests only ever exercise a single device.
type fakeConfig map[string]string

func (c fakeConfig) get(section, key string) (string, bool) {
	v, ok := c[section+"/"+key]
	return v, ok
}

func (c fakeConfig) GetStr(_, section, key string) (string, bool) {
	return c.get(section, key)
}

func (c fakeConfig) GetBool(_, section, key string) (bool, bool) {
	v, ok := c.get(section, key)
	if !ok {
		return false, false
	}
	return v == "true" || v == "1", true
}

func (c fakeConfig) GetInt(_, section, key string) (int, bool) {
	v, ok := c.get(section, key)
	if !ok {
		return 0, false
	}
	n := 0
	neg := false
	for i, r := range v {
		if i == 0 && r == '-' {
			neg = true
			continue
		}
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}

// fakeDecoderLoader returns a fixed DecoderConf for any path, or an error
// if Err is set.
type fakeDecoderLoader struct {
	Conf *DecoderConf
	Err  error
}

func (l fakeDecoderLoader) Load(string) (*DecoderConf, error) {
	if l.Err != nil {
		return nil, l.Err
	}
	return l.Conf, nil
}

// fakeHRTFHandle is a minimal HRTFHandle double.
type fakeHRTFHandle struct {
	rate int
}

func (h *fakeHRTFHandle) SampleRate() int { return h.rate }

func (h *fakeHRTFHandle) Lookup(el, az s1.Angle, gain, delayBias float64) ([]float64, int) {
	return []float64{gain, el.Radians(), az.Radians(), delayBias}, 7
}

// fakeHRTFRegistry enumerates a fixed entry list regardless of device
// name.
type fakeHRTFRegistry struct {
	Entries []HRTFEntry
}

func (r fakeHRTFRegistry) Enumerate(string) []HRTFEntry { return r.Entries }

// fakeCrossfeed and fakeUhj record the parameters they were built with so
// tests can assert a factory was actually invoked.
type fakeCrossfeedState struct{ Level, SampleRate int }
type fakeCrossfeed struct{}

func (fakeCrossfeed) New(level, sampleRate int) Bs2bState {
	return &fakeCrossfeedState{Level: level, SampleRate: sampleRate}
}

type fakeUhjState struct{}
type fakeUhj struct{}

func (fakeUhj) New() UhjEncoderState { return &fakeUhjState{} }

// fakeAmbiDecoder is a minimal AmbiDecoderDSP double with a fixed order.
type fakeAmbiDecoder struct{ order int }

func (d *fakeAmbiDecoder) Order() int { return d.order }

type fakeAmbiDecoderFactory struct {
	Order int
	Err   error
}

func (f fakeAmbiDecoderFactory) New(_ *DecoderConf, _ []int, _ int, _ bool) (AmbiDecoderDSP, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return &fakeAmbiDecoder{order: f.Order}, nil
}
