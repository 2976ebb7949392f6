package core

// Device is the subset of renderer state this package owns. It is rebuilt
// from scratch by SelectRenderer at every device (re)open; between opens
// it is read-only to the out-of-scope mixer. There is no internal
// synchronization: the owning layer must ensure nothing else touches a
// Device while an initializer is running.
type Device struct {
	Name string

	FmtChans     FmtChans
	Channels     DeviceChannels
	Frequency    int
	IsHeadphones bool
	Kind         DeviceKind

	RenderMode RenderMode

	Hrtf       HRTFHandle
	HrtfName   string
	HrtfStatus HrtfStatus
	HrtfList   []HRTFEntry

	Dry    AmbiBus
	FOAOut AmbiBus

	HrtfParams [8]HrtfChannelParams

	AmbiDecoder AmbiDecoderDSP
	Bs2b        Bs2bState
	UhjEncoder  UhjEncoderState
}

// resetForReinit clears the fields every initializer rebuilds, releasing
// whatever opaque DSP state belonged to the previous mode. It does not
// touch Name/FmtChans/Channels/Frequency/IsHeadphones/Kind/HrtfList: those
// describe the physical device and the caller's inputs, not the render
// strategy.
func (d *Device) resetForReinit() {
	d.Dry.Reset()
	d.FOAOut.Reset()
	d.Hrtf = nil
	d.HrtfName = ""
	d.HrtfParams = [8]HrtfChannelParams{}
	d.RenderMode = NormalRender
	d.HrtfStatus = Disabled
	d.AmbiDecoder = nil
	d.Bs2b = nil
	d.UhjEncoder = nil
}
