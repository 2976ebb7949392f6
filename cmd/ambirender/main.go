// Command ambirender is a standalone driver for the renderer selection
// state machine: it describes a playback device from its flags (name,
// format, sample rate, headphone hint), loads an optional YAML
// configuration file, runs core.SelectRenderer, and prints the resulting
// decoder strategy. PortAudio is used only by --list-devices to print the
// available playback devices; no device is opened. With
// --interactive it steers a virtual source's azimuth/elevation live from
// the keyboard and recomputes the per-channel gains on each keystroke, the
// way the out-of-scope mixer would every audio block. With --dump it
// writes the installed decoder tables to a timestamped file. With
// --status-port it serves the current strategy over the network for a
// monitoring tool to poll.
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gordonklaus/portaudio"
	"github.com/golang/geo/s1"
	"github.com/lestrrat-go/strftime"
	"github.com/pkg/term"
	"github.com/spf13/pflag"

	"github.com/go-spatial/ambicore/core"
	"github.com/go-spatial/ambicore/internal/appconfig"
	"github.com/go-spatial/ambicore/internal/devicehint"
	"github.com/go-spatial/ambicore/internal/statusd"
)

var fmtChansNames = map[string]core.FmtChans{
	"mono":      core.Mono,
	"stereo":    core.Stereo,
	"quad":      core.Quad,
	"5.1":       core.X51,
	"5.1-rear":  core.X51Rear,
	"6.1":       core.X61,
	"7.1":       core.X71,
	"bformat3d": core.BFormat3D,
}

// builtinChannels returns the device channel list InitPanning's own
// layout tables assume for a format, the one piece of device topology this
// standalone driver has to guess at since it has no real mixer wired up to
// report it.
func builtinChannels(f core.FmtChans) core.DeviceChannels {
	layout, ok := core.LayoutFor(f)
	if !ok {
		return nil
	}
	chans := make(core.DeviceChannels, len(layout.Map))
	for i, entry := range layout.Map {
		chans[i] = entry.Label
	}
	return chans
}

func listDevices() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("portaudio init: %w", err)
	}
	defer portaudio.Terminate()

	devices, err := portaudio.Devices()
	if err != nil {
		return fmt.Errorf("enumerate devices: %w", err)
	}
	for _, d := range devices {
		if d.MaxOutputChannels == 0 {
			continue
		}
		fmt.Printf("%-32s  out-channels=%d  rate=%.0f\n", d.Name, d.MaxOutputChannels, d.DefaultSampleRate)
	}
	return nil
}

// liveState holds the single Device this driver steers, guarded by a
// mutex since the status server's handler goroutines read it concurrently
// with the main/interactive loop's writes.
type liveState struct {
	mu   sync.Mutex
	dev  core.Device
	text string
}

func (s *liveState) snapshot() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

func describe(dev *core.Device) string {
	return fmt.Sprintf("device=%s format=%d render_mode=%d hrtf_status=%d dry_channels=%d dry_coeffcount=%d",
		dev.Name, dev.FmtChans, dev.RenderMode, dev.HrtfStatus, dev.Dry.NumChannels, dev.Dry.CoeffCount)
}

func (s *liveState) reselect(in core.SelectInputs, deps core.Collaborators) {
	s.mu.Lock()
	defer s.mu.Unlock()
	core.SelectRenderer(&s.dev, in, deps)
	s.text = describe(&s.dev)
}

// gainsLine evaluates the live azimuth/elevation against the device's
// installed Dry bus, the per-block work the out-of-scope mixer would do.
func (s *liveState) gainsLine(azDeg, elDeg float64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	coeffs := core.CalcAngleCoeffs(deg2rad(azDeg), deg2rad(elDeg), 0)
	var gains [core.MaxOutputChannels]float64
	if s.dev.Dry.IsIndexStyle() {
		gains = core.PanningGainsBF(&s.dev.Dry, coeffs, 1.0)
	} else {
		gains = core.PanningGainsMC(&s.dev.Dry, coeffs, s.dev.Dry.CoeffCount, 1.0)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "az=%.0f el=%.0f", azDeg, elDeg)
	for i := 0; i < s.dev.Dry.NumChannels; i++ {
		fmt.Fprintf(&b, " ch%d=%.4f", i, gains[i])
	}
	return b.String()
}

func deg2rad(d float64) s1.Angle { return s1.Angle(d * math.Pi / 180) }

// dumpTables writes the installed Dry/FOAOut tables to a file named after
// the current time, formatted with the strftime layout pattern.
func dumpTables(dev *core.Device, pattern string) (string, error) {
	name, err := strftime.Format(pattern, time.Now())
	if err != nil {
		return "", fmt.Errorf("format dump filename: %w", err)
	}

	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("create dump file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "device: %s\nformat: %d\nrender_mode: %d\nhrtf_status: %d\n", dev.Name, dev.FmtChans, dev.RenderMode, dev.HrtfStatus)
	fmt.Fprintf(f, "dry: channels=%d coeffcount=%d index_style=%v\n", dev.Dry.NumChannels, dev.Dry.CoeffCount, dev.Dry.IsIndexStyle())
	for i := 0; i < dev.Dry.NumChannels; i++ {
		if dev.Dry.IsIndexStyle() {
			fmt.Fprintf(f, "  row %2d: scale=%.6f index=%d\n", i, dev.Dry.Map[i].Scale, dev.Dry.Map[i].Index)
		} else {
			fmt.Fprintf(f, "  row %2d: %v\n", i, dev.Dry.Coeffs[i][:dev.Dry.CoeffCount])
		}
	}
	fmt.Fprintf(f, "foaout: channels=%d coeffcount=%d index_style=%v\n", dev.FOAOut.NumChannels, dev.FOAOut.CoeffCount, dev.FOAOut.IsIndexStyle())
	for i := 0; i < dev.FOAOut.NumChannels; i++ {
		if dev.FOAOut.IsIndexStyle() {
			fmt.Fprintf(f, "  row %2d: scale=%.6f index=%d\n", i, dev.FOAOut.Map[i].Scale, dev.FOAOut.Map[i].Index)
		} else {
			fmt.Fprintf(f, "  row %2d: %v\n", i, dev.FOAOut.Coeffs[i][:dev.FOAOut.CoeffCount])
		}
	}
	return name, nil
}

func main() {
	deviceName := pflag.StringP("device", "d", "", "playback device name (see --list-devices)")
	listOnly := pflag.Bool("list-devices", false, "list PortAudio playback devices and exit")
	configPath := pflag.StringP("config", "c", "", "YAML configuration file")
	formatName := pflag.StringP("format", "f", "stereo", "output format: mono, stereo, quad, 5.1, 5.1-rear, 6.1, 7.1, bformat3d")
	rate := pflag.IntP("rate", "r", 48000, "device sample rate")
	headphones := pflag.Bool("headphones", false, "override headphone auto-detect")
	userHrtf := pflag.String("user-hrtf", "default", "user HRTF request: default, enable, disable")
	statusPort := pflag.Int("status-port", 0, "serve device status on this TCP port (0 disables)")
	interactive := pflag.BoolP("interactive", "i", false, "steer a virtual source's az/el live from the keyboard")
	dumpPattern := pflag.String("dump", "", "write installed decoder tables to a strftime-formatted path and exit")
	pflag.Parse()

	logger := log.New(os.Stderr)

	if *listOnly {
		if err := listDevices(); err != nil {
			logger.Fatal("list devices", "error", err)
		}
		return
	}

	fmtChans, ok := fmtChansNames[strings.ToLower(*formatName)]
	if !ok {
		logger.Fatal("unrecognized format", "format", *formatName)
	}

	var cfg *appconfig.Config
	if *configPath != "" {
		var err error
		cfg, err = appconfig.Load(*configPath)
		if err != nil {
			logger.Fatal("load config", "error", err)
		}
	}

	isHeadphones := *headphones
	if !isHeadphones && *deviceName != "" {
		if detected, err := devicehint.IsHeadphones(*deviceName); err != nil {
			logger.Warn("headphone detection unavailable", "error", err)
		} else {
			isHeadphones = detected
		}
	}

	dev := core.Device{
		Name:         *deviceName,
		FmtChans:     fmtChans,
		Channels:     builtinChannels(fmtChans),
		Frequency:    *rate,
		IsHeadphones: isHeadphones,
	}

	var configSource core.ConfigSource
	if cfg != nil {
		configSource = cfg
	}
	deps := core.Collaborators{Config: configSource, Logger: logger}

	userReq := core.Default
	switch strings.ToLower(*userHrtf) {
	case "enable":
		userReq = core.Enable
	case "disable":
		userReq = core.Disable
	}

	state := &liveState{dev: dev}
	state.reselect(core.SelectInputs{HrtfID: -1, UserReq: userReq}, deps)
	fmt.Println(state.snapshot())

	if *dumpPattern != "" {
		state.mu.Lock()
		name, err := dumpTables(&state.dev, *dumpPattern)
		state.mu.Unlock()
		if err != nil {
			logger.Fatal("dump decoder tables", "error", err)
		}
		fmt.Println("wrote", name)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *statusPort != 0 {
		srv, err := statusd.New(*statusPort, func(string) string { return state.snapshot() }, logger)
		if err != nil {
			logger.Fatal("start status server", "error", err)
		}
		defer srv.Close()
		go func() {
			if err := srv.Serve(ctx, "ambirender-"+(*deviceName)); err != nil {
				logger.Warn("status server stopped", "error", err)
			}
		}()
	}

	if *interactive {
		runInteractive(ctx, state)
		return
	}

	<-ctx.Done()
}

// runInteractive puts the controlling terminal in raw mode and reads
// single keystrokes to steer a virtual source: a/d decrease/increase
// azimuth, w/s increase/decrease elevation, each by 5 degrees, recomputing
// and printing the per-channel gains against the installed Dry bus; q
// quits.
func runInteractive(ctx context.Context, state *liveState) {
	tty, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "interactive mode unavailable:", err)
		<-ctx.Done()
		return
	}
	defer tty.Close()

	fmt.Fprintln(os.Stderr, "interactive: a/d=azimuth, w/s=elevation, q=quit")

	var azDeg, elDeg float64
	fmt.Fprintln(os.Stderr, state.gainsLine(azDeg, elDeg))

	buf := make([]byte, 1)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, err := tty.Read(buf)
		if err != nil || n == 0 {
			return
		}

		switch buf[0] {
		case 'a':
			azDeg -= 5
		case 'd':
			azDeg += 5
		case 'w':
			elDeg += 5
		case 's':
			elDeg -= 5
		case 'q':
			return
		default:
			continue
		}

		fmt.Fprintln(os.Stderr, state.gainsLine(azDeg, elDeg))
	}
}
