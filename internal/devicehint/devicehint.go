// Package devicehint answers the one question core.Device.IsHeadphones
// needs before SelectRenderer runs: whether a sound device's physical form
// factor looks like headphones rather than loudspeakers. It is a Linux-only
// heuristic built on libudev's "sound" subsystem metadata; callers on other
// platforms, or when udev is unavailable, should leave IsHeadphones false
// and let config's stereo-mode override take over.
package devicehint

import (
	"fmt"
	"strings"

	"github.com/jochenvg/go-udev"
)

// IsHeadphones reports whether alsaCardName (as it appears in a device's
// "hw:CARD=Name" identifier) looks like a headphone/headset output,
// by consulting udev's SOUND_FORM_FACTOR hwdb property on the matching
// sound subsystem device.
func IsHeadphones(alsaCardName string) (bool, error) {
	u := udev.Udev{}
	e := u.NewEnumerate()
	if err := e.AddMatchSubsystem("sound"); err != nil {
		return false, fmt.Errorf("devicehint: match sound subsystem: %w", err)
	}

	devices, err := e.Devices()
	if err != nil {
		return false, fmt.Errorf("devicehint: enumerate sound devices: %w", err)
	}

	for _, dev := range devices {
		name := dev.PropertyValue("ID_ALSA_CARD_NAME")
		if name == "" {
			name = dev.PropertyValue("ID_MODEL")
		}
		if !strings.EqualFold(name, alsaCardName) {
			continue
		}
		if formFactorIsHeadphones(dev.PropertyValue("SOUND_FORM_FACTOR")) {
			return true, nil
		}
	}
	return false, nil
}

// formFactorIsHeadphones classifies udev's SOUND_FORM_FACTOR hwdb values,
// the ALSA UCM vocabulary ("headphone", "headset", "internal", "speaker",
// ...).
func formFactorIsHeadphones(formFactor string) bool {
	switch strings.ToLower(formFactor) {
	case "headphone", "headset":
		return true
	default:
		return false
	}
}
