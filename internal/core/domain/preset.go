package domain

import (
	"fmt"
	"time"

	"github.com/yndnr/ut-go/pkg/lookup"
)

// Preset is a named day relative to the provider's today.
type Preset int

const (
	PresetToday Preset = iota
	PresetTomorrow
	PresetYesterday
)

var presets = []Preset{
	PresetToday,
	PresetTomorrow,
	PresetYesterday,
}

// Presets returns every preset in declaration order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

func (p Preset) String() string {
	switch p {
	case PresetToday:
		return "today"
	case PresetTomorrow:
		return "tomorrow"
	case PresetYesterday:
		return "yesterday"
	default:
		return fmt.Sprintf("Preset(%d)", int(p))
	}
}

// Offset returns the preset's distance from today in days.
func (p Preset) Offset() int {
	switch p {
	case PresetTomorrow:
		return 1
	case PresetYesterday:
		return -1
	default:
		return 0
	}
}

// Date resolves the preset against provider. Nothing is cached; each call
// asks the provider again.
func (p Preset) Date(provider DateTimeProvider) time.Time {
	switch p {
	case PresetTomorrow:
		return provider.Tomorrow()
	case PresetYesterday:
		return provider.Yesterday()
	default:
		return provider.Today()
	}
}

// FindPreset resolves an exact, case-sensitive preset name.
func FindPreset(name string) (Preset, error) {
	p, err := lookup.ByName("preset", name, presets)
	if err != nil {
		return p, ErrPreset.WithCause(err)
	}
	return p, nil
}

// FindPresetOpt resolves an optional preset name. A nil name yields
// (PresetToday, false, nil).
func FindPresetOpt(name *string) (Preset, bool, error) {
	if name == nil {
		return PresetToday, false, nil
	}
	p, err := FindPreset(*name)
	if err != nil {
		return p, false, err
	}
	return p, true, nil
}
