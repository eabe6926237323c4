package settings

import (
	"fmt"
	"strings"
)

// Pedestal selects which pendants the Master Sword pedestal asks for.
type Pedestal uint8

const (
	// PedestalStandard needs the Pendants of Power and Wisdom.
	PedestalStandard Pedestal = iota
	// PedestalVanilla needs all three pendants.
	PedestalVanilla
)

var pedestalNames = []string{"standard", "vanilla"}

func (p Pedestal) String() string { return enumName(pedestalNames, int(p)) }
func (p Pedestal) MarshalText() ([]byte, error) { return enumText(pedestalNames, int(p)) }
func (p *Pedestal) UnmarshalText(b []byte) error { return enumParse(pedestalNames, b, (*uint8)(p)) }

// TrialsDoor selects how the Lorule Castle trials door opens.
type TrialsDoor uint8

const (
	OpenFromInsideOnly TrialsDoor = iota
	OpenFromBothSides
	OneTrialRequired
	TwoTrialsRequired
	ThreeTrialsRequired
	AllTrialsRequired
)

var trialsDoorNames = []string{
	"open_from_inside_only",
	"open_from_both_sides",
	"one_trial_required",
	"two_trials_required",
	"three_trials_required",
	"all_trials_required",
}

func (t TrialsDoor) String() string { return enumName(trialsDoorNames, int(t)) }
func (t TrialsDoor) MarshalText() ([]byte, error) { return enumText(trialsDoorNames, int(t)) }
func (t *TrialsDoor) UnmarshalText(b []byte) error { return enumParse(trialsDoorNames, b, (*uint8)(t)) }

// Required returns how many trials must be completed, 0 when the door opens by itself.
func (t TrialsDoor) Required() int {
	switch t {
	case OneTrialRequired:
		return 1
	case TwoTrialsRequired:
		return 2
	case ThreeTrialsRequired:
		return 3
	case AllTrialsRequired:
		return 4
	}
	return 0
}

// NiceItems selects what happens to the upgraded ("nice") versions of items.
type NiceItems uint8

const (
	// NiceVanilla leaves the upgrades at their vanilla checks.
	NiceVanilla NiceItems = iota
	// NiceShuffled shuffles the upgrades into the progression pool.
	NiceShuffled
	// NiceOff removes the upgrades.
	NiceOff
)

var niceItemsNames = []string{"vanilla", "shuffled", "off"}

func (n NiceItems) String() string { return enumName(niceItemsNames, int(n)) }
func (n NiceItems) MarshalText() ([]byte, error) { return enumText(niceItemsNames, int(n)) }
func (n *NiceItems) UnmarshalText(b []byte) error { return enumParse(niceItemsNames, b, (*uint8)(n)) }

// WeatherVanes selects which weather vanes are active when the game starts.
type WeatherVanes uint8

const (
	VanesStandard WeatherVanes = iota
	VanesShuffled
	VanesConvenient
	VanesHyrule
	VanesLorule
	VanesAll
)

var weatherVanesNames = []string{"standard", "shuffled", "convenient", "hyrule", "lorule", "all"}

func (w WeatherVanes) String() string { return enumName(weatherVanesNames, int(w)) }
func (w WeatherVanes) MarshalText() ([]byte, error) { return enumText(weatherVanesNames, int(w)) }
func (w *WeatherVanes) UnmarshalText(b []byte) error { return enumParse(weatherVanesNames, b, (*uint8)(w)) }

// Hyrule reports whether the Hyrule vanes are active from the start.
func (w WeatherVanes) Hyrule() bool { return w == VanesHyrule || w == VanesAll }

// Lorule reports whether the Lorule vanes are active from the start.
func (w WeatherVanes) Lorule() bool { return w == VanesLorule || w == VanesAll }

// Keysy removes keys from the game, replacing them in the pool with rupees.
type Keysy uint8

const (
	KeysyOff Keysy = iota
	KeysySmall
	KeysyBig
	KeysyAll
)

var keysyNames = []string{"off", "small", "big", "all"}

func (k Keysy) String() string { return enumName(keysyNames, int(k)) }
func (k Keysy) MarshalText() ([]byte, error) { return enumText(keysyNames, int(k)) }
func (k *Keysy) UnmarshalText(b []byte) error { return enumParse(keysyNames, b, (*uint8)(k)) }

// SmallKeys reports whether small keys are removed.
func (k Keysy) SmallKeys() bool { return k == KeysySmall || k == KeysyAll }

// BigKeys reports whether big keys are removed.
func (k Keysy) BigKeys() bool { return k == KeysyBig || k == KeysyAll }

func enumName(names []string, v int) string {
	if v < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%d", v)
}

func enumText(names []string, v int) ([]byte, error) {
	if v >= len(names) {
		return nil, fmt.Errorf("value %d out of range", v)
	}
	return []byte(names[v]), nil
}

func enumParse(names []string, b []byte, dst *uint8) error {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(string(b))), "-", "_")
	for i, name := range names {
		if name == key {
			*dst = uint8(i)
			return nil
		}
	}
	return fmt.Errorf("unknown value %q, want one of %s", string(b), strings.Join(names, ", "))
}
