// Package trials picks which Lorule Castle trials guard the throne room door.
package trials

import (
	"math/rand/v2"
	"strings"

	"ravio/pkg/game/items"
	"ravio/pkg/game/settings"
)

// Trial is one of the four Lorule Castle trials.
type Trial uint8

const (
	Bomb Trial = iota
	Tile
	Lamp
	Hook

	numTrials
)

var trialNames = [numTrials]string{"Bomb Trial", "Tile Trial", "Lamp Trial", "Hook Trial"}

var trialQuests = [numTrials]items.Item{items.LcBombTrial, items.LcTileTrial, items.LcLampTrial, items.LcHookTrial}

// All returns the four trials in order.
func All() []Trial { return []Trial{Bomb, Tile, Lamp, Hook} }

func (t Trial) String() string { return trialNames[t] }

// Quest is the event granted when the trial is completed.
func (t Trial) Quest() items.Item { return trialQuests[t] }

// Config is the set of trials turned on for a seed.
type Config uint8

// Select turns on as many random trials as the door setting asks for.
func Select(door settings.TrialsDoor, rng *rand.Rand) Config {
	n := door.Required()
	if n >= int(numTrials) {
		return Config(1<<numTrials - 1)
	}
	var c Config
	for _, i := range rng.Perm(int(numTrials))[:n] {
		c |= 1 << i
	}
	return c
}

// Required reports whether trial t is turned on.
func (c Config) Required(t Trial) bool { return c&(1<<t) != 0 }

// Trials returns the trials that are turned on, in order.
func (c Config) Trials() []Trial {
	var out []Trial
	for _, t := range All() {
		if c.Required(t) {
			out = append(out, t)
		}
	}
	return out
}

func (c Config) String() string {
	ts := c.Trials()
	if len(ts) == 0 {
		return "none"
	}
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}
