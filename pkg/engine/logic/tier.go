package logic

import (
	"fmt"
	"strings"
)

// Tier is a logic strictness level. Tiers are totally ordered from the
// strictest (Normal) to the most permissive (NoLogic).
type Tier uint8

const (
	Normal Tier = iota
	Hard
	Glitched
	AdvancedGlitched
	Hell
	NoLogic
)

// NumTiers is the number of declared tiers.
const NumTiers = int(NoLogic) + 1

var tierNames = [NumTiers]string{
	Normal:           "normal",
	Hard:             "hard",
	Glitched:         "glitched",
	AdvancedGlitched: "advanced_glitched",
	Hell:             "hell",
	NoLogic:          "nologic",
}

// Tiers returns every tier in strictness order.
func Tiers() []Tier {
	return []Tier{Normal, Hard, Glitched, AdvancedGlitched, Hell, NoLogic}
}

func (t Tier) String() string {
	if int(t) < NumTiers {
		return tierNames[t]
	}
	return fmt.Sprintf("tier(%d)", uint8(t))
}

// AtMost reports whether t is no more permissive than other.
func (t Tier) AtMost(other Tier) bool {
	return t <= other
}

// ParseTier parses a tier name. Matching ignores case, and '-' is accepted for '_'.
func ParseTier(s string) (Tier, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, name := range tierNames {
		if name == key {
			return Tier(i), nil
		}
	}
	return Normal, fmt.Errorf("unknown logic tier %q", s)
}

func (t Tier) MarshalText() ([]byte, error) {
	if int(t) >= NumTiers {
		return nil, fmt.Errorf("invalid logic tier %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	parsed, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
