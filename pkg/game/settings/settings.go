// Package settings holds the player-chosen generation configuration.
//
// A Settings value is validated once and then treated as immutable for the
// rest of the run. Presets are YAML documents; a handful ship embedded in the
// binary and any other file can be passed by path.
package settings

import (
	"slices"

	"gopkg.in/yaml.v3"

	"ravio/pkg/engine/logic"
	"ravio/pkg/game/failure"
)

// MaxSages is the number of sage portraits in the game.
const MaxSages = 7

type Settings struct {
	// Preset is the name the settings were loaded under. Not serialized.
	Preset string `yaml:"-" json:"-"`

	Logic               logic.Tier   `yaml:"logic" json:"logic"`
	LCRequirement       int          `yaml:"lc_requirement" json:"lc_requirement"`
	YuganonRequirement  int          `yaml:"yuganon_requirement" json:"yuganon_requirement"`
	PedRequirement      Pedestal     `yaml:"ped_requirement" json:"ped_requirement"`
	DungeonPrizeShuffle bool         `yaml:"dungeon_prize_shuffle" json:"dungeon_prize_shuffle"`
	TrialsDoor          TrialsDoor   `yaml:"trials_door" json:"trials_door"`
	SwordlessMode       bool         `yaml:"swordless_mode" json:"swordless_mode"`
	NiceItems           NiceItems    `yaml:"nice_items" json:"nice_items"`
	SuperItems          bool         `yaml:"super_items" json:"super_items"`
	WeatherVanes        WeatherVanes `yaml:"weather_vanes" json:"weather_vanes"`
	Keysy               Keysy        `yaml:"keysy" json:"keysy"`

	StartWithMerge bool `yaml:"start_with_merge" json:"start_with_merge"`
	StartWithPouch bool `yaml:"start_with_pouch" json:"start_with_pouch"`

	BellInShop    bool `yaml:"bell_in_shop" json:"bell_in_shop"`
	SwordInShop   bool `yaml:"sword_in_shop" json:"sword_in_shop"`
	BootsInShop   bool `yaml:"boots_in_shop" json:"boots_in_shop"`
	AssuredWeapon bool `yaml:"assured_weapon" json:"assured_weapon"`

	ProgressiveBowOfLight bool `yaml:"progressive_bow_of_light" json:"progressive_bow_of_light"`
	BowOfLightInCastle    bool `yaml:"bow_of_light_in_castle" json:"bow_of_light_in_castle"`

	MinigamesExcluded bool     `yaml:"minigames_excluded" json:"minigames_excluded"`
	DarkRoomsLampless bool     `yaml:"dark_rooms_lampless" json:"dark_rooms_lampless"`
	Exclusions        []string `yaml:"exclusions,omitempty" json:"exclusions,omitempty"`
}

// Default returns the settings used when no preset is given.
func Default() *Settings {
	return &Settings{
		Preset:              "default",
		Logic:               logic.Normal,
		LCRequirement:       MaxSages,
		YuganonRequirement:  MaxSages,
		PedRequirement:      PedestalStandard,
		DungeonPrizeShuffle: true,
		TrialsDoor:          OneTrialRequired,
		NiceItems:           NiceVanilla,
		WeatherVanes:        VanesStandard,
		Keysy:               KeysyOff,
	}
}

// Validate rejects combinations that cannot produce a seed.
func (s *Settings) Validate() error {
	if s.Logic > logic.NoLogic {
		return failure.Configuration("invalid logic tier %d", s.Logic)
	}
	if s.LCRequirement < 0 || s.LCRequirement > MaxSages {
		return failure.Configuration("lc_requirement must be between 0 and %d, got %d", MaxSages, s.LCRequirement)
	}
	if s.YuganonRequirement != s.LCRequirement {
		return failure.Configuration("yuganon_requirement (%d) must equal lc_requirement (%d)",
			s.YuganonRequirement, s.LCRequirement)
	}
	if s.ProgressiveBowOfLight && s.BowOfLightInCastle {
		return failure.Configuration("progressive_bow_of_light and bow_of_light_in_castle cannot both be set")
	}
	if s.SwordInShop && s.SwordlessMode {
		return failure.Configuration("sword_in_shop and swordless_mode cannot both be set")
	}
	if s.AssuredWeapon && (s.SwordInShop || s.BootsInShop) {
		return failure.Configuration("assured_weapon cannot be combined with sword_in_shop or boots_in_shop")
	}
	if s.TrialsDoor > AllTrialsRequired {
		return failure.Configuration("invalid trials_door %d", s.TrialsDoor)
	}
	return nil
}

// Clone returns a deep copy.
func (s *Settings) Clone() *Settings {
	c := *s
	c.Exclusions = slices.Clone(s.Exclusions)
	return &c
}

// Canonical returns a stable YAML encoding used to hash a seed.
func (s *Settings) Canonical() ([]byte, error) {
	c := s.Clone()
	slices.Sort(c.Exclusions)
	return yaml.Marshal(c)
}

// Excluded reports whether the named check was excluded by the player.
func (s *Settings) Excluded(check string) bool {
	return slices.Contains(s.Exclusions, check)
}
