package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ravio/pkg/engine/logic"
	"ravio/pkg/game/failure"
)

func TestDefault_Valid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"lc requirement too high", func(s *Settings) { s.LCRequirement, s.YuganonRequirement = 8, 8 }},
		{"lc requirement negative", func(s *Settings) { s.LCRequirement, s.YuganonRequirement = -1, -1 }},
		{"yuganon differs", func(s *Settings) { s.YuganonRequirement = 3 }},
		{"bow of light twice", func(s *Settings) { s.ProgressiveBowOfLight, s.BowOfLightInCastle = true, true }},
		{"sword in shop while swordless", func(s *Settings) { s.SwordInShop, s.SwordlessMode = true, true }},
		{"assured weapon with boots", func(s *Settings) { s.AssuredWeapon, s.BootsInShop = true, true }},
		{"assured weapon with sword", func(s *Settings) { s.AssuredWeapon, s.SwordInShop = true, true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			err := s.Validate()
			assert.ErrorIs(t, err, failure.ErrConfiguration)
		})
	}
}

func TestLoad_EmbeddedPresets(t *testing.T) {
	names := Presets()
	require.Contains(t, names, "standard")
	for _, name := range names {
		s, err := Load(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, s.Preset)
	}

	s, err := Load("hard")
	require.NoError(t, err)
	assert.Equal(t, logic.Hard, s.Logic)
	assert.Equal(t, AllTrialsRequired, s.TrialsDoor)
	assert.True(t, s.SuperItems)

	k, err := Load("keysy")
	require.NoError(t, err)
	assert.Equal(t, KeysyAll, k.Keysy)
	assert.Equal(t, NiceOff, k.NiceItems)
	assert.False(t, k.DungeonPrizeShuffle)
}

func TestLoad_UnknownPreset(t *testing.T) {
	_, err := Load("does-not-exist")
	assert.ErrorIs(t, err, failure.ErrConfiguration)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "mine.yaml")
	require.NoError(t, os.WriteFile(p, []byte("logic: glitched\nweather_vanes: lorule\nexclusions: [\"Lake Hylia Dark Cave\"]\n"), 0o644))

	s, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "mine", s.Preset)
	assert.Equal(t, logic.Glitched, s.Logic)
	assert.True(t, s.WeatherVanes.Lorule())
	assert.False(t, s.WeatherVanes.Hyrule())
	assert.True(t, s.Excluded("Lake Hylia Dark Cave"))
	// Fields absent from the file keep their defaults.
	assert.Equal(t, MaxSages, s.LCRequirement)
}

func TestLoad_MissingFileIsNotConfiguration(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, errors.Is(err, failure.ErrConfiguration))
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("logic: normal\nportal_shuffle: true\n"), "bad")
	assert.ErrorIs(t, err, failure.ErrConfiguration)
}

func TestParse_BadEnum(t *testing.T) {
	_, err := Parse([]byte("keysy: sometimes\n"), "bad")
	assert.ErrorIs(t, err, failure.ErrConfiguration)
}

func TestCanonical_Stable(t *testing.T) {
	a := Default()
	a.Exclusions = []string{"b", "a"}
	b := Default()
	b.Exclusions = []string{"a", "b"}
	ca, err := a.Canonical()
	require.NoError(t, err)
	cb, err := b.Canonical()
	require.NoError(t, err)
	assert.Equal(t, string(ca), string(cb))
	assert.Equal(t, []string{"b", "a"}, a.Exclusions, "Canonical must not reorder the receiver")
}

func TestTrialsDoor_Required(t *testing.T) {
	assert.Equal(t, 0, OpenFromBothSides.Required())
	assert.Equal(t, 2, TwoTrialsRequired.Required())
	assert.Equal(t, 4, AllTrialsRequired.Required())
}
