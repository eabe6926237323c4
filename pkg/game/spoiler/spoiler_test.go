package spoiler

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"ravio/pkg/game/generate"
	"ravio/pkg/game/hints"
	"ravio/pkg/game/items"
	"ravio/pkg/game/layout"
	"ravio/pkg/game/logic"
	"ravio/pkg/game/progress"
	"ravio/pkg/game/settings"
	"ravio/pkg/game/spheres"
	"ravio/pkg/game/trials"
	"ravio/pkg/game/world"
)

func sample(t *testing.T) *generate.Seed {
	t.Helper()
	w, err := world.Build("House", logic.Normal(logic.Has(items.Triforce)),
		&world.Location{
			ID: "House",
			Checks: []*world.Check{
				{Name: "Table", Gate: logic.Open()},
				{Name: "Bed", Gate: logic.Open()},
			},
			Paths: []world.Path{{To: "Cellar", Gate: logic.Normal(logic.Has(items.Lamp))}},
		},
		&world.Location{
			ID:     "Cellar",
			Checks: []*world.Check{{Name: "Boss", Gate: logic.Open(), Quest: items.Triforce}},
		},
	)
	require.NoError(t, err)

	plan := layout.New(w)
	for name, it := range map[string]items.Item{"Table": items.Lamp, "Bed": items.RupeeRed, "Boss": items.Triforce} {
		c, _ := w.Check(name)
		require.NoError(t, plan.Assign(c, it))
	}
	s := settings.Default()
	tc := trials.Config(1 << trials.Lamp)
	return &generate.Seed{
		Seed:        12,
		Hash:        "(A) (B) (X) (Y) (L)",
		RunID:       uuid.New(),
		Settings:    s,
		Trials:      tc,
		Plan:        plan,
		Playthrough: spheres.Search(plan, progress.Start(s, tc)),
		Attempts:    3,
	}
}

func TestNew(t *testing.T) {
	seed := sample(t)
	r := New(seed)

	assert.Equal(t, uint32(12), r.Seed)
	assert.Equal(t, seed.RunID.String(), r.RunID)
	assert.Equal(t, []string{"Lamp Trial"}, r.Trials)
	require.Len(t, r.Playthrough, 2)
	assert.Equal(t, Placement{Check: "House: Table", Item: "Lamp"}, r.Playthrough[0].Items[0])

	require.Len(t, r.Layout, 1, "the quest-only cellar has no layout entry")
	assert.Equal(t, "House", r.Layout[0].Location)
	assert.Len(t, r.Layout[0].Checks, 2)
}

func TestNew_Hints(t *testing.T) {
	seed := sample(t)
	table, _ := seed.World().Check("Table")
	bed, _ := seed.World().Check("Bed")
	seed.Hints = hints.Hints{
		Path:       []hints.Path{{Dungeon: items.DarkPalace, Check: table, Item: items.Lamp}},
		Always:     []hints.Location{{Check: bed, Item: items.RupeeRed}},
		BowOfLight: bed,
	}
	r := New(seed)

	assert.Equal(t, []PathHint{{Boss: "Dark Palace", Check: "House: Table", Item: "Lamp"}}, r.Hints.Path)
	assert.Equal(t, []Placement{{Check: "House: Bed", Item: items.RupeeRed.String()}}, r.Hints.Always)
	assert.Empty(t, r.Hints.Sometimes)
	assert.Equal(t, "House: Bed", r.Hints.BowOfLight)

	var buf bytes.Buffer
	require.NoError(t, r.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "bow_of_light:")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(sample(t)).WriteJSON(&buf))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "(A) (B) (X) (Y) (L)", got["hash"])
	assert.Equal(t, "normal", got["settings"].(map[string]any)["logic"])
	assert.Contains(t, got, "playthrough")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(sample(t)).WriteYAML(&buf))

	var got struct {
		Seed     uint32            `yaml:"seed"`
		Settings settings.Settings `yaml:"settings"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, uint32(12), got.Seed)
	assert.Equal(t, settings.Default().NiceItems, got.Settings.NiceItems)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path, err := New(sample(t)).Write(dir, YAML)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "0000000012_spoiler.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run_id:")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)
	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestSummary_PlainWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Summary(sample(t), true)
	out := buf.String()

	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "Hash: (A) (B) (X) (Y) (L)")
	assert.Contains(t, out, "Trials: Lamp Trial")
	assert.Contains(t, out, "Sphere 0")
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 80, "line %q", line)
	}
}
