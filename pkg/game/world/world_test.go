package world

import (
	"errors"
	"testing"

	engine "ravio/pkg/engine/logic"
	"ravio/pkg/game/failure"
	"ravio/pkg/game/items"
	"ravio/pkg/game/logic"
	"ravio/pkg/game/progress"
	"ravio/pkg/game/settings"
)

func TestBuild_DuplicateCheck(t *testing.T) {
	a := &Location{ID: "A", Checks: []*Check{chest("Chest", open)}}
	b := &Location{ID: "B", Checks: []*Check{chest("Chest", open)}}
	_, err := Build("A", open, a, b)
	if !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("Build with duplicate check: err = %v, want configuration error", err)
	}
}

func TestBuild_DuplicateLocation(t *testing.T) {
	_, err := Build("A", open, &Location{ID: "A"}, &Location{ID: "A"})
	if !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("err = %v, want configuration error", err)
	}
}

func TestBuild_UnknownPath(t *testing.T) {
	a := &Location{ID: "A", Paths: []Path{{"Nowhere", open}}}
	_, err := Build("A", open, a)
	if !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("err = %v, want configuration error", err)
	}
}

func TestBuild_MissingStart(t *testing.T) {
	_, err := Build("Start", open, &Location{ID: "A"})
	if !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("err = %v, want configuration error", err)
	}
}

func TestBuild_QuestMustHoldQuestItem(t *testing.T) {
	a := &Location{ID: "A", Checks: []*Check{quest("Bad", items.Lamp, open)}}
	if _, err := Build("A", open, a); !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("err = %v, want configuration error", err)
	}
}

func TestBuild_IndexesAndDungeonTags(t *testing.T) {
	a := &Location{ID: "A", Checks: []*Check{
		chest("[EP] Chest", open),
		chest("[HC] Chest", open),
		quest("Event", items.Triforce, open),
	}}
	w, err := Build("A", open, a)
	if err != nil {
		t.Fatal(err)
	}
	if w.Len() != 3 || w.Randomizable() != 2 {
		t.Fatalf("Len, Randomizable = %d, %d, want 3, 2", w.Len(), w.Randomizable())
	}
	for i, c := range w.Checks() {
		if c.Index() != i {
			t.Errorf("%s.Index() = %d, want %d", c.Name, c.Index(), i)
		}
		if c.Location() != a {
			t.Errorf("%s.Location() not linked", c.Name)
		}
	}
	if d, ok := w.Checks()[0].Dungeon(); !ok || d != items.EasternPalace {
		t.Errorf("[EP] Chest dungeon = %v, %v", d, ok)
	}
	if _, ok := w.Checks()[1].Dungeon(); ok {
		t.Errorf("[HC] Chest should not belong to a keyed dungeon")
	}
	if got := w.Checks()[0].DisplayName(); got != "A: [EP] Chest" {
		t.Errorf("DisplayName() = %q", got)
	}
}

func TestDefault_Builds(t *testing.T) {
	w, err := Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	if w.Start().ID != RaviosShop {
		t.Errorf("start = %q, want %q", w.Start().ID, RaviosShop)
	}
	w2, _ := Default()
	if w != w2 {
		t.Errorf("Default() built the world twice")
	}
}

func TestDefault_PrizeChecks(t *testing.T) {
	w, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	prizes := w.ChecksOfKind(KindPrize)
	if len(prizes) != len(items.Prizes()) {
		t.Fatalf("%d prize checks, want %d", len(prizes), len(items.Prizes()))
	}
	for _, d := range items.Dungeons() {
		if d.Prize() == items.None {
			continue
		}
		if _, ok := w.Check(PrizeCheck(d)); !ok {
			t.Errorf("missing prize check for %s", d)
		}
	}
}

// Dungeons must have room for their own keys and compass.
func TestDefault_DungeonCapacity(t *testing.T) {
	w, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	room := make(map[items.Dungeon]int)
	for _, c := range w.Checks() {
		if d, ok := c.Dungeon(); ok && !c.IsQuest() && c.Kind != KindPrize {
			room[d]++
		}
	}
	for _, d := range items.Dungeons() {
		need := d.SmallKeys()
		if d.BigKey() != items.None {
			need++
		}
		if d.Compass() != items.None {
			need++
		}
		if room[d] < need {
			t.Errorf("%s has %d checks for %d dungeon items", d, room[d], need)
		}
	}
}

func TestDefault_StaticCheckNames(t *testing.T) {
	w, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		"Kakariko Item Shop (1)", "Lakeside Item Shop (3)", "Mysterious Man",
		"Thieves' Town Item Shop (1)", "Lorule Lakeside Item Shop (1)",
		"Maiamai Bow Upgrade", "Maiamai Sand Rod Upgrade", "Ravio's Shop (9)", "[LC] Zelda",
	} {
		if _, ok := w.Check(name); !ok {
			t.Errorf("missing check %q", name)
		}
	}
	if c, _ := w.Check("Yuga Ganon"); c == nil || c.Quest != items.Triforce {
		t.Errorf("Yuga Ganon should hold the Triforce")
	}
}

func TestDefault_BeeGuyHellLogic(t *testing.T) {
	w, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	c, ok := w.Check("Bee Guy (2)")
	if !ok {
		t.Fatal("missing Bee Guy (2)")
	}
	for _, tc := range []struct {
		tier  engine.Tier
		badge bool
		want  bool
	}{
		{engine.Normal, false, false},
		{engine.Normal, true, true},
		{engine.Glitched, false, false},
		{engine.Hell, false, true},
	} {
		s := settings.Default()
		s.Logic = tc.tier
		p := progress.New(s, 0)
		p.Add(items.Bottle)
		p.Add(items.Net)
		if tc.badge {
			p.Add(items.BeeBadge)
		}
		if got := logic.CanPass(c.Gate, p); got != tc.want {
			t.Errorf("%v, badge %v: CanPass = %v, want %v", tc.tier, tc.badge, got, tc.want)
		}
	}
}
