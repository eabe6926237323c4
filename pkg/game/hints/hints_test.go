package hints

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"ravio/pkg/game/failure"
	"ravio/pkg/game/fill"
	"ravio/pkg/game/items"
	"ravio/pkg/game/layout"
	"ravio/pkg/game/logic"
	"ravio/pkg/game/pools"
	"ravio/pkg/game/progress"
	"ravio/pkg/game/search"
	"ravio/pkg/game/settings"
	"ravio/pkg/game/trials"
	"ravio/pkg/game/world"
)

func rng(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, seed)) }

// without copies plan, leaving skip empty.
func without(t *testing.T, plan *layout.Plan, skip *world.Check) *layout.Plan {
	t.Helper()
	out := layout.New(plan.World())
	plan.Each(func(c *world.Check, it items.Item) {
		if c == skip {
			return
		}
		if err := out.Assign(c, it); err != nil {
			t.Fatal(err)
		}
	})
	return out
}

// dungeon is a field with two chests and a Dark Palace whose boss sits
// behind the hookshot.
func dungeon(t *testing.T) (*layout.Plan, *progress.Progress) {
	t.Helper()
	w, err := world.Build("Field", logic.Open(),
		&world.Location{
			ID: "Field",
			Checks: []*world.Check{
				{Name: "Chest A", Gate: logic.Open()},
				{Name: "Chest B", Gate: logic.Open()},
			},
			Paths: []world.Path{{To: "Dark Palace", Gate: logic.Normal(logic.Has(items.Hookshot))}},
		},
		&world.Location{
			ID:     "Dark Palace",
			Checks: []*world.Check{{Name: world.PrizeCheck(items.DarkPalace), Gate: logic.Open(), Kind: world.KindPrize}},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	plan := layout.New(w)
	for name, it := range map[string]items.Item{
		"Chest A":                          items.Hookshot,
		"Chest B":                          items.Lamp,
		world.PrizeCheck(items.DarkPalace): items.SageGulley,
	} {
		c, _ := w.Check(name)
		if err := plan.Assign(c, it); err != nil {
			t.Fatal(err)
		}
	}
	return plan, progress.New(settings.Default(), 0)
}

func TestGenerate_PathHintNamesRequiredItem(t *testing.T) {
	plan, start := dungeon(t)
	h := Generate(plan, start, rng(1))

	if len(h.Path) != 1 {
		t.Fatalf("Path = %v, want one hint", h.Path)
	}
	p := h.Path[0]
	if p.Check.Name != "Chest A" || p.Item != items.Hookshot || p.Dungeon != items.DarkPalace {
		t.Errorf("Path[0] = %s %v %v, want Chest A, hookshot, Dark Palace", p.Check, p.Item, p.Dungeon)
	}
	if start.Len() != 0 {
		t.Errorf("Generate modified the start progress")
	}
	if len(h.Always) != 0 || len(h.Sometimes) != 0 || h.BowOfLight != nil {
		t.Errorf("unexpected location hints: %+v", h)
	}
}

func TestGenerate_NoPathHintForPendants(t *testing.T) {
	plan, start := dungeon(t)
	prize, _ := plan.World().Check(world.PrizeCheck(items.DarkPalace))
	plan = without(t, plan, prize)
	if err := plan.Assign(prize, items.PendantOfPower); err != nil {
		t.Fatal(err)
	}
	if h := Generate(plan, start, rng(1)); len(h.Path) != 0 {
		t.Errorf("Path = %v, want none for a pendant", h.Path)
	}
}

func TestGenerate_SkipsExcludedChecks(t *testing.T) {
	plan, _ := dungeon(t)
	s := settings.Default()
	s.Exclusions = []string{"Chest A"}
	h := Generate(plan, progress.New(s, 0), rng(1))
	if len(h.Path) != 0 {
		t.Errorf("Path = %v, want the excluded chest left out", h.Path)
	}
}

func fillDefault(t *testing.T, seed uint64) (*layout.Plan, *progress.Progress, *rand.Rand) {
	t.Helper()
	w, err := world.Default()
	if err != nil {
		t.Fatal(err)
	}
	s := settings.Default()
	for ; seed < 40; seed++ {
		r := rng(seed)
		tc := trials.Select(s.TrialsDoor, r)
		pl, err := pools.Build(w, s, r)
		if err != nil {
			t.Fatal(err)
		}
		plan, err := fill.Fill(w, s, tc, &pl, r)
		if err == nil {
			return plan, progress.Start(s, tc), r
		}
		if !failure.Retryable(err) {
			t.Fatalf("seed %d: %v", seed, err)
		}
	}
	t.Fatal("no seed filled the default world")
	return nil, nil, nil
}

func TestGenerate_DefaultWorld(t *testing.T) {
	plan, start, r := fillDefault(t, 0)
	h := Generate(plan, start, r)

	if len(h.Path) == 0 {
		t.Fatalf("no path hints in a full seed")
	}
	if len(h.Path) > len(items.Sages()) {
		t.Errorf("%d path hints for %d sages", len(h.Path), len(items.Sages()))
	}
	if n := len(h.Path) + len(h.Always) + len(h.Sometimes); n > Total {
		t.Errorf("%d hints, want at most %d", n, Total)
	}

	seen := make(map[string]bool)
	for _, l := range append(h.Always, h.Sometimes...) {
		if seen[l.Check.Name] {
			t.Errorf("%s hinted twice", l.Check.Name)
		}
		seen[l.Check.Name] = true
		if got := plan.Get(l.Check); got != l.Item {
			t.Errorf("hint says %s holds %v, plan has %v", l.Check.Name, l.Item, got)
		}
	}

	for _, p := range h.Path {
		if seen[p.Check.Name] {
			t.Errorf("%s hinted twice", p.Check.Name)
		}
		seen[p.Check.Name] = true

		prize, _ := plan.World().Check(world.PrizeCheck(p.Dungeon))
		res := search.Verify(without(t, plan, p.Check), start.Clone())
		if res.Beatable() {
			t.Errorf("seed still beatable without %v from %s", p.Item, p.Check.Name)
		}
		reached := true
		for _, c := range res.Unreachable {
			if c == prize {
				reached = false
			}
		}
		if reached {
			t.Errorf("%s reachable without %v from %s", prize.Name, p.Item, p.Check.Name)
		}
	}

	if h.BowOfLight == nil || plan.Get(h.BowOfLight) != items.BowOfLight {
		t.Errorf("BowOfLight = %v", h.BowOfLight)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	plan, start, _ := fillDefault(t, 0)
	a := Generate(plan, start, rng(9))
	b := Generate(plan, start, rng(9))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same plan and seed gave different hints")
	}
}
