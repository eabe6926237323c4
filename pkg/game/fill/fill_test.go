package fill

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"ravio/pkg/game/failure"
	"ravio/pkg/game/items"
	"ravio/pkg/game/layout"
	"ravio/pkg/game/logic"
	"ravio/pkg/game/pools"
	"ravio/pkg/game/progress"
	"ravio/pkg/game/settings"
	"ravio/pkg/game/trials"
	"ravio/pkg/game/world"
)

func rng(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, seed)) }

// triangle builds one location with checks A, B and C. A is always open, B
// needs the Lamp and C is gated by gateC.
func triangle(t *testing.T, gateC logic.Gate) *world.World {
	t.Helper()
	w, err := world.Build("Field", logic.Open(), &world.Location{
		ID: "Field",
		Checks: []*world.Check{
			{Name: "A", Gate: logic.Open()},
			{Name: "B", Gate: logic.Normal(logic.Has(items.Lamp))},
			{Name: "C", Gate: gateC},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func start() *progress.Progress { return progress.New(settings.Default(), 0) }

func TestPlace_UnreachableCheckAlwaysFails(t *testing.T) {
	w := triangle(t, logic.Normal(logic.Has(items.Hammer)))
	for seed := range uint64(200) {
		pl := &pools.Pools{Progression: []items.Item{items.Lamp, items.Hammer}}
		r := rng(seed)
		r.Shuffle(len(pl.Progression), func(i, j int) {
			pl.Progression[i], pl.Progression[j] = pl.Progression[j], pl.Progression[i]
		})
		err := Place(layout.New(w), start(), pl, r)
		if !errors.Is(err, failure.ErrUnfillable) {
			t.Fatalf("seed %d: err = %v, want unfillable", seed, err)
		}
	}
}

func TestPlace_OpenChecksTakeAnything(t *testing.T) {
	w := triangle(t, logic.Open())
	c, _ := w.Check("C")

	seen := map[items.Item]bool{}
	for seed := range uint64(300) {
		pl := &pools.Pools{
			Progression: []items.Item{items.Lamp, items.Hammer},
			Junk:        []items.Item{items.RupeeGreen},
		}
		plan := layout.New(w)
		if err := Place(plan, start(), pl, rng(seed)); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if !plan.Complete() {
			t.Fatalf("seed %d: plan incomplete", seed)
		}

		got := plan.Items()
		slices.Sort(got)
		want := []items.Item{items.Lamp, items.Hammer, items.RupeeGreen}
		slices.Sort(want)
		if !slices.Equal(got, want) {
			t.Fatalf("seed %d: placed %v, want %v", seed, got, want)
		}
		seen[plan.Get(c)] = true
	}
	for _, it := range []items.Item{items.Lamp, items.Hammer, items.RupeeGreen} {
		if !seen[it] {
			t.Errorf("%v never landed on C", it)
		}
	}
}

func TestPlace_JunkCountMismatch(t *testing.T) {
	w := triangle(t, logic.Open())
	pl := &pools.Pools{Progression: []items.Item{items.Lamp}, Junk: []items.Item{items.RupeeGreen}}
	if err := Place(layout.New(w), start(), pl, rng(1)); !errors.Is(err, failure.ErrUnfillable) {
		t.Fatalf("err = %v, want unfillable", err)
	}
}

func TestPlace_Deterministic(t *testing.T) {
	w := triangle(t, logic.Open())
	run := func() *layout.Plan {
		pl := &pools.Pools{
			Progression: []items.Item{items.Lamp, items.Hammer},
			Junk:        []items.Item{items.RupeeGreen},
		}
		plan := layout.New(w)
		if err := Place(plan, start(), pl, rng(42)); err != nil {
			t.Fatal(err)
		}
		return plan
	}
	if a, b := run(), run(); !a.Equal(b) {
		t.Errorf("same seed gave %v and %v", a.Items(), b.Items())
	}
}

// fillDefault tries seeds until the default world fills and returns the first
// success. Failed seeds must only ever fail as unfillable.
func fillDefault(t *testing.T, s *settings.Settings) *layout.Plan {
	t.Helper()
	w, err := world.Default()
	if err != nil {
		t.Fatal(err)
	}
	for seed := range uint64(20) {
		r := rng(seed)
		tc := trials.Select(s.TrialsDoor, r)
		pl, err := pools.Build(w, s, r)
		if err != nil {
			t.Fatal(err)
		}
		plan, err := Fill(w, s, tc, &pl, r)
		if err == nil {
			return plan
		}
		if !failure.Retryable(err) {
			t.Fatalf("seed %d: %v", seed, err)
		}
	}
	t.Fatal("no seed out of 20 filled the default world")
	return nil
}

func TestFill_DefaultWorld(t *testing.T) {
	s := settings.Default()
	plan := fillDefault(t, s)
	if !plan.Complete() {
		t.Fatal("plan incomplete")
	}

	for _, st := range shopStock {
		c, _ := plan.World().Check(st.check)
		if got := plan.Get(c); got != st.item {
			t.Errorf("%s holds %v, want %v", st.check, got, st.item)
		}
	}

	plan.Each(func(c *world.Check, it items.Item) {
		if c.IsQuest() && it != c.Quest {
			t.Errorf("quest %s holds %v", c.Name, it)
		}
		if it.IsPrize() != (c.Kind == world.KindPrize) {
			t.Errorf("%s holds %v", c.Name, it)
		}
		if d, ok := it.Owner(); ok {
			if cd, in := c.Dungeon(); !in || cd != d {
				t.Errorf("%v placed outside its dungeon at %s", it, c.DisplayName())
			}
		}
	})
}

func TestFill_Deterministic(t *testing.T) {
	w, err := world.Default()
	if err != nil {
		t.Fatal(err)
	}
	s := settings.Default()
	run := func() (*layout.Plan, error) {
		r := rng(99)
		pl, err := pools.Build(w, s, r)
		if err != nil {
			t.Fatal(err)
		}
		return Fill(w, s, trials.Select(s.TrialsDoor, r), &pl, r)
	}
	a, errA := run()
	b, errB := run()
	if (errA == nil) != (errB == nil) {
		t.Fatalf("errors differ: %v vs %v", errA, errB)
	}
	if errA == nil && !a.Equal(b) {
		t.Error("same seed gave different plans")
	}
}

func TestFill_Exclusions(t *testing.T) {
	s := settings.Default()
	s.MinigamesExcluded = true
	s.Exclusions = []string{"Link's House", "[EP] (1F) Left Door Chest"}
	plan := fillDefault(t, s)

	for _, name := range s.Exclusions {
		c, _ := plan.World().Check(name)
		if it := plan.Get(c); it.Category() != items.CategoryJunk {
			t.Errorf("excluded %s holds %v", name, it)
		}
	}
	for _, c := range plan.World().ChecksOfKind(world.KindMinigame) {
		if it := plan.Get(c); it.Category() != items.CategoryJunk {
			t.Errorf("minigame %s holds %v", c.Name, it)
		}
	}
}

func TestFill_VanillaUpgrades(t *testing.T) {
	s := settings.Default()
	s.NiceItems = settings.NiceVanilla
	plan := fillDefault(t, s)
	for _, it := range pools.NiceUpgrades() {
		c, _ := plan.World().Check(MaiamaiCheck(it))
		if got := plan.Get(c); got != it {
			t.Errorf("%s holds %v, want %v", c.Name, got, it)
		}
	}
}

func TestFill_ShopGuarantees(t *testing.T) {
	s := settings.Default()
	s.BellInShop = true
	s.BootsInShop = true
	plan := fillDefault(t, s)

	var stock []items.Item
	for _, c := range plan.World().ChecksOfKind(world.KindShop) {
		if strings.HasPrefix(c.Name, "Ravio's Shop") {
			stock = append(stock, plan.Get(c))
		}
	}
	for _, it := range []items.Item{items.Bell, items.PegasusBoots} {
		if !slices.Contains(stock, it) {
			t.Errorf("Ravio's Shop has no %v: %v", it, stock)
		}
	}
}

func TestFill_UnknownExclusion(t *testing.T) {
	w, err := world.Default()
	if err != nil {
		t.Fatal(err)
	}
	s := settings.Default()
	s.Exclusions = []string{"Nowhere Chest"}
	r := rng(1)
	pl, err := pools.Build(w, s, r)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Fill(w, s, 0, &pl, r); !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("err = %v, want configuration error", err)
	}
}

func TestFill_PoolSizeMismatch(t *testing.T) {
	w, err := world.Default()
	if err != nil {
		t.Fatal(err)
	}
	pl := &pools.Pools{Progression: []items.Item{items.Lamp}}
	if _, err := Fill(w, settings.Default(), 0, pl, rng(1)); !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("err = %v, want configuration error", err)
	}
}

func TestPreflight(t *testing.T) {
	w, err := world.Default()
	if err != nil {
		t.Fatal(err)
	}
	s := settings.Default()
	pl, err := pools.Build(w, s, rng(1))
	if err != nil {
		t.Fatal(err)
	}
	all := trials.Config(0)
	for _, tr := range trials.All() {
		all |= 1 << tr
	}
	if err := Preflight(w, s, all, pl); err != nil {
		t.Fatalf("Preflight(default) = %v", err)
	}

	broken := triangle(t, logic.Normal(logic.Has(items.Hammer)))
	err = Preflight(broken, s, 0, pools.Pools{Progression: []items.Item{items.Lamp}})
	if !errors.Is(err, failure.ErrConfiguration) || !strings.Contains(err.Error(), "C") {
		t.Fatalf("err = %v, want configuration error naming C", err)
	}
}
