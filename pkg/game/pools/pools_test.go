package pools

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	engine "ravio/pkg/engine/logic"
	"ravio/pkg/game/failure"
	"ravio/pkg/game/items"
	"ravio/pkg/game/logic"
	"ravio/pkg/game/settings"
	"ravio/pkg/game/world"
)

func rng(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, seed)) }

func defaultWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.Default()
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestBuild_CoversEveryCheck(t *testing.T) {
	w := defaultWorld(t)
	for _, name := range settings.Presets() {
		s, err := settings.Load(name)
		if err != nil {
			t.Fatal(err)
		}
		p, err := Build(w, s, rng(1))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if p.Len() != w.Randomizable() {
			t.Errorf("%s: %d items for %d checks", name, p.Len(), w.Randomizable())
		}
	}
}

func TestBuild_SegmentOrder(t *testing.T) {
	p, err := Build(defaultWorld(t), settings.Default(), rng(7))
	if err != nil {
		t.Fatal(err)
	}
	at := 0
	expect := func(n int, cat items.Category) {
		t.Helper()
		for i := at; i < at+n; i++ {
			if got := p.Progression[i].Category(); got != cat {
				t.Fatalf("Progression[%d] = %v (%v), want %v", i, p.Progression[i], got, cat)
			}
		}
		at += n
	}
	expect(10, items.CategoryPrize)
	expect(10, items.CategoryBigKey)
	expect(38, items.CategorySmallKey)
	expect(11, items.CategoryCompass)
}

func TestBuild_Deterministic(t *testing.T) {
	w := defaultWorld(t)
	a, _ := Build(w, settings.Default(), rng(42))
	b, _ := Build(w, settings.Default(), rng(42))
	if !slices.Equal(a.Progression, b.Progression) || !slices.Equal(a.Junk, b.Junk) {
		t.Errorf("same seed built different pools")
	}
}

func TestBuild_Settings(t *testing.T) {
	w := defaultWorld(t)
	count := func(p Pools, it items.Item) int {
		n := 0
		for _, x := range p.Progression {
			if x == it {
				n++
			}
		}
		return n
	}

	s := settings.Default()
	s.SwordlessMode = true
	s.Keysy = settings.KeysyAll
	s.StartWithMerge = true
	s.Logic = engine.Hell
	p, err := Build(w, s, rng(3))
	if err != nil {
		t.Fatal(err)
	}
	for _, it := range []items.Item{items.Sword, items.EasternSmallKey, items.EasternBigKey, items.RaviosBracelet, items.BeeBadge} {
		if n := count(p, it); n != 0 {
			t.Errorf("pool holds %d %v", n, it)
		}
	}

	s = settings.Default()
	s.ProgressiveBowOfLight = true
	s.NiceItems = settings.NiceOff
	p, _ = Build(w, s, rng(3))
	if count(p, items.BowOfLight) != 0 || count(p, items.Bow) != 2 {
		t.Errorf("progressive bow: %d Bow of Light, %d Bow", count(p, items.BowOfLight), count(p, items.Bow))
	}
}

func TestBuild_TooFewChecks(t *testing.T) {
	w, err := world.Build("A", logic.Open(), &world.Location{
		ID:     "A",
		Checks: []*world.Check{{Name: "Only", Gate: logic.Open()}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Build(w, settings.Default(), rng(1)); !errors.Is(err, failure.ErrConfiguration) {
		t.Errorf("err = %v, want configuration error", err)
	}
}

func TestRemoveAndTakeJunk(t *testing.T) {
	p := Pools{
		Progression: []items.Item{items.Lamp, items.Bow, items.Lamp},
		Junk:        []items.Item{items.RupeeRed},
	}
	if !p.Remove(items.Lamp) || len(p.Progression) != 2 {
		t.Errorf("Remove(Lamp) left %v", p.Progression)
	}
	if p.Remove(items.Hammer) {
		t.Errorf("Remove(Hammer) found a hammer")
	}
	if it, ok := p.TakeJunk(rng(1)); !ok || it != items.RupeeRed {
		t.Errorf("TakeJunk = %v, %v", it, ok)
	}
	if _, ok := p.TakeJunk(rng(1)); ok {
		t.Errorf("TakeJunk on empty junk succeeded")
	}
}
