// Package hints picks the checks worth pointing a player at once a seed is
// filled. Path hints name an item the player cannot beat a sage's boss
// without; always and sometimes hints simply say what a check holds.
package hints

import (
	"math/rand/v2"
	"slices"

	"ravio/pkg/game/items"
	"ravio/pkg/game/layout"
	"ravio/pkg/game/progress"
	"ravio/pkg/game/search"
	"ravio/pkg/game/world"
)

// Total is the number of location and path hints handed out per seed.
const Total = 29

// Location says which item a check holds.
type Location struct {
	Check *world.Check
	Item  items.Item
}

// Path says that the item on Check is needed to reach the boss of Dungeon,
// whose prize is a sage.
type Path struct {
	Dungeon items.Dungeon
	Check   *world.Check
	Item    items.Item
}

type Hints struct {
	Path      []Path
	Always    []Location
	Sometimes []Location
	// BowOfLight is where the Bow of Light was placed, nil when it is not in
	// the seed.
	BowOfLight *world.Check
}

var alwaysChecks = []string{
	"Master Sword Pedestal",
	"Great Rupee Fairy",
	"Blacksmith (Lorule)",
	"Bouldering Guy's Cave",
	"Octoball Derby",
	"Treacherous Tower",
}

var sometimesChecks = []string{
	"Bee Guy (2)",
	"Bird Lover",
	"Blacksmith",
	"Blacksmith Cave",
	"Cucco Mini-Dungeon",
	"Death Mountain Treasure Dungeon",
	"Donkey Cave Pegs",
	"Eastern Ruins Peg Circle",
	"Eastern Ruins Treasure Dungeon",
	"Fire Cave Pillar",
	"Floating Island",
	"Graveyard Ledge Cave",
	"Ice Gimos Fight",
	"Ice Rod Cave",
	"Irene",
	"Ku's Domain Fight",
	"Lorule Field Treasure Dungeon",
	"Milk Bar Owner",
	"Misery Mire Ledge",
	"Misery Mire Treasure Dungeon",
	"Philosopher's Cave",
	"Zora Queen",
	"Rosso's House",
	"Rosso Rocks",
	"Shady Guy",
	"Spectacle Rock",
	"Southern Ruins Treasure Dungeon",
	"Street Merchant (Right)",
	"Thief Girl",
	"Waterfall Cave",
	"Wildlife Clearing Stump",
	"Woman",
	"Zora's River Treasure Dungeon",
	"[LC] Zelda",
	"[EP] (3F) Escape Chest",
	"[HC] Battlement",
	"[HC] West Wing",
	"[HoG] (3F) Fire Bubbles",
	"[HoG] (2F) Fire Ring",
	"[ToH] (8F) Fairy Room",
	"[PD] (2F) Big Chest (Hidden)",
	"[SW] (B1) Big Chest (Eyes)",
	"[T'H] (B3) Big Chest (Hidden)",
	"[TR] (B1) Big Chest (Center)",
	"[LC] (3F) Tile Trial Chest",
	"[LC] (4F) Lamp Trial Chest",
	"[LC] (4F) Hookshot Trial Chest",
	"Rupee Rush (Lorule)",
	"Hyrule Hotfoot (First Race)",
	"Cucco Ranch",
}

type generator struct {
	plan  *layout.Plan
	start *progress.Progress
	rng   *rand.Rand
	taken []bool
}

// Generate picks the hints for a filled plan. start is the Progress the
// player begins with; it is not modified. A check is hinted at most once,
// and checks the player excluded are never hinted.
func Generate(plan *layout.Plan, start *progress.Progress, rng *rand.Rand) Hints {
	g := &generator{
		plan:  plan,
		start: start,
		rng:   rng,
		taken: make([]bool, plan.World().Len()),
	}

	var h Hints
	h.Always = g.locations(alwaysChecks, len(alwaysChecks))
	h.Path = g.paths()

	sometimes := slices.Clone(sometimesChecks)
	rng.Shuffle(len(sometimes), func(i, j int) { sometimes[i], sometimes[j] = sometimes[j], sometimes[i] })
	h.Sometimes = g.locations(sometimes, Total-len(h.Always)-len(h.Path))

	h.BowOfLight = find(plan, items.BowOfLight)
	return h
}

func (g *generator) locations(names []string, n int) []Location {
	var out []Location
	for _, name := range names {
		if len(out) >= n {
			break
		}
		c, ok := g.plan.World().Check(name)
		if !ok || g.taken[c.Index()] || !g.plan.Filled(c) || !g.hintable(c) {
			continue
		}
		g.taken[c.Index()] = true
		out = append(out, Location{Check: c, Item: g.plan.Get(c)})
	}
	return out
}

func (g *generator) hintable(c *world.Check) bool {
	s := g.start.Settings()
	if s.Excluded(c.Name) {
		return false
	}
	return !(s.MinigamesExcluded && c.Kind == world.KindMinigame)
}

// paths picks one path hint per sage boss. Bosses with nothing to hint are
// made up for with spare candidates of the other bosses.
func (g *generator) paths() []Path {
	w := g.plan.World()
	dungeons := items.Dungeons()
	g.rng.Shuffle(len(dungeons), func(i, j int) { dungeons[i], dungeons[j] = dungeons[j], dungeons[i] })

	var chosen, spare []Path
	missing := 0
	for _, d := range dungeons {
		prize, ok := w.Check(world.PrizeCheck(d))
		if !ok || !slices.Contains(items.Sages(), g.plan.Get(prize)) {
			continue
		}
		p, rest, ok := g.choose(g.candidates(d, prize))
		if !ok {
			missing++
			continue
		}
		chosen = append(chosen, p)
		spare = append(spare, rest...)
	}

	g.rng.Shuffle(len(spare), func(i, j int) { spare[i], spare[j] = spare[j], spare[i] })
	for ; missing > 0; missing-- {
		p, rest, ok := g.choose(spare)
		if !ok {
			break
		}
		chosen = append(chosen, p)
		spare = rest
	}
	return chosen
}

func (g *generator) choose(cands []Path) (Path, []Path, bool) {
	for i, p := range cands {
		if g.taken[p.Check.Index()] {
			continue
		}
		g.taken[p.Check.Index()] = true
		return p, cands[i+1:], true
	}
	return Path{}, nil, false
}

// candidates lists, in random order, the checks whose item the player must
// collect before goal can be.
func (g *generator) candidates(d items.Dungeon, goal *world.Check) []Path {
	var out []Path
	for _, c := range g.before(goal) {
		it := g.plan.Get(c)
		if !isPathItem(it) || g.taken[c.Index()] || !g.hintable(c) {
			continue
		}
		if g.reaches(goal, c) {
			continue
		}
		out = append(out, Path{Dungeon: d, Check: c, Item: it})
	}
	g.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// before returns the checks a sweep collects up to and including the wave
// that collects goal.
func (g *generator) before(goal *world.Check) []*world.Check {
	sw := search.NewSweep(g.plan, g.start.Clone())
	var out []*world.Check
	for {
		wave, grew := sw.Step()
		out = append(out, wave...)
		if sw.Collected(goal) || !grew {
			return out
		}
	}
}

// reaches reports whether goal can still be collected with without's item
// left behind.
func (g *generator) reaches(goal, without *world.Check) bool {
	sw := search.NewSweep(g.plan, g.start.Clone())
	sw.Skip(without)
	sw.Run()
	return sw.Collected(goal)
}

func isPathItem(it items.Item) bool {
	return it.Category() == items.CategoryMajor && it.IsProgression()
}

func find(plan *layout.Plan, it items.Item) *world.Check {
	for _, c := range plan.World().Checks() {
		if plan.Get(c) == it {
			return c
		}
	}
	return nil
}
