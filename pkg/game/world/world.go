package world

import (
	"strings"
	"sync"

	"github.com/zyedidia/generic/mapset"

	"ravio/pkg/game/failure"
	"ravio/pkg/game/items"
	"ravio/pkg/game/logic"
)

// World is the immutable location graph.
type World struct {
	start        *Location
	goal         logic.Gate
	locations    map[LocationID]*Location
	order        []*Location
	checks       []*Check
	byName       map[string]*Check
	randomizable int
}

// Build links the given locations into a World. It fails with a
// configuration error on duplicate check names or location IDs, paths to
// unknown locations, or a missing start location.
func Build(start LocationID, goal logic.Gate, locs ...*Location) (*World, error) {
	w := &World{
		goal:      goal,
		locations: make(map[LocationID]*Location, len(locs)),
		byName:    make(map[string]*Check),
	}

	names := mapset.New[string]()
	for _, loc := range locs {
		if _, dup := w.locations[loc.ID]; dup {
			return nil, failure.Configuration("duplicate location %q", loc.ID)
		}
		w.locations[loc.ID] = loc
		w.order = append(w.order, loc)

		for _, c := range loc.Checks {
			if names.Has(c.Name) {
				return nil, failure.Configuration("duplicate check %q in %q", c.Name, loc.ID)
			}
			names.Put(c.Name)
			if c.Quest != items.None && !c.Quest.IsQuest() {
				return nil, failure.Configuration("check %q holds %v, which is not a quest item", c.Name, c.Quest)
			}
			c.location = loc
			c.index = len(w.checks)
			c.dungeon, c.inDungeon = dungeonTag(c.Name)
			w.checks = append(w.checks, c)
			w.byName[c.Name] = c
			if !c.IsQuest() {
				w.randomizable++
			}
		}
	}

	for _, loc := range locs {
		for _, p := range loc.Paths {
			if _, ok := w.locations[p.To]; !ok {
				return nil, failure.Configuration("path from %q to unknown location %q", loc.ID, p.To)
			}
		}
	}

	s, ok := w.locations[start]
	if !ok {
		return nil, failure.Configuration("start location %q is not part of the world", start)
	}
	w.start = s
	return w, nil
}

// Default returns the full game world, built on first use.
var Default = sync.OnceValues(func() (*World, error) {
	return Build(RaviosShop, goal, regions()...)
})

// Start returns the fixed entry location.
func (w *World) Start() *Location { return w.start }

// Goal is the gate that must pass once every item has been collected.
func (w *World) Goal() logic.Gate { return w.goal }

// Location looks a location up by ID.
func (w *World) Location(id LocationID) (*Location, bool) {
	loc, ok := w.locations[id]
	return loc, ok
}

// Locations returns every location in declaration order.
func (w *World) Locations() []*Location { return w.order }

// Checks returns every check, ordered by Index.
func (w *World) Checks() []*Check { return w.checks }

// Check looks a check up by name.
func (w *World) Check(name string) (*Check, bool) {
	c, ok := w.byName[name]
	return c, ok
}

// Len is the total number of checks, quest checks included.
func (w *World) Len() int { return len(w.checks) }

// Randomizable is the number of checks that take an item from the pools.
func (w *World) Randomizable() int { return w.randomizable }

// ChecksOfKind returns the checks of kind k in index order.
func (w *World) ChecksOfKind(k Kind) []*Check {
	var out []*Check
	for _, c := range w.checks {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

func dungeonTag(name string) (items.Dungeon, bool) {
	if !strings.HasPrefix(name, "[") {
		return 0, false
	}
	end := strings.IndexByte(name, ']')
	if end < 0 {
		return 0, false
	}
	return items.DungeonByAbbrev(name[1:end])
}
