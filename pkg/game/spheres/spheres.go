// Package spheres replays a finished plan wave by wave to produce the
// playthrough shown in spoilers.
package spheres

import (
	"ravio/pkg/game/items"
	"ravio/pkg/game/layout"
	"ravio/pkg/game/progress"
	"ravio/pkg/game/search"
	"ravio/pkg/game/world"
)

// Placement is one progression item and the check it sits in.
type Placement struct {
	Check *world.Check
	Item  items.Item
}

// Sphere holds the progression items that become available together.
type Sphere []Placement

// Playthrough is the ordered list of non-empty spheres.
type Playthrough []Sphere

// Search sweeps plan from p. Sphere 0 is what is reachable with p alone;
// every later sphere is what the items of the earlier ones open up. Waves
// that turn up no progression item are left out. p is consumed.
func Search(plan *layout.Plan, p *progress.Progress) Playthrough {
	sw := search.NewSweep(plan, p)

	var out Playthrough
	for {
		wave, grew := sw.Step()
		if !grew {
			return out
		}
		var sphere Sphere
		for _, c := range wave {
			if it := plan.Get(c); it.IsProgression() {
				sphere = append(sphere, Placement{Check: c, Item: it})
			}
		}
		out = append(out, sphere)
	}
}

// Items flattens the playthrough in sphere order.
func (pt Playthrough) Items() []items.Item {
	var out []items.Item
	for _, s := range pt {
		for _, pl := range s {
			out = append(out, pl.Item)
		}
	}
	return out
}

// Len counts the placements across every sphere.
func (pt Playthrough) Len() int {
	n := 0
	for _, s := range pt {
		n += len(s)
	}
	return n
}
