// Package search walks the world graph under a given Progress.
package search

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"ravio/pkg/game/logic"
	"ravio/pkg/game/progress"
	"ravio/pkg/game/world"
)

// Reachable returns every check whose location can be entered from the start
// and whose own gate passes under p. The result is in world index order, so
// calling it twice with the same Progress yields the same slice contents.
func Reachable(w *world.World, p *progress.Progress) []*world.Check {
	visited := mapset.New[world.LocationID]()
	pending := queue.New[*world.Location]()

	start := w.Start()
	visited.Put(start.ID)
	pending.Enqueue(start)

	hit := make([]bool, w.Len())
	for !pending.Empty() {
		loc := pending.Dequeue()
		for _, c := range loc.Checks {
			if logic.CanPass(c.Gate, p) {
				hit[c.Index()] = true
			}
		}
		for _, path := range loc.Paths {
			if visited.Has(path.To) || !logic.CanPass(path.Gate, p) {
				continue
			}
			next, ok := w.Location(path.To)
			if !ok {
				continue
			}
			visited.Put(path.To)
			pending.Enqueue(next)
		}
	}

	var out []*world.Check
	for _, c := range w.Checks() {
		if hit[c.Index()] {
			out = append(out, c)
		}
	}
	return out
}

// Locations returns the IDs of every location reachable under p.
func Locations(w *world.World, p *progress.Progress) []world.LocationID {
	visited := mapset.New[world.LocationID]()
	pending := queue.New[*world.Location]()
	visited.Put(w.Start().ID)
	pending.Enqueue(w.Start())
	for !pending.Empty() {
		loc := pending.Dequeue()
		for _, path := range loc.Paths {
			if visited.Has(path.To) || !logic.CanPass(path.Gate, p) {
				continue
			}
			if next, ok := w.Location(path.To); ok {
				visited.Put(path.To)
				pending.Enqueue(next)
			}
		}
	}

	var out []world.LocationID
	for _, loc := range w.Locations() {
		if visited.Has(loc.ID) {
			out = append(out, loc.ID)
		}
	}
	return out
}
