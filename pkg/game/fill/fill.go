// Package fill places a pool of items into a world so that the result can
// be finished.
//
// Placement is an assumed fill. Items come off the front of the progression
// pool one at a time. Each is dropped on a random empty check that is
// reachable while holding every item still waiting in the pool, plus
// whatever the sweep picks up from checks already filled. Dungeon keys and
// compasses stay in their own dungeon and prizes go to prize checks. Junk
// then fills what is left, and a final sweep from the starting items proves
// the layout can be finished.
package fill

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"ravio/pkg/game/failure"
	"ravio/pkg/game/items"
	"ravio/pkg/game/layout"
	"ravio/pkg/game/pools"
	"ravio/pkg/game/progress"
	"ravio/pkg/game/search"
	"ravio/pkg/game/settings"
	"ravio/pkg/game/trials"
	"ravio/pkg/game/world"
)

// Fill builds a complete placement plan from pl. The pools are consumed.
// It returns an error wrapping failure.ErrUnfillable when this particular
// draw cannot be completed, and failure.ErrConfiguration when no draw could.
func Fill(w *world.World, s *settings.Settings, t trials.Config, pl *pools.Pools, rng *rand.Rand) (*layout.Plan, error) {
	if pl.Len() != w.Randomizable() {
		return nil, failure.Configuration("%d items for %d checks", pl.Len(), w.Randomizable())
	}

	plan := layout.New(w)
	p := &placer{world: w, plan: plan, pools: pl, rng: rng}
	if err := p.preplace(s); err != nil {
		return nil, err
	}
	if err := Place(plan, progress.Start(s, t), pl, rng); err != nil {
		return nil, err
	}
	return plan, nil
}

// Place finishes plan from pl: the progression pool goes in by assumed fill,
// the junk pool takes whatever is left and the result is verified from start.
// Quest checks must already be assigned. start is not modified.
func Place(plan *layout.Plan, start *progress.Progress, pl *pools.Pools, rng *rand.Rand) error {
	if err := assumed(plan, start, pl, rng); err != nil {
		return err
	}
	if err := junk(plan, pl, rng); err != nil {
		return err
	}
	return verify(plan, start.Clone())
}

// assumed places the progression pool front to back.
func assumed(plan *layout.Plan, start *progress.Progress, pl *pools.Pools, rng *rand.Rand) error {
	for len(pl.Progression) > 0 {
		it := pl.Progression[0]
		pl.Progression = pl.Progression[1:]

		held := start.Clone()
		for _, rest := range pl.Progression {
			if rest.IsProgression() {
				held.Add(rest)
			}
		}
		reachable := search.NewSweep(plan, held).Run()

		candidates := eligible(it, reachable, plan)
		if len(candidates) == 0 {
			return failure.Unfillable("no reachable check left for %v (%d items to go)", it, len(pl.Progression))
		}
		c := candidates[rng.IntN(len(candidates))]
		if err := plan.Assign(c, it); err != nil {
			return fmt.Errorf("%w: %v", failure.ErrInternal, err)
		}
	}
	return nil
}

// eligible filters reachable down to the empty checks it may go in.
func eligible(it items.Item, reachable []*world.Check, plan *layout.Plan) []*world.Check {
	owner, dungeonItem := it.Owner()
	var out []*world.Check
	for _, c := range reachable {
		if plan.Filled(c) {
			continue
		}
		if it.IsPrize() != (c.Kind == world.KindPrize) {
			continue
		}
		if dungeonItem {
			if d, ok := c.Dungeon(); !ok || d != owner {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// junk puts the junk pool, in random order, on the remaining empty checks.
// A check that the progression fill never reached shows up here as a count
// mismatch rather than being silently dropped.
func junk(plan *layout.Plan, pl *pools.Pools, rng *rand.Rand) error {
	empty := plan.Unassigned()
	if len(empty) != len(pl.Junk) {
		return failure.Unfillable("%d empty checks for %d junk items", len(empty), len(pl.Junk))
	}
	rng.Shuffle(len(pl.Junk), func(i, j int) { pl.Junk[i], pl.Junk[j] = pl.Junk[j], pl.Junk[i] })
	for i, c := range empty {
		if err := plan.Assign(c, pl.Junk[i]); err != nil {
			return fmt.Errorf("%w: %v", failure.ErrInternal, err)
		}
	}
	pl.Junk = nil
	return nil
}

func verify(plan *layout.Plan, start *progress.Progress) error {
	if !plan.Complete() {
		return failure.Unfillable("%d checks left empty", len(plan.Unassigned()))
	}
	res := search.Verify(plan, start)
	if len(res.Unreachable) > 0 {
		return failure.Unfillable("%d checks unreachable, first %s", len(res.Unreachable), res.Unreachable[0].DisplayName())
	}
	if !res.GoalMet {
		return failure.Unfillable("goal cannot be met")
	}
	return nil
}

// Preflight checks that the world can be finished at all under s: with every
// item of pl and every quest event granted, every check must be reachable.
// It reports a configuration error naming the checks that are not.
func Preflight(w *world.World, s *settings.Settings, t trials.Config, pl pools.Pools) error {
	plan := layout.New(w)
	for _, c := range w.Checks() {
		if c.IsQuest() {
			if err := plan.Assign(c, c.Quest); err != nil {
				return err
			}
		}
	}
	p := progress.Start(s, t)
	for _, it := range pl.Progression {
		if it.IsProgression() {
			p.Add(it)
		}
	}

	res := search.Verify(plan, p)
	if len(res.Unreachable) > 0 {
		names := make([]string, 0, len(res.Unreachable))
		for _, c := range res.Unreachable {
			names = append(names, c.DisplayName())
		}
		return failure.Configuration("unreachable with every item: %s", strings.Join(names, ", "))
	}
	if !res.GoalMet {
		return failure.Configuration("goal cannot be met with every item")
	}
	return nil
}
