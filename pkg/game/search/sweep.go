package search

import (
	"ravio/pkg/game/items"
	"ravio/pkg/game/layout"
	"ravio/pkg/game/logic"
	"ravio/pkg/game/progress"
	"ravio/pkg/game/world"
)

// Sweep repeatedly collects the items of reachable, filled checks into a
// Progress. Quest events and statically placed items enter a search this way.
type Sweep struct {
	world     *world.World
	plan      *layout.Plan
	progress  *progress.Progress
	collected []bool
	skipped   []bool
	reachable []*world.Check
}

// NewSweep starts a sweep over plan from p. The sweep owns p from here on.
func NewSweep(plan *layout.Plan, p *progress.Progress) *Sweep {
	w := plan.World()
	return &Sweep{
		world:     w,
		plan:      plan,
		progress:  p,
		collected: make([]bool, w.Len()),
		skipped:   make([]bool, w.Len()),
	}
}

// Skip leaves c's item out of the sweep, as if c were empty.
func (s *Sweep) Skip(c *world.Check) { s.skipped[c.Index()] = true }

// Step runs one wave: every filled check reachable under the current
// Progress that has not been collected yet is collected, and the progression
// items among them are granted together once the wave is over. It reports
// the checks collected and whether any progression item was granted.
func (s *Sweep) Step() ([]*world.Check, bool) {
	s.reachable = Reachable(s.world, s.progress)

	var wave []*world.Check
	var grant []items.Item
	for _, c := range s.reachable {
		if s.collected[c.Index()] || s.skipped[c.Index()] || !s.plan.Filled(c) {
			continue
		}
		s.collected[c.Index()] = true
		wave = append(wave, c)
		if it := s.plan.Get(c); it.IsProgression() {
			grant = append(grant, it)
		}
	}
	for _, it := range grant {
		s.progress.Add(it)
	}
	return wave, len(grant) > 0
}

// Run steps until nothing new is granted and returns the checks reachable at
// the fixed point.
func (s *Sweep) Run() []*world.Check {
	for {
		if _, grew := s.Step(); !grew {
			return s.reachable
		}
	}
}

// Progress is the sweep's current Progress.
func (s *Sweep) Progress() *progress.Progress { return s.progress }

// Collected reports whether c's item has been picked up.
func (s *Sweep) Collected(c *world.Check) bool { return s.collected[c.Index()] }

// Result is the outcome of sweeping a plan to its fixed point.
type Result struct {
	Unreachable []*world.Check
	GoalMet     bool
}

// Beatable reports whether every check is reachable and the goal passes.
func (r Result) Beatable() bool { return len(r.Unreachable) == 0 && r.GoalMet }

// Verify sweeps plan from p and reports which checks stay out of reach and
// whether the world's goal passes at the end.
func Verify(plan *layout.Plan, p *progress.Progress) Result {
	s := NewSweep(plan, p)
	reachable := s.Run()

	hit := make([]bool, plan.World().Len())
	for _, c := range reachable {
		hit[c.Index()] = true
	}
	var res Result
	for _, c := range plan.World().Checks() {
		if !hit[c.Index()] {
			res.Unreachable = append(res.Unreachable, c)
		}
	}
	res.GoalMet = logic.CanPass(plan.World().Goal(), s.Progress())
	return res
}
