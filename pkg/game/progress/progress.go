// Package progress tracks what a hypothetical player holds during a search.
//
// A Progress only ever grows: there is no way to drop an item once it has
// been added. It also carries the settings and trials of the attempt so
// logic predicates can be pure functions of a single value.
package progress

import (
	"slices"

	"ravio/pkg/engine/logic"
	"ravio/pkg/game/items"
	"ravio/pkg/game/settings"
	"ravio/pkg/game/trials"
)

// Progress is the multiset of held items plus the attempt's configuration.
type Progress struct {
	settings *settings.Settings
	trials   trials.Config
	counts   map[items.Item]int
	total    int
}

// New creates an empty Progress.
func New(s *settings.Settings, t trials.Config) *Progress {
	return &Progress{
		settings: s,
		trials:   t,
		counts:   make(map[items.Item]int),
	}
}

// Start creates a Progress holding the items the settings grant up front.
func Start(s *settings.Settings, t trials.Config) *Progress {
	p := New(s, t)
	for _, it := range StartingItems(s) {
		p.Add(it)
	}
	return p
}

// StartingItems lists the items the player starts the game with.
func StartingItems(s *settings.Settings) []items.Item {
	var out []items.Item
	if s.StartWithMerge {
		out = append(out, items.RaviosBracelet, items.RaviosBracelet)
	}
	if s.StartWithPouch {
		out = append(out, items.Pouch)
	}
	return out
}

// Add grants one copy of it.
func (p *Progress) Add(it items.Item) {
	p.counts[it]++
	p.total++
}

// Has reports whether at least one copy of it is held.
func (p *Progress) Has(it items.Item) bool {
	return p.counts[it] > 0
}

// Count returns how many copies of it are held.
func (p *Progress) Count(it items.Item) int {
	return p.counts[it]
}

// Len is the total number of items held, counting copies.
func (p *Progress) Len() int { return p.total }

func (p *Progress) Settings() *settings.Settings { return p.settings }

func (p *Progress) Trials() trials.Config { return p.trials }

// Tier is the configured logic strictness.
func (p *Progress) Tier() logic.Tier { return p.settings.Logic }

// Clone returns an independent copy sharing the same settings.
func (p *Progress) Clone() *Progress {
	c := New(p.settings, p.trials)
	for it, n := range p.counts {
		c.counts[it] = n
	}
	c.total = p.total
	return c
}

// Items returns every held item, one entry per copy, sorted.
func (p *Progress) Items() []items.Item {
	out := make([]items.Item, 0, p.total)
	for it, n := range p.counts {
		for range n {
			out = append(out, it)
		}
	}
	slices.Sort(out)
	return out
}
