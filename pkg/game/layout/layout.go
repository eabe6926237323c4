// Package layout holds the placement plan of one generation attempt.
package layout

import (
	"fmt"

	"ravio/pkg/game/items"
	"ravio/pkg/game/world"
)

// Plan maps every check of a world to the item it holds. Entries are indexed
// by Check.Index, so iteration order is the world's declaration order.
type Plan struct {
	world  *world.World
	slots  []items.Item
	filled int
}

// New returns an empty plan for w.
func New(w *world.World) *Plan {
	return &Plan{world: w, slots: make([]items.Item, w.Len())}
}

// World returns the world the plan was made for.
func (p *Plan) World() *world.World { return p.world }

// Assign places it at c. A check is never reassigned.
func (p *Plan) Assign(c *world.Check, it items.Item) error {
	if it == items.None {
		return fmt.Errorf("assign nothing to %q", c.Name)
	}
	if prev := p.slots[c.Index()]; prev != items.None {
		return fmt.Errorf("check %q already holds %v", c.Name, prev)
	}
	p.slots[c.Index()] = it
	p.filled++
	return nil
}

// Get returns the item at c, or items.None.
func (p *Plan) Get(c *world.Check) items.Item { return p.slots[c.Index()] }

// Filled reports whether c holds an item.
func (p *Plan) Filled(c *world.Check) bool { return p.slots[c.Index()] != items.None }

// Len is the number of assigned checks.
func (p *Plan) Len() int { return p.filled }

// Complete reports whether every check holds an item.
func (p *Plan) Complete() bool { return p.filled == len(p.slots) }

// Unassigned returns the empty checks in index order.
func (p *Plan) Unassigned() []*world.Check {
	var out []*world.Check
	for _, c := range p.world.Checks() {
		if p.slots[c.Index()] == items.None {
			out = append(out, c)
		}
	}
	return out
}

// Each calls fn for every assigned check in index order.
func (p *Plan) Each(fn func(c *world.Check, it items.Item)) {
	for _, c := range p.world.Checks() {
		if it := p.slots[c.Index()]; it != items.None {
			fn(c, it)
		}
	}
}

// Items returns the placed items in index order.
func (p *Plan) Items() []items.Item {
	out := make([]items.Item, 0, p.filled)
	for _, it := range p.slots {
		if it != items.None {
			out = append(out, it)
		}
	}
	return out
}

// Equal reports whether two plans place the same items at the same checks.
func (p *Plan) Equal(o *Plan) bool {
	if p.world != o.world || p.filled != o.filled {
		return false
	}
	for i, it := range p.slots {
		if o.slots[i] != it {
			return false
		}
	}
	return true
}
