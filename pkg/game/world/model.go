// Package world is the static graph of locations, checks and paths.
//
// The graph is built once per process from the region tables in this
// package and never changes afterwards, so it can be shared by concurrent
// generation attempts without locking.
package world

import (
	"fmt"

	"ravio/pkg/game/items"
	"ravio/pkg/game/logic"
)

// LocationID names a location. It doubles as the display name.
type LocationID string

// Kind is the in-game object a check patches.
type Kind uint8

const (
	KindChest Kind = iota
	KindEvent
	KindShop
	KindHeart
	KindPrize
	KindMinigame
	KindQuest
)

var kindNames = [...]string{"chest", "event", "shop", "heart", "prize", "minigame", "quest"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Check is a single slot that holds one item.
type Check struct {
	// Name is the stable identifier, unique across the world.
	Name string
	Gate logic.Gate
	Kind Kind
	// Quest is the fixed event a quest check always holds, items.None otherwise.
	Quest items.Item

	location  *Location
	index     int
	dungeon   items.Dungeon
	inDungeon bool
}

// Index is the check's position in World.Checks.
func (c *Check) Index() int { return c.index }

// Location returns the location the check belongs to.
func (c *Check) Location() *Location { return c.location }

// Dungeon returns the dungeon the check belongs to, going by its "[XX]" tag.
func (c *Check) Dungeon() (items.Dungeon, bool) { return c.dungeon, c.inDungeon }

// IsQuest reports whether the check holds a fixed event.
func (c *Check) IsQuest() bool { return c.Quest != items.None }

// DisplayName is the check name prefixed by its location.
func (c *Check) DisplayName() string {
	if c.location == nil {
		return c.Name
	}
	return string(c.location.ID) + ": " + c.Name
}

func (c *Check) String() string { return c.Name }

// Path is a directed, gated edge to another location.
type Path struct {
	To   LocationID
	Gate logic.Gate
}

// Location groups checks and outgoing paths.
type Location struct {
	ID LocationID
	// Course is the game resource the location's checks live in.
	Course string
	Checks []*Check
	Paths  []Path
}
