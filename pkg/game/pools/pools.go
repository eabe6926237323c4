// Package pools builds the item multisets a world is filled from.
package pools

import (
	"math/rand/v2"
	"slices"

	"ravio/pkg/engine/logic"
	"ravio/pkg/game/failure"
	"ravio/pkg/game/items"
	"ravio/pkg/game/settings"
	"ravio/pkg/game/world"
)

// Pools holds the two item multisets of one attempt. Progression is ordered
// by placement priority; Junk has no meaningful order.
type Pools struct {
	Progression []items.Item
	Junk        []items.Item
}

// Len is the total number of items across both pools.
func (p Pools) Len() int { return len(p.Progression) + len(p.Junk) }

// Remove drops one copy of it from the progression pool and reports whether
// one was found.
func (p *Pools) Remove(it items.Item) bool {
	i := slices.Index(p.Progression, it)
	if i < 0 {
		return false
	}
	p.Progression = slices.Delete(p.Progression, i, i+1)
	return true
}

// TakeJunk removes and returns a random junk item.
func (p *Pools) TakeJunk(rng *rand.Rand) (items.Item, bool) {
	if len(p.Junk) == 0 {
		return items.None, false
	}
	i := rng.IntN(len(p.Junk))
	it := p.Junk[i]
	p.Junk = slices.Delete(p.Junk, i, i+1)
	return it, true
}

const (
	heartContainers = 10
	heartPieces     = 27
)

var (
	baseJunk = []struct {
		item  items.Item
		count int
	}{
		{items.RupeeBlue, 8},
		{items.RupeeRed, 20},
		{items.MonsterTail, 4},
		{items.MonsterHorn, 3},
		{items.MonsterGuts, 12},
	}

	extraJunk = []items.Item{items.MonsterTail, items.MonsterHorn, items.MonsterGuts}

	padding = []items.Item{
		items.RupeeGreen, items.RupeeBlue, items.RupeeRed,
		items.RupeePurple, items.RupeeSilver, items.RupeeGold,
	}

	niceUpgrades = []items.Item{
		items.Bow, items.Boomerang, items.Hookshot, items.Hammer, items.Bombs,
		items.FireRod, items.IceRod, items.TornadoRod, items.SandRod,
	}
)

// NiceUpgrades lists the items that receive a second, upgraded copy when
// nice items are on, in Maiamai order.
func NiceUpgrades() []items.Item { return slices.Clone(niceUpgrades) }

// Build assembles the pools for w under s. The progression pool is made of
// segments placed in this order, each shuffled on its own: dungeon prizes,
// big keys, small keys, compasses, major items, minor items. Junk is padded
// with random rupees until both pools together cover every randomizable
// check of w.
func Build(w *world.World, s *settings.Settings, rng *rand.Rand) (Pools, error) {
	segments := [][]items.Item{
		items.Prizes(),
		bigKeys(s),
		smallKeys(s),
		compasses(),
		majors(s, rng),
		minors(),
	}

	var p Pools
	for _, seg := range segments {
		shuffle(rng, seg)
		p.Progression = append(p.Progression, seg...)
	}

	for _, j := range baseJunk {
		for range j.count {
			p.Junk = append(p.Junk, j.item)
		}
	}
	for range 2 {
		p.Junk = append(p.Junk, extraJunk[rng.IntN(len(extraJunk))])
	}

	slots := w.Randomizable()
	if p.Len() > slots {
		return Pools{}, failure.Configuration("%d items for %d checks", p.Len(), slots)
	}
	for p.Len() < slots {
		p.Junk = append(p.Junk, padding[rng.IntN(len(padding))])
	}
	shuffle(rng, p.Junk)
	return p, nil
}

func shuffle(rng *rand.Rand, s []items.Item) {
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}

func bigKeys(s *settings.Settings) []items.Item {
	var out []items.Item
	for _, d := range items.Dungeons() {
		if bk := d.BigKey(); bk != items.None {
			if s.Keysy.BigKeys() {
				bk = items.RupeeBlue
			}
			out = append(out, bk)
		}
	}
	return out
}

func smallKeys(s *settings.Settings) []items.Item {
	var out []items.Item
	for _, d := range items.Dungeons() {
		key := d.SmallKey()
		if s.Keysy.SmallKeys() {
			key = items.RupeeBlue
		}
		for range d.SmallKeys() {
			out = append(out, key)
		}
	}
	return out
}

func compasses() []items.Item {
	var out []items.Item
	for _, d := range items.Dungeons() {
		if c := d.Compass(); c != items.None {
			out = append(out, c)
		}
	}
	return out
}

func majors(s *settings.Settings, rng *rand.Rand) []items.Item {
	out := []items.Item{
		items.GreatSpin, items.Lamp, items.Bow, items.Boomerang, items.Hookshot, items.Hammer,
		items.Bombs, items.FireRod, items.IceRod, items.TornadoRod, items.SandRod, items.Net,
		items.HintGlasses, items.Bottle, items.Bottle, items.Bottle, items.Bottle, items.Bell,
		items.StaminaScroll, items.PegasusBoots, items.Flippers, items.HylianShield, items.SmoothGem,
		items.Glove, items.Glove, items.Mail, items.Mail,
		items.MasterOre, items.MasterOre, items.MasterOre, items.MasterOre,
		items.ScootFruit, items.ScootFruit, items.FoulFruit, items.FoulFruit,
		items.Shield, items.Shield, items.Shield, items.Shield, items.GoldBee, items.Charm,
	}

	if s.ProgressiveBowOfLight {
		out = append(out, items.Bow)
	} else {
		out = append(out, items.BowOfLight)
	}
	out = append(out, []items.Item{items.LetterInABottle, items.PremiumMilk}[rng.IntN(2)])

	if s.NiceItems != settings.NiceOff {
		out = append(out, niceUpgrades...)
	}
	if s.SuperItems {
		out = append(out, items.Lamp, items.Net)
	}
	if !s.StartWithMerge {
		out = append(out, items.RaviosBracelet, items.RaviosBracelet)
	}
	if !s.StartWithPouch {
		out = append(out, items.Pouch)
	}
	if s.Logic != logic.Hell {
		out = append(out, items.BeeBadge)
	}
	if !s.SwordlessMode {
		out = append(out, items.Sword, items.Sword, items.Sword, items.Sword)
	}
	return out
}

func minors() []items.Item {
	out := make([]items.Item, 0, heartContainers+heartPieces)
	for range heartContainers {
		out = append(out, items.HeartContainer)
	}
	for range heartPieces {
		out = append(out, items.HeartPiece)
	}
	return out
}
