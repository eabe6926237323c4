package fill

import (
	"math/rand/v2"
	"strings"

	engine "ravio/pkg/engine/logic"
	"ravio/pkg/game/failure"
	"ravio/pkg/game/items"
	"ravio/pkg/game/layout"
	"ravio/pkg/game/pools"
	"ravio/pkg/game/settings"
	"ravio/pkg/game/world"
)

// Static stock of the item shops and the Mysterious Man.
var shopStock = []struct {
	check string
	item  items.Item
}{
	{"Kakariko Item Shop (1)", items.ScootFruit},
	{"Kakariko Item Shop (2)", items.FoulFruit},
	{"Kakariko Item Shop (3)", items.Shield},
	{"Lakeside Item Shop (1)", items.ScootFruit},
	{"Lakeside Item Shop (2)", items.FoulFruit},
	{"Lakeside Item Shop (3)", items.Shield},
	{"Thieves' Town Item Shop (1)", items.Shield},
	{"Lorule Lakeside Item Shop (1)", items.Shield},
	{"Mysterious Man", items.GoldBee},
}

// MaiamaiCheck names the Maiamai reward for the upgrade of it.
func MaiamaiCheck(it items.Item) string {
	return "Maiamai " + it.String() + " Upgrade"
}

type placer struct {
	world *world.World
	plan  *layout.Plan
	pools *pools.Pools
	rng   *rand.Rand
}

func (pl *placer) check(name string) (*world.Check, error) {
	c, ok := pl.world.Check(name)
	if !ok {
		return nil, failure.Configuration("no check named %q", name)
	}
	return c, nil
}

// static places it at the named check and takes one copy out of the
// progression pool.
func (pl *placer) static(name string, it items.Item) error {
	c, err := pl.check(name)
	if err != nil {
		return err
	}
	return pl.put(c, it)
}

func (pl *placer) put(c *world.Check, it items.Item) error {
	if !pl.pools.Remove(it) {
		return failure.Configuration("%v is not in the item pool", it)
	}
	if err := pl.plan.Assign(c, it); err != nil {
		return failure.Configuration("%v", err)
	}
	return nil
}

// exclude gives c a random piece of junk.
func (pl *placer) exclude(c *world.Check) error {
	if pl.plan.Filled(c) {
		return failure.Configuration("cannot exclude %q, it always holds %v", c.Name, pl.plan.Get(c))
	}
	it, ok := pl.pools.TakeJunk(pl.rng)
	if !ok {
		return failure.Configuration("out of junk while excluding %q", c.Name)
	}
	return pl.plan.Assign(c, it)
}

// pick removes and returns a random element of cs.
func (pl *placer) pick(cs *[]*world.Check) *world.Check {
	i := pl.rng.IntN(len(*cs))
	c := (*cs)[i]
	*cs = append((*cs)[:i], (*cs)[i+1:]...)
	return c
}

// preplace puts every item that does not take part in the random fill:
// quest events, vanilla prizes and upgrades, shop stock, shop guarantees and
// exclusions.
func (pl *placer) preplace(s *settings.Settings) error {
	for _, c := range pl.world.Checks() {
		if c.IsQuest() {
			if err := pl.plan.Assign(c, c.Quest); err != nil {
				return err
			}
		}
	}

	if !s.DungeonPrizeShuffle {
		for _, d := range items.Dungeons() {
			if prize := d.Prize(); prize != items.None {
				if err := pl.static(world.PrizeCheck(d), prize); err != nil {
					return err
				}
			}
		}
	}

	for _, st := range shopStock {
		if err := pl.static(st.check, st.item); err != nil {
			return err
		}
	}

	for _, it := range pools.NiceUpgrades() {
		c, err := pl.check(MaiamaiCheck(it))
		if err != nil {
			return err
		}
		if s.NiceItems == settings.NiceVanilla {
			err = pl.put(c, it)
		} else {
			err = pl.exclude(c)
		}
		if err != nil {
			return err
		}
	}

	if s.BowOfLightInCastle {
		var castle []*world.Check
		for _, c := range pl.world.Checks() {
			if strings.HasPrefix(c.Name, "[LC]") && !pl.plan.Filled(c) {
				castle = append(castle, c)
			}
		}
		if len(castle) == 0 {
			return failure.Configuration("no free Lorule Castle check for the Bow of Light")
		}
		if err := pl.put(pl.pick(&castle), items.BowOfLight); err != nil {
			return err
		}
	}

	if err := pl.shop(s); err != nil {
		return err
	}

	if s.MinigamesExcluded {
		for _, c := range pl.world.ChecksOfKind(world.KindMinigame) {
			if pl.plan.Filled(c) {
				continue
			}
			if err := pl.exclude(c); err != nil {
				return err
			}
		}
	}

	for _, name := range s.Exclusions {
		c, err := pl.check(name)
		if err != nil {
			return err
		}
		if err := pl.exclude(c); err != nil {
			return err
		}
	}
	return nil
}

// shop handles the items guaranteed to be for sale in Ravio's Shop.
func (pl *placer) shop(s *settings.Settings) error {
	var slots []*world.Check
	for _, c := range pl.world.ChecksOfKind(world.KindShop) {
		if strings.HasPrefix(c.Name, "Ravio's Shop") && !pl.plan.Filled(c) {
			slots = append(slots, c)
		}
	}

	var wanted []items.Item
	if s.BellInShop {
		wanted = append(wanted, items.Bell)
	}
	if s.SwordInShop {
		wanted = append(wanted, items.Sword)
	}
	if s.BootsInShop {
		wanted = append(wanted, items.PegasusBoots)
	}
	if s.AssuredWeapon && !s.SwordInShop && !s.BootsInShop {
		weapons := []items.Item{items.Bow, items.Bombs, items.FireRod, items.IceRod, items.Hammer, items.PegasusBoots}
		if !s.SwordlessMode {
			weapons = append(weapons, items.Sword)
		}
		if s.Logic != engine.Normal {
			weapons = append(weapons, items.Lamp, items.Net)
		}
		wanted = append(wanted, weapons[pl.rng.IntN(len(weapons))])
	}

	for _, it := range wanted {
		if len(slots) == 0 {
			return failure.Configuration("no free shop slot for %v", it)
		}
		if err := pl.put(pl.pick(&slots), it); err != nil {
			return err
		}
	}
	return nil
}
