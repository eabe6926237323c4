package world

import (
	"ravio/pkg/game/items"
	"ravio/pkg/game/logic"
)

// Shorthands for the region tables.

var (
	open     = logic.Open()
	normal   = logic.Normal
	hard     = logic.Hard
	glitched = logic.Glitched
	has      = logic.Has
	count    = logic.Count
	all      = logic.All
	either   = logic.Any
	keys     = logic.SmallKeys
	bigKey   = logic.BigKey

	merge    = logic.CanMerge
	lift     = logic.CanLift
	liftBig  = logic.CanLiftBig
	swim     = logic.CanSwim
	attack   = logic.CanAttack
	sw       = logic.CanHitSwitch
	farSw    = logic.CanHitFarSwitch
	boss     = logic.CanDefeatBosses
	dark     = logic.CanSeeInDark
	fire     = logic.HasFireSource
	niceBomb = logic.HasNiceBombs

	lamp     = has(items.Lamp)
	bombs    = has(items.Bombs)
	bow      = has(items.Bow)
	hookshot = has(items.Hookshot)
	hammer   = has(items.Hammer)
	boots    = has(items.PegasusBoots)
	fireRod  = has(items.FireRod)
	iceRod   = has(items.IceRod)
	tornado  = has(items.TornadoRod)
	sandRod  = has(items.SandRod)
	boomer   = has(items.Boomerang)
	net      = has(items.Net)
	bell     = has(items.Bell)
	bottle   = has(items.Bottle)
)

func chest(name string, g logic.Gate) *Check { return &Check{Name: name, Gate: g, Kind: KindChest} }
func event(name string, g logic.Gate) *Check { return &Check{Name: name, Gate: g, Kind: KindEvent} }
func shop(name string, g logic.Gate) *Check { return &Check{Name: name, Gate: g, Kind: KindShop} }
func heart(name string, g logic.Gate) *Check { return &Check{Name: name, Gate: g, Kind: KindHeart} }
func minigame(name string, g logic.Gate) *Check { return &Check{Name: name, Gate: g, Kind: KindMinigame} }

// prize is the check a dungeon boss leaves behind.
func prize(d items.Dungeon, g logic.Gate) *Check {
	return &Check{Name: "[" + d.Abbrev() + "] Prize", Gate: g, Kind: KindPrize}
}

func quest(name string, it items.Item, g logic.Gate) *Check {
	return &Check{Name: name, Gate: g, Kind: KindQuest, Quest: it}
}

// PrizeCheck returns the name of d's prize check.
func PrizeCheck(d items.Dungeon) string {
	return "[" + d.Abbrev() + "] Prize"
}
