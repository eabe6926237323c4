// Package logic is the predicate vocabulary the world tables are written in.
//
// Every gate in the world is built from these constructors, e.g.
//
//	logic.Normal(logic.All(logic.CanMerge, logic.Has(items.Lamp))).
//		Hard(logic.CanMerge)
package logic

import (
	"fmt"

	engine "ravio/pkg/engine/logic"
	"ravio/pkg/game/items"
	"ravio/pkg/game/progress"
	"ravio/pkg/game/settings"
)

type (
	Predicate = engine.Predicate[*progress.Progress]
	Gate      = engine.Gate[*progress.Progress]
)

// Open is a gate that always passes.
func Open() Gate { return engine.Open[*progress.Progress]() }

// Normal starts a gate whose Normal predicate is the conjunction of ps.
func Normal(ps ...Predicate) Gate { return Open().Normal(All(ps...)) }

// Hard starts a gate with nothing below Hard.
func Hard(ps ...Predicate) Gate { return Open().Hard(All(ps...)) }

// Glitched starts a gate with nothing below Glitched.
func Glitched(ps ...Predicate) Gate { return Open().Glitched(All(ps...)) }

// CanPass evaluates g against p at p's configured tier.
func CanPass(g Gate, p *progress.Progress) bool {
	return g.CanPass(p.Tier(), p)
}

func True() Predicate { return engine.True[*progress.Progress]() }
func All(ps ...Predicate) Predicate { return engine.All(ps...) }
func Any(ps ...Predicate) Predicate { return engine.Any(ps...) }
func Not(p Predicate) Predicate { return engine.Not(p) }

// Fn names a capability of Progress.
func Fn(name string, fn func(*progress.Progress) bool) Predicate {
	return engine.Func(name, fn)
}

// Has passes when at least one copy of it is held.
func Has(it items.Item) Predicate {
	return Fn(it.String(), func(p *progress.Progress) bool { return p.Has(it) })
}

// Count passes when at least n copies of it are held.
func Count(it items.Item, n int) Predicate {
	return Fn(fmt.Sprintf("%s>=%d", it, n), func(p *progress.Progress) bool { return p.Count(it) >= n })
}

// Flag passes when the settings predicate holds.
func Flag(name string, fn func(*settings.Settings) bool) Predicate {
	return Fn(name, func(p *progress.Progress) bool { return fn(p.Settings()) })
}

// SmallKeys passes when n small keys of d are available.
func SmallKeys(d items.Dungeon, n int) Predicate {
	return Fn(fmt.Sprintf("%s keys>=%d", d.Abbrev(), n), func(p *progress.Progress) bool { return p.SmallKeys(d, n) })
}

// BigKey passes when d's big key is available.
func BigKey(d items.Dungeon) Predicate {
	return Fn(d.Abbrev()+" big key", func(p *progress.Progress) bool { return p.BigKey(d) })
}

// Hearts passes with at least n hearts.
func Hearts(n int) Predicate {
	return Fn(fmt.Sprintf("hearts>=%d", n), func(p *progress.Progress) bool { return p.Hearts() >= n })
}

// MasterOre passes with at least n pieces of Master Ore.
func MasterOre(n int) Predicate {
	return Fn(fmt.Sprintf("ore>=%d", n), func(p *progress.Progress) bool { return p.HasMasterOre(n) })
}

var (
	CanMerge        = Fn("merge", (*progress.Progress).CanMerge)
	CanLift         = Fn("lift", (*progress.Progress).CanLift)
	CanLiftBig      = Fn("lift big", (*progress.Progress).CanLiftBig)
	CanSwim         = Fn("swim", (*progress.Progress).CanSwim)
	CanAttack       = Fn("attack", (*progress.Progress).CanAttack)
	CanHitSwitch    = Fn("hit switch", (*progress.Progress).CanHitSwitch)
	CanHitFarSwitch = Fn("hit far switch", (*progress.Progress).CanHitFarSwitch)
	CanDefeatBosses = Fn("defeat bosses", (*progress.Progress).CanDefeatBosses)
	CanSeeInDark    = Fn("see in dark", (*progress.Progress).CanSeeInDark)
	HasFireSource   = Fn("fire source", (*progress.Progress).HasFireSource)
	HasSword        = Fn("sword", (*progress.Progress).HasSword)
	HasMasterSword  = Fn("master sword", (*progress.Progress).HasMasterSword)
	HasBowOfLight   = Fn("bow of light", (*progress.Progress).HasBowOfLight)
	HasNiceBombs    = Fn("nice bombs", (*progress.Progress).HasNiceBombs)
	HasTradeItem    = Fn("trade item", (*progress.Progress).HasTradeItem)
	PedestalReady   = Fn("pedestal", (*progress.Progress).PedestalReady)
	TrialsDone      = Fn("trials", (*progress.Progress).TrialsDone)
	HyruleVanes     = Fn("hyrule vanes", (*progress.Progress).HyruleVanes)
	LoruleVanes     = Fn("lorule vanes", (*progress.Progress).LoruleVanes)
	Swordless       = Fn("swordless", (*progress.Progress).IsSwordless)

	// LCBarrier is the sage requirement for entering Lorule Castle.
	LCBarrier = Fn("lc barrier", func(p *progress.Progress) bool {
		return p.HasSages(p.Settings().LCRequirement)
	})

	// TrialsDoorOutside passes when the trials door opens from Hilda's Study as well.
	TrialsDoorOutside = Flag("trials door outside", func(s *settings.Settings) bool {
		return s.TrialsDoor == settings.OpenFromBothSides
	})
)
