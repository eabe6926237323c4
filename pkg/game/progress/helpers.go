package progress

import (
	"ravio/pkg/game/items"
	"ravio/pkg/game/settings"
)

// Capability helpers shared by the world's logic tables.

func (p *Progress) HasSword() bool { return p.Has(items.Sword) }
func (p *Progress) HasMasterSword() bool { return p.Count(items.Sword) >= 2 }
func (p *Progress) CanMerge() bool { return p.Count(items.RaviosBracelet) >= 2 }
func (p *Progress) CanLift() bool { return p.Has(items.Glove) }
func (p *Progress) CanLiftBig() bool { return p.Count(items.Glove) >= 2 }
func (p *Progress) CanSwim() bool { return p.Has(items.Flippers) }
func (p *Progress) HasLamp() bool { return p.Has(items.Lamp) }
func (p *Progress) HasBoots() bool { return p.Has(items.PegasusBoots) }
func (p *Progress) HasBow() bool { return p.Has(items.Bow) }
func (p *Progress) HasNiceBombs() bool { return p.Count(items.Bombs) >= 2 }
func (p *Progress) IsSwordless() bool { return p.settings.SwordlessMode }
func (p *Progress) HasFireSource() bool { return p.HasLamp() || p.Has(items.FireRod) }
func (p *Progress) HasTradeItem() bool { return p.Has(items.LetterInABottle) || p.Has(items.PremiumMilk) }
func (p *Progress) Hearts() int { return 3 + p.Count(items.HeartContainer) + p.Count(items.HeartPiece)/4 }
func (p *Progress) HasMasterOre(n int) bool { return p.Count(items.MasterOre) >= n }

// CanSeeInDark is true with a lamp, or always when dark rooms are lampless.
func (p *Progress) CanSeeInDark() bool {
	return p.HasLamp() || p.settings.DarkRoomsLampless
}

// HasBowOfLight accounts for the progressive Bow of Light setting, where the
// final bow upgrade stands in for the Bow of Light.
func (p *Progress) HasBowOfLight() bool {
	if !p.settings.ProgressiveBowOfLight {
		return p.Has(items.BowOfLight)
	}
	need := 3
	if p.settings.NiceItems == settings.NiceOff {
		need = 2
	}
	return p.Count(items.Bow) >= need
}

func (p *Progress) CanAttack() bool {
	return p.HasSword() || p.HasBow() || p.Has(items.Bombs) || p.Has(items.FireRod) ||
		p.Has(items.IceRod) || p.Has(items.Hammer)
}

func (p *Progress) CanHitSwitch() bool {
	return p.CanAttack() || p.Has(items.Boomerang) || p.Has(items.Hookshot) || p.Has(items.TornadoRod)
}

func (p *Progress) CanHitFarSwitch() bool {
	return p.HasBow() || p.Has(items.Boomerang) || p.Has(items.Hookshot) || p.Has(items.Bombs) ||
		p.Has(items.IceRod) || p.Has(items.FireRod)
}

// CanDefeatBosses covers bosses that need a real weapon. Swordless players
// may use the rods or the hammer instead.
func (p *Progress) CanDefeatBosses() bool {
	if p.HasSword() {
		return true
	}
	return p.Has(items.Hammer) || p.Has(items.FireRod) || p.Has(items.IceRod) || p.HasBow()
}

// Sages counts the distinct sage portraits held.
func (p *Progress) Sages() int {
	n := 0
	for _, s := range items.Sages() {
		if p.Has(s) {
			n++
		}
	}
	return n
}

// HasSages reports whether the Lorule Castle barrier requirement is met.
func (p *Progress) HasSages(n int) bool { return p.Sages() >= n }

// PedestalReady reports whether the Master Sword pedestal can be pulled.
func (p *Progress) PedestalReady() bool {
	if !p.Has(items.PendantOfPower) || !p.Has(items.PendantOfWisdom) {
		return false
	}
	if p.settings.PedRequirement == settings.PedestalVanilla {
		return p.Has(items.PendantOfCourage)
	}
	return true
}

// SmallKeys reports whether n small keys of d are available.
func (p *Progress) SmallKeys(d items.Dungeon, n int) bool {
	return p.settings.Keysy.SmallKeys() || p.Count(d.SmallKey()) >= n
}

// BigKey reports whether d's big key is available.
func (p *Progress) BigKey(d items.Dungeon) bool {
	return p.settings.Keysy.BigKeys() || p.Has(d.BigKey())
}

// TrialsDone reports whether every trial turned on for the seed is complete.
func (p *Progress) TrialsDone() bool {
	for _, t := range p.trials.Trials() {
		if !p.Has(t.Quest()) {
			return false
		}
	}
	return true
}

// HyruleVanes reports whether the Hyrule weather vanes are active from the start.
func (p *Progress) HyruleVanes() bool { return p.settings.WeatherVanes.Hyrule() }

// LoruleVanes reports whether the Lorule weather vanes are active from the start.
func (p *Progress) LoruleVanes() bool { return p.settings.WeatherVanes.Lorule() }
