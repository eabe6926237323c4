package items

// Dungeon identifies a dungeon that owns keys, a compass or a prize.
type Dungeon uint8

const (
	HyruleSanctuary Dungeon = iota
	LoruleSanctuary
	EasternPalace
	HouseOfGales
	TowerOfHera
	DarkPalace
	SwampPalace
	SkullWoods
	ThievesHideout
	IceRuins
	DesertPalace
	TurtleRock
	LoruleCastle

	numDungeons
)

type dungeonInfo struct {
	name      string
	abbrev    string
	smallKey  Item
	smallKeys int
	bigKey    Item
	compass   Item
	prize     Item
}

var dungeons = [numDungeons]dungeonInfo{
	HyruleSanctuary: {"Hyrule Sanctuary", "HS", HyruleSanctuaryKey, 1, None, None, None},
	LoruleSanctuary: {"Lorule Sanctuary", "LS", LoruleSanctuaryKey, 1, None, None, None},
	EasternPalace:   {"Eastern Palace", "EP", EasternSmallKey, 2, EasternBigKey, EasternCompass, PendantOfCourage},
	HouseOfGales:    {"House of Gales", "HoG", GalesSmallKey, 4, GalesBigKey, GalesCompass, PendantOfWisdom},
	TowerOfHera:     {"Tower of Hera", "ToH", HeraSmallKey, 2, HeraBigKey, HeraCompass, PendantOfPower},
	DarkPalace:      {"Dark Palace", "PD", DarkSmallKey, 4, DarkBigKey, DarkCompass, SageGulley},
	SwampPalace:     {"Swamp Palace", "SP", SwampSmallKey, 4, SwampBigKey, SwampCompass, SageOren},
	SkullWoods:      {"Skull Woods", "SW", SkullSmallKey, 3, SkullBigKey, SkullCompass, SageSeres},
	ThievesHideout:  {"Thieves' Hideout", "T'H", ThievesSmallKey, 1, ThievesBigKey, ThievesCompass, SageOsfala},
	IceRuins:        {"Ice Ruins", "IR", IceSmallKey, 3, IceBigKey, IceCompass, SageRosso},
	DesertPalace:    {"Desert Palace", "DP", DesertSmallKey, 5, DesertBigKey, DesertCompass, SageIrene},
	TurtleRock:      {"Turtle Rock", "TR", TurtleSmallKey, 3, TurtleBigKey, TurtleCompass, SageImpa},
	LoruleCastle:    {"Lorule Castle", "LC", LoruleCastleSmallKey, 5, None, LoruleCastleCompass, None},
}

// Dungeons returns every dungeon in declaration order.
func Dungeons() []Dungeon {
	out := make([]Dungeon, numDungeons)
	for i := range out {
		out[i] = Dungeon(i)
	}
	return out
}

func (d Dungeon) String() string { return dungeons[d].name }

// Abbrev is the short tag used in check names, e.g. "EP".
func (d Dungeon) Abbrev() string { return dungeons[d].abbrev }

// SmallKey returns the dungeon's small key item.
func (d Dungeon) SmallKey() Item { return dungeons[d].smallKey }

// SmallKeys is how many small keys the dungeon holds.
func (d Dungeon) SmallKeys() int { return dungeons[d].smallKeys }

// BigKey returns the dungeon's big key, or None.
func (d Dungeon) BigKey() Item { return dungeons[d].bigKey }

// Compass returns the dungeon's compass, or None.
func (d Dungeon) Compass() Item { return dungeons[d].compass }

// Prize returns the prize the dungeon holds when prizes are not shuffled, or None.
func (d Dungeon) Prize() Item { return dungeons[d].prize }

// Prizes returns the ten dungeon prizes: three pendants then seven sages.
func Prizes() []Item {
	return []Item{
		PendantOfCourage, PendantOfWisdom, PendantOfPower,
		SageGulley, SageOren, SageSeres, SageOsfala, SageImpa, SageIrene, SageRosso,
	}
}

// Sages returns the seven sage portraits.
func Sages() []Item {
	return Prizes()[3:]
}

// DungeonByAbbrev looks a dungeon up by its check-name tag.
func DungeonByAbbrev(abbrev string) (Dungeon, bool) {
	for d := range numDungeons {
		if dungeons[d].abbrev == abbrev {
			return d, true
		}
	}
	return 0, false
}

// Owner returns the dungeon a key or compass belongs to.
func (i Item) Owner() (Dungeon, bool) {
	if i == None {
		return 0, false
	}
	for d := range numDungeons {
		info := &dungeons[d]
		if i == info.smallKey || i == info.bigKey || i == info.compass {
			return d, true
		}
	}
	return 0, false
}

// IsPrize reports whether i is a pendant or a sage.
func (i Item) IsPrize() bool { return i.Category() == CategoryPrize }
