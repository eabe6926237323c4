// Package items defines every placeable item, its category and whether it
// can ever change what the player is able to reach.
package items

import (
	"fmt"
	"strings"
)

// Item is a placeable unit. Stackable items (keys, swords, gloves) are
// represented by repeated copies of the same Item.
type Item uint16

const (
	None Item = iota

	// Dungeon prizes
	PendantOfCourage
	PendantOfWisdom
	PendantOfPower
	SageGulley
	SageOren
	SageSeres
	SageOsfala
	SageImpa
	SageIrene
	SageRosso

	// Major items
	Bow
	BowOfLight
	Boomerang
	Hookshot
	Hammer
	Bombs
	FireRod
	IceRod
	TornadoRod
	SandRod
	Lamp
	Net
	RaviosBracelet
	Glove
	Flippers
	PegasusBoots
	Bell
	Sword
	Bottle
	LetterInABottle
	PremiumMilk
	SmoothGem
	MasterOre
	BeeBadge
	Pouch
	GreatSpin
	StaminaScroll
	HintGlasses
	Mail
	HylianShield
	ScootFruit
	FoulFruit
	Shield
	GoldBee
	Charm

	// Minor progression
	HeartPiece
	HeartContainer

	// Junk
	RupeeGreen
	RupeeBlue
	RupeeRed
	RupeePurple
	RupeeSilver
	RupeeGold
	MonsterTail
	MonsterHorn
	MonsterGuts

	// Small keys
	HyruleSanctuaryKey
	LoruleSanctuaryKey
	EasternSmallKey
	GalesSmallKey
	HeraSmallKey
	DarkSmallKey
	SwampSmallKey
	SkullSmallKey
	ThievesSmallKey
	IceSmallKey
	DesertSmallKey
	TurtleSmallKey
	LoruleCastleSmallKey

	// Big keys
	EasternBigKey
	GalesBigKey
	HeraBigKey
	DarkBigKey
	SwampBigKey
	SkullBigKey
	ThievesBigKey
	IceBigKey
	DesertBigKey
	TurtleBigKey

	// Compasses
	EasternCompass
	GalesCompass
	HeraCompass
	DarkCompass
	SwampCompass
	SkullCompass
	ThievesCompass
	IceCompass
	DesertCompass
	TurtleCompass
	LoruleCastleCompass

	// Quest events, never part of a pool
	OpenSanctuaryDoors
	BigBombFlower
	SkullEyeLeft
	SkullEyeRight
	ThievesB1DoorOpen
	TurtleFlipped
	AccessLoruleCastleField
	LcBombTrial
	LcTileTrial
	LcLampTrial
	LcHookTrial
	Triforce

	numItems
)

// Category groups items by how the pool builder and fill treat them.
type Category uint8

const (
	CategoryJunk Category = iota
	CategoryPrize
	CategoryBigKey
	CategorySmallKey
	CategoryCompass
	CategoryMajor
	CategoryMinor
	CategoryQuest
)

var categoryNames = [...]string{
	CategoryJunk:     "junk",
	CategoryPrize:    "prize",
	CategoryBigKey:   "big key",
	CategorySmallKey: "small key",
	CategoryCompass:  "compass",
	CategoryMajor:    "major",
	CategoryMinor:    "minor",
	CategoryQuest:    "quest",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

type info struct {
	name        string
	category    Category
	progression bool
}

func prize(name string) info { return info{name, CategoryPrize, true} }
func major(name string) info { return info{name, CategoryMajor, true} }
func trinket(name string) info { return info{name, CategoryMajor, false} }
func junk(name string) info { return info{name, CategoryJunk, false} }
func quest(name string) info { return info{name, CategoryQuest, true} }

var table = [numItems]info{
	None: junk("Nothing"),

	PendantOfCourage: prize("Pendant of Courage"),
	PendantOfWisdom:  prize("Pendant of Wisdom"),
	PendantOfPower:   prize("Pendant of Power"),
	SageGulley:       prize("Sage Gulley"),
	SageOren:         prize("Sage Oren"),
	SageSeres:        prize("Sage Seres"),
	SageOsfala:       prize("Sage Osfala"),
	SageImpa:         prize("Sage Impa"),
	SageIrene:        prize("Sage Irene"),
	SageRosso:        prize("Sage Rosso"),

	Bow:             major("Bow"),
	BowOfLight:      major("Bow of Light"),
	Boomerang:       major("Boomerang"),
	Hookshot:        major("Hookshot"),
	Hammer:          major("Hammer"),
	Bombs:           major("Bombs"),
	FireRod:         major("Fire Rod"),
	IceRod:          major("Ice Rod"),
	TornadoRod:      major("Tornado Rod"),
	SandRod:         major("Sand Rod"),
	Lamp:            major("Lamp"),
	Net:             major("Bug Net"),
	RaviosBracelet:  major("Ravio's Bracelet"),
	Glove:           major("Power Glove"),
	Flippers:        major("Zora's Flippers"),
	PegasusBoots:    major("Pegasus Boots"),
	Bell:            major("Bell"),
	Sword:           major("Sword"),
	Bottle:          major("Empty Bottle"),
	LetterInABottle: major("Letter in a Bottle"),
	PremiumMilk:     major("Premium Milk"),
	SmoothGem:       major("Smooth Gem"),
	MasterOre:       major("Master Ore"),
	BeeBadge:        major("Bee Badge"),
	Pouch:           trinket("Pouch"),
	GreatSpin:       trinket("Great Spin"),
	StaminaScroll:   trinket("Stamina Scroll"),
	HintGlasses:     trinket("Hint Glasses"),
	Mail:            trinket("Mail"),
	HylianShield:    trinket("Hylian Shield"),
	ScootFruit:      trinket("Scoot Fruit"),
	FoulFruit:       trinket("Foul Fruit"),
	Shield:          trinket("Shield"),
	GoldBee:         trinket("Gold Bee"),
	Charm:           trinket("Charm"),

	HeartPiece:     {"Piece of Heart", CategoryMinor, true},
	HeartContainer: {"Heart Container", CategoryMinor, true},

	RupeeGreen:  junk("Green Rupee"),
	RupeeBlue:   junk("Blue Rupee"),
	RupeeRed:    junk("Red Rupee"),
	RupeePurple: junk("Purple Rupee"),
	RupeeSilver: junk("Silver Rupee"),
	RupeeGold:   junk("Gold Rupee"),
	MonsterTail: junk("Monster Tail"),
	MonsterHorn: junk("Monster Horn"),
	MonsterGuts: junk("Monster Guts"),

	OpenSanctuaryDoors:      quest("Open Sanctuary Doors"),
	BigBombFlower:           quest("Big Bomb Flower"),
	SkullEyeLeft:            quest("Skull Eye Left"),
	SkullEyeRight:           quest("Skull Eye Right"),
	ThievesB1DoorOpen:       quest("Thieves' Hideout B1 Door Open"),
	TurtleFlipped:           quest("Turtle Flipped"),
	AccessLoruleCastleField: quest("Access Lorule Castle Field"),
	LcBombTrial:             quest("Bomb Trial Complete"),
	LcTileTrial:             quest("Tile Trial Complete"),
	LcLampTrial:             quest("Lamp Trial Complete"),
	LcHookTrial:             quest("Hook Trial Complete"),
	Triforce:                quest("Triforce of Courage"),
}

func init() {
	for _, d := range Dungeons() {
		m := dungeons[d]
		if m.smallKey != None {
			table[m.smallKey] = info{m.abbrev + " Small Key", CategorySmallKey, true}
		}
		if m.bigKey != None {
			table[m.bigKey] = info{m.abbrev + " Big Key", CategoryBigKey, true}
		}
		if m.compass != None {
			table[m.compass] = info{m.abbrev + " Compass", CategoryCompass, false}
		}
	}
}

// All returns every item except None, in declaration order.
func All() []Item {
	out := make([]Item, 0, numItems-1)
	for i := None + 1; i < numItems; i++ {
		out = append(out, i)
	}
	return out
}

func (i Item) valid() bool { return i < numItems }

func (i Item) String() string {
	if !i.valid() {
		return fmt.Sprintf("item(%d)", uint16(i))
	}
	return table[i].name
}

// Category returns the item's category.
func (i Item) Category() Category {
	if !i.valid() {
		return CategoryJunk
	}
	return table[i].category
}

// IsProgression reports whether holding the item can change reachability.
func (i Item) IsProgression() bool {
	return i.valid() && table[i].progression
}

// IsQuest reports whether the item is an event that only quest checks hold.
func (i Item) IsQuest() bool {
	return i.Category() == CategoryQuest
}

// Parse looks an item up by its display name, ignoring case and spacing.
func Parse(name string) (Item, bool) {
	key := normalize(name)
	for i := None + 1; i < numItems; i++ {
		if normalize(table[i].name) == key {
			return i, true
		}
	}
	return None, false
}

func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '\'':
			return -1
		}
		return r
	}, s)
}

func (i Item) MarshalText() ([]byte, error) {
	if !i.valid() {
		return nil, fmt.Errorf("invalid item %d", uint16(i))
	}
	return []byte(i.String()), nil
}

func (i *Item) UnmarshalText(b []byte) error {
	parsed, ok := Parse(string(b))
	if !ok {
		return fmt.Errorf("unknown item %q", string(b))
	}
	*i = parsed
	return nil
}
