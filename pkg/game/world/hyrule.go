package world

import (
	"ravio/pkg/game/items"
	"ravio/pkg/game/logic"
)

const (
	RaviosShop        LocationID = "Ravio's Shop"
	HyruleField       LocationID = "Hyrule Field"
	Kakariko          LocationID = "Kakariko Village"
	LostWoods         LocationID = "Lost Woods"
	EasternRuins      LocationID = "Eastern Ruins"
	SouthernRuins     LocationID = "Southern Ruins"
	LakeHylia         LocationID = "Lake Hylia"
	MaiamaiCave       LocationID = "Maiamai Cave"
	ZorasRiver        LocationID = "Zora's River"
	DesertOfMystery   LocationID = "Desert of Mystery"
	HyruleGraveyard   LocationID = "Hyrule Graveyard"
	DeathMountainWest LocationID = "Death Mountain (Hyrule)"
	DeathMountainEast LocationID = "Death Mountain East (Hyrule)"
	HyruleCastle      LocationID = "Hyrule Castle"
)

func hyrule() []*Location {
	return []*Location{
		{
			ID:     RaviosShop,
			Course: "IndoorLight",
			Checks: []*Check{
				chest("Ravio's Gift", open),
				shop("Ravio's Shop (1)", open),
				shop("Ravio's Shop (2)", open),
				shop("Ravio's Shop (3)", open),
				shop("Ravio's Shop (4)", open),
				shop("Ravio's Shop (5)", open),
				shop("Ravio's Shop (6)", open),
				shop("Ravio's Shop (7)", open),
				shop("Ravio's Shop (8)", open),
				shop("Ravio's Shop (9)", open),
			},
			Paths: []Path{
				{HyruleField, open},
			},
		},
		{
			ID:     HyruleField,
			Course: "FieldLight",
			Checks: []*Check{
				chest("Link's House", open),
				event("Dampe", open),
				event("Irene", open),
				event("Sahasrahla", open),
				chest("Haunted Grove Stump", open),
				chest("Wildlife Clearing Stump", open),
				chest("Hyrule Castle Rocks", normal(lift)),
				chest("Behind Blacksmith", normal(merge)),
				chest("Blacksmith Table", open),
				event("Blacksmith", normal(logic.MasterOre(2))),
				chest("Blacksmith Cave", normal(liftBig)),
				chest("Cucco Mini-Dungeon", normal(merge).Hard(boots)),
				event("Rosso's House", normal(has(items.PendantOfCourage))),
				chest("Rosso Cave", normal(hammer)),
				heart("Rosso Rocks", normal(lift)),
				event("Bird Lover", normal(swim)),
				minigame("Hyrule Hotfoot (First Race)", open),
				minigame("Hyrule Hotfoot (Second Race)", normal(boots)),
				minigame("Cucco Ranch", open),
			},
			Paths: []Path{
				{RaviosShop, open},
				{Kakariko, open},
				{LostWoods, open},
				{EasternRuins, open},
				{SouthernRuins, open},
				{LakeHylia, open},
				{ZorasRiver, open},
				{HyruleGraveyard, open},
				{HyruleCastle, open},
				{DesertOfMystery, normal(either(merge, sandRod))},
				{DeathMountainWest, normal(either(lift, all(logic.HyruleVanes, bell))).Glitched(boots)},
				{LoruleField, normal(merge)},
			},
		},
		{
			ID:     Kakariko,
			Course: "FieldLight",
			Checks: []*Check{
				event("Woman", open),
				event("Stylish Woman", open),
				chest("Kakariko Jail", normal(merge)),
				event("Milk Bar Owner", normal(logic.HasTradeItem)),
				event("Street Merchant (Left)", open),
				event("Street Merchant (Right)", normal(has(items.SageGulley))),
				event("Shady Guy", normal(either(merge, boots))),
				event("Bee Guy (1)", normal(bottle, net)),
				event("Bee Guy (2)", normal(bottle, net, has(items.BeeBadge)).Hell(all(bottle, net))),
				heart("Kakariko Well (Top)", open),
				chest("Kakariko Well (Bottom)", open),
				shop("Kakariko Item Shop (1)", open),
				shop("Kakariko Item Shop (2)", open),
				shop("Kakariko Item Shop (3)", open),
				event("Fortune's Choice", open),
			},
			Paths: []Path{
				{HyruleField, open},
			},
		},
		{
			ID:     LostWoods,
			Course: "FieldLight",
			Checks: []*Check{
				event("Fortune-Teller", open),
				chest("Lost Woods Alcove", normal(boots).Hard(fire)),
				chest("Lost Woods Big Rock Chest", normal(liftBig)),
				event("Master Sword Pedestal", normal(logic.PedestalReady)),
				chest("Hyrule Hotfoot Big Rock", normal(liftBig)),
			},
			Paths: []Path{
				{HyruleField, open},
			},
		},
		{
			ID:     EasternRuins,
			Course: "FieldLight",
			Checks: []*Check{
				chest("Eastern Ruins Armos Chest", normal(tornado)),
				chest("Eastern Ruins Hookshot Chest", normal(hookshot)),
				chest("Eastern Ruins Merge Chest", normal(merge)),
				heart("Eastern Ruins Peg Circle", normal(hammer)),
				chest("Eastern Ruins Treasure Dungeon", normal(hammer).Glitched(either(fireRod, niceBomb))),
				chest("Eastern Ruins Cave", open),
				event("Witch", open),
			},
			Paths: []Path{
				{HyruleField, open},
				{EasternPalaceFoyer, normal(farSw).Hard(merge)},
			},
		},
		{
			ID:     SouthernRuins,
			Course: "FieldLight",
			Checks: []*Check{
				chest("Southern Ruins Pillars", open),
				chest("Southern Ruins Ledge", normal(merge)),
				chest("Southern Ruins Treasure Dungeon", normal(merge, swim)),
				heart("Southern Ruins Bomb Cave", normal(bombs)),
			},
			Paths: []Path{
				{HyruleField, open},
			},
		},
		{
			ID:     LakeHylia,
			Course: "FieldLight",
			Checks: []*Check{
				chest("Lake Hylia Ledge Chest", normal(merge)),
				chest("Lake Hylia Dark Cave", normal(bombs, dark)),
				chest("Ice Rod Cave", normal(bombs)),
				shop("Lakeside Item Shop (1)", open),
				shop("Lakeside Item Shop (2)", open),
				shop("Lakeside Item Shop (3)", open),
				heart("Lake Hylia Island", normal(swim)),
				event("Mysterious Man", normal(bottle)),
			},
			Paths: []Path{
				{HyruleField, open},
				{MaiamaiCave, open},
				{HouseOfGalesFoyer, normal(swim, tornado).Glitched(all(swim, boots))},
			},
		},
		{
			ID:     MaiamaiCave,
			Course: "CaveLight",
			Checks: []*Check{
				event("Maiamai Bow Upgrade", normal(bow)),
				event("Maiamai Boomerang Upgrade", normal(boomer)),
				event("Maiamai Hookshot Upgrade", normal(hookshot)),
				event("Maiamai Hammer Upgrade", normal(hammer)),
				event("Maiamai Bombs Upgrade", normal(bombs)),
				event("Maiamai Fire Rod Upgrade", normal(fireRod)),
				event("Maiamai Ice Rod Upgrade", normal(iceRod)),
				event("Maiamai Tornado Rod Upgrade", normal(tornado)),
				event("Maiamai Sand Rod Upgrade", normal(sandRod)),
			},
			Paths: []Path{
				{LakeHylia, open},
			},
		},
		{
			ID:     ZorasRiver,
			Course: "FieldLight",
			Checks: []*Check{
				chest("Zora's River Treasure Dungeon", normal(merge, swim)),
				chest("Waterfall Cave", normal(merge, swim)),
				event("Zora Queen", normal(has(items.SmoothGem), swim)),
				heart("Zora's Domain Ledge", normal(merge)),
			},
			Paths: []Path{
				{HyruleField, open},
			},
		},
		{
			ID:     DesertOfMystery,
			Course: "FieldLight",
			Checks: []*Check{
				chest("Desert Treasure Dungeon", normal(sandRod)),
				heart("Desert Ledge", normal(merge)),
			},
			Paths: []Path{
				{HyruleField, open},
				{MiseryMire, normal(merge)},
			},
		},
		{
			ID:     HyruleGraveyard,
			Course: "FieldLight",
			Checks: []*Check{
				chest("Graveyard Ledge Cave", normal(merge)),
				heart("Sanctuary Pegs", normal(hammer)),
				chest("Dampe's Grave", normal(lift)),
				quest("Open Sanctuary Doors", items.OpenSanctuaryDoors, normal(lamp, attack).Hard(all(fire, attack))),
			},
			Paths: []Path{
				{HyruleField, open},
				{HyruleSanctuaryLobby, normal(has(items.OpenSanctuaryDoors))},
			},
		},
		{
			ID:     DeathMountainWest,
			Course: "FieldLight",
			Checks: []*Check{
				chest("Death Mountain Open Cave", open),
				chest("Death Mountain Blocked Cave", normal(bombs)),
				chest("Death Mountain Fairy Cave", normal(either(hammer, bombs))),
				chest("Donkey Cave Pegs", normal(hammer)),
				heart("Death Mountain West Ledge", normal(merge)),
				heart("Spectacle Rock", normal(merge)),
				chest("Death Mountain Treasure Dungeon", normal(merge, hookshot)),
			},
			Paths: []Path{
				{HyruleField, open},
				{DeathMountainEast, normal(either(hookshot, all(merge, hammer))).Hard(boots)},
				{TowerOfHeraFoyer, normal(hammer)},
			},
		},
		{
			ID:     DeathMountainEast,
			Course: "FieldLight",
			Checks: []*Check{
				chest("Fire Cave Pillar", normal(merge, hammer)),
				chest("Bouldering Guy's Cave", normal(merge)),
				heart("Floating Island", normal(hookshot, boots)),
				chest("Hookshot Mini-Dungeon", normal(hookshot)),
			},
			Paths: []Path{
				{DeathMountainWest, open},
				{LoruleDeathMountainEast, normal(merge)},
			},
		},
		{
			ID:     HyruleCastle,
			Course: "DungeonCastle",
			Checks: []*Check{
				chest("[HC] Battlement", normal(attack)),
				chest("[HC] West Wing", open),
				event("[HC] Throne", normal(boss)),
			},
			Paths: []Path{
				{HyruleField, open},
			},
		},
	}
}
