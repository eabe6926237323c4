package world

import (
	"ravio/pkg/game/items"
	"ravio/pkg/game/logic"
)

const (
	LoruleField             LocationID = "Lorule Field"
	ThievesTown             LocationID = "Thieves' Town"
	SkullWoodsOverworld     LocationID = "Skull Woods (Overworld)"
	LoruleLake              LocationID = "Lorule Lake"
	DarkRuins               LocationID = "Dark Ruins"
	LoruleGraveyard         LocationID = "Lorule Graveyard"
	MiseryMire              LocationID = "Misery Mire"
	LoruleDeathMountainWest LocationID = "Death Mountain (Lorule)"
	LoruleDeathMountainEast LocationID = "Death Mountain East (Lorule)"
	LoruleCastleField       LocationID = "Lorule Castle Field"
	HildasStudy             LocationID = "Hilda's Study"
)

func lorule() []*Location {
	return []*Location{
		{
			ID:     LoruleField,
			Course: "FieldDark",
			Checks: []*Check{
				chest("Vacant House", normal(bombs)),
				chest("Lorule Field Hookshot Chest", normal(hookshot)),
				chest("Lorule Field Treasure Dungeon", normal(hookshot, merge)),
				chest("Big Bomb Flower Cave", normal(bombs)),
				chest("Swamp Cave (Left)", normal(bombs)),
				chest("Swamp Cave (Middle)", normal(bombs)),
				chest("Swamp Cave (Right)", normal(bombs)),
				event("Great Rupee Fairy", normal(bombs, lift)),
				event("Blacksmith (Lorule)", normal(logic.MasterOre(4))),
				heart("Lorule Field Pegs", normal(hammer)),
				minigame("Rupee Rush (Lorule)", open),
				minigame("Octoball Derby", normal(attack)),
				quest("Big Bomb Flower", items.BigBombFlower, normal(lift).Hard(bombs)),
				quest("Access Lorule Castle Field", items.AccessLoruleCastleField, normal(attack)),
			},
			Paths: []Path{
				{HyruleField, normal(merge)},
				{ThievesTown, open},
				{SkullWoodsOverworld, open},
				{LoruleLake, open},
				{DarkRuins, open},
				{LoruleGraveyard, open},
				{LoruleDeathMountainWest, normal(either(liftBig, all(logic.LoruleVanes, bell))).Glitched(boots)},
				{LoruleCastleField, normal(has(items.AccessLoruleCastleField))},
			},
		},
		{
			ID:     ThievesTown,
			Course: "FieldDark",
			Checks: []*Check{
				event("Thief Girl", normal(has(items.SageOsfala))),
				chest("n-Shaped House", normal(bombs)),
				chest("Destroyed House", open),
				heart("Thieves' Town Rooftop", normal(merge)),
				shop("Thieves' Town Item Shop (1)", open),
			},
			Paths: []Path{
				{LoruleField, open},
				{ThievesHideoutB1, normal(merge)},
			},
		},
		{
			ID:     SkullWoodsOverworld,
			Course: "FieldDark",
			Checks: []*Check{
				chest("Skull Woods Outdoor Chest", open),
				chest("Canyon House", normal(either(boomer, all(hookshot, merge)))),
				heart("Skull Woods Ledge", normal(merge)),
			},
			Paths: []Path{
				{LoruleField, open},
				{SkullWoodsB1, normal(merge)},
			},
		},
		{
			ID:     LoruleLake,
			Course: "FieldDark",
			Checks: []*Check{
				chest("Lorule Lake Chest", normal(swim)),
				chest("Lorule Lake Treasure Dungeon", normal(swim, hookshot)),
				heart("Lorule Lake Hookshot Ledge", normal(hookshot)),
				shop("Lorule Lakeside Item Shop (1)", open),
				quest("Turtle Flipped", items.TurtleFlipped, normal(swim, iceRod)),
			},
			Paths: []Path{
				{LoruleField, open},
				{SwampPalaceFoyer, normal(swim, hookshot)},
				{TurtleRockFoyer, normal(has(items.TurtleFlipped))},
			},
		},
		{
			ID:     DarkRuins,
			Course: "FieldDark",
			Checks: []*Check{
				chest("Dark Ruins Lakeview Chest", normal(swim)),
				chest("Dark Maze Chest", open),
				heart("Dark Maze Ledge", normal(merge)),
				event("Hinox (1)", normal(attack)),
				event("Hinox (2)", normal(attack)),
				event("Hinox (3)", normal(attack)),
				chest("Ku's Domain Fight", normal(either(bombs, bow, hammer))),
			},
			Paths: []Path{
				{LoruleField, open},
				{DarkPalaceFoyer, normal(has(items.BigBombFlower))},
			},
		},
		{
			ID:     LoruleGraveyard,
			Course: "FieldDark",
			Checks: []*Check{
				chest("Graveyard Peninsula", normal(swim)),
				chest("Philosopher's Cave", normal(merge)),
				heart("Lorule Graveyard Big Rock", normal(liftBig)),
			},
			Paths: []Path{
				{LoruleField, open},
				{LoruleSanctuaryLobby, open},
			},
		},
		{
			ID:     MiseryMire,
			Course: "FieldDark",
			Checks: []*Check{
				chest("Misery Mire Ledge", normal(merge)),
				chest("Misery Mire Treasure Dungeon", normal(sandRod, merge)),
				heart("Misery Mire Peninsula", normal(sandRod)),
			},
			Paths: []Path{
				{DesertOfMystery, normal(merge)},
				{DesertPalaceFoyer, normal(sandRod)},
			},
		},
		{
			ID:     LoruleDeathMountainWest,
			Course: "FieldDark",
			Checks: []*Check{
				chest("Ice Cave Ledge", normal(merge)),
				event("Ice Gimos Fight", normal(attack)),
				chest("Lorule Mountain W Ledge", normal(merge)),
				chest("Lorule Death Mountain Treasure Dungeon", normal(merge, hookshot)),
			},
			Paths: []Path{
				{LoruleField, open},
				{IceRuinsFoyer, normal(fireRod)},
				{LoruleDeathMountainEast, normal(hookshot).Hard(boots)},
			},
		},
		{
			ID:     LoruleDeathMountainEast,
			Course: "FieldDark",
			Checks: []*Check{
				chest("Rosso's Ore Mine", normal(hammer)),
				chest("Lorule Mountain E Ledge", normal(merge)),
				minigame("Treacherous Tower", normal(attack)),
			},
			Paths: []Path{
				{DeathMountainEast, normal(merge)},
				{LoruleDeathMountainWest, normal(hookshot)},
			},
		},
		{
			ID:     LoruleCastleField,
			Course: "FieldDark",
			Checks: []*Check{
				chest("Lorule Castle Field Ledge", normal(merge)),
			},
			Paths: []Path{
				{LoruleField, open},
				{HildasStudy, open},
				{LoruleCastle1F, normal(logic.LCBarrier)},
			},
		},
		{
			ID:     HildasStudy,
			Course: "IndoorDark",
			Paths: []Path{
				{LoruleCastleField, open},
				{ThroneRoom, normal(logic.TrialsDoorOutside)},
			},
		},
	}
}
