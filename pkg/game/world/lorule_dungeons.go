package world

import (
	"slices"

	"ravio/pkg/game/items"
	"ravio/pkg/game/logic"
)

const (
	DarkPalaceFoyer      LocationID = "Dark Palace"
	DarkPalaceB1         LocationID = "Dark Palace B1"
	DarkPalace2F         LocationID = "Dark Palace 2F"
	DarkPalaceBoss       LocationID = "Dark Palace Boss"
	SwampPalaceFoyer     LocationID = "Swamp Palace"
	SwampPalaceUpper     LocationID = "Swamp Palace 1F"
	SwampPalaceBoss      LocationID = "Swamp Palace Boss"
	SkullWoodsB1         LocationID = "Skull Woods"
	SkullWoodsB2         LocationID = "Skull Woods B2"
	SkullWoodsBoss       LocationID = "Skull Woods Boss"
	ThievesHideoutB1     LocationID = "Thieves' Hideout"
	ThievesHideoutB2     LocationID = "Thieves' Hideout B2"
	ThievesHideoutBoss   LocationID = "Thieves' Hideout Boss"
	IceRuinsFoyer        LocationID = "Ice Ruins"
	IceRuinsLower        LocationID = "Ice Ruins Lower"
	IceRuinsBoss         LocationID = "Ice Ruins Boss"
	DesertPalaceFoyer    LocationID = "Desert Palace"
	DesertPalace2F       LocationID = "Desert Palace 2F"
	DesertPalace3F       LocationID = "Desert Palace 3F"
	DesertPalaceBoss     LocationID = "Desert Palace Boss"
	TurtleRockFoyer      LocationID = "Turtle Rock"
	TurtleRockLower      LocationID = "Turtle Rock B1"
	TurtleRockBoss       LocationID = "Turtle Rock Boss"
	LoruleSanctuaryLobby LocationID = "Lorule Sanctuary"
	LoruleCastle1F       LocationID = "Lorule Castle"
	LoruleCastle3F       LocationID = "Lorule Castle 3F"
	LoruleCastle4F       LocationID = "Lorule Castle 4F"
	ThroneRoom           LocationID = "Throne Room"
)

// goal is met once Yuga Ganon falls.
var goal = logic.Normal(logic.Has(items.Triforce))

func regions() []*Location {
	return slices.Concat(hyrule(), hyruleDungeons(), lorule(), loruleDungeons())
}

func loruleDungeons() []*Location {
	const (
		pd    = items.DarkPalace
		sp    = items.SwampPalace
		skull = items.SkullWoods
		th    = items.ThievesHideout
		ir    = items.IceRuins
		dp    = items.DesertPalace
		tr    = items.TurtleRock
		ls    = items.LoruleSanctuary
		lc    = items.LoruleCastle
	)
	return []*Location{
		// Dark Palace
		{
			ID:     DarkPalaceFoyer,
			Course: "DungeonDark",
			Checks: []*Check{
				chest("[PD] (1F) Right Pit", normal(dark)),
				chest("[PD] (1F) Left Pit", normal(dark)),
				chest("[PD] (1F) Switch Puzzle", normal(dark, farSw)),
				chest("[PD] (1F) Hidden Room (Upper)", normal(dark)),
				chest("[PD] (1F) Hidden Room (Lower)", normal(dark)),
			},
			Paths: []Path{
				{DarkRuins, open},
				{DarkPalaceB1, normal(keys(pd, 1), dark, bombs)},
			},
		},
		{
			ID:     DarkPalaceB1,
			Course: "DungeonDark",
			Checks: []*Check{
				chest("[PD] (B1) Fall From 1F", normal(dark)),
				chest("[PD] (B1) Maze", normal(dark)),
				chest("[PD] (B1) Helmasaur Room", normal(dark, attack)),
				chest("[PD] (B1) Helmasaur Room (Fall)", normal(dark, attack)),
			},
			Paths: []Path{
				{DarkPalaceFoyer, open},
				{DarkPalace2F, normal(keys(pd, 2), dark)},
			},
		},
		{
			ID:     DarkPalace2F,
			Course: "DungeonDark",
			Checks: []*Check{
				chest("[PD] (2F) Big Chest (Hidden)", normal(bigKey(pd), dark)),
				chest("[PD] (2F) South Hidden Room", normal(keys(pd, 3), dark)),
				chest("[PD] (2F) Alcove", normal(dark)),
				chest("[PD] (1F) Fall From 2F", normal(dark)),
			},
			Paths: []Path{
				{DarkPalaceB1, open},
				{DarkPalaceBoss, normal(keys(pd, 4), bigKey(pd), boss, dark)},
			},
		},
		{
			ID:     DarkPalaceBoss,
			Course: "DungeonDark",
			Checks: []*Check{
				heart("[PD] Gemesaur King", normal(boss)),
				prize(pd, normal(boss)),
			},
			Paths: []Path{
				{DarkPalace2F, open},
			},
		},

		// Swamp Palace
		{
			ID:     SwampPalaceFoyer,
			Course: "DungeonWater",
			Checks: []*Check{
				chest("[SP] (B1) Center", normal(hookshot)),
				chest("[SP] (B1) Raft Room (Left)", normal(swim)),
				chest("[SP] (B1) Raft Room (Right)", normal(swim)),
				chest("[SP] (B1) Raft Room (Pillar)", normal(swim, attack)),
				chest("[SP] (B1) Gyorm", normal(attack)),
				chest("[SP] (B1) Waterfall Room", normal(keys(sp, 1))),
			},
			Paths: []Path{
				{LoruleLake, open},
				{SwampPalaceUpper, normal(keys(sp, 2))},
			},
		},
		{
			ID:     SwampPalaceUpper,
			Course: "DungeonWater",
			Checks: []*Check{
				chest("[SP] (1F) Water Puzzle", normal(swim)),
				chest("[SP] (1F) East Room", normal(keys(sp, 3))),
				chest("[SP] (1F) West Room", normal(attack)),
				chest("[SP] (1F) Big Chest (Fire)", normal(bigKey(sp), fire)),
			},
			Paths: []Path{
				{SwampPalaceFoyer, open},
				{SwampPalaceBoss, normal(keys(sp, 4), bigKey(sp), boss)},
			},
		},
		{
			ID:     SwampPalaceBoss,
			Course: "DungeonWater",
			Checks: []*Check{
				heart("[SP] Arrghus", normal(boss)),
				prize(sp, normal(boss)),
			},
			Paths: []Path{
				{SwampPalaceUpper, open},
			},
		},

		// Skull Woods
		{
			ID:     SkullWoodsB1,
			Course: "DungeonDokuro",
			Checks: []*Check{
				chest("[SW] (B1) Gibdo Room (Lower)", normal(attack)),
				chest("[SW] (B1) South Chest", normal(keys(skull, 1))),
				chest("[SW] (B1) Grate Room", normal(fire)),
				chest("[SW] (B1) Gibdo Room (Hole)", normal(attack)),
				quest("Skull Eye Right", items.SkullEyeRight, normal(keys(skull, 1), attack)),
				quest("Skull Eye Left", items.SkullEyeLeft, normal(keys(skull, 2), attack)),
			},
			Paths: []Path{
				{SkullWoodsOverworld, open},
				{SkullWoodsB2, normal(has(items.SkullEyeRight), has(items.SkullEyeLeft))},
			},
		},
		{
			ID:     SkullWoodsB2,
			Course: "DungeonDokuro",
			Checks: []*Check{
				chest("[SW] (B2) Moving Platform Room", normal(merge)),
				chest("[SW] (B1) Big Chest (Eyes)", normal(bigKey(skull))),
				chest("[SW] (B1) Big Chest (Upper)", normal(fire)),
			},
			Paths: []Path{
				{SkullWoodsB1, open},
				{SkullWoodsBoss, normal(keys(skull, 3), bigKey(skull), fire, boss)},
			},
		},
		{
			ID:     SkullWoodsBoss,
			Course: "DungeonDokuro",
			Checks: []*Check{
				heart("[SW] Knucklemaster", normal(boss)),
				prize(skull, normal(boss)),
			},
			Paths: []Path{
				{SkullWoodsB2, open},
			},
		},

		// Thieves' Hideout
		{
			ID:     ThievesHideoutB1,
			Course: "DungeonHagure",
			Checks: []*Check{
				chest("[T'H] (B1) Jail Cell", normal(merge)),
				chest("[T'H] (B1) Grate Chest", normal(merge, sw)),
				quest("Thieves' Hideout B1 Door", items.ThievesB1DoorOpen, normal(merge, sw)),
			},
			Paths: []Path{
				{ThievesTown, open},
				{ThievesHideoutB2, normal(has(items.ThievesB1DoorOpen))},
			},
		},
		{
			ID:     ThievesHideoutB2,
			Course: "DungeonHagure",
			Checks: []*Check{
				chest("[T'H] (B2) Grate Chest (Fall)", normal(attack)),
				chest("[T'H] (B2) Switch Puzzle Room", normal(sw)),
				chest("[T'H] (B2) Jail Cell", normal(keys(th, 1))),
				chest("[T'H] (B2) Eyegores", normal(attack)),
				chest("[T'H] (B3) Underwater", normal(swim)),
				chest("[T'H] (B3) Big Chest (Hidden)", normal(bigKey(th))),
			},
			Paths: []Path{
				{ThievesHideoutB1, open},
				{ThievesHideoutBoss, normal(bigKey(th), boss, swim)},
			},
		},
		{
			ID:     ThievesHideoutBoss,
			Course: "DungeonHagure",
			Checks: []*Check{
				heart("[T'H] Stalblind", normal(boss)),
				prize(th, normal(boss)),
			},
			Paths: []Path{
				{ThievesHideoutB2, open},
			},
		},

		// Ice Ruins
		{
			ID:     IceRuinsFoyer,
			Course: "DungeonIce",
			Checks: []*Check{
				chest("[IR] (1F) Hidden Chest", normal(fireRod)),
				chest("[IR] (B1) East Chest", open),
				chest("[IR] (B1) Narrow Ledge", normal(merge)),
				chest("[IR] (B1) Upper Chest", normal(attack)),
			},
			Paths: []Path{
				{LoruleDeathMountainWest, open},
				{IceRuinsLower, normal(keys(ir, 1))},
			},
		},
		{
			ID:     IceRuinsLower,
			Course: "DungeonIce",
			Checks: []*Check{
				chest("[IR] (B2) Long Merge Chest", normal(merge)),
				chest("[IR] (B3) Grate Chest (Left)", normal(keys(ir, 2))),
				chest("[IR] (B3) Grate Chest (Right)", normal(attack)),
				chest("[IR] (B4) Ice Pillar", normal(fireRod)),
				chest("[IR] (B5) Big Chest", normal(bigKey(ir))),
			},
			Paths: []Path{
				{IceRuinsFoyer, open},
				{IceRuinsBoss, normal(keys(ir, 3), bigKey(ir), boss)},
			},
		},
		{
			ID:     IceRuinsBoss,
			Course: "DungeonIce",
			Checks: []*Check{
				heart("[IR] Dharkstare", normal(boss)),
				prize(ir, normal(boss)),
			},
			Paths: []Path{
				{IceRuinsLower, open},
			},
		},

		// Desert Palace
		{
			ID:     DesertPalaceFoyer,
			Course: "DungeonSand",
			Checks: []*Check{
				chest("[DP] (1F) Entrance", normal(sandRod)),
				chest("[DP] (1F) Sand Room (South)", normal(sandRod)),
				chest("[DP] (1F) Sand Switch Room", normal(sandRod, sw)),
				chest("[DP] (1F) Sand Room (North)", normal(keys(dp, 1), sandRod)),
				chest("[DP] (1F) Big Chest (Behind Wall)", normal(bigKey(dp), sandRod)),
			},
			Paths: []Path{
				{MiseryMire, open},
				{DesertPalace2F, normal(keys(dp, 2), sandRod)},
			},
		},
		{
			ID:     DesertPalace2F,
			Course: "DungeonSand",
			Checks: []*Check{
				chest("[DP] (2F) Under Rock (Left)", normal(liftBig)),
				chest("[DP] (2F) Under Rock (Right)", normal(liftBig)),
				chest("[DP] (2F) Under Rock (Ball Room)", normal(liftBig)),
				chest("[DP] (2F) Beamos Room", normal(keys(dp, 3), sandRod)),
				chest("[DP] (2F) Red/Blue Switches", normal(sw)),
				chest("[DP] (2F) Leever Room", normal(attack)),
			},
			Paths: []Path{
				{DesertPalaceFoyer, open},
				{DesertPalace3F, normal(keys(dp, 4), liftBig)},
			},
		},
		{
			ID:     DesertPalace3F,
			Course: "DungeonSand",
			Checks: []*Check{
				chest("[DP] (3F) Behind Falling Sand", normal(keys(dp, 5), sandRod)),
				chest("[DP] (3F) Armos Room", normal(attack)),
			},
			Paths: []Path{
				{DesertPalace2F, open},
				{DesertPalaceBoss, normal(keys(dp, 5), bigKey(dp), boss)},
			},
		},
		{
			ID:     DesertPalaceBoss,
			Course: "DungeonSand",
			Checks: []*Check{
				heart("[DP] Zaganaga", normal(boss, sandRod)),
				prize(dp, normal(boss, sandRod)),
			},
			Paths: []Path{
				{DesertPalace3F, open},
			},
		},

		// Turtle Rock
		{
			ID:     TurtleRockFoyer,
			Course: "DungeonKame",
			Checks: []*Check{
				chest("[TR] (1F) Center", normal(iceRod)),
				chest("[TR] (1F) Grate Chest", normal(iceRod)),
				chest("[TR] (1F) Portal Room NW", normal(merge)),
				chest("[TR] (1F) Northeast Ledge", normal(merge, attack)),
				chest("[TR] (1F) Under Center", normal(iceRod, swim)),
			},
			Paths: []Path{
				{LoruleLake, open},
				{TurtleRockLower, normal(keys(tr, 1), iceRod)},
			},
		},
		{
			ID:     TurtleRockLower,
			Course: "DungeonKame",
			Checks: []*Check{
				chest("[TR] (B1) Northeast Room", normal(iceRod)),
				chest("[TR] (B1) Grate Chest (Small)", normal(keys(tr, 2))),
				chest("[TR] (B1) Big Chest (Center)", normal(bigKey(tr))),
				chest("[TR] (B1) Platform", normal(iceRod, swim)),
				chest("[TR] (B1) Under Center", normal(swim)),
			},
			Paths: []Path{
				{TurtleRockFoyer, open},
				{TurtleRockBoss, normal(keys(tr, 3), bigKey(tr), iceRod, boss)},
			},
		},
		{
			ID:     TurtleRockBoss,
			Course: "DungeonKame",
			Checks: []*Check{
				heart("[TR] Grinexx", normal(boss)),
				prize(tr, normal(boss)),
			},
			Paths: []Path{
				{TurtleRockLower, open},
			},
		},

		// Lorule Sanctuary
		{
			ID:     LoruleSanctuaryLobby,
			Course: "CaveDark",
			Checks: []*Check{
				chest("[LS] Entrance Chest", open),
				chest("[LS] Lower Chest", normal(dark)),
				chest("[LS] Upper Chest", normal(dark)),
				chest("[LS] Ledge", normal(keys(ls, 1), dark, merge)),
			},
			Paths: []Path{
				{LoruleGraveyard, open},
			},
		},

		// Lorule Castle
		{
			ID:     LoruleCastle1F,
			Course: "DungeonGanon",
			Checks: []*Check{
				chest("[LC] (1F) Ledge", normal(merge)),
				chest("[LC] (1F) Center", open),
				chest("[LC] (2F) Near Torches", normal(fire)),
				chest("[LC] (2F) Hidden Path", normal(keys(lc, 1))),
				chest("[LC] (2F) Ledge", normal(merge)),
			},
			Paths: []Path{
				{LoruleCastleField, open},
				{LoruleCastle3F, normal(keys(lc, 2))},
			},
		},
		{
			ID:     LoruleCastle3F,
			Course: "DungeonGanon",
			Checks: []*Check{
				chest("[LC] (3F) Bomb Trial Center Chest", normal(bombs)),
				chest("[LC] (3F) Big Bomb Flower Chest", normal(bombs, merge)),
				chest("[LC] (3F) Merge Trial Free Chest", open),
				chest("[LC] (3F) Spike Ball Chest", normal(attack)),
				chest("[LC] (3F) Tile Trial Chest", normal(keys(lc, 3), attack)),
				quest("Bomb Trial", items.LcBombTrial, normal(keys(lc, 3), bombs, attack)),
				quest("Tile Trial", items.LcTileTrial, normal(keys(lc, 3), attack)),
			},
			Paths: []Path{
				{LoruleCastle1F, open},
				{LoruleCastle4F, normal(keys(lc, 4))},
			},
		},
		{
			ID:     LoruleCastle4F,
			Course: "DungeonGanon",
			Checks: []*Check{
				chest("[LC] (4F) Lamp Trial Chest", normal(fire)),
				chest("[LC] (4F) Hookshot Trial Chest", normal(hookshot)),
				chest("[LC] (4F) Center", normal(keys(lc, 5))),
				chest("[LC] (4F) Hidden Path", normal(attack)),
				quest("Lamp Trial", items.LcLampTrial, normal(fire, attack)),
				quest("Hook Trial", items.LcHookTrial, normal(hookshot, attack)),
				chest("[LC] Zelda", normal(boss)),
			},
			Paths: []Path{
				{LoruleCastle3F, open},
				{ThroneRoom, normal(logic.TrialsDone)},
			},
		},
		{
			ID:     ThroneRoom,
			Course: "DungeonBoss",
			Checks: []*Check{
				quest("Yuga Ganon", items.Triforce,
					normal(logic.HasBowOfLight, either(logic.HasSword, logic.Swordless), boss)),
			},
			Paths: []Path{
				{HildasStudy, open},
				{LoruleCastle4F, open},
			},
		},
	}
}
