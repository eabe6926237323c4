package world

import "ravio/pkg/game/items"

const (
	EasternPalaceFoyer   LocationID = "Eastern Palace"
	EasternPalace2F      LocationID = "Eastern Palace 2F"
	EasternPalaceBoss    LocationID = "Eastern Palace Boss"
	HouseOfGalesFoyer    LocationID = "House of Gales"
	HouseOfGales2F       LocationID = "House of Gales 2F"
	HouseOfGales3F       LocationID = "House of Gales 3F"
	HouseOfGalesBoss     LocationID = "House of Gales Boss"
	TowerOfHeraFoyer     LocationID = "Tower of Hera"
	TowerOfHeraUpper     LocationID = "Tower of Hera Upper"
	TowerOfHeraBoss      LocationID = "Tower of Hera Boss"
	HyruleSanctuaryLobby LocationID = "Hyrule Sanctuary"
	HyruleSanctuaryInner LocationID = "Hyrule Sanctuary Inner"
)

func hyruleDungeons() []*Location {
	const (
		ep  = items.EasternPalace
		hog = items.HouseOfGales
		toh = items.TowerOfHera
		hs  = items.HyruleSanctuary
	)
	return []*Location{
		// Eastern Palace
		{
			ID:     EasternPalaceFoyer,
			Course: "DungeonEast",
			Checks: []*Check{
				chest("[EP] (1F) Merge Chest", normal(merge)),
				chest("[EP] (1F) Left Door Chest", open),
				chest("[EP] (1F) Popo Room", normal(attack)),
				chest("[EP] (1F) Secret Room", normal(attack)),
				chest("[EP] (1F) Switch Room", normal(farSw)),
			},
			Paths: []Path{
				{EasternRuins, open},
				{EasternPalace2F, normal(keys(ep, 1), attack)},
			},
		},
		{
			ID:     EasternPalace2F,
			Course: "DungeonEast",
			Checks: []*Check{
				chest("[EP] (2F) Defeat Popos", normal(attack)),
				chest("[EP] (2F) Ball Room", normal(attack)),
				chest("[EP] (2F) Switch Room", normal(farSw)),
				chest("[EP] (2F) Big Chest", normal(bigKey(ep))),
			},
			Paths: []Path{
				{EasternPalaceFoyer, open},
				{EasternPalaceBoss, normal(keys(ep, 2), bigKey(ep), farSw)},
			},
		},
		{
			ID:     EasternPalaceBoss,
			Course: "DungeonEast",
			Checks: []*Check{
				chest("[EP] (3F) Escape Chest", normal(boss)),
				heart("[EP] Yuga (1)", normal(boss)),
				prize(ep, normal(boss)),
			},
			Paths: []Path{
				{EasternPalace2F, open},
			},
		},

		// House of Gales
		{
			ID:     HouseOfGalesFoyer,
			Course: "DungeonWind",
			Checks: []*Check{
				chest("[HoG] (1F) Torches", normal(fire)),
				chest("[HoG] (1F) Switch Room", normal(sw)),
				chest("[HoG] (1F) Fire Bubbles", normal(fire)),
				chest("[HoG] (1F) Blue Bari Room", normal(attack)),
			},
			Paths: []Path{
				{LakeHylia, open},
				{HouseOfGales2F, normal(keys(hog, 1))},
			},
		},
		{
			ID:     HouseOfGales2F,
			Course: "DungeonWind",
			Checks: []*Check{
				chest("[HoG] (2F) Big Chest", normal(bigKey(hog))),
				chest("[HoG] (2F) Narrow Ledge", normal(merge).Hard(boots)),
				chest("[HoG] (2F) Fire Ring", normal(keys(hog, 2), merge)),
			},
			Paths: []Path{
				{HouseOfGalesFoyer, open},
				{HouseOfGales3F, normal(keys(hog, 3))},
			},
		},
		{
			ID:     HouseOfGales3F,
			Course: "DungeonWind",
			Checks: []*Check{
				chest("[HoG] (3F) Fire Bubbles", normal(fire)),
				chest("[HoG] (3F) Rat Room", normal(attack)),
			},
			Paths: []Path{
				{HouseOfGales2F, open},
				{HouseOfGalesBoss, normal(keys(hog, 4), bigKey(hog), boss)},
			},
		},
		{
			ID:     HouseOfGalesBoss,
			Course: "DungeonWind",
			Checks: []*Check{
				heart("[HoG] Margomill", normal(boss)),
				prize(hog, normal(boss)),
			},
			Paths: []Path{
				{HouseOfGales3F, open},
			},
		},

		// Tower of Hera
		{
			ID:     TowerOfHeraFoyer,
			Course: "DungeonHera",
			Checks: []*Check{
				chest("[ToH] (1F) Outside", normal(merge)),
				chest("[ToH] (1F) Center", normal(hammer)),
				chest("[ToH] (3F) Platform", normal(hammer)),
			},
			Paths: []Path{
				{DeathMountainWest, open},
				{TowerOfHeraUpper, normal(keys(toh, 1), hammer)},
			},
		},
		{
			ID:     TowerOfHeraUpper,
			Course: "DungeonHera",
			Checks: []*Check{
				chest("[ToH] (5F) Red/Blue Switches", normal(sw)),
				chest("[ToH] (6F) Left Mole", normal(attack)),
				chest("[ToH] (6F) Right Mole", normal(attack)),
				chest("[ToH] (7F) Outside (Ledge)", normal(merge)),
				chest("[ToH] (8F) Fairy Room", normal(keys(toh, 2))),
				chest("[ToH] (11F) Big Chest", normal(bigKey(toh))),
			},
			Paths: []Path{
				{TowerOfHeraFoyer, open},
				{TowerOfHeraBoss, normal(keys(toh, 2), bigKey(toh), boss)},
			},
		},
		{
			ID:     TowerOfHeraBoss,
			Course: "DungeonHera",
			Checks: []*Check{
				heart("[ToH] Moldorm", normal(boss)),
				prize(toh, normal(boss)),
			},
			Paths: []Path{
				{TowerOfHeraUpper, open},
			},
		},

		// Hyrule Sanctuary
		{
			ID:     HyruleSanctuaryLobby,
			Course: "CaveLight",
			Checks: []*Check{
				chest("[HS] Entrance", open),
				chest("[HS] Lower Chest", normal(dark)),
				chest("[HS] Upper Chest", normal(dark)),
			},
			Paths: []Path{
				{HyruleGraveyard, open},
				{HyruleSanctuaryInner, normal(keys(hs, 1), dark)},
			},
		},
		{
			ID:     HyruleSanctuaryInner,
			Course: "CaveLight",
			Checks: []*Check{
				chest("[HS] Ledge", normal(merge)),
			},
			Paths: []Path{
				{HyruleSanctuaryLobby, open},
			},
		},
	}
}
