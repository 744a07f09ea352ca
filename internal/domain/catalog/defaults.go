package catalog

// Compiled-in catalog values matching the upstream provider's published
// enumerations. Used when the startup refresh against the upstream fails,
// and as the baseline for suggestion matching in tests.

// DefaultTypes are the known energy types.
func DefaultTypes() Catalog {
	return New([]string{
		"Colorless", "Darkness", "Dragon", "Fairy", "Fighting",
		"Fire", "Grass", "Lightning", "Metal", "Psychic", "Water",
	})
}

// DefaultSupertypes are the known card supertypes.
func DefaultSupertypes() Catalog {
	return New([]string{"Energy", "Pokémon", "Trainer"})
}

// DefaultSubtypes are the known card subtypes.
func DefaultSubtypes() Catalog {
	return New([]string{
		"ACE SPEC", "Ancient", "BREAK", "Baby", "Basic", "EX", "Eternamax",
		"Fusion Strike", "Future", "GX", "Goldenrod Game Corner", "Item",
		"LEGEND", "Level-Up", "MEGA", "Pokémon Tool", "Pokémon Tool F",
		"Prime", "Prism Star", "Radiant", "Rapid Strike", "Restored",
		"Rocket's Secret Machine", "Single Strike", "Special", "Stadium",
		"Stage 1", "Stage 2", "Star", "Supporter", "TAG TEAM", "Team Plasma",
		"Technical Machine", "Tera", "Ultra Beast", "V", "V-UNION", "VMAX",
		"VSTAR", "ex",
	})
}

// DefaultRarities are the known card rarities.
func DefaultRarities() Catalog {
	return New([]string{
		"ACE SPEC Rare", "Amazing Rare", "Classic Collection", "Common",
		"Double Rare", "Hyper Rare", "Illustration Rare", "LEGEND",
		"Promo", "Radiant Rare", "Rare", "Rare ACE", "Rare BREAK",
		"Rare Holo", "Rare Holo EX", "Rare Holo GX", "Rare Holo LV.X",
		"Rare Holo Star", "Rare Holo V", "Rare Holo VMAX", "Rare Holo VSTAR",
		"Rare Prime", "Rare Prism Star", "Rare Rainbow", "Rare Secret",
		"Rare Shining", "Rare Shiny", "Rare Shiny GX", "Rare Ultra",
		"Shiny Rare", "Shiny Ultra Rare", "Special Illustration Rare",
		"Trainer Gallery Rare Holo", "Ultra Rare", "Uncommon",
	})
}

// DefaultLibrary groups the compiled-in catalogs.
func DefaultLibrary() *Library {
	return NewLibrary(DefaultTypes(), DefaultSupertypes(), DefaultSubtypes(), DefaultRarities())
}
