package catalog

// Wiki link base; entries link their display page.
const wikiBase = "https://hollowknight.wiki/w/"

func wiki(page string) string { return wikiBase + page }

// Categories returns the built-in reference tables, one per displayed
// category. Entry data is pinned to the 1.0 save format; a save from a
// newer patch that renames an id simply reports the item as missing.
func Categories() []Category {
	flag := func(name, id string, act int, page string) Entry {
		return Entry{Name: name, IDs: []string{id}, Kind: DetectFlag, Act: act, Link: wiki(page)}
	}
	scene := func(name, sceneName, eventID string, act int, page string) Entry {
		return Entry{Name: name, IDs: []string{eventID}, Kind: DetectScene, Scene: sceneName, EventID: eventID, Act: act, Link: wiki(page)}
	}
	quest := func(name, questName string, act int, page string) Entry {
		return Entry{Name: name, IDs: []string{questName}, Kind: DetectQuest, Act: act, Link: wiki(page)}
	}
	counter := func(name, collectable string, threshold, act int, page string) Entry {
		return Entry{Name: name, IDs: []string{collectable}, Kind: DetectCounter, Threshold: threshold, Act: act, Link: wiki(page)}
	}
	tool := func(name string, act int, ids ...string) Entry {
		return Entry{Name: name, IDs: ids, Kind: DetectFlag, Act: act, Link: wiki("Tools_(Silksong)")}
	}

	masks := Category{
		ID:              CategoryMasks,
		Title:           "Mask Shards",
		GroupSize:       4,
		FallbackEventID: "Heart Piece",
		Flags:           FlagsPlayerData,
		Entries: []Entry{
			flag("Bone Bottom Shard", "PurchasedBonebottomHeartPiece", 1, "Mask_Shard_(Silksong)"),
			scene("Far Fields Shard", "Bone_East_13", "Heart Piece", 1, "Mask_Shard_(Silksong)"),
			scene("Marrow Shard", "Crawl_02", "Heart Piece", 1, "Mask_Shard_(Silksong)"),
			quest("Savage Beastfly Shard", "Savage Beastfly", 1, "Savage_Beastfly"),
			scene("Shellwood Shard", "Shellwood_14", "Heart Piece", 1, "Mask_Shard_(Silksong)"),
			scene("Deep Docks Shard", "Dock_08", "Heart Piece", 1, "Mask_Shard_(Silksong)"),
			quest("Flintbeetle Shard", "Volatile Flintbeetles", 1, "Volatile_Flintbeetles"),
			scene("Bellhart Shard", "Bellhart_04", "Heart Piece", 2, "Mask_Shard_(Silksong)"),
			flag("Merchant Enclave Shard", "MerchantEnclaveShellFragment", 2, "Mask_Shard_(Silksong)"),
			scene("Cogwork Core Shard", "Weave_05b", "Heart Piece", 2, "Mask_Shard_(Silksong)"),
			scene("Underworks Shard", "Under_10", "Heart Piece", 2, "Mask_Shard_(Silksong)"),
			scene("Blasted Steps Shard", "Coral_24", "Heart Piece_1", 2, "Mask_Shard_(Silksong)"),
			quest("Sprintmaster Shard", "Fastest in Pharloom", 2, "Fastest_in_Pharloom"),
			scene("Choral Chambers Shard", "Song_09", "Heart Piece", 2, "Mask_Shard_(Silksong)"),
			scene("Whiteward Shard", "Ward_03", "Heart Piece", 2, "Mask_Shard_(Silksong)"),
			scene("Whispering Vaults Shard", "Library_05", "Heart Piece", 3, "Mask_Shard_(Silksong)"),
			scene("The Slab Shard", "Slab_17", "Heart Piece", 3, "Mask_Shard_(Silksong)"),
			quest("Hidden Hunter Shard", "Hidden Hunter", 3, "Hidden_Hunter"),
			scene("Cogwork Dancers Shard", "Cog_07", "Heart Piece_2", 3, "Mask_Shard_(Silksong)"),
			scene("Mount Fay Shard", "Peak_06", "Heart Piece", 3, "Mask_Shard_(Silksong)"),
		},
	}

	spools := Category{
		ID:              CategorySpools,
		Title:           "Spool Fragments",
		GroupSize:       2,
		FallbackEventID: "Silk Spool",
		Flags:           FlagsPlayerData,
		Entries: []Entry{
			scene("Far Fields Fragment", "Bone_East_08", "Silk Spool", 1, "Spool_Fragment"),
			scene("Dustpens Fragment", "Dust_05", "Silk Spool", 1, "Spool_Fragment"),
			flag("Grindle's Fragment", "PurchasedGrindleSpoolSegment", 1, "Spool_Fragment"),
			scene("Greymoor Fragment", "Greymoor_02", "Silk Spool", 1, "Spool_Fragment"),
			quest("Courier Fragment", "My Missing Courier", 1, "My_Missing_Courier"),
			scene("Wisp Thicket Fragment", "Wisp_07", "Silk Spool", 1, "Spool_Fragment"),
			scene("Songclave Fragment", "Enclave_02", "Silk Spool", 2, "Spool_Fragment"),
			flag("Merchant Enclave Fragment", "MerchantEnclaveSpoolPiece", 2, "Spool_Fragment"),
			scene("Underworks Fragment", "Under_17", "Silk Spool", 2, "Spool_Fragment"),
			scene("Blasted Steps Fragment", "Coral_32", "Silk Spool", 2, "Spool_Fragment"),
			scene("Mount Fay Fragment", "Peak_04c", "Silk Spool", 2, "Spool_Fragment"),
			quest("Lost Flea Fragment", "The Lost Flea", 2, "Flea"),
			scene("Bilewater Fragment", "Shadow_13", "Silk Spool", 2, "Spool_Fragment"),
			scene("Whispering Vaults Fragment", "Library_11b", "Silk Spool_1", 3, "Spool_Fragment"),
			scene("Cogheart Fragment", "Cog_03", "Silk Spool", 3, "Spool_Fragment"),
			scene("The Slab Fragment", "Slab_06", "Silk Spool", 3, "Spool_Fragment"),
			quest("Balm Fragment", "Balm for the Wounded", 3, "Balm_for_the_Wounded"),
			scene("Memorium Fragment", "Arborium_09", "Silk Spool", 3, "Spool_Fragment"),
		},
	}

	hearts := Category{
		ID:              CategoryHearts,
		Title:           "Silk Hearts",
		FallbackEventID: "Silk Heart",
		Flags:           FlagsPlayerData,
		Entries: []Entry{
			scene("Bell Beast Heart", "Memory_Silk_Heart_BellBeast", "Silk Heart", 2, "Silk_Heart"),
			scene("Whiteward Heart", "Memory_Silk_Heart_WhiteWard", "Silk Heart", 2, "Silk_Heart"),
			scene("Snow Summit Heart", "Memory_Silk_Heart_Peak", "Silk Heart", 3, "Silk_Heart"),
		},
	}

	misc := Category{
		ID:    CategoryMisc,
		Title: "Miscellaneous",
		Flags: FlagsPlayerData,
		Entries: []Entry{
			counter("Everbloom", "Everbloom", 1, 3, "Everbloom"),
			counter("Elegy of the Deep", "Elegy of the Deep", 1, 3, "Elegy_of_the_Deep"),
			quest("Sylphsong", "Sylphsong", 3, "Sylphsong"),
			counter("Memory Lockets", "Memory Locket", 20, 0, "Memory_Locket"),
			flag("Architect's Key", "CollectedArchitectKey", 2, "Underworks"),
			scene("Vaultkeeper's Seal", "Library_08", "Seal Pickup", 2, "Whispering_Vaults"),
			quest("Caravan Charm", "The Great Flea Festival", 2, "Flea_Caravan"),
			scene("Moss Medallion", "Greymoor_09", "Medallion Pickup", 1, "Greymoor"),
		},
	}

	crests := Category{
		ID:    CategoryCrests,
		Title: "Crests",
		Flags: FlagsCrests,
		Entries: []Entry{
			flag("Hunter", "Hunter", 0, "Hunter_Crest"),
			flag("Reaper", "Reaper", 1, "Reaper_Crest"),
			flag("Wanderer", "Wanderer", 1, "Wanderer_Crest"),
			flag("Beast", "Warrior", 1, "Beast_Crest"),
			flag("Witch", "Witch", 2, "Witch_Crest"),
			flag("Architect", "Toolmaster", 2, "Architect_Crest"),
			flag("Shaman", "Spell", 3, "Shaman_Crest"),
		},
	}

	skills := Category{
		ID:    CategorySkills,
		Title: "Silk Skills",
		Flags: FlagsPlayerData,
		Entries: []Entry{
			flag("Silkspear", "hasSilkSpear", 1, "Silkspear"),
			flag("Thread Storm", "hasThreadSphere", 1, "Thread_Storm"),
			flag("Cross Stitch", "hasParry", 2, "Cross_Stitch"),
			flag("Sharpdart", "hasSilkCharge", 2, "Sharpdart"),
			flag("Rune Rage", "hasSilkBomb", 2, "Rune_Rage"),
			flag("Pale Nails", "hasSilkBossNeedle", 3, "Pale_Nails"),
		},
	}

	abilities := Category{
		ID:    CategoryAbilities,
		Title: "Abilities",
		Flags: FlagsPlayerData,
		Entries: []Entry{
			flag("Swift Step", "hasDash", 1, "Swift_Step"),
			flag("Cling Grip", "hasWalljump", 1, "Cling_Grip"),
			flag("Needolin", "hasNeedolin", 1, "Needolin"),
			flag("Drifter's Cloak", "hasBrolly", 1, "Drifter%27s_Cloak"),
			flag("Clawline", "hasHarpoonDash", 2, "Clawline"),
			flag("Needle Strike", "hasChargeSlash", 2, "Needle_Strike"),
			flag("Faydown Cloak", "hasDoubleJump", 3, "Faydown_Cloak"),
			flag("Silk Soar", "hasSuperJump", 3, "Silk_Soar"),
		},
	}

	tools := Category{
		ID:    CategoryTools,
		Title: "Tools",
		Flags: FlagsTools,
		Entries: []Entry{
			tool("Straight Pin", 1, "Straight Pin"),
			tool("Threefold Pin", 1, "Tri Pin"),
			tool("Sting Shard", 1, "Sting Shard"),
			tool("Tacks", 1, "Tack"),
			tool("Longpin", 1, "Harpoon"),
			tool("Curveclaw", 1, "Curve Claws"),
			tool("Curvesickle", 3, "Curve Claws Upgraded"),
			tool("Shakra Ring", 1, "Shakra Ring"),
			tool("Pimpillo", 1, "Pimpilo"),
			tool("Delver's Drill", 2, "Drill Bit"),
			tool("Cogwork Wheel", 2, "Cogwork Saw"),
			tool("Cogfly", 2, "Cogwork Flier"),
			tool("Flintslate", 1, "Flintstone"),
			tool("Voltvessels", 2, "Lightning Rod"),
			tool("Quick Sling", 1, "Quick Sling"),
			tool("Silkshot", 2, "Webshot Forge", "Webshot Architect", "Webshot Weaver"),
			tool("Snare Setter", 2, "Silk Snare"),
			tool("Barbed Bracelet", 1, "Barbed Wire"),
			tool("Warding Bell", 1, "Bell Bind"),
			tool("Pollip Pouch", 2, "Poison Pouch"),
			tool("Dead Bug's Purse", 1, "Dead Mans Purse"),
			tool("Shard Pendant", 1, "Bone Necklace"),
			tool("Magnetite Brooch", 2, "Rosary Magnet"),
			tool("Magnetite Dice", 2, "Magnetite Dice"),
			tool("Memory Crystal", 2, "Revenge Crystal"),
			tool("Flea Brew", 1, "Flea Brew"),
			tool("Fractured Mask", 2, "Fractured Mask"),
			tool("Magma Bell", 2, "Lava Charm"),
			tool("Wispfire Lantern", 2, "Wisp Lantern"),
			tool("Druid's Eye", 1, "Mosscreep Tool 1"),
			tool("Multibinder", 2, "Multibind"),
			tool("Spool Extender", 2, "Spool Extender"),
			tool("Claw Mirrors", 2, "Thief Claw"),
			tool("Thief's Mark", 1, "Thief Charm"),
			tool("Compass", 1, "Compass"),
			tool("Shell Satchel", 1, "Shell Satchel"),
			tool("Weighted Belt", 1, "Weighted Anklet"),
			tool("Ascendant's Grip", 3, "White Ring"),
			tool("Sawtooth Circlet", 3, "Ring Chain"),
			tool("Rosary Cannon", 2, "Rosary Cannon"),
			tool("Reserve Bind", 2, "Quickbind"),
			tool("Injector Band", 3, "Extractor"),
			tool("Scuttlebrace", 2, "Scuttlebrace"),
			tool("Sprintmaster's Medal", 2, "Sprintmaster"),
		},
	}

	return []Category{masks, spools, hearts, misc, crests, skills, abilities, tools}
}

// UpgradeTracks returns the three evidence-backed four-tier upgrades.
// Evidence order matters: the catch-up rule walks tiers ascending.
func UpgradeTracks() []UpgradeTrack {
	return []UpgradeTrack{
		{
			ID:           "needle",
			Title:        "Needle",
			CounterField: "nailUpgrades",
			Evidence: []TierEvidence{
				{Flag: "PurchasedPinsmithUpgrade2", Tier: TierU2},
				{Flag: "PurchasedPinsmithUpgrade3", Tier: TierU3},
				{Flag: "PurchasedPinsmithUpgrade4", Tier: TierU4},
			},
		},
		{
			ID:           "toolPouch",
			Title:        "Tool Pouch",
			CounterField: "ToolPouchUpgrades",
			// Tier two has no dedicated flag in the save; the counter
			// alone accounts for it via the catch-up rule.
			Evidence: []TierEvidence{
				{Flag: "PurchasedGrindleToolPouch", Tier: TierU3},
				{Flag: "CaravanTroupeLeaderToolPouch", Tier: TierU4},
			},
		},
		{
			ID:           "craftingKit",
			Title:        "Crafting Kit",
			CounterField: "ToolKitUpgrades",
			Evidence: []TierEvidence{
				{Flag: "PurchasedForgeToolKit", Tier: TierU2},
				{Flag: "PurchasedArchitectToolKit", Tier: TierU3},
				{Flag: "SavedCrowCourtToolKit", Tier: TierU4},
			},
		},
	}
}
