package catalog

// Journal returns the Hunter's Journal table: every tracked enemy, the
// kill count the journal demands, and whether the entry is optional
// (missable bosses and hidden foes that required completion ignores).
func Journal() []JournalEntry {
	e := func(name string, target int) JournalEntry {
		return JournalEntry{Name: name, Target: target}
	}
	opt := func(name string, target int) JournalEntry {
		return JournalEntry{Name: name, Target: target, Optional: true}
	}
	return []JournalEntry{
		e("Crawbug", 20),
		e("Pilgrim", 25),
		e("Bone Flyer", 15),
		e("Bell Beast", 1),
		e("Moss Mother", 1),
		e("Skarrgard", 8),
		e("Aknid", 15),
		e("Winged Pilgrim", 15),
		e("Sister Splinter", 1),
		e("Lace", 2),
		e("Fourth Chorus", 1),
		opt("Moorwing", 1),
		e("Conchfly", 15),
		e("Dustroach", 20),
		opt("Savage Beastfly", 2),
		e("Craw", 20),
		opt("Crawmother", 1),
		e("Vent Creeper", 15),
		e("Underworks Drone", 15),
		e("Cogwork Clapper", 10),
		e("Choir Attendant", 15),
		e("Choral Sentinel", 15),
		e("Cogwork Dancers", 1),
		opt("Trobbio", 1),
		e("Last Judge", 1),
		e("Plasmid", 15),
		opt("Voltvyrm", 1),
		opt("Seth", 1),
	}
}
