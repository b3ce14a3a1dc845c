// Package catalog holds the static, version-pinned tables describing
// every trackable collectible and upgrade: what it is called, where the
// save records it, which act it belongs to, and where to read more.
// The tables are data only; all detection logic lives in progress.
package catalog

// DetectKind selects how an entry's obtained state is read from the
// fact sets.
type DetectKind string

const (
	DetectFlag    DetectKind = "flag"
	DetectScene   DetectKind = "sceneData"
	DetectQuest   DetectKind = "quest"
	DetectCounter DetectKind = "counterThreshold"
)

// FlagSource names which flag map a DetectFlag entry reads: booleans on
// the playerData root, the tool unlock list, or the crest unlock list.
type FlagSource string

const (
	FlagsPlayerData FlagSource = "playerData"
	FlagsTools      FlagSource = "tools"
	FlagsCrests     FlagSource = "crests"
)

// Entry is one trackable item. IDs are the internal save identifiers;
// an entry is obtained when any of them resolves true.
type Entry struct {
	Name      string
	IDs       []string
	Kind      DetectKind
	Scene     string
	EventID   string
	Threshold int
	Act       int // 0 = cross-act
	Link      string
}

type CategoryID string

const (
	CategoryMasks     CategoryID = "masks"
	CategorySpools    CategoryID = "spools"
	CategoryHearts    CategoryID = "hearts"
	CategoryMisc      CategoryID = "misc"
	CategoryCrests    CategoryID = "crests"
	CategorySkills    CategoryID = "skills"
	CategoryAbilities CategoryID = "abilities"
	CategoryTools     CategoryID = "tools"
)

// Category groups entries for display and aggregation. GroupSize > 1
// marks a composite category (4 mask shards to a mask, 2 spool
// fragments to a spool). FallbackEventID is the generic scene-event id
// the game records when it does not distinguish the specific variant.
type Category struct {
	ID              CategoryID
	Title           string
	GroupSize       int
	FallbackEventID string
	Flags           FlagSource
	Entries         []Entry
}

// TierID names the evidence-backed tiers of a four-step upgrade track.
// Tier one never has an evidence flag; it is implied by the counter.
type TierID string

const (
	TierU2 TierID = "u2"
	TierU3 TierID = "u3"
	TierU4 TierID = "u4"
)

// TierEvidence pairs a playerData boolean with the tier it corroborates.
type TierEvidence struct {
	Flag string
	Tier TierID
}

// UpgradeTrack is one multi-step upgrade: the save's own counter field
// plus the ordered evidence flags for tiers beyond the first.
type UpgradeTrack struct {
	ID           string
	Title        string
	CounterField string
	Evidence     []TierEvidence
}

// JournalEntry is one Hunter's Journal enemy. Optional entries do not
// count toward required completion.
type JournalEntry struct {
	Name     string
	Target   int
	Optional bool
}

// FlagKeys returns every playerData boolean the catalog references:
// flag-detected entries outside the unlock maps plus all tier evidence.
// The extractor scrapes exactly these keys off the document root.
func FlagKeys(cats []Category, tracks []UpgradeTrack) []string {
	seen := map[string]bool{}
	var keys []string
	add := func(k string) {
		if k != "" && !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for _, cat := range cats {
		if cat.Flags != FlagsPlayerData {
			continue
		}
		for _, e := range cat.Entries {
			if e.Kind != DetectFlag {
				continue
			}
			for _, id := range e.IDs {
				add(id)
			}
		}
	}
	for _, track := range tracks {
		for _, ev := range track.Evidence {
			add(ev.Flag)
		}
	}
	return keys
}
