// Package facts turns regions of a decoded save document into
// query-ready fact sets. Each extractor makes one pass over one list in
// the document and tolerates the region being absent or misshapen,
// which older saves routinely are.
package facts

import (
	"github.com/janssenandrew/silksong-save-analyzer/internal/savefile"
)

type NameFlagMap map[string]bool

type NameCountMap map[string]int

// Amount returns the recorded count, 0 when the name was never seen.
func (m NameCountMap) Amount(name string) int { return m[name] }

type QuestSet map[string]struct{}

func (s QuestSet) Completed(name string) bool {
	_, ok := s[name]
	return ok
}

// SceneEventSet holds persistent world-state booleans that evaluated
// true, keyed "sceneName|eventID".
type SceneEventSet map[string]struct{}

func SceneKey(scene, id string) string { return scene + "|" + id }

func (s SceneEventSet) Has(scene, id string) bool {
	_, ok := s[SceneKey(scene, id)]
	return ok
}

// EventPredicate decides whether a (scene, eventID) pair is worth
// keeping. Categories match either an exact id or an id prefix.
type EventPredicate func(scene, id string) bool

// Save-document regions the extractors read.
const (
	PathTools        = "playerData.Tools.savedData"
	PathCrests       = "playerData.ToolEquips.savedData"
	PathCollectables = "playerData.Collectables.savedData"
	PathQuests       = "playerData.QuestCompletionData.savedData"
	PathSceneBools   = "sceneData.persistentBools.serializedList"
	PathJournalKills = "playerData.EnemyJournalKillData.list"
)

// UnlockMap builds a name→unlocked map from a {Name, Data.IsUnlocked}
// list. Records without a resolvable name are skipped; duplicate names
// keep the last record.
func UnlockMap(doc savefile.Document, path string) NameFlagMap {
	out := NameFlagMap{}
	for _, el := range doc.List(path) {
		name := savefile.LookupStr(el, "Name")
		if name == "" {
			continue
		}
		out[name] = savefile.LookupBool(el, "Data.IsUnlocked")
	}
	return out
}

// CountMap builds a name→amount map from a {Name, Data.Amount} list,
// coercing amounts to ints with a 0 fallback.
func CountMap(doc savefile.Document, path string) NameCountMap {
	out := NameCountMap{}
	for _, el := range doc.List(path) {
		name := savefile.LookupStr(el, "Name")
		if name == "" {
			continue
		}
		out[name] = savefile.LookupInt(el, "Data.Amount")
	}
	return out
}

// CompletedQuests returns the set of quest names marked completed.
func CompletedQuests(doc savefile.Document) QuestSet {
	out := QuestSet{}
	for _, el := range doc.List(PathQuests) {
		name := savefile.LookupStr(el, "Name")
		if name == "" {
			continue
		}
		if savefile.LookupBool(el, "Data.IsCompleted") {
			out[name] = struct{}{}
		}
	}
	return out
}

// SceneEvents collects true persistent bools whose (scene, id) the
// predicate accepts. Records with an empty scene name are ignored.
func SceneEvents(doc savefile.Document, pred EventPredicate) SceneEventSet {
	out := SceneEventSet{}
	for _, el := range doc.List(PathSceneBools) {
		scene := savefile.LookupStr(el, "SceneName")
		id := savefile.LookupStr(el, "ID")
		if scene == "" || id == "" {
			continue
		}
		if !savefile.LookupBool(el, "Value") {
			continue
		}
		if pred != nil && !pred(scene, id) {
			continue
		}
		out[SceneKey(scene, id)] = struct{}{}
	}
	return out
}

// KillCounts builds enemy name→kills from the Hunter's Journal list.
func KillCounts(doc savefile.Document) NameCountMap {
	out := NameCountMap{}
	for _, el := range doc.List(PathJournalKills) {
		name := savefile.LookupStr(el, "Name")
		if name == "" {
			continue
		}
		out[name] = savefile.LookupInt(el, "Record.Kills")
	}
	return out
}

// BoolFields scrapes the given boolean keys off the playerData root.
func BoolFields(doc savefile.Document, keys []string) NameFlagMap {
	out := NameFlagMap{}
	for _, key := range keys {
		out[key] = doc.Bool("playerData." + key)
	}
	return out
}

// IntField reads one integer off the playerData root (upgrade counters).
func IntField(doc savefile.Document, key string) int {
	return doc.Int("playerData." + key)
}
