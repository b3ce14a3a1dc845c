// Package progress is the rule engine: it joins the static catalog
// against the fact sets extracted from one save and derives rows,
// totals, and completion predicates. Everything here is pure data
// transformation, recomputed from scratch on every decode.
package progress

import (
	"github.com/janssenandrew/silksong-save-analyzer/internal/catalog"
	"github.com/janssenandrew/silksong-save-analyzer/internal/facts"
)

// Row is one catalog entry resolved against a save.
type Row struct {
	Name     string `json:"name"`
	Obtained bool   `json:"obtained"`
	Act      int    `json:"act"`
	Link     string `json:"link"`
}

// CategoryProgress is one category's resolved rows plus the grouping
// parameters aggregation needs.
type CategoryProgress struct {
	ID        catalog.CategoryID `json:"id"`
	Title     string             `json:"title"`
	GroupSize int                `json:"groupSize,omitempty"`
	Rows      []Row              `json:"rows"`
}

// BuildCategories resolves every catalog category against the facts.
func BuildCategories(cats []catalog.Category, f *facts.Facts) []CategoryProgress {
	out := make([]CategoryProgress, 0, len(cats))
	for _, cat := range cats {
		out = append(out, BuildCategory(cat, f))
	}
	return out
}

// BuildCategory resolves one category. Each entry is dispatched on its
// detection kind; an entry with several internal ids is obtained when
// any of them resolves true.
func BuildCategory(cat catalog.Category, f *facts.Facts) CategoryProgress {
	rows := make([]Row, 0, len(cat.Entries))
	for _, e := range cat.Entries {
		rows = append(rows, Row{
			Name:     e.Name,
			Obtained: resolve(cat, e, f),
			Act:      e.Act,
			Link:     e.Link,
		})
	}
	return CategoryProgress{
		ID:        cat.ID,
		Title:     cat.Title,
		GroupSize: cat.GroupSize,
		Rows:      rows,
	}
}

func resolve(cat catalog.Category, e catalog.Entry, f *facts.Facts) bool {
	switch e.Kind {
	case catalog.DetectFlag:
		src := flagSource(cat, f)
		for _, id := range e.IDs {
			if src[id] {
				return true
			}
		}
	case catalog.DetectScene:
		if f.SceneEvents.Has(e.Scene, e.EventID) {
			return true
		}
		// Saves sometimes record only the generic pickup event when the
		// specific variant id was not distinguished.
		if cat.FallbackEventID != "" && e.EventID != cat.FallbackEventID {
			return f.SceneEvents.Has(e.Scene, cat.FallbackEventID)
		}
	case catalog.DetectQuest:
		for _, id := range e.IDs {
			if f.Quests.Completed(id) {
				return true
			}
		}
	case catalog.DetectCounter:
		for _, id := range e.IDs {
			if f.Collectables.Amount(id) >= e.Threshold {
				return true
			}
		}
	}
	return false
}

func flagSource(cat catalog.Category, f *facts.Facts) facts.NameFlagMap {
	switch cat.Flags {
	case catalog.FlagsTools:
		return f.ToolUnlocks
	case catalog.FlagsCrests:
		return f.CrestUnlocks
	default:
		return f.PlayerFlags
	}
}
