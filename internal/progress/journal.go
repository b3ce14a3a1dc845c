package progress

import (
	"github.com/janssenandrew/silksong-save-analyzer/internal/catalog"
	"github.com/janssenandrew/silksong-save-analyzer/internal/facts"
)

// HunterEntry is one Hunter's Journal row resolved against a save.
type HunterEntry struct {
	Name     string `json:"name"`
	Kills    int    `json:"kills"`
	Target   int    `json:"target"`
	Optional bool   `json:"optional,omitempty"`
}

// Found reports whether the enemy has been encountered at all.
func (h HunterEntry) Found() bool { return h.Kills > 0 }

// Complete reports whether the journal entry is finished.
func (h HunterEntry) Complete() bool { return h.Kills >= h.Target }

// JournalSummary rolls the journal into display counts. Required
// completion ignores optional entries.
type JournalSummary struct {
	Completed        int  `json:"completed"`
	Total            int  `json:"total"`
	RequiredComplete bool `json:"requiredComplete"`
}

// BuildJournal maps the journal table over the extracted kill counts.
// Unrecorded enemies default to zero kills.
func BuildJournal(table []catalog.JournalEntry, f *facts.Facts) []HunterEntry {
	out := make([]HunterEntry, 0, len(table))
	for _, e := range table {
		out = append(out, HunterEntry{
			Name:     e.Name,
			Kills:    f.Kills.Amount(e.Name),
			Target:   e.Target,
			Optional: e.Optional,
		})
	}
	return out
}

// SummarizeJournal computes the rollup over built entries.
func SummarizeJournal(entries []HunterEntry) JournalSummary {
	s := JournalSummary{Total: len(entries), RequiredComplete: true}
	for _, e := range entries {
		if e.Complete() {
			s.Completed++
		} else if !e.Optional {
			s.RequiredComplete = false
		}
	}
	return s
}
