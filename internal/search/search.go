// Package search resolves free-text names against the catalog and the
// Hunter's Journal: exact match first, then prefix, then edit-distance
// scoring for typos ("shakra rign" still finds the Shakra Ring).
package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/janssenandrew/silksong-save-analyzer/internal/catalog"
)

// Match is one scored hit.
type Match struct {
	Name     string
	Category catalog.CategoryID // empty for journal enemies
	Enemy    bool
	Act      int
	Link     string
	Score    float64
}

type indexed struct {
	match Match
	norm  string
}

// Index holds the normalised name table for one catalog.
type Index struct {
	entries []indexed
}

// NewIndex builds the lookup table over every catalog entry and journal
// enemy.
func NewIndex(cats []catalog.Category, journal []catalog.JournalEntry) *Index {
	ix := &Index{}
	for _, cat := range cats {
		for _, e := range cat.Entries {
			ix.entries = append(ix.entries, indexed{
				match: Match{Name: e.Name, Category: cat.ID, Act: e.Act, Link: e.Link},
				norm:  normalise(e.Name),
			})
		}
	}
	for _, e := range journal {
		ix.entries = append(ix.entries, indexed{
			match: Match{Name: e.Name, Enemy: true},
			norm:  normalise(e.Name),
		})
	}
	return ix
}

// Lookup scores the query against every known name and returns up to
// limit matches, best first. Scores below 0.5 are dropped.
func (ix *Index) Lookup(query string, limit int) []Match {
	q := normalise(query)
	if q == "" {
		return nil
	}
	var out []Match
	for _, e := range ix.entries {
		score := scoreName(q, e.norm)
		if score < 0.5 {
			continue
		}
		m := e.match
		m.Score = score
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func scoreName(query, name string) float64 {
	if name == query {
		return 1.0
	}
	if strings.HasPrefix(name, query) && len(query) >= 2 {
		return 0.9
	}
	if strings.Contains(name, query) && len(query) >= 3 {
		return 0.75
	}
	longest := len(name)
	if len(query) > longest {
		longest = len(query)
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(query, name)
	return 1.0 - float64(dist)/float64(longest)
}

// normalise lowercases and strips everything but letters, digits and
// single spaces, so "Dead Bug's Purse" and "dead bugs purse" collide.
func normalise(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastSpace = false
		case r == '\'': // "Bug's" folds to "bugs", not "bug s"
		case r == ' ' || r == '\t' || r == '-' || r == '_' || r == '/':
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
