// Package analyzer wires the full pipeline: decode bytes, extract fact
// sets, run the rule engine, and publish one immutable Result. A failed
// decode never propagates an error past this boundary; it publishes an
// empty, finished Result instead so callers always have something to
// render.
package analyzer

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/janssenandrew/silksong-save-analyzer/internal/catalog"
	"github.com/janssenandrew/silksong-save-analyzer/internal/facts"
	"github.com/janssenandrew/silksong-save-analyzer/internal/progress"
	"github.com/janssenandrew/silksong-save-analyzer/internal/savefile"
)

// Result is the derived progress model for one decode. It is plain
// data, safe to serialize and to share read-only.
type Result struct {
	Failed     bool                        `json:"failed,omitempty"`
	SourcePath string                      `json:"sourcePath,omitempty"`
	SourceTime time.Time                   `json:"sourceTime,omitzero"`
	Categories []progress.CategoryProgress `json:"categories"`
	Upgrades   []progress.UpgradeProgress  `json:"upgrades"`
	Journal    []progress.HunterEntry      `json:"journal"`
}

// Config parametrizes the analyzer over the reference catalog so the
// tables can be supplied independently (tests swap in small ones).
// Zero-value fields fall back to the built-in tables.
type Config struct {
	Categories []catalog.Category
	Tracks     []catalog.UpgradeTrack
	Journal    []catalog.JournalEntry
	Logger     zerolog.Logger
}

type Analyzer struct {
	cats     []catalog.Category
	tracks   []catalog.UpgradeTrack
	journal  []catalog.JournalEntry
	flagKeys []string
	pred     facts.EventPredicate
	log      zerolog.Logger
}

func New(cfg Config) *Analyzer {
	if cfg.Categories == nil {
		cfg.Categories = catalog.Categories()
	}
	if cfg.Tracks == nil {
		cfg.Tracks = catalog.UpgradeTracks()
	}
	if cfg.Journal == nil {
		cfg.Journal = catalog.Journal()
	}
	return &Analyzer{
		cats:     cfg.Categories,
		tracks:   cfg.Tracks,
		journal:  cfg.Journal,
		flagKeys: catalog.FlagKeys(cfg.Categories, cfg.Tracks),
		pred:     scenePredicate(cfg.Categories),
		log:      cfg.Logger,
	}
}

// Analyze runs the whole pipeline over raw save bytes. It never returns
// an error: decode and format failures are logged and folded into an
// empty Result with Failed set.
func (a *Analyzer) Analyze(data []byte) *Result {
	start := time.Now()

	text, err := savefile.Decode(data)
	if err != nil {
		a.log.Warn().Err(err).Msg("save decode failed")
		return a.emptyResult()
	}
	doc, err := savefile.Parse(text)
	if err != nil {
		a.log.Warn().Err(err).Msg("save parse failed")
		return a.emptyResult()
	}

	f := a.extract(doc)
	res := &Result{
		Categories: progress.BuildCategories(a.cats, f),
		Upgrades:   a.buildTracks(f),
		Journal:    progress.BuildJournal(a.journal, f),
	}

	a.log.Debug().
		Dur("elapsed", time.Since(start)).
		Int("sceneEvents", len(f.SceneEvents)).
		Int("quests", len(f.Quests)).
		Msg("save analyzed")
	return res
}

// extract makes the independent passes over the document regions. The
// document is discarded afterwards; only the fact sets survive.
func (a *Analyzer) extract(doc savefile.Document) *facts.Facts {
	f := facts.Empty()
	f.ToolUnlocks = facts.UnlockMap(doc, facts.PathTools)
	f.CrestUnlocks = facts.UnlockMap(doc, facts.PathCrests)
	f.Collectables = facts.CountMap(doc, facts.PathCollectables)
	f.Quests = facts.CompletedQuests(doc)
	f.SceneEvents = facts.SceneEvents(doc, a.pred)
	f.Kills = facts.KillCounts(doc)
	f.PlayerFlags = facts.BoolFields(doc, a.flagKeys)
	for _, tr := range a.tracks {
		f.Counters[tr.CounterField] = facts.IntField(doc, tr.CounterField)
	}
	return f
}

func (a *Analyzer) buildTracks(f *facts.Facts) []progress.UpgradeProgress {
	out := make([]progress.UpgradeProgress, 0, len(a.tracks))
	for _, tr := range a.tracks {
		out = append(out, progress.BuildTrack(tr, f))
	}
	return out
}

// emptyResult is the fail-safe outcome: every collection present and
// empty, all rows absent, nothing obtained.
func (a *Analyzer) emptyResult() *Result {
	return &Result{
		Failed:     true,
		Categories: []progress.CategoryProgress{},
		Upgrades:   []progress.UpgradeProgress{},
		Journal:    []progress.HunterEntry{},
	}
}

// scenePredicate keeps only the persistent bools any category can use:
// an exact event id named by an entry, or an id starting with one of
// the generic fallback ids ("Heart Piece", "Silk Spool", ...).
func scenePredicate(cats []catalog.Category) facts.EventPredicate {
	exact := map[string]bool{}
	var prefixes []string
	for _, cat := range cats {
		if cat.FallbackEventID != "" {
			prefixes = append(prefixes, cat.FallbackEventID)
		}
		for _, e := range cat.Entries {
			if e.Kind == catalog.DetectScene {
				exact[e.EventID] = true
			}
		}
	}
	return func(scene, id string) bool {
		if exact[id] {
			return true
		}
		for _, p := range prefixes {
			if strings.HasPrefix(id, p) {
				return true
			}
		}
		return false
	}
}
