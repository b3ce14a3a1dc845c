package analyzer

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"

	"github.com/janssenandrew/silksong-save-analyzer/internal/catalog"
	"github.com/janssenandrew/silksong-save-analyzer/internal/savefile"
)

// testConfig is a miniature catalog exercising every detection kind.
func testConfig() Config {
	return Config{
		Categories: []catalog.Category{
			{
				ID:              catalog.CategoryMasks,
				Title:           "Mask Shards",
				GroupSize:       4,
				FallbackEventID: "Heart Piece",
				Flags:           catalog.FlagsPlayerData,
				Entries: []catalog.Entry{
					{Name: "Shard A", IDs: []string{"PurchasedBonebottomHeartPiece"}, Kind: catalog.DetectFlag, Act: 1},
					{Name: "Shard B", Kind: catalog.DetectScene, Scene: "Bone_East_13", EventID: "Heart Piece", Act: 1},
					{Name: "Shard C", IDs: []string{"Savage Beastfly"}, Kind: catalog.DetectQuest, Act: 2},
					{Name: "Shard D", IDs: []string{"Memory Locket"}, Kind: catalog.DetectCounter, Threshold: 10, Act: 2},
				},
			},
			{
				ID:    catalog.CategoryTools,
				Title: "Tools",
				Flags: catalog.FlagsTools,
				Entries: []catalog.Entry{
					{Name: "Tack", IDs: []string{"Tack"}, Kind: catalog.DetectFlag, Act: 1},
					{Name: "Straight Pin", IDs: []string{"Straight Pin"}, Kind: catalog.DetectFlag, Act: 1},
				},
			},
		},
		Tracks: []catalog.UpgradeTrack{
			{
				ID:           "needle",
				Title:        "Needle",
				CounterField: "nailUpgrades",
				Evidence: []catalog.TierEvidence{
					{Flag: "PurchasedForgeNeedleOne", Tier: catalog.TierU2},
				},
			},
		},
		Journal: []catalog.JournalEntry{
			{Name: "Crawbug", Target: 5},
			{Name: "Seth", Target: 1, Optional: true},
		},
		Logger: zerolog.Nop(),
	}
}

// fixtureSave packs a synthetic save document into the encrypted
// container format.
func fixtureSave(t *testing.T) []byte {
	t.Helper()
	text := "{}"
	var err error
	set := func(path string, value any) {
		text, err = sjson.Set(text, path, value)
		require.NoError(t, err)
	}
	set("playerData.PurchasedBonebottomHeartPiece", true)
	set("playerData.nailUpgrades", 2)
	set("playerData.Tools.savedData", []map[string]any{
		{"Name": "Tack", "Data": map[string]any{"IsUnlocked": true}},
		{"Name": "Straight Pin", "Data": map[string]any{"IsUnlocked": false}},
	})
	set("playerData.Collectables.savedData", []map[string]any{
		{"Name": "Memory Locket", "Data": map[string]any{"Amount": 12}},
	})
	set("playerData.QuestCompletionData.savedData", []map[string]any{
		{"Name": "Savage Beastfly", "Data": map[string]any{"IsCompleted": true}},
	})
	set("playerData.EnemyJournalKillData.list", []map[string]any{
		{"Name": "Crawbug", "Record": map[string]any{"Kills": 21}},
	})
	set("sceneData.persistentBools.serializedList", []map[string]any{
		{"SceneName": "Bone_East_13", "ID": "Heart Piece", "Value": true},
	})
	return savefile.Encode(text)
}

func TestAnalyzePipeline(t *testing.T) {
	an := New(testConfig())
	res := an.Analyze(fixtureSave(t))

	require.NotNil(t, res)
	assert.False(t, res.Failed)
	require.Len(t, res.Categories, 2)

	masks := res.Categories[0]
	obtained := map[string]bool{}
	for _, row := range masks.Rows {
		obtained[row.Name] = row.Obtained
	}
	assert.True(t, obtained["Shard A"], "player flag")
	assert.True(t, obtained["Shard B"], "scene event")
	assert.True(t, obtained["Shard C"], "completed quest")
	assert.True(t, obtained["Shard D"], "counter at threshold")

	tools := res.Categories[1]
	require.Len(t, tools.Rows, 2)
	assert.True(t, tools.Rows[0].Obtained, "unlocked tool")
	assert.False(t, tools.Rows[1].Obtained, "locked tool")

	require.Len(t, res.Upgrades, 1)
	needle := res.Upgrades[0]
	assert.Equal(t, 2, needle.RawCount)
	assert.True(t, needle.Tiers.U1)
	assert.True(t, needle.Tiers.U2, "catch-up fills tier two")
	assert.False(t, needle.Tiers.U3)

	require.Len(t, res.Journal, 2)
	assert.Equal(t, 21, res.Journal[0].Kills)
	assert.True(t, res.Journal[0].Complete())
	assert.Equal(t, 0, res.Journal[1].Kills)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	an := New(testConfig())
	data := fixtureSave(t)

	first := an.Analyze(data)
	second := an.Analyze(data)
	assert.Equal(t, first, second)
}

func TestAnalyzeFoldsDecodeFailures(t *testing.T) {
	an := New(testConfig())

	tests := []struct {
		name string
		data []byte
	}{
		{name: "Nil Input", data: nil},
		{name: "Truncated Header", data: []byte{0, 1, 0}},
		{name: "Garbage", data: []byte("definitely not a save file")},
		{name: "Truncated Payload", data: fixtureSave(t)[:40]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := an.Analyze(tt.data)
			require.NotNil(t, res)
			assert.True(t, res.Failed)
			assert.NotNil(t, res.Categories)
			assert.Empty(t, res.Categories)
			assert.NotNil(t, res.Upgrades)
			assert.Empty(t, res.Upgrades)
			assert.NotNil(t, res.Journal)
			assert.Empty(t, res.Journal)
		})
	}
}

func TestAnalyzeWithBuiltinCatalog(t *testing.T) {
	an := New(Config{Logger: zerolog.Nop()})
	res := an.Analyze(fixtureSave(t))

	require.False(t, res.Failed)
	assert.Len(t, res.Categories, len(catalog.Categories()))
	assert.Len(t, res.Upgrades, len(catalog.UpgradeTracks()))
	assert.Len(t, res.Journal, len(catalog.Journal()))
}

func TestSessionPublishes(t *testing.T) {
	s := NewSession(New(testConfig()))
	assert.Nil(t, s.Current(), "no result before the first decode")

	res := s.Analyze(fixtureSave(t))
	require.NotNil(t, res)
	assert.Same(t, res, s.Current())

	// A later decode replaces the current result even when it fails.
	failed := s.Analyze(nil)
	assert.True(t, failed.Failed)
	assert.Same(t, failed, s.Current())
}

func TestSessionAnalyzeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user1.dat")
	require.NoError(t, os.WriteFile(path, fixtureSave(t), 0o644))

	s := NewSession(New(testConfig()))
	res := s.AnalyzeFile(path)
	require.NotNil(t, res)
	assert.False(t, res.Failed)
	assert.Equal(t, path, res.SourcePath)
	assert.False(t, res.SourceTime.IsZero())

	missing := s.AnalyzeFile(filepath.Join(dir, "user9.dat"))
	assert.True(t, missing.Failed)
}

func TestSessionConcurrentAnalyze(t *testing.T) {
	s := NewSession(New(testConfig()))
	data := fixtureSave(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(fail bool) {
			defer wg.Done()
			if fail {
				s.Analyze(nil)
			} else {
				s.Analyze(data)
			}
		}(i%2 == 0)
	}
	wg.Wait()

	// Whichever decode claimed the last generation won; the published
	// result is always complete, never a partial write.
	cur := s.Current()
	require.NotNil(t, cur)
	assert.NotNil(t, cur.Categories)
	assert.NotNil(t, cur.Upgrades)
	assert.NotNil(t, cur.Journal)
}
