package progress

import (
	"testing"

	"github.com/janssenandrew/silksong-save-analyzer/internal/catalog"
	"github.com/janssenandrew/silksong-save-analyzer/internal/facts"
)

func TestBuildJournal(t *testing.T) {
	table := []catalog.JournalEntry{
		{Name: "Crawbug", Target: 5},
		{Name: "Lace", Target: 1},
		{Name: "Seth", Target: 1, Optional: true},
	}
	f := facts.Empty()
	f.Kills = facts.NameCountMap{"Crawbug": 3, "Lace": 1}

	entries := BuildJournal(table, f)
	if len(entries) != 3 {
		t.Fatalf("BuildJournal() = %d entries, want 3", len(entries))
	}

	crawbug := entries[0]
	if !crawbug.Found() || crawbug.Complete() {
		t.Errorf("Crawbug found=%v complete=%v, want found incomplete", crawbug.Found(), crawbug.Complete())
	}
	lace := entries[1]
	if !lace.Found() || !lace.Complete() {
		t.Errorf("Lace found=%v complete=%v, want found complete", lace.Found(), lace.Complete())
	}
	seth := entries[2]
	if seth.Found() {
		t.Error("unrecorded enemy reported as found")
	}
	if seth.Kills != 0 {
		t.Errorf("unrecorded enemy kills = %d, want 0", seth.Kills)
	}
}

func TestSummarizeJournal(t *testing.T) {
	tests := []struct {
		name    string
		entries []HunterEntry
		want    JournalSummary
	}{
		{
			name: "Required Incomplete",
			entries: []HunterEntry{
				{Name: "Crawbug", Kills: 3, Target: 5},
				{Name: "Lace", Kills: 1, Target: 1},
			},
			want: JournalSummary{Completed: 1, Total: 2},
		},
		{
			name: "Optional Does Not Block",
			entries: []HunterEntry{
				{Name: "Lace", Kills: 2, Target: 1},
				{Name: "Seth", Kills: 0, Target: 1, Optional: true},
			},
			want: JournalSummary{Completed: 1, Total: 2, RequiredComplete: true},
		},
		{
			name: "Completed Optional Counts",
			entries: []HunterEntry{
				{Name: "Seth", Kills: 1, Target: 1, Optional: true},
			},
			want: JournalSummary{Completed: 1, Total: 1, RequiredComplete: true},
		},
		{
			name: "Empty",
			want: JournalSummary{RequiredComplete: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SummarizeJournal(tt.entries); got != tt.want {
				t.Errorf("SummarizeJournal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
