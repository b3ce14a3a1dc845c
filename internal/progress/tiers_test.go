package progress

import (
	"testing"

	"github.com/janssenandrew/silksong-save-analyzer/internal/catalog"
	"github.com/janssenandrew/silksong-save-analyzer/internal/facts"
)

func TestComputeTierFlags(t *testing.T) {
	u234 := []catalog.TierID{catalog.TierU2, catalog.TierU3, catalog.TierU4}
	u34 := []catalog.TierID{catalog.TierU3, catalog.TierU4}

	tests := []struct {
		name     string
		rawCount int
		extras   []bool
		tiers    []catalog.TierID
		want     TierFlags
	}{
		{
			name:     "Zero Count",
			rawCount: 0,
			extras:   []bool{true, true, true},
			tiers:    u234,
			want:     TierFlags{},
		},
		{
			name:     "Negative Count",
			rawCount: -2,
			extras:   []bool{true},
			tiers:    u34,
			want:     TierFlags{},
		},
		{
			name:     "One Ignores Extras",
			rawCount: 1,
			extras:   []bool{true, true, true},
			tiers:    u234,
			want:     TierFlags{U1: true},
		},
		{
			name:     "Catch Up Without Evidence",
			rawCount: 3,
			extras:   []bool{false, false},
			tiers:    u34,
			want:     TierFlags{U1: true, U2: true, U3: true},
		},
		{
			name:     "Evidence Accounts For Count",
			rawCount: 2,
			extras:   []bool{true, false},
			tiers:    u34,
			// count == rawCount, so the catch-up pass must not run and
			// u2 stays false even though u3 is owned.
			want: TierFlags{U1: true, U3: true},
		},
		{
			name:     "Evidence Plus Catch Up",
			rawCount: 4,
			extras:   []bool{false, false, true},
			tiers:    u234,
			want:     TierFlags{U1: true, U2: true, U3: true, U4: true},
		},
		{
			name:     "Full Evidence",
			rawCount: 4,
			extras:   []bool{true, true, true},
			tiers:    u234,
			want:     TierFlags{U1: true, U2: true, U3: true, U4: true},
		},
		{
			name:     "Counter Above Four",
			rawCount: 9,
			extras:   []bool{false, false, false},
			tiers:    u234,
			want:     TierFlags{U1: true, U2: true, U3: true, U4: true},
		},
		{
			name:     "No Extras At All",
			rawCount: 2,
			extras:   nil,
			tiers:    nil,
			want:     TierFlags{U1: true, U2: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTierFlags(tt.rawCount, tt.extras, tt.tiers)
			if got != tt.want {
				t.Errorf("ComputeTierFlags(%d, %v) = %+v, want %+v", tt.rawCount, tt.extras, got, tt.want)
			}
		})
	}
}

func TestTierFlagsCount(t *testing.T) {
	if got := (TierFlags{U1: true, U3: true}).Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if got := (TierFlags{}).Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
}

func TestBuildTrack(t *testing.T) {
	track := catalog.UpgradeTrack{
		ID:           "toolPouch",
		Title:        "Tool Pouch",
		CounterField: "ToolPouchUpgrades",
		Evidence: []catalog.TierEvidence{
			{Flag: "PurchasedGrindleToolPouch", Tier: catalog.TierU3},
			{Flag: "CaravanTroupeLeaderToolPouch", Tier: catalog.TierU4},
		},
	}
	f := facts.Empty()
	f.Counters["ToolPouchUpgrades"] = 3
	f.PlayerFlags["PurchasedGrindleToolPouch"] = true

	got := BuildTrack(track, f)
	if got.RawCount != 3 {
		t.Errorf("RawCount = %d, want 3", got.RawCount)
	}
	want := TierFlags{U1: true, U2: true, U3: true}
	if got.Tiers != want {
		t.Errorf("Tiers = %+v, want %+v", got.Tiers, want)
	}
}
