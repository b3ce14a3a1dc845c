package progress

import (
	"github.com/janssenandrew/silksong-save-analyzer/internal/catalog"
	"github.com/janssenandrew/silksong-save-analyzer/internal/facts"
)

// TierFlags is the derived ownership of the four tiers of a multi-step
// upgrade track.
type TierFlags struct {
	U1 bool `json:"u1"`
	U2 bool `json:"u2"`
	U3 bool `json:"u3"`
	U4 bool `json:"u4"`
}

// Count reports how many tiers are owned, at most four.
func (f TierFlags) Count() int {
	n := 0
	for _, b := range [4]bool{f.U1, f.U2, f.U3, f.U4} {
		if b {
			n++
		}
	}
	return n
}

// ComputeTierFlags derives tier ownership from the save's own upgrade
// counter plus the ordered extra-evidence flags, each naming the tier
// it corroborates.
//
// The counter is trusted over the evidence: when it claims more tiers
// than the flags confirm, the catch-up pass forces tiers true in
// ascending order up to the counter. Evidence can only ever add tiers,
// and the catch-up alone never sets more than rawCount of them. Counters
// above four still set only the four defined tiers.
func ComputeTierFlags(rawCount int, extras []bool, tiers []catalog.TierID) TierFlags {
	var f TierFlags
	if rawCount <= 0 {
		return f
	}
	f.U1 = true
	if rawCount == 1 {
		return f
	}

	count := 1
	for i, on := range extras {
		if !on || i >= len(tiers) {
			continue
		}
		switch tiers[i] {
		case catalog.TierU2:
			f.U2 = true
		case catalog.TierU3:
			f.U3 = true
		case catalog.TierU4:
			f.U4 = true
		default:
			continue
		}
		count++
	}

	if count < rawCount {
		for i := 2; i <= rawCount && i <= 4; i++ {
			switch i {
			case 2:
				f.U2 = true
			case 3:
				f.U3 = true
			case 4:
				f.U4 = true
			}
		}
	}
	return f
}

// UpgradeProgress is one derived upgrade track.
type UpgradeProgress struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	RawCount int       `json:"rawCount"`
	Tiers    TierFlags `json:"tiers"`
}

// BuildTrack resolves a track's counter and evidence flags against the
// extracted playerData booleans.
func BuildTrack(track catalog.UpgradeTrack, f *facts.Facts) UpgradeProgress {
	extras := make([]bool, len(track.Evidence))
	tiers := make([]catalog.TierID, len(track.Evidence))
	for i, ev := range track.Evidence {
		extras[i] = f.PlayerFlags[ev.Flag]
		tiers[i] = ev.Tier
	}
	raw := f.Counters[track.CounterField]
	return UpgradeProgress{
		ID:       track.ID,
		Title:    track.Title,
		RawCount: raw,
		Tiers:    ComputeTierFlags(raw, extras, tiers),
	}
}
