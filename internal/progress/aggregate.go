package progress

// ActAll disables act filtering. Rows classified act 0 are cross-act
// and stay visible under every filter.
const ActAll = 0

// Totals is a (have, total) pair.
type Totals struct {
	Have  int `json:"have"`
	Total int `json:"total"`
}

// FilterRows returns the rows visible under an act filter.
func (c CategoryProgress) FilterRows(act int) []Row {
	if act == ActAll {
		return c.Rows
	}
	out := make([]Row, 0, len(c.Rows))
	for _, r := range c.Rows {
		if r.Act == act || r.Act == ActAll {
			out = append(out, r)
		}
	}
	return out
}

// Totals computes the category's displayed counts under an act filter.
//
// Composite categories (mask shards, spool fragments) group fragments
// into whole items only when unfiltered; grouping across a partial act
// slice is not meaningful, so a filtered composite reports raw
// fragments. The unfiltered "have" is capped at the maximum the grouped
// total allows.
func (c CategoryProgress) Totals(act int) Totals {
	rows := c.FilterRows(act)
	have := 0
	for _, r := range rows {
		if r.Obtained {
			have++
		}
	}
	total := len(rows)
	if c.GroupSize > 1 && act == ActAll {
		grouped := have / c.GroupSize
		max := total / c.GroupSize
		if grouped > max {
			grouped = max
		}
		return Totals{Have: grouped, Total: max}
	}
	return Totals{Have: have, Total: total}
}

// Complete reports whether every visible item is obtained. An empty
// filtered list counts as complete. Composite categories compare
// grouped counts only when unfiltered.
func (c CategoryProgress) Complete(act int) bool {
	rows := c.FilterRows(act)
	if len(rows) == 0 {
		return true
	}
	if c.GroupSize > 1 && act == ActAll {
		t := c.Totals(ActAll)
		return t.Have >= t.Total
	}
	for _, r := range rows {
		if !r.Obtained {
			return false
		}
	}
	return true
}

// Overall sums category totals under one act filter.
func Overall(cats []CategoryProgress, act int) Totals {
	var out Totals
	for _, c := range cats {
		t := c.Totals(act)
		out.Have += t.Have
		out.Total += t.Total
	}
	return out
}

// ByAct computes the per-act rollup (acts one to three).
func ByAct(cats []CategoryProgress) map[int]Totals {
	out := map[int]Totals{}
	for act := 1; act <= 3; act++ {
		out[act] = Overall(cats, act)
	}
	return out
}

// Percent is the overall completion percentage under a filter, rounded
// down; 100 only at full completion.
func Percent(cats []CategoryProgress, act int) int {
	t := Overall(cats, act)
	if t.Total == 0 {
		return 100
	}
	return t.Have * 100 / t.Total
}
