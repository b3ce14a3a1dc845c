// Package report renders a Result as styled terminal text for the
// headless analyze command.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/janssenandrew/silksong-save-analyzer/internal/analyzer"
	"github.com/janssenandrew/silksong-save-analyzer/internal/progress"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	headStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	linkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true)
)

// Render produces the full progress report under an act filter.
func Render(res *analyzer.Result, act int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Silksong Save Analyzer"))
	b.WriteByte('\n')
	if res.SourcePath != "" {
		b.WriteString(dimStyle.Render(res.SourcePath))
		b.WriteByte('\n')
	}
	if res.Failed {
		b.WriteString(warnStyle.Render("Could not read this file as a Silksong save."))
		b.WriteByte('\n')
		return b.String()
	}

	overall := progress.Overall(res.Categories, act)
	b.WriteString(fmt.Sprintf("%s %d/%d (%d%%)%s\n\n",
		headStyle.Render("Overall:"),
		overall.Have, overall.Total,
		progress.Percent(res.Categories, act),
		actLabel(act)))

	for _, cat := range res.Categories {
		t := cat.Totals(act)
		mark := "  "
		if cat.Complete(act) {
			mark = goodStyle.Render("✓ ")
		}
		b.WriteString(fmt.Sprintf("%s%-18s %3d/%-3d %s\n",
			mark, cat.Title, t.Have, t.Total, bar(t.Have, t.Total)))
	}

	b.WriteByte('\n')
	b.WriteString(headStyle.Render("Upgrades"))
	b.WriteByte('\n')
	for _, u := range res.Upgrades {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", u.Title, tierDots(u.Tiers)))
	}

	js := progress.SummarizeJournal(res.Journal)
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("%s %d/%d", headStyle.Render("Hunter's Journal:"), js.Completed, js.Total))
	if js.RequiredComplete {
		b.WriteString(goodStyle.Render("  (all required complete)"))
	}
	b.WriteByte('\n')

	return b.String()
}

// RenderMissing lists everything not yet obtained under the filter,
// with wiki links.
func RenderMissing(res *analyzer.Result, act int) string {
	var b strings.Builder
	if res.Failed {
		return warnStyle.Render("Could not read this file as a Silksong save.") + "\n"
	}
	for _, cat := range res.Categories {
		var missing []progress.Row
		for _, r := range cat.FilterRows(act) {
			if !r.Obtained {
				missing = append(missing, r)
			}
		}
		if len(missing) == 0 {
			continue
		}
		b.WriteString(headStyle.Render(cat.Title))
		b.WriteByte('\n')
		for _, r := range missing {
			b.WriteString(fmt.Sprintf("  %-28s %s\n", r.Name, linkStyle.Render(r.Link)))
		}
	}
	if b.Len() == 0 {
		return goodStyle.Render("Nothing missing. Well hunted.") + "\n"
	}
	return b.String()
}

func bar(have, total int) string {
	const width = 20
	if total <= 0 {
		return dimStyle.Render(strings.Repeat("·", width))
	}
	filled := have * width / total
	if filled > width {
		filled = width
	}
	return goodStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("·", width-filled))
}

func tierDots(t progress.TierFlags) string {
	var b strings.Builder
	for _, on := range [4]bool{t.U1, t.U2, t.U3, t.U4} {
		if on {
			b.WriteString(goodStyle.Render("●"))
		} else {
			b.WriteString(dimStyle.Render("○"))
		}
	}
	return b.String()
}

func actLabel(act int) string {
	if act == progress.ActAll {
		return ""
	}
	return dimStyle.Render(fmt.Sprintf("  [act %d]", act))
}
