// Package tui is the terminal browser: pick a save slot, then walk the
// categories with an act filter and fuzzy search.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/janssenandrew/silksong-save-analyzer/internal/analyzer"
	"github.com/janssenandrew/silksong-save-analyzer/internal/progress"
	"github.com/janssenandrew/silksong-save-analyzer/internal/savefile"
	"github.com/janssenandrew/silksong-save-analyzer/internal/search"
)

type App struct {
	session *analyzer.Session
	index   *search.Index
	saveDir string
}

func NewApp(session *analyzer.Session, index *search.Index, saveDir string) *App {
	return &App{session: session, index: index, saveDir: saveDir}
}

func (a *App) Run() error {
	m := newModel(a)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// --- Styles ---

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	selStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	normStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	filterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// --- Model ---

type view int

const (
	viewSlots view = iota
	viewCategories
	viewJournal
)

type model struct {
	app   *App
	view  view
	slots []savefile.SaveSlot

	slotCursor int
	catCursor  int
	rowOffset  int
	act        int

	filtering bool
	filter    string

	result *analyzer.Result
	status string

	width, height int
}

type resultMsg struct{ res *analyzer.Result }

func newModel(app *App) model {
	var dirs []string
	if app.saveDir != "" {
		dirs = append(dirs, app.saveDir)
	}
	return model{app: app, slots: savefile.FindSaveSlots(dirs...)}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case resultMsg:
		m.result = msg.res
		if msg.res.Failed {
			m.status = "That file did not decode as a Silksong save."
			m.view = viewSlots
		} else {
			m.status = ""
			m.view = viewCategories
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filtering, m.filter = false, ""
		case "enter":
			m.filtering = false
		case "backspace":
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
			}
		default:
			if len(msg.String()) == 1 {
				m.filter += msg.String()
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "0", "1", "2", "3":
		m.act = int(msg.String()[0] - '0')
		return m, nil
	case "/":
		if m.view == viewCategories {
			m.filtering = true
			m.filter = ""
		}
		return m, nil
	}

	switch m.view {
	case viewSlots:
		return m.handleSlotKey(msg)
	case viewCategories, viewJournal:
		return m.handleBrowseKey(msg)
	}
	return m, nil
}

func (m model) handleSlotKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.slotCursor > 0 {
			m.slotCursor--
		}
	case "down", "j":
		if m.slotCursor < len(m.slots)-1 {
			m.slotCursor++
		}
	case "r":
		var dirs []string
		if m.app.saveDir != "" {
			dirs = append(dirs, m.app.saveDir)
		}
		m.slots = savefile.FindSaveSlots(dirs...)
		m.slotCursor = 0
	case "enter":
		if m.slotCursor < len(m.slots) {
			path := m.slots[m.slotCursor].Path
			m.status = "Decoding " + path + "..."
			return m, func() tea.Msg {
				return resultMsg{res: m.app.session.AnalyzeFile(path)}
			}
		}
	}
	return m, nil
}

func (m model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = viewSlots
		m.filter = ""
	case "tab":
		if m.view == viewCategories {
			m.view = viewJournal
		} else {
			m.view = viewCategories
		}
	case "up", "k":
		if m.catCursor > 0 {
			m.catCursor--
		}
	case "down", "j":
		if m.result != nil && m.catCursor < len(m.result.Categories)-1 {
			m.catCursor++
		}
	}
	return m, nil
}

// --- View ---

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Silksong Save Analyzer"))
	b.WriteString(dimStyle.Render(actSuffix(m.act)))
	b.WriteString("\n\n")

	switch m.view {
	case viewSlots:
		m.renderSlots(&b)
	case viewCategories:
		m.renderCategories(&b)
	case viewJournal:
		m.renderJournal(&b)
	}

	if m.status != "" {
		b.WriteString("\n" + warnStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render(m.helpLine()))
	return b.String()
}

func (m model) renderSlots(b *strings.Builder) {
	if len(m.slots) == 0 {
		b.WriteString(warnStyle.Render("No save slots found.") + "\n")
		b.WriteString(dimStyle.Render("Press r to rescan, or pass a file to `silksong-save-analyzer analyze`.") + "\n")
		return
	}
	for i, slot := range m.slots {
		line := fmt.Sprintf("slot %d  %s  %s", slot.Slot, slot.ModTime.Format("2006-01-02 15:04"), slot.Path)
		if i == m.slotCursor {
			b.WriteString(selStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(normStyle.Render("  "+line) + "\n")
		}
	}
}

func (m model) renderCategories(b *strings.Builder) {
	if m.result == nil {
		b.WriteString(dimStyle.Render("No save loaded.") + "\n")
		return
	}
	for i, cat := range m.result.Categories {
		t := cat.Totals(m.act)
		mark := "  "
		if cat.Complete(m.act) {
			mark = selStyle.Render("✓ ")
		}
		line := fmt.Sprintf("%s%-18s %3d/%-3d", mark, cat.Title, t.Have, t.Total)
		if i == m.catCursor {
			b.WriteString(selStyle.Render("> ") + line + "\n")
			m.renderRows(b, cat)
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteByte('\n')
	for _, u := range m.result.Upgrades {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %-14s %d/4", u.Title, u.Tiers.Count())) + "\n")
	}
	if m.filtering || m.filter != "" {
		b.WriteString("\n" + filterStyle.Render("/"+m.filter) + "\n")
	}
}

func (m model) renderRows(b *strings.Builder, cat progress.CategoryProgress) {
	rows := cat.FilterRows(m.act)
	if m.filter != "" {
		matches := m.app.index.Lookup(m.filter, 0)
		keep := map[string]bool{}
		for _, match := range matches {
			keep[match.Name] = true
		}
		var filtered []progress.Row
		for _, r := range rows {
			if keep[r.Name] {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}
	for _, r := range rows {
		mark := dimStyle.Render("    ✗ ")
		name := dimStyle.Render(r.Name)
		if r.Obtained {
			mark = normStyle.Render("    ✓ ")
			name = normStyle.Render(r.Name)
		}
		b.WriteString(mark + name + "\n")
	}
}

func (m model) renderJournal(b *strings.Builder) {
	if m.result == nil {
		b.WriteString(dimStyle.Render("No save loaded.") + "\n")
		return
	}
	js := progress.SummarizeJournal(m.result.Journal)
	b.WriteString(normStyle.Render(fmt.Sprintf("Hunter's Journal  %d/%d", js.Completed, js.Total)))
	if js.RequiredComplete {
		b.WriteString(selStyle.Render("  all required complete"))
	}
	b.WriteString("\n\n")
	for _, e := range m.result.Journal {
		mark := dimStyle.Render("✗")
		switch {
		case e.Complete():
			mark = selStyle.Render("✓")
		case e.Found():
			mark = warnStyle.Render("~")
		}
		opt := ""
		if e.Optional {
			opt = dimStyle.Render(" (optional)")
		}
		b.WriteString(fmt.Sprintf("  %s %-22s %2d/%-2d%s\n", mark, e.Name, e.Kills, e.Target, opt))
	}
}

func (m model) helpLine() string {
	switch m.view {
	case viewSlots:
		return "↑/↓ select · enter decode · r rescan · q quit"
	case viewJournal:
		return "tab categories · 0-3 act filter · esc back · q quit"
	default:
		return "↑/↓ category · tab journal · 0-3 act filter · / search · esc back · q quit"
	}
}

func actSuffix(act int) string {
	if act == progress.ActAll {
		return ""
	}
	return fmt.Sprintf("  [act %d]", act)
}
