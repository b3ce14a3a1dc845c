//go:build cgo

// Package gui is the drop-a-save desktop viewer. Drag a userN.dat onto
// the window; re-dropping supersedes the previous decode.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/janssenandrew/silksong-save-analyzer/internal/analyzer"
	"github.com/janssenandrew/silksong-save-analyzer/internal/progress"
)

type AppConfig struct {
	Version string
	Session *analyzer.Session
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

type page int

const (
	pageProgress page = iota
	pageJournal
)

var (
	colorBG       = rl.NewColor(12, 10, 18, 255)
	colorPanel    = rl.NewColor(24, 20, 34, 255)
	colorBorder   = rl.NewColor(120, 90, 200, 255)
	colorText     = rl.NewColor(225, 215, 245, 255)
	colorDim      = rl.NewColor(128, 118, 150, 255)
	colorAccent   = rl.NewColor(190, 120, 255, 255)
	colorObtained = rl.NewColor(120, 230, 160, 255)
	colorWarn     = rl.NewColor(255, 198, 96, 255)
)

type ui struct {
	cfg    AppConfig
	width  int32
	height int32

	page   page
	act    int
	scroll int32

	result  *analyzer.Result
	status  string
	pending chan *analyzer.Result
}

func (a *App) Run() error {
	u := &ui{
		cfg:     a.cfg,
		width:   1180,
		height:  760,
		status:  "Drop a save file (user1.dat) anywhere in this window.",
		pending: make(chan *analyzer.Result, 1),
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(u.width, u.height, "Silksong Save Analyzer "+u.cfg.Version)
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		u.width = int32(rl.GetScreenWidth())
		u.height = int32(rl.GetScreenHeight())

		u.handleDrop()
		u.handleKeys()
		u.drainPending()

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		u.draw()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

func (u *ui) handleDrop() {
	if !rl.IsFileDropped() {
		return
	}
	files := rl.LoadDroppedFiles()
	defer rl.UnloadDroppedFiles()
	if len(files) == 0 {
		return
	}
	path := files[0]
	u.status = "Decoding " + path + "..."
	// The session's generation guard makes a re-drop supersede this one.
	go func() {
		res := u.cfg.Session.AnalyzeFile(path)
		select {
		case u.pending <- res:
		default:
		}
	}()
}

func (u *ui) drainPending() {
	select {
	case res := <-u.pending:
		u.result = u.cfg.Session.Current()
		if res != nil && res.Failed {
			u.status = "That file did not decode as a Silksong save."
		} else {
			u.status = ""
		}
		u.scroll = 0
	default:
	}
}

func (u *ui) handleKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeyTab):
		if u.page == pageProgress {
			u.page = pageJournal
		} else {
			u.page = pageProgress
		}
		u.scroll = 0
	case rl.IsKeyPressed(rl.KeyZero):
		u.act = progress.ActAll
	case rl.IsKeyPressed(rl.KeyOne):
		u.act = 1
	case rl.IsKeyPressed(rl.KeyTwo):
		u.act = 2
	case rl.IsKeyPressed(rl.KeyThree):
		u.act = 3
	}
	u.scroll -= int32(rl.GetMouseWheelMove() * 28)
	if u.scroll < 0 {
		u.scroll = 0
	}
}

func (u *ui) draw() {
	u.drawHeader()
	if u.result == nil || u.result.Failed {
		u.drawEmpty()
		return
	}
	if u.page == pageJournal {
		u.drawJournal()
		return
	}
	u.drawCategories()
}

func (u *ui) drawHeader() {
	rl.DrawText("SILKSONG SAVE ANALYZER", 24, 18, 30, colorAccent)
	actText := "all acts"
	if u.act != progress.ActAll {
		actText = fmt.Sprintf("act %d", u.act)
	}
	rl.DrawText(actText, u.width-150, 24, 22, colorDim)
	if u.result != nil && !u.result.Failed {
		overall := progress.Overall(u.result.Categories, u.act)
		pct := progress.Percent(u.result.Categories, u.act)
		rl.DrawText(fmt.Sprintf("%d/%d  (%d%%)", overall.Have, overall.Total, pct), 24, 54, 22, colorText)
		rl.DrawText(u.result.SourcePath, 24, 80, 16, colorDim)
	}
	if u.status != "" {
		rl.DrawText(u.status, 24, u.height-34, 18, colorWarn)
	}
	rl.DrawText("tab: journal   0-3: act filter   drop a file to load", 24, u.height-58, 16, colorDim)
}

func (u *ui) drawEmpty() {
	msg := "Drop a save file here"
	w := rl.MeasureText(msg, 34)
	rl.DrawText(msg, u.width/2-w/2, u.height/2-40, 34, colorDim)
	sub := "Saves live under the Team Cherry folder (userN.dat); try the tui command to browse slots."
	sw := rl.MeasureText(sub, 18)
	rl.DrawText(sub, u.width/2-sw/2, u.height/2+6, 18, colorDim)
}

func (u *ui) drawCategories() {
	const top = 110
	colWidth := (u.width - 72) / 2
	x := int32(24)
	y := int32(top) - u.scroll

	for i, cat := range u.result.Categories {
		if i == (len(u.result.Categories)+1)/2 {
			x = 48 + colWidth
			y = int32(top) - u.scroll
		}
		y = u.drawCategoryPanel(cat, x, y, colWidth)
	}

	uy := u.height - 150
	rl.DrawRectangle(24, uy, u.width-48, 84, colorPanel)
	rl.DrawRectangleLines(24, uy, u.width-48, 84, colorBorder)
	ux := int32(44)
	for _, up := range u.result.Upgrades {
		rl.DrawText(up.Title, ux, uy+14, 20, colorText)
		tiers := [4]bool{up.Tiers.U1, up.Tiers.U2, up.Tiers.U3, up.Tiers.U4}
		for t := int32(0); t < 4; t++ {
			c := colorDim
			if tiers[t] {
				c = colorObtained
			}
			rl.DrawCircle(ux+12+t*26, uy+56, 9, c)
		}
		ux += 240
	}
}

func (u *ui) drawCategoryPanel(cat progress.CategoryProgress, x, y, w int32) int32 {
	t := cat.Totals(u.act)
	rows := cat.FilterRows(u.act)
	h := int32(46 + len(rows)*20)

	if y+h > 110 && y < u.height-160 {
		rl.DrawRectangle(x, y, w, h, colorPanel)
		rl.DrawRectangleLines(x, y, w, h, colorBorder)
		title := fmt.Sprintf("%s  %d/%d", cat.Title, t.Have, t.Total)
		c := colorText
		if cat.Complete(u.act) {
			c = colorObtained
		}
		rl.DrawText(title, x+14, y+10, 22, c)

		ry := y + 40
		for _, r := range rows {
			rc := colorDim
			mark := "-"
			if r.Obtained {
				rc = colorObtained
				mark = "+"
			}
			rl.DrawText(mark+" "+r.Name, x+18, ry, 16, rc)
			ry += 20
		}
	}
	return y + h + 14
}

func (u *ui) drawJournal() {
	js := progress.SummarizeJournal(u.result.Journal)
	head := fmt.Sprintf("Hunter's Journal  %d/%d", js.Completed, js.Total)
	if js.RequiredComplete {
		head += "  -- all required complete"
	}
	rl.DrawText(head, 24, 110, 24, colorText)

	y := int32(150) - u.scroll
	for _, e := range u.result.Journal {
		if y > 130 && y < u.height-70 {
			c := colorDim
			switch {
			case e.Complete():
				c = colorObtained
			case e.Found():
				c = colorWarn
			}
			line := fmt.Sprintf("%-24s %3d/%-3d", e.Name, e.Kills, e.Target)
			if e.Optional {
				line += "  (optional)"
			}
			rl.DrawText(line, 44, y, 20, c)
		}
		y += 26
	}
}
