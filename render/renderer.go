// Package render draws session snapshots onto a tcell screen
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/turtle-dive/engine"
	"github.com/lixenwraith/turtle-dive/parameter"
)

const (
	glyphTurtle  = '@'
	glyphHazard  = 'Ж'
	glyphPickup  = 'o'
	glyphSurface = '~'
	glyphSeabed  = '░'
)

// Below this the overlays do not fit; only a notice is drawn
const (
	minWidth  = 40
	minHeight = 12
)

const nameColumnWidth = parameter.MaxDisplayNameLength

// Row is one leaderboard line
type Row struct {
	Name  string
	Score int
}

// Frame is everything drawn in one pass
type Frame struct {
	Snapshot    engine.Snapshot
	Leaderboard []Row
	// PlayerName is highlighted when it appears in the leaderboard
	PlayerName string
	// Status is an optional one-line notice in the HUD
	Status string
}

// Renderer scales the logical field to the terminal
type Renderer struct {
	screen  tcell.Screen
	palette Palette
	width   int
	height  int
	rowBg   []tcell.Color
}

// NewRenderer creates a renderer sized to the screen
func NewRenderer(screen tcell.Screen, palette Palette) *Renderer {
	r := &Renderer{
		screen:  screen,
		palette: palette,
	}
	r.Resize()
	return r
}

// Resize re-reads the screen dimensions and rebuilds the background gradient
func (r *Renderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.rowBg = make([]tcell.Color, r.height)
	for row := range r.rowBg {
		r.rowBg[row] = r.backgroundAt(r.rowCenter(row))
	}
}

// Size returns the cached screen dimensions
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Project maps a field position to a terminal cell
func (r *Renderer) Project(x, y float64) (col, row int) {
	col = int(x * float64(r.width) / parameter.FieldWidth)
	row = int(y * float64(r.height) / parameter.FieldHeight)
	return col, row
}

func (r *Renderer) rowCenter(row int) float64 {
	return (float64(row) + 0.5) * parameter.FieldHeight / float64(r.height)
}

func (r *Renderer) backgroundAt(y float64) tcell.Color {
	switch {
	case y < parameter.SurfaceY:
		return r.palette.Sky
	case y >= parameter.SeabedY:
		return r.palette.Seabed
	}
	depth := (y - parameter.SurfaceY) / (parameter.SeabedY - parameter.SurfaceY)
	return lerpColor(r.palette.WaterTop, r.palette.WaterDeep, depth)
}

// Draw renders the frame and shows it
func (r *Renderer) Draw(f Frame) {
	r.screen.Clear()

	if r.width < minWidth || r.height < minHeight {
		r.drawCentered(r.height/2, "terminal too small", tcell.StyleDefault)
		r.screen.Show()
		return
	}

	r.drawBackground()

	snap := f.Snapshot
	for _, p := range snap.Pickups {
		r.drawGlyph(p.Pos[0], p.Pos[1], glyphPickup, r.palette.Pickup)
	}
	for _, h := range snap.Hazards {
		r.drawGlyph(h.Pos[0], h.Pos[1], glyphHazard, r.palette.Hazard)
	}
	if snap.State == engine.StatePlaying {
		r.drawGlyph(snap.Player.Pos[0], snap.Player.Pos[1], glyphTurtle, r.palette.Turtle)
	}

	r.drawHUD(f)

	switch snap.State {
	case engine.StateMenu:
		r.drawMenu(f)
	case engine.StateGameOver:
		r.drawGameOver(f)
	}

	r.screen.Show()
}

func (r *Renderer) drawBackground() {
	_, surfaceRow := r.Project(0, parameter.SurfaceY)
	for row := 0; row < r.height; row++ {
		bg := r.rowBg[row]
		ch, fg := ' ', bg
		switch {
		case row == surfaceRow:
			ch, fg = glyphSurface, r.palette.Surface
		case r.rowCenter(row) >= parameter.SeabedY:
			ch, fg = glyphSeabed, r.palette.Dim
		}
		style := tcell.StyleDefault.Background(bg).Foreground(fg)
		for col := 0; col < r.width; col++ {
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func (r *Renderer) drawGlyph(x, y float64, ch rune, fg tcell.Color) {
	col, row := r.Project(x, y)
	if col < 0 || col >= r.width || row < 0 || row >= r.height {
		return
	}
	style := tcell.StyleDefault.Background(r.rowBg[row]).Foreground(fg).Bold(true)
	r.screen.SetContent(col, row, ch, nil, style)
}

func (r *Renderer) drawHUD(f Frame) {
	style := tcell.StyleDefault.Background(r.rowBg[0]).Foreground(r.palette.Panel).Bold(true)
	r.drawText(1, 0, fmt.Sprintf("SCORE %d", f.Snapshot.Score), style)

	right := f.PlayerName
	if f.Status != "" {
		right = f.Status + "  " + right
	}
	if right != "" {
		r.drawText(r.width-runewidth.StringWidth(right)-1, 0, right, style.Bold(false))
	}
}

func (r *Renderer) drawMenu(f Frame) {
	lines := []line{
		{"TURTLE DIVE", lineTitle},
		{"", lineText},
		{"SPACE / ENTER   start and dive", lineText},
		{"let go          float up", lineText},
		{"r menu   c clear scores   q quit", lineDim},
		{"", lineText},
	}
	lines = append(lines, r.leaderboardLines(f)...)
	r.drawPanel(lines)
}

func (r *Renderer) drawGameOver(f Frame) {
	snap := f.Snapshot
	lines := []line{
		{"GAME OVER", lineTitle},
		{"", lineText},
	}
	if snap.HasResult {
		lines = append(lines,
			line{fmt.Sprintf("Score %d", snap.Result.Score), lineText},
			line{"Saved as " + snap.Result.DisplayName, lineDim},
		)
	}
	lines = append(lines,
		line{"", lineText},
		line{"SPACE play again   r menu   q quit", lineDim},
		line{"", lineText},
	)
	lines = append(lines, r.leaderboardLines(f)...)
	r.drawPanel(lines)
}

func (r *Renderer) leaderboardLines(f Frame) []line {
	lines := []line{{"HIGH SCORES", lineTitle}}
	if len(f.Leaderboard) == 0 {
		return append(lines, line{"no scores yet", lineDim})
	}
	for i, row := range f.Leaderboard {
		kind := lineText
		if f.PlayerName != "" && row.Name == f.PlayerName {
			kind = lineHighlight
		}
		name := runewidth.FillRight(runewidth.Truncate(row.Name, nameColumnWidth, ""), nameColumnWidth)
		lines = append(lines, line{fmt.Sprintf("%2d. %s %6d", i+1, name, row.Score), kind})
	}
	return lines
}

type lineKind uint8

const (
	lineText lineKind = iota
	lineDim
	lineTitle
	lineHighlight
)

type line struct {
	text string
	kind lineKind
}

// drawPanel centers lines in a filled box, dropping lines that do not fit
func (r *Renderer) drawPanel(lines []line) {
	maxLines := r.height - 4
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	inner := 0
	for _, l := range lines {
		inner = max(inner, runewidth.StringWidth(l.text))
	}
	boxW := min(inner+4, r.width)
	boxH := len(lines) + 2
	left := (r.width - boxW) / 2
	top := (r.height - boxH) / 2

	panel := tcell.StyleDefault.Background(r.palette.Panel).Foreground(r.palette.Text)
	for row := top; row < top+boxH; row++ {
		for col := left; col < left+boxW; col++ {
			r.screen.SetContent(col, row, ' ', nil, panel)
		}
	}

	for i, l := range lines {
		style := panel
		switch l.kind {
		case lineDim:
			style = style.Foreground(r.palette.Dim)
		case lineTitle:
			style = style.Bold(true)
		case lineHighlight:
			style = style.Foreground(r.palette.Highlight).Bold(true)
		}
		r.drawCentered(top+1+i, l.text, style)
	}
}

func (r *Renderer) drawCentered(row int, text string, style tcell.Style) {
	col := (r.width - runewidth.StringWidth(text)) / 2
	r.drawText(col, row, text, style)
}

// drawText writes text from col, clipping at the screen edges
func (r *Renderer) drawText(col, row int, text string, style tcell.Style) {
	if row < 0 || row >= r.height {
		return
	}
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col >= r.width {
			return
		}
		if col >= 0 {
			r.screen.SetContent(col, row, ch, nil, style)
		}
		col += w
	}
}
