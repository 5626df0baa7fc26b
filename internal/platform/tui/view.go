package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/sim"
)

// Board glyphs.
const (
	glyphWall   = '#'
	glyphGoal   = '.'
	glyphBlock  = 'O'
	glyphPlayer = '@'
)

// GameView draws a simulation onto a screen buffer. Horizontal positions are
// scaled by TileWidth so terminal cells, which are taller than wide, render
// a roughly square board.
type GameView struct {
	TileWidth int
}

// NewGameView creates a view with the given horizontal tile scale.
func NewGameView(tileWidth int) GameView {
	if tileWidth < 1 {
		tileWidth = 1
	}
	return GameView{TileWidth: tileWidth}
}

// Render draws the HUD and board. Moving entities are drawn at their
// interpolated positions; the board itself comes from the discrete state.
func (v GameView) Render(dst *core.Screen, s *sim.Simulation, levelName string) {
	dst.Clear()
	v.renderHUD(dst, s, levelName)

	w, h := s.Bounds()
	offX, offY := v.boardOffset(dst, w, h)

	st := s.State()

	// Static layer first: goals, then walls over them.
	for p := range st.Goals {
		v.setTile(dst, offX, offY, float64(p.X), float64(p.Y), glyphGoal, core.ColorBrightYellow)
	}
	for p, obs := range st.Obstacles {
		if obs.Kind == sim.Wall {
			v.setTile(dst, offX, offY, float64(p.X), float64(p.Y), glyphWall, core.ColorGray)
		}
	}

	// Moving layer from the interpolated position surface.
	positions := s.EntityPositions()
	for p, obs := range st.Obstacles {
		if obs.Kind != sim.Block {
			continue
		}
		pos := positions[obs.Entity]
		color := core.ColorOrange
		if _, onGoal := st.Goals[p]; onGoal {
			color = core.ColorBrightGreen
		}
		v.setTile(dst, offX, offY, pos.X, pos.Y, glyphBlock, color)
	}

	player := positions[st.PlayerEntity]
	v.setTile(dst, offX, offY, player.X, player.Y, glyphPlayer, core.ColorBrightCyan)
}

// renderHUD draws the top status bar.
func (v GameView) renderHUD(dst *core.Screen, s *sim.Simulation, levelName string) {
	st := s.State()
	stats := s.Stats()

	title := fmt.Sprintf(" Level %d", st.Level)
	if levelName != "" {
		title = fmt.Sprintf(" Level %d: %s", st.Level, levelName)
	}
	hud := fmt.Sprintf("%s — Moves: %d  Pushes: %d  Undos: %d  Time: %s",
		title, stats.Moves, stats.Pushes, stats.Undos, formatSeconds(stats.Seconds))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// boardOffset centers the board in the space below the HUD.
func (v GameView) boardOffset(dst *core.Screen, boardW, boardH int) (int, int) {
	const hudRows = 2

	offX := (dst.Width() - boardW*v.TileWidth) / 2
	offY := hudRows + (dst.Height()-hudRows-boardH)/2
	if offX < 0 {
		offX = 0
	}
	if offY < hudRows {
		offY = hudRows
	}
	return offX, offY
}

// setTile plots one entity at a possibly fractional board position.
func (v GameView) setTile(dst *core.Screen, offX, offY int, x, y float64, r rune, c core.Color) {
	cx := offX + int(math.Round(x*float64(v.TileWidth)))
	cy := offY + int(math.Round(y))
	if cx < 0 || cx >= dst.Width() || cy < 0 || cy >= dst.Height() {
		return
	}
	dst.SetColored(cx, cy, r, c)
}

// renderOverlay draws a centered two-line message box over the board.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	if boxX < 0 {
		boxX = 0
	}
	if boxY < 0 {
		boxY = 0
	}

	dst.DrawBox(boxX, boxY, boxW, boxH)
	// Blank the interior before writing text
	for y := boxY + 1; y < boxY+boxH-1 && y < h; y++ {
		for x := boxX + 1; x < boxX+boxW-1 && x < w; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawText(boxX+(boxW-len(line1))/2, boxY+1, line1)
	dst.DrawText(boxX+(boxW-len(line2))/2, boxY+3, line2)
}

// formatSeconds renders elapsed play time as m:ss.
func formatSeconds(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
