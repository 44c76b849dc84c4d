package invaders

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Visual characters for rendering
const (
	ShipChar        = '▲'
	ShipHullChar    = '▀'
	ShipBulletChar  = '|'
	AlienBulletChar = '!'
	ShieldChar      = '▒'
	BurstChar       = '*'
	SeparatorChar   = '─'
)

// Alien glyphs alternate every alienAnimFrames ticks.
var alienGlyphs = [2]rune{'W', 'M'}

const alienAnimFrames = 8

// Row colors for the formation, top row first.
var alienColors = [3]core.Color{core.ColorBrightMagenta, core.ColorBrightCyan, core.ColorBrightGreen}

// viewport maps playfield coordinates onto screen cells below the HUD row
// and above the hint row.
type viewport struct {
	w, top, h int
}

func newViewport(dst *core.Screen) viewport {
	return viewport{w: dst.Width(), top: 1, h: dst.Height() - 2}
}

func (v viewport) cell(x, y float64) (int, int) {
	cx := core.Clamp(int(x/FieldWidth*float64(v.w)), 0, v.w-1)
	cy := core.Clamp(int(y/FieldHeight*float64(v.h)), 0, v.h-1)
	return cx, v.top + cy
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.cfg.Display.MinWidth, g.cfg.Display.MinHeight)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	v := newViewport(dst)
	g.renderShields(dst, v)
	g.renderAliens(dst, v)
	g.renderBursts(dst, v)
	g.renderBullets(dst, v)
	g.renderShip(dst, v)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderShields(dst *core.Screen, v viewport) {
	for _, s := range g.state.Shields {
		x, y := v.cell(s.X, s.Y)
		dst.SetColored(x, y, ShieldChar, core.ColorGreen)
	}
}

func (g *Game) renderAliens(dst *core.Screen, v viewport) {
	glyph := alienGlyphs[(g.frame/alienAnimFrames)%2]
	for _, a := range g.state.Aliens {
		x, y := v.cell(a.X, a.Y)
		dst.SetColored(x, y, glyph, alienColor(a))
	}
}

// alienColor picks the row color from the alien's starting row.
func alienColor(a Body) core.Color {
	n, err := strconv.Atoi(strings.TrimPrefix(a.ID, KindAlien.String()))
	if err != nil {
		return core.ColorMagenta
	}
	return alienColors[(n/AlienColumns)%len(alienColors)]
}

func (g *Game) renderBursts(dst *core.Screen, v viewport) {
	for _, b := range g.Bursts() {
		x, y := v.cell(b.X, b.Y)
		c := core.ColorOrange
		if b.Kind == KindShield {
			c = core.ColorGray
		}
		dst.SetColored(x, y, BurstChar, c)
	}
}

func (g *Game) renderBullets(dst *core.Screen, v viewport) {
	for _, b := range g.state.ShipBullets {
		x, y := v.cell(b.X, b.Y)
		dst.SetColored(x, y, ShipBulletChar, core.ColorBrightYellow)
	}
	for _, b := range g.state.AlienBullets {
		x, y := v.cell(b.X, b.Y)
		dst.SetColored(x, y, AlienBulletChar, core.ColorBrightRed)
	}
}

// renderShip draws the hull across the ship's width, wrapping at the edges
// the same way the ship itself does.
func (g *Game) renderShip(dst *core.Screen, v viewport) {
	ship := g.state.Ship
	cx, cy := v.cell(ship.X, ship.Y)
	half := core.Max(1, int(ShipWidth/2/FieldWidth*float64(v.w)))

	color := core.ColorBrightCyan
	if g.state.GameOver {
		color = core.ColorRed
	}
	for dx := -half; dx <= half; dx++ {
		x := (cx + dx + v.w) % v.w
		dst.SetColored(x, cy, ShipHullChar, color)
	}
	dst.SetColored(cx, cy-1, ShipChar, color)
}

// renderHUD draws score and level on top and key hints at the bottom.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.state.Score)
	dst.DrawTextColored(1, 0, scoreText, core.ColorBrightWhite)

	alienText := fmt.Sprintf("Aliens: %d", len(g.state.Aliens))
	dst.DrawTextCentered(0, alienText)

	levelText := fmt.Sprintf("Level: %d", g.state.Level)
	dst.DrawTextColored(dst.Width()-len(levelText)-1, 0, levelText, core.ColorBrightWhite)

	hint := "←/→ move  SPACE fire  P pause  R restart  B menu"
	bottom := dst.Height() - 1
	dst.DrawHLine(0, bottom, dst.Width(), SeparatorChar, core.ColorGray)
	if len([]rune(hint))+2 <= dst.Width() {
		dst.DrawTextCentered(bottom, " "+hint+" ")
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.state.GameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.state.Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case g.state.NextLevel:
		g.drawCenteredBox(dst, fmt.Sprintf("LEVEL %d", g.state.Level), "Wave cleared!")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
