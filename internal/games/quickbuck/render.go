package quickbuck

import (
	"fmt"
	"math"

	"github.com/vovakirdan/quickbuck/internal/config"
	"github.com/vovakirdan/quickbuck/internal/core"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.mode == ModeMainMenu {
		g.drawTitle(dst)
		return
	}

	// Row 0 is the HUD, the field fills the rest.
	box, ok := fieldBox(dst.Width(), dst.Height()-1, g.cfg.Field)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}
	box.Y++

	dst.DrawBox(box, core.ColorGray)
	vp := core.Viewport{
		Field:  core.V2(g.cfg.Field.Width, g.cfg.Field.Height),
		Screen: box.Inset(1),
	}

	// Lane dividers halfway between lane centres
	half := g.world.LaneSize() / 2
	for _, x := range []float64{-half, half} {
		col, _ := vp.ToCell(core.V2(x, 0))
		dst.DrawVLine(col, vp.Screen.Y, vp.Screen.H, '┊', core.ColorGray)
	}

	g.scene.Draw(dst, vp)
	g.drawHUD(dst)

	if g.mode == ModePaused {
		drawCenteredMessage(dst, "PAUSED", "P: resume  |  B: main menu")
	}
}

// fieldBox fits the field, border included, into w x h cells keeping its aspect ratio.
func fieldBox(w, h int, field config.FieldConfig) (core.Rect, bool) {
	ratio := field.Width / field.Height * cellAspect

	innerH := h - 2
	innerW := int(math.Round(float64(innerH) * ratio))
	if innerW > w-2 {
		innerW = w - 2
		innerH = int(math.Round(float64(innerW) / ratio))
	}
	if innerW < 3 || innerH < 3 {
		return core.Rect{}, false
	}

	boxW, boxH := innerW+2, innerH+2
	return core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH), true
}

func (g *Game) drawHUD(dst *core.Screen) {
	p := g.world.Player()
	left := fmt.Sprintf(" %s  lane: %s ", g.Title(), p.Lane)
	right := fmt.Sprintf(" obstacles: %d  t: %.1fs ", len(g.world.Obstacles()), g.world.Elapsed().Seconds())

	dst.DrawText(1, 0, left)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)
}

func (g *Game) drawTitle(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "Q U I C K   B U C K")
	dst.DrawTextCentered(mid, "Dodge the falling blocks. Three lanes, no mercy.")
	dst.DrawTextCentered(mid+2, "Press Enter to play")
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	r := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
