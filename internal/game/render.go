package game

import (
	"fmt"

	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/object"
)

// HUD layout in logical pixels.
const (
	hudX        = 10
	hudLineStep = 30
	hudTextSize = 20
	titleSize   = 40
)

type hudLine struct {
	text  string
	color draw.Color
}

// Draw renders the world back to front, then the HUD.
func (g *Game) Draw(r draw.Renderer) {
	ctx := object.DrawContext{Renderer: r, Time: g.time}

	for _, p := range g.Particles {
		p.Draw(ctx)
	}
	for _, p := range g.PowerUps {
		p.Draw(ctx)
	}
	for _, p := range g.Projectiles {
		p.Draw(ctx)
	}
	for _, a := range g.Asteroids {
		a.Draw(ctx)
	}
	g.Ship.Draw(ctx)

	g.drawHUD(r)
	if g.State() == StatePlayerDead {
		g.drawDeadScreen(r)
	}
}

func (g *Game) drawHUD(r draw.Renderer) {
	lines := []hudLine{
		{fmt.Sprintf("HP: %d", g.Ship.HP), draw.ColorWhite},
		{fmt.Sprintf("Score: %d", g.Score), draw.ColorWhite},
		{fmt.Sprintf("Level: %d", g.Level), draw.ColorWhite},
		{fmt.Sprintf("Weapon: %s", g.Weapon), draw.ColorPink},
		{fmt.Sprintf("Shape: %s", g.ShapeMode), draw.ColorGray},
	}
	if g.Ship.TripleShot {
		lines = append(lines, hudLine{fmt.Sprintf("Triple shot: %.1fs", g.Ship.TripleShotTimer), draw.ColorYellow})
	}

	for i, l := range lines {
		pos := draw.Point{X: hudX, Y: float64(hudX + i*hudLineStep)}
		r.DrawText(l.text, pos, hudTextSize, l.color)
	}
}

// drawDeadScreen centers the game over banner and the restart prompt.
func (g *Game) drawDeadScreen(r draw.Renderer) {
	c := g.viewport.Center()
	centered := func(text string, y float64, size int, col draw.Color) {
		w := r.MeasureText(text, size)
		r.DrawText(text, draw.Point{X: c.X - w/2, Y: y}, size, col)
	}
	centered("GAME OVER", c.Y-titleSize, titleSize, draw.ColorRed)
	centered("Press R to restart", c.Y+hudTextSize, hudTextSize, draw.ColorWhite)
}
