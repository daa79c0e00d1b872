package planewar

import (
	"fmt"
	"image/color"

	"github.com/faiface/pixel"
	"golang.org/x/image/colornames"
)

const (
	FontNormal = "normal"
	FontLarge  = "large"
)

// Label is a line of text on screen. Renderers cache the drawn text and
// redraw it only when Revision changes.
type Label struct {
	Center pixel.Vec
	// Size is the clickable area for buttons.
	Size   pixel.Vec
	Font   string
	Color  color.Color
	Hidden bool

	text   string
	rev    int
	layers Layer
}

func NewLabel(text string, center pixel.Vec, font string, c color.Color, layers Layer) *Label {
	return &Label{Center: center, Font: font, Color: c, text: text, rev: 1, layers: layers}
}

func (l *Label) Text() string  { return l.text }
func (l *Label) Revision() int { return l.rev }

// Set changes the text and reports whether it differed.
func (l *Label) Set(text string) bool {
	if text == l.text {
		return false
	}
	l.text = text
	l.rev++
	return true
}

func (l *Label) Bounds() pixel.Rect {
	return boxAt(l.Center, l.Size)
}

// Hit reports whether a click at p lands on the label.
func (l *Label) Hit(p pixel.Vec) bool {
	return !l.Hidden && l.Bounds().Contains(p)
}

type hud struct {
	score  *Label
	best   *Label
	fps    *Label
	health *Label
	paused *Label
	lost   *Label
	won    *Label
	replay *Label
	debug  *Label
	labels []*Label
}

func newHud(screen pixel.Rect, best int) *hud {
	c := screen.Center()
	top := screen.Max.Y
	h := &hud{
		score:  NewLabel(scoreText(0), pixel.V(screen.Min.X+70, top-20), FontNormal, colornames.White, LayerPlay|LayerPaused),
		best:   NewLabel(bestText(best), pixel.V(screen.Max.X-70, top-20), FontNormal, colornames.Gold, LayerPlay|LayerPaused),
		fps:    NewLabel(fpsText(0), pixel.V(screen.Min.X+70, top-44), FontNormal, colornames.Lightgreen, LayerPlay|LayerPaused),
		health: NewLabel(healthText(1, 1), pixel.V(c.X, top-20), FontNormal, colornames.Red, LayerBoss|LayerLost|LayerWon),
		paused: NewLabel("Paused", c, FontLarge, colornames.White, LayerPaused),
		lost:   NewLabel("You Lose!", c.Add(pixel.V(0, 40)), FontLarge, colornames.Red, LayerLost),
		won:    NewLabel(winText(0), c.Add(pixel.V(0, 40)), FontLarge, colornames.Gold, LayerWon),
		replay: NewLabel("Replay", c.Sub(pixel.V(0, 40)), FontNormal, colornames.White, LayerLost|LayerWon),
		debug:  NewLabel("DEBUG", pixel.V(screen.Max.X-40, screen.Min.Y+16), FontNormal, colornames.Orange, LayerPlay|LayerPaused),
	}
	h.replay.Size = pixel.V(140, 48)
	h.fps.Hidden = true
	h.debug.Hidden = true
	h.labels = []*Label{h.score, h.best, h.fps, h.health, h.paused, h.lost, h.won, h.replay, h.debug}
	return h
}

// on returns the visible labels of a draw layer.
func (h *hud) on(layer Layer) []*Label {
	var out []*Label
	for _, l := range h.labels {
		if !l.Hidden && l.layers&layer != 0 {
			out = append(out, l)
		}
	}
	return out
}

func scoreText(score int) string { return fmt.Sprintf("Score: %d", score) }
func bestText(best int) string   { return fmt.Sprintf("Best: %d", best) }
func fpsText(fps float64) string { return fmt.Sprintf("FPS: %.2f", fps) }
func winText(score int) string   { return fmt.Sprintf("You Win! Score: %d", score) }

func healthText(health, total int) string {
	pct := 0.0
	if total > 0 {
		pct = float64(health) / float64(total) * 100
	}
	return fmt.Sprintf("Health: %.1f%%", pct)
}
