// Package display draws sessions into a pixelgl window and turns window
// input into planewar.Input.
package display

import (
	"fmt"
	"image/color"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/nathanKramer/planewar/planewar"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// back to front
var layerOrder = []planewar.Layer{
	planewar.LayerPlay,
	planewar.LayerBoss,
	planewar.LayerPaused,
	planewar.LayerLost,
	planewar.LayerWon,
}

type labelText struct {
	txt *text.Text
	rev int
}

// DrawContext keeps one canvas per layer. A layer that isn't redrawn keeps
// its last picture, so the play field stays visible under the pause and
// end screens.
type DrawContext struct {
	bounds     pixel.Rect
	background *pixelgl.Canvas
	canvases   map[planewar.Layer]*pixelgl.Canvas
	atlases    map[string]*text.Atlas
	texts      map[*planewar.Label]*labelText

	// Hitboxes draws collision boxes over the sprites.
	Hitboxes bool
	imd      *imdraw.IMDraw
}

func NewDrawContext(bounds pixel.Rect, background *pixel.PictureData, faces map[string]font.Face) *DrawContext {
	d := &DrawContext{
		bounds:   bounds,
		canvases: map[planewar.Layer]*pixelgl.Canvas{},
		atlases:  map[string]*text.Atlas{},
		texts:    map[*planewar.Label]*labelText{},
		imd:      imdraw.New(nil),
	}
	for _, layer := range layerOrder {
		d.canvases[layer] = pixelgl.NewCanvas(bounds)
	}
	for name, face := range faces {
		d.atlases[name] = text.NewAtlas(face, text.ASCII)
	}
	d.background = pixelgl.NewCanvas(bounds)
	d.paintBackground(background)
	return d
}

// paintBackground tiles pic left to right along the top edge.
func (d *DrawContext) paintBackground(pic *pixel.PictureData) {
	d.background.Clear(colornames.Black)
	if pic == nil || pic.Bounds().W() <= 0 {
		return
	}
	sprite := pixel.NewSprite(pic, pic.Bounds())
	size := pic.Bounds().Size()
	for x := d.bounds.Min.X; x < d.bounds.Max.X; x += size.X {
		center := pixel.V(x+size.X/2, d.bounds.Max.Y-size.Y/2)
		sprite.Draw(d.background, pixel.IM.Moved(center))
	}
}

// Clear empties every layer in the mask.
func (d *DrawContext) Clear(layers planewar.Layer) {
	for _, layer := range layerOrder {
		if layers&layer != 0 {
			d.canvases[layer].Clear(color.RGBA{})
		}
	}
}

// Draw paints entities and labels onto one layer and returns the regions it touched.
func (d *DrawContext) Draw(layer planewar.Layer, entities []*planewar.Entity, labels []*planewar.Label) []pixel.Rect {
	canvas, ok := d.canvases[layer]
	if !ok {
		return nil
	}
	dirty := make([]pixel.Rect, 0, len(entities)+len(labels))

	for _, e := range entities {
		if s := e.Sprite(); s != nil {
			s.Draw(canvas, pixel.IM.Moved(e.Origin()))
		}
		dirty = append(dirty, e.VisualBounds())
	}
	if d.Hitboxes {
		d.imd.Clear()
		d.imd.Color = colornames.Lime
		for _, e := range entities {
			b := e.Bounds()
			d.imd.Push(b.Min, b.Max)
			d.imd.Rectangle(1)
		}
		d.imd.Draw(canvas)
	}

	for _, l := range labels {
		txt := d.text(l)
		offset := l.Center.Sub(txt.Bounds().Center())
		txt.Draw(canvas, pixel.IM.Moved(offset))
		dirty = append(dirty, txt.Bounds().Moved(offset))
	}
	return dirty
}

// text re-renders a label only when its revision moved on.
func (d *DrawContext) text(l *planewar.Label) *text.Text {
	if lt, ok := d.texts[l]; ok && lt.rev == l.Revision() {
		return lt.txt
	}
	txt := text.New(pixel.ZV, d.atlas(l.Font))
	txt.Color = l.Color
	fmt.Fprint(txt, l.Text())
	d.texts[l] = &labelText{txt: txt, rev: l.Revision()}
	return txt
}

func (d *DrawContext) atlas(name string) *text.Atlas {
	if a, ok := d.atlases[name]; ok {
		return a
	}
	a := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	d.atlases[name] = a
	return a
}

// Forget drops cached text for labels that are gone, e.g. after a replay.
func (d *DrawContext) Forget() {
	d.texts = map[*planewar.Label]*labelText{}
}

// Present stacks the background and the layers onto the window, scaled to fit.
func (d *DrawContext) Present(win *pixelgl.Window) {
	win.Clear(colornames.Black)
	m := fit(d.bounds, win.Bounds())
	d.background.Draw(win, m)
	for _, layer := range layerOrder {
		d.canvases[layer].Draw(win, m)
	}
}

// fit centres src in dst, scaled as large as it goes without cropping.
func fit(src, dst pixel.Rect) pixel.Matrix {
	scale := 1.0
	if src.W() > 0 && src.H() > 0 {
		scale = dst.W() / src.W()
		if s := dst.H() / src.H(); s < scale {
			scale = s
		}
	}
	return pixel.IM.Scaled(pixel.ZV, scale).Moved(dst.Center())
}
