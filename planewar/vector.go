package planewar

import (
	"math"

	"github.com/faiface/pixel"
)

var down = pixel.V(0, -1)

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// towards returns the unit vector from a to b. ok is false when they coincide.
func towards(a, b pixel.Vec) (dir pixel.Vec, ok bool) {
	d := b.Sub(a)
	l := d.Len()
	if l == 0 || math.IsNaN(l) {
		return pixel.ZV, false
	}
	return d.Scaled(1 / l), true
}

func polar(degrees float64) pixel.Vec {
	rad := degrees * math.Pi / 180
	return pixel.V(math.Cos(rad), math.Sin(rad))
}

func boxAt(center, size pixel.Vec) pixel.Rect {
	half := size.Scaled(0.5)
	return pixel.Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// overlaps is strict, boxes that only share an edge don't collide.
func overlaps(a, b pixel.Rect) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

// clampInto moves r the least amount needed to fit inside bounds.
// A box larger than bounds is centred on that axis.
func clampInto(r, bounds pixel.Rect) pixel.Rect {
	var shift pixel.Vec
	switch {
	case r.W() > bounds.W():
		shift.X = bounds.Center().X - r.Center().X
	case r.Min.X < bounds.Min.X:
		shift.X = bounds.Min.X - r.Min.X
	case r.Max.X > bounds.Max.X:
		shift.X = bounds.Max.X - r.Max.X
	}
	switch {
	case r.H() > bounds.H():
		shift.Y = bounds.Center().Y - r.Center().Y
	case r.Min.Y < bounds.Min.Y:
		shift.Y = bounds.Min.Y - r.Min.Y
	case r.Max.Y > bounds.Max.Y:
		shift.Y = bounds.Max.Y - r.Max.Y
	}
	return r.Moved(shift)
}

// outside reports whether r has fully left bounds through any edge.
func outside(r, bounds pixel.Rect) bool {
	return r.Max.Y <= bounds.Min.Y || r.Min.Y >= bounds.Max.Y ||
		r.Max.X <= bounds.Min.X || r.Min.X >= bounds.Max.X
}
