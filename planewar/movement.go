package planewar

import (
	"github.com/faiface/pixel"
)

type frameContext struct {
	dt        float64
	target    pixel.Vec
	hasTarget bool
}

type updater func(w *world, e *Entity, ctx frameContext)

// updaters holds the per-kind behaviour, animation is handled by world.advance.
var updaters = [kindCount]updater{
	KindPlayer:        updatePlayer,
	KindEnemy:         updateEnemy,
	KindBoss:          updateBoss,
	KindDecoy:         updateDecoy,
	KindPlayerBullet:  updateStraight,
	KindEnemyBullet:   updateStraight,
	KindHomingBullet:  updateHoming,
	KindFireball:      updateStraight,
	KindLargeFireball: updateLargeFireball,
	KindExplosion:     updateExplosion,
}

func updatePlayer(w *world, p *Entity, ctx frameContext) {
	p.fireCooldown -= ctx.dt
	p.chaseCooldown -= ctx.dt
}

// movePlayer moves each axis independently, then keeps the craft on screen.
func (w *world) movePlayer(p *Entity, x, y, dt float64) {
	x, y = sign(x), sign(y)
	p.origin = p.origin.Add(pixel.V(x, y).Scaled(p.speed * dt))
	p.origin = clampInto(p.Bounds(), w.screen).Center()

	ab := p.afterburner
	if ab == nil || !ab.alive {
		return
	}
	if y > 0 {
		ab.layers = LayerPlay
	} else {
		ab.layers = 0
	}
	ab.origin = pixel.V(p.origin.X, p.Bounds().Min.Y-ab.size.Y/2)
}

func updateEnemy(w *world, e *Entity, ctx frameContext) {
	e.fullTime -= ctx.dt
	e.fireCooldown -= ctx.dt
	e.origin.Y -= e.speed * ctx.dt

	box := e.Bounds()
	if box.Max.Y <= w.screen.Min.Y {
		w.kill(e)
		return
	}
	// only the bottom edge may be crossed
	var shift pixel.Vec
	if box.Max.Y > w.screen.Max.Y {
		shift.Y = w.screen.Max.Y - box.Max.Y
	}
	if box.Min.X < w.screen.Min.X {
		shift.X = w.screen.Min.X - box.Min.X
	} else if box.Max.X > w.screen.Max.X {
		shift.X = w.screen.Max.X - box.Max.X
	}
	e.origin = e.origin.Add(shift)
}

// updateStraight moves along a fixed direction and dies once fully off screen.
func updateStraight(w *world, b *Entity, ctx frameContext) {
	b.origin = b.origin.Add(b.direction.Scaled(b.speed * ctx.dt))
	if outside(b.Bounds(), w.screen) {
		w.kill(b)
	}
}

func updateLargeFireball(w *world, b *Entity, ctx frameContext) {
	b.attachTime -= ctx.dt
	if b.attachTime > 0 {
		if b.host != nil && b.host.alive {
			b.origin = b.host.origin
		}
		return
	}
	if !b.locked {
		b.locked = true
		if ctx.hasTarget {
			if dir, ok := towards(b.origin, ctx.target); ok {
				b.direction = dir
			}
		}
	}
	b.speed += b.accel * ctx.dt
	updateStraight(w, b, ctx)
}

func updateDecoy(w *world, d *Entity, ctx frameContext) {
	d.liveTime -= ctx.dt
	d.fireCooldown -= ctx.dt
	if d.liveTime <= 0 {
		w.kill(d)
		return
	}
	if d.fireCooldown <= 0 {
		d.fireCooldown = d.fireTotal
		b := NewEnemyBullet(d.origin.X, d.origin.Y, w.art)
		b.layers = LayerPlay | LayerBoss
		w.add(b)
	}
}

func updateExplosion(w *world, e *Entity, ctx frameContext) {
	e.lifeTime -= ctx.dt
	e.chainTime -= ctx.dt
	if e.lifeTime <= 0 {
		w.kill(e)
	}
}
