package planewar

import "github.com/faiface/pixel"

// updateHoming steers towards the target while homing time remains. The frame
// it runs out the heading is taken once more and then never changes.
func updateHoming(w *world, b *Entity, ctx frameContext) {
	target, ok := ctx.target, ctx.hasTarget
	if b.seek != nil {
		target, ok = b.seek.origin, b.seek.alive
	}
	if !b.locked {
		b.homingTime -= ctx.dt
		if ok {
			if dir, found := towards(b.origin, target); found {
				b.direction = dir
			}
		}
		if b.homingTime <= 0 {
			b.locked = true
		}
	}
	updateStraight(w, b, ctx)
}

// playerFire spawns one upward shot when the cooldown allows it.
func (w *world) playerFire(p *Entity) *Entity {
	if !p.alive || p.fireCooldown > 0 {
		return nil
	}
	p.fireCooldown = p.fireTotal
	box := p.Bounds()
	return w.add(NewPlayerBullet(p.origin.X, box.Max.Y, w.art))
}

// chaseFire spawns a homing player shot that seeks target.
func (w *world) chaseFire(p, target *Entity) *Entity {
	if !p.alive || p.chaseCooldown > 0 {
		return nil
	}
	p.chaseCooldown = chaseShotCooldown
	box := p.Bounds()
	b := NewHomingBullet(p.origin.X, box.Max.Y, chaseShotSpeed, chaseShotHoming, w.art[ArtPlayerShot])
	b.sets = setPlayerShots
	b.seek = target
	b.direction = pixel.V(0, 1)
	return w.add(b)
}

// enemyFire shoots from the enemy's centre and remembers the bullet so it dies with its owner.
func (w *world) enemyFire(e *Entity) *Entity {
	if !e.alive || !e.canFire || e.fireCooldown > 0 {
		return nil
	}
	e.fireCooldown = e.fireTotal

	var b *Entity
	if e.homing {
		b = NewHomingBullet(e.origin.X, e.origin.Y, enemyHomingSpeed, enemyHomingTime, w.art[ArtEnemyShot])
	} else {
		b = NewEnemyBullet(e.origin.X, e.origin.Y, w.art)
	}
	w.add(b)

	live := e.bullets[:0]
	for _, old := range e.bullets {
		if old.alive {
			live = append(live, old)
		}
	}
	e.bullets = append(live, b)
	return b
}
